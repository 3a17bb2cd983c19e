package tree

// RangeTypeDef: type T is range L .. H;
type RangeTypeDef struct {
	Base
	Range *Range
}

// ModularTypeDef: type T is mod M;
type ModularTypeDef struct {
	Base
	Modulus Node
}

// RealTypeDef covers floating point (digits D) and fixed point (delta D
// [digits N]) definitions; Range is optional.
type RealTypeDef struct {
	Base
	Digits Node
	Delta  Node
	Range  *Range
}

// EnumTypeDef: literals are Ident or character Literal.
type EnumTypeDef struct {
	Base
	Literals []Node
}

// ArrayTypeDef: Indexes hold Range, BoxRange (unconstrained) or a discrete
// SubtypeIndication.
type ArrayTypeDef struct {
	Base
	Indexes   []Node
	Aliased   bool
	Component Node
}

type RecordTypeDef struct {
	Base
	Abstract   bool
	Tagged     bool
	Limited    bool
	NullRecord bool
	Components []Node // ComponentDecl, VariantPart, Null, Pragma
}

type ComponentDecl struct {
	Base
	Names   []*Ident
	Aliased bool
	Type    Node
	Default Node
}

type VariantPart struct {
	Base
	Discriminant *Ident
	Variants     []*Variant
}

type Variant struct {
	Base
	Choices    []Node
	Components []Node
}

// AccessTypeDef: either an object access (Target set) or an access to
// subprogram (Subprogram set, its Name is nil).
type AccessTypeDef struct {
	Base
	NotNull    bool
	All        bool
	Constant   bool
	Target     Node
	Subprogram *SubprogramSpec
}

// DerivedTypeDef: new Parent [with record ... | with null record | with private].
type DerivedTypeDef struct {
	Base
	Abstract    bool
	Limited     bool
	Parent      *SubtypeIndication
	Extension   *RecordTypeDef
	WithPrivate bool
}

type PrivateTypeDef struct {
	Base
	Abstract bool
	Tagged   bool
	Limited  bool
}

// SubtypeIndication: [not null] Mark [Constraint], Constraint is a Range or an
// IndexConstraint.
type SubtypeIndication struct {
	Base
	NotNull    bool
	Mark       Node
	Constraint Node
}

type IndexConstraint struct {
	Base
	Ranges []Node
}

// BoxRange: Mark range <>
type BoxRange struct {
	Base
	Mark Node
}

func (*RangeTypeDef) Kind() Kind      { return KindRangeTypeDef }
func (*ModularTypeDef) Kind() Kind    { return KindModularTypeDef }
func (*RealTypeDef) Kind() Kind       { return KindRealTypeDef }
func (*EnumTypeDef) Kind() Kind       { return KindEnumTypeDef }
func (*ArrayTypeDef) Kind() Kind      { return KindArrayTypeDef }
func (*RecordTypeDef) Kind() Kind     { return KindRecordTypeDef }
func (*ComponentDecl) Kind() Kind     { return KindComponentDecl }
func (*VariantPart) Kind() Kind       { return KindVariantPart }
func (*Variant) Kind() Kind           { return KindVariant }
func (*AccessTypeDef) Kind() Kind     { return KindAccessTypeDef }
func (*DerivedTypeDef) Kind() Kind    { return KindDerivedTypeDef }
func (*PrivateTypeDef) Kind() Kind    { return KindPrivateTypeDef }
func (*SubtypeIndication) Kind() Kind { return KindSubtypeIndication }
func (*IndexConstraint) Kind() Kind   { return KindIndexConstraint }
func (*BoxRange) Kind() Kind          { return KindBoxRange }
