package tree

type Binary struct {
	Base
	Op    BinaryOp
	Left  Node
	Right Node
}

type Unary struct {
	Base
	Op      UnaryOp
	Operand Node
}

// Selected: Prefix.Selector
type Selected struct {
	Base
	Prefix   Node
	Selector Node // Ident, символьный или строковый Literal
}

// Attribute: Prefix'Designator [(Args)]
type Attribute struct {
	Base
	Prefix     Node
	Designator *Ident
	Args       []Node
}

// Call: Name(Args). Function call, indexed component, slice and type
// conversion all share this form.
type Call struct {
	Base
	Name Node
	Args []Node
}

// Assoc: Choices => Value
type Assoc struct {
	Base
	Choices []Node
	Value   Node
}

type Others struct{ Base }

type Range struct {
	Base
	Low  Node
	High Node
}

type Aggregate struct {
	Base
	Items []Node
}

// Qualified: Mark'(Operand)
type Qualified struct {
	Base
	Mark    Node
	Operand Node
}

// Allocator: new Subtype, where Subtype is a SubtypeIndication or Qualified.
type Allocator struct {
	Base
	Subtype Node
}

// Deref: Prefix.all
type Deref struct {
	Base
	Prefix Node
}

func (*Binary) Kind() Kind    { return KindBinary }
func (*Unary) Kind() Kind     { return KindUnary }
func (*Selected) Kind() Kind  { return KindSelected }
func (*Attribute) Kind() Kind { return KindAttribute }
func (*Call) Kind() Kind      { return KindCall }
func (*Assoc) Kind() Kind     { return KindAssoc }
func (*Others) Kind() Kind    { return KindOthers }
func (*Range) Kind() Kind     { return KindRange }
func (*Aggregate) Kind() Kind { return KindAggregate }
func (*Qualified) Kind() Kind { return KindQualified }
func (*Allocator) Kind() Kind { return KindAllocator }
func (*Deref) Kind() Kind     { return KindDeref }
