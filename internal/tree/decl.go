package tree

// ObjectDecl covers object declarations (X, Y : [aliased] [constant] T [:= E];)
// and number declarations (N : constant := E;), where Type is nil.
type ObjectDecl struct {
	Base
	Names    []*Ident
	Aliased  bool
	Constant bool
	Type     Node // SubtypeIndication или ArrayTypeDef
	Init     Node
}

type ExceptionDecl struct {
	Base
	Names []*Ident
}

// TypeDecl: Def is nil for an incomplete declaration (type T;).
type TypeDecl struct {
	Base
	Name          *Ident
	Discriminants []*Param
	Def           Node
}

type SubtypeDecl struct {
	Base
	Name       *Ident
	Indication *SubtypeIndication
}

// SubprogramDecl is a subprogram declaration when Body is nil and neither
// IsNull nor IsAbstract is set, a body otherwise.
type SubprogramDecl struct {
	Base
	Spec       *SubprogramSpec
	Body       *Body
	IsNull     bool
	IsAbstract bool
}

type SubprogramSpec struct {
	Base
	Form    SubprogramKind
	Name    Node // Ident, Selected или строковый литерал операции ("+")
	Params  []*Param
	Returns Node
}

type Param struct {
	Base
	Names   []*Ident
	Mode    ParamMode
	NotNull bool
	Type    Node
	Default Node
}

// Body is the declarative part, statements and handlers of a subprogram,
// package body or block.
type Body struct {
	Base
	Decls    []Node
	Stmts    []Node
	Handlers []*Handler
}

type PackageDecl struct {
	Base
	Name    Node
	Visible []Node
	Private []Node
}

type PackageBody struct {
	Base
	Name Node
	Body *Body
}

func (*ObjectDecl) Kind() Kind     { return KindObjectDecl }
func (*ExceptionDecl) Kind() Kind  { return KindExceptionDecl }
func (*TypeDecl) Kind() Kind       { return KindTypeDecl }
func (*SubtypeDecl) Kind() Kind    { return KindSubtypeDecl }
func (*SubprogramDecl) Kind() Kind { return KindSubprogramDecl }
func (*SubprogramSpec) Kind() Kind { return KindSubprogramSpec }
func (*Param) Kind() Kind          { return KindParam }
func (*Body) Kind() Kind           { return KindBody }
func (*PackageDecl) Kind() Kind    { return KindPackageDecl }
func (*PackageBody) Kind() Kind    { return KindPackageBody }
