package tree

type Assign struct {
	Base
	Target Node
	Value  Node
}

// If: elsif chains are nested If nodes as the single element of Else.
type If struct {
	Base
	Cond Node
	Then []Node
	Else []Node
}

type Case struct {
	Base
	Expr Node
	Alts []*CaseAlt
}

type CaseAlt struct {
	Base
	Choices []Node
	Stmts   []Node
}

// Loop: Scheme is nil for a plain loop.
type Loop struct {
	Base
	Label  *Ident
	Scheme Node // WhileScheme, ForScheme
	Body   []Node
}

type WhileScheme struct {
	Base
	Cond Node
}

type ForScheme struct {
	Base
	Param   *Ident
	Reverse bool
	Range   Node // Range, SubtypeIndication или имя
}

// CallStmt: a procedure call statement; Args is nil for a call without
// parameters.
type CallStmt struct {
	Base
	Name Node
	Args []Node
}

type Return struct {
	Base
	Value Node
}

type Null struct{ Base }

type Block struct {
	Base
	Label    *Ident
	Decls    []Node
	Stmts    []Node
	Handlers []*Handler
}

type Exit struct {
	Base
	Label Node
	When  Node
}

type Goto struct {
	Base
	Label Node
}

// LabelStmt: <<Name>>
type LabelStmt struct {
	Base
	Name *Ident
}

// Raise: Exception is nil for a re-raise.
type Raise struct {
	Base
	Exception Node
	Message   Node
}

// Handler: when [Param :] Choices => Stmts
type Handler struct {
	Base
	Param   *Ident
	Choices []Node
	Stmts   []Node
}

func (*Assign) Kind() Kind      { return KindAssign }
func (*If) Kind() Kind          { return KindIf }
func (*Case) Kind() Kind        { return KindCase }
func (*CaseAlt) Kind() Kind     { return KindCaseAlt }
func (*Loop) Kind() Kind        { return KindLoop }
func (*WhileScheme) Kind() Kind { return KindWhileScheme }
func (*ForScheme) Kind() Kind   { return KindForScheme }
func (*CallStmt) Kind() Kind    { return KindCallStmt }
func (*Return) Kind() Kind      { return KindReturn }
func (*Null) Kind() Kind        { return KindNull }
func (*Block) Kind() Kind       { return KindBlock }
func (*Exit) Kind() Kind        { return KindExit }
func (*Goto) Kind() Kind        { return KindGoto }
func (*LabelStmt) Kind() Kind   { return KindLabelStmt }
func (*Raise) Kind() Kind       { return KindRaise }
func (*Handler) Kind() Kind     { return KindHandler }
