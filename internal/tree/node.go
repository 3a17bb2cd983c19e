package tree

import "adaleph/internal/source"

// Node is implemented by every tree variant.
type Node interface {
	Kind() Kind
	Pos() source.Span
	node()
}

// Base carries the source span of a node.
type Base struct {
	Span source.Span
}

func (b *Base) Pos() source.Span { return b.Span }
func (*Base) node()              {}

// Unit is the explicit "no value" node.
type Unit struct{ Base }

type Ident struct {
	Base
	Name string
}

type Literal struct {
	Base
	LitKind LitKind
	Raw     string
	// Value: десятичная запись для целых, нормализованный текст для
	// вещественных, содержимое без кавычек для строк и символов.
	Value string
}

type Program struct {
	Base
	Context []Node // WithClause, UseClause, Pragma
	Unit    Node
}

type WithClause struct {
	Base
	Names []Node
}

type UseClause struct {
	Base
	Type  bool // use type T;
	Names []Node
}

type Pragma struct {
	Base
	Name *Ident
	Args []Node
}

func (*Unit) Kind() Kind       { return KindUnit }
func (*Ident) Kind() Kind      { return KindIdent }
func (*Literal) Kind() Kind    { return KindLiteral }
func (*Program) Kind() Kind    { return KindProgram }
func (*WithClause) Kind() Kind { return KindWithClause }
func (*UseClause) Kind() Kind  { return KindUseClause }
func (*Pragma) Kind() Kind     { return KindPragma }
