package tree

import (
	"strings"

	"adaleph/internal/token"
)

// SameName compares two designators the way Ada does: identifiers are
// case-insensitive, expanded names compare component-wise. Operator symbols
// ("+", "and") compare their folded text.
func SameName(a, b Node) bool {
	switch a := a.(type) {
	case *Ident:
		bi, ok := b.(*Ident)
		return ok && token.Fold(a.Name) == token.Fold(bi.Name)
	case *Selected:
		bs, ok := b.(*Selected)
		return ok && SameName(a.Prefix, bs.Prefix) && SameName(a.Selector, bs.Selector)
	case *Literal:
		bl, ok := b.(*Literal)
		return ok && a.LitKind == bl.LitKind && token.Fold(a.Value) == token.Fold(bl.Value)
	}
	return false
}

// NameString renders a designator for diagnostics: "P", "Ada.Text_IO", "\"+\"".
// Anything that is not a name renders as its kind.
func NameString(n Node) string {
	var b strings.Builder
	writeName(&b, n)
	return b.String()
}

func writeName(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		b.WriteString("<none>")
	case *Ident:
		b.WriteString(n.Name)
	case *Selected:
		writeName(b, n.Prefix)
		b.WriteByte('.')
		writeName(b, n.Selector)
	case *Literal:
		b.WriteString(n.Raw)
	case *Attribute:
		writeName(b, n.Prefix)
		b.WriteByte('\'')
		writeName(b, n.Designator)
	case *Deref:
		writeName(b, n.Prefix)
		b.WriteString(".all")
	default:
		b.WriteString(n.Kind().String())
	}
}
