package tree

// Walk обходит дерево в прямом порядке. Если fn возвращает false,
// потомки узла пропускаются.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Count returns the number of nodes reachable from n, n included.
func Count(n Node) int {
	total := 0
	Walk(n, func(Node) bool {
		total++
		return true
	})
	return total
}

// Children returns the direct children of n in source order, skipping absent
// optional children.
func Children(n Node) []Node {
	var c collector
	switch n := n.(type) {
	case *Unit, *Ident, *Literal, *Others, *Null, *PrivateTypeDef:
		// листья
	case *Program:
		c.list(n.Context)
		c.add(n.Unit)
	case *WithClause:
		c.list(n.Names)
	case *UseClause:
		c.list(n.Names)
	case *Pragma:
		c.ident(n.Name)
		c.list(n.Args)

	case *ObjectDecl:
		c.idents(n.Names)
		c.add(n.Type)
		c.add(n.Init)
	case *ExceptionDecl:
		c.idents(n.Names)
	case *TypeDecl:
		c.ident(n.Name)
		c.params(n.Discriminants)
		c.add(n.Def)
	case *SubtypeDecl:
		c.ident(n.Name)
		if n.Indication != nil {
			c.add(n.Indication)
		}
	case *SubprogramDecl:
		if n.Spec != nil {
			c.add(n.Spec)
		}
		if n.Body != nil {
			c.add(n.Body)
		}
	case *SubprogramSpec:
		c.add(n.Name)
		c.params(n.Params)
		c.add(n.Returns)
	case *Param:
		c.idents(n.Names)
		c.add(n.Type)
		c.add(n.Default)
	case *Body:
		c.list(n.Decls)
		c.list(n.Stmts)
		c.handlers(n.Handlers)
	case *PackageDecl:
		c.add(n.Name)
		c.list(n.Visible)
		c.list(n.Private)
	case *PackageBody:
		c.add(n.Name)
		if n.Body != nil {
			c.add(n.Body)
		}

	case *RangeTypeDef:
		if n.Range != nil {
			c.add(n.Range)
		}
	case *ModularTypeDef:
		c.add(n.Modulus)
	case *RealTypeDef:
		c.add(n.Digits)
		c.add(n.Delta)
		if n.Range != nil {
			c.add(n.Range)
		}
	case *EnumTypeDef:
		c.list(n.Literals)
	case *ArrayTypeDef:
		c.list(n.Indexes)
		c.add(n.Component)
	case *RecordTypeDef:
		c.list(n.Components)
	case *ComponentDecl:
		c.idents(n.Names)
		c.add(n.Type)
		c.add(n.Default)
	case *VariantPart:
		c.ident(n.Discriminant)
		for _, v := range n.Variants {
			c.add(v)
		}
	case *Variant:
		c.list(n.Choices)
		c.list(n.Components)
	case *AccessTypeDef:
		c.add(n.Target)
		if n.Subprogram != nil {
			c.add(n.Subprogram)
		}
	case *DerivedTypeDef:
		if n.Parent != nil {
			c.add(n.Parent)
		}
		if n.Extension != nil {
			c.add(n.Extension)
		}
	case *SubtypeIndication:
		c.add(n.Mark)
		c.add(n.Constraint)
	case *IndexConstraint:
		c.list(n.Ranges)
	case *BoxRange:
		c.add(n.Mark)

	case *Assign:
		c.add(n.Target)
		c.add(n.Value)
	case *If:
		c.add(n.Cond)
		c.list(n.Then)
		c.list(n.Else)
	case *Case:
		c.add(n.Expr)
		for _, a := range n.Alts {
			c.add(a)
		}
	case *CaseAlt:
		c.list(n.Choices)
		c.list(n.Stmts)
	case *Loop:
		c.ident(n.Label)
		c.add(n.Scheme)
		c.list(n.Body)
	case *WhileScheme:
		c.add(n.Cond)
	case *ForScheme:
		c.ident(n.Param)
		c.add(n.Range)
	case *CallStmt:
		c.add(n.Name)
		c.list(n.Args)
	case *Return:
		c.add(n.Value)
	case *Block:
		c.ident(n.Label)
		c.list(n.Decls)
		c.list(n.Stmts)
		c.handlers(n.Handlers)
	case *Exit:
		c.add(n.Label)
		c.add(n.When)
	case *Goto:
		c.add(n.Label)
	case *LabelStmt:
		c.ident(n.Name)
	case *Raise:
		c.add(n.Exception)
		c.add(n.Message)
	case *Handler:
		c.ident(n.Param)
		c.list(n.Choices)
		c.list(n.Stmts)

	case *Binary:
		c.add(n.Left)
		c.add(n.Right)
	case *Unary:
		c.add(n.Operand)
	case *Selected:
		c.add(n.Prefix)
		c.add(n.Selector)
	case *Attribute:
		c.add(n.Prefix)
		c.ident(n.Designator)
		c.list(n.Args)
	case *Call:
		c.add(n.Name)
		c.list(n.Args)
	case *Assoc:
		c.list(n.Choices)
		c.add(n.Value)
	case *Range:
		c.add(n.Low)
		c.add(n.High)
	case *Aggregate:
		c.list(n.Items)
	case *Qualified:
		c.add(n.Mark)
		c.add(n.Operand)
	case *Allocator:
		c.add(n.Subtype)
	case *Deref:
		c.add(n.Prefix)
	}
	return c.out
}

// collector прячет проверки на nil: типизированный nil-указатель,
// положенный в интерфейс Node, уже не равен nil.
type collector struct{ out []Node }

func (c *collector) add(n Node) {
	if n != nil {
		c.out = append(c.out, n)
	}
}

func (c *collector) list(ns []Node) {
	for _, n := range ns {
		c.add(n)
	}
}

func (c *collector) ident(id *Ident) {
	if id != nil {
		c.out = append(c.out, id)
	}
}

func (c *collector) idents(ids []*Ident) {
	for _, id := range ids {
		c.ident(id)
	}
}

func (c *collector) params(ps []*Param) {
	for _, p := range ps {
		if p != nil {
			c.out = append(c.out, p)
		}
	}
}

func (c *collector) handlers(hs []*Handler) {
	for _, h := range hs {
		if h != nil {
			c.out = append(c.out, h)
		}
	}
}
