// Package testkit holds checks shared by tests of several packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"adaleph/internal/source"
	"adaleph/internal/tree"
)

// CheckFile is CheckTree for roots parsed from file.
func CheckFile(file *source.File, roots []tree.Node) error {
	if file == nil {
		return fmt.Errorf("nil file")
	}
	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	for _, n := range roots {
		if n != nil && n.Pos().File != file.ID {
			return fmt.Errorf("%s span points to file %d, want %d", n.Kind(), n.Pos().File, file.ID)
		}
	}
	return CheckTree(size, roots)
}

// CheckTree проверяет инварианты успешно разобранного дерева:
//   - span каждого узла лежит внутри исходника (Start <= End <= srcLen);
//   - непустой span потомка лежит внутри span родителя;
//   - непустые потомки идут в порядке исходника;
//   - Unit не встречается внутри дерева;
//   - ни один узел не принадлежит двум родителям.
func CheckTree(srcLen uint32, roots []tree.Node) error {
	c := checker{srcLen: srcLen, seen: make(map[tree.Node]struct{})}
	for _, n := range roots {
		if n == nil {
			return fmt.Errorf("nil root")
		}
		if _, isUnit := n.(*tree.Unit); isUnit {
			return fmt.Errorf("unit at top level of a successful parse")
		}
		if err := c.node(n); err != nil {
			return err
		}
	}
	return c.siblings(roots)
}

type checker struct {
	srcLen uint32
	seen   map[tree.Node]struct{}
}

func (c *checker) node(n tree.Node) error {
	if _, dup := c.seen[n]; dup {
		return fmt.Errorf("%s at %s is shared between parents", n.Kind(), n.Pos())
	}
	c.seen[n] = struct{}{}

	sp := n.Pos()
	if sp.Start > sp.End || sp.End > c.srcLen {
		return fmt.Errorf("%s span %s outside source of %d bytes", n.Kind(), sp, c.srcLen)
	}
	kids := tree.Children(n)
	for _, k := range kids {
		if _, isUnit := k.(*tree.Unit); isUnit {
			return fmt.Errorf("unit nested in %s at %s", n.Kind(), sp)
		}
		ks := k.Pos()
		if !ks.Empty() && !sp.Contains(ks) {
			return fmt.Errorf("%s span %s escapes parent %s %s", k.Kind(), ks, n.Kind(), sp)
		}
		if err := c.node(k); err != nil {
			return err
		}
	}
	return c.siblings(kids)
}

func (c *checker) siblings(ns []tree.Node) error {
	var last uint32
	for _, n := range ns {
		sp := n.Pos()
		if sp.Empty() {
			continue
		}
		if sp.Start < last {
			return fmt.Errorf("%s at %s precedes its previous sibling", n.Kind(), sp)
		}
		last = sp.Start
	}
	return nil
}
