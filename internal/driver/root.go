package driver

import (
	"fmt"
	"strings"
)

// Root selects the grammar entry point.
type Root uint8

const (
	RootProgram Root = iota
	RootDeclarations
	RootStatements
)

func (r Root) String() string {
	switch r {
	case RootProgram:
		return "program"
	case RootDeclarations:
		return "declarations"
	case RootStatements:
		return "statements"
	}
	return fmt.Sprintf("Root(%d)", uint8(r))
}

// ParseRoot понимает полные имена и короткие формы из CLI.
func ParseRoot(s string) (Root, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "program", "unit":
		return RootProgram, nil
	case "declarations", "decls", "decl":
		return RootDeclarations, nil
	case "statements", "stmts", "stmt":
		return RootStatements, nil
	}
	return RootProgram, fmt.Errorf("unknown root %q (want program, declarations or statements)", s)
}
