package lexer

import (
	"adaleph/internal/diag"
)

type Options struct {
	// Reporter receives the lexical diagnostic, if any. May be nil.
	Reporter diag.Reporter
}
