package token

import (
	"golang.org/x/text/cases"
)

var keywordSpelling = map[Kind]string{
	KwAbort: "abort", KwAbs: "abs", KwAbstract: "abstract", KwAccept: "accept",
	KwAccess: "access", KwAliased: "aliased", KwAll: "all", KwAnd: "and",
	KwArray: "array", KwAt: "at", KwBegin: "begin", KwBody: "body",
	KwCase: "case", KwConstant: "constant", KwDeclare: "declare", KwDelay: "delay",
	KwDelta: "delta", KwDigits: "digits", KwDo: "do", KwElse: "else",
	KwElsif: "elsif", KwEnd: "end", KwEntry: "entry", KwException: "exception",
	KwExit: "exit", KwFor: "for", KwFunction: "function", KwGeneric: "generic",
	KwGoto: "goto", KwIf: "if", KwIn: "in", KwInterface: "interface",
	KwIs: "is", KwLimited: "limited", KwLoop: "loop", KwMod: "mod",
	KwNew: "new", KwNot: "not", KwNull: "null", KwOf: "of",
	KwOr: "or", KwOthers: "others", KwOut: "out", KwOverriding: "overriding",
	KwPackage: "package", KwPragma: "pragma", KwPrivate: "private", KwProcedure: "procedure",
	KwProtected: "protected", KwRaise: "raise", KwRange: "range", KwRecord: "record",
	KwRem: "rem", KwRenames: "renames", KwRequeue: "requeue", KwReturn: "return",
	KwReverse: "reverse", KwSelect: "select", KwSeparate: "separate", KwSome: "some",
	KwSubtype: "subtype", KwSynchronized: "synchronized", KwTagged: "tagged", KwTask: "task",
	KwTerminate: "terminate", KwThen: "then", KwType: "type", KwUntil: "until",
	KwUse: "use", KwWhen: "when", KwWhile: "while", KwWith: "with",
	KwXor: "xor",
}

var keywords = func() map[string]Kind {
	m := make(map[string]Kind, len(keywordSpelling))
	for k, s := range keywordSpelling {
		m[s] = k
	}
	return m
}()

// Fold returns the case-folded form used to compare Ada identifiers.
// A fresh Caser is built per call: cases.Caser is stateful and not safe
// for concurrent use.
func Fold(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			return cases.Fold().String(s)
		}
	}
	// ASCII fast-path
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистронезависимые: Begin, BEGIN и begin одинаковы.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[Fold(ident)]
	return k, ok
}
