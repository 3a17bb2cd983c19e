package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// литералы
	IntLit    // 42, 16#FF#, 1E6
	RealLit   // 3.14, 2#1.1#E4
	StringLit // "text"
	CharLit   // 'c'

	// зарезервированные слова (Ada 2012)
	KwAbort
	KwAbs
	KwAbstract
	KwAccept
	KwAccess
	KwAliased
	KwAll
	KwAnd
	KwArray
	KwAt
	KwBegin
	KwBody
	KwCase
	KwConstant
	KwDeclare
	KwDelay
	KwDelta
	KwDigits
	KwDo
	KwElse
	KwElsif
	KwEnd
	KwEntry
	KwException
	KwExit
	KwFor
	KwFunction
	KwGeneric
	KwGoto
	KwIf
	KwIn
	KwInterface
	KwIs
	KwLimited
	KwLoop
	KwMod
	KwNew
	KwNot
	KwNull
	KwOf
	KwOr
	KwOthers
	KwOut
	KwOverriding
	KwPackage
	KwPragma
	KwPrivate
	KwProcedure
	KwProtected
	KwRaise
	KwRange
	KwRecord
	KwRem
	KwRenames
	KwRequeue
	KwReturn
	KwReverse
	KwSelect
	KwSeparate
	KwSome
	KwSubtype
	KwSynchronized
	KwTagged
	KwTask
	KwTerminate
	KwThen
	KwType
	KwUntil
	KwUse
	KwWhen
	KwWhile
	KwWith
	KwXor

	// разделители
	Amp       // &
	Tick      // '
	LParen    // (
	RParen    // )
	Star      // *
	Plus      // +
	Comma     // ,
	Minus     // -
	Dot       // .
	Slash     // /
	Colon     // :
	Semicolon // ;
	Lt        // <
	Eq        // =
	Gt        // >
	Bar       // |

	// составные разделители
	Arrow      // =>
	DotDot     // ..
	StarStar   // **
	Assign     // :=
	NotEq      // /=
	GtEq       // >=
	LtEq       // <=
	LabelOpen  // <<
	LabelClose // >>
	Box        // <>
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Ident:   "Ident",

	IntLit:    "IntLit",
	RealLit:   "RealLit",
	StringLit: "StringLit",
	CharLit:   "CharLit",

	Amp:        "&",
	Tick:       "'",
	LParen:     "(",
	RParen:     ")",
	Star:       "*",
	Plus:       "+",
	Comma:      ",",
	Minus:      "-",
	Dot:        ".",
	Slash:      "/",
	Colon:      ":",
	Semicolon:  ";",
	Lt:         "<",
	Eq:         "=",
	Gt:         ">",
	Bar:        "|",
	Arrow:      "=>",
	DotDot:     "..",
	StarStar:   "**",
	Assign:     ":=",
	NotEq:      "/=",
	GtEq:       ">=",
	LtEq:       "<=",
	LabelOpen:  "<<",
	LabelClose: ">>",
	Box:        "<>",
}

// String returns the delimiter spelling, the lowercase keyword, or the kind name.
func (k Kind) String() string {
	if k.IsKeyword() {
		return keywordSpelling[k]
	}
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Describe renders the kind for diagnostics: keywords and delimiters are quoted.
func (k Kind) Describe() string {
	switch k {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case IntLit, RealLit:
		return "numeric literal"
	case StringLit:
		return "string literal"
	case CharLit:
		return "character literal"
	case Invalid:
		return "invalid token"
	}
	return "'" + k.String() + "'"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwAbort && k <= KwXor
}

// IsLiteral reports whether k is a numeric, string or character literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, RealLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsDelimiter reports whether k is a simple or compound delimiter.
func (k Kind) IsDelimiter() bool {
	return k >= Amp && k <= Box
}
