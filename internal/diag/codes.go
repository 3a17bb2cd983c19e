package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadCharLiteral     Code = 1004
	LexBadIdentifier      Code = 1005
	LexTokenTooLong       Code = 1006

	// Парсерные
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectSemicolon   Code = 2002
	SynExpectIdentifier  Code = 2003
	SynExpectExpression  Code = 2004
	SynExpectStatement   Code = 2005
	SynExpectDeclaration Code = 2006
	SynExpectEnd         Code = 2007
	SynEndNameMismatch   Code = 2008
	SynNonAssociative    Code = 2009
	SynMixedLogical      Code = 2010
	SynEmptySequence     Code = 2011
	SynExpectType        Code = 2012
	SynExpectLibraryItem Code = 2013
	SynTrailingInput     Code = 2014
	SynUnclosedParen     Code = 2015
	SynTooDeep           Code = 2016

	// Ввод/вывод
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Внутренние сбои (паника, перехваченная драйвером)
	InternalError Code = 9001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexical information",
		LexUnknownChar:        "Unknown character",
		LexUnterminatedString: "Unterminated string literal",
		LexBadNumber:          "Malformed numeric literal",
		LexBadCharLiteral:     "Malformed character literal",
		LexBadIdentifier:      "Malformed identifier",
		LexTokenTooLong:       "Token too long",
		SynInfo:               "Syntax information",
		SynUnexpectedToken:    "Unexpected token",
		SynExpectSemicolon:    "Missing semicolon",
		SynExpectIdentifier:   "Expected identifier",
		SynExpectExpression:   "Expected expression",
		SynExpectStatement:    "Expected statement",
		SynExpectDeclaration:  "Expected declaration",
		SynExpectEnd:          "Missing 'end'",
		SynEndNameMismatch:    "End name does not match",
		SynNonAssociative:     "Non-associative operator chain",
		SynMixedLogical:       "Mixed logical operators",
		SynEmptySequence:      "Empty statement sequence",
		SynExpectType:         "Expected type definition",
		SynExpectLibraryItem:  "Expected library unit",
		SynTrailingInput:      "Unexpected input after unit",
		SynUnclosedParen:      "Unclosed parenthesis",
		SynTooDeep:            "Nesting too deep",
		IOLoadFileError:       "Failed to load file",
		IOCacheError:          "Parse cache failure",
		InternalError:         "Internal parser failure",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("INT%04d", ic)
	}
	return "E0000"
}

// IsLexical reports whether the code belongs to the lexer range.
func (c Code) IsLexical() bool { return c >= 1000 && c < 2000 }

// IsSyntax reports whether the code belongs to the parser range.
func (c Code) IsSyntax() bool { return c >= 2000 && c < 3000 }

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
