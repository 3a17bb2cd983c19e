package tree

// Kind enumerates node variants.
type Kind uint8

const (
	KindUnit Kind = iota
	KindIdent
	KindLiteral
	KindProgram
	KindWithClause
	KindUseClause

	// объявления
	KindObjectDecl
	KindExceptionDecl
	KindTypeDecl
	KindSubtypeDecl
	KindSubprogramDecl
	KindSubprogramSpec
	KindParam
	KindBody
	KindPackageDecl
	KindPackageBody
	KindPragma

	// определения типов
	KindRangeTypeDef
	KindModularTypeDef
	KindRealTypeDef
	KindEnumTypeDef
	KindArrayTypeDef
	KindRecordTypeDef
	KindComponentDecl
	KindVariantPart
	KindVariant
	KindAccessTypeDef
	KindDerivedTypeDef
	KindPrivateTypeDef
	KindSubtypeIndication
	KindIndexConstraint
	KindBoxRange

	// операторы
	KindAssign
	KindIf
	KindCase
	KindCaseAlt
	KindLoop
	KindWhileScheme
	KindForScheme
	KindCallStmt
	KindReturn
	KindNull
	KindBlock
	KindExit
	KindGoto
	KindLabelStmt
	KindRaise
	KindHandler

	// выражения
	KindBinary
	KindUnary
	KindSelected
	KindAttribute
	KindCall
	KindAssoc
	KindOthers
	KindRange
	KindAggregate
	KindQualified
	KindAllocator
	KindDeref
)

var kindNames = [...]string{
	KindUnit:              "Unit",
	KindIdent:             "Ident",
	KindLiteral:           "Literal",
	KindProgram:           "Program",
	KindWithClause:        "WithClause",
	KindUseClause:         "UseClause",
	KindObjectDecl:        "ObjectDecl",
	KindExceptionDecl:     "ExceptionDecl",
	KindTypeDecl:          "TypeDecl",
	KindSubtypeDecl:       "SubtypeDecl",
	KindSubprogramDecl:    "SubprogramDecl",
	KindSubprogramSpec:    "SubprogramSpec",
	KindParam:             "Param",
	KindBody:              "Body",
	KindPackageDecl:       "PackageDecl",
	KindPackageBody:       "PackageBody",
	KindPragma:            "Pragma",
	KindRangeTypeDef:      "RangeTypeDef",
	KindModularTypeDef:    "ModularTypeDef",
	KindRealTypeDef:       "RealTypeDef",
	KindEnumTypeDef:       "EnumTypeDef",
	KindArrayTypeDef:      "ArrayTypeDef",
	KindRecordTypeDef:     "RecordTypeDef",
	KindComponentDecl:     "ComponentDecl",
	KindVariantPart:       "VariantPart",
	KindVariant:           "Variant",
	KindAccessTypeDef:     "AccessTypeDef",
	KindDerivedTypeDef:    "DerivedTypeDef",
	KindPrivateTypeDef:    "PrivateTypeDef",
	KindSubtypeIndication: "SubtypeIndication",
	KindIndexConstraint:   "IndexConstraint",
	KindBoxRange:          "BoxRange",
	KindAssign:            "Assign",
	KindIf:                "If",
	KindCase:              "Case",
	KindCaseAlt:           "CaseAlt",
	KindLoop:              "Loop",
	KindWhileScheme:       "WhileScheme",
	KindForScheme:         "ForScheme",
	KindCallStmt:          "CallStmt",
	KindReturn:            "Return",
	KindNull:              "Null",
	KindBlock:             "Block",
	KindExit:              "Exit",
	KindGoto:              "Goto",
	KindLabelStmt:         "LabelStmt",
	KindRaise:             "Raise",
	KindHandler:           "Handler",
	KindBinary:            "Binary",
	KindUnary:             "Unary",
	KindSelected:          "Selected",
	KindAttribute:         "Attribute",
	KindCall:              "Call",
	KindAssoc:             "Assoc",
	KindOthers:            "Others",
	KindRange:             "Range",
	KindAggregate:         "Aggregate",
	KindQualified:         "Qualified",
	KindAllocator:         "Allocator",
	KindDeref:             "Deref",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsStatement reports whether nodes of kind k may appear in a statement sequence.
func (k Kind) IsStatement() bool {
	switch k {
	case KindAssign, KindIf, KindCase, KindLoop, KindCallStmt, KindReturn, KindNull,
		KindBlock, KindExit, KindGoto, KindLabelStmt, KindRaise, KindPragma:
		return true
	}
	return false
}

// IsDeclaration reports whether nodes of kind k may appear in a declarative part.
func (k Kind) IsDeclaration() bool {
	switch k {
	case KindObjectDecl, KindExceptionDecl, KindTypeDecl, KindSubtypeDecl,
		KindSubprogramDecl, KindPackageDecl, KindPackageBody, KindPragma, KindUseClause:
		return true
	}
	return false
}
