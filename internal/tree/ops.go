package tree

// BinaryOp enumerates binary operators, including membership tests.
type BinaryOp uint8

const (
	// Логические
	OpAnd BinaryOp = iota
	OpOr
	OpXor
	OpAndThen
	OpOrElse

	// Сравнения и принадлежность
	OpEq
	OpNotEq
	OpLt
	OpLtEq
	OpGt
	OpGtEq
	OpIn
	OpNotIn

	// Аддитивные
	OpAdd
	OpSub
	OpConcat

	// Мультипликативные
	OpMul
	OpDiv
	OpMod
	OpRem

	OpPow
)

var binaryOpNames = [...]string{
	OpAnd: "and", OpOr: "or", OpXor: "xor", OpAndThen: "and then", OpOrElse: "or else",
	OpEq: "=", OpNotEq: "/=", OpLt: "<", OpLtEq: "<=", OpGt: ">", OpGtEq: ">=",
	OpIn: "in", OpNotIn: "not in",
	OpAdd: "+", OpSub: "-", OpConcat: "&",
	OpMul: "*", OpDiv: "/", OpMod: "mod", OpRem: "rem",
	OpPow: "**",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "BinaryOp(?)"
}

// IsLogical reports whether op is one of the short-circuit or plain logical operators.
func (op BinaryOp) IsLogical() bool { return op <= OpOrElse }

// IsRelational reports whether op is a comparison or membership test.
func (op BinaryOp) IsRelational() bool { return op >= OpEq && op <= OpNotIn }

// UnaryOp enumerates unary operators.
type UnaryOp uint8

const (
	OpPlus UnaryOp = iota
	OpMinus
	OpAbs
	OpNot
)

func (op UnaryOp) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpAbs:
		return "abs"
	case OpNot:
		return "not"
	}
	return "UnaryOp(?)"
}

// LitKind classifies literals.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitReal
	LitString
	LitChar
	LitNull
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitReal:
		return "real"
	case LitString:
		return "string"
	case LitChar:
		return "char"
	case LitNull:
		return "null"
	}
	return "LitKind(?)"
}

// ParamMode is the mode of a formal parameter.
type ParamMode uint8

const (
	ModeDefault ParamMode = iota // без явного режима, по смыслу in
	ModeIn
	ModeOut
	ModeInOut
	ModeAccess
)

func (m ParamMode) String() string {
	switch m {
	case ModeDefault:
		return ""
	case ModeIn:
		return "in"
	case ModeOut:
		return "out"
	case ModeInOut:
		return "in out"
	case ModeAccess:
		return "access"
	}
	return "ParamMode(?)"
}

// SubprogramKind distinguishes procedures from functions.
type SubprogramKind uint8

const (
	Procedure SubprogramKind = iota
	Function
)

func (k SubprogramKind) String() string {
	if k == Function {
		return "function"
	}
	return "procedure"
}
