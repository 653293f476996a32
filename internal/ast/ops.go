package ast

// BinaryOp is the operator tag of a binary expression. Assignment is a
// binary operator too; it differs from the others only by its tag.
type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota // +
	BinarySub                 // -
	BinaryMul                 // *
	BinaryDiv                 // /

	BinaryLess      // <
	BinaryLessEq    // <=
	BinaryGreater   // >
	BinaryGreaterEq // >=
	BinaryEq        // ==
	BinaryNotEq     // !=

	BinaryAssign // =
)

var binaryOpNames = [...]string{
	BinaryAdd:       "+",
	BinarySub:       "-",
	BinaryMul:       "*",
	BinaryDiv:       "/",
	BinaryLess:      "<",
	BinaryLessEq:    "<=",
	BinaryGreater:   ">",
	BinaryGreaterEq: ">=",
	BinaryEq:        "==",
	BinaryNotEq:     "!=",
	BinaryAssign:    "=",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// UnaryOp is the operator tag of a unary prefix expression.
type UnaryOp uint8

const (
	UnaryNegate UnaryOp = iota // -
	UnaryNot                   // !
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNegate:
		return "-"
	case UnaryNot:
		return "!"
	}
	return "?"
}
