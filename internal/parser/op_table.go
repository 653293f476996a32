package parser

import (
	"graviton/internal/ast"
	"graviton/internal/token"
)

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет.
const (
	precAssignment     = 1 // = (правоассоциативно)
	precEquality       = 2 // == !=
	precComparison     = 3 // < <= > >=
	precAdditive       = 4 // + -
	precMultiplicative = 5 // * /
)

// binaryOperatorPrec возвращает приоритет и ассоциативность оператора.
// Возвращает (приоритет, правоассоциативный); (-1, false) для не-операторов.
func binaryOperatorPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.Assign:
		return precAssignment, true

	case token.EqEq, token.BangEq:
		return precEquality, false

	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false

	case token.Plus, token.Minus:
		return precAdditive, false

	case token.Star, token.Slash:
		return precMultiplicative, false

	default:
		return -1, false
	}
}

// tokenKindToBinaryOp преобразует токен в тег бинарного оператора
func tokenKindToBinaryOp(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.Plus:
		return ast.BinaryAdd
	case token.Minus:
		return ast.BinarySub
	case token.Star:
		return ast.BinaryMul
	case token.Slash:
		return ast.BinaryDiv

	case token.Lt:
		return ast.BinaryLess
	case token.LtEq:
		return ast.BinaryLessEq
	case token.Gt:
		return ast.BinaryGreater
	case token.GtEq:
		return ast.BinaryGreaterEq
	case token.EqEq:
		return ast.BinaryEq
	case token.BangEq:
		return ast.BinaryNotEq

	case token.Assign:
		return ast.BinaryAssign

	default:
		// недостижимо при корректной таблице приоритетов
		return ast.BinaryAdd
	}
}

// unaryOperator возвращает тег унарного оператора для токена
func unaryOperator(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.Minus:
		return ast.UnaryNegate, true
	case token.Bang:
		return ast.UnaryNot, true
	default:
		return ast.UnaryNegate, false
	}
}
