package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
)

// binaryPrecedence ranks the binary operators from loosest to tightest. All of
// them associate to the left except `**`.
var binaryPrecedence = map[token.Type]int{
	token.QUESTION_QUEST: 1,
	token.PIPE_PIPE:      2,
	token.AMP_AMP:        3,
	token.PIPE:           4,
	token.CARET:          5,
	token.AMP:            6,

	token.EQUAL_EQUAL:    7,
	token.BANG_EQUAL:     7,
	token.EQUAL_EQUAL_EQ: 7,
	token.BANG_EQUAL_EQ:  7,

	token.LESS:          8,
	token.LESS_EQUAL:    8,
	token.GREATER:       8,
	token.GREATER_EQUAL: 8,
	token.INSTANCEOF:    8,
	token.IN:            8,

	token.SHL:  9,
	token.SHR:  9,
	token.USHR: 9,

	token.PLUS:  10,
	token.MINUS: 10,

	token.STAR:    11,
	token.SLASH:   11,
	token.PERCENT: 11,

	token.STAR_STAR: 12,
}

// ShortCircuitExpression parses every binary operator level, from `??` and
// `||` down to `**`, by precedence climbing.
//
//	ShortCircuitExpression[In, Yield, Await] :
//	    LogicalORExpression[?In, ?Yield, ?Await]
//	    CoalesceExpression[?In, ?Yield, ?Await]
//	RelationalExpression[In, Yield, Await] :
//	    ...
//	    [+In] RelationalExpression[+In, ?Yield, ?Await] in ShiftExpression[?Yield, ?Await]
//	ExponentiationExpression[Yield, Await] :
//	    UnaryExpression[?Yield, ?Await]
//	    UpdateExpression[?Yield, ?Await] ** ExponentiationExpression[?Yield, ?Await]
type ShortCircuitExpression struct {
	allowIn    AllowIn
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewShortCircuitExpression(allowIn AllowIn, allowYield AllowYield, allowAwait AllowAwait) ShortCircuitExpression {
	return ShortCircuitExpression{allowIn, allowYield, allowAwait}
}

func (p ShortCircuitExpression) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("ShortCircuitExpression")()
	return p.parseBinary(cur, 1)
}

func (p ShortCircuitExpression) precedence(tok *token.Token) (int, bool) {
	if tok == nil || (tok.Is(token.IN) && !bool(p.allowIn)) {
		return 0, false
	}
	prec, ok := binaryPrecedence[tok.Type]
	return prec, ok
}

func (p ShortCircuitExpression) parseBinary(cur *Cursor, minPrec int) (ast.Expr, error) {
	first, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	left, err := NewUnaryExpression(p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	for {
		op, err := cur.Peek(0)
		if err != nil {
			return nil, err
		}
		prec, ok := p.precedence(op)
		if !ok || prec < minPrec {
			return left, nil
		}
		if op.Is(token.STAR_STAR) && isUnaryOperator(first, p.allowAwait) {
			return nil, newSyntaxError(op, "exponentiation expression",
				"Unary operator used immediately before exponentiation expression. Parenthesis must be used to disambiguate operator precedence.")
		}
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
		right, err := p.right(cur, op, prec)
		if err != nil {
			return nil, err
		}
		switch op.Type {
		case token.AMP_AMP, token.PIPE_PIPE, token.QUESTION_QUEST:
			left = ast.NewLogicalExpr(op.Type, left, right)
		default:
			left = ast.NewBinaryExpr(op.Type, left, right)
		}
		first = nil
	}
}

// right parses the right operand of op. `**` is right-associative, so its
// operand recurses at the same precedence and counts towards the nesting
// limit.
func (p ShortCircuitExpression) right(cur *Cursor, op *token.Token, prec int) (ast.Expr, error) {
	if !op.Is(token.STAR_STAR) {
		return p.parseBinary(cur, prec+1)
	}
	if err := cur.enter("exponentiation expression"); err != nil {
		return nil, err
	}
	defer cur.leave()
	return p.parseBinary(cur, prec)
}
