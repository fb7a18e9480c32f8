package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
)

// YieldExpression parses a yield expression inside a generator body.
//
//	YieldExpression[In, Await] :
//	    yield
//	    yield [no LineTerminator here] AssignmentExpression[?In, +Yield, ?Await]
//	    yield [no LineTerminator here] * AssignmentExpression[+In, +Yield, ?Await]
//
// The operand is optional. It is parsed only when the token after `yield` is
// on the same line and can begin an expression; otherwise the yield stands
// alone and the token is left for the enclosing production.
type YieldExpression struct {
	allowIn    AllowIn
	allowAwait AllowAwait
}

func NewYieldExpression(allowIn AllowIn, allowAwait AllowAwait) YieldExpression {
	return YieldExpression{allowIn, allowAwait}
}

func (p YieldExpression) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("YieldExpression")()

	if _, err := cur.Expect(token.YIELD, "yield expression"); err != nil {
		return nil, err
	}

	lineBreak, found, err := cur.PeekIsLineTerminator(0)
	if err != nil {
		return nil, err
	}
	if lineBreak || !found {
		return ast.NewYieldExpr(nil, false), nil
	}

	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Is(token.STAR):
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
		arg, err := NewAssignmentExpression(true, true, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		return ast.NewYieldExpr(arg, true), nil
	case startsExpression(tok):
		arg, err := NewAssignmentExpression(p.allowIn, true, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		return ast.NewYieldExpr(arg, false), nil
	}
	return ast.NewYieldExpr(nil, false), nil
}
