package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
)

// UnaryExpression parses prefix operators.
//
//	UnaryExpression[Yield, Await] :
//	    UpdateExpression[?Yield, ?Await]
//	    delete UnaryExpression[?Yield, ?Await]
//	    void UnaryExpression[?Yield, ?Await]
//	    typeof UnaryExpression[?Yield, ?Await]
//	    + UnaryExpression[?Yield, ?Await]
//	    - UnaryExpression[?Yield, ?Await]
//	    ~ UnaryExpression[?Yield, ?Await]
//	    ! UnaryExpression[?Yield, ?Await]
//	    [+Await] AwaitExpression[?Yield]
type UnaryExpression struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewUnaryExpression(allowYield AllowYield, allowAwait AllowAwait) UnaryExpression {
	return UnaryExpression{allowYield, allowAwait}
}

func (p UnaryExpression) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("UnaryExpression")()

	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, cur.abruptEnd("unary expression")
	}
	if !isUnaryOperator(tok, p.allowAwait) {
		return NewUpdateExpression(p.allowYield, p.allowAwait).Parse(cur)
	}

	if err := cur.enter("unary expression"); err != nil {
		return nil, err
	}
	defer cur.leave()
	if _, err := cur.Next(); err != nil {
		return nil, err
	}
	operand, err := p.Parse(cur)
	if err != nil {
		return nil, err
	}
	if tok.Is(token.AWAIT) {
		return ast.NewAwaitExpr(operand), nil
	}
	return ast.NewUnaryExpr(tok.Type, operand), nil
}

// UpdateExpression parses `++` and `--`. A postfix operator must be on the
// same line as its operand.
type UpdateExpression struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewUpdateExpression(allowYield AllowYield, allowAwait AllowAwait) UpdateExpression {
	return UpdateExpression{allowYield, allowAwait}
}

func (p UpdateExpression) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("UpdateExpression")()

	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Is(token.PLUS_PLUS, token.MINUS_MINUS) {
		if err := cur.enter("update expression"); err != nil {
			return nil, err
		}
		defer cur.leave()
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
		operand, err := NewUnaryExpression(p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		if !isAssignmentTarget(operand) {
			return nil, newSyntaxError(tok, "update expression", "Invalid left-hand side expression in prefix operation.")
		}
		return ast.NewUpdateExpr(tok.Type, true, operand), nil
	}

	operand, err := NewLeftHandSideExpression(p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	lineBreak, found, err := cur.PeekIsLineTerminator(0)
	if err != nil {
		return nil, err
	}
	if !found || lineBreak {
		return operand, nil
	}
	op, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if !op.Is(token.PLUS_PLUS, token.MINUS_MINUS) {
		return operand, nil
	}
	if !isAssignmentTarget(operand) {
		return nil, newSyntaxError(op, "update expression", "Invalid left-hand side expression in postfix operation.")
	}
	if _, err := cur.Next(); err != nil {
		return nil, err
	}
	return ast.NewUpdateExpr(op.Type, false, operand), nil
}
