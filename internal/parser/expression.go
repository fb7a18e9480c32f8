package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
)

// Expression parses one or more comma separated assignment expressions.
//
//	Expression[In, Yield, Await] :
//	    AssignmentExpression[?In, ?Yield, ?Await]
//	    Expression[?In, ?Yield, ?Await] , AssignmentExpression[?In, ?Yield, ?Await]
type Expression struct {
	allowIn    AllowIn
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewExpression(allowIn AllowIn, allowYield AllowYield, allowAwait AllowAwait) Expression {
	return Expression{allowIn, allowYield, allowAwait}
}

func (p Expression) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("Expression")()

	assign := NewAssignmentExpression(p.allowIn, p.allowYield, p.allowAwait)
	expr, err := assign.Parse(cur)
	if err != nil {
		return nil, err
	}
	exprs := []ast.Expr{expr}
	for {
		tok, err := cur.Peek(0)
		if err != nil {
			return nil, err
		}
		if !tok.Is(token.COMMA) {
			break
		}
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
		expr, err := assign.Parse(cur)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return ast.NewSequenceExpr(exprs), nil
}

// AssignmentExpression parses yield expressions, arrow functions and
// assignments, falling back to a conditional expression.
//
//	AssignmentExpression[In, Yield, Await] :
//	    ConditionalExpression[?In, ?Yield, ?Await]
//	    [+Yield] YieldExpression[?In, ?Await]
//	    ArrowFunction[?In, ?Yield, ?Await]
//	    AsyncArrowFunction[?In, ?Yield, ?Await]
//	    LeftHandSideExpression[?Yield, ?Await] AssignmentOperator AssignmentExpression[?In, ?Yield, ?Await]
type AssignmentExpression struct {
	allowIn    AllowIn
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewAssignmentExpression(allowIn AllowIn, allowYield AllowYield, allowAwait AllowAwait) AssignmentExpression {
	return AssignmentExpression{allowIn, allowYield, allowAwait}
}

func (p AssignmentExpression) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("AssignmentExpression")()

	if err := cur.enter("assignment expression"); err != nil {
		return nil, err
	}
	defer cur.leave()

	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, cur.abruptEnd("assignment expression")
	}
	if tok.Is(token.YIELD) && bool(p.allowYield) {
		return NewYieldExpression(p.allowIn, p.allowAwait).Parse(cur)
	}

	arrow, err := arrowAhead(cur, p.allowYield, p.allowAwait)
	if err != nil {
		return nil, err
	}
	if arrow {
		return NewArrowFunction(p.allowIn, p.allowYield, p.allowAwait).Parse(cur)
	}

	target, err := NewConditionalExpression(p.allowIn, p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	op, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if op == nil || !op.Type.IsAssignment() {
		return target, nil
	}
	if !isAssignmentTarget(target) {
		return nil, newSyntaxError(op, "assignment expression", "Invalid left-hand side in assignment.")
	}
	if _, err := cur.Next(); err != nil {
		return nil, err
	}
	val, err := p.Parse(cur)
	if err != nil {
		return nil, err
	}
	return ast.NewAssignExpr(op.Type, target, val), nil
}

// ConditionalExpression parses `cond ? then : else`. The middle operand always
// allows `in`.
type ConditionalExpression struct {
	allowIn    AllowIn
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewConditionalExpression(allowIn AllowIn, allowYield AllowYield, allowAwait AllowAwait) ConditionalExpression {
	return ConditionalExpression{allowIn, allowYield, allowAwait}
}

func (p ConditionalExpression) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("ConditionalExpression")()

	cond, err := NewShortCircuitExpression(p.allowIn, p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if !tok.Is(token.QUESTION) {
		return cond, nil
	}
	if _, err := cur.Next(); err != nil {
		return nil, err
	}
	then, err := NewAssignmentExpression(true, p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	if _, err := cur.Expect(token.COLON, "conditional expression"); err != nil {
		return nil, err
	}
	els, err := NewAssignmentExpression(p.allowIn, p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	return ast.NewConditionalExpr(cond, then, els), nil
}
