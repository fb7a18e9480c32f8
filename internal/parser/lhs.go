package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
)

// LeftHandSideExpression parses `new` expressions, member accesses, calls and
// tagged templates.
//
//	LeftHandSideExpression[Yield, Await] :
//	    NewExpression[?Yield, ?Await]
//	    CallExpression[?Yield, ?Await]
//	NewExpression[Yield, Await] :
//	    MemberExpression[?Yield, ?Await]
//	    new NewExpression[?Yield, ?Await]
//	MemberExpression[Yield, Await] :
//	    PrimaryExpression[?Yield, ?Await]
//	    MemberExpression[?Yield, ?Await] [ Expression[+In, ?Yield, ?Await] ]
//	    MemberExpression[?Yield, ?Await] . IdentifierName
//	    MemberExpression[?Yield, ?Await] TemplateLiteral[?Yield, ?Await, +Tagged]
//	    new MemberExpression[?Yield, ?Await] Arguments[?Yield, ?Await]
type LeftHandSideExpression struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewLeftHandSideExpression(allowYield AllowYield, allowAwait AllowAwait) LeftHandSideExpression {
	return LeftHandSideExpression{allowYield, allowAwait}
}

func (p LeftHandSideExpression) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("LeftHandSideExpression")()

	expr, err := p.member(cur)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := cur.Peek(0)
		if err != nil {
			return nil, err
		}
		if !tok.Is(token.LEFT_PAREN) {
			next, ok, err := p.suffix(cur, expr)
			if err != nil || !ok {
				return expr, err
			}
			expr = next
			continue
		}
		args, err := NewArguments(p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		expr = ast.NewCallExpr(expr, args)
	}
}

func (p LeftHandSideExpression) member(cur *Cursor) (ast.Expr, error) {
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}

	var expr ast.Expr
	if tok.Is(token.NEW) {
		if err := cur.enter("new expression"); err != nil {
			return nil, err
		}
		defer cur.leave()
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
		callee, err := p.member(cur)
		if err != nil {
			return nil, err
		}
		var args []ast.Expr
		next, err := cur.Peek(0)
		if err != nil {
			return nil, err
		}
		if next.Is(token.LEFT_PAREN) {
			if args, err = NewArguments(p.allowYield, p.allowAwait).Parse(cur); err != nil {
				return nil, err
			}
		}
		expr = ast.NewNewExpr(callee, args)
	} else {
		if expr, err = NewPrimaryExpression(p.allowYield, p.allowAwait).Parse(cur); err != nil {
			return nil, err
		}
	}

	for {
		next, ok, err := p.suffix(cur, expr)
		if err != nil || !ok {
			return expr, err
		}
		expr = next
	}
}

// suffix extends expr with one property access or tagged template. ok is
// false when the next token starts neither.
func (p LeftHandSideExpression) suffix(cur *Cursor, expr ast.Expr) (next ast.Expr, ok bool, err error) {
	tok, err := cur.Peek(0)
	if err != nil || tok == nil {
		return nil, false, err
	}
	switch tok.Type {
	case token.DOT:
		if _, err := cur.Next(); err != nil {
			return nil, false, err
		}
		name, err := cur.Next()
		if err != nil {
			return nil, false, err
		}
		if name == nil {
			return nil, false, cur.abruptEnd("member expression")
		}
		if !isIdentifierName(name) {
			return nil, false, newUnexpectedToken(name, "property name", "member expression")
		}
		return ast.NewMemberExpr(expr, ast.NewIdentifierExpr(name.Lexeme), false), true, nil
	case token.LEFT_BRACKET:
		if _, err := cur.Next(); err != nil {
			return nil, false, err
		}
		prop, err := NewExpression(true, p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, false, err
		}
		if _, err := cur.Expect(token.RIGHT_BRACKET, "member expression"); err != nil {
			return nil, false, err
		}
		return ast.NewMemberExpr(expr, prop, true), true, nil
	case token.TEMPLATE, token.TEMPLATE_HEAD:
		quasi, err := NewTemplateLiteral(p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, false, err
		}
		return ast.NewTaggedTemplateExpr(expr, quasi), true, nil
	}
	return nil, false, nil
}

// Arguments parses a parenthesised, possibly empty argument list. The result
// is never nil.
type Arguments struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewArguments(allowYield AllowYield, allowAwait AllowAwait) Arguments {
	return Arguments{allowYield, allowAwait}
}

func (p Arguments) Parse(cur *Cursor) ([]ast.Expr, error) {
	defer cur.trace("Arguments")()

	if _, err := cur.Expect(token.LEFT_PAREN, "arguments"); err != nil {
		return nil, err
	}
	args := []ast.Expr{}
	for {
		tok, err := cur.Peek(0)
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, cur.abruptEnd("arguments")
		}
		if tok.Is(token.RIGHT_PAREN) {
			_, err := cur.Next()
			return args, err
		}

		spread := tok.Is(token.ELLIPSIS)
		if spread {
			if _, err := cur.Next(); err != nil {
				return nil, err
			}
		}
		arg, err := NewAssignmentExpression(true, p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		if spread {
			arg = ast.NewSpreadExpr(arg)
		}
		args = append(args, arg)

		if tok, err = cur.Peek(0); err != nil {
			return nil, err
		}
		if !tok.Is(token.RIGHT_PAREN) {
			if _, err := cur.Expect(token.COMMA, "arguments"); err != nil {
				return nil, err
			}
		}
	}
}
