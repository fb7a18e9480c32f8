package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
)

// PrimaryExpression parses the atoms of the expression grammar.
//
//	PrimaryExpression[Yield, Await] :
//	    this
//	    IdentifierReference[?Yield, ?Await]
//	    Literal
//	    ArrayLiteral[?Yield, ?Await]
//	    ObjectLiteral[?Yield, ?Await]
//	    FunctionExpression
//	    ClassExpression[?Yield, ?Await]
//	    GeneratorExpression
//	    AsyncFunctionExpression
//	    AsyncGeneratorExpression
//	    RegularExpressionLiteral
//	    TemplateLiteral[?Yield, ?Await, ~Tagged]
//	    ( Expression[+In, ?Yield, ?Await] )
type PrimaryExpression struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewPrimaryExpression(allowYield AllowYield, allowAwait AllowAwait) PrimaryExpression {
	return PrimaryExpression{allowYield, allowAwait}
}

func (p PrimaryExpression) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("PrimaryExpression")()

	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, cur.abruptEnd("primary expression")
	}

	switch tok.Type {
	case token.THIS:
		return p.consume(cur, ast.NewThisExpr())
	case token.NUMBER, token.STRING, token.TRUE, token.FALSE, token.NULL:
		return p.consume(cur, ast.NewLiteralExpr(tok.Literal))
	case token.REGEXP:
		re, _ := tok.Literal.(token.RegExp)
		return p.consume(cur, ast.NewRegExpExpr(re.Pattern, re.Flags))
	case token.TEMPLATE, token.TEMPLATE_HEAD:
		return NewTemplateLiteral(p.allowYield, p.allowAwait).Parse(cur)
	case token.LEFT_BRACKET:
		return NewArrayLiteral(p.allowYield, p.allowAwait).Parse(cur)
	case token.LEFT_BRACE:
		return NewObjectLiteral(p.allowYield, p.allowAwait).Parse(cur)
	case token.FUNCTION:
		return NewFunctionExpression().Parse(cur)
	case token.CLASS:
		return NewClassExpression(p.allowYield, p.allowAwait).Parse(cur)
	case token.LEFT_PAREN:
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
		expr, err := NewExpression(true, p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		if _, err := cur.Expect(token.RIGHT_PAREN, "parenthesized expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case token.ASYNC:
		next, err := cur.Peek(1)
		if err != nil {
			return nil, err
		}
		if next.Is(token.FUNCTION) && !next.NewlineBefore {
			return NewFunctionExpression().Parse(cur)
		}
	}

	if isBindingIdentifier(tok, p.allowYield, p.allowAwait) {
		return p.consume(cur, ast.NewIdentifierExpr(tok.Lexeme))
	}
	return nil, newUnexpectedToken(tok, "expression", "primary expression")
}

func (p PrimaryExpression) consume(cur *Cursor, expr ast.Expr) (ast.Expr, error) {
	if _, err := cur.Next(); err != nil {
		return nil, err
	}
	return expr, nil
}

// ArrayLiteral parses `[a, , ...b]`. Elisions become nil elements.
type ArrayLiteral struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewArrayLiteral(allowYield AllowYield, allowAwait AllowAwait) ArrayLiteral {
	return ArrayLiteral{allowYield, allowAwait}
}

func (p ArrayLiteral) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("ArrayLiteral")()

	if _, err := cur.Expect(token.LEFT_BRACKET, "array literal"); err != nil {
		return nil, err
	}
	elements := []ast.Expr{}
	for {
		tok, err := cur.Peek(0)
		if err != nil {
			return nil, err
		}
		switch {
		case tok == nil:
			return nil, cur.abruptEnd("array literal")
		case tok.Is(token.RIGHT_BRACKET):
			if _, err := cur.Next(); err != nil {
				return nil, err
			}
			return ast.NewArrayExpr(elements), nil
		case tok.Is(token.COMMA):
			if _, err := cur.Next(); err != nil {
				return nil, err
			}
			elements = append(elements, nil)
			continue
		}

		spread := tok.Is(token.ELLIPSIS)
		if spread {
			if _, err := cur.Next(); err != nil {
				return nil, err
			}
		}
		el, err := NewAssignmentExpression(true, p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		if spread {
			el = ast.NewSpreadExpr(el)
		}
		elements = append(elements, el)

		if tok, err = cur.Peek(0); err != nil {
			return nil, err
		}
		if !tok.Is(token.RIGHT_BRACKET) {
			if _, err := cur.Expect(token.COMMA, "array literal"); err != nil {
				return nil, err
			}
		}
	}
}

// TemplateLiteral parses a template with or without substitutions. The
// scanner has already split it into head, middle and tail chunks.
type TemplateLiteral struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewTemplateLiteral(allowYield AllowYield, allowAwait AllowAwait) TemplateLiteral {
	return TemplateLiteral{allowYield, allowAwait}
}

func (p TemplateLiteral) Parse(cur *Cursor) (*ast.TemplateExpr, error) {
	defer cur.trace("TemplateLiteral")()

	tok, err := cur.Next()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, cur.abruptEnd("template literal")
	}
	switch tok.Type {
	case token.TEMPLATE:
		return ast.NewTemplateExpr([]string{cooked(tok)}, nil), nil
	case token.TEMPLATE_HEAD:
	default:
		return nil, newUnexpectedToken(tok, "template literal", "template literal")
	}

	quasis := []string{cooked(tok)}
	var exprs []ast.Expr
	for {
		expr, err := NewExpression(true, p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		tok, err := cur.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, cur.abruptEnd("template literal")
		}
		switch tok.Type {
		case token.TEMPLATE_MIDDLE:
			quasis = append(quasis, cooked(tok))
		case token.TEMPLATE_TAIL:
			quasis = append(quasis, cooked(tok))
			return ast.NewTemplateExpr(quasis, exprs), nil
		default:
			return nil, newUnexpectedToken(tok, "'}'", "template literal")
		}
	}
}

func cooked(tok *token.Token) string {
	s, _ := tok.Literal.(string)
	return s
}
