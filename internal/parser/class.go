package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
)

// ClassExpression parses a class with an optional name and heritage. Only
// method definitions are accepted in the body.
//
//	ClassExpression[Yield, Await] :
//	    class BindingIdentifier[?Yield, ?Await]opt ClassTail[?Yield, ?Await]
//	ClassTail[Yield, Await] :
//	    ClassHeritage[?Yield, ?Await]opt { ClassBody[?Yield, ?Await]opt }
type ClassExpression struct {
	allowYield AllowYield
	allowAwait AllowAwait
	// requireName is set for declarations.
	requireName bool
}

func NewClassExpression(allowYield AllowYield, allowAwait AllowAwait) ClassExpression {
	return ClassExpression{allowYield, allowAwait, false}
}

func (p ClassExpression) Parse(cur *Cursor) (ast.Expr, error) {
	return p.parseClass(cur)
}

func (p ClassExpression) parseClass(cur *Cursor) (*ast.ClassExpr, error) {
	defer cur.trace("ClassExpression")()

	if _, err := cur.Expect(token.CLASS, "class expression"); err != nil {
		return nil, err
	}

	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	var name *ast.IdentifierExpr
	if p.requireName || !tok.Is(token.EXTENDS, token.LEFT_BRACE) {
		if name, err = NewBindingIdentifier(p.allowYield, p.allowAwait).Parse(cur); err != nil {
			return nil, err
		}
	}

	var super ast.Expr
	if tok, err = cur.Peek(0); err != nil {
		return nil, err
	}
	if tok.Is(token.EXTENDS) {
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
		if super, err = NewLeftHandSideExpression(p.allowYield, p.allowAwait).Parse(cur); err != nil {
			return nil, err
		}
	}

	methods, err := NewClassBody(p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	return ast.NewClassExpr(name, super, methods), nil
}

type ClassBody struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewClassBody(allowYield AllowYield, allowAwait AllowAwait) ClassBody {
	return ClassBody{allowYield, allowAwait}
}

func (p ClassBody) Parse(cur *Cursor) ([]*ast.MethodDef, error) {
	defer cur.trace("ClassBody")()

	if err := cur.enter("class body"); err != nil {
		return nil, err
	}
	defer cur.leave()

	if _, err := cur.Expect(token.LEFT_BRACE, "class body"); err != nil {
		return nil, err
	}
	methods := []*ast.MethodDef{}
	for {
		tok, err := cur.Peek(0)
		if err != nil {
			return nil, err
		}
		switch {
		case tok == nil:
			return nil, cur.abruptEnd("class body")
		case tok.Is(token.RIGHT_BRACE):
			_, err := cur.Next()
			return methods, err
		case tok.Is(token.SEMICOLON):
			if _, err := cur.Next(); err != nil {
				return nil, err
			}
			continue
		}

		static := false
		if isContextual(tok, "static") {
			next, err := cur.Peek(1)
			if err != nil {
				return nil, err
			}
			if next != nil && !next.Is(token.LEFT_PAREN) {
				static = true
				if _, err := cur.Next(); err != nil {
					return nil, err
				}
			}
		}
		method, err := p.method(cur, static)
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
}

func (p ClassBody) method(cur *Cursor, static bool) (*ast.MethodDef, error) {
	method, ok, err := parseMethodPrefix(cur, p.allowYield, p.allowAwait)
	if err != nil {
		return nil, err
	}
	if ok {
		return ast.NewMethodDef(method.Kind, method.Key, method.Computed, static, method.Value), nil
	}
	key, computed, err := NewPropertyName(p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, cur.abruptEnd("class body")
	}
	if !tok.Is(token.LEFT_PAREN) {
		return nil, newUnexpectedToken(tok, token.LEFT_PAREN.Describe(), "method definition")
	}
	fn, err := functionTail(cur, nil, false, false)
	if err != nil {
		return nil, err
	}
	return ast.NewMethodDef(ast.PropMethod, key, computed, static, fn), nil
}
