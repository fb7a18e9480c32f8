package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
)

// ObjectLiteral parses `{ ... }` in expression position.
//
//	PropertyDefinition[Yield, Await] :
//	    IdentifierReference[?Yield, ?Await]
//	    PropertyName[?Yield, ?Await] : AssignmentExpression[+In, ?Yield, ?Await]
//	    MethodDefinition[?Yield, ?Await]
//	    ... AssignmentExpression[+In, ?Yield, ?Await]
type ObjectLiteral struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewObjectLiteral(allowYield AllowYield, allowAwait AllowAwait) ObjectLiteral {
	return ObjectLiteral{allowYield, allowAwait}
}

func (p ObjectLiteral) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("ObjectLiteral")()

	if _, err := cur.Expect(token.LEFT_BRACE, "object literal"); err != nil {
		return nil, err
	}
	props := []*ast.Property{}
	for {
		tok, err := cur.Peek(0)
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, cur.abruptEnd("object literal")
		}
		if tok.Is(token.RIGHT_BRACE) {
			if _, err := cur.Next(); err != nil {
				return nil, err
			}
			return ast.NewObjectExpr(props), nil
		}

		prop, err := p.property(cur)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)

		if tok, err = cur.Peek(0); err != nil {
			return nil, err
		}
		if !tok.Is(token.RIGHT_BRACE) {
			if _, err := cur.Expect(token.COMMA, "object literal"); err != nil {
				return nil, err
			}
		}
	}
}

func (p ObjectLiteral) property(cur *Cursor) (*ast.Property, error) {
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Is(token.ELLIPSIS) {
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
		val, err := NewAssignmentExpression(true, p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		return ast.NewProperty(ast.PropSpread, nil, false, val, false), nil
	}

	method, ok, err := parseMethodPrefix(cur, p.allowYield, p.allowAwait)
	if err != nil {
		return nil, err
	}
	if ok {
		return ast.NewProperty(method.Kind, method.Key, method.Computed, method.Value, false), nil
	}

	key, computed, err := NewPropertyName(p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	next, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	switch {
	case next.Is(token.COLON):
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
		val, err := NewAssignmentExpression(true, p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		return ast.NewProperty(ast.PropInit, key, computed, val, false), nil
	case next.Is(token.LEFT_PAREN):
		fn, err := functionTail(cur, nil, false, false)
		if err != nil {
			return nil, err
		}
		return ast.NewProperty(ast.PropMethod, key, computed, fn, false), nil
	case !computed && isBindingIdentifier(tok, p.allowYield, p.allowAwait):
		ref := ast.NewIdentifierExpr(tok.Lexeme)
		return ast.NewProperty(ast.PropInit, ref, false, ref, true), nil
	}
	if next == nil {
		return nil, cur.abruptEnd("object literal")
	}
	return nil, newUnexpectedToken(next, token.COLON.Describe(), "object literal")
}

// parseMethodPrefix parses a method whose key is preceded by `get`, `set`,
// `async` or `*`. ok is false, with nothing consumed, when the next tokens
// are a plain key instead, as in `{ get: 1 }` or `{ async() {} }`.
func parseMethodPrefix(cur *Cursor, allowYield AllowYield, allowAwait AllowAwait) (method *ast.MethodDef, ok bool, err error) {
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, false, err
	}
	var kind ast.PropertyKind
	var async, generator bool
	switch {
	case tok.Is(token.STAR):
		kind, generator = ast.PropMethod, true
	case isContextual(tok, "get"), isContextual(tok, "set"), tok.Is(token.ASYNC):
		next, err := cur.Peek(1)
		if err != nil {
			return nil, false, err
		}
		if next == nil || next.Is(token.LEFT_PAREN, token.COLON, token.COMMA, token.RIGHT_BRACE, token.EQUAL) {
			return nil, false, nil
		}
		switch {
		case tok.Is(token.ASYNC):
			if next.NewlineBefore {
				return nil, false, nil
			}
			kind, async = ast.PropMethod, true
		case tok.Lexeme == "get":
			kind = ast.PropGet
		default:
			kind = ast.PropSet
		}
	default:
		return nil, false, nil
	}

	if _, err := cur.Next(); err != nil {
		return nil, false, err
	}
	if async {
		if tok, err = cur.Peek(0); err != nil {
			return nil, false, err
		}
		if tok.Is(token.STAR) {
			generator = true
			if _, err := cur.Next(); err != nil {
				return nil, false, err
			}
		}
	}
	key, computed, err := NewPropertyName(allowYield, allowAwait).Parse(cur)
	if err != nil {
		return nil, false, err
	}
	fn, err := functionTail(cur, nil, generator, async)
	if err != nil {
		return nil, false, err
	}
	return ast.NewMethodDef(kind, key, computed, false, fn), true, nil
}

// PropertyName parses an object or class key: an identifier name (reserved
// words included), a string, a number or a computed `[expr]`.
type PropertyName struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewPropertyName(allowYield AllowYield, allowAwait AllowAwait) PropertyName {
	return PropertyName{allowYield, allowAwait}
}

func (p PropertyName) Parse(cur *Cursor) (key ast.Expr, computed bool, err error) {
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, false, err
	}
	switch {
	case tok == nil:
		return nil, false, cur.abruptEnd("property name")
	case tok.Is(token.STRING, token.NUMBER):
		key = ast.NewLiteralExpr(tok.Literal)
	case isIdentifierName(tok):
		key = ast.NewIdentifierExpr(tok.Lexeme)
	case tok.Is(token.LEFT_BRACKET):
		if _, err := cur.Next(); err != nil {
			return nil, false, err
		}
		expr, err := NewAssignmentExpression(true, p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, false, err
		}
		if _, err := cur.Expect(token.RIGHT_BRACKET, "computed property name"); err != nil {
			return nil, false, err
		}
		return expr, true, nil
	default:
		return nil, false, newUnexpectedToken(tok, "property name", "property name")
	}
	if _, err := cur.Next(); err != nil {
		return nil, false, err
	}
	return key, false, nil
}
