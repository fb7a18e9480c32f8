package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
)

// startsExpression reports whether tok can begin an AssignmentExpression.
// Productions with an optional operand, `yield` and `return`, use it to decide
// whether an operand follows.
func startsExpression(tok *token.Token) bool {
	if tok == nil {
		return false
	}
	switch tok.Type {
	case token.IDENTIFIER,
		token.LEFT_PAREN, token.PLUS, token.MINUS, token.BANG, token.TILDE,
		token.PLUS_PLUS, token.MINUS_MINUS, token.LEFT_BRACKET, token.LEFT_BRACE,
		token.SLASH,
		token.YIELD, token.AWAIT, token.DELETE, token.VOID, token.TYPEOF,
		token.NEW, token.THIS, token.FUNCTION, token.CLASS, token.ASYNC,
		token.TRUE, token.FALSE, token.NULL, token.STRING, token.NUMBER,
		token.TEMPLATE, token.TEMPLATE_HEAD, token.REGEXP:
		return true
	}
	return false
}

// isBindingIdentifier reports whether tok can name a binding in the given
// context. `yield` and `await` are reserved only where they are operators.
func isBindingIdentifier(tok *token.Token, allowYield AllowYield, allowAwait AllowAwait) bool {
	switch {
	case tok == nil:
		return false
	case tok.Is(token.IDENTIFIER, token.ASYNC):
		return true
	case tok.Is(token.YIELD):
		return !bool(allowYield)
	case tok.Is(token.AWAIT):
		return !bool(allowAwait)
	}
	return false
}

// isIdentifierName reports whether tok may appear as a property name after a
// dot or as an object key, where reserved words are allowed.
func isIdentifierName(tok *token.Token) bool {
	return tok.Is(token.IDENTIFIER, token.TRUE, token.FALSE, token.NULL) || (tok != nil && tok.Type.IsKeyword())
}

// isContextual reports whether tok is the identifier `name`, used for words
// like `let`, `of` or `get` that are keywords only in specific positions.
func isContextual(tok *token.Token, name string) bool {
	return tok.Is(token.IDENTIFIER) && tok.Lexeme == name
}

func isUnaryOperator(tok *token.Token, allowAwait AllowAwait) bool {
	if tok.Is(token.AWAIT) {
		return bool(allowAwait)
	}
	return tok.Is(token.DELETE, token.VOID, token.TYPEOF, token.PLUS, token.MINUS, token.TILDE, token.BANG)
}

// arrowAhead reports whether the tokens at the cursor begin an arrow function.
// It only peeks: a parenthesised parameter list is matched to its closing
// parenthesis and the token after it must be `=>` on the same line.
func arrowAhead(cur *Cursor, allowYield AllowYield, allowAwait AllowAwait) (bool, error) {
	tok, err := cur.Peek(0)
	if err != nil || tok == nil {
		return false, err
	}
	skip := 0
	if tok.Is(token.ASYNC) {
		next, err := cur.Peek(1)
		if err != nil {
			return false, err
		}
		switch {
		case next == nil, next.NewlineBefore:
			return false, nil
		case next.Is(token.ARROW):
			// `async => ...` uses async as the parameter name.
			return true, nil
		case isBindingIdentifier(next, allowYield, true):
			return arrowAt(cur, 2)
		case next.Is(token.LEFT_PAREN):
			skip = 1
		default:
			return false, nil
		}
	}
	if skip == 0 && isBindingIdentifier(tok, allowYield, allowAwait) {
		return arrowAt(cur, 1)
	}
	open, err := cur.Peek(skip)
	if err != nil || !open.Is(token.LEFT_PAREN) {
		return false, err
	}
	depth := 0
	for i := skip; ; i++ {
		tok, err := cur.Peek(i)
		if err != nil || tok == nil {
			return false, err
		}
		switch tok.Type {
		case token.LEFT_PAREN:
			depth++
		case token.RIGHT_PAREN:
			depth--
			if depth == 0 {
				return arrowAt(cur, i+1)
			}
		}
	}
}

func arrowAt(cur *Cursor, skip int) (bool, error) {
	tok, err := cur.Peek(skip)
	if err != nil || tok == nil {
		return false, err
	}
	return tok.Is(token.ARROW) && !tok.NewlineBefore, nil
}

// isAssignmentTarget reports whether expr may appear on the left of `=`.
func isAssignmentTarget(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.IdentifierExpr, *ast.MemberExpr:
		return true
	}
	return false
}
