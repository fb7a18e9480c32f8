package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
)

// BindingIdentifier parses a name being declared: a variable, a parameter or
// a function name.
type BindingIdentifier struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewBindingIdentifier(allowYield AllowYield, allowAwait AllowAwait) BindingIdentifier {
	return BindingIdentifier{allowYield, allowAwait}
}

func (p BindingIdentifier) Parse(cur *Cursor) (*ast.IdentifierExpr, error) {
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, cur.abruptEnd("binding identifier")
	}
	if !isBindingIdentifier(tok, p.allowYield, p.allowAwait) {
		return nil, newUnexpectedToken(tok, token.IDENTIFIER.Describe(), "binding identifier")
	}
	if _, err := cur.Next(); err != nil {
		return nil, err
	}
	return ast.NewIdentifierExpr(tok.Lexeme), nil
}

// FormalParameters parses a parenthesised parameter list with optional
// default values and a trailing rest parameter.
type FormalParameters struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewFormalParameters(allowYield AllowYield, allowAwait AllowAwait) FormalParameters {
	return FormalParameters{allowYield, allowAwait}
}

func (p FormalParameters) Parse(cur *Cursor) ([]*ast.Param, error) {
	defer cur.trace("FormalParameters")()

	if _, err := cur.Expect(token.LEFT_PAREN, "formal parameters"); err != nil {
		return nil, err
	}
	params := []*ast.Param{}
	for {
		tok, err := cur.Peek(0)
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, cur.abruptEnd("formal parameters")
		}
		if tok.Is(token.RIGHT_PAREN) {
			_, err := cur.Next()
			return params, err
		}

		if tok.Is(token.ELLIPSIS) {
			if _, err := cur.Next(); err != nil {
				return nil, err
			}
			name, err := NewBindingIdentifier(p.allowYield, p.allowAwait).Parse(cur)
			if err != nil {
				return nil, err
			}
			params = append(params, ast.NewParam(name, nil, true))
			if _, err := cur.Expect(token.RIGHT_PAREN, "formal parameters"); err != nil {
				return nil, err
			}
			return params, nil
		}

		name, err := NewBindingIdentifier(p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		var def ast.Expr
		if tok, err = cur.Peek(0); err != nil {
			return nil, err
		}
		if tok.Is(token.EQUAL) {
			if _, err := cur.Next(); err != nil {
				return nil, err
			}
			if def, err = NewAssignmentExpression(true, p.allowYield, p.allowAwait).Parse(cur); err != nil {
				return nil, err
			}
		}
		params = append(params, ast.NewParam(name, def, false))

		if tok, err = cur.Peek(0); err != nil {
			return nil, err
		}
		if !tok.Is(token.RIGHT_PAREN) {
			if _, err := cur.Expect(token.COMMA, "formal parameters"); err != nil {
				return nil, err
			}
		}
	}
}

// FunctionBody parses a braced statement list in which `return` is allowed.
// Whether `yield` and `await` are operators depends only on the function being
// parsed, never on the context it appears in.
type FunctionBody struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewFunctionBody(allowYield AllowYield, allowAwait AllowAwait) FunctionBody {
	return FunctionBody{allowYield, allowAwait}
}

func (p FunctionBody) Parse(cur *Cursor) ([]ast.Stmt, error) {
	defer cur.trace("FunctionBody")()

	if err := cur.enter("function body"); err != nil {
		return nil, err
	}
	defer cur.leave()

	if _, err := cur.Expect(token.LEFT_BRACE, "function body"); err != nil {
		return nil, err
	}
	body, err := NewStatementList(p.allowYield, p.allowAwait, true).Parse(cur, token.RIGHT_BRACE)
	if err != nil {
		return nil, err
	}
	if _, err := cur.Expect(token.RIGHT_BRACE, "function body"); err != nil {
		return nil, err
	}
	return body, nil
}

// functionTail parses the parameters and body shared by every kind of
// function and method.
func functionTail(cur *Cursor, name *ast.IdentifierExpr, generator, async bool) (*ast.FunctionExpr, error) {
	params, err := NewFormalParameters(AllowYield(generator), AllowAwait(async)).Parse(cur)
	if err != nil {
		return nil, err
	}
	body, err := NewFunctionBody(AllowYield(generator), AllowAwait(async)).Parse(cur)
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionExpr(name, params, body, generator, async), nil
}

// FunctionExpression parses plain, generator, async and async generator
// function expressions. The optional name is bound inside the function, so
// its reserved words follow the function's own kind.
//
//	FunctionExpression :
//	    function BindingIdentifier[~Yield, ~Await]opt ( FormalParameters[~Yield, ~Await] ) { FunctionBody[~Yield, ~Await] }
//	GeneratorExpression :
//	    function * BindingIdentifier[+Yield, ~Await]opt ( FormalParameters[+Yield, ~Await] ) { GeneratorBody }
//	AsyncFunctionExpression :
//	    async [no LineTerminator here] function BindingIdentifier[~Yield, +Await]opt ( FormalParameters[~Yield, +Await] ) { AsyncFunctionBody }
type FunctionExpression struct{}

func NewFunctionExpression() FunctionExpression {
	return FunctionExpression{}
}

func (p FunctionExpression) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("FunctionExpression")()

	async, generator, err := functionHead(cur)
	if err != nil {
		return nil, err
	}
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	var name *ast.IdentifierExpr
	if !tok.Is(token.LEFT_PAREN) {
		if name, err = NewBindingIdentifier(AllowYield(generator), AllowAwait(async)).Parse(cur); err != nil {
			return nil, err
		}
	}
	return functionTail(cur, name, generator, async)
}

// functionHead consumes `async`, `function` and `*`, reporting which of the
// optional markers were present.
func functionHead(cur *Cursor) (async, generator bool, err error) {
	tok, err := cur.Peek(0)
	if err != nil {
		return false, false, err
	}
	if tok.Is(token.ASYNC) {
		async = true
		if _, err := cur.Next(); err != nil {
			return false, false, err
		}
	}
	if _, err := cur.Expect(token.FUNCTION, "function expression"); err != nil {
		return false, false, err
	}
	if tok, err = cur.Peek(0); err != nil {
		return false, false, err
	}
	if tok.Is(token.STAR) {
		generator = true
		if _, err := cur.Next(); err != nil {
			return false, false, err
		}
	}
	return async, generator, nil
}

// ArrowFunction parses arrow functions once AssignmentExpression has seen the
// `=>` ahead. Arrow bodies never allow `yield`; they allow `await` only when
// the arrow is async.
//
//	ArrowFunction[In, Yield, Await] :
//	    ArrowParameters[?Yield, ?Await] [no LineTerminator here] => ConciseBody[?In]
//	AsyncArrowFunction[In, Yield, Await] :
//	    async [no LineTerminator here] AsyncArrowBindingIdentifier[?Yield] [no LineTerminator here] => AsyncConciseBody[?In]
//	    CoverCallExpressionAndAsyncArrowHead[?Yield, ?Await] [no LineTerminator here] => AsyncConciseBody[?In]
type ArrowFunction struct {
	allowIn    AllowIn
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewArrowFunction(allowIn AllowIn, allowYield AllowYield, allowAwait AllowAwait) ArrowFunction {
	return ArrowFunction{allowIn, allowYield, allowAwait}
}

func (p ArrowFunction) Parse(cur *Cursor) (ast.Expr, error) {
	defer cur.trace("ArrowFunction")()

	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	next, err := cur.Peek(1)
	if err != nil {
		return nil, err
	}
	async := tok.Is(token.ASYNC) && !next.Is(token.ARROW)
	if async {
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
		if tok, err = cur.Peek(0); err != nil {
			return nil, err
		}
	}

	var params []*ast.Param
	allowAwait := p.allowAwait || AllowAwait(async)
	if tok.Is(token.LEFT_PAREN) {
		if params, err = NewFormalParameters(p.allowYield, allowAwait).Parse(cur); err != nil {
			return nil, err
		}
	} else {
		name, err := NewBindingIdentifier(p.allowYield, allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		params = []*ast.Param{ast.NewParam(name, nil, false)}
	}

	arrow, err := cur.Expect(token.ARROW, "arrow function")
	if err != nil {
		return nil, err
	}
	if arrow.NewlineBefore {
		return nil, newSyntaxError(arrow, "arrow function", "Line terminator not permitted before arrow.")
	}

	if tok, err = cur.Peek(0); err != nil {
		return nil, err
	}
	if tok.Is(token.LEFT_BRACE) {
		body, err := NewFunctionBody(false, AllowAwait(async)).Parse(cur)
		if err != nil {
			return nil, err
		}
		return ast.NewArrowFunctionExpr(params, body, nil, async), nil
	}
	body, err := NewAssignmentExpression(p.allowIn, false, AllowAwait(async)).Parse(cur)
	if err != nil {
		return nil, err
	}
	return ast.NewArrowFunctionExpr(params, nil, body, async), nil
}
