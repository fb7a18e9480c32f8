package parser

import (
	"testing"

	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(typ token.Type, lexeme string) *token.Token {
	return token.New(typ, lexeme, nil, 1)
}

func ident(name string) *ast.IdentifierExpr {
	return ast.NewIdentifierExpr(name)
}

func TestYieldExpressionOperand(t *testing.T) {
	testCases := []struct {
		src  string
		expr string
	}{
		{"yield", "(yield)"},
		{"yield x", "(yield x)"},
		{"yield* g()", "(yield* (call g))"},
		{"yield * g", "(yield* g)"},
		{"yield yield x", "(yield (yield x))"},
		{"yield* yield", "(yield* (yield))"},
		{"yield a, b", "(, (yield a) b)"},
		{"yield a ? b : c", "(yield (? a b c))"},
		{"yield x = 1", "(yield (= x 1))"},
		{"yield a in b", "(yield (in a b))"},
		{"x = yield", "(= x (yield))"},
		{"[yield, yield]", "(array (yield) (yield))"},
		{"f(yield)", "(call f (yield))"},
		{"(yield)", "(yield)"},
		{"({a: yield})", "(object (init a (yield)))"},
		{"x ? yield : yield", "(? x (yield) (yield))"},

		// every token that can start the operand
		{"yield (a)", "(yield a)"},
		{"yield +x", "(yield (+ x))"},
		{"yield -1", "(yield (- 1))"},
		{"yield !x", "(yield (! x))"},
		{"yield ~x", "(yield (~ x))"},
		{"yield ++x", "(yield (++ x))"},
		{"yield --x", "(yield (-- x))"},
		{"yield [1]", "(yield (array 1))"},
		{"yield {}", "(yield (object))"},
		{"yield /re/g", "(yield /re/g)"},
		{"yield await", "(yield await)"},
		{"yield delete x.y", "(yield (delete (. x y)))"},
		{"yield void 0", "(yield (void 0))"},
		{"yield typeof x", "(yield (typeof x))"},
		{"yield new F", "(yield (new F))"},
		{"yield this", "(yield this)"},
		{"yield function() {}", "(yield (function ()))"},
		{"yield class {}", "(yield (class))"},
		{"yield async () => 1", "(yield (async => () 1))"},
		{"yield async", "(yield async)"},
		{"yield true", "(yield true)"},
		{"yield false", "(yield false)"},
		{"yield null", "(yield null)"},
		{"yield 'a'", `(yield "a")`},
		{"yield 1", "(yield 1)"},
		{"yield `t`", `(yield (template "t"))`},
		{"yield `a${b}c`", `(yield (template "a" b "c"))`},
	}

	assert := assert.New(t)
	printer := &ast.Printer{}
	for _, tc := range testCases {
		expr, err := parseExpression(tc.src, WithGoal(GoalGenerator))
		if assert.NoError(err, tc.src) {
			assert.Equal(tc.expr, printer.Print(expr), tc.src)
		}
	}
}

func TestYieldExpressionLeavesFollowingToken(t *testing.T) {
	testCases := []struct {
		next *token.Token
	}{
		{tok(token.SEMICOLON, ";")},
		{tok(token.RIGHT_PAREN, ")")},
		{tok(token.RIGHT_BRACKET, "]")},
		{tok(token.RIGHT_BRACE, "}")},
		{tok(token.COLON, ":")},
		{tok(token.COMMA, ",")},
		{tok(token.IN, "in")},
		{tok(token.QUESTION, "?")},
		{tok(token.EQUAL, "=")},
		{newLineTok(token.IDENTIFIER, "x", 2)},
		{newLineTok(token.STAR, "*", 2)},
		{newLineTok(token.LEFT_PAREN, "(", 2)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		cur := NewCursor(FromTokens([]*token.Token{tok(token.YIELD, "yield"), tc.next}))

		expr, err := NewYieldExpression(true, false).Parse(cur)
		assert.NoError(err)
		assert.Equal(ast.NewYieldExpr(nil, false), expr)

		next, err := cur.Peek(0)
		assert.NoError(err)
		assert.Same(tc.next, next)
	}
}

func TestYieldExpressionAtEndOfInput(t *testing.T) {
	assert := assert.New(t)

	cur := NewCursor(FromTokens([]*token.Token{tok(token.YIELD, "yield")}))
	expr, err := NewYieldExpression(true, false).Parse(cur)
	assert.NoError(err)
	assert.Equal(ast.NewYieldExpr(nil, false), expr)

	next, err := cur.Peek(0)
	assert.NoError(err)
	assert.Nil(next)
}

func TestYieldDelegateRequiresOperand(t *testing.T) {
	assert := assert.New(t)

	cur := NewCursor(FromTokens([]*token.Token{tok(token.YIELD, "yield"), tok(token.STAR, "*")}))
	_, err := NewYieldExpression(true, false).Parse(cur)

	var perr *ParseError
	assert.ErrorAs(err, &perr)
	assert.Equal(AbruptEnd, perr.Kind)

	_, err = parseExpression("yield*", WithGoal(GoalGenerator))
	assert.ErrorAs(err, &perr)
	assert.Equal(AbruptEnd, perr.Kind)

	_, err = parseExpression("yield* ;", WithGoal(GoalGenerator))
	assert.ErrorAs(err, &perr)
	assert.Equal(UnexpectedToken, perr.Kind)
	assert.Equal("[line 1:8] Error at ';': Unexpected ';', expected expression in primary expression.", err.Error())
}

func TestYieldExpressionAllowIn(t *testing.T) {
	in := func() []*token.Token {
		return []*token.Token{
			tok(token.YIELD, "yield"),
			tok(token.IDENTIFIER, "a"),
			tok(token.IN, "in"),
			tok(token.IDENTIFIER, "b"),
		}
	}
	delegate := func() []*token.Token {
		return []*token.Token{
			tok(token.YIELD, "yield"),
			tok(token.STAR, "*"),
			tok(token.IDENTIFIER, "a"),
			tok(token.IN, "in"),
			tok(token.IDENTIFIER, "b"),
		}
	}

	testCases := []struct {
		toks    []*token.Token
		allowIn AllowIn
		expr    ast.Expr
		rest    token.Type
	}{
		{in(), true, ast.NewYieldExpr(ast.NewBinaryExpr(token.IN, ident("a"), ident("b")), false), token.EOF},
		{in(), false, ast.NewYieldExpr(ident("a"), false), token.IN},
		{delegate(), true, ast.NewYieldExpr(ast.NewBinaryExpr(token.IN, ident("a"), ident("b")), true), token.EOF},
		{delegate(), false, ast.NewYieldExpr(ast.NewBinaryExpr(token.IN, ident("a"), ident("b")), true), token.EOF},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		cur := NewCursor(FromTokens(tc.toks))
		expr, err := NewYieldExpression(tc.allowIn, false).Parse(cur)
		assert.NoError(err)
		assert.Equal(tc.expr, expr)

		next, err := cur.Peek(0)
		assert.NoError(err)
		if tc.rest == token.EOF {
			assert.Nil(next)
		} else {
			assert.Equal(tc.rest, next.Type)
		}
	}
}

func TestYieldExpressionNotYield(t *testing.T) {
	assert := assert.New(t)

	x := tok(token.IDENTIFIER, "x")
	cur := NewCursor(FromTokens([]*token.Token{x}))
	_, err := NewYieldExpression(true, false).Parse(cur)

	var perr *ParseError
	assert.ErrorAs(err, &perr)
	assert.Equal(UnexpectedToken, perr.Kind)
	assert.Equal("'yield'", perr.Expected)
	assert.Equal("yield expression", perr.Context)

	next, _ := cur.Peek(0)
	assert.Same(x, next)
}

func TestYieldInScripts(t *testing.T) {
	testCases := []struct {
		src  string
		goal Goal
		out  string
	}{
		{"yield\nx", GoalGenerator, "(yield)\nx\n"},
		{"yield;", GoalGenerator, "(yield)\n"},
		{"{ yield }", GoalGenerator, "(block (yield))\n"},
		{"yield\n* g", GoalScript, "(* yield g)\n"},
		{"for (yield* a in b;;) ;", GoalGenerator, "(for (yield* (in a b)) _ _ (empty))\n"},
		{"for (yield (a in b);;) ;", GoalGenerator, "(for (yield (in a b)) _ _ (empty))\n"},
		{"for (x of yield) ;", GoalGenerator, "(for-of x (yield) (empty))\n"},
		{"return yield x", GoalGenerator, "(return (yield x))\n"},

		// yield is an identifier outside generators
		{"yield", GoalScript, "yield\n"},
		{"yield * 2", GoalScript, "(* yield 2)\n"},
		{"var yield = 1", GoalScript, "(var (yield 1))\n"},
		{"function* yield() {}", GoalScript, "(function* yield ())\n"},
		{"function* g() { yield 1 }", GoalScript, "(function* g () (yield 1))\n"},
		{"function* g() { function f() { yield } }", GoalScript, "(function* g () (function f () yield))\n"},
		{"function* g() { () => yield }", GoalScript, "(function* g () (=> () yield))\n"},
		{"function f() { yield }", GoalGenerator, "(function f () yield)\n"},
		{"({ *g() { yield 1 } })", GoalScript, "(object (method g (function* () (yield 1))))\n"},
		{"class A { *g() { yield* x } }", GoalScript, "(class A (method g (function* () (yield* x))))\n"},
		{"async function* g() { yield await x }", GoalScript, "(async function* g () (yield (await x)))\n"},
	}

	assert := assert.New(t)
	printer := &ast.Printer{}
	for _, tc := range testCases {
		program, err := parseScript(tc.src, WithGoal(tc.goal))
		if assert.NoError(err, tc.src) {
			assert.Equal(tc.out, printer.PrintProgram(program), tc.src)
		}
	}
}

func TestYieldErrors(t *testing.T) {
	testCases := []struct {
		src  string
		goal Goal
		msg  string
	}{
		{"a + yield", GoalGenerator, "[line 1:5] Error at 'yield': Unexpected 'yield', expected expression in primary expression."},
		{"var yield = 1", GoalGenerator, "[line 1:5] Error at 'yield': Unexpected 'yield', expected identifier in binding identifier."},
		{"(function* yield() {})", GoalScript, "[line 1:12] Error at 'yield': Unexpected 'yield', expected identifier in binding identifier."},
		{"function* g(yield) {}", GoalScript, "[line 1:13] Error at 'yield': Unexpected 'yield', expected identifier in binding identifier."},
		{"yield in x", GoalGenerator, "[line 1:7] Error at 'in': Unexpected 'in', expected ';' in expression statement."},
		{"yield = 1", GoalGenerator, "[line 1:7] Error at '=': Unexpected '=', expected ';' in expression statement."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := parseScript(tc.src, WithGoal(tc.goal))
		assert.EqualError(err, tc.msg, tc.src)
	}
}

func TestYieldInNestedGenerator(t *testing.T) {
	require := require.New(t)

	program, err := parseScript("function* outer() { return function* () { yield* outer() } }")
	require.NoError(err)
	require.Len(program.Body, 1)

	outer := program.Body[0].(*ast.FunctionStmt).Func
	ret := outer.Body[0].(*ast.ReturnStmt)
	inner := ret.Val.(*ast.FunctionExpr)
	require.True(inner.Generator)

	yield := inner.Body[0].(*ast.ExprStmt).Expr.(*ast.YieldExpr)
	require.True(yield.Delegate)
	require.Equal(ast.NewCallExpr(ident("outer"), []ast.Expr{}), yield.Arg)
}
