package parser

import (
	"strings"
	"testing"

	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/scanner"
	"github.com/letung3105/gjs/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseScript(src string, opts ...Option) (*ast.Program, error) {
	parser := NewParser(scanner.New([]rune(src)), newMockReporter(), opts...)
	return parser.ParseScript()
}

func parseExpression(src string, opts ...Option) (ast.Expr, error) {
	parser := NewParser(scanner.New([]rune(src)), newMockReporter(), opts...)
	return parser.ParseExpression()
}

func TestParseReportsErrors(t *testing.T) {
	assert := assert.New(t)

	report := newMockReporter()
	program := NewParser(scanner.New([]rune("a +")), report).Parse()

	assert.Nil(program)
	assert.True(report.HadError())
	if assert.Len(report.errors, 1) {
		var perr *ParseError
		assert.ErrorAs(report.errors[0], &perr)
		assert.Equal(AbruptEnd, perr.Kind)
		assert.Equal("unary expression", perr.Context)
	}
}

func TestParseReturnsProgram(t *testing.T) {
	assert := assert.New(t)

	report := newMockReporter()
	program := NewParser(scanner.New([]rune("a;\nb")), report).Parse()

	assert.False(report.HadError())
	assert.Equal(ast.NewProgram([]ast.Stmt{
		ast.NewExprStmt(ident("a")),
		ast.NewExprStmt(ident("b")),
	}), program)
}

func TestParseEmptyScript(t *testing.T) {
	assert := assert.New(t)

	program, err := parseScript("  // nothing\n")
	assert.NoError(err)
	assert.Equal(ast.NewProgram([]ast.Stmt{}), program)
}

func TestParseFromTokens(t *testing.T) {
	assert := assert.New(t)

	toks := []*token.Token{
		tok(token.YIELD, "yield"),
		tok(token.STAR, "*"),
		tok(token.IDENTIFIER, "g"),
		tok(token.SEMICOLON, ";"),
		token.New(token.EOF, "", nil, 1),
	}
	program, err := NewParser(FromTokens(toks), newMockReporter(), WithGoal(GoalGenerator)).ParseScript()
	assert.NoError(err)
	assert.Equal(ast.NewProgram([]ast.Stmt{
		ast.NewExprStmt(ast.NewYieldExpr(ident("g"), true)),
	}), program)
}

func TestParseExpressionRequiresEnd(t *testing.T) {
	assert := assert.New(t)

	_, err := parseExpression("a b")
	var perr *ParseError
	assert.ErrorAs(err, &perr)
	assert.Equal(UnexpectedToken, perr.Kind)
	assert.Equal("[line 1:3] Error at 'b': Unexpected identifier, expected end of input in expression.", err.Error())

	_, err = parseExpression("")
	assert.ErrorAs(err, &perr)
	assert.Equal(AbruptEnd, perr.Kind)
}

func TestParseGoals(t *testing.T) {
	testCases := []struct {
		src  string
		goal Goal
		ok   bool
	}{
		{"return", GoalScript, false},
		{"return", GoalGenerator, true},
		{"return", GoalAsync, true},
		{"return", GoalAsyncGenerator, true},
		{"yield x", GoalScript, false},
		{"yield x", GoalGenerator, true},
		{"yield x", GoalAsync, false},
		{"yield x", GoalAsyncGenerator, true},
		{"await x", GoalScript, false},
		{"await x", GoalGenerator, false},
		{"await x", GoalAsync, true},
		{"await x", GoalAsyncGenerator, true},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := parseScript(tc.src, WithGoal(tc.goal))
		if tc.ok {
			assert.NoError(err, "%s as %s", tc.src, tc.goal)
		} else {
			assert.Error(err, "%s as %s", tc.src, tc.goal)
		}
	}
}

func TestParseGoalNames(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"script", "generator", "async", "async-generator"} {
		goal, ok := ParseGoal(name)
		assert.True(ok)
		assert.Equal(name, goal.String())
	}
	_, ok := ParseGoal("module")
	assert.False(ok)
	assert.Equal("unknown", Goal(-1).String())
}

func TestParseNestingLimit(t *testing.T) {
	testCases := []struct {
		src      string
		maxDepth int
		ok       bool
	}{
		{"[[[1]]]", 0, true},
		{"[[[1]]]", 5, true},
		{"[[[[1]]]]", 5, false},
		{"- - - 1", 5, true},
		{"- - - - 1", 5, false},
		{"new new new new F", 5, false},
		{"{{{{{}}}}}", 5, true},
		{"{{{{{{}}}}}}", 5, false},
		{"(function () { return function () {} })", 5, false},
		{strings.Repeat("(", 2000) + "1" + strings.Repeat(")", 2000), 0, false},
		{strings.Repeat("(", 2000) + "1" + strings.Repeat(")", 2000), 4096, true},
		{strings.Repeat("!", 5000) + "x", 0, false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := parseScript(tc.src, WithMaxDepth(tc.maxDepth))
		if tc.ok {
			assert.NoError(err, tc.src)
			continue
		}
		var perr *ParseError
		if assert.ErrorAs(err, &perr, tc.src) {
			assert.Equal(NestingLimit, perr.Kind, tc.src)
		}
	}
}

func TestParseNestingLimitInOperatorChains(t *testing.T) {
	testCases := []struct {
		src      string
		maxDepth int
		context  string
	}{
		{strings.Repeat("a ** ", 20000) + "a;", 100, "exponentiation expression"},
		{strings.Repeat("++", 20000) + "a;", 100, "update expression"},
		{strings.Repeat("--", 20000) + "a;", 0, "update expression"},
		{strings.Repeat("a ** ", 3000000) + "a;", 0, "exponentiation expression"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := parseScript(tc.src, WithMaxDepth(tc.maxDepth))
		var perr *ParseError
		if assert.ErrorAs(err, &perr) {
			assert.Equal(NestingLimit, perr.Kind)
			assert.Equal(tc.context, perr.Context)
		}
	}

	program, err := parseScript(strings.Repeat("a ** ", 50)+"a;", WithMaxDepth(100))
	assert.NoError(err)
	assert.NotNil(program)
}

func TestParserOptionsIgnoreInvalidValues(t *testing.T) {
	require := require.New(t)

	cfg := newConfig([]Option{WithLogger(nil), WithMaxDepth(-3)})
	require.NotNil(cfg.logger)
	require.Equal(DefaultMaxDepth, cfg.maxDepth)
	require.Equal(GoalScript, cfg.goal)
}
