// Package parser implements a recursive-descent parser for ECMAScript
// expressions and the statements hosting them.
//
// Each grammar production is a small value type holding the context flags it
// was instantiated with (AllowIn, AllowYield, AllowAwait, AllowReturn) and a
// Parse method consuming tokens from a shared Cursor. Productions only look
// ahead; they never rewind the cursor.
package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
	"go.uber.org/zap"
)

// Parser composes the syntax tree of a script from a stream of tokens. The
// goal it was created with decides whether the top level behaves like a
// generator or async function body.
type Parser struct {
	cursor   *Cursor
	reporter Reporter
	goal     Goal
	logger   *zap.Logger
}

// NewParser creates a parser reading tokens from source. The scanner is the
// usual source; FromTokens replays an existing token slice.
func NewParser(source TokenSource, reporter Reporter, opts ...Option) *Parser {
	cfg := newConfig(opts)
	return &Parser{
		cursor:   NewCursor(source, opts...),
		reporter: reporter,
		goal:     cfg.goal,
		logger:   cfg.logger,
	}
}

// Parse parses a whole script. Errors go to the reporter and a nil program is
// returned.
func (parser *Parser) Parse() *ast.Program {
	program, err := parser.ParseScript()
	if err != nil {
		parser.reporter.Report(err)
		return nil
	}
	return program
}

// ParseScript parses statements until the end of input and returns the first
// error encountered.
func (parser *Parser) ParseScript() (*ast.Program, error) {
	allowYield, allowAwait, allowReturn := parser.goal.params()
	parser.logger.Debug("parse script", zap.Stringer("goal", parser.goal))

	body, err := NewStatementList(allowYield, allowAwait, allowReturn).Parse(parser.cursor, token.EOF)
	if err != nil {
		return nil, err
	}
	return ast.NewProgram(body), nil
}

// ParseExpression parses a single expression that must span the whole input.
func (parser *Parser) ParseExpression() (ast.Expr, error) {
	allowYield, allowAwait, _ := parser.goal.params()

	expr, err := NewExpression(true, allowYield, allowAwait).Parse(parser.cursor)
	if err != nil {
		return nil, err
	}
	tok, err := parser.cursor.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok != nil {
		return nil, newUnexpectedToken(tok, token.EOF.Describe(), "expression")
	}
	return expr, nil
}
