package parser

import (
	"fmt"
	"time"

	"github.com/letung3105/gjs/internal/token"
	"go.uber.org/zap"
)

// DefaultMaxDepth bounds how deeply productions may recurse before the parser
// gives up with a NestingLimit error.
const DefaultMaxDepth = 1024

// TokenSource produces tokens on demand. Once the source reaches the end of
// its input it returns an EOF token on every call.
type TokenSource interface {
	Next() (*token.Token, error)
}

// FromTokens returns a source replaying an already scanned token sequence.
// A missing trailing EOF token is treated as if it were present.
func FromTokens(tokens []*token.Token) TokenSource {
	return &tokenSlice{tokens: tokens}
}

type tokenSlice struct {
	tokens  []*token.Token
	current int
}

func (src *tokenSlice) Next() (*token.Token, error) {
	if src.current >= len(src.tokens) {
		line := 1
		if n := len(src.tokens); n > 0 {
			line = src.tokens[n-1].Line
		}
		return token.New(token.EOF, "", nil, line), nil
	}
	tok := src.tokens[src.current]
	src.current++
	return tok, nil
}

// Cursor is the parser's view of the token stream. It pulls tokens lazily
// from its source into a lookahead buffer, consumes them strictly in order
// and never rewinds. A Cursor belongs to a single parse.
type Cursor struct {
	source   TokenSource
	buffered []*token.Token
	eof      *token.Token

	depth    int
	maxDepth int
	logger   *zap.Logger
}

func NewCursor(source TokenSource, opts ...Option) *Cursor {
	cfg := newConfig(opts)
	return &Cursor{source: source, maxDepth: cfg.maxDepth, logger: cfg.logger}
}

// fill buffers tokens until the one at skip is available or the source is
// exhausted.
func (cur *Cursor) fill(skip int) error {
	for len(cur.buffered) <= skip && cur.eof == nil {
		tok, err := cur.source.Next()
		if err != nil {
			return err
		}
		if tok == nil {
			tok = token.New(token.EOF, "", nil, cur.line())
		}
		if tok.Type == token.EOF {
			cur.eof = tok
			return nil
		}
		cur.buffered = append(cur.buffered, tok)
	}
	return nil
}

func (cur *Cursor) line() int {
	if n := len(cur.buffered); n > 0 {
		return cur.buffered[n-1].Line
	}
	return 1
}

// Peek returns the token skip positions ahead without consuming anything. It
// returns a nil token when the stream ends before that position.
func (cur *Cursor) Peek(skip int) (*token.Token, error) {
	if err := cur.fill(skip); err != nil {
		return nil, err
	}
	if skip >= len(cur.buffered) {
		return nil, nil
	}
	return cur.buffered[skip], nil
}

// Next consumes and returns the current token, or nil at the end of the
// stream.
func (cur *Cursor) Next() (*token.Token, error) {
	tok, err := cur.Peek(0)
	if err != nil || tok == nil {
		return nil, err
	}
	cur.buffered = cur.buffered[1:]
	return tok, nil
}

// Expect consumes the current token if it has the given type. Otherwise it
// fails with UnexpectedToken, or AbruptEnd if there is no token left, and
// leaves the stream untouched.
func (cur *Cursor) Expect(typ token.Type, context string) (*token.Token, error) {
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, cur.abruptEnd(context)
	}
	if tok.Type != typ {
		return nil, newUnexpectedToken(tok, typ.Describe(), context)
	}
	cur.buffered = cur.buffered[1:]
	return tok, nil
}

// PeekIsLineTerminator reports whether a line terminator separates the token
// at skip from the one before it. found is false when there is no token at
// skip.
func (cur *Cursor) PeekIsLineTerminator(skip int) (lineBreak bool, found bool, err error) {
	tok, err := cur.Peek(skip)
	if err != nil || tok == nil {
		return false, false, err
	}
	return tok.NewlineBefore, true, nil
}

// ExpectSemicolon terminates a statement. An explicit semicolon is consumed; a
// closing brace, a line break before the next token or the end of input
// terminate the statement without consuming anything.
func (cur *Cursor) ExpectSemicolon(context string) error {
	tok, err := cur.Peek(0)
	if err != nil {
		return err
	}
	switch {
	case tok == nil, tok.NewlineBefore, tok.Is(token.RIGHT_BRACE):
		return nil
	case tok.Is(token.SEMICOLON):
		cur.buffered = cur.buffered[1:]
		return nil
	}
	return newUnexpectedToken(tok, token.SEMICOLON.Describe(), context)
}

func (cur *Cursor) abruptEnd(context string) error {
	return newAbruptEnd(cur.eof, context)
}

// enter records one more level of nesting. Every successful call must be
// paired with leave.
func (cur *Cursor) enter(context string) error {
	if cur.depth >= cur.maxDepth {
		tok, err := cur.Peek(0)
		if err != nil {
			return err
		}
		if tok == nil {
			tok = cur.eof
		}
		return &ParseError{
			Kind:    NestingLimit,
			Token:   tok,
			Context: context,
			Message: fmt.Sprintf("Nesting deeper than %d levels in %s.", cur.maxDepth, context),
		}
	}
	cur.depth++
	return nil
}

func (cur *Cursor) leave() {
	cur.depth--
}

// trace logs entry to a production and returns the function logging its exit.
func (cur *Cursor) trace(production string) func() {
	if ce := cur.logger.Check(zap.DebugLevel, "enter"); ce != nil {
		ce.Write(zap.String("production", production), zap.Int("depth", cur.depth))
	} else {
		return func() {}
	}
	start := time.Now()
	return func() {
		cur.logger.Debug("leave",
			zap.String("production", production),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
