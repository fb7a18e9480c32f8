package parser

import (
	"fmt"

	"github.com/letung3105/gjs/internal/token"
)

// ErrorKind classifies a syntax error.
type ErrorKind int

const (
	// UnexpectedToken means a token was present but not one the production
	// accepts at that point.
	UnexpectedToken ErrorKind = iota
	// AbruptEnd means the token stream ended while a production still
	// required input.
	AbruptEnd
	// NestingLimit means the input nests deeper than the parser's configured
	// maximum depth.
	NestingLimit
)

func (kind ErrorKind) String() string {
	switch kind {
	case UnexpectedToken:
		return "unexpected token"
	case AbruptEnd:
		return "abrupt end"
	case NestingLimit:
		return "nesting limit"
	}
	return "unknown"
}

// ParseError describes a syntax error. Token is the offending token, or the
// end-of-input token for AbruptEnd when the source supplied one. Context names
// the construct being parsed, e.g. "yield expression".
type ParseError struct {
	Kind     ErrorKind
	Token    *token.Token
	Expected string
	Context  string
	// Message replaces the generated description when set.
	Message string
}

func newUnexpectedToken(tok *token.Token, expected, context string) error {
	return &ParseError{Kind: UnexpectedToken, Token: tok, Expected: expected, Context: context}
}

func newAbruptEnd(eof *token.Token, context string) error {
	return &ParseError{Kind: AbruptEnd, Token: eof, Context: context}
}

// newSyntaxError reports an early error found on a well-formed token
// sequence, e.g. an invalid assignment target.
func newSyntaxError(tok *token.Token, context, message string) error {
	return &ParseError{Kind: UnexpectedToken, Token: tok, Context: context, Message: message}
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", err.location(), err.description())
}

func (err *ParseError) location() string {
	if err.Token == nil {
		return "Error at end"
	}
	where := fmt.Sprintf("'%s'", err.Token.Lexeme)
	if err.Kind == AbruptEnd || err.Token.Type == token.EOF {
		where = "end"
	}
	return fmt.Sprintf("[line %d:%d] Error at %s", err.Token.Line, err.Token.Column, where)
}

func (err *ParseError) description() string {
	if err.Message != "" {
		return err.Message
	}
	var desc string
	switch err.Kind {
	case AbruptEnd:
		desc = "Unexpected end of input"
	case NestingLimit:
		desc = "Too much nesting"
	default:
		desc = "Unexpected token"
		if err.Token != nil {
			desc = "Unexpected " + err.Token.Type.Describe()
		}
	}
	if err.Expected != "" {
		desc += ", expected " + err.Expected
	}
	if err.Context != "" {
		desc += " in " + err.Context
	}
	return desc + "."
}
