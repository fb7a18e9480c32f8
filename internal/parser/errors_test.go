package parser

import (
	"testing"

	"github.com/letung3105/gjs/internal/token"
	"github.com/stretchr/testify/assert"
)

func tokAt(typ token.Type, lexeme string, line, column int) *token.Token {
	tok := token.New(typ, lexeme, nil, line)
	tok.Column = column
	return tok
}

func TestParseErrorMessage(t *testing.T) {
	testCases := []struct {
		err *ParseError
		msg string
	}{
		{
			&ParseError{Kind: UnexpectedToken, Token: tokAt(token.COLON, ":", 2, 7), Expected: "expression", Context: "primary expression"},
			"[line 2:7] Error at ':': Unexpected ':', expected expression in primary expression.",
		},
		{
			&ParseError{Kind: UnexpectedToken, Token: tokAt(token.IDENTIFIER, "x", 1, 9), Expected: "';'"},
			"[line 1:9] Error at 'x': Unexpected identifier, expected ';'.",
		},
		{
			&ParseError{Kind: AbruptEnd, Token: tokAt(token.EOF, "", 3, 1), Context: "yield expression"},
			"[line 3:1] Error at end: Unexpected end of input in yield expression.",
		},
		{
			&ParseError{Kind: AbruptEnd, Context: "arguments"},
			"Error at end: Unexpected end of input in arguments.",
		},
		{
			&ParseError{Kind: UnexpectedToken, Token: tokAt(token.EOF, "", 1, 4), Expected: "')'"},
			"[line 1:4] Error at end: Unexpected end of input, expected ')'.",
		},
		{
			&ParseError{Kind: NestingLimit, Token: tokAt(token.LEFT_BRACKET, "[", 1, 5), Context: "statement"},
			"[line 1:5] Error at '[': Too much nesting in statement.",
		},
		{
			&ParseError{Kind: UnexpectedToken, Token: tokAt(token.EQUAL, "=", 1, 3), Message: "Invalid left-hand side in assignment."},
			"[line 1:3] Error at '=': Invalid left-hand side in assignment.",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.msg, tc.err.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("unexpected token", UnexpectedToken.String())
	assert.Equal("abrupt end", AbruptEnd.String())
	assert.Equal("nesting limit", NestingLimit.String())
	assert.Equal("unknown", ErrorKind(42).String())
}
