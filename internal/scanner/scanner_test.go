package scanner

import (
	"math"
	"testing"

	"github.com/letung3105/gjs/internal/token"
	"github.com/stretchr/testify/assert"
)

func scanTypes(t *testing.T, src string) []token.Type {
	toks, err := New([]rune(src)).Scan()
	assert.Nil(t, err, src)
	types := make([]token.Type, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	return types
}

func TestScanPunctuators(t *testing.T) {
	testCases := []struct {
		src   string
		types []token.Type
	}{
		{"( ) { } [ ]", []token.Type{token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE, token.LEFT_BRACKET, token.RIGHT_BRACKET, token.EOF}},
		{", . ... ; : ? ?. =>", []token.Type{token.COMMA, token.DOT, token.ELLIPSIS, token.SEMICOLON, token.COLON, token.QUESTION, token.QUESTION_DOT, token.ARROW, token.EOF}},
		{"+ - * % ** ++ --", []token.Type{token.PLUS, token.MINUS, token.STAR, token.PERCENT, token.STAR_STAR, token.PLUS_PLUS, token.MINUS_MINUS, token.EOF}},
		{"<< >> >>> & | ^ ! ~", []token.Type{token.SHL, token.SHR, token.USHR, token.AMP, token.PIPE, token.CARET, token.BANG, token.TILDE, token.EOF}},
		{"&& || ??", []token.Type{token.AMP_AMP, token.PIPE_PIPE, token.QUESTION_QUEST, token.EOF}},
		{"< <= > >= == != === !==", []token.Type{token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL, token.EQUAL_EQUAL, token.BANG_EQUAL, token.EQUAL_EQUAL_EQ, token.BANG_EQUAL_EQ, token.EOF}},
		{"= += -= *= %= **=", []token.Type{token.EQUAL, token.PLUS_EQUAL, token.MINUS_EQUAL, token.STAR_EQUAL, token.PERCENT_EQUAL, token.STAR_STAR_EQUAL, token.EOF}},
		{"<<= >>= >>>= &= |= ^= &&= ||= ??=", []token.Type{token.SHL_EQUAL, token.SHR_EQUAL, token.USHR_EQUAL, token.AMP_EQUAL, token.PIPE_EQUAL, token.CARET_EQUAL, token.AMP_AMP_EQUAL, token.PIPE_PIPE_EQUAL, token.QUEST_QUEST_EQ, token.EOF}},
		// longest match
		{"a+++b", []token.Type{token.IDENTIFIER, token.PLUS_PLUS, token.PLUS, token.IDENTIFIER, token.EOF}},
		{"yield*g", []token.Type{token.YIELD, token.STAR, token.IDENTIFIER, token.EOF}},
		// "?." followed by a digit is a conditional
		{"a?.5:1", []token.Type{token.IDENTIFIER, token.QUESTION, token.NUMBER, token.COLON, token.NUMBER, token.EOF}},
		{"", []token.Type{token.EOF}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.types, scanTypes(t, tc.src), tc.src)
	}
}

func TestScanKeywords(t *testing.T) {
	testCases := []struct {
		src string
		typ token.Type
	}{
		{"yield", token.YIELD},
		{"await", token.AWAIT},
		{"async", token.ASYNC},
		{"function", token.FUNCTION},
		{"class", token.CLASS},
		{"typeof", token.TYPEOF},
		{"instanceof", token.INSTANCEOF},
		{"in", token.IN},
		{"this", token.THIS},
		{"null", token.NULL},
		// contextual words stay identifiers
		{"let", token.IDENTIFIER},
		{"of", token.IDENTIFIER},
		{"get", token.IDENTIFIER},
		{"static", token.IDENTIFIER},
		{"yields", token.IDENTIFIER},
		{"$_a1", token.IDENTIFIER},
		{"\u00e9t\u00e9", token.IDENTIFIER},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := New([]rune(tc.src)).Scan()
		assert.Nil(err)
		assert.Len(toks, 2)
		assert.Equal(tc.typ, toks[0].Type, tc.src)
		assert.Equal(tc.src, toks[0].Lexeme)
	}
}

func TestScanLiterals(t *testing.T) {
	testCases := []struct {
		src     string
		typ     token.Type
		literal interface{}
	}{
		{"10", token.NUMBER, 10.0},
		{"0.5", token.NUMBER, 0.5},
		{".5", token.NUMBER, 0.5},
		{"5.", token.NUMBER, 5.0},
		{"1e3", token.NUMBER, 1000.0},
		{"1.5E-2", token.NUMBER, 0.015},
		{"1_000_000", token.NUMBER, 1000000.0},
		{"0x1F", token.NUMBER, 31.0},
		{"0o17", token.NUMBER, 15.0},
		{"0b101", token.NUMBER, 5.0},
		{"0xFFFF_FFFF", token.NUMBER, 4294967295.0},
		{"1e999", token.NUMBER, math.Inf(1)},
		{`""`, token.STRING, ""},
		{`'abc'`, token.STRING, "abc"},
		{`"a\"b"`, token.STRING, `a"b`},
		{`"\n\t\r\b\f\v\0"`, token.STRING, "\n\t\r\b\f\v\x00"},
		{`"\x41B\u{43}"`, token.STRING, "ABC"},
		{"\"\U0001F600\"", token.STRING, "\U0001F600"},
		{"\"a\\\nb\"", token.STRING, "ab"},
		{"\"a\u2028b\"", token.STRING, "a\u2028b"},
		{"'a\u2029b'", token.STRING, "a\u2029b"},
		{`"\q"`, token.STRING, "q"},
		{"true", token.TRUE, true},
		{"false", token.FALSE, false},
		{"null", token.NULL, nil},
		{"`abc`", token.TEMPLATE, "abc"},
		{"`a\\`b`", token.TEMPLATE, "a`b"},
		{"`a\r\nb`", token.TEMPLATE, "a\nb"},
		{"/ab+c/gi", token.REGEXP, token.RegExp{Pattern: "ab+c", Flags: "gi"}},
		{"/[/]\\//", token.REGEXP, token.RegExp{Pattern: "[/]\\/", Flags: ""}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := New([]rune(tc.src)).Scan()
		if !assert.Nil(err, tc.src) {
			continue
		}
		assert.Len(toks, 2, tc.src)
		assert.Equal(tc.typ, toks[0].Type, tc.src)
		assert.Equal(tc.literal, toks[0].Literal, tc.src)
		assert.Equal(tc.src, toks[0].Lexeme, tc.src)
	}
}

func TestScanTemplateSubstitutions(t *testing.T) {
	assert := assert.New(t)

	toks, err := New([]rune("`a${b}c${ {d: 1} }e`")).Scan()
	assert.Nil(err)

	types := make([]token.Type, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal([]token.Type{
		token.TEMPLATE_HEAD, token.IDENTIFIER, token.TEMPLATE_MIDDLE,
		token.LEFT_BRACE, token.IDENTIFIER, token.COLON, token.NUMBER, token.RIGHT_BRACE,
		token.TEMPLATE_TAIL, token.EOF,
	}, types)
	assert.Equal("a", toks[0].Literal)
	assert.Equal("c", toks[2].Literal)
	assert.Equal("e", toks[8].Literal)
}

func TestScanRegExpOrDivision(t *testing.T) {
	testCases := []struct {
		src   string
		types []token.Type
	}{
		{"a / b", []token.Type{token.IDENTIFIER, token.SLASH, token.IDENTIFIER, token.EOF}},
		{"a /= b", []token.Type{token.IDENTIFIER, token.SLASH_EQUAL, token.IDENTIFIER, token.EOF}},
		{"1 / 2 / 3", []token.Type{token.NUMBER, token.SLASH, token.NUMBER, token.SLASH, token.NUMBER, token.EOF}},
		{"(a) / b", []token.Type{token.LEFT_PAREN, token.IDENTIFIER, token.RIGHT_PAREN, token.SLASH, token.IDENTIFIER, token.EOF}},
		{"x = /a/", []token.Type{token.IDENTIFIER, token.EQUAL, token.REGEXP, token.EOF}},
		{"yield /a/g", []token.Type{token.YIELD, token.REGEXP, token.EOF}},
		{"(/a/)", []token.Type{token.LEFT_PAREN, token.REGEXP, token.RIGHT_PAREN, token.EOF}},
		{"/=a/", []token.Type{token.REGEXP, token.EOF}},
		{"a // comment", []token.Type{token.IDENTIFIER, token.EOF}},
		{"a /* comment */ / b", []token.Type{token.IDENTIFIER, token.SLASH, token.IDENTIFIER, token.EOF}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.types, scanTypes(t, tc.src), tc.src)
	}
}

func TestScanNewlineBefore(t *testing.T) {
	testCases := []struct {
		src      string
		newlines []bool
	}{
		{"a b", []bool{false, false, false}},
		{"a\nb", []bool{false, true, false}},
		{"a\r\nb", []bool{false, true, false}},
		{"a\u2028b", []bool{false, true, false}},
		{"a\u2029b", []bool{false, true, false}},
		{"a // x\nb", []bool{false, true, false}},
		{"a /* x */ b", []bool{false, false, false}},
		{"a /* \n */ b", []bool{false, true, false}},
		{"\na", []bool{true, false}},
		{"a\n", []bool{false, true}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := New([]rune(tc.src)).Scan()
		assert.Nil(err)
		newlines := make([]bool, 0, len(toks))
		for _, tok := range toks {
			newlines = append(newlines, tok.NewlineBefore)
		}
		assert.Equal(tc.newlines, newlines, "%q", tc.src)
	}
}

func TestScanPositions(t *testing.T) {
	assert := assert.New(t)

	toks, err := New([]rune("yield\n  *\r\n\tg")).Scan()
	assert.Nil(err)
	assert.Len(toks, 4)

	positions := [][2]int{{1, 1}, {2, 3}, {3, 2}, {3, 3}}
	for i, tok := range toks {
		assert.Equal(positions[i][0], tok.Line, tok.String())
		assert.Equal(positions[i][1], tok.Column, tok.String())
	}
}

func TestScanErrors(t *testing.T) {
	testCases := []struct {
		src string
		err string
	}{
		{`"abc`, "[line 1:5] Error: Unterminated string."},
		{"'a\nb'", "[line 1:3] Error: Unterminated string."},
		{"'a\rb'", "[line 1:3] Error: Unterminated string."},
		{"`abc", "[line 1:5] Error: Unterminated template."},
		{"/abc", "[line 1:5] Error: Unterminated regular expression."},
		{"/* abc", "[line 1:1] Error: Unterminated multiline comment."},
		{`"\x4"`, "[line 1:5] Error: Invalid hexadecimal escape sequence."},
		{`"\u{110000}"`, "[line 1:11] Error: Undefined Unicode code-point."},
		{`"\01"`, "[line 1:4] Error: Octal escape sequences are not allowed."},
		{"10n", "[line 1:3] Error: BigInt literals are not supported."},
		{"3in x", "[line 1:2] Error: Identifier starts immediately after numeric literal."},
		{"0x", "[line 1:3] Error: Missing digits after radix prefix."},
		{"1e+", "[line 1:4] Error: Missing exponent digits."},
		{"#", "[line 1:2] Error: Unexpected character '#'."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := New([]rune(tc.src)).Scan()
		if assert.NotNil(err, tc.src) {
			assert.Equal(tc.err, err.Error(), tc.src)
			assert.IsType(&Error{}, err)
		}
	}
}

func TestNextRepeatsEOF(t *testing.T) {
	assert := assert.New(t)

	scan := New([]rune("a"))
	tok, err := scan.Next()
	assert.Nil(err)
	assert.Equal(token.IDENTIFIER, tok.Type)

	first, err := scan.Next()
	assert.Nil(err)
	assert.Equal(token.EOF, first.Type)

	second, err := scan.Next()
	assert.Nil(err)
	assert.Same(first, second)
}
