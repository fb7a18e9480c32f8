package scanner

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/letung3105/gjs/internal/token"
)

// Error is a lexical error with the position where scanning stopped.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (err *Error) Error() string {
	return fmt.Sprintf("[line %d:%d] Error: %s", err.Line, err.Column, err.Message)
}

// Scanner produces ECMAScript tokens from the input source on demand. Tokens
// are produced one at a time so that a parser only pays for the lookahead it
// actually uses.
type Scanner struct {
	line    int
	column  int
	start   int
	current int
	source  []rune

	startLine   int
	startColumn int
	// a line terminator was skipped since the last emitted token
	newline bool
	// type of the last emitted token, empty before the first one
	prev token.Type
	// one entry per open brace; true marks a "${" template substitution
	braces []bool
	eof    *token.Token
}

// New creates a new ECMAScript token scanner
func New(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.column = 1
	scanner.source = source
	return scanner
}

// Scan reads the whole source and collects all the tokens that were found,
// the last one always being EOF.
func (scanner *Scanner) Scan() ([]*token.Token, error) {
	tokens := make([]*token.Token, 0)
	for {
		tok, err := scanner.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// Next returns the next token in the source. Once the input is exhausted it
// keeps returning the same EOF token.
func (scanner *Scanner) Next() (*token.Token, error) {
	if scanner.eof != nil {
		return scanner.eof, nil
	}
	if err := scanner.skipTrivia(); err != nil {
		return nil, err
	}

	scanner.start = scanner.current
	scanner.startLine = scanner.line
	scanner.startColumn = scanner.column
	if !scanner.hasNext() {
		scanner.eof = scanner.emit(token.EOF, nil)
		return scanner.eof, nil
	}

	switch r := scanner.advance(); r {
	case '(':
		return scanner.emit(token.LEFT_PAREN, nil), nil
	case ')':
		return scanner.emit(token.RIGHT_PAREN, nil), nil
	case '[':
		return scanner.emit(token.LEFT_BRACKET, nil), nil
	case ']':
		return scanner.emit(token.RIGHT_BRACKET, nil), nil
	case ';':
		return scanner.emit(token.SEMICOLON, nil), nil
	case ',':
		return scanner.emit(token.COMMA, nil), nil
	case ':':
		return scanner.emit(token.COLON, nil), nil
	case '~':
		return scanner.emit(token.TILDE, nil), nil
	case '{':
		scanner.braces = append(scanner.braces, false)
		return scanner.emit(token.LEFT_BRACE, nil), nil
	case '}':
		if n := len(scanner.braces); n > 0 {
			substitution := scanner.braces[n-1]
			scanner.braces = scanner.braces[:n-1]
			if substitution {
				return scanner.scanTemplate(false)
			}
		}
		return scanner.emit(token.RIGHT_BRACE, nil), nil
	case '.':
		if isDecimalDigit(scanner.peek()) {
			return scanner.scanNumber(r)
		}
		if scanner.peek() == '.' && scanner.peekNext() == '.' {
			scanner.advance()
			scanner.advance()
			return scanner.emit(token.ELLIPSIS, nil), nil
		}
		return scanner.emit(token.DOT, nil), nil
	case '?':
		if scanner.peek() == '.' && !isDecimalDigit(scanner.peekNext()) {
			scanner.advance()
			return scanner.emit(token.QUESTION_DOT, nil), nil
		}
		if scanner.match('?') {
			return scanner.emitOr('=', token.QUEST_QUEST_EQ, token.QUESTION_QUEST), nil
		}
		return scanner.emit(token.QUESTION, nil), nil
	case '=':
		if scanner.match('>') {
			return scanner.emit(token.ARROW, nil), nil
		}
		if scanner.match('=') {
			return scanner.emitOr('=', token.EQUAL_EQUAL_EQ, token.EQUAL_EQUAL), nil
		}
		return scanner.emit(token.EQUAL, nil), nil
	case '!':
		if scanner.match('=') {
			return scanner.emitOr('=', token.BANG_EQUAL_EQ, token.BANG_EQUAL), nil
		}
		return scanner.emit(token.BANG, nil), nil
	case '+':
		if scanner.match('+') {
			return scanner.emit(token.PLUS_PLUS, nil), nil
		}
		return scanner.emitOr('=', token.PLUS_EQUAL, token.PLUS), nil
	case '-':
		if scanner.match('-') {
			return scanner.emit(token.MINUS_MINUS, nil), nil
		}
		return scanner.emitOr('=', token.MINUS_EQUAL, token.MINUS), nil
	case '*':
		if scanner.match('*') {
			return scanner.emitOr('=', token.STAR_STAR_EQUAL, token.STAR_STAR), nil
		}
		return scanner.emitOr('=', token.STAR_EQUAL, token.STAR), nil
	case '%':
		return scanner.emitOr('=', token.PERCENT_EQUAL, token.PERCENT), nil
	case '^':
		return scanner.emitOr('=', token.CARET_EQUAL, token.CARET), nil
	case '&':
		if scanner.match('&') {
			return scanner.emitOr('=', token.AMP_AMP_EQUAL, token.AMP_AMP), nil
		}
		return scanner.emitOr('=', token.AMP_EQUAL, token.AMP), nil
	case '|':
		if scanner.match('|') {
			return scanner.emitOr('=', token.PIPE_PIPE_EQUAL, token.PIPE_PIPE), nil
		}
		return scanner.emitOr('=', token.PIPE_EQUAL, token.PIPE), nil
	case '<':
		if scanner.match('<') {
			return scanner.emitOr('=', token.SHL_EQUAL, token.SHL), nil
		}
		return scanner.emitOr('=', token.LESS_EQUAL, token.LESS), nil
	case '>':
		if scanner.match('>') {
			if scanner.match('>') {
				return scanner.emitOr('=', token.USHR_EQUAL, token.USHR), nil
			}
			return scanner.emitOr('=', token.SHR_EQUAL, token.SHR), nil
		}
		return scanner.emitOr('=', token.GREATER_EQUAL, token.GREATER), nil
	case '/':
		if regexAllowedAfter(scanner.prev) {
			return scanner.scanRegExp()
		}
		return scanner.emitOr('=', token.SLASH_EQUAL, token.SLASH), nil
	case '"', '\'':
		return scanner.scanString(r)
	case '`':
		return scanner.scanTemplate(true)
	default:
		if isDecimalDigit(r) {
			return scanner.scanNumber(r)
		}
		if isIdentifierStart(r) {
			return scanner.scanIdentifier(), nil
		}
		return nil, scanner.errorf("Unexpected character %q.", r)
	}
}

// regexAllowedAfter decides between a division operator and the start of a
// regular expression from the previous token alone: a '/' can only divide
// when the previous token could have ended an expression. A ')' closing an
// `if (...)`/`while (...)` head or a '}' closing a block therefore always
// yields division, so `if (x) /re/.test(s)` mis-scans.
func regexAllowedAfter(prev token.Type) bool {
	switch prev {
	case token.IDENTIFIER, token.NUMBER, token.STRING, token.REGEXP,
		token.TEMPLATE, token.TEMPLATE_TAIL, token.TRUE, token.FALSE, token.NULL,
		token.THIS, token.SUPER, token.RIGHT_PAREN, token.RIGHT_BRACKET,
		token.RIGHT_BRACE, token.PLUS_PLUS, token.MINUS_MINUS:
		return false
	}
	return true
}

// skipTrivia consumes whitespaces, line terminators and comments, recording
// whether a line terminator was crossed.
func (scanner *Scanner) skipTrivia() error {
	for scanner.hasNext() {
		r := scanner.peek()
		switch {
		case isLineTerminator(r):
			scanner.newline = true
			scanner.advance()
		case isWhitespace(r):
			scanner.advance()
		case r == '/' && scanner.peekNext() == '/':
			for scanner.hasNext() && !isLineTerminator(scanner.peek()) {
				scanner.advance()
			}
		case r == '/' && scanner.peekNext() == '*':
			if err := scanner.skipMultilineComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (scanner *Scanner) skipMultilineComment() error {
	line, column := scanner.line, scanner.column
	scanner.advance()
	scanner.advance()
	for scanner.hasNext() {
		r := scanner.advance()
		if isLineTerminator(r) {
			scanner.newline = true
		}
		if r == '*' && scanner.peek() == '/' {
			scanner.advance()
			return nil
		}
	}
	return &Error{line, column, "Unterminated multiline comment."}
}

// scanString reads a string literal. U+2028 and U+2029 are allowed in the
// literal; only a line feed or carriage return ends it early.
func (scanner *Scanner) scanString(quote rune) (*token.Token, error) {
	var literal []rune
	for {
		if !scanner.hasNext() || scanner.peek() == '\n' || scanner.peek() == '\r' {
			return nil, scanner.errorf("Unterminated string.")
		}
		r := scanner.advance()
		if r == quote {
			break
		}
		if r != '\\' {
			literal = append(literal, r)
			continue
		}
		var err error
		if literal, err = scanner.scanEscape(literal); err != nil {
			return nil, err
		}
	}
	return scanner.emit(token.STRING, string(literal)), nil
}

// scanTemplate reads a template chunk up to the closing backtick or the next
// substitution. head is true when the chunk was opened by a backtick rather
// than by the '}' closing a substitution.
func (scanner *Scanner) scanTemplate(head bool) (*token.Token, error) {
	var cooked []rune
	for {
		if !scanner.hasNext() {
			return nil, scanner.errorf("Unterminated template.")
		}
		r := scanner.advance()
		switch {
		case r == '`':
			if head {
				return scanner.emit(token.TEMPLATE, string(cooked)), nil
			}
			return scanner.emit(token.TEMPLATE_TAIL, string(cooked)), nil
		case r == '$' && scanner.peek() == '{':
			scanner.advance()
			scanner.braces = append(scanner.braces, true)
			if head {
				return scanner.emit(token.TEMPLATE_HEAD, string(cooked)), nil
			}
			return scanner.emit(token.TEMPLATE_MIDDLE, string(cooked)), nil
		case r == '\\':
			var err error
			if cooked, err = scanner.scanEscape(cooked); err != nil {
				return nil, err
			}
		case r == '\r':
			// template values normalise CRLF and CR to LF
			scanner.match('\n')
			cooked = append(cooked, '\n')
		default:
			cooked = append(cooked, r)
		}
	}
}

// scanEscape decodes the escape sequence following a consumed backslash and
// appends the result to literal.
func (scanner *Scanner) scanEscape(literal []rune) ([]rune, error) {
	if !scanner.hasNext() {
		return nil, scanner.errorf("Unterminated string.")
	}
	switch r := scanner.advance(); r {
	case 'n':
		return append(literal, '\n'), nil
	case 't':
		return append(literal, '\t'), nil
	case 'r':
		return append(literal, '\r'), nil
	case 'b':
		return append(literal, '\b'), nil
	case 'f':
		return append(literal, '\f'), nil
	case 'v':
		return append(literal, '\v'), nil
	case '0':
		if isDecimalDigit(scanner.peek()) {
			return nil, scanner.errorf("Octal escape sequences are not allowed.")
		}
		return append(literal, 0), nil
	case 'x':
		code, err := scanner.scanHex(2)
		if err != nil {
			return nil, err
		}
		return append(literal, code), nil
	case 'u':
		var code rune
		var err error
		if scanner.match('{') {
			code, err = scanner.scanCodePoint()
		} else {
			code, err = scanner.scanHex(4)
		}
		if err != nil {
			return nil, err
		}
		if n := len(literal); n > 0 && utf16.IsSurrogate(literal[n-1]) && utf16.IsSurrogate(code) {
			if pair := utf16.DecodeRune(literal[n-1], code); pair != unicode.ReplacementChar {
				literal[n-1] = pair
				return literal, nil
			}
		}
		return append(literal, code), nil
	case '\r':
		// line continuation
		scanner.match('\n')
		return literal, nil
	case '\n', '\u2028', '\u2029':
		return literal, nil
	default:
		return append(literal, r), nil
	}
}

func (scanner *Scanner) scanHex(digits int) (rune, error) {
	var code rune
	for i := 0; i < digits; i++ {
		r := scanner.peek()
		if !isHexDigit(r) {
			return 0, scanner.errorf("Invalid hexadecimal escape sequence.")
		}
		scanner.advance()
		code = code*16 + hexValue(r)
	}
	return code, nil
}

func (scanner *Scanner) scanCodePoint() (rune, error) {
	var code rune
	digits := 0
	for isHexDigit(scanner.peek()) {
		code = code*16 + hexValue(scanner.advance())
		digits++
		if code > unicode.MaxRune {
			return 0, scanner.errorf("Undefined Unicode code-point.")
		}
	}
	if digits == 0 || !scanner.match('}') {
		return 0, scanner.errorf("Invalid Unicode escape sequence.")
	}
	return code, nil
}

func (scanner *Scanner) scanRegExp() (*token.Token, error) {
	inClass := false
	for closed := false; !closed; {
		if !scanner.hasNext() || isLineTerminator(scanner.peek()) {
			return nil, scanner.errorf("Unterminated regular expression.")
		}
		switch r := scanner.advance(); r {
		case '\\':
			if !scanner.hasNext() || isLineTerminator(scanner.peek()) {
				return nil, scanner.errorf("Unterminated regular expression.")
			}
			scanner.advance()
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			closed = !inClass
		}
	}
	pattern := string(scanner.source[scanner.start+1 : scanner.current-1])
	flagsStart := scanner.current
	for isIdentifierPart(scanner.peek()) {
		scanner.advance()
	}
	flags := string(scanner.source[flagsStart:scanner.current])
	return scanner.emit(token.REGEXP, token.RegExp{Pattern: pattern, Flags: flags}), nil
}

// scanNumber reads a numeric literal whose first rune has already been
// consumed.
func (scanner *Scanner) scanNumber(first rune) (*token.Token, error) {
	if first == '0' {
		base := 0
		switch scanner.peek() {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			scanner.advance()
			return scanner.scanRadixNumber(base)
		}
	}

	if first != '.' {
		scanner.scanDigits(isDecimalDigit)
		if scanner.peek() == '.' {
			scanner.advance()
		}
	}
	scanner.scanDigits(isDecimalDigit)
	if r := scanner.peek(); r == 'e' || r == 'E' {
		scanner.advance()
		if r := scanner.peek(); r == '+' || r == '-' {
			scanner.advance()
		}
		if !isDecimalDigit(scanner.peek()) {
			return nil, scanner.errorf("Missing exponent digits.")
		}
		scanner.scanDigits(isDecimalDigit)
	}
	if err := scanner.checkNumberEnd(); err != nil {
		return nil, err
	}

	lexeme := strings.ReplaceAll(string(scanner.source[scanner.start:scanner.current]), "_", "")
	// NOTE: the lexeme was validated above, ParseFloat only fails on range
	// errors where it still returns the correctly rounded infinity.
	literal, _ := strconv.ParseFloat(lexeme, 64)
	return scanner.emit(token.NUMBER, literal), nil
}

func (scanner *Scanner) scanRadixNumber(base int) (*token.Token, error) {
	isDigit := func(r rune) bool {
		switch base {
		case 2:
			return r == '0' || r == '1'
		case 8:
			return r >= '0' && r <= '7'
		}
		return isHexDigit(r)
	}
	digitsStart := scanner.current
	scanner.scanDigits(isDigit)
	if scanner.current == digitsStart {
		return nil, scanner.errorf("Missing digits after radix prefix.")
	}
	if err := scanner.checkNumberEnd(); err != nil {
		return nil, err
	}

	digits := strings.ReplaceAll(string(scanner.source[digitsStart:scanner.current]), "_", "")
	value, _ := new(big.Int).SetString(digits, base)
	literal, _ := new(big.Float).SetInt(value).Float64()
	return scanner.emit(token.NUMBER, literal), nil
}

// scanDigits consumes digits accepted by isDigit, allowing single '_'
// separators between them.
func (scanner *Scanner) scanDigits(isDigit func(rune) bool) {
	for {
		r := scanner.peek()
		if isDigit(r) {
			scanner.advance()
			continue
		}
		if r == '_' && scanner.current > scanner.start && isDigit(scanner.source[scanner.current-1]) && isDigit(scanner.peekNext()) {
			scanner.advance()
			continue
		}
		return
	}
}

func (scanner *Scanner) checkNumberEnd() error {
	if scanner.peek() == 'n' {
		return scanner.errorf("BigInt literals are not supported.")
	}
	if isIdentifierStart(scanner.peek()) || isDecimalDigit(scanner.peek()) {
		return scanner.errorf("Identifier starts immediately after numeric literal.")
	}
	return nil
}

func (scanner *Scanner) scanIdentifier() *token.Token {
	for isIdentifierPart(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tokenType, isKeyword := token.Keywords[lexeme]
	if !isKeyword {
		return scanner.emit(token.IDENTIFIER, nil)
	}
	switch tokenType {
	case token.TRUE:
		return scanner.emit(tokenType, true)
	case token.FALSE:
		return scanner.emit(tokenType, false)
	}
	return scanner.emit(tokenType, nil)
}

// emit creates the token spanning from `start` to `current`.
func (scanner *Scanner) emit(typ token.Type, literal interface{}) *token.Token {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := token.New(typ, lexeme, literal, scanner.startLine)
	tok.Column = scanner.startColumn
	tok.NewlineBefore = scanner.newline
	scanner.newline = false
	scanner.prev = typ
	return tok
}

// emitOr emits `matched` if the next rune is `next`, consuming it, and
// `otherwise` if it is not.
func (scanner *Scanner) emitOr(next rune, matched, otherwise token.Type) *token.Token {
	if scanner.match(next) {
		return scanner.emit(matched, nil)
	}
	return scanner.emit(otherwise, nil)
}

func (scanner *Scanner) errorf(format string, args ...interface{}) error {
	return &Error{scanner.line, scanner.column, fmt.Sprintf(format, args...)}
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position, keeping
// the line and column counters up to date.
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	switch {
	case r == '\r' && scanner.peek() == '\n':
		scanner.column++
	case isLineTerminator(r):
		scanner.line++
		scanner.column = 1
	default:
		scanner.column++
	}
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() || scanner.source[scanner.current] != expected {
		return false
	}
	scanner.advance()
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\u00a0', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDecimalDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexValue(r rune) rune {
	switch {
	case r >= 'a':
		return r - 'a' + 10
	case r >= 'A':
		return r - 'A' + 10
	}
	return r - '0'
}

func isIdentifierStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc) ||
		r == '\u200c' || r == '\u200d'
}
