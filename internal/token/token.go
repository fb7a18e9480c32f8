package token

import "fmt"

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Type    Type
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
	// NewlineBefore is set when a line terminator appears between this token
	// and the previous one, including one inside a multi-line comment.
	NewlineBefore bool
}

// New creates a new token
func New(typ Type, lexeme string, literal interface{}, line int) *Token {
	return &Token{Type: typ, Lexeme: lexeme, Literal: literal, Line: line}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

// Is reports whether the token is of one of the given types. A nil token is
// never of any type.
func (t *Token) Is(types ...Type) bool {
	if t == nil {
		return false
	}
	for _, typ := range types {
		if t.Type == typ {
			return true
		}
	}
	return false
}

// RegExp is the literal carried by a REGEXP token.
type RegExp struct {
	Pattern string
	Flags   string
}

// Type is a just a wrapped string used to represent token's type
type Type string

const (
	// Punctuators
	LEFT_PAREN      Type = "("
	RIGHT_PAREN     Type = ")"
	LEFT_BRACE      Type = "{"
	RIGHT_BRACE     Type = "}"
	LEFT_BRACKET    Type = "["
	RIGHT_BRACKET   Type = "]"
	COMMA           Type = ","
	DOT             Type = "."
	ELLIPSIS        Type = "..."
	SEMICOLON       Type = ";"
	COLON           Type = ":"
	QUESTION        Type = "?"
	QUESTION_DOT    Type = "?."
	ARROW           Type = "=>"
	PLUS            Type = "+"
	MINUS           Type = "-"
	STAR            Type = "*"
	SLASH           Type = "/"
	PERCENT         Type = "%"
	STAR_STAR       Type = "**"
	PLUS_PLUS       Type = "++"
	MINUS_MINUS     Type = "--"
	SHL             Type = "<<"
	SHR             Type = ">>"
	USHR            Type = ">>>"
	AMP             Type = "&"
	PIPE            Type = "|"
	CARET           Type = "^"
	BANG            Type = "!"
	TILDE           Type = "~"
	AMP_AMP         Type = "&&"
	PIPE_PIPE       Type = "||"
	QUESTION_QUEST  Type = "??"
	LESS            Type = "<"
	LESS_EQUAL      Type = "<="
	GREATER         Type = ">"
	GREATER_EQUAL   Type = ">="
	EQUAL_EQUAL     Type = "=="
	BANG_EQUAL      Type = "!="
	EQUAL_EQUAL_EQ  Type = "==="
	BANG_EQUAL_EQ   Type = "!=="
	EQUAL           Type = "="
	PLUS_EQUAL      Type = "+="
	MINUS_EQUAL     Type = "-="
	STAR_EQUAL      Type = "*="
	SLASH_EQUAL     Type = "/="
	PERCENT_EQUAL   Type = "%="
	STAR_STAR_EQUAL Type = "**="
	SHL_EQUAL       Type = "<<="
	SHR_EQUAL       Type = ">>="
	USHR_EQUAL      Type = ">>>="
	AMP_EQUAL       Type = "&="
	PIPE_EQUAL      Type = "|="
	CARET_EQUAL     Type = "^="
	AMP_AMP_EQUAL   Type = "&&="
	PIPE_PIPE_EQUAL Type = "||="
	QUEST_QUEST_EQ  Type = "??="

	// Literals
	IDENTIFIER      Type = "IDENTIFIER"
	STRING          Type = "STRING"
	NUMBER          Type = "NUMBER"
	REGEXP          Type = "REGEXP"
	TEMPLATE        Type = "TEMPLATE"
	TEMPLATE_HEAD   Type = "TEMPLATE_HEAD"
	TEMPLATE_MIDDLE Type = "TEMPLATE_MIDDLE"
	TEMPLATE_TAIL   Type = "TEMPLATE_TAIL"
	TRUE            Type = "true"
	FALSE           Type = "false"
	NULL            Type = "null"

	// Keywords
	ASYNC      Type = "async"
	AWAIT      Type = "await"
	BREAK      Type = "break"
	CASE       Type = "case"
	CATCH      Type = "catch"
	CLASS      Type = "class"
	CONST      Type = "const"
	CONTINUE   Type = "continue"
	DEBUGGER   Type = "debugger"
	DEFAULT    Type = "default"
	DELETE     Type = "delete"
	DO         Type = "do"
	ELSE       Type = "else"
	EXPORT     Type = "export"
	EXTENDS    Type = "extends"
	FINALLY    Type = "finally"
	FOR        Type = "for"
	FUNCTION   Type = "function"
	IF         Type = "if"
	IMPORT     Type = "import"
	IN         Type = "in"
	INSTANCEOF Type = "instanceof"
	NEW        Type = "new"
	RETURN     Type = "return"
	SUPER      Type = "super"
	SWITCH     Type = "switch"
	THIS       Type = "this"
	THROW      Type = "throw"
	TRY        Type = "try"
	TYPEOF     Type = "typeof"
	VAR        Type = "var"
	VOID       Type = "void"
	WHILE      Type = "while"
	WITH       Type = "with"
	YIELD      Type = "yield"

	EOF Type = "EOF"
)

// Keywords maps reserved words to their token type. The literal words true,
// false and null are included so the scanner needs a single lookup.
var Keywords = map[string]Type{
	"async":      ASYNC,
	"await":      AWAIT,
	"break":      BREAK,
	"case":       CASE,
	"catch":      CATCH,
	"class":      CLASS,
	"const":      CONST,
	"continue":   CONTINUE,
	"debugger":   DEBUGGER,
	"default":    DEFAULT,
	"delete":     DELETE,
	"do":         DO,
	"else":       ELSE,
	"export":     EXPORT,
	"extends":    EXTENDS,
	"false":      FALSE,
	"finally":    FINALLY,
	"for":        FOR,
	"function":   FUNCTION,
	"if":         IF,
	"import":     IMPORT,
	"in":         IN,
	"instanceof": INSTANCEOF,
	"new":        NEW,
	"null":       NULL,
	"return":     RETURN,
	"super":      SUPER,
	"switch":     SWITCH,
	"this":       THIS,
	"throw":      THROW,
	"true":       TRUE,
	"try":        TRY,
	"typeof":     TYPEOF,
	"var":        VAR,
	"void":       VOID,
	"while":      WHILE,
	"with":       WITH,
	"yield":      YIELD,
}

// IsKeyword reports whether t is a reserved or contextual keyword.
func (t Type) IsKeyword() bool {
	switch t {
	case TRUE, FALSE, NULL:
		return false
	}
	_, ok := Keywords[string(t)]
	return ok
}

// IsAssignment reports whether t is "=" or one of the compound assignment
// operators.
func (t Type) IsAssignment() bool {
	switch t {
	case EQUAL, PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL, PERCENT_EQUAL,
		STAR_STAR_EQUAL, SHL_EQUAL, SHR_EQUAL, USHR_EQUAL, AMP_EQUAL, PIPE_EQUAL,
		CARET_EQUAL, AMP_AMP_EQUAL, PIPE_PIPE_EQUAL, QUEST_QUEST_EQ:
		return true
	}
	return false
}

// Describe returns the form used in diagnostics: punctuators and keywords
// are quoted, token classes are spelled out.
func (t Type) Describe() string {
	switch t {
	case IDENTIFIER:
		return "identifier"
	case STRING:
		return "string literal"
	case NUMBER:
		return "numeric literal"
	case REGEXP:
		return "regular expression"
	case TEMPLATE, TEMPLATE_HEAD, TEMPLATE_MIDDLE, TEMPLATE_TAIL:
		return "template literal"
	case EOF:
		return "end of input"
	}
	return fmt.Sprintf("'%s'", string(t))
}
