package parser

import (
	"github.com/letung3105/gjs/internal/ast"
	"github.com/letung3105/gjs/internal/token"
)

// StatementList parses statements until the given closing token, which is
// left unconsumed. With token.EOF it runs to the end of input.
type StatementList struct {
	allowYield  AllowYield
	allowAwait  AllowAwait
	allowReturn AllowReturn
}

func NewStatementList(allowYield AllowYield, allowAwait AllowAwait, allowReturn AllowReturn) StatementList {
	return StatementList{allowYield, allowAwait, allowReturn}
}

func (p StatementList) Parse(cur *Cursor, end token.Type) ([]ast.Stmt, error) {
	defer cur.trace("StatementList")()

	stmts := []ast.Stmt{}
	item := NewStatementListItem(p.allowYield, p.allowAwait, p.allowReturn)
	for {
		tok, err := cur.Peek(0)
		if err != nil {
			return nil, err
		}
		if tok == nil {
			if end == token.EOF {
				return stmts, nil
			}
			return nil, cur.abruptEnd("statement list")
		}
		if tok.Is(end) {
			return stmts, nil
		}
		stmt, err := item.Parse(cur)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// StatementListItem parses a declaration or a statement.
//
//	StatementListItem[Yield, Await, Return] :
//	    Statement[?Yield, ?Await, ?Return]
//	    Declaration[?Yield, ?Await]
type StatementListItem struct {
	allowYield  AllowYield
	allowAwait  AllowAwait
	allowReturn AllowReturn
}

func NewStatementListItem(allowYield AllowYield, allowAwait AllowAwait, allowReturn AllowReturn) StatementListItem {
	return StatementListItem{allowYield, allowAwait, allowReturn}
}

func (p StatementListItem) Parse(cur *Cursor) (ast.Stmt, error) {
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	decl, err := isDeclaration(cur, tok)
	if err != nil {
		return nil, err
	}
	if !decl {
		return NewStatement(p.allowYield, p.allowAwait, p.allowReturn).Parse(cur)
	}
	switch {
	case tok.Is(token.CLASS):
		return NewClassDeclaration(p.allowYield, p.allowAwait).Parse(cur)
	case tok.Is(token.FUNCTION, token.ASYNC):
		return NewFunctionDeclaration(p.allowYield, p.allowAwait).Parse(cur)
	}
	stmt, err := NewVariableDeclarationList(true, p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	if err := checkConstInitialized(tok, stmt); err != nil {
		return nil, err
	}
	if err := cur.ExpectSemicolon("lexical declaration"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// isDeclaration reports whether the tokens at the cursor start a function,
// class or lexical declaration.
func isDeclaration(cur *Cursor, tok *token.Token) (bool, error) {
	switch {
	case tok.Is(token.FUNCTION, token.CLASS, token.CONST):
		return true, nil
	case tok.Is(token.ASYNC):
		next, err := cur.Peek(1)
		if err != nil {
			return false, err
		}
		return next.Is(token.FUNCTION) && !next.NewlineBefore, nil
	case isContextual(tok, "let"):
		return letDeclarationAhead(cur)
	}
	return false, nil
}

// letDeclarationAhead reports whether a `let` at the cursor starts a
// declaration rather than being used as an identifier.
func letDeclarationAhead(cur *Cursor) (bool, error) {
	next, err := cur.Peek(1)
	if err != nil {
		return false, err
	}
	return next.Is(token.IDENTIFIER, token.YIELD, token.AWAIT, token.ASYNC, token.LEFT_BRACKET, token.LEFT_BRACE), nil
}

func checkConstInitialized(keyword *token.Token, stmt *ast.VarStmt) error {
	if stmt.Kind != "const" {
		return nil
	}
	for _, decl := range stmt.Decls {
		if decl.Init == nil {
			return newSyntaxError(keyword, "lexical declaration", "Missing initializer in const declaration.")
		}
	}
	return nil
}

// Statement parses every statement that is not a declaration.
type Statement struct {
	allowYield  AllowYield
	allowAwait  AllowAwait
	allowReturn AllowReturn
}

func NewStatement(allowYield AllowYield, allowAwait AllowAwait, allowReturn AllowReturn) Statement {
	return Statement{allowYield, allowAwait, allowReturn}
}

func (p Statement) Parse(cur *Cursor) (ast.Stmt, error) {
	defer cur.trace("Statement")()

	if err := cur.enter("statement"); err != nil {
		return nil, err
	}
	defer cur.leave()

	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, cur.abruptEnd("statement")
	}

	switch tok.Type {
	case token.LEFT_BRACE:
		return p.block(cur)
	case token.SEMICOLON:
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
		return ast.NewEmptyStmt(), nil
	case token.VAR:
		stmt, err := NewVariableDeclarationList(true, p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		if err := cur.ExpectSemicolon("variable statement"); err != nil {
			return nil, err
		}
		return stmt, nil
	case token.IF:
		return p.ifStatement(cur)
	case token.WHILE:
		return p.whileStatement(cur)
	case token.FOR:
		return NewForStatement(p.allowYield, p.allowAwait, p.allowReturn).Parse(cur)
	case token.RETURN:
		return NewReturnStatement(p.allowYield, p.allowAwait, p.allowReturn).Parse(cur)
	case token.FUNCTION, token.CLASS:
		return nil, newSyntaxError(tok, "statement", "Declarations are not allowed in a single-statement context.")
	}
	return p.expressionStatement(cur)
}

func (p Statement) block(cur *Cursor) (ast.Stmt, error) {
	if _, err := cur.Expect(token.LEFT_BRACE, "block statement"); err != nil {
		return nil, err
	}
	stmts, err := NewStatementList(p.allowYield, p.allowAwait, p.allowReturn).Parse(cur, token.RIGHT_BRACE)
	if err != nil {
		return nil, err
	}
	if _, err := cur.Expect(token.RIGHT_BRACE, "block statement"); err != nil {
		return nil, err
	}
	return ast.NewBlockStmt(stmts), nil
}

// condition parses a parenthesised `if` or `while` condition.
func (p Statement) condition(cur *Cursor, context string) (ast.Expr, error) {
	if _, err := cur.Expect(token.LEFT_PAREN, context); err != nil {
		return nil, err
	}
	cond, err := NewExpression(true, p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	if _, err := cur.Expect(token.RIGHT_PAREN, context); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p Statement) ifStatement(cur *Cursor) (ast.Stmt, error) {
	if _, err := cur.Expect(token.IF, "if statement"); err != nil {
		return nil, err
	}
	cond, err := p.condition(cur, "if statement")
	if err != nil {
		return nil, err
	}
	then, err := p.Parse(cur)
	if err != nil {
		return nil, err
	}
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if !tok.Is(token.ELSE) {
		return ast.NewIfStmt(cond, then, nil), nil
	}
	if _, err := cur.Next(); err != nil {
		return nil, err
	}
	els, err := p.Parse(cur)
	if err != nil {
		return nil, err
	}
	return ast.NewIfStmt(cond, then, els), nil
}

func (p Statement) whileStatement(cur *Cursor) (ast.Stmt, error) {
	if _, err := cur.Expect(token.WHILE, "while statement"); err != nil {
		return nil, err
	}
	cond, err := p.condition(cur, "while statement")
	if err != nil {
		return nil, err
	}
	body, err := p.Parse(cur)
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStmt(cond, body), nil
}

// expressionStatement parses an expression terminated by a semicolon, which
// may be inserted automatically.
func (p Statement) expressionStatement(cur *Cursor) (ast.Stmt, error) {
	expr, err := NewExpression(true, p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	if err := cur.ExpectSemicolon("expression statement"); err != nil {
		return nil, err
	}
	return ast.NewExprStmt(expr), nil
}

// VariableDeclarationList parses `var`, `let` or `const` followed by one or
// more declarators. The caller handles the terminating semicolon, since a
// declaration in a `for` head is followed by `;`, `in` or `of` instead.
//
//	VariableDeclaration[In, Yield, Await] :
//	    BindingIdentifier[?Yield, ?Await] Initializer[?In, ?Yield, ?Await]opt
type VariableDeclarationList struct {
	allowIn    AllowIn
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewVariableDeclarationList(allowIn AllowIn, allowYield AllowYield, allowAwait AllowAwait) VariableDeclarationList {
	return VariableDeclarationList{allowIn, allowYield, allowAwait}
}

func (p VariableDeclarationList) Parse(cur *Cursor) (*ast.VarStmt, error) {
	defer cur.trace("VariableDeclarationList")()

	kind, err := cur.Next()
	if err != nil {
		return nil, err
	}
	if kind == nil {
		return nil, cur.abruptEnd("variable declaration")
	}
	if !kind.Is(token.VAR, token.CONST) && !isContextual(kind, "let") {
		return nil, newUnexpectedToken(kind, "variable declaration", "variable declaration")
	}

	decls := []*ast.VarDecl{}
	for {
		name, err := NewBindingIdentifier(p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		tok, err := cur.Peek(0)
		if err != nil {
			return nil, err
		}
		var init ast.Expr
		if tok.Is(token.EQUAL) {
			if _, err := cur.Next(); err != nil {
				return nil, err
			}
			if init, err = NewAssignmentExpression(p.allowIn, p.allowYield, p.allowAwait).Parse(cur); err != nil {
				return nil, err
			}
		}
		decls = append(decls, ast.NewVarDecl(name, init))

		if tok, err = cur.Peek(0); err != nil {
			return nil, err
		}
		if !tok.Is(token.COMMA) {
			return ast.NewVarStmt(kind.Lexeme, decls), nil
		}
		if _, err := cur.Next(); err != nil {
			return nil, err
		}
	}
}

// ReturnStatement parses `return` with an optional operand. As with `yield`,
// the operand must start on the same line.
type ReturnStatement struct {
	allowYield  AllowYield
	allowAwait  AllowAwait
	allowReturn AllowReturn
}

func NewReturnStatement(allowYield AllowYield, allowAwait AllowAwait, allowReturn AllowReturn) ReturnStatement {
	return ReturnStatement{allowYield, allowAwait, allowReturn}
}

func (p ReturnStatement) Parse(cur *Cursor) (ast.Stmt, error) {
	defer cur.trace("ReturnStatement")()

	tok, err := cur.Expect(token.RETURN, "return statement")
	if err != nil {
		return nil, err
	}
	if !p.allowReturn {
		return nil, newSyntaxError(tok, "return statement", "Illegal return statement.")
	}

	lineBreak, found, err := cur.PeekIsLineTerminator(0)
	if err != nil {
		return nil, err
	}
	if lineBreak || !found {
		return ast.NewReturnStmt(nil), nil
	}
	if tok, err = cur.Peek(0); err != nil {
		return nil, err
	}
	if !startsExpression(tok) {
		if err := cur.ExpectSemicolon("return statement"); err != nil {
			return nil, err
		}
		return ast.NewReturnStmt(nil), nil
	}
	val, err := NewExpression(true, p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	if err := cur.ExpectSemicolon("return statement"); err != nil {
		return nil, err
	}
	return ast.NewReturnStmt(val), nil
}

// ForStatement parses the three-clause `for` loop and the `for-in` and
// `for-of` loops, which share a prefix. The head is parsed with `in`
// disallowed so that `for (x in y)` is not read as a relational expression.
//
//	ForStatement :
//	    for ( [lookahead != let [] Expression[~In, ?Yield, ?Await]opt ; Expression[+In, ?Yield, ?Await]opt ; Expression[+In, ?Yield, ?Await]opt ) Statement
//	    for ( var VariableDeclarationList[~In, ?Yield, ?Await] ; Expression[+In, ?Yield, ?Await]opt ; Expression[+In, ?Yield, ?Await]opt ) Statement
//	    for ( LexicalDeclaration[~In, ?Yield, ?Await] Expression[+In, ?Yield, ?Await]opt ; Expression[+In, ?Yield, ?Await]opt ) Statement
//	    for ( LeftHandSideExpression in Expression[+In, ?Yield, ?Await] ) Statement
//	    for ( LeftHandSideExpression of AssignmentExpression[+In, ?Yield, ?Await] ) Statement
type ForStatement struct {
	allowYield  AllowYield
	allowAwait  AllowAwait
	allowReturn AllowReturn
}

func NewForStatement(allowYield AllowYield, allowAwait AllowAwait, allowReturn AllowReturn) ForStatement {
	return ForStatement{allowYield, allowAwait, allowReturn}
}

func (p ForStatement) Parse(cur *Cursor) (ast.Stmt, error) {
	defer cur.trace("ForStatement")()

	if _, err := cur.Expect(token.FOR, "for statement"); err != nil {
		return nil, err
	}
	if _, err := cur.Expect(token.LEFT_PAREN, "for statement"); err != nil {
		return nil, err
	}

	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, cur.abruptEnd("for statement")
	}
	lexical := false
	if isContextual(tok, "let") {
		if lexical, err = letDeclarationAhead(cur); err != nil {
			return nil, err
		}
	}

	var init ast.Stmt
	switch {
	case tok.Is(token.SEMICOLON):
	case tok.Is(token.VAR, token.CONST) || lexical:
		decl, err := NewVariableDeclarationList(false, p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		iter, err := p.iterationKeyword(cur)
		if err != nil {
			return nil, err
		}
		if iter != nil {
			if len(decl.Decls) != 1 || decl.Decls[0].Init != nil {
				return nil, newSyntaxError(iter, "for statement", "Invalid left-hand side in for-"+iter.Lexeme+" loop.")
			}
			return p.forIn(cur, decl)
		}
		if err := checkConstInitialized(tok, decl); err != nil {
			return nil, err
		}
		init = decl
	default:
		expr, err := NewExpression(false, p.allowYield, p.allowAwait).Parse(cur)
		if err != nil {
			return nil, err
		}
		iter, err := p.iterationKeyword(cur)
		if err != nil {
			return nil, err
		}
		if iter != nil {
			if !isAssignmentTarget(expr) {
				return nil, newSyntaxError(iter, "for statement", "Invalid left-hand side in for-"+iter.Lexeme+" loop.")
			}
			return p.forIn(cur, ast.NewExprStmt(expr))
		}
		init = ast.NewExprStmt(expr)
	}

	if _, err := cur.Expect(token.SEMICOLON, "for statement"); err != nil {
		return nil, err
	}
	cond, err := p.optionalExpression(cur, token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	if _, err := cur.Expect(token.SEMICOLON, "for statement"); err != nil {
		return nil, err
	}
	update, err := p.optionalExpression(cur, token.RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	if _, err := cur.Expect(token.RIGHT_PAREN, "for statement"); err != nil {
		return nil, err
	}
	body, err := NewStatement(p.allowYield, p.allowAwait, p.allowReturn).Parse(cur)
	if err != nil {
		return nil, err
	}
	return ast.NewForStmt(init, cond, update, body), nil
}

// iterationKeyword returns the `in` or `of` token at the cursor, or nil.
func (p ForStatement) iterationKeyword(cur *Cursor) (*token.Token, error) {
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Is(token.IN) || isContextual(tok, "of") {
		return tok, nil
	}
	return nil, nil
}

func (p ForStatement) optionalExpression(cur *Cursor, end token.Type) (ast.Expr, error) {
	tok, err := cur.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Is(end) {
		return nil, nil
	}
	return NewExpression(true, p.allowYield, p.allowAwait).Parse(cur)
}

func (p ForStatement) forIn(cur *Cursor, left ast.Stmt) (ast.Stmt, error) {
	iter, err := cur.Next()
	if err != nil {
		return nil, err
	}
	of := iter.Is(token.IDENTIFIER)

	var right ast.Expr
	if of {
		right, err = NewAssignmentExpression(true, p.allowYield, p.allowAwait).Parse(cur)
	} else {
		right, err = NewExpression(true, p.allowYield, p.allowAwait).Parse(cur)
	}
	if err != nil {
		return nil, err
	}
	if _, err := cur.Expect(token.RIGHT_PAREN, "for statement"); err != nil {
		return nil, err
	}
	body, err := NewStatement(p.allowYield, p.allowAwait, p.allowReturn).Parse(cur)
	if err != nil {
		return nil, err
	}
	return ast.NewForInStmt(left, right, body, of), nil
}

// FunctionDeclaration parses a named function statement. The name is bound in
// the enclosing scope, so it follows the enclosing context's reserved words.
type FunctionDeclaration struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewFunctionDeclaration(allowYield AllowYield, allowAwait AllowAwait) FunctionDeclaration {
	return FunctionDeclaration{allowYield, allowAwait}
}

func (p FunctionDeclaration) Parse(cur *Cursor) (ast.Stmt, error) {
	defer cur.trace("FunctionDeclaration")()

	async, generator, err := functionHead(cur)
	if err != nil {
		return nil, err
	}
	name, err := NewBindingIdentifier(p.allowYield, p.allowAwait).Parse(cur)
	if err != nil {
		return nil, err
	}
	fn, err := functionTail(cur, name, generator, async)
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionStmt(fn), nil
}

type ClassDeclaration struct {
	allowYield AllowYield
	allowAwait AllowAwait
}

func NewClassDeclaration(allowYield AllowYield, allowAwait AllowAwait) ClassDeclaration {
	return ClassDeclaration{allowYield, allowAwait}
}

func (p ClassDeclaration) Parse(cur *Cursor) (ast.Stmt, error) {
	class, err := ClassExpression{p.allowYield, p.allowAwait, true}.parseClass(cur)
	if err != nil {
		return nil, err
	}
	return ast.NewClassStmt(class), nil
}
