package ast

type Stmt interface {
	Accept(visitor StmtVisitor) (interface{}, error)
}
type StmtVisitor interface {
	VisitBlockStmt(stmt *BlockStmt) (interface{}, error)
	VisitClassStmt(stmt *ClassStmt) (interface{}, error)
	VisitEmptyStmt(stmt *EmptyStmt) (interface{}, error)
	VisitExprStmt(stmt *ExprStmt) (interface{}, error)
	VisitForInStmt(stmt *ForInStmt) (interface{}, error)
	VisitForStmt(stmt *ForStmt) (interface{}, error)
	VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error)
	VisitIfStmt(stmt *IfStmt) (interface{}, error)
	VisitReturnStmt(stmt *ReturnStmt) (interface{}, error)
	VisitVarStmt(stmt *VarStmt) (interface{}, error)
	VisitWhileStmt(stmt *WhileStmt) (interface{}, error)
}

// Program is the root of a parsed script.
type Program struct {
	Body []Stmt
}

func NewProgram(Body []Stmt) *Program {
	return &Program{Body}
}

type BlockStmt struct {
	Stmts []Stmt
}

func NewBlockStmt(Stmts []Stmt) *BlockStmt {
	return &BlockStmt{Stmts}
}
func (stmt *BlockStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitBlockStmt(stmt)
}

type ClassStmt struct {
	Class *ClassExpr
}

func NewClassStmt(Class *ClassExpr) *ClassStmt {
	return &ClassStmt{Class}
}
func (stmt *ClassStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitClassStmt(stmt)
}

type EmptyStmt struct{}

func NewEmptyStmt() *EmptyStmt {
	return &EmptyStmt{}
}
func (stmt *EmptyStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitEmptyStmt(stmt)
}

type ExprStmt struct {
	Expr Expr
}

func NewExprStmt(Expr Expr) *ExprStmt {
	return &ExprStmt{Expr}
}
func (stmt *ExprStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitExprStmt(stmt)
}

// ForInStmt is a `for-in` loop or, when Of is set, a `for-of` loop. Left is
// either a *VarStmt with a single uninitialised declaration or an *ExprStmt
// holding the assignment target.
type ForInStmt struct {
	Left  Stmt
	Right Expr
	Body  Stmt
	Of    bool
}

func NewForInStmt(Left Stmt, Right Expr, Body Stmt, Of bool) *ForInStmt {
	return &ForInStmt{Left, Right, Body, Of}
}
func (stmt *ForInStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitForInStmt(stmt)
}

// ForStmt is the classic three-clause loop. Init is nil, a *VarStmt or an
// *ExprStmt; Cond and Update may be nil.
type ForStmt struct {
	Init   Stmt
	Cond   Expr
	Update Expr
	Body   Stmt
}

func NewForStmt(Init Stmt, Cond Expr, Update Expr, Body Stmt) *ForStmt {
	return &ForStmt{Init, Cond, Update, Body}
}
func (stmt *ForStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitForStmt(stmt)
}

type FunctionStmt struct {
	Func *FunctionExpr
}

func NewFunctionStmt(Func *FunctionExpr) *FunctionStmt {
	return &FunctionStmt{Func}
}
func (stmt *FunctionStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitFunctionStmt(stmt)
}

type IfStmt struct {
	Cond       Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func NewIfStmt(Cond Expr, ThenBranch Stmt, ElseBranch Stmt) *IfStmt {
	return &IfStmt{Cond, ThenBranch, ElseBranch}
}
func (stmt *IfStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitIfStmt(stmt)
}

type ReturnStmt struct {
	Val Expr
}

func NewReturnStmt(Val Expr) *ReturnStmt {
	return &ReturnStmt{Val}
}
func (stmt *ReturnStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitReturnStmt(stmt)
}

// VarStmt declares bindings with Kind "var", "let" or "const".
type VarStmt struct {
	Kind  string
	Decls []*VarDecl
}

func NewVarStmt(Kind string, Decls []*VarDecl) *VarStmt {
	return &VarStmt{Kind, Decls}
}
func (stmt *VarStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitVarStmt(stmt)
}

type VarDecl struct {
	Name *IdentifierExpr
	Init Expr
}

func NewVarDecl(Name *IdentifierExpr, Init Expr) *VarDecl {
	return &VarDecl{Name, Init}
}

type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func NewWhileStmt(Cond Expr, Body Stmt) *WhileStmt {
	return &WhileStmt{Cond, Body}
}
func (stmt *WhileStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitWhileStmt(stmt)
}
