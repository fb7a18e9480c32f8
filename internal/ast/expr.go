package ast

import "github.com/letung3105/gjs/internal/token"

// Expr is an expression node. Nodes are built bottom-up by the parser through
// the constructors below and are never modified afterwards.
type Expr interface {
	Accept(visitor ExprVisitor) (interface{}, error)
}

type ExprVisitor interface {
	VisitArrayExpr(expr *ArrayExpr) (interface{}, error)
	VisitArrowFunctionExpr(expr *ArrowFunctionExpr) (interface{}, error)
	VisitAssignExpr(expr *AssignExpr) (interface{}, error)
	VisitAwaitExpr(expr *AwaitExpr) (interface{}, error)
	VisitBinaryExpr(expr *BinaryExpr) (interface{}, error)
	VisitCallExpr(expr *CallExpr) (interface{}, error)
	VisitClassExpr(expr *ClassExpr) (interface{}, error)
	VisitConditionalExpr(expr *ConditionalExpr) (interface{}, error)
	VisitFunctionExpr(expr *FunctionExpr) (interface{}, error)
	VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error)
	VisitLiteralExpr(expr *LiteralExpr) (interface{}, error)
	VisitLogicalExpr(expr *LogicalExpr) (interface{}, error)
	VisitMemberExpr(expr *MemberExpr) (interface{}, error)
	VisitNewExpr(expr *NewExpr) (interface{}, error)
	VisitObjectExpr(expr *ObjectExpr) (interface{}, error)
	VisitRegExpExpr(expr *RegExpExpr) (interface{}, error)
	VisitSequenceExpr(expr *SequenceExpr) (interface{}, error)
	VisitSpreadExpr(expr *SpreadExpr) (interface{}, error)
	VisitTaggedTemplateExpr(expr *TaggedTemplateExpr) (interface{}, error)
	VisitTemplateExpr(expr *TemplateExpr) (interface{}, error)
	VisitThisExpr(expr *ThisExpr) (interface{}, error)
	VisitUnaryExpr(expr *UnaryExpr) (interface{}, error)
	VisitUpdateExpr(expr *UpdateExpr) (interface{}, error)
	VisitYieldExpr(expr *YieldExpr) (interface{}, error)
}

// ArrayExpr is an array literal. Holes left by elisions are nil elements.
type ArrayExpr struct {
	Elements []Expr
}

func NewArrayExpr(Elements []Expr) *ArrayExpr {
	return &ArrayExpr{Elements}
}
func (expr *ArrayExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitArrayExpr(expr)
}

// ArrowFunctionExpr has either a statement Body or a single expression
// ExprBody, never both.
type ArrowFunctionExpr struct {
	Params   []*Param
	Body     []Stmt
	ExprBody Expr
	Async    bool
}

func NewArrowFunctionExpr(Params []*Param, Body []Stmt, ExprBody Expr, Async bool) *ArrowFunctionExpr {
	return &ArrowFunctionExpr{Params, Body, ExprBody, Async}
}
func (expr *ArrowFunctionExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitArrowFunctionExpr(expr)
}

type AssignExpr struct {
	Op     token.Type
	Target Expr
	Val    Expr
}

func NewAssignExpr(Op token.Type, Target Expr, Val Expr) *AssignExpr {
	return &AssignExpr{Op, Target, Val}
}
func (expr *AssignExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitAssignExpr(expr)
}

type AwaitExpr struct {
	Arg Expr
}

func NewAwaitExpr(Arg Expr) *AwaitExpr {
	return &AwaitExpr{Arg}
}
func (expr *AwaitExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitAwaitExpr(expr)
}

type BinaryExpr struct {
	Op    token.Type
	Left  Expr
	Right Expr
}

func NewBinaryExpr(Op token.Type, Left Expr, Right Expr) *BinaryExpr {
	return &BinaryExpr{Op, Left, Right}
}
func (expr *BinaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitBinaryExpr(expr)
}

type CallExpr struct {
	Callee Expr
	Args   []Expr
}

func NewCallExpr(Callee Expr, Args []Expr) *CallExpr {
	return &CallExpr{Callee, Args}
}
func (expr *CallExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitCallExpr(expr)
}

type ClassExpr struct {
	Name       *IdentifierExpr
	SuperClass Expr
	Methods    []*MethodDef
}

func NewClassExpr(Name *IdentifierExpr, SuperClass Expr, Methods []*MethodDef) *ClassExpr {
	return &ClassExpr{Name, SuperClass, Methods}
}
func (expr *ClassExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitClassExpr(expr)
}

type ConditionalExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

func NewConditionalExpr(Cond Expr, Then Expr, Else Expr) *ConditionalExpr {
	return &ConditionalExpr{Cond, Then, Else}
}
func (expr *ConditionalExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitConditionalExpr(expr)
}

// FunctionExpr is also the value of methods and the payload of function
// declarations.
type FunctionExpr struct {
	Name      *IdentifierExpr
	Params    []*Param
	Body      []Stmt
	Generator bool
	Async     bool
}

func NewFunctionExpr(Name *IdentifierExpr, Params []*Param, Body []Stmt, Generator bool, Async bool) *FunctionExpr {
	return &FunctionExpr{Name, Params, Body, Generator, Async}
}
func (expr *FunctionExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitFunctionExpr(expr)
}

// IdentifierExpr is an identifier reference, a binding name, or a non-computed
// property name.
type IdentifierExpr struct {
	Name string
}

func NewIdentifierExpr(Name string) *IdentifierExpr {
	return &IdentifierExpr{Name}
}
func (expr *IdentifierExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitIdentifierExpr(expr)
}

// LiteralExpr holds a float64, string, bool, or nil for null.
type LiteralExpr struct {
	Value interface{}
}

func NewLiteralExpr(Value interface{}) *LiteralExpr {
	return &LiteralExpr{Value}
}
func (expr *LiteralExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitLiteralExpr(expr)
}

// LogicalExpr is a short-circuiting "&&", "||" or "??".
type LogicalExpr struct {
	Op    token.Type
	Left  Expr
	Right Expr
}

func NewLogicalExpr(Op token.Type, Left Expr, Right Expr) *LogicalExpr {
	return &LogicalExpr{Op, Left, Right}
}
func (expr *LogicalExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitLogicalExpr(expr)
}

// MemberExpr is `Obj.Property` or, when Computed, `Obj[Property]`.
type MemberExpr struct {
	Obj      Expr
	Property Expr
	Computed bool
}

func NewMemberExpr(Obj Expr, Property Expr, Computed bool) *MemberExpr {
	return &MemberExpr{Obj, Property, Computed}
}
func (expr *MemberExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitMemberExpr(expr)
}

// NewExpr has nil Args when the callee is not followed by an argument list.
type NewExpr struct {
	Callee Expr
	Args   []Expr
}

func NewNewExpr(Callee Expr, Args []Expr) *NewExpr {
	return &NewExpr{Callee, Args}
}
func (expr *NewExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitNewExpr(expr)
}

type ObjectExpr struct {
	Props []*Property
}

func NewObjectExpr(Props []*Property) *ObjectExpr {
	return &ObjectExpr{Props}
}
func (expr *ObjectExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitObjectExpr(expr)
}

type RegExpExpr struct {
	Pattern string
	Flags   string
}

func NewRegExpExpr(Pattern string, Flags string) *RegExpExpr {
	return &RegExpExpr{Pattern, Flags}
}
func (expr *RegExpExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitRegExpExpr(expr)
}

type SequenceExpr struct {
	Exprs []Expr
}

func NewSequenceExpr(Exprs []Expr) *SequenceExpr {
	return &SequenceExpr{Exprs}
}
func (expr *SequenceExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitSequenceExpr(expr)
}

// SpreadExpr only appears as an array element or a call argument.
type SpreadExpr struct {
	Arg Expr
}

func NewSpreadExpr(Arg Expr) *SpreadExpr {
	return &SpreadExpr{Arg}
}
func (expr *SpreadExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitSpreadExpr(expr)
}

type TaggedTemplateExpr struct {
	Tag   Expr
	Quasi *TemplateExpr
}

func NewTaggedTemplateExpr(Tag Expr, Quasi *TemplateExpr) *TaggedTemplateExpr {
	return &TaggedTemplateExpr{Tag, Quasi}
}
func (expr *TaggedTemplateExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitTaggedTemplateExpr(expr)
}

// TemplateExpr interleaves cooked string chunks with substitutions, so
// len(Quasis) == len(Exprs)+1.
type TemplateExpr struct {
	Quasis []string
	Exprs  []Expr
}

func NewTemplateExpr(Quasis []string, Exprs []Expr) *TemplateExpr {
	return &TemplateExpr{Quasis, Exprs}
}
func (expr *TemplateExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitTemplateExpr(expr)
}

type ThisExpr struct{}

func NewThisExpr() *ThisExpr {
	return &ThisExpr{}
}
func (expr *ThisExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitThisExpr(expr)
}

type UnaryExpr struct {
	Op   token.Type
	Expr Expr
}

func NewUnaryExpr(Op token.Type, Expr Expr) *UnaryExpr {
	return &UnaryExpr{Op, Expr}
}
func (expr *UnaryExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitUnaryExpr(expr)
}

type UpdateExpr struct {
	Op     token.Type
	Prefix bool
	Expr   Expr
}

func NewUpdateExpr(Op token.Type, Prefix bool, Expr Expr) *UpdateExpr {
	return &UpdateExpr{Op, Prefix, Expr}
}
func (expr *UpdateExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitUpdateExpr(expr)
}

// YieldExpr is `yield`, `yield Arg` or, when Delegate, `yield* Arg`. A
// delegating yield always has an argument.
type YieldExpr struct {
	Arg      Expr
	Delegate bool
}

// NewYieldExpr panics when asked for a delegating yield without an argument,
// the parser never builds one.
func NewYieldExpr(Arg Expr, Delegate bool) *YieldExpr {
	if Delegate && Arg == nil {
		panic("ast: delegating yield requires an argument")
	}
	return &YieldExpr{Arg, Delegate}
}
func (expr *YieldExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitYieldExpr(expr)
}

// Param is a formal parameter: a name with an optional default value, or a
// trailing rest parameter.
type Param struct {
	Name    *IdentifierExpr
	Default Expr
	Rest    bool
}

func NewParam(Name *IdentifierExpr, Default Expr, Rest bool) *Param {
	return &Param{Name, Default, Rest}
}

type PropertyKind int

const (
	PropInit PropertyKind = iota
	PropMethod
	PropGet
	PropSet
	PropSpread
)

func (kind PropertyKind) String() string {
	switch kind {
	case PropInit:
		return "init"
	case PropMethod:
		return "method"
	case PropGet:
		return "get"
	case PropSet:
		return "set"
	case PropSpread:
		return "spread"
	}
	return "unknown"
}

// Property is one entry of an object literal. Spread properties have no Key.
type Property struct {
	Kind      PropertyKind
	Key       Expr
	Computed  bool
	Value     Expr
	Shorthand bool
}

func NewProperty(Kind PropertyKind, Key Expr, Computed bool, Value Expr, Shorthand bool) *Property {
	return &Property{Kind, Key, Computed, Value, Shorthand}
}

// MethodDef is a class element. Kind is PropMethod, PropGet or PropSet.
type MethodDef struct {
	Kind     PropertyKind
	Key      Expr
	Computed bool
	Static   bool
	Value    *FunctionExpr
}

func NewMethodDef(Kind PropertyKind, Key Expr, Computed bool, Static bool, Value *FunctionExpr) *MethodDef {
	return &MethodDef{Kind, Key, Computed, Static, Value}
}
