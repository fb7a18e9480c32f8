package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer renders nodes as parenthesized prefix notation, e.g. `yield* g()`
// prints as `(yield* (call g))`.
type Printer struct{}

func (printer *Printer) Print(expr Expr) string {
	if expr == nil {
		return "_"
	}
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *Printer) PrintStmt(stmt Stmt) string {
	if stmt == nil {
		return "_"
	}
	s, _ := stmt.Accept(printer)
	return fmt.Sprintf("%v", s)
}

// PrintProgram prints one statement per line.
func (printer *Printer) PrintProgram(program *Program) string {
	var sb strings.Builder
	for _, stmt := range program.Body {
		sb.WriteString(printer.PrintStmt(stmt))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (printer *Printer) parenthesize(name string, parts ...string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, part := range parts {
		sb.WriteByte(' ')
		sb.WriteString(part)
	}
	sb.WriteByte(')')
	return sb.String()
}

func (printer *Printer) exprs(exprs []Expr) []string {
	parts := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		if expr == nil {
			parts = append(parts, "<hole>")
			continue
		}
		parts = append(parts, printer.Print(expr))
	}
	return parts
}

func (printer *Printer) stmts(stmts []Stmt) []string {
	parts := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		parts = append(parts, printer.PrintStmt(stmt))
	}
	return parts
}

func (printer *Printer) params(params []*Param) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		switch {
		case param.Rest:
			parts = append(parts, "..."+param.Name.Name)
		case param.Default != nil:
			parts = append(parts, printer.parenthesize("=", param.Name.Name, printer.Print(param.Default)))
		default:
			parts = append(parts, param.Name.Name)
		}
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (printer *Printer) key(key Expr, computed bool) string {
	if computed {
		return printer.parenthesize("[]", printer.Print(key))
	}
	return printer.Print(key)
}

func (printer *Printer) VisitArrayExpr(expr *ArrayExpr) (interface{}, error) {
	return printer.parenthesize("array", printer.exprs(expr.Elements)...), nil
}

func (printer *Printer) VisitArrowFunctionExpr(expr *ArrowFunctionExpr) (interface{}, error) {
	name := "=>"
	if expr.Async {
		name = "async =>"
	}
	if expr.ExprBody != nil {
		return printer.parenthesize(name, printer.params(expr.Params), printer.Print(expr.ExprBody)), nil
	}
	parts := append([]string{printer.params(expr.Params)}, printer.stmts(expr.Body)...)
	return printer.parenthesize(name, parts...), nil
}

func (printer *Printer) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	return printer.parenthesize(string(expr.Op), printer.Print(expr.Target), printer.Print(expr.Val)), nil
}

func (printer *Printer) VisitAwaitExpr(expr *AwaitExpr) (interface{}, error) {
	return printer.parenthesize("await", printer.Print(expr.Arg)), nil
}

func (printer *Printer) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(string(expr.Op), printer.Print(expr.Left), printer.Print(expr.Right)), nil
}

func (printer *Printer) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	parts := append([]string{printer.Print(expr.Callee)}, printer.exprs(expr.Args)...)
	return printer.parenthesize("call", parts...), nil
}

func (printer *Printer) VisitClassExpr(expr *ClassExpr) (interface{}, error) {
	var parts []string
	if expr.Name != nil {
		parts = append(parts, expr.Name.Name)
	}
	if expr.SuperClass != nil {
		parts = append(parts, printer.parenthesize("extends", printer.Print(expr.SuperClass)))
	}
	for _, method := range expr.Methods {
		name := method.Kind.String()
		if method.Static {
			name = "static " + name
		}
		parts = append(parts, printer.parenthesize(name, printer.key(method.Key, method.Computed), printer.Print(method.Value)))
	}
	return printer.parenthesize("class", parts...), nil
}

func (printer *Printer) VisitConditionalExpr(expr *ConditionalExpr) (interface{}, error) {
	return printer.parenthesize("?", printer.Print(expr.Cond), printer.Print(expr.Then), printer.Print(expr.Else)), nil
}

func (printer *Printer) VisitFunctionExpr(expr *FunctionExpr) (interface{}, error) {
	name := "function"
	if expr.Async {
		name = "async " + name
	}
	if expr.Generator {
		name += "*"
	}
	var parts []string
	if expr.Name != nil {
		parts = append(parts, expr.Name.Name)
	}
	parts = append(parts, printer.params(expr.Params))
	parts = append(parts, printer.stmts(expr.Body)...)
	return printer.parenthesize(name, parts...), nil
}

func (printer *Printer) VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error) {
	return expr.Name, nil
}

func (printer *Printer) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	switch v := expr.Value.(type) {
	case nil:
		return "null", nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case string:
		return strconv.Quote(v), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (printer *Printer) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	return printer.parenthesize(string(expr.Op), printer.Print(expr.Left), printer.Print(expr.Right)), nil
}

func (printer *Printer) VisitMemberExpr(expr *MemberExpr) (interface{}, error) {
	if expr.Computed {
		return printer.parenthesize("[]", printer.Print(expr.Obj), printer.Print(expr.Property)), nil
	}
	return printer.parenthesize(".", printer.Print(expr.Obj), printer.Print(expr.Property)), nil
}

func (printer *Printer) VisitNewExpr(expr *NewExpr) (interface{}, error) {
	parts := append([]string{printer.Print(expr.Callee)}, printer.exprs(expr.Args)...)
	return printer.parenthesize("new", parts...), nil
}

func (printer *Printer) VisitObjectExpr(expr *ObjectExpr) (interface{}, error) {
	parts := make([]string, 0, len(expr.Props))
	for _, prop := range expr.Props {
		if prop.Kind == PropSpread {
			parts = append(parts, printer.parenthesize("...", printer.Print(prop.Value)))
			continue
		}
		parts = append(parts, printer.parenthesize(prop.Kind.String(), printer.key(prop.Key, prop.Computed), printer.Print(prop.Value)))
	}
	return printer.parenthesize("object", parts...), nil
}

func (printer *Printer) VisitRegExpExpr(expr *RegExpExpr) (interface{}, error) {
	return "/" + expr.Pattern + "/" + expr.Flags, nil
}

func (printer *Printer) VisitSequenceExpr(expr *SequenceExpr) (interface{}, error) {
	return printer.parenthesize(",", printer.exprs(expr.Exprs)...), nil
}

func (printer *Printer) VisitSpreadExpr(expr *SpreadExpr) (interface{}, error) {
	return printer.parenthesize("...", printer.Print(expr.Arg)), nil
}

func (printer *Printer) VisitTaggedTemplateExpr(expr *TaggedTemplateExpr) (interface{}, error) {
	return printer.parenthesize("tag", printer.Print(expr.Tag), printer.Print(expr.Quasi)), nil
}

func (printer *Printer) VisitTemplateExpr(expr *TemplateExpr) (interface{}, error) {
	parts := make([]string, 0, len(expr.Quasis)+len(expr.Exprs))
	for i, quasi := range expr.Quasis {
		parts = append(parts, strconv.Quote(quasi))
		if i < len(expr.Exprs) {
			parts = append(parts, printer.Print(expr.Exprs[i]))
		}
	}
	return printer.parenthesize("template", parts...), nil
}

func (printer *Printer) VisitThisExpr(expr *ThisExpr) (interface{}, error) {
	return "this", nil
}

func (printer *Printer) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(string(expr.Op), printer.Print(expr.Expr)), nil
}

func (printer *Printer) VisitUpdateExpr(expr *UpdateExpr) (interface{}, error) {
	if expr.Prefix {
		return printer.parenthesize(string(expr.Op), printer.Print(expr.Expr)), nil
	}
	return printer.parenthesize("postfix"+string(expr.Op), printer.Print(expr.Expr)), nil
}

func (printer *Printer) VisitYieldExpr(expr *YieldExpr) (interface{}, error) {
	if expr.Delegate {
		return printer.parenthesize("yield*", printer.Print(expr.Arg)), nil
	}
	if expr.Arg == nil {
		return "(yield)", nil
	}
	return printer.parenthesize("yield", printer.Print(expr.Arg)), nil
}

func (printer *Printer) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	return printer.parenthesize("block", printer.stmts(stmt.Stmts)...), nil
}

func (printer *Printer) VisitClassStmt(stmt *ClassStmt) (interface{}, error) {
	return printer.Print(stmt.Class), nil
}

func (printer *Printer) VisitEmptyStmt(stmt *EmptyStmt) (interface{}, error) {
	return "(empty)", nil
}

func (printer *Printer) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	return printer.Print(stmt.Expr), nil
}

func (printer *Printer) VisitForInStmt(stmt *ForInStmt) (interface{}, error) {
	name := "for-in"
	if stmt.Of {
		name = "for-of"
	}
	return printer.parenthesize(name, printer.PrintStmt(stmt.Left), printer.Print(stmt.Right), printer.PrintStmt(stmt.Body)), nil
}

func (printer *Printer) VisitForStmt(stmt *ForStmt) (interface{}, error) {
	var init string
	if stmt.Init == nil {
		init = "_"
	} else {
		init = printer.PrintStmt(stmt.Init)
	}
	return printer.parenthesize("for", init, printer.Print(stmt.Cond), printer.Print(stmt.Update), printer.PrintStmt(stmt.Body)), nil
}

func (printer *Printer) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	return printer.Print(stmt.Func), nil
}

func (printer *Printer) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	if stmt.ElseBranch == nil {
		return printer.parenthesize("if", printer.Print(stmt.Cond), printer.PrintStmt(stmt.ThenBranch)), nil
	}
	return printer.parenthesize("if", printer.Print(stmt.Cond), printer.PrintStmt(stmt.ThenBranch), printer.PrintStmt(stmt.ElseBranch)), nil
}

func (printer *Printer) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	if stmt.Val == nil {
		return "(return)", nil
	}
	return printer.parenthesize("return", printer.Print(stmt.Val)), nil
}

func (printer *Printer) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	parts := make([]string, 0, len(stmt.Decls))
	for _, decl := range stmt.Decls {
		if decl.Init == nil {
			parts = append(parts, "("+decl.Name.Name+")")
			continue
		}
		parts = append(parts, printer.parenthesize(decl.Name.Name, printer.Print(decl.Init)))
	}
	return printer.parenthesize(stmt.Kind, parts...), nil
}

func (printer *Printer) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	return printer.parenthesize("while", printer.Print(stmt.Cond), printer.PrintStmt(stmt.Body)), nil
}
