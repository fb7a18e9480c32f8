package ast

import (
	"math"
	"strconv"
	"strings"
)

// Source regenerates ECMAScript text for a program. Every compound
// expression is parenthesized, so parsing the output yields the same tree.
func Source(program *Program) string {
	var gen generator
	for _, stmt := range program.Body {
		gen.stmt(stmt)
		gen.newline()
	}
	return gen.sb.String()
}

func SourceExpr(expr Expr) string {
	var gen generator
	gen.expr(expr)
	return gen.sb.String()
}

func SourceStmt(stmt Stmt) string {
	var gen generator
	gen.stmt(stmt)
	return gen.sb.String()
}

type generator struct {
	sb     strings.Builder
	indent int
}

func (gen *generator) write(parts ...string) {
	for _, part := range parts {
		gen.sb.WriteString(part)
	}
}

func (gen *generator) newline() {
	gen.sb.WriteByte('\n')
	for i := 0; i < gen.indent; i++ {
		gen.sb.WriteString("  ")
	}
}

func (gen *generator) expr(expr Expr) {
	switch expr := expr.(type) {
	case *IdentifierExpr:
		gen.write(expr.Name)
	case *LiteralExpr:
		gen.literal(expr.Value)
	case *RegExpExpr:
		gen.write("/", expr.Pattern, "/", expr.Flags)
	case *ThisExpr:
		gen.write("this")
	case *ArrayExpr:
		gen.write("[")
		for i, el := range expr.Elements {
			if i > 0 {
				gen.write(", ")
			}
			if el != nil {
				gen.expr(el)
			}
		}
		if n := len(expr.Elements); n > 0 && expr.Elements[n-1] == nil {
			gen.write(",")
		}
		gen.write("]")
	case *SpreadExpr:
		gen.write("...")
		gen.expr(expr.Arg)
	case *ObjectExpr:
		gen.object(expr)
	case *FunctionExpr:
		gen.write("(")
		gen.function(expr)
		gen.write(")")
	case *ArrowFunctionExpr:
		gen.write("(")
		if expr.Async {
			gen.write("async ")
		}
		gen.params(expr.Params)
		gen.write(" => ")
		if expr.ExprBody != nil {
			gen.write("(")
			gen.expr(expr.ExprBody)
			gen.write(")")
		} else {
			gen.block(expr.Body)
		}
		gen.write(")")
	case *ClassExpr:
		gen.write("(")
		gen.class(expr)
		gen.write(")")
	case *UnaryExpr:
		gen.write("(", string(expr.Op))
		if isWordOperator(string(expr.Op)) {
			gen.write(" ")
		}
		gen.expr(expr.Expr)
		gen.write(")")
	case *UpdateExpr:
		gen.write("(")
		if expr.Prefix {
			gen.write(string(expr.Op))
			gen.expr(expr.Expr)
		} else {
			gen.expr(expr.Expr)
			gen.write(string(expr.Op))
		}
		gen.write(")")
	case *BinaryExpr:
		gen.infix(expr.Left, string(expr.Op), expr.Right)
	case *LogicalExpr:
		gen.infix(expr.Left, string(expr.Op), expr.Right)
	case *AssignExpr:
		gen.infix(expr.Target, string(expr.Op), expr.Val)
	case *ConditionalExpr:
		gen.write("(")
		gen.expr(expr.Cond)
		gen.write(" ? ")
		gen.expr(expr.Then)
		gen.write(" : ")
		gen.expr(expr.Else)
		gen.write(")")
	case *SequenceExpr:
		gen.write("(")
		gen.list(expr.Exprs)
		gen.write(")")
	case *CallExpr:
		gen.callee(expr.Callee)
		gen.write("(")
		gen.list(expr.Args)
		gen.write(")")
	case *NewExpr:
		gen.write("(new (")
		gen.expr(expr.Callee)
		gen.write(")")
		if expr.Args != nil {
			gen.write("(")
			gen.list(expr.Args)
			gen.write(")")
		}
		gen.write(")")
	case *MemberExpr:
		gen.callee(expr.Obj)
		if expr.Computed {
			gen.write("[")
			gen.expr(expr.Property)
			gen.write("]")
		} else {
			gen.write(".")
			gen.expr(expr.Property)
		}
	case *TaggedTemplateExpr:
		gen.callee(expr.Tag)
		gen.expr(expr.Quasi)
	case *TemplateExpr:
		gen.write("`")
		for i, quasi := range expr.Quasis {
			gen.write(escapeTemplate(quasi))
			if i < len(expr.Exprs) {
				gen.write("${")
				gen.expr(expr.Exprs[i])
				gen.write("}")
			}
		}
		gen.write("`")
	case *YieldExpr:
		switch {
		case expr.Delegate:
			gen.write("(yield* ")
			gen.expr(expr.Arg)
			gen.write(")")
		case expr.Arg != nil:
			gen.write("(yield ")
			gen.expr(expr.Arg)
			gen.write(")")
		default:
			gen.write("(yield)")
		}
	case *AwaitExpr:
		gen.write("(await ")
		gen.expr(expr.Arg)
		gen.write(")")
	}
}

func (gen *generator) infix(left Expr, op string, right Expr) {
	gen.write("(")
	gen.expr(left)
	gen.write(" ", op, " ")
	gen.expr(right)
	gen.write(")")
}

// callee writes the object of a member access, call or tagged template,
// parenthesizing anything that does not already bind tighter.
func (gen *generator) callee(expr Expr) {
	switch expr.(type) {
	case *IdentifierExpr, *ThisExpr, *MemberExpr, *CallExpr, *TaggedTemplateExpr:
		gen.expr(expr)
	default:
		gen.write("(")
		gen.expr(expr)
		gen.write(")")
	}
}

func (gen *generator) list(exprs []Expr) {
	for i, expr := range exprs {
		if i > 0 {
			gen.write(", ")
		}
		gen.expr(expr)
	}
}

func (gen *generator) literal(value interface{}) {
	switch v := value.(type) {
	case nil:
		gen.write("null")
	case bool:
		gen.write(strconv.FormatBool(v))
	case float64:
		gen.write(formatNumber(v))
	case string:
		gen.write(quote(v))
	}
}

func (gen *generator) key(key Expr, computed bool) {
	if computed {
		gen.write("[")
		gen.expr(key)
		gen.write("]")
		return
	}
	gen.expr(key)
}

func (gen *generator) object(expr *ObjectExpr) {
	gen.write("{")
	for i, prop := range expr.Props {
		if i > 0 {
			gen.write(", ")
		}
		switch prop.Kind {
		case PropSpread:
			gen.write("...")
			gen.expr(prop.Value)
		case PropInit:
			if prop.Shorthand {
				gen.expr(prop.Key)
				continue
			}
			gen.key(prop.Key, prop.Computed)
			gen.write(": ")
			gen.expr(prop.Value)
		default:
			gen.method(prop.Kind, prop.Key, prop.Computed, prop.Value.(*FunctionExpr))
		}
	}
	gen.write("}")
}

func (gen *generator) method(kind PropertyKind, key Expr, computed bool, fn *FunctionExpr) {
	switch kind {
	case PropGet:
		gen.write("get ")
	case PropSet:
		gen.write("set ")
	default:
		if fn.Async {
			gen.write("async ")
		}
		if fn.Generator {
			gen.write("*")
		}
	}
	gen.key(key, computed)
	gen.params(fn.Params)
	gen.write(" ")
	gen.block(fn.Body)
}

func (gen *generator) function(fn *FunctionExpr) {
	if fn.Async {
		gen.write("async ")
	}
	gen.write("function")
	if fn.Generator {
		gen.write("*")
	}
	if fn.Name != nil {
		gen.write(" ", fn.Name.Name)
	}
	gen.params(fn.Params)
	gen.write(" ")
	gen.block(fn.Body)
}

func (gen *generator) class(class *ClassExpr) {
	gen.write("class")
	if class.Name != nil {
		gen.write(" ", class.Name.Name)
	}
	if class.SuperClass != nil {
		gen.write(" extends (")
		gen.expr(class.SuperClass)
		gen.write(")")
	}
	gen.write(" {")
	gen.indent++
	for _, method := range class.Methods {
		gen.newline()
		if method.Static {
			gen.write("static ")
		}
		gen.method(method.Kind, method.Key, method.Computed, method.Value)
	}
	gen.indent--
	gen.newline()
	gen.write("}")
}

func (gen *generator) params(params []*Param) {
	gen.write("(")
	for i, param := range params {
		if i > 0 {
			gen.write(", ")
		}
		if param.Rest {
			gen.write("...")
		}
		gen.write(param.Name.Name)
		if param.Default != nil {
			gen.write(" = ")
			gen.expr(param.Default)
		}
	}
	gen.write(")")
}

func (gen *generator) block(stmts []Stmt) {
	gen.write("{")
	gen.indent++
	for _, stmt := range stmts {
		gen.newline()
		gen.stmt(stmt)
	}
	gen.indent--
	gen.newline()
	gen.write("}")
}

func (gen *generator) stmt(stmt Stmt) {
	switch stmt := stmt.(type) {
	case *BlockStmt:
		gen.block(stmt.Stmts)
	case *EmptyStmt:
		gen.write(";")
	case *ExprStmt:
		if _, ok := stmt.Expr.(*ObjectExpr); ok {
			gen.write("(")
			gen.expr(stmt.Expr)
			gen.write(")")
		} else {
			gen.expr(stmt.Expr)
		}
		gen.write(";")
	case *VarStmt:
		gen.decls(stmt)
		gen.write(";")
	case *IfStmt:
		gen.write("if (")
		gen.expr(stmt.Cond)
		gen.write(") ")
		gen.stmt(stmt.ThenBranch)
		if stmt.ElseBranch != nil {
			gen.write(" else ")
			gen.stmt(stmt.ElseBranch)
		}
	case *WhileStmt:
		gen.write("while (")
		gen.expr(stmt.Cond)
		gen.write(") ")
		gen.stmt(stmt.Body)
	case *ForStmt:
		gen.write("for (")
		gen.forHead(stmt.Init)
		gen.write("; ")
		if stmt.Cond != nil {
			gen.expr(stmt.Cond)
		}
		gen.write("; ")
		if stmt.Update != nil {
			gen.expr(stmt.Update)
		}
		gen.write(") ")
		gen.stmt(stmt.Body)
	case *ForInStmt:
		gen.write("for (")
		gen.forHead(stmt.Left)
		if stmt.Of {
			gen.write(" of ")
		} else {
			gen.write(" in ")
		}
		gen.expr(stmt.Right)
		gen.write(") ")
		gen.stmt(stmt.Body)
	case *ReturnStmt:
		if stmt.Val == nil {
			gen.write("return;")
			return
		}
		gen.write("return ")
		gen.expr(stmt.Val)
		gen.write(";")
	case *FunctionStmt:
		gen.function(stmt.Func)
	case *ClassStmt:
		gen.class(stmt.Class)
	}
}

func (gen *generator) forHead(stmt Stmt) {
	switch stmt := stmt.(type) {
	case *VarStmt:
		gen.decls(stmt)
	case *ExprStmt:
		gen.expr(stmt.Expr)
	}
}

func (gen *generator) decls(stmt *VarStmt) {
	gen.write(stmt.Kind, " ")
	for i, decl := range stmt.Decls {
		if i > 0 {
			gen.write(", ")
		}
		gen.write(decl.Name.Name)
		if decl.Init != nil {
			gen.write(" = ")
			gen.expr(decl.Init)
		}
	}
}

func isWordOperator(op string) bool {
	return op == "typeof" || op == "void" || op == "delete"
}

func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "1e999"
	case math.Abs(v) >= 1e21:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// quote returns a double-quoted string literal using only escapes the scanner
// understands. Line and paragraph separators are written as \u escapes.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\v':
			sb.WriteString(`\v`)
		case '\u2028', '\u2029':
			sb.WriteString(`\u` + strconv.FormatInt(int64(r), 16))
		default:
			switch {
			case r < 0x20:
				sb.WriteString(`\x`)
				sb.WriteByte("0123456789abcdef"[r>>4])
				sb.WriteByte("0123456789abcdef"[r&0xf])
			default:
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func escapeTemplate(s string) string {
	var sb strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '`' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '$' && i+1 < len(runes) && runes[i+1] == '{':
			sb.WriteString(`\$`)
		case r == '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
