package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/letung3105/gjs/internal/ast"
	"github.com/stretchr/testify/require"
)

var roundTripScripts = []struct {
	name string
	src  string
	goal Goal
}{
	{"operators", "a + b * c - d / e % f ** g ** h; (-x) ** 2 === void 0;", GoalScript},
	{"logical", "a || b && c ?? d; a ??= b; a ||= c &&= d;", GoalScript},
	{"unary", "!a; -(-a); +(+a); - -a; typeof a.b; delete a[b]; ~a++; --a;", GoalScript},
	{"conditional", "a ? b : c ? d : e; (a ? b : c) ? d : e;", GoalScript},
	{"assignment", "a = b = c; a.b += 1; a[b] **= 2; a >>>= 1;", GoalScript},
	{"sequence", "a, b, (c, d); f((a, b), c);", GoalScript},
	{"calls", "f()(a)(...b); new F; new F(); new (f())(); new new F()(); (new F).x; new F().x; a.b.c(d)[e];", GoalScript},
	{"literals", `1; 0.5; 1e21; 1e-7; 0x10; "a\n\"b\"\\"; 'c '; 'd '; true; false; null; this;`, GoalScript},
	{"regexp", "/a+b/g.test(x); x = /[/]/; y = a / b / c;", GoalScript},
	{"templates", "`a`; `a${b}c${d + e}f`; tag`x${y}`; a.b`c`; `\\${`; `$`;", GoalScript},
	{"arrays", "[]; [,]; [a, , b]; [a, ,]; [...a, b,];", GoalScript},
	{"objects", "({}); ({a, b: 1, [c]: d, 'e': f, 1: g, ...h}); ({get x() {}, set x(v) {}, m() {}, *g() {}, async a() {}, async *b() {}}); ({get: 1, set() {}, async});", GoalScript},
	{"functions", "(function () {}); (function* g(a, b = 1, ...c) { yield a; }); (async function f() { await x; }); function h() { return; }", GoalScript},
	{"arrows", "x => x; () => ({}); (a, b = 1, ...c) => { return a; }; async x => await x; async => async; (a) => (b) => a;", GoalScript},
	{"classes", "class A extends B { constructor() {} static m() {} get x() {} set x(v) {} static() {} *g() {} } (class {}); (class extends (f()) {});", GoalScript},
	{"statements", "var a = 1, b; let c; const d = 2; if (a) b; else { c; } while (a) ; for (;;) {} for (var i = 0; i < n; i++) f(i); for (x in o) ; for (const y of ys) ;", GoalScript},
	{"for in-heads", "for (x = (a in b); ; ) ; for (var v = [a in b]; ; ) ; for (k in a in b) ;", GoalScript},
	{"yield", "yield; yield a; yield* a; yield yield a; yield* yield; x = yield; [yield, yield a]; f(yield); yield\na;", GoalGenerator},
	{"yield in", "yield a in b; yield* a in b; for (yield* a in b; ; ) ; for (yield (a in b); ; ) ;", GoalGenerator},
	{"yield operands", "yield -a; yield !a; yield ~a; yield ++a; yield [a]; yield {}; yield /re/; yield `t`; yield `a${b}`; yield new F; yield function () {}; yield class {}; yield async () => 1; yield 'a'; yield 1; yield null; yield typeof a; yield void a; yield delete a.b; yield (a, b);", GoalGenerator},
	{"async", "await a; await await a; async () => await a; for (const x of await xs) ;", GoalAsync},
	{"async generator", "yield await a; await (yield a); yield* await a;", GoalAsyncGenerator},
}

func TestSourceRoundTrip(t *testing.T) {
	for _, tc := range roundTripScripts {
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)

			want, err := parseScript(tc.src, WithGoal(tc.goal))
			require.NoError(err)

			src := ast.Source(want)
			got, err := parseScript(src, WithGoal(tc.goal))
			require.NoError(err, src)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("regenerated source parsed differently (-want +got):\n%s\nsource:\n%s", diff, src)
			}
			require.Equal(src, ast.Source(got))
		})
	}
}
