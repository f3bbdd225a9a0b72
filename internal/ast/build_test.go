package ast

import (
	"strings"
	"testing"
	"unsafe"
)

// fullProgram 覆盖所有节点种类
//
//	program demo;
//	var a, b: integer; ok: boolean;
//	function sq(n: integer): integer; begin sq := n * n end;
//	procedure show(v: integer; f: boolean); begin write(v, f) end;
//	begin
//	  read(a, b);
//	  if not ok then a := -b else begin show(sq(a), true) end;
//	  while a > 0 do a := a - 1
//	end.
func fullProgram(b *Builder) *Program {
	var vars *DeclList
	vars = b.AppendDecl(vars, b.VarDecl(b.AppendIdent(b.AppendIdent(nil, "a"), "b"), TypeInteger))
	vars = b.AppendDecl(vars, b.VarDecl(b.AppendIdent(nil, "ok"), TypeBoolean))

	sqParams := b.AppendParam(nil, b.Param(b.AppendIdent(nil, "n"), TypeInteger))
	sqBody := b.Block(nil, nil, b.AppendStmt(nil,
		b.Assign("sq", b.Binary(OpMul, b.Var("n"), b.Var("n")))))
	sq := b.FuncDecl("sq", sqParams, TypeInteger, sqBody)

	var showParams *ParamList
	showParams = b.AppendParam(showParams, b.Param(b.AppendIdent(nil, "v"), TypeInteger))
	showParams = b.AppendParam(showParams, b.Param(b.AppendIdent(nil, "f"), TypeBoolean))
	var wargs *ExprList
	wargs = b.AppendExpr(wargs, b.Var("v"))
	wargs = b.AppendExpr(wargs, b.Var("f"))
	show := b.ProcDecl("show", showParams, b.Block(nil, nil, b.AppendStmt(nil, b.Write(wargs))))

	var subs *DeclList
	subs = b.AppendDecl(subs, sq)
	subs = b.AppendDecl(subs, show)

	var cargs *ExprList
	cargs = b.AppendExpr(cargs, b.CallFunc("sq", b.AppendExpr(nil, b.Var("a"))))
	cargs = b.AppendExpr(cargs, b.Bool(true))
	elseBranch := b.Compound(b.Block(nil, nil, b.AppendStmt(nil, b.CallProc("show", cargs))))

	var stmts *StmtList
	stmts = b.AppendStmt(stmts, b.Read(b.AppendIdent(b.AppendIdent(nil, "a"), "b")))
	stmts = b.AppendStmt(stmts, b.If(
		b.Unary(OpNot, b.Var("ok")),
		b.Assign("a", b.Unary(OpSub, b.Var("b"))),
		elseBranch,
	))
	stmts = b.AppendStmt(stmts, b.While(
		b.Binary(OpGt, b.Var("a"), b.Number(0)),
		b.Assign("a", b.Binary(OpSub, b.Var("a"), b.Number(1))),
	))

	return b.Program("demo", b.Block(vars, subs, stmts))
}

func TestAppendPreservesOrder(t *testing.T) {
	b := NewBuilder()

	var l *ExprList
	for _, name := range []string{"a", "b", "c"} {
		l = b.AppendExpr(l, b.Var(name))
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	var got []string
	for e := l.Front(); e != nil; e = e.Next() {
		got = append(got, e.(*VarExpr).Name)
	}
	if strings.Join(got, ",") != "a,b,c" {
		t.Errorf("order = %v, want [a b c]", got)
	}

	var ids *IdentList
	for _, name := range []string{"x", "y", "z"} {
		ids = b.AppendIdent(ids, name)
	}
	if got := strings.Join(ids.Names(), ","); got != "x,y,z" {
		t.Errorf("ident order = %s, want x,y,z", got)
	}
}

func TestAppendReturnsSameHead(t *testing.T) {
	b := NewBuilder()

	first := b.AppendStmt(nil, b.Assign("x", b.Number(1)))
	second := b.AppendStmt(first, b.Assign("y", b.Number(2)))
	if first != second {
		t.Error("append to a non-empty list must return the original head")
	}
	if second.Front().(*AssignStmt).Name != "x" {
		t.Error("head element changed after append")
	}
}

func TestAppendNilItem(t *testing.T) {
	b := NewBuilder()
	if l := b.AppendExpr(nil, nil); l != nil {
		t.Errorf("AppendExpr(nil, nil) = %v, want nil", l)
	}
	l := b.AppendDecl(nil, b.VarDecl(b.AppendIdent(nil, "x"), TypeInteger))
	if got := b.AppendDecl(l, nil); got != l || got.Len() != 1 {
		t.Error("appending nil must leave the list unchanged")
	}
}

func TestNilListReaders(t *testing.T) {
	var (
		el *ExprList
		sl *StmtList
		dl *DeclList
		il *IdentList
		pl *ParamList
	)
	if el.Len()+sl.Len()+dl.Len()+il.Len()+pl.Len() != 0 {
		t.Error("nil lists must report zero length")
	}
	if el.Front() != nil || sl.Front() != nil || dl.Front() != nil || il.Front() != nil || pl.Front() != nil {
		t.Error("nil lists must have no front element")
	}
	if len(el.Slice()) != 0 || len(il.Names()) != 0 {
		t.Error("nil lists must produce empty slices")
	}
}

func TestSemanticTypeAtConstruction(t *testing.T) {
	b := NewBuilder()

	tests := []struct {
		name string
		expr Expr
		want SemanticType
	}{
		{"number", b.Number(7), TypeInteger},
		{"bool", b.Bool(false), TypeBoolean},
		{"var", b.Var("x"), TypeVoid},
		{"binary", b.Binary(OpAdd, b.Number(1), b.Number(2)), TypeVoid},
		{"unary", b.Unary(OpNot, b.Bool(true)), TypeVoid},
		{"call", b.CallFunc("f", nil), TypeVoid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.Type(); got != tt.want {
				t.Errorf("Type() = %s, want %s", got, tt.want)
			}
			if tt.expr.Next() != nil {
				t.Error("new node must have an empty next link")
			}
		})
	}
}

func TestStructurallyEqualNodesStayDistinct(t *testing.T) {
	b := NewBuilder()
	l := b.Number(1)
	r := b.Number(1)
	bin := b.Binary(OpAdd, l, r)
	if bin.Left == bin.Right {
		t.Error("identical literals must remain distinct nodes")
	}
	if b.Allocated().Nodes != 3 {
		t.Errorf("Allocated().Nodes = %d, want 3", b.Allocated().Nodes)
	}
}

func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", what)
		}
	}()
	fn()
}

func TestNamesAreCopied(t *testing.T) {
	b := NewBuilder()
	buf := []byte("alpha")
	// 与 buf 共享内存的字符串
	name := unsafe.String(&buf[0], len(buf))

	v := b.Var(name)
	p := b.ProcDecl(name, nil, nil)
	ids := b.AppendIdent(nil, name)
	copy(buf, "omega")

	if v.Name != "alpha" || p.Name != "alpha" || ids.Front().Name != "alpha" {
		t.Errorf("names follow the caller buffer: %q %q %q", v.Name, p.Name, ids.Front().Name)
	}
	if got := b.Allocated().Names; got != 3 {
		t.Errorf("Allocated().Names = %d, want 3", got)
	}
}

func TestTypedNilChildIsEmpty(t *testing.T) {
	b := NewBuilder()
	var (
		els     *AssignStmt
		operand *NumberExpr
	)

	s := b.If(b.Bool(true), b.Assign("x", b.Number(1)), els)
	if s.Else != nil {
		t.Errorf("Else = %#v, want nil", s.Else)
	}
	if u := b.Unary(OpNot, operand); u.Operand != nil {
		t.Errorf("Operand = %#v, want nil", u.Operand)
	}
	if w := b.While(b.Bool(false), els); w.Body != nil {
		t.Errorf("Body = %#v, want nil", w.Body)
	}
	if l := b.AppendStmt(nil, els); l != nil {
		t.Errorf("AppendStmt(nil, typed nil) = %v, want nil", l)
	}
	if l := b.AppendExpr(nil, operand); l != nil {
		t.Errorf("AppendExpr(nil, typed nil) = %v, want nil", l)
	}
}

func TestReattachPanics(t *testing.T) {
	b := NewBuilder()

	shared := b.Number(1)
	b.Binary(OpAdd, shared, b.Number(2))
	mustPanic(t, "expression attached twice", func() {
		b.Unary(OpSub, shared)
	})

	s := b.Assign("x", b.Number(1))
	list := b.AppendStmt(nil, s)
	mustPanic(t, "statement appended twice", func() {
		b.AppendStmt(list, s)
	})

	blk := b.Block(nil, nil, nil)
	b.Compound(blk)
	mustPanic(t, "block owned twice", func() {
		b.Program("p", blk)
	})
}

func TestOperatorString(t *testing.T) {
	tests := map[Operator]string{
		OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "div",
		OpOr: "or", OpAnd: "and", OpNot: "not",
		OpEq: "=", OpNe: "<>", OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=",
	}
	for op, want := range tests {
		if got := op.String(); got != want {
			t.Errorf("Operator(%d).String() = %q, want %q", op, got, want)
		}
	}
	if !OpLe.IsRelational() || OpAdd.IsRelational() {
		t.Error("IsRelational misclassifies operators")
	}
	if !OpAnd.IsLogical() || OpMul.IsLogical() {
		t.Error("IsLogical misclassifies operators")
	}
}
