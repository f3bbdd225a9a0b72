package ast

import "testing"

func TestReleaseReturnsToBaseline(t *testing.T) {
	b := NewBuilder()
	prog := fullProgram(b)

	alloc := b.Allocated()
	if alloc.Nodes == 0 || alloc.Names == 0 {
		t.Fatalf("Allocated() = %+v, want non-zero", alloc)
	}

	got := b.Release(prog)
	if got != alloc {
		t.Errorf("Release() = %+v, want %+v", got, alloc)
	}
	if live := b.Live(); live != (Stats{}) {
		t.Errorf("Live() = %+v after release, want zero", live)
	}
}

func TestReleaseClearsTree(t *testing.T) {
	b := NewBuilder()
	prog := fullProgram(b)
	blk := prog.Block
	stmts := blk.Stmts
	first := stmts.Front()

	b.Release(prog)

	if prog.Block != nil || prog.Name != "" {
		t.Error("program fields not cleared")
	}
	if blk.Vars != nil || blk.Subroutines != nil || blk.Stmts != nil {
		t.Error("block lists not cleared")
	}
	if stmts.Len() != 0 || stmts.Front() != nil {
		t.Error("statement list not cleared")
	}
	if first.Next() != nil {
		t.Error("statement next link not cleared")
	}
}

func TestReleaseNilIsNoop(t *testing.T) {
	if s := Release(nil); s != (Stats{}) {
		t.Errorf("Release(nil) = %+v, want zero", s)
	}

	b := NewBuilder()
	empty := b.Program("empty", nil)
	if s := b.Release(empty); s != (Stats{Nodes: 1, Names: 1}) {
		t.Errorf("Release(empty) = %+v", s)
	}
	if b.Live() != (Stats{}) {
		t.Errorf("Live() = %+v", b.Live())
	}
}

func TestReleaseTwiceIsNoop(t *testing.T) {
	b := NewBuilder()
	prog := fullProgram(b)
	b.Release(prog)
	if s := b.Release(prog); s != (Stats{}) {
		t.Errorf("second Release() = %+v, want zero", s)
	}
	if b.Live() != (Stats{}) {
		t.Errorf("Live() = %+v, want zero", b.Live())
	}
}

func TestReleasedNodeCannotBeReattached(t *testing.T) {
	b := NewBuilder()
	e := b.Number(1)
	prog := b.Program("p", b.Block(nil, nil, b.AppendStmt(nil, b.Write(b.AppendExpr(nil, e)))))
	b.Release(prog)
	mustPanic(t, "reuse after release", func() {
		b.Unary(OpSub, e)
	})
}

func TestAppendToReleasedListPanics(t *testing.T) {
	b := NewBuilder()
	stmts := b.AppendStmt(nil, b.Assign("a", b.Number(1)))
	args := b.AppendExpr(nil, b.Number(2))
	ids := b.AppendIdent(nil, "x")
	vars := b.AppendDecl(nil, b.VarDecl(b.AppendIdent(nil, "y"), TypeInteger))
	params := b.AppendParam(nil, b.Param(b.AppendIdent(nil, "z"), TypeBoolean))

	stmts = b.AppendStmt(stmts, b.Read(ids))
	stmts = b.AppendStmt(stmts, b.Write(args))
	sub := b.ProcDecl("q", params, b.Block(nil, nil, nil))
	prog := b.Program("p", b.Block(vars, b.AppendDecl(nil, sub), stmts))
	b.Release(prog)

	mustPanic(t, "statement appended to released list", func() {
		b.AppendStmt(stmts, b.Assign("b", b.Number(2)))
	})
	mustPanic(t, "expression appended to released list", func() {
		b.AppendExpr(args, b.Number(3))
	})
	mustPanic(t, "identifier appended to released list", func() {
		b.AppendIdent(ids, "w")
	})
	mustPanic(t, "declaration appended to released list", func() {
		b.AppendDecl(vars, nil)
	})
	mustPanic(t, "parameter appended to released list", func() {
		b.AppendParam(params, nil)
	})

	if stmts.Len() != 0 || args.Len() != 0 || ids.Len() != 0 {
		t.Errorf("released lists grew: %d %d %d", stmts.Len(), args.Len(), ids.Len())
	}
}

func TestReleaseSkipsTypedNilChild(t *testing.T) {
	b := NewBuilder()
	s := b.If(b.Bool(true), b.Assign("x", b.Number(1)), nil)
	prog := b.Program("p", b.Block(nil, nil, b.AppendStmt(nil, s)))
	var els *WhileStmt
	s.Else = els

	b.Release(prog)
	if b.Live() != (Stats{}) {
		t.Errorf("Live() = %+v, want zero", b.Live())
	}
}

// nestedWhile 构造 depth 层 while true do ... x := 1
func nestedWhile(b *Builder, depth int) *Program {
	var body Stmt = b.Assign("x", b.Number(1))
	for i := 0; i < depth; i++ {
		body = b.While(b.Bool(true), body)
	}
	return b.Program("deep", b.Block(nil, nil, b.AppendStmt(nil, body)))
}

func TestReleaseDeepNesting(t *testing.T) {
	b := NewBuilder()
	prog := nestedWhile(b, 200000)
	b.Release(prog)
	if b.Live() != (Stats{}) {
		t.Errorf("Live() = %+v, want zero", b.Live())
	}
}

func TestReleaseLongList(t *testing.T) {
	b := NewBuilder()
	var stmts *StmtList
	for i := 0; i < 100000; i++ {
		stmts = b.AppendStmt(stmts, b.Assign("x", b.Number(i)))
	}
	prog := b.Program("long", b.Block(nil, nil, stmts))
	s := b.Release(prog)
	// 每条语句 2 个节点 + 链表头 + block + program
	if want := 2*100000 + 3; s.Nodes != want {
		t.Errorf("Nodes = %d, want %d", s.Nodes, want)
	}
	if b.Live() != (Stats{}) {
		t.Errorf("Live() = %+v", b.Live())
	}
}
