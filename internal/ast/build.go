package ast

import (
	"fmt"
	"strings"
)

// Stats 节点与名字的计数
type Stats struct {
	Nodes int // 节点（含链表头）
	Names int // 节点持有的名字
}

func (s Stats) sub(o Stats) Stats {
	return Stats{Nodes: s.Nodes - o.Nodes, Names: s.Names - o.Names}
}

func (s Stats) add(o Stats) Stats {
	return Stats{Nodes: s.Nodes + o.Nodes, Names: s.Names + o.Names}
}

// Builder 节点构造器，由语法分析器自底向上调用。
// 零值可直接使用；它只做计数，不持有任何节点。
type Builder struct {
	alloc Stats
	freed Stats
}

// NewBuilder 创建构造器
func NewBuilder() *Builder {
	return &Builder{}
}

// Allocated 累计分配
func (b *Builder) Allocated() Stats { return b.alloc }

// Live 尚未释放的分配
func (b *Builder) Live() Stats { return b.alloc.sub(b.freed) }

func (b *Builder) count() { b.alloc.Nodes++ }

// name 复制名字，不保留调用方的底层缓冲
func (b *Builder) name(s string) string {
	b.alloc.Names++
	return strings.Clone(s)
}

// alive 已释放的节点不能再使用
func alive(n Node) {
	if n.hdr().released {
		panic(fmt.Sprintf("ast: %T used after release", n))
	}
}

// claim 把节点标记为已挂载；同一节点挂两次是致命错误
func claim(n Node) {
	alive(n)
	h := n.hdr()
	if h.attached {
		panic(fmt.Sprintf("ast: %T is already attached to another parent", n))
	}
	h.attached = true
}

// claimExpr 返回规范化后的子节点，带类型的 nil 变为 nil
func claimExpr(e Expr) Expr {
	if isNil(e) {
		return nil
	}
	claim(e)
	return e
}

func claimStmt(s Stmt) Stmt {
	if isNil(s) {
		return nil
	}
	claim(s)
	return s
}

func claimExprs(l *ExprList) {
	if l != nil {
		claim(l)
	}
}

func claimIdents(l *IdentList) {
	if l != nil {
		claim(l)
	}
}

func claimParams(l *ParamList) {
	if l != nil {
		claim(l)
	}
}

func claimDecls(l *DeclList) {
	if l != nil {
		claim(l)
	}
}

func claimBlock(blk *Block) {
	if blk != nil {
		claim(blk)
	}
}

// ---------------------------------------------------------------------
// 表达式
// ---------------------------------------------------------------------

// Number 整数字面量，类型固定为 integer
func (b *Builder) Number(v int) *NumberExpr {
	b.count()
	e := &NumberExpr{Value: v}
	e.typ = TypeInteger
	return e
}

// Bool 布尔字面量，类型固定为 boolean
func (b *Builder) Bool(v bool) *BoolExpr {
	b.count()
	e := &BoolExpr{Value: v}
	e.typ = TypeBoolean
	return e
}

// Var 变量引用，类型待语义分析
func (b *Builder) Var(name string) *VarExpr {
	b.count()
	return &VarExpr{Name: b.name(name)}
}

// Binary 二元运算
func (b *Builder) Binary(op Operator, left, right Expr) *BinaryExpr {
	left, right = claimExpr(left), claimExpr(right)
	b.count()
	return &BinaryExpr{Op: op, Left: left, Right: right}
}

// Unary 一元运算
func (b *Builder) Unary(op Operator, operand Expr) *UnaryExpr {
	operand = claimExpr(operand)
	b.count()
	return &UnaryExpr{Op: op, Operand: operand}
}

// CallFunc 函数调用表达式，args 可为 nil
func (b *Builder) CallFunc(name string, args *ExprList) *CallExpr {
	claimExprs(args)
	b.count()
	return &CallExpr{Name: b.name(name), Args: args}
}

// ---------------------------------------------------------------------
// 语句
// ---------------------------------------------------------------------

func (b *Builder) Assign(name string, value Expr) *AssignStmt {
	value = claimExpr(value)
	b.count()
	return &AssignStmt{Name: b.name(name), Value: value}
}

// If els 可为 nil
func (b *Builder) If(cond Expr, then, els Stmt) *IfStmt {
	cond = claimExpr(cond)
	then, els = claimStmt(then), claimStmt(els)
	b.count()
	return &IfStmt{Cond: cond, Then: then, Else: els}
}

func (b *Builder) While(cond Expr, body Stmt) *WhileStmt {
	cond = claimExpr(cond)
	body = claimStmt(body)
	b.count()
	return &WhileStmt{Cond: cond, Body: body}
}

func (b *Builder) Read(ids *IdentList) *ReadStmt {
	claimIdents(ids)
	b.count()
	return &ReadStmt{Idents: ids}
}

func (b *Builder) Write(exprs *ExprList) *WriteStmt {
	claimExprs(exprs)
	b.count()
	return &WriteStmt{Exprs: exprs}
}

// CallProc 过程调用语句
func (b *Builder) CallProc(name string, args *ExprList) *CallStmt {
	claimExprs(args)
	b.count()
	return &CallStmt{Name: b.name(name), Args: args}
}

// Compound begin ... end，独占 blk
func (b *Builder) Compound(blk *Block) *CompoundStmt {
	claimBlock(blk)
	b.count()
	return &CompoundStmt{Block: blk}
}

// ---------------------------------------------------------------------
// 声明
// ---------------------------------------------------------------------

func (b *Builder) VarDecl(ids *IdentList, typ SemanticType) *VarDecl {
	claimIdents(ids)
	b.count()
	return &VarDecl{Idents: ids, Type: typ}
}

// ProcDecl 过程声明；过程没有返回类型
func (b *Builder) ProcDecl(name string, params *ParamList, body *Block) *ProcDecl {
	claimParams(params)
	claimBlock(body)
	b.count()
	return &ProcDecl{Name: b.name(name), Params: params, Body: body}
}

func (b *Builder) FuncDecl(name string, params *ParamList, result SemanticType, body *Block) *FuncDecl {
	claimParams(params)
	claimBlock(body)
	b.count()
	return &FuncDecl{Name: b.name(name), Params: params, Result: result, Body: body}
}

// Param 一组同类型形参 (a, b: integer)
func (b *Builder) Param(ids *IdentList, typ SemanticType) *ParamDecl {
	claimIdents(ids)
	b.count()
	return &ParamDecl{Idents: ids, Type: typ}
}

// Block 三个子列表都可为 nil
func (b *Builder) Block(vars, subroutines *DeclList, stmts *StmtList) *Block {
	claimDecls(vars)
	claimDecls(subroutines)
	if stmts != nil {
		claim(stmts)
	}
	b.count()
	return &Block{Vars: vars, Subroutines: subroutines, Stmts: stmts}
}

// Program 根节点。调用方持有返回值，没有全局根引用。
func (b *Builder) Program(name string, blk *Block) *Program {
	claimBlock(blk)
	b.count()
	return &Program{Name: b.name(name), Block: blk}
}

// ---------------------------------------------------------------------
// 追加
// ---------------------------------------------------------------------

// AppendExpr 把 e 接到链表尾部。l 为 nil 时新建链表。
// 调用方必须使用返回值。
func (b *Builder) AppendExpr(l *ExprList, e Expr) *ExprList {
	if l != nil {
		alive(l)
	}
	if isNil(e) {
		return l
	}
	claim(e)
	if l == nil {
		b.count()
		l = &ExprList{}
	}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.exprBase().next = e
	}
	l.tail = e
	l.n++
	return l
}

func (b *Builder) AppendStmt(l *StmtList, s Stmt) *StmtList {
	if l != nil {
		alive(l)
	}
	if isNil(s) {
		return l
	}
	claim(s)
	if l == nil {
		b.count()
		l = &StmtList{}
	}
	if l.tail == nil {
		l.head = s
	} else {
		l.tail.stmtBase().next = s
	}
	l.tail = s
	l.n++
	return l
}

func (b *Builder) AppendDecl(l *DeclList, d Decl) *DeclList {
	if l != nil {
		alive(l)
	}
	if isNil(d) {
		return l
	}
	claim(d)
	if l == nil {
		b.count()
		l = &DeclList{}
	}
	if l.tail == nil {
		l.head = d
	} else {
		l.tail.declBase().next = d
	}
	l.tail = d
	l.n++
	return l
}

// AppendIdent 新建标识符节点并追加
func (b *Builder) AppendIdent(l *IdentList, name string) *IdentList {
	if l != nil {
		alive(l)
	}
	id := &Ident{Name: b.name(name)}
	b.count()
	id.attached = true
	if l == nil {
		b.count()
		l = &IdentList{}
	}
	if l.tail == nil {
		l.head = id
	} else {
		l.tail.next = id
	}
	l.tail = id
	l.n++
	return l
}

func (b *Builder) AppendParam(l *ParamList, p *ParamDecl) *ParamList {
	if l != nil {
		alive(l)
	}
	if p == nil {
		return l
	}
	claim(p)
	if l == nil {
		b.count()
		l = &ParamList{}
	}
	if l.tail == nil {
		l.head = p
	} else {
		l.tail.next = p
	}
	l.tail = p
	l.n++
	return l
}
