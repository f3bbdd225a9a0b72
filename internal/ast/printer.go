package ast

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Mode 打印模式
type Mode int

const (
	ModeBox    Mode = iota // 树形框线
	ModeIndent             // 每层两个空格
)

// Charset 框线字符集
type Charset int

const (
	CharsetUnicode Charset = iota
	CharsetASCII
)

// Class 标签分类，供着色使用
type Class int

const (
	ClassNode        Class = iota // 具体节点
	ClassSection                  // 子节点分组，如 COND / THEN
	ClassPlaceholder              // 空子节点
)

// Placeholder 空子树的占位文本
const Placeholder = "(none)"

// Options 打印选项
type Options struct {
	Mode      Mode
	Charset   Charset
	ShowTypes bool                           // 表达式后附 [类型]
	Highlight func(c Class, s string) string // 可选，包装标签文本
}

// glyphs 一层前缀的四种片段
type glyphs struct {
	mid   string // 非最后一个兄弟
	last  string // 最后一个兄弟
	bar   string // 祖先还有后续兄弟
	blank string // 祖先是最后一个兄弟
}

var (
	unicodeGlyphs = glyphs{mid: "├── ", last: "└── ", bar: "│   ", blank: "    "}
	asciiGlyphs   = glyphs{mid: "|-- ", last: "`-- ", bar: "|   ", blank: "    "}
	indentGlyphs  = glyphs{mid: "  ", last: "  ", bar: "  ", blank: "  "}
)

func (o Options) glyphs() glyphs {
	if o.Mode == ModeIndent {
		return indentGlyphs
	}
	if o.Charset == CharsetASCII {
		return asciiGlyphs
	}
	return unicodeGlyphs
}

type printer struct {
	w      *bufio.Writer
	opts   Options
	g      glyphs
	prefix []byte // 可增长，嵌套深度不受限制
}

// Fprint 把整棵树写到 w。只读遍历；返回写入错误。
func Fprint(w io.Writer, p *Program, opts Options) error {
	pr := &printer{
		w:    bufio.NewWriter(w),
		opts: opts,
		g:    opts.glyphs(),
	}
	pr.program(p)
	return pr.w.Flush()
}

// Sprint 返回渲染结果
func Sprint(p *Program, opts Options) string {
	var sb strings.Builder
	_ = Fprint(&sb, p, opts)
	return sb.String()
}

func (p *printer) label(c Class, s string) string {
	if p.opts.Highlight != nil {
		return p.opts.Highlight(c, s)
	}
	return s
}

// line 输出 prefix + 标记 + 标签
func (p *printer) line(last bool, c Class, s string) {
	p.w.Write(p.prefix)
	if last {
		p.w.WriteString(p.g.last)
	} else {
		p.w.WriteString(p.g.mid)
	}
	p.w.WriteString(p.label(c, s))
	p.w.WriteByte('\n')
}

// node 输出本节点，然后在子前缀下执行 children
func (p *printer) node(last bool, c Class, s string, children func()) {
	p.line(last, c, s)
	if children == nil {
		return
	}
	n := len(p.prefix)
	if last {
		p.prefix = append(p.prefix, p.g.blank...)
	} else {
		p.prefix = append(p.prefix, p.g.bar...)
	}
	children()
	p.prefix = p.prefix[:n]
}

func (p *printer) none(last bool) {
	p.line(last, ClassPlaceholder, Placeholder)
}

func (p *printer) section(last bool, title string, body func()) {
	p.node(last, ClassSection, title, body)
}

func (p *printer) program(prog *Program) {
	if prog == nil {
		p.w.WriteString(p.label(ClassPlaceholder, Placeholder))
		p.w.WriteByte('\n')
		return
	}
	p.w.WriteString(p.label(ClassNode, "PROGRAM "+prog.Name))
	p.w.WriteByte('\n')
	p.block(true, prog.Block)
}

// block 子节点顺序：VARIABLES, SUBROUTINES, STATEMENTS
func (p *printer) block(last bool, b *Block) {
	if b == nil {
		p.none(last)
		return
	}
	p.node(last, ClassNode, "BLOCK", func() {
		p.section(false, "VARIABLES", func() { p.decls(b.Vars) })
		p.section(false, "SUBROUTINES", func() { p.decls(b.Subroutines) })
		p.section(true, "STATEMENTS", func() { p.stmts(b.Stmts) })
	})
}

// ---------------------------------------------------------------------
// 声明
// ---------------------------------------------------------------------

func (p *printer) decls(l *DeclList) {
	if l.Len() == 0 {
		p.none(true)
		return
	}
	for d := l.Front(); d != nil; d = d.Next() {
		p.decl(d.Next() == nil, d)
	}
}

func (p *printer) decl(last bool, d Decl) {
	switch d := d.(type) {
	case *VarDecl:
		p.line(last, ClassNode, fmt.Sprintf("VAR %s : %s", joinIdents(d.Idents), d.Type))
	case *ProcDecl:
		p.node(last, ClassNode, "PROCEDURE "+d.Name, func() {
			p.section(false, "PARAMS", func() { p.params(d.Params) })
			p.section(true, "BODY", func() { p.block(true, d.Body) })
		})
	case *FuncDecl:
		p.node(last, ClassNode, fmt.Sprintf("FUNCTION %s : %s", d.Name, d.Result), func() {
			p.section(false, "PARAMS", func() { p.params(d.Params) })
			p.section(true, "BODY", func() { p.block(true, d.Body) })
		})
	default:
		p.none(last)
	}
}

func (p *printer) params(l *ParamList) {
	if l.Len() == 0 {
		p.none(true)
		return
	}
	for pd := l.Front(); pd != nil; pd = pd.Next() {
		p.line(pd.Next() == nil, ClassNode, fmt.Sprintf("PARAM %s : %s", joinIdents(pd.Idents), pd.Type))
	}
}

func joinIdents(l *IdentList) string {
	if l.Len() == 0 {
		return Placeholder
	}
	return strings.Join(l.Names(), ", ")
}

// ---------------------------------------------------------------------
// 语句
// ---------------------------------------------------------------------

func (p *printer) stmts(l *StmtList) {
	if l.Len() == 0 {
		p.none(true)
		return
	}
	for s := l.Front(); s != nil; s = s.Next() {
		p.stmt(s.Next() == nil, s)
	}
}

// single 单个可选子语句
func (p *printer) single(s Stmt) {
	if isNil(s) {
		p.none(true)
		return
	}
	p.stmt(true, s)
}

func (p *printer) stmt(last bool, s Stmt) {
	if isNil(s) {
		p.none(last)
		return
	}
	switch s := s.(type) {
	case *AssignStmt:
		p.node(last, ClassNode, "ASSIGN "+s.Name+" :=", func() {
			p.expr(true, s.Value)
		})
	case *IfStmt:
		p.node(last, ClassNode, "IF", func() {
			p.section(false, "COND", func() { p.expr(true, s.Cond) })
			p.section(false, "THEN", func() { p.single(s.Then) })
			p.section(true, "ELSE", func() { p.single(s.Else) })
		})
	case *WhileStmt:
		p.node(last, ClassNode, "WHILE", func() {
			p.section(false, "COND", func() { p.expr(true, s.Cond) })
			p.section(true, "DO", func() { p.single(s.Body) })
		})
	case *ReadStmt:
		p.node(last, ClassNode, "READ", func() {
			if s.Idents.Len() == 0 {
				p.none(true)
				return
			}
			for id := s.Idents.Front(); id != nil; id = id.Next() {
				p.line(id.Next() == nil, ClassNode, "ID "+id.Name)
			}
		})
	case *WriteStmt:
		p.node(last, ClassNode, "WRITE", func() { p.exprs(s.Exprs) })
	case *CallStmt:
		p.node(last, ClassNode, "CALL "+s.Name, func() { p.exprs(s.Args) })
	case *CompoundStmt:
		p.node(last, ClassNode, "COMPOUND", func() { p.block(true, s.Block) })
	default:
		p.none(last)
	}
}

// ---------------------------------------------------------------------
// 表达式
// ---------------------------------------------------------------------

func (p *printer) exprs(l *ExprList) {
	if l.Len() == 0 {
		p.none(true)
		return
	}
	for e := l.Front(); e != nil; e = e.Next() {
		p.expr(e.Next() == nil, e)
	}
}

func (p *printer) typed(s string, e Expr) string {
	if !p.opts.ShowTypes {
		return s
	}
	return s + " [" + e.Type().String() + "]"
}

// expr 子节点顺序：Binary 左、右；Unary 操作数；Call 实参
func (p *printer) expr(last bool, e Expr) {
	if isNil(e) {
		p.none(last)
		return
	}
	switch e := e.(type) {
	case *NumberExpr:
		p.line(last, ClassNode, p.typed("NUM "+strconv.Itoa(e.Value), e))
	case *BoolExpr:
		p.line(last, ClassNode, p.typed("BOOL "+strconv.FormatBool(e.Value), e))
	case *VarExpr:
		p.line(last, ClassNode, p.typed("VAR "+e.Name, e))
	case *BinaryExpr:
		p.node(last, ClassNode, p.typed("BINOP "+e.Op.String(), e), func() {
			p.expr(false, e.Left)
			p.expr(true, e.Right)
		})
	case *UnaryExpr:
		p.node(last, ClassNode, p.typed("UNOP "+e.Op.String(), e), func() {
			p.expr(true, e.Operand)
		})
	case *CallExpr:
		p.node(last, ClassNode, p.typed("CALL "+e.Name, e), func() {
			p.exprs(e.Args)
		})
	default:
		p.none(last)
	}
}
