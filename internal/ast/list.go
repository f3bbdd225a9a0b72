package ast

// 所有链表头都记录 head/tail/长度，追加是 O(1)。
// nil 链表等价于空链表，读方法都接受 nil 接收者。

// ExprList 表达式链表（实参、write 列表）
type ExprList struct {
	header
	head Expr
	tail Expr
	n    int
}

func (l *ExprList) Front() Expr {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *ExprList) Len() int {
	if l == nil {
		return 0
	}
	return l.n
}

// Slice 按插入顺序返回所有元素
func (l *ExprList) Slice() []Expr {
	out := make([]Expr, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e)
	}
	return out
}

// StmtList 语句序列
type StmtList struct {
	header
	head Stmt
	tail Stmt
	n    int
}

func (l *StmtList) Front() Stmt {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *StmtList) Len() int {
	if l == nil {
		return 0
	}
	return l.n
}

func (l *StmtList) Slice() []Stmt {
	out := make([]Stmt, 0, l.Len())
	for s := l.Front(); s != nil; s = s.Next() {
		out = append(out, s)
	}
	return out
}

// DeclList 声明序列（变量声明或子程序声明）
type DeclList struct {
	header
	head Decl
	tail Decl
	n    int
}

func (l *DeclList) Front() Decl {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *DeclList) Len() int {
	if l == nil {
		return 0
	}
	return l.n
}

func (l *DeclList) Slice() []Decl {
	out := make([]Decl, 0, l.Len())
	for d := l.Front(); d != nil; d = d.Next() {
		out = append(out, d)
	}
	return out
}

// IdentList 标识符列表
type IdentList struct {
	header
	head *Ident
	tail *Ident
	n    int
}

func (l *IdentList) Front() *Ident {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *IdentList) Len() int {
	if l == nil {
		return 0
	}
	return l.n
}

// Names 返回所有标识符名
func (l *IdentList) Names() []string {
	out := make([]string, 0, l.Len())
	for id := l.Front(); id != nil; id = id.Next() {
		out = append(out, id.Name)
	}
	return out
}

// ParamList 形参声明列表
type ParamList struct {
	header
	head *ParamDecl
	tail *ParamDecl
	n    int
}

func (l *ParamList) Front() *ParamDecl {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *ParamList) Len() int {
	if l == nil {
		return 0
	}
	return l.n
}

func (l *ParamList) Slice() []*ParamDecl {
	out := make([]*ParamDecl, 0, l.Len())
	for p := l.Front(); p != nil; p = p.Next() {
		out = append(out, p)
	}
	return out
}
