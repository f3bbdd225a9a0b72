package ast

import "reflect"

// SemanticType 表达式的语义类型
type SemanticType int

const (
	TypeVoid SemanticType = iota // 未推导 / 无类型
	TypeInteger
	TypeBoolean
)

func (t SemanticType) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	case TypeVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Operator 运算符
type Operator int

const (
	OpAdd Operator = iota // +
	OpSub                 // - (一元时为取负)
	OpMul                 // *
	OpDiv                 // div
	OpOr                  // or
	OpAnd                 // and
	OpNot                 // not
	OpEq                  // =
	OpNe                  // <>
	OpLt                  // <
	OpLe                  // <=
	OpGt                  // >
	OpGe                  // >=
)

var operatorNames = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "div",
	OpOr:  "or",
	OpAnd: "and",
	OpNot: "not",
	OpEq:  "=",
	OpNe:  "<>",
	OpLt:  "<",
	OpLe:  "<=",
	OpGt:  ">",
	OpGe:  ">=",
}

func (op Operator) String() string {
	if op >= 0 && int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "?"
}

// IsRelational 比较运算符
func (op Operator) IsRelational() bool {
	return op >= OpEq && op <= OpGe
}

// IsLogical and / or / not
func (op Operator) IsLogical() bool {
	return op == OpAnd || op == OpOr || op == OpNot
}

// Node AST 节点接口
type Node interface {
	hdr() *header
}

// header 每个节点的所有权状态
type header struct {
	attached bool // 已挂到父节点或列表
	released bool
}

func (h *header) hdr() *header { return h }

// isNil 带类型的 nil（如 (*AssignStmt)(nil)）同样视为空子树
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Expr 表达式接口
type Expr interface {
	Node
	Type() SemanticType
	SetType(t SemanticType)
	Next() Expr
	exprBase() *exprNode
}

// exprNode 表达式公共部分
type exprNode struct {
	header
	typ  SemanticType
	next Expr // 仅在 ExprList 中使用
}

func (e *exprNode) Type() SemanticType     { return e.typ }
func (e *exprNode) SetType(t SemanticType) { e.typ = t }
func (e *exprNode) Next() Expr             { return e.next }
func (e *exprNode) exprBase() *exprNode    { return e }

// NumberExpr 整数字面量
type NumberExpr struct {
	exprNode
	Value int
}

// BoolExpr 布尔字面量
type BoolExpr struct {
	exprNode
	Value bool
}

// VarExpr 变量引用
type VarExpr struct {
	exprNode
	Name string
}

// BinaryExpr 二元运算
type BinaryExpr struct {
	exprNode
	Op    Operator
	Left  Expr
	Right Expr
}

// UnaryExpr 一元运算 (not, -)
type UnaryExpr struct {
	exprNode
	Op      Operator
	Operand Expr
}

// CallExpr 函数调用
type CallExpr struct {
	exprNode
	Name string
	Args *ExprList
}

// Stmt 语句接口
type Stmt interface {
	Node
	Next() Stmt
	stmtBase() *stmtNode
}

type stmtNode struct {
	header
	next Stmt
}

func (s *stmtNode) Next() Stmt          { return s.next }
func (s *stmtNode) stmtBase() *stmtNode { return s }

// AssignStmt 赋值 name := expr
type AssignStmt struct {
	stmtNode
	Name  string
	Value Expr
}

// IfStmt 条件语句，Else 可为 nil
type IfStmt struct {
	stmtNode
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt 循环
type WhileStmt struct {
	stmtNode
	Cond Expr
	Body Stmt
}

// ReadStmt read(ids)
type ReadStmt struct {
	stmtNode
	Idents *IdentList
}

// WriteStmt write(exprs)
type WriteStmt struct {
	stmtNode
	Exprs *ExprList
}

// CallStmt 过程调用
type CallStmt struct {
	stmtNode
	Name string
	Args *ExprList
}

// CompoundStmt begin ... end
type CompoundStmt struct {
	stmtNode
	Block *Block
}

// Decl 声明接口
type Decl interface {
	Node
	Next() Decl
	declBase() *declNode
}

type declNode struct {
	header
	next Decl
}

func (d *declNode) Next() Decl          { return d.next }
func (d *declNode) declBase() *declNode { return d }

// VarDecl 变量声明 ids : type
type VarDecl struct {
	declNode
	Idents *IdentList
	Type   SemanticType
}

// ProcDecl 过程声明
type ProcDecl struct {
	declNode
	Name   string
	Params *ParamList
	Body   *Block
}

// FuncDecl 函数声明
type FuncDecl struct {
	declNode
	Name   string
	Params *ParamList
	Result SemanticType
	Body   *Block
}

// Ident 标识符列表元素
type Ident struct {
	header
	Name string
	next *Ident
}

func (i *Ident) Next() *Ident { return i.next }

// ParamDecl 一组同类型的形参
type ParamDecl struct {
	header
	Idents *IdentList
	Type   SemanticType
	next   *ParamDecl
}

func (p *ParamDecl) Next() *ParamDecl { return p.next }

// Block 作用域单元
type Block struct {
	header
	Vars        *DeclList
	Subroutines *DeclList
	Stmts       *StmtList
}

// Program 根节点
type Program struct {
	header
	Name  string
	Block *Block
}
