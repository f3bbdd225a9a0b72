package symbol

import (
	"github.com/tangzhangming/rascal/internal/ast"
	"github.com/tangzhangming/rascal/internal/i18n"
)

// SymbolKind 符号类型
type SymbolKind int

const (
	SymbolProgram SymbolKind = iota
	SymbolVar
	SymbolParam
	SymbolProcedure
	SymbolFunction
)

var kindNames = [...]string{
	SymbolProgram:   "program",
	SymbolVar:       "variable",
	SymbolParam:     "parameter",
	SymbolProcedure: "procedure",
	SymbolFunction:  "function",
}

func (k SymbolKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Symbol 表示一个符号
type Symbol struct {
	Name   string
	Kind   SymbolKind
	Type   ast.SemanticType   // 变量、参数的类型；函数的返回类型
	Params []ast.SemanticType // 子程序的形参类型，按声明顺序展开
	Level  int                // 声明所在的作用域层次，全局为 0
	Offset int                // 分配序号，只对变量和参数有效
}

// IsVariable 变量或形参
func (s *Symbol) IsVariable() bool {
	return s.Kind == SymbolVar || s.Kind == SymbolParam
}

// Table 作用域栈形式的符号表
type Table struct {
	scopes []map[string]*Symbol
	offset int
}

// New 创建一个只含全局作用域的符号表
func New() *Table {
	return &Table{scopes: []map[string]*Symbol{make(map[string]*Symbol)}}
}

// Open 进入新的作用域
func (t *Table) Open() {
	t.scopes = append(t.scopes, make(map[string]*Symbol))
}

// Close 离开当前作用域，全局作用域不会被关闭
func (t *Table) Close() {
	if len(t.scopes) > 1 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

// Level 当前作用域层次
func (t *Table) Level() int {
	return len(t.scopes) - 1
}

// Insert 在当前作用域安装符号，同一作用域内重名时返回错误
func (t *Table) Insert(sym *Symbol) error {
	cur := t.scopes[len(t.scopes)-1]
	if _, ok := cur[sym.Name]; ok {
		return &Error{Msg: i18n.T(i18n.ErrRedeclared, sym.Name)}
	}
	sym.Level = t.Level()
	if sym.IsVariable() {
		sym.Offset = t.offset
		t.offset++
	}
	cur[sym.Name] = sym
	return nil
}

// Lookup 由内向外查找符号
func (t *Table) Lookup(name string) *Symbol {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym
		}
	}
	return nil
}

// Allocated 已分配的变量和参数总数
func (t *Table) Allocated() int {
	return t.offset
}

// Error 语义错误，Scope 为出错所在的程序或子程序名
type Error struct {
	Scope string
	Msg   string
}

func (e *Error) Error() string {
	if e.Scope == "" {
		return e.Msg
	}
	return e.Scope + ": " + e.Msg
}
