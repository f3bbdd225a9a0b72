package symbol

import (
	"errors"

	"github.com/tangzhangming/rascal/internal/ast"
	"github.com/tangzhangming/rascal/internal/i18n"
)

// Resolve 对程序做名字解析和类型检查，并把推导出的类型写回表达式节点。
// 返回的错误均为 *Error，nil 程序没有错误
func Resolve(p *ast.Program) []error {
	if p == nil {
		return nil
	}
	r := &resolver{table: New(), scope: p.Name}
	r.declare(&Symbol{Name: p.Name, Kind: SymbolProgram})
	r.block(p.Block)
	return r.errs
}

type resolver struct {
	table   *Table
	scope   string
	routine *Symbol // 当前所在的函数，允许对函数名赋值
	errs    []error
}

func (r *resolver) errorf(key string, args ...any) {
	r.errs = append(r.errs, &Error{Scope: r.scope, Msg: i18n.T(key, args...)})
}

func (r *resolver) declare(sym *Symbol) {
	if err := r.table.Insert(sym); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Scope = r.scope
		}
		r.errs = append(r.errs, err)
	}
}

func (r *resolver) block(b *ast.Block) {
	if b == nil {
		return
	}
	for d := b.Vars.Front(); d != nil; d = d.Next() {
		if v, ok := d.(*ast.VarDecl); ok {
			for id := v.Idents.Front(); id != nil; id = id.Next() {
				r.declare(&Symbol{Name: id.Name, Kind: SymbolVar, Type: v.Type})
			}
		}
	}
	for d := b.Subroutines.Front(); d != nil; d = d.Next() {
		switch d := d.(type) {
		case *ast.ProcDecl:
			r.subroutine(&Symbol{Name: d.Name, Kind: SymbolProcedure}, d.Params, d.Body)
		case *ast.FuncDecl:
			r.subroutine(&Symbol{Name: d.Name, Kind: SymbolFunction, Type: d.Result}, d.Params, d.Body)
		}
	}
	for s := b.Stmts.Front(); s != nil; s = s.Next() {
		r.stmt(s)
	}
}

// subroutine 子程序先在外层作用域登记，再在新作用域中解析形参和过程体
func (r *resolver) subroutine(sym *Symbol, params *ast.ParamList, body *ast.Block) {
	for p := params.Front(); p != nil; p = p.Next() {
		for range p.Idents.Names() {
			sym.Params = append(sym.Params, p.Type)
		}
	}
	r.declare(sym)

	prevScope, prevRoutine := r.scope, r.routine
	r.scope = sym.Name
	if sym.Kind == SymbolFunction {
		r.routine = sym
	} else {
		r.routine = nil
	}
	r.table.Open()
	defer func() {
		r.table.Close()
		r.scope, r.routine = prevScope, prevRoutine
	}()

	for p := params.Front(); p != nil; p = p.Next() {
		for id := p.Idents.Front(); id != nil; id = id.Next() {
			r.declare(&Symbol{Name: id.Name, Kind: SymbolParam, Type: p.Type})
		}
	}
	r.block(body)
}

func (r *resolver) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case nil:
	case *ast.AssignStmt:
		r.assign(s)
	case *ast.IfStmt:
		r.cond("if", s.Cond)
		r.stmt(s.Then)
		r.stmt(s.Else)
	case *ast.WhileStmt:
		r.cond("while", s.Cond)
		r.stmt(s.Body)
	case *ast.ReadStmt:
		for id := s.Idents.Front(); id != nil; id = id.Next() {
			r.variable(id.Name)
		}
	case *ast.WriteStmt:
		for e := s.Exprs.Front(); e != nil; e = e.Next() {
			r.expr(e)
		}
	case *ast.CallStmt:
		sym := r.lookup(s.Name)
		if sym != nil && sym.Kind != SymbolProcedure {
			r.errorf(i18n.ErrNotProcedure, s.Name)
			sym = nil
		}
		r.args(s.Name, sym, s.Args)
	case *ast.CompoundStmt:
		r.block(s.Block)
	}
}

func (r *resolver) assign(s *ast.AssignStmt) {
	target := ast.TypeVoid
	if sym := r.lookup(s.Name); sym != nil {
		switch {
		case sym.IsVariable():
			target = sym.Type
		case sym == r.routine:
			target = sym.Type
		default:
			r.errorf(i18n.ErrNotVariable, s.Name)
		}
	}
	got := r.expr(s.Value)
	if target != ast.TypeVoid && got != ast.TypeVoid && got != target {
		r.errorf(i18n.ErrAssignType, got, s.Name, target)
	}
}

// variable 检查 name 是可以写入的变量
func (r *resolver) variable(name string) {
	if sym := r.lookup(name); sym != nil && !sym.IsVariable() {
		r.errorf(i18n.ErrNotVariable, name)
	}
}

func (r *resolver) cond(what string, e ast.Expr) {
	if t := r.expr(e); t != ast.TypeVoid && t != ast.TypeBoolean {
		r.errorf(i18n.ErrConditionType, what, t)
	}
}

func (r *resolver) lookup(name string) *Symbol {
	sym := r.table.Lookup(name)
	if sym == nil {
		r.errorf(i18n.ErrUndefined, name)
	}
	return sym
}

// args 解析实参；sym 为 nil 时只解析表达式
func (r *resolver) args(name string, sym *Symbol, args *ast.ExprList) {
	var got []ast.SemanticType
	for e := args.Front(); e != nil; e = e.Next() {
		got = append(got, r.expr(e))
	}
	if sym == nil {
		return
	}
	if len(got) != len(sym.Params) {
		r.errorf(i18n.ErrArgCount, name, len(sym.Params), len(got))
		return
	}
	for i, t := range got {
		if t != ast.TypeVoid && t != sym.Params[i] {
			r.errorf(i18n.ErrArgType, name, i+1, t, sym.Params[i])
		}
	}
}

// expr 推导表达式类型并写回节点，无法推导时为 void
func (r *resolver) expr(e ast.Expr) ast.SemanticType {
	if e == nil {
		return ast.TypeVoid
	}
	t := e.Type()
	switch e := e.(type) {
	case *ast.VarExpr:
		t = r.varExpr(e)
	case *ast.BinaryExpr:
		t = r.binary(e)
	case *ast.UnaryExpr:
		want := ast.TypeInteger
		if e.Op == ast.OpNot {
			want = ast.TypeBoolean
		}
		r.operand(e.Op, r.expr(e.Operand), want)
		t = want
	case *ast.CallExpr:
		t = ast.TypeVoid
		sym := r.lookup(e.Name)
		if sym != nil && sym.Kind != SymbolFunction {
			r.errorf(i18n.ErrNotFunction, e.Name)
			sym = nil
		}
		r.args(e.Name, sym, e.Args)
		if sym != nil {
			t = sym.Type
		}
	}
	e.SetType(t)
	return t
}

// varExpr 无参函数可以不带括号调用
func (r *resolver) varExpr(e *ast.VarExpr) ast.SemanticType {
	sym := r.lookup(e.Name)
	switch {
	case sym == nil:
		return ast.TypeVoid
	case sym.IsVariable():
		return sym.Type
	case sym.Kind == SymbolFunction && len(sym.Params) == 0:
		return sym.Type
	}
	r.errorf(i18n.ErrNotVariable, e.Name)
	return ast.TypeVoid
}

func (r *resolver) binary(e *ast.BinaryExpr) ast.SemanticType {
	lt, rt := r.expr(e.Left), r.expr(e.Right)
	switch e.Op {
	case ast.OpEq, ast.OpNe:
		if lt != ast.TypeVoid && rt != ast.TypeVoid && lt != rt {
			r.errorf(i18n.ErrOperandMismatch, e.Op, lt, rt)
		}
		return ast.TypeBoolean
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		r.operand(e.Op, lt, ast.TypeInteger)
		r.operand(e.Op, rt, ast.TypeInteger)
		return ast.TypeBoolean
	case ast.OpAnd, ast.OpOr:
		r.operand(e.Op, lt, ast.TypeBoolean)
		r.operand(e.Op, rt, ast.TypeBoolean)
		return ast.TypeBoolean
	default:
		r.operand(e.Op, lt, ast.TypeInteger)
		r.operand(e.Op, rt, ast.TypeInteger)
		return ast.TypeInteger
	}
}

func (r *resolver) operand(op ast.Operator, got, want ast.SemanticType) {
	if got != ast.TypeVoid && got != want {
		r.errorf(i18n.ErrOperandType, op, got, want)
	}
}
