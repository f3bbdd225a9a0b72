// Package dump exports a syntax tree in machine-readable form (YAML or JSON).
// The export is read-only: the tree is not modified.
package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tangzhangming/rascal/internal/ast"
)

// Format selects the output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Node is the exported shape of every tree node. Only the fields that
// apply to Kind are set.
type Node struct {
	Kind        string   `json:"kind" yaml:"kind"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Op          string   `json:"op,omitempty" yaml:"op,omitempty"`
	Literal     any      `json:"literal,omitempty" yaml:"literal,omitempty"`
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Idents      []string `json:"idents,omitempty" yaml:"idents,omitempty"`
	Params      []*Node  `json:"params,omitempty" yaml:"params,omitempty"`
	Vars        []*Node  `json:"vars,omitempty" yaml:"vars,omitempty"`
	Subroutines []*Node  `json:"subroutines,omitempty" yaml:"subroutines,omitempty"`
	Stmts       []*Node  `json:"stmts,omitempty" yaml:"stmts,omitempty"`
	Cond        *Node    `json:"cond,omitempty" yaml:"cond,omitempty"`
	Then        *Node    `json:"then,omitempty" yaml:"then,omitempty"`
	Else        *Node    `json:"else,omitempty" yaml:"else,omitempty"`
	Body        *Node    `json:"body,omitempty" yaml:"body,omitempty"`
	Value       *Node    `json:"value,omitempty" yaml:"value,omitempty"`
	Left        *Node    `json:"left,omitempty" yaml:"left,omitempty"`
	Right       *Node    `json:"right,omitempty" yaml:"right,omitempty"`
	Operand     *Node    `json:"operand,omitempty" yaml:"operand,omitempty"`
	Args        []*Node  `json:"args,omitempty" yaml:"args,omitempty"`
}

// Build converts p into its exported form. A nil program yields nil.
func Build(p *ast.Program) *Node {
	if p == nil {
		return nil
	}
	return &Node{Kind: "program", Name: p.Name, Body: block(p.Block)}
}

// YAML encodes p as YAML; a nil program encodes as null.
func YAML(p *ast.Program) ([]byte, error) {
	return yaml.Marshal(Build(p))
}

// JSON encodes p as indented JSON; a nil program encodes as null.
func JSON(p *ast.Program) ([]byte, error) {
	return json.MarshalIndent(Build(p), "", "  ")
}

// Write encodes p to w in the given format.
func Write(w io.Writer, p *ast.Program, f Format) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatYAML:
		data, err = YAML(p)
	case FormatJSON:
		data, err = JSON(p)
		data = append(data, '\n')
	default:
		return fmt.Errorf("unknown dump format %q", f)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	_, err = w.Write(data)
	return err
}

func block(b *ast.Block) *Node {
	if b == nil {
		return nil
	}
	n := &Node{Kind: "block"}
	for d := b.Vars.Front(); d != nil; d = d.Next() {
		n.Vars = append(n.Vars, decl(d))
	}
	for d := b.Subroutines.Front(); d != nil; d = d.Next() {
		n.Subroutines = append(n.Subroutines, decl(d))
	}
	n.Stmts = stmts(b.Stmts)
	return n
}

func decl(d ast.Decl) *Node {
	switch d := d.(type) {
	case *ast.VarDecl:
		return &Node{Kind: "var", Idents: d.Idents.Names(), Type: d.Type.String()}
	case *ast.ProcDecl:
		return &Node{Kind: "procedure", Name: d.Name, Params: params(d.Params), Body: block(d.Body)}
	case *ast.FuncDecl:
		return &Node{Kind: "function", Name: d.Name, Params: params(d.Params), Type: d.Result.String(), Body: block(d.Body)}
	}
	return nil
}

func params(l *ast.ParamList) []*Node {
	var out []*Node
	for p := l.Front(); p != nil; p = p.Next() {
		out = append(out, &Node{Kind: "param", Idents: p.Idents.Names(), Type: p.Type.String()})
	}
	return out
}

func stmts(l *ast.StmtList) []*Node {
	var out []*Node
	for s := l.Front(); s != nil; s = s.Next() {
		out = append(out, stmt(s))
	}
	return out
}

func stmt(s ast.Stmt) *Node {
	switch s := s.(type) {
	case *ast.AssignStmt:
		return &Node{Kind: "assign", Name: s.Name, Value: expr(s.Value)}
	case *ast.IfStmt:
		return &Node{Kind: "if", Cond: expr(s.Cond), Then: stmt(s.Then), Else: stmt(s.Else)}
	case *ast.WhileStmt:
		return &Node{Kind: "while", Cond: expr(s.Cond), Body: stmt(s.Body)}
	case *ast.ReadStmt:
		return &Node{Kind: "read", Idents: s.Idents.Names()}
	case *ast.WriteStmt:
		return &Node{Kind: "write", Args: exprs(s.Exprs)}
	case *ast.CallStmt:
		return &Node{Kind: "proccall", Name: s.Name, Args: exprs(s.Args)}
	case *ast.CompoundStmt:
		return &Node{Kind: "compound", Body: block(s.Block)}
	}
	return nil
}

func exprs(l *ast.ExprList) []*Node {
	var out []*Node
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, expr(e))
	}
	return out
}

func expr(e ast.Expr) *Node {
	if e == nil {
		return nil
	}
	n := &Node{Type: e.Type().String()}
	switch e := e.(type) {
	case *ast.NumberExpr:
		n.Kind, n.Literal = "number", e.Value
	case *ast.BoolExpr:
		n.Kind, n.Literal = "bool", e.Value
	case *ast.VarExpr:
		n.Kind, n.Name = "variable", e.Name
	case *ast.BinaryExpr:
		n.Kind, n.Op = "binary", e.Op.String()
		n.Left, n.Right = expr(e.Left), expr(e.Right)
	case *ast.UnaryExpr:
		n.Kind, n.Op = "unary", e.Op.String()
		n.Operand = expr(e.Operand)
	case *ast.CallExpr:
		n.Kind, n.Name = "funcall", e.Name
		n.Args = exprs(e.Args)
	}
	return n
}
