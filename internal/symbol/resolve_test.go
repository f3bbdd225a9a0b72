package symbol

import (
	"errors"
	"strings"
	"testing"

	"github.com/tangzhangming/rascal/internal/ast"
	"github.com/tangzhangming/rascal/internal/parser"
)

func resolveSource(t *testing.T, src string) (*ast.Program, []error) {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return prog, Resolve(prog)
}

func TestResolveValidProgram(t *testing.T) {
	src := `program demo;
var a, b: integer; ok: boolean;

function fact(n: integer): integer;
begin
  if n <= 1 then fact := 1 else fact := n * fact(n - 1)
end;

function zero: integer;
begin
  zero := 0
end;

procedure show(v: integer; f: boolean);
  var t: integer;
begin
  t := v + zero;
  write(t, f, not f)
end;

begin
  read(a, b);
  ok := (a = b) or (a < 0);
  if not ok then a := -b else begin show(fact(a), true) end;
  while a > 0 do a := a - 1
end.`
	_, errs := resolveSource(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestResolveAnnotatesTypes(t *testing.T) {
	prog, errs := resolveSource(t, `program p;
var x: integer; ok: boolean;
function f(n: integer): boolean; begin f := n > 0 end;
begin
  x := x + 1;
  ok := not f(x) and (x <> 2)
end.`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	stmts := prog.Block.Stmts.Slice()
	sum := stmts[0].(*ast.AssignStmt).Value.(*ast.BinaryExpr)
	if sum.Type() != ast.TypeInteger || sum.Left.Type() != ast.TypeInteger {
		t.Errorf("x + 1 typed %s (left %s)", sum.Type(), sum.Left.Type())
	}

	and := stmts[1].(*ast.AssignStmt).Value.(*ast.BinaryExpr)
	not := and.Left.(*ast.UnaryExpr)
	call := not.Operand.(*ast.CallExpr)
	tests := []struct {
		name string
		expr ast.Expr
		want ast.SemanticType
	}{
		{"and", and, ast.TypeBoolean},
		{"not", not, ast.TypeBoolean},
		{"call", call, ast.TypeBoolean},
		{"argument", call.Args.Front(), ast.TypeInteger},
		{"comparison", and.Right, ast.TypeBoolean},
	}
	for _, tt := range tests {
		if got := tt.expr.Type(); got != tt.want {
			t.Errorf("%s: Type() = %s, want %s", tt.name, got, tt.want)
		}
	}

	printed := ast.Sprint(prog, ast.Options{ShowTypes: true})
	if !strings.Contains(printed, "CALL f [boolean]") {
		t.Errorf("typed print missing call type:\n%s", printed)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"undefined", "y := 1", []string{"p: undefined identifier 'y'"}},
		{"assign type", "x := true", []string{"cannot assign boolean to 'x' of type integer"}},
		{"condition", "if x then x := 1", []string{"if condition has type integer, expected boolean"}},
		{"while condition", "while 1 + 1 do x := 1", []string{"while condition has type integer"}},
		{"operand", "x := x + ok", []string{"operator +: operand has type boolean, expected integer"}},
		{"logical operand", "ok := ok and x", []string{"operator and: operand has type integer, expected boolean"}},
		{"mismatch", "ok := x = ok", []string{"operator =: mismatched operand types integer and boolean"}},
		{"not a procedure", "x", []string{"'x' is not a procedure"}},
		{"not a function", "x := q(1)", []string{"'q' is not a function"}},
		{"not a variable", "q := 1", []string{"'q' is not a variable"}},
		{"read procedure", "read(x, q)", []string{"'q' is not a variable"}},
		{"arg count", "q(1, 2)", []string{"'q' expects 1 argument(s), got 2"}},
		{"arg type", "q(ok)", []string{"'q' argument 1 has type boolean, expected integer"}},
		{"assign program", "p := 1", []string{"'p' is not a variable"}},
		{"several", "y := z", []string{"undefined identifier 'y'", "undefined identifier 'z'"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "program p; var x: integer; ok: boolean;\nprocedure q(n: integer); begin end;\nbegin " + tt.body + " end."
			_, errs := resolveSource(t, src)
			if len(errs) != len(tt.want) {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(tt.want))
			}
			for i, want := range tt.want {
				if !strings.Contains(errs[i].Error(), want) {
					t.Errorf("error %d = %q, want it to contain %q", i, errs[i], want)
				}
			}
		})
	}
}

func TestResolveRedeclaration(t *testing.T) {
	_, errs := resolveSource(t, `program p;
var x, x: integer;
procedure q(a: integer; a: boolean); begin end;
begin end.`)
	if len(errs) != 2 {
		t.Fatalf("got %v, want 2 errors", errs)
	}
	var e *Error
	if !errors.As(errs[1], &e) || e.Scope != "q" {
		t.Errorf("second error = %#v, want scope q", errs[1])
	}
	if !strings.Contains(errs[0].Error(), "'x' already declared") {
		t.Errorf("first error = %v", errs[0])
	}
}

func TestResolveScopesEndWithSubroutine(t *testing.T) {
	_, errs := resolveSource(t, `program p;
procedure q; var local: integer; begin local := 1 end;
begin local := 2 end.`)
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "p: undefined identifier 'local'") {
		t.Errorf("errors = %v", errs)
	}
}

func TestResolveNil(t *testing.T) {
	if errs := Resolve(nil); errs != nil {
		t.Errorf("Resolve(nil) = %v", errs)
	}
}
