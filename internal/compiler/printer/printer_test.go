// Copyright 2021 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package printer_test

import (
	goerrors "errors"
	"testing"

	"github.com/minic-lang/minic/internal/compiler/ast"
	cerrors "github.com/minic-lang/minic/internal/compiler/errors"
	"github.com/minic-lang/minic/internal/compiler/printer"
	"github.com/minic-lang/minic/internal/testutil"
)

func TestPrintProgram(t *testing.T) {
	tree := &ast.Program{Funcs: []*ast.Function{
		{Name: "main", Body: &ast.StmtSeq{Stmts: []ast.Stmt{
			&ast.Assign{
				Var:  &ast.Var{Name: "x"},
				Expr: &ast.Add{LHS: &ast.Var{Name: "x"}, RHS: &ast.Integer{I: 1}},
			},
			&ast.IfThenElse{
				Cond: &ast.EQ{LHS: &ast.Var{Name: "x"}, RHS: &ast.Integer{I: 0}},
				Then: &ast.Assign{Var: &ast.Var{Name: "y"}, Expr: &ast.Integer{I: 1}},
				Else: &ast.Assign{Var: &ast.Var{Name: "y"}, Expr: &ast.Integer{I: 2}},
			},
			&ast.While{
				Cond: &ast.LT{LHS: &ast.Var{Name: "i"}, RHS: &ast.Integer{I: 10}},
				Body: &ast.StmtSeq{Stmts: []ast.Stmt{
					&ast.Assign{
						Var:  &ast.Var{Name: "i"},
						Expr: &ast.Add{LHS: &ast.Var{Name: "i"}, RHS: &ast.Integer{I: 1}},
					},
				}},
			},
			&ast.Invoke{Expr: &ast.Call{Name: "foo"}},
		}}},
	}}
	got, err := printer.Print(tree)
	testutil.FatalIfErr(t, err)
	want := `main() {
  x = (x + 1);
  if (x == 0) {
    y = 1;
  } else {
    y = 2;
  }
  while (i < 10) {
    i = (i + 1);
  }
  foo();
}
`
	testutil.ExpectNoDiff(t, want, got)
}

func TestPrintIfWithoutElse(t *testing.T) {
	tree := &ast.IfThenElse{
		Cond: &ast.GE{LHS: &ast.Var{Name: "n"}, RHS: &ast.Integer{I: 0}},
		Then: &ast.Assign{Var: &ast.Var{Name: "n"}, Expr: &ast.Sub{LHS: &ast.Var{Name: "n"}, RHS: &ast.Integer{I: 1}}},
	}
	got, err := printer.Print(tree)
	testutil.FatalIfErr(t, err)
	want := `if (n >= 0) {
  n = (n - 1);
}
`
	testutil.ExpectNoDiff(t, want, got)
}

func TestPrintBareExpression(t *testing.T) {
	tree := &ast.Mul{
		LHS: &ast.Div{LHS: &ast.Integer{I: 6}, RHS: &ast.Integer{I: 3}},
		RHS: &ast.Integer{I: -2},
	}
	got, err := printer.Print(tree)
	testutil.FatalIfErr(t, err)
	testutil.ExpectNoDiff(t, "((6 / 3) * -2)\n", got)
}

func TestPrintSurfacesWalkErrors(t *testing.T) {
	tree := &ast.Assign{Var: &ast.Var{Name: "x"}}
	_, err := printer.Print(tree)
	testutil.ExpectErr(t, err)
	var null *cerrors.NullChild
	if !goerrors.As(err, &null) {
		t.Fatalf("want *errors.NullChild through the wrap, got %T: %v", err, err)
	}
}
