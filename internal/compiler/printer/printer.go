// Copyright 2021 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package printer converts syntax trees back to program text.  The Unparser
// is a pass over the ast walker that overrides every node kind and chooses
// when to recurse, so it doubles as the reference for how passes drive their
// own descent.
package printer

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/minic-lang/minic/internal/compiler/ast"
	cerrors "github.com/minic-lang/minic/internal/compiler/errors"
)

// Print renders the tree rooted at node back to source text.
func Print(node ast.Node) (string, error) {
	u := &Unparser{}
	if err := ast.Walk(u, node); err != nil {
		return "", errors.Wrap(err, "unparse")
	}
	// Expressions never end a line themselves; flush whatever is pending.
	if u.line.Len() > 0 {
		u.newline()
	}
	return u.output.String(), nil
}

// Unparser holds the output being built up during a walk.
type Unparser struct {
	pos    int
	output strings.Builder
	line   strings.Builder
}

func (u *Unparser) indent() {
	u.pos += 2
}

func (u *Unparser) outdent() {
	u.pos -= 2
}

func (u *Unparser) prefix() (s string) {
	for i := 0; i < u.pos; i++ {
		s += " "
	}
	return
}

func (u *Unparser) emit(s string) {
	u.line.WriteString(s)
}

func (u *Unparser) newline() {
	u.output.WriteString(u.prefix())
	u.output.WriteString(u.line.String())
	u.output.WriteString("\n")
	u.line.Reset()
}

func (u *Unparser) VisitProgram(n *ast.Program) error {
	for _, f := range n.Funcs {
		if f == nil {
			return cerrors.Errorf("nil function in program")
		}
		if err := ast.Walk(u, f); err != nil {
			return err
		}
	}
	return nil
}

func (u *Unparser) VisitFunction(n *ast.Function) error {
	u.emit(n.Name + "() {")
	u.newline()
	u.indent()
	if err := ast.Walk(u, n.Body); err != nil {
		return err
	}
	u.outdent()
	u.emit("}")
	u.newline()
	return nil
}

func (u *Unparser) VisitStmtSeq(n *ast.StmtSeq) error {
	for _, s := range n.Stmts {
		if err := ast.Walk(u, s); err != nil {
			return err
		}
	}
	return nil
}

func (u *Unparser) VisitAssign(n *ast.Assign) error {
	if n.Var == nil {
		return cerrors.Errorf("nil var in assignment")
	}
	if err := ast.Walk(u, n.Var); err != nil {
		return err
	}
	u.emit(" = ")
	if err := ast.Walk(u, n.Expr); err != nil {
		return err
	}
	u.emit(";")
	u.newline()
	return nil
}

func (u *Unparser) VisitIfThenElse(n *ast.IfThenElse) error {
	u.emit("if ")
	if err := ast.Walk(u, n.Cond); err != nil {
		return err
	}
	u.emit(" {")
	u.newline()
	u.indent()
	if err := ast.Walk(u, n.Then); err != nil {
		return err
	}
	u.outdent()
	if n.Else != nil {
		u.emit("} else {")
		u.newline()
		u.indent()
		if err := ast.Walk(u, n.Else); err != nil {
			return err
		}
		u.outdent()
	}
	u.emit("}")
	u.newline()
	return nil
}

func (u *Unparser) VisitWhile(n *ast.While) error {
	u.emit("while ")
	if err := ast.Walk(u, n.Cond); err != nil {
		return err
	}
	u.emit(" {")
	u.newline()
	u.indent()
	if err := ast.Walk(u, n.Body); err != nil {
		return err
	}
	u.outdent()
	u.emit("}")
	u.newline()
	return nil
}

func (u *Unparser) VisitInvoke(n *ast.Invoke) error {
	if err := ast.Walk(u, n.Expr); err != nil {
		return err
	}
	u.emit(";")
	u.newline()
	return nil
}

func (u *Unparser) VisitCall(n *ast.Call) error {
	u.emit(n.Name + "()")
	return nil
}

func (u *Unparser) VisitInteger(n *ast.Integer) error {
	u.emit(strconv.FormatInt(n.I, 10))
	return nil
}

func (u *Unparser) VisitVar(n *ast.Var) error {
	u.emit(n.Name)
	return nil
}

// Binary expressions parenthesize themselves so that the rendered text needs
// no precedence rules.
func (u *Unparser) binary(op string, lhs, rhs ast.Expr) error {
	u.emit("(")
	if err := ast.Walk(u, lhs); err != nil {
		return err
	}
	u.emit(" " + op + " ")
	if err := ast.Walk(u, rhs); err != nil {
		return err
	}
	u.emit(")")
	return nil
}

func (u *Unparser) VisitAdd(n *ast.Add) error {
	return u.binary("+", n.LHS, n.RHS)
}

func (u *Unparser) VisitSub(n *ast.Sub) error {
	return u.binary("-", n.LHS, n.RHS)
}

func (u *Unparser) VisitMul(n *ast.Mul) error {
	return u.binary("*", n.LHS, n.RHS)
}

func (u *Unparser) VisitDiv(n *ast.Div) error {
	return u.binary("/", n.LHS, n.RHS)
}

func (u *Unparser) VisitLT(n *ast.LT) error {
	return u.binary("<", n.LHS, n.RHS)
}

func (u *Unparser) VisitLE(n *ast.LE) error {
	return u.binary("<=", n.LHS, n.RHS)
}

func (u *Unparser) VisitGT(n *ast.GT) error {
	return u.binary(">", n.LHS, n.RHS)
}

func (u *Unparser) VisitGE(n *ast.GE) error {
	return u.binary(">=", n.LHS, n.RHS)
}

func (u *Unparser) VisitEQ(n *ast.EQ) error {
	return u.binary("==", n.LHS, n.RHS)
}

func (u *Unparser) VisitNE(n *ast.NE) error {
	return u.binary("!=", n.LHS, n.RHS)
}
