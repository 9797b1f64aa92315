// Copyright 2021 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package ast defines the syntax tree of the minic language and the
// traversal base that every pass over it is built on.  Nodes are produced by
// the parser and shared read-only between passes; nothing in this package
// mutates them.
package ast

import (
	"github.com/minic-lang/minic/internal/compiler/position"
)

// Node is the interface implemented by every syntax tree node.
type Node interface {
	Pos() *position.Position // Returns the position of the node from the original source
}

// Stmt is implemented by every statement kind.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression kind.
type Expr interface {
	Node
	exprNode()
}

// Program is the compilation unit, a sequence of function definitions.
type Program struct {
	Funcs []*Function
}

func (n *Program) Pos() *position.Position {
	l := make([]Node, 0, len(n.Funcs))
	for _, f := range n.Funcs {
		if f != nil {
			l = append(l, f)
		}
	}
	return mergepositionlist(l)
}

// Function is a named routine with a single body statement.
type Function struct {
	P    position.Position // position of the function name
	Name string
	Body Stmt
}

func (n *Function) Pos() *position.Position {
	return position.Merge(&n.P, nodepos(n.Body))
}

// StmtSeq is a block of statements, executed in order.
type StmtSeq struct {
	Stmts []Stmt
}

func (n *StmtSeq) Pos() *position.Position {
	l := make([]Node, 0, len(n.Stmts))
	for _, s := range n.Stmts {
		l = append(l, s)
	}
	return mergepositionlist(l)
}

func (n *StmtSeq) stmtNode() {}

// Assign stores the value of Expr in Var.
type Assign struct {
	Var  *Var
	Expr Expr
}

func (n *Assign) Pos() *position.Position {
	var vp *position.Position
	if n.Var != nil {
		vp = n.Var.Pos()
	}
	return position.Merge(vp, nodepos(n.Expr))
}

func (n *Assign) stmtNode() {}

// IfThenElse executes Then when Cond is nonzero, otherwise Else.  Else is
// the only optional child in the tree; every other child reference must be
// present.
type IfThenElse struct {
	P    position.Position // position of the `if' keyword
	Cond Expr
	Then Stmt
	Else Stmt // may be nil
}

func (n *IfThenElse) Pos() *position.Position {
	return position.Merge(&n.P, mergepositionlist([]Node{n.Cond, n.Then, n.Else}))
}

func (n *IfThenElse) stmtNode() {}

// While executes Body repeatedly until Cond evaluates to zero.
type While struct {
	P    position.Position // position of the `while' keyword
	Cond Expr
	Body Stmt
}

func (n *While) Pos() *position.Position {
	return position.Merge(&n.P, mergepositionlist([]Node{n.Cond, n.Body}))
}

func (n *While) stmtNode() {}

// Invoke is an expression evaluated as a statement, discarding the result.
type Invoke struct {
	Expr Expr
}

func (n *Invoke) Pos() *position.Position {
	return nodepos(n.Expr)
}

func (n *Invoke) stmtNode() {}

// Call invokes the function named Name.  The language takes no arguments
// yet, so Call has no children the walker descends into; when arguments
// arrive they must be added here and in the default handler together.
type Call struct {
	P    position.Position
	Name string
}

func (n *Call) Pos() *position.Position {
	return &n.P
}

func (n *Call) exprNode() {}

// Integer is an integer literal.
type Integer struct {
	P position.Position
	I int64
}

func (n *Integer) Pos() *position.Position {
	return &n.P
}

func (n *Integer) exprNode() {}

// Var is a reference to a variable by name.
type Var struct {
	P    position.Position
	Name string
}

func (n *Var) Pos() *position.Position {
	return &n.P
}

func (n *Var) exprNode() {}

// The two-operand expression kinds.  Each operator is its own node kind so
// that passes can handle them independently; they share no representation
// beyond the LHS/RHS shape.

type Add struct {
	LHS, RHS Expr
}

func (n *Add) Pos() *position.Position { return binarypos(n.LHS, n.RHS) }

func (n *Add) exprNode() {}

type Sub struct {
	LHS, RHS Expr
}

func (n *Sub) Pos() *position.Position { return binarypos(n.LHS, n.RHS) }

func (n *Sub) exprNode() {}

type Mul struct {
	LHS, RHS Expr
}

func (n *Mul) Pos() *position.Position { return binarypos(n.LHS, n.RHS) }

func (n *Mul) exprNode() {}

type Div struct {
	LHS, RHS Expr
}

func (n *Div) Pos() *position.Position { return binarypos(n.LHS, n.RHS) }

func (n *Div) exprNode() {}

type LT struct {
	LHS, RHS Expr
}

func (n *LT) Pos() *position.Position { return binarypos(n.LHS, n.RHS) }

func (n *LT) exprNode() {}

type LE struct {
	LHS, RHS Expr
}

func (n *LE) Pos() *position.Position { return binarypos(n.LHS, n.RHS) }

func (n *LE) exprNode() {}

type GT struct {
	LHS, RHS Expr
}

func (n *GT) Pos() *position.Position { return binarypos(n.LHS, n.RHS) }

func (n *GT) exprNode() {}

type GE struct {
	LHS, RHS Expr
}

func (n *GE) Pos() *position.Position { return binarypos(n.LHS, n.RHS) }

func (n *GE) exprNode() {}

type EQ struct {
	LHS, RHS Expr
}

func (n *EQ) Pos() *position.Position { return binarypos(n.LHS, n.RHS) }

func (n *EQ) exprNode() {}

type NE struct {
	LHS, RHS Expr
}

func (n *NE) Pos() *position.Position { return binarypos(n.LHS, n.RHS) }

func (n *NE) exprNode() {}

func binarypos(lhs, rhs Expr) *position.Position {
	return position.Merge(nodepos(lhs), nodepos(rhs))
}

// nodepos is Node.Pos made total over absent children, so that positions can
// be derived even from trees a walk would reject.
func nodepos(n Node) *position.Position {
	if n == nil {
		return nil
	}
	return n.Pos()
}

// mergepositionlist is a helper that merges the positions of all the nodes in a list.
func mergepositionlist(l []Node) *position.Position {
	switch len(l) {
	case 0:
		return nil
	case 1:
		if l[0] == nil {
			return nil
		}
		return l[0].Pos()
	default:
		return position.Merge(nodepos(l[0]), mergepositionlist(l[1:]))
	}
}
