// Copyright 2021 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package ast

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/minic-lang/minic/internal/compiler/errors"
	"github.com/minic-lang/minic/internal/compiler/position"
)

// Visitor has one handler per node kind.  Walk selects the handler matching
// the dynamic type of the node and invokes it.  A pass implements Visitor by
// embedding Base, which supplies the default descent for every kind, and
// overriding only the kinds whose semantics differ from "visit children".
type Visitor interface {
	VisitProgram(n *Program) error
	VisitFunction(n *Function) error
	VisitStmtSeq(n *StmtSeq) error
	VisitAssign(n *Assign) error
	VisitIfThenElse(n *IfThenElse) error
	VisitWhile(n *While) error
	VisitInvoke(n *Invoke) error
	VisitCall(n *Call) error
	VisitInteger(n *Integer) error
	VisitVar(n *Var) error
	VisitAdd(n *Add) error
	VisitSub(n *Sub) error
	VisitMul(n *Mul) error
	VisitDiv(n *Div) error
	VisitLT(n *LT) error
	VisitLE(n *LE) error
	VisitGT(n *GT) error
	VisitGE(n *GE) error
	VisitEQ(n *EQ) error
	VisitNE(n *NE) error
}

// Walk traverses (walks) an AST node with the provided Visitor v.  The kind
// set is closed: a node of any other dynamic type fails with
// *errors.UnknownKind before any recursion from that node.  Walk never
// mutates the tree; the first error from a handler aborts the walk and is
// returned unchanged.
func Walk(v Visitor, node Node) error {
	if node == nil {
		return &errors.NullChild{}
	}
	glog.V(2).Infof("About to visit node at %s", node.Pos())
	switch n := node.(type) {
	case *Program:
		return v.VisitProgram(n)
	case *Function:
		return v.VisitFunction(n)
	case *StmtSeq:
		return v.VisitStmtSeq(n)
	case *Assign:
		return v.VisitAssign(n)
	case *IfThenElse:
		return v.VisitIfThenElse(n)
	case *While:
		return v.VisitWhile(n)
	case *Invoke:
		return v.VisitInvoke(n)
	case *Call:
		return v.VisitCall(n)
	case *Integer:
		return v.VisitInteger(n)
	case *Var:
		return v.VisitVar(n)
	case *Add:
		return v.VisitAdd(n)
	case *Sub:
		return v.VisitSub(n)
	case *Mul:
		return v.VisitMul(n)
	case *Div:
		return v.VisitDiv(n)
	case *LT:
		return v.VisitLT(n)
	case *LE:
		return v.VisitLE(n)
	case *GT:
		return v.VisitGT(n)
	case *GE:
		return v.VisitGE(n)
	case *EQ:
		return v.VisitEQ(n)
	case *NE:
		return v.VisitNE(n)
	default:
		return &errors.UnknownKind{Pos: node.Pos(), Kind: fmt.Sprintf("%T", node)}
	}
}

// Base supplies the default handler for every node kind: a pre-order,
// left-to-right, depth-first descent that visits each child exactly once.
// The zero Base walks a whole tree with the defaults.
type Base struct {
	// V is the visitor that the default descent dispatches through.  A pass
	// that overrides any handler must point V at itself, otherwise nodes
	// below the first level are only ever handled by the defaults.  When V
	// is nil the descent dispatches through Base itself.
	V Visitor
}

func (b *Base) visitor() Visitor {
	if b.V != nil {
		return b.V
	}
	return b
}

// walk descends into one named child, failing with *errors.NullChild when a
// required child is absent.
func (b *Base) walk(parent Node, name string, child Node) error {
	if child == nil {
		return b.missing(parent, name)
	}
	return Walk(b.visitor(), child)
}

func (b *Base) missing(parent Node, name string) error {
	var pos *position.Position
	if parent != nil {
		pos = parent.Pos()
	}
	return &errors.NullChild{Pos: pos, Kind: fmt.Sprintf("%T", parent), Child: name}
}

func (b *Base) VisitProgram(n *Program) error {
	for i, f := range n.Funcs {
		if f == nil {
			return b.missing(n, fmt.Sprintf("funcs[%d]", i))
		}
		if err := Walk(b.visitor(), f); err != nil {
			return err
		}
	}
	return nil
}

func (b *Base) VisitFunction(n *Function) error {
	return b.walk(n, "body", n.Body)
}

func (b *Base) VisitStmtSeq(n *StmtSeq) error {
	for i, s := range n.Stmts {
		if err := b.walk(n, fmt.Sprintf("stmts[%d]", i), s); err != nil {
			return err
		}
	}
	return nil
}

func (b *Base) VisitAssign(n *Assign) error {
	if n.Var == nil {
		return b.missing(n, "var")
	}
	if err := Walk(b.visitor(), n.Var); err != nil {
		return err
	}
	return b.walk(n, "expr", n.Expr)
}

func (b *Base) VisitIfThenElse(n *IfThenElse) error {
	if err := b.walk(n, "cond", n.Cond); err != nil {
		return err
	}
	if err := b.walk(n, "then", n.Then); err != nil {
		return err
	}
	// The else branch is the one optional child.
	if n.Else != nil {
		return Walk(b.visitor(), n.Else)
	}
	return nil
}

func (b *Base) VisitWhile(n *While) error {
	if err := b.walk(n, "cond", n.Cond); err != nil {
		return err
	}
	return b.walk(n, "body", n.Body)
}

func (b *Base) VisitInvoke(n *Invoke) error {
	return b.walk(n, "expr", n.Expr)
}

// VisitCall walks nothing: Call has no traversable children in this version
// of the language.
func (b *Base) VisitCall(n *Call) error {
	return nil
}

func (b *Base) VisitInteger(n *Integer) error {
	return nil
}

func (b *Base) VisitVar(n *Var) error {
	return nil
}

func (b *Base) walkBinary(n Node, lhs, rhs Expr) error {
	if err := b.walk(n, "lhs", lhs); err != nil {
		return err
	}
	return b.walk(n, "rhs", rhs)
}

func (b *Base) VisitAdd(n *Add) error {
	return b.walkBinary(n, n.LHS, n.RHS)
}

func (b *Base) VisitSub(n *Sub) error {
	return b.walkBinary(n, n.LHS, n.RHS)
}

func (b *Base) VisitMul(n *Mul) error {
	return b.walkBinary(n, n.LHS, n.RHS)
}

func (b *Base) VisitDiv(n *Div) error {
	return b.walkBinary(n, n.LHS, n.RHS)
}

func (b *Base) VisitLT(n *LT) error {
	return b.walkBinary(n, n.LHS, n.RHS)
}

func (b *Base) VisitLE(n *LE) error {
	return b.walkBinary(n, n.LHS, n.RHS)
}

func (b *Base) VisitGT(n *GT) error {
	return b.walkBinary(n, n.LHS, n.RHS)
}

func (b *Base) VisitGE(n *GE) error {
	return b.walkBinary(n, n.LHS, n.RHS)
}

func (b *Base) VisitEQ(n *EQ) error {
	return b.walkBinary(n, n.LHS, n.RHS)
}

func (b *Base) VisitNE(n *NE) error {
	return b.walkBinary(n, n.LHS, n.RHS)
}
