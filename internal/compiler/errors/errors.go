// Copyright 2021 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package errors defines the error kinds shared by the AST walker and the
// passes built on it.
package errors

import (
	"fmt"

	"github.com/minic-lang/minic/internal/compiler/position"
	"github.com/pkg/errors"
)

// UnknownKind reports that the walker dispatched on a node whose dynamic
// type is outside the closed kind set.  It signals version skew between the
// tree producer and the walker; there is no recovery.
type UnknownKind struct {
	Pos  *position.Position
	Kind string // the dynamic type of the offending node
}

func (e *UnknownKind) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("unknown node kind %s", e.Kind)
	}
	return fmt.Sprintf("%s: unknown node kind %s", e.Pos, e.Kind)
}

// NullChild reports that a required child of a node was absent when the
// default descent went to walk it.
type NullChild struct {
	Pos   *position.Position
	Kind  string // the parent node kind
	Child string // the name of the missing child
}

func (e *NullChild) Error() string {
	if e.Kind == "" {
		return "nil node passed to walk"
	}
	msg := fmt.Sprintf("missing child %s of %s node", e.Child, e.Kind)
	if e.Pos == nil {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Pos, msg)
}

type compileError struct {
	pos *position.Position
	msg string
}

func (e compileError) Error() string {
	if e.pos == nil {
		return e.msg
	}
	return e.pos.String() + ": " + e.msg
}

// ErrorList contains a list of positioned errors, for passes that accumulate
// diagnostics instead of aborting on the first.
type ErrorList []*compileError

// Add appends an error at a position to the list of errors.
func (p *ErrorList) Add(pos *position.Position, msg string) {
	*p = append(*p, &compileError{pos, msg})
}

// Append puts an ErrorList on the end of this ErrorList.
func (p *ErrorList) Append(l ErrorList) {
	*p = append(*p, l...)
}

// ErrorList implements the error interface.
func (p ErrorList) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	var r string
	for _, e := range p {
		r += fmt.Sprintf("%s\n", e)
	}
	return r[:len(r)-1]
}

func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}
