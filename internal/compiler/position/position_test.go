// Copyright 2021 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package position_test

import (
	"testing"

	"github.com/minic-lang/minic/internal/compiler/position"
	"github.com/minic-lang/minic/internal/testutil"
)

func TestPositionString(t *testing.T) {
	for _, tc := range []struct {
		pos  position.Position
		want string
	}{
		{position.Position{Filename: "t.mc", Line: 0, Startcol: 0, Endcol: 0}, "t.mc:1:1"},
		{position.Position{Filename: "t.mc", Line: 4, Startcol: 2, Endcol: 6}, "t.mc:5:3-7"},
	} {
		if got := tc.pos.String(); got != tc.want {
			t.Errorf("want %q, got %q", tc.want, got)
		}
	}
}

func TestMerge(t *testing.T) {
	a := &position.Position{Filename: "t.mc", Line: 1, Startcol: 2, Endcol: 4}
	b := &position.Position{Filename: "t.mc", Line: 1, Startcol: 6, Endcol: 9}
	want := &position.Position{Filename: "t.mc", Line: 1, Startcol: 2, Endcol: 9}
	testutil.ExpectNoDiff(t, want, position.Merge(a, b))
	testutil.ExpectNoDiff(t, want, position.Merge(b, a))
}

func TestMergeNil(t *testing.T) {
	a := &position.Position{Filename: "t.mc", Line: 1, Startcol: 2, Endcol: 4}
	testutil.ExpectNoDiff(t, a, position.Merge(a, nil))
	testutil.ExpectNoDiff(t, a, position.Merge(nil, a))
	if position.Merge(nil, nil) != nil {
		t.Error("merging two nil positions must give nil")
	}
}

func TestMergeAcrossFilesKeepsFirst(t *testing.T) {
	a := &position.Position{Filename: "a.mc", Line: 1, Startcol: 0, Endcol: 1}
	b := &position.Position{Filename: "b.mc", Line: 1, Startcol: 0, Endcol: 1}
	testutil.ExpectNoDiff(t, a, position.Merge(a, b))
}
