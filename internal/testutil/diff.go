// Copyright 2021 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Reimport the go-cmp package so test files share one set of diff helpers.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Diff(a, b interface{}, opts ...cmp.Option) string {
	return cmp.Diff(a, b, opts...)
}

// ExpectNoDiff fails the test and logs the diff if a and b are not equal.
func ExpectNoDiff(tb testing.TB, a, b interface{}, opts ...cmp.Option) bool {
	tb.Helper()
	if diff := Diff(a, b, opts...); diff != "" {
		tb.Errorf("Unexpected diff, -want +got:\n%s", diff)
		return false
	}
	return true
}
