// Copyright (c) 2015 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package test

import (
	"errors"
	"fmt"
	"testing"
)

func TestShouldPanic(t *testing.T) {
	fn := func() { panic("Here we are") }

	ShouldPanic(t, fn)
}

func TestShouldPanicWithString(t *testing.T) {
	fn := func() { panic("Here we are") }

	ShouldPanicWith(t, "Here we are", fn)
}

func TestShouldPanicWithStruct(t *testing.T) {
	fn := func() { panic(struct{ Foo string }{Foo: "panic"}) }

	ShouldPanicWith(t, struct{ Foo string }{Foo: "panic"}, fn)
}

var errSentinel = errors.New("sentinel")

func TestShouldPanicWithErr(t *testing.T) {
	ShouldPanicWithErr(t, errSentinel, func() { panic(errSentinel) })
	ShouldPanicWithErr(t, errSentinel, func() {
		panic(fmt.Errorf("wrapped: %w", errSentinel))
	})
}

func TestDiff(t *testing.T) {
	if d := Diff([]int{1, 2}, []int{1, 2}); d != "" {
		t.Errorf("unexpected diff: %s", d)
	}
	if d := Diff(map[string]int{"a": 1}, map[string]int{"a": 2}); d == "" {
		t.Errorf("expected a diff")
	}
}
