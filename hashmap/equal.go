// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import "reflect"

// equaler types have an equality-testing method.
type equaler interface {
	// Equal returns true if this object is equal to the other one.
	Equal(other interface{}) bool
}

// valuesEqual compares two values with their Equal method if they have one,
// with == if their dynamic values allow it, and with reflect.DeepEqual
// otherwise.
func valuesEqual[V any](a, b V) bool {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == y
	}
	if c, ok := x.(equaler); ok {
		return c.Equal(y)
	}
	if reflect.TypeOf(x).Comparable() && reflect.TypeOf(y).Comparable() {
		if eq, ok := shallowEqual(x, y); ok {
			return eq
		}
	}
	return reflect.DeepEqual(x, y)
}

// shallowEqual compares x and y with ==. ok is false if that panicked, which
// happens when an interface inside a comparable type holds an uncomparable
// value.
func shallowEqual(x, y interface{}) (eq, ok bool) {
	defer func() {
		if recover() != nil {
			eq, ok = false, false
		}
	}()
	return x == y, true
}
