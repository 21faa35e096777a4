// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import "fmt"

// Key is a map key that is either the null key or a present value of K.
// A map holds at most one entry for the null key, independently of whether K
// itself has a nil value.
type Key[K any] struct {
	k       K
	present bool
}

// KeyOf returns the present key k.
func KeyOf[K any](k K) Key[K] {
	return Key[K]{k: k, present: true}
}

// NullKey returns the null key.
func NullKey[K any]() Key[K] {
	return Key[K]{}
}

// Get returns the key value and true, or the zero K and false for the null key.
func (k Key[K]) Get() (K, bool) {
	return k.k, k.present
}

// IsNull reports whether k is the null key.
func (k Key[K]) IsNull() bool {
	return !k.present
}

// String returns the key formatted with %v, or "null".
func (k Key[K]) String() string {
	if !k.present {
		return "null"
	}
	return fmt.Sprint(k.k)
}
