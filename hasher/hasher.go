// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package hasher provides raw 32-bit hash codes for common key types, to be
// passed as the hash function of a hashmap.Map.
//
// String, Integer, Float64, Float32 and Bool reproduce the hash codes of the
// corresponding JVM boxed types bit for bit, so that bucket placement and
// iteration order match those of a JVM hash map built from the same keys.
// Bytes and StringXXH3 trade that compatibility for a better distribution.
package hasher

import (
	"math"
	"unicode/utf16"
	"unsafe"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

// Hashable represents a key type that provides its own hash and equality.
type Hashable interface {
	Hash() uint64
	Equal(other interface{}) bool
}

// String returns s[0]*31^(n-1) + s[1]*31^(n-2) + ... + s[n-1] over the
// UTF-16 code units of s, with wrapping arithmetic.
func String(s string) uint32 {
	var h uint32
	for _, r := range s {
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			h = 31*h + uint32(r1)
			h = 31*h + uint32(r2)
			continue
		}
		h = 31*h + uint32(r)
	}
	return h
}

// Integer returns the value itself for integers of at most 32 bits, and the
// two halves of the value XORed together for wider ones.
func Integer[T constraints.Integer](v T) uint32 {
	if unsafe.Sizeof(v) <= 4 {
		return uint32(v)
	}
	return Fold(uint64(v))
}

// Fold XORs the high and low halves of h.
func Fold(h uint64) uint32 {
	return uint32(h ^ h>>32)
}

// Float64 folds the IEEE 754 bits of f. All NaNs hash alike.
func Float64(f float64) uint32 {
	if math.IsNaN(f) {
		return Fold(0x7ff8000000000000)
	}
	return Fold(math.Float64bits(f))
}

// Float32 returns the IEEE 754 bits of f. All NaNs hash alike.
func Float32(f float32) uint32 {
	if f != f {
		return 0x7fc00000
	}
	return math.Float32bits(f)
}

// Bool returns 1231 for true and 1237 for false.
func Bool(b bool) uint32 {
	if b {
		return 1231
	}
	return 1237
}

// Combine mixes the hashes of the fields of a composite key, in order.
func Combine(hashes ...uint32) uint32 {
	h := uint32(1)
	for _, x := range hashes {
		h = 31*h + x
	}
	return h
}

// Bytes hashes b with XXH3.
func Bytes(b []byte) uint32 {
	return Fold(xxh3.Hash(b))
}

// StringXXH3 hashes s with XXH3.
func StringXXH3(s string) uint32 {
	return Fold(xxh3.HashString(s))
}

// HashableHash folds the hash of a Hashable key.
func HashableHash[T Hashable](k T) uint32 {
	return Fold(k.Hash())
}

// HashableEqual compares Hashable keys with their Equal method.
func HashableEqual[T Hashable](a, b T) bool {
	return a.Equal(b)
}

// Equal compares keys with ==.
func Equal[K comparable](a, b K) bool {
	return a == b
}

// BytesEqual compares byte slice keys by content.
func BytesEqual(a, b []byte) bool {
	return string(a) == string(b)
}
