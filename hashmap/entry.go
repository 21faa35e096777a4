// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import "fmt"

// Entry is a key/value mapping. Entries returned by an EntrySet iterator are
// the map's own nodes: SetValue on them writes through to the map.
type Entry[K, V any] struct {
	hash  uint32
	key   Key[K]
	value V
	// next entry in the same bucket chain
	next *Entry[K, V]

	// neighbours in iteration order, only linked in ordered maps
	before, after *Entry[K, V]
}

// NewEntry returns an entry that does not belong to any map. It is meant to be
// passed to EntrySet.Contains and EntrySet.Remove.
func NewEntry[K, V any](k Key[K], v V) *Entry[K, V] {
	return &Entry[K, V]{key: k, value: v}
}

// Key returns the key of e.
func (e *Entry[K, V]) Key() Key[K] {
	return e.key
}

// Value returns the value of e.
func (e *Entry[K, V]) Value() V {
	return e.value
}

// SetValue replaces the value of e and returns the previous one. This is not a
// structural modification.
func (e *Entry[K, V]) SetValue(v V) V {
	old := e.value
	e.value = v
	return old
}

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("%s=%v", e.key, e.value)
}

// unlink removes e from its ordered-map neighbours.
func (e *Entry[K, V]) unlink() {
	e.before.after = e.after
	e.after.before = e.before
	e.before, e.after = nil, nil
}

// linkBefore inserts e just before existing, i.e. at the tail when existing is
// the list header.
func (e *Entry[K, V]) linkBefore(existing *Entry[K, V]) {
	e.after = existing
	e.before = existing.before
	e.before.after = e
	e.after.before = e
}
