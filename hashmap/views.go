// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import (
	"fmt"
	"iter"
	"strings"
)

// KeySet is the live set of keys of a map. Removing a key removes its
// mapping. Keys cannot be added through the view.
type KeySet[K, V any] struct {
	m *Map[K, V]
}

// Len returns the number of keys.
func (s *KeySet[K, V]) Len() int {
	return s.m.size
}

// Contains reports whether k is mapped.
func (s *KeySet[K, V]) Contains(k Key[K]) bool {
	return s.m.getEntry(k) != nil
}

// Remove unmaps k and reports whether it was mapped.
func (s *KeySet[K, V]) Remove(k Key[K]) bool {
	return s.m.removeEntryForKey(k) != nil
}

// RemoveAll unmaps every given key and reports whether the map changed.
func (s *KeySet[K, V]) RemoveAll(keys ...Key[K]) bool {
	changed := false
	for _, k := range keys {
		if s.Remove(k) {
			changed = true
		}
	}
	return changed
}

// RemoveIf unmaps every key matching pred.
func (s *KeySet[K, V]) RemoveIf(pred func(Key[K]) bool) (bool, error) {
	return removeIf(s.Iterator(), pred)
}

// Clear removes every mapping.
func (s *KeySet[K, V]) Clear() {
	s.m.Clear()
}

// Add always fails: keys can only be inserted through the map.
func (s *KeySet[K, V]) Add(Key[K]) error {
	return unsupported("key set", "add")
}

// AddAll always fails.
func (s *KeySet[K, V]) AddAll(...Key[K]) error {
	return unsupported("key set", "add all")
}

// Iterator returns a fail-fast iterator over the keys.
func (s *KeySet[K, V]) Iterator() Iterator[Key[K]] {
	return newIterator(s.m, keyOf[K, V])
}

// All returns a range function over the keys. It panics with
// ErrConcurrentModification if the map is structurally modified while ranging.
func (s *KeySet[K, V]) All() iter.Seq[Key[K]] {
	return projectSeq(s.m, keyOf[K, V])
}

// ToSlice returns the keys in iteration order.
func (s *KeySet[K, V]) ToSlice() []Key[K] {
	return toSlice(s.m, keyOf[K, V])
}

func (s *KeySet[K, V]) String() string {
	return format(s.m, func(e *Entry[K, V]) string { return e.key.String() })
}

// Values is the live collection of values of a map. Removing a value removes
// one mapping to it. Values cannot be added through the view.
type Values[K, V any] struct {
	m *Map[K, V]
}

// Len returns the number of values, counting duplicates.
func (c *Values[K, V]) Len() int {
	return c.m.size
}

// Contains reports whether at least one key maps to v.
func (c *Values[K, V]) Contains(v V) bool {
	return c.m.ContainsValue(v)
}

// Remove removes the first mapping to v in iteration order, and reports
// whether there was one.
func (c *Values[K, V]) Remove(v V) bool {
	it := c.Iterator()
	for it.HasNext() {
		got, err := it.Next()
		if err != nil {
			return false
		}
		if c.m.valueEqual(got, v) {
			return it.Remove() == nil
		}
	}
	return false
}

// RemoveAll removes every mapping to any of vs and reports whether the map
// changed.
func (c *Values[K, V]) RemoveAll(vs ...V) bool {
	removed, _ := c.RemoveIf(func(got V) bool {
		for _, v := range vs {
			if c.m.valueEqual(got, v) {
				return true
			}
		}
		return false
	})
	return removed
}

// RemoveIf removes every mapping whose value matches pred.
func (c *Values[K, V]) RemoveIf(pred func(V) bool) (bool, error) {
	return removeIf(c.Iterator(), pred)
}

// Clear removes every mapping.
func (c *Values[K, V]) Clear() {
	c.m.Clear()
}

// Add always fails: values can only be inserted through the map.
func (c *Values[K, V]) Add(V) error {
	return unsupported("values", "add")
}

// AddAll always fails.
func (c *Values[K, V]) AddAll(...V) error {
	return unsupported("values", "add all")
}

// Iterator returns a fail-fast iterator over the values.
func (c *Values[K, V]) Iterator() Iterator[V] {
	return newIterator(c.m, valueOf[K, V])
}

// All returns a range function over the values. It panics with
// ErrConcurrentModification if the map is structurally modified while ranging.
func (c *Values[K, V]) All() iter.Seq[V] {
	return projectSeq(c.m, valueOf[K, V])
}

// ToSlice returns the values in iteration order.
func (c *Values[K, V]) ToSlice() []V {
	return toSlice(c.m, valueOf[K, V])
}

func (c *Values[K, V]) String() string {
	return format(c.m, func(e *Entry[K, V]) string { return fmt.Sprint(e.value) })
}

// EntrySet is the live set of entries of a map. The entries it yields are the
// map's own: setting their value writes through.
type EntrySet[K, V any] struct {
	m *Map[K, V]
}

// Len returns the number of entries.
func (s *EntrySet[K, V]) Len() int {
	return s.m.size
}

// Contains reports whether the map maps the key of e to the value of e.
func (s *EntrySet[K, V]) Contains(e *Entry[K, V]) bool {
	got := s.m.getEntry(e.key)
	return got != nil && s.m.valueEqual(got.value, e.value)
}

// Remove removes the mapping of the key of e if it is mapped to the value of
// e, and reports whether it was.
func (s *EntrySet[K, V]) Remove(e *Entry[K, V]) bool {
	return s.m.removeMapping(e) != nil
}

// RemoveIf removes every entry matching pred.
func (s *EntrySet[K, V]) RemoveIf(pred func(*Entry[K, V]) bool) (bool, error) {
	return removeIf(s.Iterator(), pred)
}

// Clear removes every mapping.
func (s *EntrySet[K, V]) Clear() {
	s.m.Clear()
}

// Add always fails: mappings can only be inserted through the map.
func (s *EntrySet[K, V]) Add(*Entry[K, V]) error {
	return unsupported("entry set", "add")
}

// Iterator returns a fail-fast iterator over the entries.
func (s *EntrySet[K, V]) Iterator() Iterator[*Entry[K, V]] {
	return newIterator(s.m, entryOf[K, V])
}

// All returns a range function over the entries. It panics with
// ErrConcurrentModification if the map is structurally modified while ranging.
func (s *EntrySet[K, V]) All() iter.Seq[*Entry[K, V]] {
	return entries(s.m)
}

// ToSlice returns the entries in iteration order.
func (s *EntrySet[K, V]) ToSlice() []*Entry[K, V] {
	return toSlice(s.m, entryOf[K, V])
}

func (s *EntrySet[K, V]) String() string {
	return format(s.m, (*Entry[K, V]).String)
}

func toSlice[K, V, T any](m *Map[K, V], fn func(*Entry[K, V]) T) []T {
	out := make([]T, 0, m.size)
	m.forEachEntry(func(e *Entry[K, V]) bool {
		out = append(out, fn(e))
		return true
	})
	return out
}

func format[K, V any](m *Map[K, V], fn func(*Entry[K, V]) string) string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	m.forEachEntry(func(e *Entry[K, V]) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(fn(e))
		return true
	})
	b.WriteByte(']')
	return b.String()
}
