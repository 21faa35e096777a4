// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import "iter"

// Iterator is a fail-fast iterator over a map or one of its views.
//
// Next fails with ErrConcurrentModification as soon as the map has been
// structurally modified by anything but this iterator's Remove, even if no
// element is left. Once that happens the iterator is useless: start a new one.
type Iterator[T any] interface {
	// HasNext reports whether Next has an element to return.
	HasNext() bool
	// Next returns the next element, ErrNoSuchElement once exhausted, or
	// ErrConcurrentModification.
	Next() (T, error)
	// Remove removes from the map the element last returned by Next. It
	// returns ErrIllegalState if Next was not called since the last Remove.
	Remove() error
}

// hashIterator walks the entries of a map, in bucket order or following the
// map's ordering list.
type hashIterator[K, V any] struct {
	m *Map[K, V]
	// next is the entry Next returns, nil once exhausted.
	next *Entry[K, V]
	// current is the entry Remove removes.
	current *Entry[K, V]
	// index is the first bucket not scanned yet.
	index            int
	expectedModCount int
	// end terminates ordered iteration, nil for bucket order.
	end *Entry[K, V]
}

func newHashIterator[K, V any](m *Map[K, V]) *hashIterator[K, V] {
	it := &hashIterator[K, V]{m: m, expectedModCount: m.modCount}
	if head := m.links.first(); head != nil {
		it.end = m.links.end()
		if head != it.end {
			it.next = head
		}
		return it
	}
	if m.size > 0 {
		it.advance()
	}
	return it
}

// advance points next at the head of the first non-empty bucket from index.
func (it *hashIterator[K, V]) advance() {
	t := it.m.table
	for it.index < len(t) {
		e := t[it.index]
		it.index++
		if e != nil {
			it.next = e
			return
		}
	}
	it.next = nil
}

func (it *hashIterator[K, V]) HasNext() bool {
	return it.next != nil
}

func (it *hashIterator[K, V]) nextEntry() (*Entry[K, V], error) {
	if it.m.modCount != it.expectedModCount {
		return nil, ErrConcurrentModification
	}
	e := it.next
	if e == nil {
		return nil, ErrNoSuchElement
	}
	switch {
	case it.end != nil:
		it.next = e.after
		if it.next == it.end {
			it.next = nil
		}
	case e.next != nil:
		it.next = e.next
	default:
		it.advance()
	}
	it.current = e
	return e, nil
}

func (it *hashIterator[K, V]) Remove() error {
	if it.current == nil {
		return ErrIllegalState
	}
	if it.m.modCount != it.expectedModCount {
		return ErrConcurrentModification
	}
	k := it.current.key
	it.current = nil
	it.m.removeEntryForKey(k)
	it.expectedModCount = it.m.modCount
	return nil
}

// projection adapts a hashIterator to yield keys, values or entries.
type projection[K, V, T any] struct {
	*hashIterator[K, V]
	project func(*Entry[K, V]) T
}

func (p projection[K, V, T]) Next() (T, error) {
	e, err := p.nextEntry()
	if err != nil {
		var zero T
		return zero, err
	}
	return p.project(e), nil
}

func newIterator[K, V, T any](m *Map[K, V], project func(*Entry[K, V]) T) Iterator[T] {
	return projection[K, V, T]{hashIterator: newHashIterator(m), project: project}
}

func entryOf[K, V any](e *Entry[K, V]) *Entry[K, V] { return e }
func keyOf[K, V any](e *Entry[K, V]) Key[K]         { return e.key }
func valueOf[K, V any](e *Entry[K, V]) V            { return e.value }

// entries ranges over the entries of m, panicking with
// ErrConcurrentModification if m is structurally modified meanwhile.
func entries[K, V any](m *Map[K, V]) iter.Seq[*Entry[K, V]] {
	return func(yield func(*Entry[K, V]) bool) {
		it := newHashIterator(m)
		for it.HasNext() {
			e, err := it.nextEntry()
			if err != nil {
				panic(err)
			}
			if !yield(e) {
				return
			}
		}
		if m.modCount != it.expectedModCount {
			panic(ErrConcurrentModification)
		}
	}
}

func projectSeq[K, V, T any](m *Map[K, V], fn func(*Entry[K, V]) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range entries(m) {
			if !yield(fn(e)) {
				return
			}
		}
	}
}

// removeIf removes through it every element matching pred, and reports whether
// any was removed.
func removeIf[T any](it Iterator[T], pred func(T) bool) (bool, error) {
	removed := false
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return removed, err
		}
		if !pred(v) {
			continue
		}
		if err := it.Remove(); err != nil {
			return removed, err
		}
		removed = true
	}
	return removed, nil
}
