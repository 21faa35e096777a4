// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

// linkage is notified of every entry the map creates, touches and drops. It
// is chosen once from the map's Order: unordered maps do no bookkeeping,
// ordered maps thread their entries on a circular doubly linked list.
type linkage[K, V any] interface {
	added(e *Entry[K, V])
	// accessed reports whether moving e was a structural modification.
	accessed(e *Entry[K, V]) bool
	removed(e *Entry[K, V])
	cleared()
	// first returns the head of the iteration order, or nil for bucket order.
	first() *Entry[K, V]
	// end returns the sentinel that terminates the iteration order.
	end() *Entry[K, V]
}

func newLinkage[K, V any](order Order) linkage[K, V] {
	if order == Unordered {
		return unlinked[K, V]{}
	}
	l := &linked[K, V]{header: &Entry[K, V]{}, accessOrder: order == AccessOrder}
	l.cleared()
	return l
}

type unlinked[K, V any] struct{}

func (unlinked[K, V]) added(*Entry[K, V])         {}
func (unlinked[K, V]) accessed(*Entry[K, V]) bool { return false }
func (unlinked[K, V]) removed(*Entry[K, V])       {}
func (unlinked[K, V]) cleared()                   {}
func (unlinked[K, V]) first() *Entry[K, V]        { return nil }
func (unlinked[K, V]) end() *Entry[K, V]          { return nil }

type linked[K, V any] struct {
	// header.after is the eldest entry, header.before the youngest.
	header      *Entry[K, V]
	accessOrder bool
}

func (l *linked[K, V]) added(e *Entry[K, V]) {
	e.linkBefore(l.header)
}

func (l *linked[K, V]) accessed(e *Entry[K, V]) bool {
	if !l.accessOrder {
		return false
	}
	e.unlink()
	e.linkBefore(l.header)
	return true
}

func (l *linked[K, V]) removed(e *Entry[K, V]) {
	e.unlink()
}

func (l *linked[K, V]) cleared() {
	l.header.before = l.header
	l.header.after = l.header
}

func (l *linked[K, V]) first() *Entry[K, V] {
	return l.header.after
}

func (l *linked[K, V]) end() *Entry[K, V] {
	return l.header
}
