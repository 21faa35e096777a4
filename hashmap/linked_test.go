// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import (
	"fmt"
	"testing"

	"github.com/aristanetworks/chainmap/test"
)

func keysOf[V any](m *Map[string, V]) []string {
	var keys []string
	for k := range m.KeySet().All() {
		keys = append(keys, k.String())
	}
	return keys
}

func TestInsertionOrder(t *testing.T) {
	m := newStringMap(t, WithOrder(InsertionOrder), WithInitialCapacity(2))
	want := []string{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"}
	for i, k := range want {
		m.Put(k, i)
	}
	if d := test.Diff(want, keysOf(m)); d != "" {
		t.Errorf("order after inserts and resizes: %s", d)
	}

	m.Put("q", 100)
	m.Get("w")
	if d := test.Diff(want, keysOf(m)); d != "" {
		t.Errorf("overwrite or lookup moved an entry: %s", d)
	}

	m.Remove("e")
	m.Put("e", 2)
	want = append(append(want[:2:2], want[3:]...), "e")
	if d := test.Diff(want, keysOf(m)); d != "" {
		t.Errorf("reinserted key is not last: %s", d)
	}
	checkInvariants(t, m)

	m.Clear()
	if len(keysOf(m)) != 0 {
		t.Errorf("Clear left %s", m)
	}
	m.Put("z", 0)
	if d := test.Diff([]string{"z"}, keysOf(m)); d != "" {
		t.Errorf("insert after Clear: %s", d)
	}
}

func TestAccessOrder(t *testing.T) {
	m := newStringMap(t, WithOrder(AccessOrder))
	for i, k := range []string{"a", "b", "c", "d"} {
		m.Put(k, i)
	}
	before := m.modCount
	m.Get("b")
	m.Put("a", 10)
	if m.modCount != before+2 {
		t.Errorf("accesses were not structural: modCount %d, want %d", m.modCount, before+2)
	}
	m.ContainsKey("c")
	m.Get("missing")
	if d := test.Diff([]string{"c", "d", "b", "a"}, keysOf(m)); d != "" {
		t.Errorf("unexpected access order: %s", d)
	}
	if got := m.GetOrDefault("c", -1); got != 2 {
		t.Errorf("GetOrDefault(c) = %d", got)
	}
	if d := test.Diff([]string{"d", "b", "a", "c"}, keysOf(m)); d != "" {
		t.Errorf("GetOrDefault did not count as an access: %s", d)
	}
	checkInvariants(t, m)
}

func TestAccessOrderGetInvalidatesIterator(t *testing.T) {
	m := newStringMap(t, WithOrder(AccessOrder))
	m.Put("a", 1)
	m.Put("b", 2)
	test.ShouldPanicWithErr(t, ErrConcurrentModification, func() {
		for k := range m.KeySet().All() {
			v, _ := k.Get()
			m.Get(v)
		}
	})
}

func TestMaxEntries(t *testing.T) {
	r := &recorder{}
	m := newStringMap(t, WithOrder(AccessOrder), WithMaxEntries(3), WithLogger(r))
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)
	m.Get("a")
	m.Put("d", 4)
	if d := test.Diff([]string{"c", "a", "d"}, keysOf(m)); d != "" {
		t.Errorf("unexpected entries after eviction: %s", d)
	}
	if m.ContainsKey("b") || m.Len() != 3 {
		t.Errorf("eldest entry was not evicted: %s", m)
	}
	want := []string{"hashmap: evicted eldest entry b (len 4, max 3)"}
	if d := test.Diff(want, r.lines); d != "" {
		t.Errorf("unexpected log lines: %s", d)
	}
	checkInvariants(t, m)

	fifo := newIntMap(t, constHash, WithOrder(InsertionOrder), WithMaxEntries(5))
	for i := 0; i < 100; i++ {
		fifo.Put(i, fmt.Sprint(i))
		if fifo.Len() > 5 {
			t.Fatalf("Len() = %d after %d inserts", fifo.Len(), i+1)
		}
	}
	for i := 95; i < 100; i++ {
		if !fifo.ContainsKey(i) {
			t.Errorf("newest key %d was evicted", i)
		}
	}
	checkInvariants(t, fifo)
}

func TestOrderedCopies(t *testing.T) {
	m := newStringMap(t, WithOrder(InsertionOrder))
	want := []string{"x", "m", "a", "k", "b"}
	for i, k := range want {
		m.Put(k, i)
	}
	c := m.Clone()
	if d := test.Diff(want, keysOf(c)); d != "" {
		t.Errorf("Clone lost the order: %s", d)
	}
	c.Put("z", 9)
	if m.ContainsKey("z") {
		t.Errorf("Clone shares entries with its source")
	}
	checkInvariants(t, c)

	n, err := NewFrom(m)
	if err != nil {
		t.Fatal(err)
	}
	if n.order != Unordered {
		t.Errorf("NewFrom without options has order %s", n.order)
	}
	if !n.Equal(m) || !m.Equal(n) {
		t.Errorf("NewFrom copy %s differs from %s", n, m)
	}

	lru, err := NewFrom(m, WithOrder(AccessOrder), WithMaxEntries(2))
	if err != nil {
		t.Fatal(err)
	}
	if d := test.Diff([]string{"k", "b"}, keysOf(lru)); d != "" {
		t.Errorf("NewFrom with a bound kept %s", d)
	}
	checkInvariants(t, lru)
}

func TestOrderedRemoval(t *testing.T) {
	m := newStringMap(t, WithOrder(InsertionOrder))
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		m.Put(k, i)
	}
	m.KeySet().Remove(KeyOf("a"))
	m.EntrySet().Remove(NewEntry(KeyOf("c"), 2))
	m.Values().Remove(4)
	if d := test.Diff([]string{"b", "d"}, keysOf(m)); d != "" {
		t.Errorf("unexpected entries: %s", d)
	}
	checkInvariants(t, m)
}
