// Copyright (c) 2020 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package hashmap implements a separately chained hash map with fail-fast
// iterators and live key, value and entry views.
//
// A Map is not safe for concurrent use. Structural modifications (inserting a
// new key, removing a key, clearing, growing the table) invalidate every
// iterator except the one performing the modification; the next use of an
// invalidated iterator reports ErrConcurrentModification. This detection is
// best effort and is not a substitute for synchronization.
//
// The null key is represented by Key.IsNull and accessed with the *Null
// methods; a map holds at most one null-keyed entry.
package hashmap

import (
	"iter"
	"math"
	"math/bits"
	"strings"

	"github.com/aristanetworks/chainmap/logger"
)

// Map implements a hash map of separately chained entries. The zero Map is not
// usable, build one with New.
type Map[K, V any] struct {
	// table is nil until the first insert, then always a power of two long.
	table      []*Entry[K, V]
	size       int
	threshold  int
	loadFactor float64
	// initialCapacity is the length requested for the deferred allocation.
	initialCapacity int
	// maxCapacity is the table length at which growth stops.
	maxCapacity int
	// modCount counts structural modifications.
	modCount int
	resizes  int
	seed     uint32

	hash       func(K) uint32
	equal      func(a, b K) bool
	valueEqual func(a, b V) bool

	links      linkage[K, V]
	order      Order
	maxEntries int
	log        logger.Logger

	keySet   *KeySet[K, V]
	values   *Values[K, V]
	entrySet *EntrySet[K, V]
}

// New returns an empty map using hash as the raw hash code of keys and equal
// as their equality. equal(a, b) must imply hash(a) == hash(b). No table is
// allocated until the first insert.
//
// Values are compared (by ContainsValue, Values().Contains, Equal...) with their
// Equal(interface{}) bool method when they have one, and structurally otherwise.
func New[K, V any](hash func(K) uint32, equal func(a, b K) bool,
	opts ...Option) (*Map[K, V], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return newMap[K, V](hash, equal, o), nil
}

// NewComparable is New with == as key equality.
func NewComparable[K comparable, V any](hash func(K) uint32,
	opts ...Option) (*Map[K, V], error) {
	return New[K, V](hash, equalComparable[K], opts...)
}

// NewFrom returns a map holding the same mappings as src, with the same hash
// and equality functions. The table is sized up front so that copying does
// not rehash: an initial capacity too small for src is raised. Options apply
// on top of the default configuration.
func NewFrom[K, V any](src *Map[K, V], opts ...Option) (*Map[K, V], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	m := newMap[K, V](src.hash, src.equal, o)
	m.presize(src.size)
	src.forEachEntry(func(e *Entry[K, V]) bool {
		m.putForCreate(e.key, e.value)
		return true
	})
	m.evictOverflow()
	return m, nil
}

// FromMap returns a map holding the mappings of the Go map src.
func FromMap[K comparable, V any](src map[K]V, hash func(K) uint32,
	opts ...Option) (*Map[K, V], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	m := newMap[K, V](hash, equalComparable[K], o)
	m.presize(len(src))
	for k, v := range src {
		m.putForCreate(KeyOf(k), v)
	}
	m.evictOverflow()
	return m, nil
}

func newMap[K, V any](hash func(K) uint32, equal func(a, b K) bool, o options) *Map[K, V] {
	return &Map[K, V]{
		loadFactor:      o.LoadFactor,
		initialCapacity: o.InitialCapacity,
		maxCapacity:     MaximumCapacity,
		seed:            o.Seed,
		hash:            hash,
		equal:           equal,
		valueEqual:      valuesEqual[V],
		links:           newLinkage[K, V](o.Order),
		order:           o.Order,
		maxEntries:      o.MaxEntries,
		log:             o.log,
	}
}

// presize allocates a table holding n entries within the load factor, and
// no smaller than the configured initial capacity.
func (m *Map[K, V]) presize(n int) {
	capacity := roundUpToPowerOf2(max(copyCapacity(n), m.initialCapacity))
	for capacity < m.maxCapacity && m.thresholdFor(capacity) < n {
		capacity <<= 1
	}
	m.inflateTable(capacity)
}

func copyCapacity(n int) int {
	c := int(float64(n)/DefaultLoadFactor) + 1
	if c < DefaultInitialCapacity {
		return DefaultInitialCapacity
	}
	return c
}

func equalComparable[K comparable](a, b K) bool {
	return a == b
}

// spreadHash folds the high bits of h into the low bits that indexFor keeps.
func spreadHash(h uint32) uint32 {
	h ^= (h >> 20) ^ (h >> 12)
	return h ^ (h >> 7) ^ (h >> 4)
}

// indexFor returns the bucket of hash h in a table of the given power of two
// length.
func indexFor(h uint32, length int) int {
	return int(h & uint32(length-1))
}

func roundUpToPowerOf2(n int) int {
	if n >= MaximumCapacity {
		return MaximumCapacity
	}
	if n > 1 {
		return 1 << bits.Len(uint(n-1))
	}
	return 1
}

func (m *Map[K, V]) thresholdFor(capacity int) int {
	t := float64(capacity) * m.loadFactor
	if t > float64(m.maxCapacity+1) {
		return m.maxCapacity + 1
	}
	return int(t)
}

func (m *Map[K, V]) hashOf(k Key[K]) uint32 {
	if !k.present {
		return 0
	}
	return spreadHash(m.seed ^ m.hash(k.k))
}

func (m *Map[K, V]) keysEqual(a, b Key[K]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || m.equal(a.k, b.k)
}

func (m *Map[K, V]) inflateTable(toSize int) {
	capacity := min(roundUpToPowerOf2(toSize), m.maxCapacity)
	m.threshold = m.thresholdFor(capacity)
	m.table = make([]*Entry[K, V], capacity)
}

// Len returns the number of mappings in m.
func (m *Map[K, V]) Len() int {
	return m.size
}

// IsEmpty reports whether m holds no mapping.
func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

func (m *Map[K, V]) getEntry(k Key[K]) *Entry[K, V] {
	if m.size == 0 {
		return nil
	}
	h := m.hashOf(k)
	for e := m.table[indexFor(h, len(m.table))]; e != nil; e = e.next {
		if e.hash == h && m.keysEqual(e.key, k) {
			return e
		}
	}
	return nil
}

func (m *Map[K, V]) get(k Key[K]) (V, bool) {
	e := m.getEntry(k)
	if e == nil {
		var zero V
		return zero, false
	}
	m.recordAccess(e)
	return e.value, true
}

func (m *Map[K, V]) recordAccess(e *Entry[K, V]) {
	if m.links.accessed(e) {
		m.modCount++
	}
}

// Get returns the value mapped to k and true, or the zero V and false.
func (m *Map[K, V]) Get(k K) (V, bool) {
	return m.get(KeyOf(k))
}

// GetNull returns the value mapped to the null key.
func (m *Map[K, V]) GetNull() (V, bool) {
	return m.get(NullKey[K]())
}

// GetOrDefault returns the value mapped to k, or def.
func (m *Map[K, V]) GetOrDefault(k K, def V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	return def
}

// ContainsKey reports whether k is mapped. It never counts as an access.
func (m *Map[K, V]) ContainsKey(k K) bool {
	return m.getEntry(KeyOf(k)) != nil
}

// ContainsNullKey reports whether the null key is mapped.
func (m *Map[K, V]) ContainsNullKey() bool {
	return m.getEntry(NullKey[K]()) != nil
}

// ContainsValue reports whether at least one key maps to v. It takes time
// linear in the capacity of m.
func (m *Map[K, V]) ContainsValue(v V) bool {
	for _, e := range m.table {
		for ; e != nil; e = e.next {
			if m.valueEqual(e.value, v) {
				return true
			}
		}
	}
	return false
}

func (m *Map[K, V]) put(k Key[K], v V) (V, bool) {
	if m.table == nil {
		m.inflateTable(m.initialCapacity)
	}
	h := m.hashOf(k)
	i := indexFor(h, len(m.table))
	for e := m.table[i]; e != nil; e = e.next {
		if e.hash == h && m.keysEqual(e.key, k) {
			old := e.value
			e.value = v
			m.recordAccess(e)
			return old, true
		}
	}
	m.modCount++
	m.addEntry(h, k, v, i)
	var zero V
	return zero, false
}

// Put maps k to v. It returns the previous value and true if k was already
// mapped, in which case only the value changes. Overwriting is not a
// structural modification, except in AccessOrder maps where it moves the
// entry to the end.
func (m *Map[K, V]) Put(k K, v V) (V, bool) {
	return m.put(KeyOf(k), v)
}

// PutNull maps the null key to v.
func (m *Map[K, V]) PutNull(v V) (V, bool) {
	return m.put(NullKey[K](), v)
}

// PutIfAbsent maps k to v unless k is already mapped. It returns the value k
// ends up mapped to, and whether it was already present.
func (m *Map[K, V]) PutIfAbsent(k K, v V) (V, bool) {
	key := KeyOf(k)
	if e := m.getEntry(key); e != nil {
		m.recordAccess(e)
		return e.value, true
	}
	m.put(key, v)
	return v, false
}

// Replace maps k to v only if k is already mapped, returning the previous
// value.
func (m *Map[K, V]) Replace(k K, v V) (V, bool) {
	e := m.getEntry(KeyOf(k))
	if e == nil {
		var zero V
		return zero, false
	}
	old := e.value
	e.value = v
	m.recordAccess(e)
	return old, true
}

// ComputeIfAbsent returns the value mapped to k, computing it with fn and
// inserting it if k is absent. If fn structurally modifies m, nothing is
// inserted and ErrConcurrentModification is returned.
func (m *Map[K, V]) ComputeIfAbsent(k K, fn func(K) V) (V, error) {
	key := KeyOf(k)
	if e := m.getEntry(key); e != nil {
		m.recordAccess(e)
		return e.value, nil
	}
	mc := m.modCount
	v := fn(k)
	if m.modCount != mc {
		var zero V
		return zero, ErrConcurrentModification
	}
	m.put(key, v)
	return v, nil
}

// ReplaceAll replaces every value with the result of fn, in iteration order.
// It stops with ErrConcurrentModification if fn structurally modifies m.
func (m *Map[K, V]) ReplaceAll(fn func(Key[K], V) V) error {
	mc := m.modCount
	var err error
	m.forEachEntry(func(e *Entry[K, V]) bool {
		e.value = fn(e.key, e.value)
		if m.modCount != mc {
			err = ErrConcurrentModification
			return false
		}
		return true
	})
	return err
}

// addEntry inserts a new entry in bucket i, growing the table first if m is
// at its threshold and the bucket is already occupied.
func (m *Map[K, V]) addEntry(h uint32, k Key[K], v V, i int) {
	if m.size >= m.threshold && m.table[i] != nil {
		m.resize(2 * len(m.table))
		i = indexFor(h, len(m.table))
	}
	m.createEntry(h, k, v, i)
	m.evictOverflow()
}

func (m *Map[K, V]) createEntry(h uint32, k Key[K], v V, i int) {
	e := &Entry[K, V]{hash: h, key: k, value: v, next: m.table[i]}
	m.table[i] = e
	m.links.added(e)
	m.size++
}

// putForCreate inserts without growth checks nor modification counting, on a
// table already sized for the whole copy.
func (m *Map[K, V]) putForCreate(k Key[K], v V) {
	h := m.hashOf(k)
	i := indexFor(h, len(m.table))
	for e := m.table[i]; e != nil; e = e.next {
		if e.hash == h && m.keysEqual(e.key, k) {
			e.value = v
			return
		}
	}
	m.createEntry(h, k, v, i)
}

func (m *Map[K, V]) evictOverflow() {
	for m.maxEntries > 0 && m.size > m.maxEntries {
		eldest := m.links.first()
		m.log.Infof("hashmap: evicted eldest entry %s (len %d, max %d)",
			eldest.key, m.size, m.maxEntries)
		m.removeEntryForKey(eldest.key)
	}
}

// resize moves every entry into a new table of the given length. The new
// table is fully allocated before any entry moves.
func (m *Map[K, V]) resize(newCapacity int) {
	oldCapacity := len(m.table)
	if oldCapacity >= m.maxCapacity {
		if m.threshold != math.MaxInt {
			m.log.Errorf("hashmap: table reached maximum capacity %d at %d entries",
				m.maxCapacity, m.size)
		}
		m.threshold = math.MaxInt
		return
	}
	newTable := make([]*Entry[K, V], newCapacity)
	transfer(m.table, newTable)
	m.table = newTable
	m.threshold = m.thresholdFor(newCapacity)
	m.modCount++
	m.resizes++
	m.log.Infof("hashmap: resized table from %d to %d buckets at %d entries",
		oldCapacity, newCapacity, m.size)
}

// transfer prepends every entry of src to its bucket in dst. Cached hashes are
// reused, so chain order is reversed within each destination bucket.
func transfer[K, V any](src, dst []*Entry[K, V]) {
	for _, e := range src {
		for e != nil {
			next := e.next
			i := indexFor(e.hash, len(dst))
			e.next = dst[i]
			dst[i] = e
			e = next
		}
	}
}

// PutAll copies every mapping of other into m, overwriting existing keys. The
// table is grown once up front when other is larger than m's threshold.
func (m *Map[K, V]) PutAll(other *Map[K, V]) {
	n := other.size
	if n == 0 || other == m {
		return
	}
	if m.table == nil {
		m.inflateTable(max(int(float64(n)*m.loadFactor), m.initialCapacity))
	}
	if n > m.threshold {
		target := int(float64(n)/m.loadFactor + 1)
		if target > m.maxCapacity {
			target = m.maxCapacity
		}
		newCapacity := len(m.table)
		for newCapacity < target {
			newCapacity <<= 1
		}
		if newCapacity > len(m.table) {
			m.resize(newCapacity)
		}
	}
	other.forEachEntry(func(e *Entry[K, V]) bool {
		m.put(e.key, e.value)
		return true
	})
}

func (m *Map[K, V]) removeEntryForKey(k Key[K]) *Entry[K, V] {
	if m.size == 0 {
		return nil
	}
	h := m.hashOf(k)
	i := indexFor(h, len(m.table))
	var prev *Entry[K, V]
	for e := m.table[i]; e != nil; prev, e = e, e.next {
		if e.hash == h && m.keysEqual(e.key, k) {
			m.modCount++
			m.size--
			if prev == nil {
				m.table[i] = e.next
			} else {
				prev.next = e.next
			}
			m.links.removed(e)
			return e
		}
	}
	return nil
}

// removeMapping removes the entry matching both the key and value of o.
func (m *Map[K, V]) removeMapping(o *Entry[K, V]) *Entry[K, V] {
	e := m.getEntry(o.key)
	if e == nil || !m.valueEqual(e.value, o.value) {
		return nil
	}
	return m.removeEntryForKey(o.key)
}

func (m *Map[K, V]) remove(k Key[K]) (V, bool) {
	e := m.removeEntryForKey(k)
	if e == nil {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Remove unmaps k and returns the value it was mapped to.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	return m.remove(KeyOf(k))
}

// RemoveNull unmaps the null key.
func (m *Map[K, V]) RemoveNull() (V, bool) {
	return m.remove(NullKey[K]())
}

// Clear removes every mapping. The table keeps its capacity.
func (m *Map[K, V]) Clear() {
	m.modCount++
	clear(m.table)
	m.size = 0
	m.links.cleared()
}

// forEachEntry calls fn on every entry in iteration order until fn returns
// false. It does not check for modifications.
func (m *Map[K, V]) forEachEntry(fn func(*Entry[K, V]) bool) {
	if head := m.links.first(); head != nil {
		end := m.links.end()
		for e := head; e != end; {
			next := e.after
			if !fn(e) {
				return
			}
			e = next
		}
		return
	}
	for _, e := range m.table {
		for e != nil {
			next := e.next
			if !fn(e) {
				return
			}
			e = next
		}
	}
}

// KeySet returns the live set of keys of m. Every call returns the same view.
func (m *Map[K, V]) KeySet() *KeySet[K, V] {
	if m.keySet == nil {
		m.keySet = &KeySet[K, V]{m: m}
	}
	return m.keySet
}

// Values returns the live collection of values of m. Every call returns the
// same view.
func (m *Map[K, V]) Values() *Values[K, V] {
	if m.values == nil {
		m.values = &Values[K, V]{m: m}
	}
	return m.values
}

// EntrySet returns the live set of entries of m. Every call returns the same
// view.
func (m *Map[K, V]) EntrySet() *EntrySet[K, V] {
	if m.entrySet == nil {
		m.entrySet = &EntrySet[K, V]{m: m}
	}
	return m.entrySet
}

// Iterator returns a fail-fast iterator over the entries of m.
func (m *Map[K, V]) Iterator() Iterator[*Entry[K, V]] {
	return m.EntrySet().Iterator()
}

// All returns a range function over the mappings of m. It panics with
// ErrConcurrentModification if m is structurally modified while ranging.
func (m *Map[K, V]) All() iter.Seq2[Key[K], V] {
	return func(yield func(Key[K], V) bool) {
		for e := range entries(m) {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of m: keys and values are not copied. The copy
// has the same configuration, and a table no larger than m's.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		loadFactor:      m.loadFactor,
		initialCapacity: m.initialCapacity,
		maxCapacity:     m.maxCapacity,
		seed:            m.seed,
		hash:            m.hash,
		equal:           m.equal,
		valueEqual:      m.valueEqual,
		links:           newLinkage[K, V](m.order),
		order:           m.order,
		maxEntries:      m.maxEntries,
		log:             m.log,
	}
	if m.table != nil {
		n := math.Min(float64(m.size)*math.Min(1/m.loadFactor, 4), float64(m.maxCapacity))
		c.inflateTable(min(int(n), len(m.table)))
		m.forEachEntry(func(e *Entry[K, V]) bool {
			c.putForCreate(e.key, e.value)
			return true
		})
	}
	return c
}

// Equal reports whether other is a *Map[K, V] with the same mappings as m.
// Keys are looked up with other's equality, values compared with m's.
func (m *Map[K, V]) Equal(other interface{}) bool {
	o, ok := other.(*Map[K, V])
	if !ok {
		return false
	}
	if o == m {
		return true
	}
	if o.size != m.size {
		return false
	}
	equal := true
	m.forEachEntry(func(e *Entry[K, V]) bool {
		oe := o.getEntry(e.key)
		equal = oe != nil && m.valueEqual(e.value, oe.value)
		return equal
	})
	return equal
}

// String formats m as {k1=v1, k2=v2} in iteration order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	m.forEachEntry(func(e *Entry[K, V]) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(e.String())
		return true
	})
	b.WriteByte('}')
	return b.String()
}

// Stats is a snapshot of the table of a map.
type Stats struct {
	Len        int
	Capacity   int
	Threshold  int
	LoadFactor float64
	ModCount   int
	Resizes    int
	// UsedBuckets is the number of non-empty buckets.
	UsedBuckets int
	// LongestChain is the length of the longest bucket chain.
	LongestChain int
}

// Stats walks the table of m and returns its statistics.
func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Len:        m.size,
		Capacity:   len(m.table),
		Threshold:  m.threshold,
		LoadFactor: m.loadFactor,
		ModCount:   m.modCount,
		Resizes:    m.resizes,
	}
	for _, e := range m.table {
		if e == nil {
			continue
		}
		s.UsedBuckets++
		n := 0
		for ; e != nil; e = e.next {
			n++
		}
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	return s
}
