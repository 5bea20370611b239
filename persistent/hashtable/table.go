package hashtable

import (
	"github.com/npillmayer/immuset/hasher"
	"github.com/npillmayer/immuset/persistent/chain"
)

const defaultCapacity = 10

type props struct {
	capacity int
}

// Table is an immutable hash set. The zero value is an empty table without a hasher:
// it may be queried, but inserting into it panics. Use Immutable to create a usable
// empty table.
type Table[V any] struct {
	props
	hasher  hasher.Hasher[V]
	buckets []chain.Chain[V]
}

// Immutable creates an empty table with options, if you need any.
// Use it like this:
//
//	set := hashtable.Immutable[int](hasher.Ints(), Capacity(32))
//	set = set.Insert(42)
func Immutable[V any](h hasher.Hasher[V], opts ...Option) Table[V] {
	assertThat(h != nil, "table needs a hasher")
	p := props{capacity: defaultCapacity}
	for _, option := range opts {
		p = option.config(p)
	}
	return Table[V]{
		props:   p,
		hasher:  h,
		buckets: make([]chain.Chain[V], p.capacity),
	}
}

// Option is a type to help initializing tables at creation time.
type Option struct {
	config func(props) props
}

// Capacity is an option to set the number of buckets of a table. The capacity is fixed
// for the lifetime of the table and of all tables derived from it. Capacities below 1
// are raised to 1; default is 10.
func Capacity(n int) Option {
	conf := func(p props) props {
		if n < 1 {
			n = 1
		}
		p.capacity = n
		return p
	}
	return Option{config: conf}
}

// FromSlice creates a table from a slice of values. Duplicate values are inserted
// only once.
func FromSlice[V any](h hasher.Hasher[V], values []V, opts ...Option) Table[V] {
	t := Immutable(h, opts...)
	for _, v := range values {
		t = t.Insert(v)
	}
	return t
}

// --- API -------------------------------------------------------------------

// Capacity returns the number of buckets of t.
func (t Table[V]) Capacity() int {
	return t.capacity
}

// Insert returns a table containing v. If v is already present, t itself is returned.
// Otherwise the new table shares all buckets but one with t.
func (t Table[V]) Insert(v V) Table[V] {
	t.assertUsable()
	i := t.index(v)
	if t.buckets[i].ContainsFunc(v, t.hasher.Equal) {
		tracer().Debugf("insert: %v already present in bucket %d", v, i)
		return t
	}
	return t.withBucket(i, t.buckets[i].Cons(v))
}

// Remove returns a table without v. If v is not present, t itself is returned.
func (t Table[V]) Remove(v V) Table[V] {
	if !t.usable() {
		return t
	}
	i := t.index(v)
	b := t.buckets[i].RemoveFirstFunc(v, t.hasher.Equal)
	if b.Len() == t.buckets[i].Len() {
		tracer().Debugf("remove: %v not present", v)
		return t
	}
	return t.withBucket(i, b)
}

// Contains reports whether v is a member of t.
func (t Table[V]) Contains(v V) bool {
	if !t.usable() {
		return false
	}
	return t.buckets[t.index(v)].ContainsFunc(v, t.hasher.Equal)
}

// Len returns the number of values in t.
func (t Table[V]) Len() int {
	n := 0
	for _, b := range t.buckets {
		n += b.Len()
	}
	return n
}

// IsEmpty is true if t does not contain any values.
func (t Table[V]) IsEmpty() bool {
	for _, b := range t.buckets {
		if !b.IsEmpty() {
			return false
		}
	}
	return true
}

// Reverse reverses the order of values within each bucket.
//
// This does not reverse the order of the table as a whole: buckets stay in place, and
// Values of the result is not the reverse of Values of t. Reversing twice yields a table
// equal to t, both as a set and in layout.
func (t Table[V]) Reverse() Table[V] {
	buckets := make([]chain.Chain[V], len(t.buckets))
	for i, b := range t.buckets {
		buckets[i] = b.Reverse()
	}
	return t.withBuckets(buckets)
}

// --- Internals -------------------------------------------------------------

func (t Table[V]) index(v V) int {
	return hasher.Index(t.hasher, v, t.capacity)
}

func (t Table[V]) usable() bool {
	return t.hasher != nil && len(t.buckets) > 0
}

func (t Table[V]) assertUsable() {
	assertThat(t.usable(), "table not initialized; create it with Immutable(…)")
}

// withBucket creates a copy of t with bucket i replaced by b. Buckets are
// copied by reference, i.e. their chains are shared.
func (t Table[V]) withBucket(i int, b chain.Chain[V]) Table[V] {
	buckets := make([]chain.Chain[V], len(t.buckets))
	copy(buckets, t.buckets)
	buckets[i] = b
	return t.withBuckets(buckets)
}

func (t Table[V]) withBuckets(buckets []chain.Chain[V]) Table[V] {
	assertThat(len(buckets) == len(t.buckets), "bucket count may never change")
	return Table[V]{props: t.props, hasher: t.hasher, buckets: buckets}
}

// slotsCorrect checks that every value lives in the bucket its hash points to.
func (t Table[V]) slotsCorrect() bool {
	for i, b := range t.buckets {
		for v := range b.All() {
			if t.index(v) != i {
				tracer().Errorf("value %v found in bucket %d, belongs to %d", v, i, t.index(v))
				return false
			}
		}
	}
	return true
}
