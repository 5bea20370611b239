package hashtable

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/immuset/hasher"
	"github.com/npillmayer/immuset/maybe"
	"github.com/npillmayer/immuset/persistent/chain"
)

// Values returns the values of t as a slice. Buckets are visited in index order; within
// a bucket, values appear in the order they were inserted.
func (t Table[V]) Values() []V {
	values := make([]V, 0, t.Len())
	for v := range t.All() {
		values = append(values, v)
	}
	return values
}

// All iterates over the values of t, in the same order as Values.
// The sequence may be iterated more than once.
func (t Table[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, b := range t.buckets {
			values := b.Values()
			for i := len(values) - 1; i >= 0; i-- {
				if !yield(values[i]) {
					return
				}
			}
		}
	}
}

// Iterator is a single-pass cursor over the values of a table.
type Iterator[V any] struct {
	buckets []chain.Chain[V]
	pending []V // values of the current bucket, head first
}

// Iterator returns a cursor over the values of t, in the same order as Values.
func (t Table[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{buckets: t.buckets}
}

// Next returns the next value, or false if the iterator is exhausted.
func (it *Iterator[V]) Next() (V, bool) {
	for len(it.pending) == 0 {
		if len(it.buckets) == 0 {
			var none V
			return none, false
		}
		it.pending = it.buckets[0].Values()
		it.buckets = it.buckets[1:]
	}
	v := it.pending[len(it.pending)-1]
	it.pending = it.pending[:len(it.pending)-1]
	return v, true
}

// Filter returns a table containing the values of t satisfying keep. The result has the
// same capacity as t and shares every bucket that did not lose a value.
func (t Table[V]) Filter(keep func(V) bool) Table[V] {
	buckets := make([]chain.Chain[V], len(t.buckets))
	changed := false
	for i, b := range t.buckets {
		buckets[i] = b.Filter(keep)
		changed = changed || buckets[i].Len() != b.Len()
	}
	if !changed {
		return t
	}
	return t.withBuckets(buckets)
}

// Map returns a table of f applied to every value of t, with the same capacity.
// Results are re-hashed into their proper buckets; results equal to each other
// are collapsed into one.
func (t Table[V]) Map(f func(V) V) Table[V] {
	if !t.usable() {
		return t
	}
	return Map(t, f, t.hasher)
}

// Map returns a table of f applied to every value of t, hashed by h. The result has
// the capacity of t.
func Map[V, W any](t Table[V], f func(V) W, h hasher.Hasher[W]) Table[W] {
	capacity := t.capacity
	if capacity == 0 {
		capacity = defaultCapacity
	}
	m := Immutable(h, Capacity(capacity))
	for v := range t.All() {
		m = m.Insert(f(v))
	}
	tracer().Debugf("map: %d values mapped onto %d", t.Len(), m.Len())
	return m
}

// Fold combines the values of t, starting with init. Buckets are visited in index
// order, and every bucket from its most recently inserted value to its oldest one.
func Fold[V, R any](t Table[V], init R, f func(R, V) R) R {
	acc := init
	for _, b := range t.buckets {
		acc = chain.Fold(b, acc, f)
	}
	return acc
}

// Find returns a value of t satisfying pred, if any. Values are tested in the
// order of Fold.
func (t Table[V]) Find(pred func(V) bool) maybe.Maybe[V] {
	var v V
	for _, b := range t.buckets {
		switch m := b.Find(pred).Match(); m {
		case m.Just(&v):
			return maybe.Just(v)
		}
	}
	return maybe.Nothing[V]()
}

// String renders t one bucket per line:
//
//	Bucket 0: c : b : a
//	Bucket 1: Empty
//	…
//
// Values in a bucket are listed most recent first. A table without any values
// renders as “Empty”.
func (t Table[V]) String() string {
	if t.IsEmpty() {
		return "Empty"
	}
	b := strings.Builder{}
	for i, bucket := range t.buckets {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(fmt.Sprintf("Bucket %d: %s", i, bucket))
	}
	return b.String()
}
