package hashtable

import (
	"fmt"

	"github.com/npillmayer/immuset/fp"
	"github.com/npillmayer/immuset/persistent/chain"
)

// Union returns a table containing every value of t and of other.
//
// Buckets are merged pairwise, so both tables need the same capacity; otherwise
// ErrCapacityMismatch is returned. An empty table is the identity element of union
// regardless of capacity: if either side is empty, the other one is returned as is.
// Buckets which do not gain any values are shared with t, buckets empty in t are
// shared with other.
//
// Values of other are placed with the hasher of t. If one of them does not belong
// to the bucket it is stored in, the tables use different hashers and
// ErrHasherMismatch is returned.
func (t Table[V]) Union(other Table[V]) (Table[V], error) {
	switch {
	case other.IsEmpty():
		return t, nil
	case t.IsEmpty():
		return other, nil
	case t.capacity != other.capacity:
		tracer().Errorf("union: capacity %d ≠ %d", t.capacity, other.capacity)
		return t, fmt.Errorf("union of tables with capacity %d and %d: %w",
			t.capacity, other.capacity, ErrCapacityMismatch)
	}
	buckets := make([]chain.Chain[V], len(t.buckets))
	changed := false
	for i := range t.buckets {
		b, err := t.mergeBuckets(i, t.buckets[i], other.buckets[i])
		if err != nil {
			tracer().Errorf("union: %v", err)
			return t, err
		}
		buckets[i] = b
		changed = changed || buckets[i].Len() != t.buckets[i].Len()
	}
	if !changed {
		tracer().Debugf("union: other is a subset, sharing table")
		return t, nil
	}
	return t.withBuckets(buckets), nil
}

// mergeBuckets adds every value of b missing in a on top of a. Values of b are taken
// tail to head, i.e. in the order they were inserted. All values of b have to belong
// to bucket i of t.
func (t Table[V]) mergeBuckets(i int, a, b chain.Chain[V]) (chain.Chain[V], error) {
	if b.IsEmpty() {
		return a, nil
	}
	values := b.Values()
	for _, v := range values {
		if j := t.index(v); j != i {
			return a, fmt.Errorf("value %v stored in bucket %d, belongs to %d: %w",
				v, i, j, ErrHasherMismatch)
		}
	}
	if a.IsEmpty() {
		return b, nil
	}
	merged := a
	for k := len(values) - 1; k >= 0; k-- {
		if !a.ContainsFunc(values[k], t.hasher.Equal) {
			merged = merged.Cons(values[k])
		}
	}
	return merged, nil
}

// UnionAll folds Union over a list of tables, from left to right.
func UnionAll[V any](first Table[V], rest ...Table[V]) (Table[V], error) {
	u := first
	for _, t := range rest {
		var err error
		if u, err = u.Union(t); err != nil {
			return first, err
		}
	}
	return u, nil
}

// Intersection returns a table containing the values present in both t and other.
// The result has the capacity of t.
func (t Table[V]) Intersection(other Table[V]) Table[V] {
	return t.Filter(other.Contains)
}

// Difference returns a table containing the values of t not present in other.
// The result has the capacity of t.
func (t Table[V]) Difference(other Table[V]) Table[V] {
	return t.Filter(fp.Not(other.Contains))
}

// Equal reports whether t and other contain the same values. Capacity and the layout
// of buckets are irrelevant.
func (t Table[V]) Equal(other Table[V]) bool {
	if t.Len() != other.Len() {
		return false
	}
	for _, b := range t.buckets {
		for v := range b.All() {
			if !other.Contains(v) {
				return false
			}
		}
	}
	return true
}

// SameLayout reports whether t and other are structurally identical: same capacity,
// and every bucket holding the same values in the same order.
// Two tables with SameLayout are Equal, but not necessarily vice versa.
func (t Table[V]) SameLayout(other Table[V]) bool {
	if t.IsEmpty() && other.IsEmpty() {
		return t.capacity == other.capacity
	}
	if t.capacity != other.capacity || len(t.buckets) != len(other.buckets) {
		return false
	}
	eq := t.hasher
	if eq == nil {
		eq = other.hasher
	}
	for i := range t.buckets {
		if !t.buckets[i].EqualFunc(other.buckets[i], eq.Equal) {
			return false
		}
	}
	return true
}
