package chain

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/immuset/maybe"
)

// Chain is an immutable singly-linked list of values. Chains are values and may be
// copied freely; copies share all of their cells.
type Chain[V any] struct {
	first *cell[V]
}

// cell is a cons cell. Cells are never modified after construction.
type cell[V any] struct {
	value V
	next  *cell[V]
	size  int // number of cells from here to the end of the chain
}

func cons[V any](v V, next *cell[V]) *cell[V] {
	c := &cell[V]{value: v, next: next, size: 1}
	if next != nil {
		c.size += next.size
	}
	return c
}

// Empty returns the empty chain.
func Empty[V any]() Chain[V] {
	return Chain[V]{}
}

// Of creates a chain holding values, with values[0] at the head.
func Of[V any](values ...V) Chain[V] {
	return rebuild(values, nil)
}

// Prepend returns a chain with v in front of c.
func Prepend[V any](v V, c Chain[V]) Chain[V] {
	return c.Cons(v)
}

// --- API -------------------------------------------------------------------

// Cons returns a chain with v in front of c. c is left unchanged.
func (c Chain[V]) Cons(v V) Chain[V] {
	return Chain[V]{first: cons(v, c.first)}
}

// IsEmpty is true for the empty chain.
func (c Chain[V]) IsEmpty() bool {
	return c.first == nil
}

// Len returns the number of values in c.
func (c Chain[V]) Len() int {
	if c.first == nil {
		return 0
	}
	return c.first.size
}

// Head returns the first value of c, or ErrEmptyAccess if c is empty.
func (c Chain[V]) Head() (V, error) {
	if c.first == nil {
		var none V
		return none, fmt.Errorf("head: %w", ErrEmptyAccess)
	}
	return c.first.value, nil
}

// Tail returns c without its first value, or ErrEmptyAccess if c is empty.
// The tail shares all of its cells with c.
func (c Chain[V]) Tail() (Chain[V], error) {
	if c.first == nil {
		return c, fmt.Errorf("tail: %w", ErrEmptyAccess)
	}
	return Chain[V]{first: c.first.next}, nil
}

// First returns the head of c, if any.
func (c Chain[V]) First() maybe.Maybe[V] {
	if c.first == nil {
		return maybe.Nothing[V]()
	}
	return maybe.Just(c.first.value)
}

// ContainsFunc reports whether some value of c is equal to v, as decided by eq.
func (c Chain[V]) ContainsFunc(v V, eq func(a, b V) bool) bool {
	for n := c.first; n != nil; n = n.next {
		if eq(n.value, v) {
			return true
		}
	}
	return false
}

// Contains reports whether v is a member of c.
func Contains[V comparable](c Chain[V], v V) bool {
	return c.ContainsFunc(v, equal[V])
}

// RemoveFirstFunc returns a chain without the first value equal to v, as decided by eq.
// Cells in front of the match are copied, cells behind it are shared. If v is not
// a member of c, c itself is returned.
func (c Chain[V]) RemoveFirstFunc(v V, eq func(a, b V) bool) Chain[V] {
	var prefix []V
	for n := c.first; n != nil; n = n.next {
		if eq(n.value, v) {
			tracer().Debugf("chain: removing value at position %d, sharing %d cells",
				len(prefix), n.size-1)
			return rebuild(prefix, n.next)
		}
		prefix = append(prefix, n.value)
	}
	return c
}

// RemoveFirst returns a chain without the first occurrence of v.
func RemoveFirst[V comparable](c Chain[V], v V) Chain[V] {
	return c.RemoveFirstFunc(v, equal[V])
}

// Reverse returns a new chain with the values of c in reverse order.
// No cells are shared between c and the result.
func (c Chain[V]) Reverse() Chain[V] {
	var r *cell[V]
	for n := c.first; n != nil; n = n.next {
		r = cons(n.value, r)
	}
	return Chain[V]{first: r}
}

// Filter returns a chain of all values of c satisfying keep, in chain order.
// If every value is kept, c itself is returned.
func (c Chain[V]) Filter(keep func(V) bool) Chain[V] {
	var kept []V
	dropped := false
	for n := c.first; n != nil; n = n.next {
		if keep(n.value) {
			kept = append(kept, n.value)
		} else {
			dropped = true
		}
	}
	if !dropped {
		return c
	}
	return rebuild(kept, nil)
}

// Find returns the first value of c satisfying pred, if any.
func (c Chain[V]) Find(pred func(V) bool) maybe.Maybe[V] {
	for n := c.first; n != nil; n = n.next {
		if pred(n.value) {
			return maybe.Just(n.value)
		}
	}
	return maybe.Nothing[V]()
}

// All iterates over the values of c from head to tail.
func (c Chain[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := c.first; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the values of c from head to tail.
func (c Chain[V]) Values() []V {
	values := make([]V, 0, c.Len())
	for n := c.first; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// EqualFunc compares two chains element-wise.
func (c Chain[V]) EqualFunc(other Chain[V], eq func(a, b V) bool) bool {
	if c.Len() != other.Len() {
		return false
	}
	n, m := c.first, other.first
	for n != nil {
		if n == m { // shared suffix
			return true
		}
		if !eq(n.value, m.value) {
			return false
		}
		n, m = n.next, m.next
	}
	return true
}

// Same reports whether c and other are one and the same chain, i.e. start with
// the identical cell. Same chains are always equal.
func (c Chain[V]) Same(other Chain[V]) bool {
	return c.first == other.first
}

// Equal compares two chains element-wise.
func Equal[V comparable](a, b Chain[V]) bool {
	return a.EqualFunc(b, equal[V])
}

// String renders c as “v1 : v2 : …”, or as “Empty” for the empty chain.
func (c Chain[V]) String() string {
	if c.first == nil {
		return "Empty"
	}
	b := strings.Builder{}
	for n := c.first; n != nil; n = n.next {
		if n != c.first {
			b.WriteString(" : ")
		}
		b.WriteString(fmt.Sprintf("%v", n.value))
	}
	return b.String()
}

// --- Functions changing the value type -------------------------------------

// Map returns a chain of f applied to every value of c, in chain order.
func Map[V, W any](c Chain[V], f func(V) W) Chain[W] {
	mapped := make([]W, 0, c.Len())
	for n := c.first; n != nil; n = n.next {
		mapped = append(mapped, f(n.value))
	}
	return rebuild(mapped, nil)
}

// Fold combines the values of c from head to tail, starting with init.
func Fold[V, R any](c Chain[V], init R, f func(R, V) R) R {
	acc := init
	for n := c.first; n != nil; n = n.next {
		acc = f(acc, n.value)
	}
	return acc
}

// Concat returns a chain with all values of a in front of b. Cells of a are copied,
// b is shared. No de-duplication takes place.
func Concat[V any](a, b Chain[V]) Chain[V] {
	if a.first == nil {
		return b
	}
	return rebuild(a.Values(), b.first)
}

// --- Helpers ---------------------------------------------------------------

// rebuild stacks values on top of tail, such that values[0] becomes the head.
func rebuild[V any](values []V, tail *cell[V]) Chain[V] {
	r := tail
	for i := len(values) - 1; i >= 0; i-- {
		r = cons(values[i], r)
	}
	assertThat(r == nil || r.size >= len(values), "rebuilt chain shorter than its prefix")
	return Chain[V]{first: r}
}

func equal[V comparable](a, b V) bool {
	return a == b
}
