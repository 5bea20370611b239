/*
Package maybe implements optional values, used by persistent containers to report
lookups which may come up empty without resorting to sentinel values.

A Maybe either holds a value (Just) or it doesn't (Nothing). Clients unwrap it either by
calling Value, or by matching:

	var v int
	switch m := chain.First().Match(); m {
	case m.Just(&v):
		…
	case m.Nothing():
		…
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Value() (T, bool)
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the empty optional value for T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

// Value returns the wrapped value and true, or the zero value of T and false.
func (m maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Map applies f to the value of x, if any. Unlike the method, f may change the type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher helps unwrapping a Maybe within a switch statement. Each case method
// returns the matcher itself if it applies, nil otherwise. Matchers compare by
// identity, so matching works for values of any type, comparable or not.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
