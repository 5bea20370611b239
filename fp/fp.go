/*
Package fp holds small function combinators shared by the persistent containers,
e.g. for building predicates handed to Filter or functions handed to Map.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

// Identity returns its argument.
func Identity[T any](a T) T {
	return a
}

// Const returns a function that produces a, whatever its input.
func Const[T, S any](a T) func(S) T {
	return func(S) T {
		return a
	}
}

// Compose returns h = f ∘ g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Not negates a predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(a T) bool {
		return !pred(a)
	}
}
