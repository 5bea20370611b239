/*
Package hashtable implements an immutable persistent hash set.

A table is a fixed number of buckets, each of which is a persistent chain
(see package chain) of the values hashing to it. Every “modification” of a table
(insertion, removal, union, …) creates a new table, leaving the original unmodified.
Only the buckets actually touched by an operation are re-created; all other buckets
are shared between the original and the copy, transparently to clients.

Tables do not grow: the number of buckets is set at creation time (default 10) and
stays the same for all tables derived from it.

	set := hashtable.Immutable[string](hasher.Strings(), hashtable.Capacity(16))
	set = set.Insert("Galaxy")
	set.Contains("Galaxy")   // true

Values are hashed and compared by a hasher.Hasher. Tables derived from each other
must use the same hasher. Union detects values placed by a different hasher and
fails with ErrHasherMismatch; the other operations look values up in the receiver
and give undefined results for mixed hashers.

Immutable tables are inherently concurrency-safe.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashtable

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.hashtable'.
func tracer() tracing.Trace {
	return tracing.Select("fp.hashtable")
}

// ErrCapacityMismatch is returned when combining two non-empty tables with a
// different number of buckets.
var ErrCapacityMismatch = errors.New("tables differ in capacity")

// ErrHasherMismatch is returned when combining two tables whose values have been
// placed by different hashers.
var ErrHasherMismatch = errors.New("tables differ in hasher")

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hashtable: "+msg, msgargs...)
		panic(msg)
	}
}
