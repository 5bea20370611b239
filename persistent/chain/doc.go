/*
Package chain implements an immutable persistent singly-linked list.

A chain is a stack of cons cells: prepending a value creates one new cell pointing to
the old chain, which stays untouched. Operations which have to change a cell in the
middle of a chain (e.g. removing a value) rebuild the cells in front of it and share
everything behind it.

The zero value of Chain is the empty chain and is ready to use:

	var c chain.Chain[string]
	c = c.Cons("a").Cons("b")   // b : a

Chains are inherently concurrency-safe. All traversals are iterative, so chain length
is bounded by memory only, not by stack depth.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chain

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.chain'.
func tracer() tracing.Trace {
	return tracing.Select("fp.chain")
}

// ErrEmptyAccess is returned if a client asks for the head or tail of an empty chain.
var ErrEmptyAccess = errors.New("access to head or tail of empty chain")

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("chain: "+msg, msgargs...)
		panic(msg)
	}
}
