/*
Package hasher provides hash functions and equivalence relations for values stored in
hashed persistent containers.

A Hasher bundles a hash function with an equality test. Both must be consistent: if
Equal(x, y) holds, Hash(x) must equal Hash(y). Hashes have to be deterministic for the
lifetime of a process, as containers compute bucket placement from them on every lookup.

The built-in hashers use 64-bit murmur3.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hasher

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"
	"reflect"

	"github.com/spaolacci/murmur3"
)

// Hasher defines a hash function and an equivalence relation over values of type V.
type Hasher[V any] interface {
	Hash(V) uint64
	Equal(a, b V) bool
}

// Hashable is a constraint for types which know how to hash and compare themselves.
type Hashable[V any] interface {
	Hash() uint64
	Equal(V) bool
}

// Index reduces the hash of v to a bucket index in [0…capacity).
func Index[V any](h Hasher[V], v V, capacity int) int {
	assertThat(capacity > 0, "capacity must be positive, is %d", capacity)
	return int(h.Hash(v) % uint64(capacity))
}

// --- Adapters --------------------------------------------------------------

// Of returns a hasher for a type implementing Hashable.
func Of[V Hashable[V]]() Hasher[V] {
	return hashable[V]{}
}

type hashable[V Hashable[V]] struct{}

func (hashable[V]) Hash(v V) uint64 {
	return v.Hash()
}

func (hashable[V]) Equal(a, b V) bool {
	return a.Equal(b)
}

// Func creates a hasher from a pair of functions.
func Func[V any](hash func(V) uint64, equal func(a, b V) bool) Hasher[V] {
	assertThat(hash != nil && equal != nil, "hash and equal functions must be given")
	return funcs[V]{hash: hash, equal: equal}
}

type funcs[V any] struct {
	hash  func(V) uint64
	equal func(a, b V) bool
}

func (f funcs[V]) Hash(v V) uint64 {
	return f.hash(v)
}

func (f funcs[V]) Equal(a, b V) bool {
	return f.equal(a, b)
}

// --- Built-in hashers ------------------------------------------------------

// Strings hashes strings.
func Strings() Hasher[string] {
	return Func(func(s string) uint64 {
		return murmur3.Sum64([]byte(s))
	}, eq[string])
}

// Bytes hashes byte slices by content.
func Bytes() Hasher[[]byte] {
	return Func(murmur3.Sum64, func(a, b []byte) bool {
		return string(a) == string(b)
	})
}

// Ints hashes ints.
func Ints() Hasher[int] {
	return Func(func(n int) uint64 {
		return sum64(uint64(n))
	}, eq[int])
}

// Uint64s hashes uint64 values.
func Uint64s() Hasher[uint64] {
	return Func(sum64, eq[uint64])
}

// Comparable returns a fallback hasher for any comparable type. Values compare with ==,
// and the hash is computed from exactly what == looks at: pointers, channels and
// interfaces holding them hash by address, not by the data they point to; +0 and -0
// hash alike; struct fields and array elements hash recursively, blank fields are skipped.
//
// NaN is not supported, as NaN ≠ NaN makes every NaN a distinct value. Comparing interface
// values holding non-comparable dynamic types panics, as it does with ==.
func Comparable[V comparable]() Hasher[V] {
	return Func(func(v V) uint64 {
		h := murmur3.New64()
		writeValue(h, reflect.ValueOf(&v).Elem())
		return h.Sum64()
	}, eq[V])
}

// writeValue feeds the parts of v relevant for == into h.
func writeValue(h hash.Hash64, v reflect.Value) {
	var buf [8]byte
	word := func(n uint64) {
		binary.LittleEndian.PutUint64(buf[:], n)
		h.Write(buf[:])
	}
	float := func(f float64) {
		if f == 0 { // -0 == +0
			f = 0
		}
		word(math.Float64bits(f))
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			word(1)
		} else {
			word(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		word(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		word(v.Uint())
	case reflect.Float32, reflect.Float64:
		float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		float(real(c))
		float(imag(c))
	case reflect.String:
		word(uint64(v.Len()))
		h.Write([]byte(v.String()))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		word(uint64(v.Pointer()))
	case reflect.Interface:
		if v.IsNil() {
			word(0)
			return
		}
		word(1)
		h.Write([]byte(v.Elem().Type().String()))
		writeValue(h, v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			writeValue(h, v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).Name == "_" {
				continue
			}
			writeValue(h, v.Field(i))
		}
	default:
		assertThat(false, "cannot hash value of kind %s", v.Kind())
	}
}

func sum64(n uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return murmur3.Sum64(buf[:])
}

func eq[V comparable](a, b V) bool {
	return a == b
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hasher: "+msg, msgargs...)
		panic(msg)
	}
}
