package set

import (
	"bytes"
	"slices"

	"github.com/dogmatiq/setkit/internal/clone"
	"google.golang.org/protobuf/proto"
)

// Traits defines the value semantics that a [Set] applies to its members.
//
// A set owns the values it stores. The optional Copy and Destroy functions
// let the set duplicate and dispose of values without knowledge of their
// type, keeping the "a value is owned by at most one set" rule enforceable
// for any T.
type Traits[T any] struct {
	// Match reports whether a and b are equivalent. It must be a total,
	// reflexive and symmetric relation over the value domain.
	//
	// It is mandatory; [New] rejects traits without it.
	Match func(a, b T) bool

	// Copy returns a new, independently-owned duplicate of v.
	//
	// It is optional, but required by any operation that produces a new set
	// from existing ones, as such operations never share values between two
	// live sets.
	Copy func(v T) (T, error)

	// Destroy disposes of a value when the set releases ownership of it
	// without returning it to the caller.
	//
	// It is optional. If absent, released values are simply dropped.
	Destroy func(v T)
}

// release disposes of v via the Destroy trait, if present.
func (t Traits[T]) release(v T) {
	if t.Destroy != nil {
		t.Destroy(v)
	}
}

// Comparable returns traits for any comparable type, using the built-in ==
// operator as the equivalence predicate.
//
// Values are duplicated by ordinary assignment, which is sufficient for
// types whose identity is their value.
func Comparable[T comparable]() Traits[T] {
	return Traits[T]{
		Match: func(a, b T) bool { return a == b },
		Copy:  func(v T) (T, error) { return v, nil },
	}
}

// Binary returns traits for opaque binary values.
func Binary() Traits[[]byte] {
	return Traits[[]byte]{
		Match: bytes.Equal,
		Copy: func(v []byte) ([]byte, error) {
			return slices.Clone(v), nil
		},
	}
}

// Deep returns traits for an arbitrary type, comparing values structurally
// and duplicating them with a recursive deep copy.
func Deep[T any]() Traits[T] {
	return Traits[T]{
		Match: clone.Equal[T],
		Copy: func(v T) (T, error) {
			return clone.Clone(v), nil
		},
	}
}

// Proto returns traits for Protocol Buffers messages.
func Proto[M proto.Message]() Traits[M] {
	return Traits[M]{
		Match: func(a, b M) bool {
			return proto.Equal(a, b)
		},
		Copy: func(v M) (M, error) {
			return proto.Clone(v).(M), nil
		},
	}
}
