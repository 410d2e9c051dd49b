package set

import (
	"bytes"
	"iter"

	"github.com/dogmatiq/setkit/marshaler"
)

// NewMarshalingSet returns a [Set] that marshals values of type T to their
// binary representation within the underlying binary set s.
//
// Two values are equivalent when their marshaled forms are byte-for-byte
// equal, so s is expected to use the [Binary] traits (or traits with the
// same equivalence).
func NewMarshalingSet[T any](
	s Set[[]byte],
	m marshaler.Marshaler[T],
) Set[T] {
	return &mset[T]{s, m}
}

// mset is an implementation of [Set] that marshals values to and from an
// underlying binary set.
type mset[T any] struct {
	next Set[[]byte]
	m    marshaler.Marshaler[T]
}

func (s *mset[T]) Traits() Traits[T] {
	return Traits[T]{
		Match: func(a, b T) bool {
			da, err := s.m.Marshal(a)
			if err != nil {
				return false
			}

			db, err := s.m.Marshal(b)
			if err != nil {
				return false
			}

			return bytes.Equal(da, db)
		},
		Copy: func(v T) (T, error) {
			data, err := s.m.Marshal(v)
			if err != nil {
				var zero T
				return zero, err
			}

			return s.m.Unmarshal(data)
		},
	}
}

func (s *mset[T]) Size() int {
	return s.next.Size()
}

func (s *mset[T]) IsEmpty() bool {
	return s.next.IsEmpty()
}

func (s *mset[T]) Has(v T) bool {
	data, err := s.m.Marshal(v)
	if err != nil {
		// Queries degrade to false rather than failing.
		return false
	}

	return s.next.Has(data)
}

func (s *mset[T]) Add(v T) (bool, error) {
	data, err := s.m.Marshal(v)
	if err != nil {
		return false, err
	}

	return s.next.Add(data)
}

func (s *mset[T]) Take(sel Selection[T]) (T, error) {
	var zero T

	next := Oldest[[]byte]()
	if !sel.oldest {
		data, err := s.m.Marshal(sel.value)
		if err != nil {
			return zero, err
		}
		next = Matching(data)
	}

	data, err := s.next.Take(next)
	if err != nil {
		return zero, err
	}

	return s.m.Unmarshal(data)
}

func (s *mset[T]) Remove(v T) (bool, error) {
	data, err := s.m.Marshal(v)
	if err != nil {
		return false, err
	}

	return s.next.Remove(data)
}

func (s *mset[T]) Range(fn RangeFunc[T]) error {
	if fn == nil {
		return s.next.Range(nil)
	}

	return s.next.Range(
		func(data []byte) (bool, error) {
			v, err := s.m.Unmarshal(data)
			if err != nil {
				return false, err
			}

			return fn(v)
		},
	)
}

func (s *mset[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for data := range s.next.All() {
			v, err := s.m.Unmarshal(data)
			if err != nil {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

func (s *mset[T]) Members() []T {
	members := make([]T, 0, s.next.Size())

	for v := range s.All() {
		members = append(members, v)
	}

	return members
}

func (s *mset[T]) Clear() error {
	return s.next.Clear()
}
