package set

import "iter"

// New returns an empty [Set] backed by a singly-linked chain of members.
//
// It returns an error that satisfies [IsInvalidArgument] if traits does not
// include a Match function.
func New[T any](traits Traits[T]) (Set[T], error) {
	if traits.Match == nil {
		return nil, InvalidArgumentError{Reason: "traits must include a Match function"}
	}

	return &linked[T]{traits: traits}, nil
}

// member is a node in the chain, owning a single value.
type member[T any] struct {
	value T
	next  *member[T]
}

// linked is the canonical [Set] implementation: a singly-linked chain with
// head and tail references giving O(1) append, O(n) search, and stable
// insertion-order traversal.
//
// Invariant: head is nil iff tail is nil iff size is zero, and size always
// equals the number of members reachable from head.
type linked[T any] struct {
	traits Traits[T]
	head   *member[T]
	tail   *member[T]
	size   int
}

func (s *linked[T]) Traits() Traits[T] {
	return s.traits
}

func (s *linked[T]) Size() int {
	return s.size
}

func (s *linked[T]) IsEmpty() bool {
	return s.size == 0
}

func (s *linked[T]) Has(v T) bool {
	for m := s.head; m != nil; m = m.next {
		if s.traits.Match(m.value, v) {
			return true
		}
	}

	return false
}

func (s *linked[T]) Add(v T) (bool, error) {
	if s.Has(v) {
		// The caller retains ownership of the rejected duplicate.
		return false, nil
	}

	m := &member[T]{value: v}

	if s.tail == nil {
		s.head = m
	} else {
		s.tail.next = m
	}
	s.tail = m
	s.size++

	return true, nil
}

func (s *linked[T]) Take(sel Selection[T]) (T, error) {
	if sel.oldest {
		if s.head == nil {
			var zero T
			return zero, NotFoundError{}
		}

		m := s.head
		s.unlink(nil, m)
		return m.value, nil
	}

	var prev *member[T]
	for m := s.head; m != nil; prev, m = m, m.next {
		if s.traits.Match(m.value, sel.value) {
			s.unlink(prev, m)
			return m.value, nil
		}
	}

	var zero T
	return zero, NotFoundError{}
}

func (s *linked[T]) Remove(v T) (bool, error) {
	value, err := s.Take(Matching(v))
	if IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.traits.release(value)

	return true, nil
}

func (s *linked[T]) Range(fn RangeFunc[T]) error {
	if fn == nil {
		return InvalidArgumentError{Reason: "fn must not be nil"}
	}

	if s.head == nil {
		return ErrEmpty
	}

	for m := s.head; m != nil; m = m.next {
		ok, err := fn(m.value)
		if !ok || err != nil {
			return err
		}
	}

	return nil
}

func (s *linked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for m := s.head; m != nil; m = m.next {
			if !yield(m.value) {
				return
			}
		}
	}
}

func (s *linked[T]) Members() []T {
	members := make([]T, 0, s.size)

	for m := s.head; m != nil; m = m.next {
		members = append(members, m.value)
	}

	return members
}

func (s *linked[T]) Clear() error {
	for s.head != nil {
		m := s.head
		s.head = m.next
		m.next = nil
		s.size--

		s.traits.release(m.value)
	}

	s.tail = nil

	return nil
}

// unlink removes m from the chain. prev is the member preceding m, or nil if
// m is the head.
func (s *linked[T]) unlink(prev, m *member[T]) {
	if prev == nil {
		s.head = m.next
	} else {
		prev.next = m.next
	}

	if s.tail == m {
		s.tail = prev
	}

	m.next = nil
	s.size--
}
