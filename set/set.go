package set

import "iter"

// A RangeFunc is a function used to range over the members of a [Set].
//
// If err is non-nil, ranging stops and err is propagated up the stack.
// Otherwise, if ok is false, ranging stops without any error being
// propagated.
type RangeFunc[T any] func(v T) (ok bool, err error)

// Set is a mutable collection of unique values of type T.
//
// Uniqueness is defined by the Match function of the [Traits] supplied when
// the set is constructed. Members are visited in insertion order.
//
// A Set is not safe for concurrent use; callers that share a set between
// goroutines must impose their own mutual exclusion, held across any
// sequence of operations that must appear atomic.
type Set[T any] interface {
	// Traits returns the traits supplied when the set was constructed.
	Traits() Traits[T]

	// Size returns the number of members in the set.
	Size() int

	// IsEmpty returns true if the set has no members.
	IsEmpty() bool

	// Has returns true if v is a member of the set.
	Has(v T) bool

	// Add ensures v is a member of the set. It returns true if v was added,
	// or false if an equivalent value was already a member.
	//
	// On success the set takes ownership of v. When v is reported as already
	// a member the set takes no ownership: the caller remains responsible
	// for disposing of the rejected duplicate, and the Destroy trait is not
	// invoked on it.
	Add(v T) (bool, error)

	// Take unlinks the member chosen by sel and returns its value.
	//
	// Ownership of the returned value transfers to the caller; the Destroy
	// trait is never invoked by Take. It returns an error that satisfies
	// [IsNotFound] if no member matches sel.
	Take(sel Selection[T]) (T, error)

	// Remove ensures v is not a member of the set. It returns true if v was
	// removed, or false if it was not a member.
	//
	// The removed value is released via the Destroy trait, if present.
	Remove(v T) (bool, error)

	// Range invokes fn once per member, in insertion order.
	//
	// It returns [ErrEmpty] if the set has no members. The set must not be
	// mutated until Range returns.
	Range(fn RangeFunc[T]) error

	// All returns an iterator that yields each member in insertion order.
	//
	// The set must not be mutated during iteration.
	All() iter.Seq[T]

	// Members returns the members of the set as a slice, in insertion order.
	Members() []T

	// Clear removes every member, releasing each value via the Destroy
	// trait, if present. Clearing an already-empty set is a no-op.
	Clear() error
}

// A Selection chooses which member [Set.Take] unlinks.
type Selection[T any] struct {
	oldest bool
	value  T
}

// Oldest returns a [Selection] that chooses the least recently added member.
//
// It allows a set to be drained in FIFO order without knowledge of its
// contents.
func Oldest[T any]() Selection[T] {
	return Selection[T]{oldest: true}
}

// Matching returns a [Selection] that chooses the first member equivalent to
// v under the set's Match trait.
func Matching[T any](v T) Selection[T] {
	return Selection[T]{value: v}
}
