package set

import (
	"github.com/dogmatiq/setkit/internal/errorx"
)

// Union returns a new set containing a duplicate of every value that is a
// member of at least one of the given sets.
//
// At least one set is required. The result inherits its traits from the
// first set, which must include a Copy function. Sets are visited in
// argument order and their members in insertion order; the first occurrence
// of a value determines its position in the result, and the duplicate of a
// value that is already present is released via the Destroy trait.
//
// On failure the partially-built result is cleared, releasing every
// duplicated value; no partial result is ever returned.
func Union[T any](sets ...Set[T]) (_ Set[T], err error) {
	defer errorx.Wrap(&err, "computing union")

	result, err := newResult(sets)
	if err != nil {
		return nil, err
	}

	for _, s := range sets {
		for v := range s.All() {
			if err := addDuplicate(result, v); err != nil {
				result.Clear()
				return nil, err
			}
		}
	}

	return result, nil
}

// Intersection returns a new set containing a duplicate of every member of
// the first set that is also a member of every other set.
//
// At least one set is required; with a single set the result is equal to a
// clone of it. The result inherits its traits from the first set, which must
// include a Copy function.
func Intersection[T any](sets ...Set[T]) (_ Set[T], err error) {
	defer errorx.Wrap(&err, "computing intersection")

	result, err := newResult(sets)
	if err != nil {
		return nil, err
	}

	for v := range sets[0].All() {
		if !memberOfAll(v, sets[1:]) {
			continue
		}

		if err := addDuplicate(result, v); err != nil {
			result.Clear()
			return nil, err
		}
	}

	return result, nil
}

// Difference returns a new set containing a duplicate of every member of
// minuend that is not a member of subtrahend.
//
// The result inherits its traits from minuend, which must include a Copy
// function.
func Difference[T any](minuend, subtrahend Set[T]) (_ Set[T], err error) {
	defer errorx.Wrap(&err, "computing difference")

	result, err := newResult([]Set[T]{minuend, subtrahend})
	if err != nil {
		return nil, err
	}

	for v := range minuend.All() {
		if subtrahend.Has(v) {
			continue
		}

		if err := addDuplicate(result, v); err != nil {
			result.Clear()
			return nil, err
		}
	}

	return result, nil
}

// Clone returns a new set containing a duplicate of every member of s.
//
// The result inherits its traits from s, which must include a Copy function.
func Clone[T any](s Set[T]) (_ Set[T], err error) {
	defer errorx.Wrap(&err, "cloning set")

	result, err := newResult([]Set[T]{s})
	if err != nil {
		return nil, err
	}

	for v := range s.All() {
		if err := addDuplicate(result, v); err != nil {
			result.Clear()
			return nil, err
		}
	}

	return result, nil
}

// IsSubset returns true if every member of a is a member of b.
//
// An empty set is a subset of every set, including another empty set. It
// returns false if either set is nil.
func IsSubset[T any](a, b Set[T]) bool {
	if a == nil || b == nil {
		return false
	}

	for v := range a.All() {
		if !b.Has(v) {
			return false
		}
	}

	return true
}

// IsEqual returns true if a and b contain equivalent members.
//
// Equal cardinality plus one-way membership is sufficient, as neither set
// may contain duplicates. It returns false if either set is nil.
func IsEqual[T any](a, b Set[T]) bool {
	if a == nil || b == nil {
		return false
	}

	if a.Size() != b.Size() {
		return false
	}

	return IsSubset(a, b)
}

// newResult constructs the empty result of an algebra operation, inheriting
// its traits from the first input.
func newResult[T any](sets []Set[T]) (Set[T], error) {
	if len(sets) == 0 {
		return nil, InvalidArgumentError{Reason: "at least one set is required"}
	}

	for _, s := range sets {
		if s == nil {
			return nil, InvalidArgumentError{Reason: "sets must not be nil"}
		}
	}

	traits := sets[0].Traits()
	if traits.Copy == nil {
		return nil, MissingTraitError{Trait: "Copy"}
	}

	return New(traits)
}

// addDuplicate adds a duplicate of v to s. If an equivalent value is already
// a member, the duplicate is released via the Destroy trait.
func addDuplicate[T any](s Set[T], v T) error {
	traits := s.Traits()

	dup, err := traits.Copy(v)
	if err != nil {
		return err
	}

	added, err := s.Add(dup)
	if err != nil {
		return err
	}

	if !added {
		traits.release(dup)
	}

	return nil
}

// memberOfAll returns true if v is a member of every given set.
func memberOfAll[T any](v T, sets []Set[T]) bool {
	for _, s := range sets {
		if !s.Has(v) {
			return false
		}
	}

	return true
}
