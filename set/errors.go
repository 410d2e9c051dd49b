package set

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by [Set.Range] when the set has no members.
var ErrEmpty = errors.New("set is empty")

// IsInvalidArgument returns true if err is caused by [InvalidArgumentError].
func IsInvalidArgument(err error) bool {
	return errors.As(err, &InvalidArgumentError{})
}

// InvalidArgumentError indicates that a mandatory input to an operation was
// absent or malformed.
type InvalidArgumentError struct {
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

// IsNotFound returns true if err is caused by [NotFoundError].
func IsNotFound(err error) bool {
	return errors.As(err, &NotFoundError{})
}

// NotFoundError is returned by [Set.Take] when no member matches the given
// selection.
type NotFoundError struct{}

func (e NotFoundError) Error() string {
	return "no member matches the selection"
}

// IsMissingTrait returns true if err is caused by [MissingTraitError].
func IsMissingTrait(err error) bool {
	return errors.As(err, &MissingTraitError{})
}

// MissingTraitError is returned by operations that require an optional trait
// that was not supplied when the set was constructed.
type MissingTraitError struct {
	// Trait is the name of the absent trait.
	Trait string
}

func (e MissingTraitError) Error() string {
	return fmt.Sprintf("the set's traits do not include a %s function", e.Trait)
}
