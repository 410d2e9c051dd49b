package errorx

import "fmt"

// Wrap adds additional context to an error.
//
// It is intended to be deferred with a pointer to the calling function's
// named error return value.
func Wrap(err *error, format string, args ...any) {
	if err == nil {
		panic("err must not be nil")
	}

	if *err == nil {
		return
	}

	*err = fmt.Errorf(format+": %w", append(args, *err)...)
}
