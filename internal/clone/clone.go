package clone

import (
	"reflect"

	"github.com/dogmatiq/dyad"
	"google.golang.org/protobuf/proto"
)

// Clone returns a deep copy of v.
//
// Protocol Buffers messages are cloned via the protobuf runtime, which
// understands message internals that a general-purpose deep copy does not.
func Clone[T any](v T) T {
	if v, ok := any(v).(proto.Message); ok {
		return proto.Clone(v).(T)
	}
	return dyad.Clone(v)
}

// Equal returns true if a and b are structurally equal.
func Equal[T any](a, b T) bool {
	if a, ok := any(a).(proto.Message); ok {
		b, _ := any(b).(proto.Message)
		return proto.Equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}
