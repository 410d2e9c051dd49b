package set_test

import (
	"testing"

	"github.com/dogmatiq/setkit/marshaler"
	. "github.com/dogmatiq/setkit/set"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"pgregory.net/rapid"
)

func TestNewMarshalingSet(t *testing.T) {
	t.Parallel()

	RunTests(
		t,
		func(t rapid.TB) Set[int] {
			next, err := New(Binary())
			if err != nil {
				t.Fatal(err)
			}

			return NewMarshalingSet(
				next,
				marshaler.Int,
			)
		},
	)
}

func TestMarshalingSetTraits(t *testing.T) {
	t.Parallel()

	next, err := New(Binary())
	if err != nil {
		t.Fatal(err)
	}

	set := NewMarshalingSet(
		next,
		marshaler.NewJSON[map[string]string](),
	)

	traits := set.Traits()

	t.Run("it matches values with equal representations", func(t *testing.T) {
		if !traits.Match(
			map[string]string{"<key>": "<value>"},
			map[string]string{"<key>": "<value>"},
		) {
			t.Fatal("expected values to match")
		}

		if traits.Match(
			map[string]string{"<key>": "<value-1>"},
			map[string]string{"<key>": "<value-2>"},
		) {
			t.Fatal("did not expect values to match")
		}
	})

	t.Run("it copies values via their representation", func(t *testing.T) {
		original := map[string]string{"<key>": "<value>"}

		dup, err := traits.Copy(original)
		if err != nil {
			t.Fatal(err)
		}

		dup["<key>"] = "<modified>"

		if original["<key>"] != "<value>" {
			t.Fatal("expected original to be unaffected")
		}
	})
}

func TestMarshalingSetOfStrings(t *testing.T) {
	t.Parallel()

	next, err := New(Binary())
	if err != nil {
		t.Fatal(err)
	}

	set := NewMarshalingSet(
		next,
		marshaler.String,
	)

	for _, v := range []string{"<value-1>", "<value-2>"} {
		if _, err := set.Add(v); err != nil {
			t.Fatal(err)
		}
	}

	if !set.Has("<value-1>") {
		t.Fatal("expected value to be a member")
	}

	got, err := set.Take(Matching("<value-2>"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "<value-2>" {
		t.Fatalf("unexpected value: got %q, want %q", got, "<value-2>")
	}

	if set.Has("<value-2>") {
		t.Fatal("did not expect value to remain a member")
	}
}

func TestMarshalingSetOfBools(t *testing.T) {
	t.Parallel()

	next, err := New(Binary())
	if err != nil {
		t.Fatal(err)
	}

	set := NewMarshalingSet(
		next,
		marshaler.Bool,
	)

	for _, v := range []bool{true, false} {
		if _, err := set.Add(v); err != nil {
			t.Fatal(err)
		}
	}

	if got, want := set.Size(), 2; got != want {
		t.Fatalf("unexpected size: got %d, want %d", got, want)
	}

	removed, err := set.Remove(false)
	if err != nil {
		t.Fatal(err)
	}
	if !removed {
		t.Fatal("expected ok to be true")
	}

	if set.Has(false) {
		t.Fatal("did not expect value to remain a member")
	}

	if !set.Has(true) {
		t.Fatal("expected other member to remain")
	}
}

func TestMarshalingSetOfProtoMessages(t *testing.T) {
	t.Parallel()

	next, err := New(Binary())
	if err != nil {
		t.Fatal(err)
	}

	set := NewMarshalingSet(
		next,
		marshaler.NewProto[*wrapperspb.StringValue](),
	)

	if _, err := set.Add(wrapperspb.String("<value>")); err != nil {
		t.Fatal(err)
	}

	// Equivalence is defined by the marshaled representation, not message
	// identity.
	if !set.Has(wrapperspb.String("<value>")) {
		t.Fatal("expected message to be a member")
	}

	got, err := set.Take(Matching(wrapperspb.String("<value>")))
	if err != nil {
		t.Fatal(err)
	}
	if got.GetValue() != "<value>" {
		t.Fatalf("unexpected value: got %q, want %q", got.GetValue(), "<value>")
	}

	if !set.IsEmpty() {
		t.Fatal("expected set to be empty")
	}
}
