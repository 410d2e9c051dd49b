package set_test

import (
	"testing"

	. "github.com/dogmatiq/setkit/set"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestComparable(t *testing.T) {
	t.Parallel()

	traits := Comparable[string]()

	if !traits.Match("<value>", "<value>") {
		t.Fatal("expected values to match")
	}

	if traits.Match("<value-1>", "<value-2>") {
		t.Fatal("did not expect values to match")
	}

	v, err := traits.Copy("<value>")
	if err != nil {
		t.Fatal(err)
	}
	if v != "<value>" {
		t.Fatalf("unexpected copy: got %q, want %q", v, "<value>")
	}
}

func TestBinary(t *testing.T) {
	t.Parallel()

	traits := Binary()

	if !traits.Match([]byte("<value>"), []byte("<value>")) {
		t.Fatal("expected values to match")
	}

	t.Run("copies do not share the underlying array", func(t *testing.T) {
		t.Parallel()

		original := []byte("<value>")

		dup, err := traits.Copy(original)
		if err != nil {
			t.Fatal(err)
		}

		dup[0] = 'X'

		if !traits.Match(original, []byte("<value>")) {
			t.Fatal("expected original to be unaffected")
		}
	})
}

func TestDeep(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name   string
		Scores []int
	}

	traits := Deep[*payload]()

	t.Run("it matches structurally equal values", func(t *testing.T) {
		t.Parallel()

		a := &payload{Name: "<name>", Scores: []int{1, 2}}
		b := &payload{Name: "<name>", Scores: []int{1, 2}}

		if !traits.Match(a, b) {
			t.Fatal("expected values to match")
		}

		b.Scores[0] = 3

		if traits.Match(a, b) {
			t.Fatal("did not expect values to match")
		}
	})

	t.Run("it copies values deeply", func(t *testing.T) {
		t.Parallel()

		original := &payload{Name: "<name>", Scores: []int{1, 2}}

		dup, err := traits.Copy(original)
		if err != nil {
			t.Fatal(err)
		}

		dup.Scores[0] = 3

		if original.Scores[0] != 1 {
			t.Fatal("expected original to be unaffected")
		}
	})
}

func TestProto(t *testing.T) {
	t.Parallel()

	traits := Proto[*wrapperspb.StringValue]()

	t.Run("it matches equal messages", func(t *testing.T) {
		t.Parallel()

		if !traits.Match(
			wrapperspb.String("<value>"),
			wrapperspb.String("<value>"),
		) {
			t.Fatal("expected messages to match")
		}

		if traits.Match(
			wrapperspb.String("<value-1>"),
			wrapperspb.String("<value-2>"),
		) {
			t.Fatal("did not expect messages to match")
		}
	})

	t.Run("it copies messages deeply", func(t *testing.T) {
		t.Parallel()

		original := wrapperspb.String("<value>")

		dup, err := traits.Copy(original)
		if err != nil {
			t.Fatal(err)
		}

		dup.Value = "<modified>"

		if original.Value != "<value>" {
			t.Fatal("expected original to be unaffected")
		}
	})

	t.Run("it stores messages as set members", func(t *testing.T) {
		t.Parallel()

		set, err := New(traits)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := set.Add(wrapperspb.String("<value>")); err != nil {
			t.Fatal(err)
		}

		// Equivalence is defined by message content, not message identity.
		if !set.Has(wrapperspb.String("<value>")) {
			t.Fatal("expected message to be a member")
		}
	})
}
