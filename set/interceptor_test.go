package set_test

import (
	"errors"
	"testing"

	. "github.com/dogmatiq/setkit/set"
	"pgregory.net/rapid"
)

func TestWithInterceptor(t *testing.T) {
	t.Parallel()

	t.Run("it behaves like a regular set", func(t *testing.T) {
		t.Parallel()

		RunTests(
			t,
			func(t rapid.TB) Set[int] {
				next, err := New(Comparable[int]())
				if err != nil {
					t.Fatal(err)
				}

				return WithInterceptor(next, &Interceptor[int]{})
			},
		)
	})

	t.Run("it returns the original set when the interceptor is nil", func(t *testing.T) {
		t.Parallel()

		next, err := New(Comparable[int]())
		if err != nil {
			t.Fatal(err)
		}

		if WithInterceptor(next, nil) != next {
			t.Fatal("expected the original set to be returned")
		}
	})

	setup := func(t testing.TB) (Set[int], *Interceptor[int]) {
		next, err := New(Comparable[int]())
		if err != nil {
			t.Fatal(err)
		}

		in := &Interceptor[int]{}

		return WithInterceptor(next, in), in
	}

	t.Run("func BeforeAdd()", func(t *testing.T) {
		t.Parallel()

		t.Run("it prevents the value from being added when it returns an error", func(t *testing.T) {
			t.Parallel()

			set, in := setup(t)

			expect := errors.New("<error>")
			in.BeforeAdd(
				func(int) error {
					return expect
				},
			)

			if _, err := set.Add(10); !errors.Is(err, expect) {
				t.Fatalf("unexpected error: got %q, want %q", err, expect)
			}

			if set.Has(10) {
				t.Fatal("did not expect the value to be a member")
			}
		})

		t.Run("it can be cleared", func(t *testing.T) {
			t.Parallel()

			set, in := setup(t)

			in.BeforeAdd(
				func(int) error {
					return errors.New("<error>")
				},
			)
			in.BeforeAdd(nil)

			if _, err := set.Add(10); err != nil {
				t.Fatal(err)
			}
		})
	})

	t.Run("func AfterAdd()", func(t *testing.T) {
		t.Parallel()

		t.Run("it surfaces the error after the value has been added", func(t *testing.T) {
			t.Parallel()

			set, in := setup(t)

			expect := errors.New("<error>")
			in.AfterAdd(
				func(int) error {
					return expect
				},
			)

			if _, err := set.Add(10); !errors.Is(err, expect) {
				t.Fatalf("unexpected error: got %q, want %q", err, expect)
			}

			if !set.Has(10) {
				t.Fatal("expected the value to be a member")
			}
		})
	})

	t.Run("func BeforeRemove()", func(t *testing.T) {
		t.Parallel()

		t.Run("it prevents the member from being removed when it returns an error", func(t *testing.T) {
			t.Parallel()

			set, in := setup(t)

			if _, err := set.Add(10); err != nil {
				t.Fatal(err)
			}

			expect := errors.New("<error>")
			in.BeforeRemove(
				func(int) error {
					return expect
				},
			)

			if _, err := set.Remove(10); !errors.Is(err, expect) {
				t.Fatalf("unexpected error: got %q, want %q", err, expect)
			}

			if !set.Has(10) {
				t.Fatal("expected the member to remain")
			}
		})

		t.Run("it prevents a specific member from being taken", func(t *testing.T) {
			t.Parallel()

			set, in := setup(t)

			if _, err := set.Add(10); err != nil {
				t.Fatal(err)
			}

			expect := errors.New("<error>")
			in.BeforeRemove(
				func(int) error {
					return expect
				},
			)

			if _, err := set.Take(Matching(10)); !errors.Is(err, expect) {
				t.Fatalf("unexpected error: got %q, want %q", err, expect)
			}

			if !set.Has(10) {
				t.Fatal("expected the member to remain")
			}
		})

		t.Run("it does not apply when taking the oldest member", func(t *testing.T) {
			t.Parallel()

			set, in := setup(t)

			if _, err := set.Add(10); err != nil {
				t.Fatal(err)
			}

			in.BeforeRemove(
				func(int) error {
					return errors.New("<error>")
				},
			)

			if _, err := set.Take(Oldest[int]()); err != nil {
				t.Fatal(err)
			}
		})
	})

	t.Run("func AfterRemove()", func(t *testing.T) {
		t.Parallel()

		t.Run("it is passed the taken member", func(t *testing.T) {
			t.Parallel()

			set, in := setup(t)

			if _, err := set.Add(10); err != nil {
				t.Fatal(err)
			}

			var got int
			in.AfterRemove(
				func(v int) error {
					got = v
					return nil
				},
			)

			if _, err := set.Take(Oldest[int]()); err != nil {
				t.Fatal(err)
			}

			if got != 10 {
				t.Fatalf("unexpected value: got %d, want %d", got, 10)
			}
		})

		t.Run("it surfaces the error after the member has been removed", func(t *testing.T) {
			t.Parallel()

			set, in := setup(t)

			if _, err := set.Add(10); err != nil {
				t.Fatal(err)
			}

			expect := errors.New("<error>")
			in.AfterRemove(
				func(int) error {
					return expect
				},
			)

			if _, err := set.Remove(10); !errors.Is(err, expect) {
				t.Fatalf("unexpected error: got %q, want %q", err, expect)
			}

			if set.Has(10) {
				t.Fatal("did not expect the member to remain")
			}
		})
	})
}
