package set

import (
	"errors"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// RunTests runs tests that confirm a [Set] implementation behaves correctly.
//
// newSet returns a new, empty set of integers.
func RunTests(
	t *testing.T,
	newSet func(t rapid.TB) Set[int],
) {
	setup := func(t testing.TB, values ...int) Set[int] {
		t.Helper()

		set := newSet(t)

		for _, v := range values {
			added, err := set.Add(v)
			if err != nil {
				t.Fatal(err)
			}
			if !added {
				t.Fatalf("expected %d to be added", v)
			}
		}

		return set
	}

	t.Run("Has", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns false if the value is not a member", func(t *testing.T) {
			t.Parallel()

			set := setup(t)

			if set.Has(123) {
				t.Fatal("expected ok to be false")
			}
		})

		t.Run("it returns true if the value is a member", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 123)

			if !set.Has(123) {
				t.Fatal("expected ok to be true")
			}
		})

		t.Run("it returns false if the value has been taken", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 123)

			if _, err := set.Take(Matching(123)); err != nil {
				t.Fatal(err)
			}

			if set.Has(123) {
				t.Fatal("expected ok to be false")
			}
		})

		t.Run("it returns false if the value is not a member, but others are", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 123)

			if set.Has(456) {
				t.Fatal("expected ok to be false")
			}
		})
	})

	t.Run("Add", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns true if the value was added", func(t *testing.T) {
			t.Parallel()

			set := setup(t)

			added, err := set.Add(123)
			if err != nil {
				t.Fatal(err)
			}
			if !added {
				t.Fatal("expected ok to be true")
			}
		})

		t.Run("it returns false if the value was already a member", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 123)

			added, err := set.Add(123)
			if err != nil {
				t.Fatal(err)
			}
			if added {
				t.Fatal("expected ok to be false")
			}

			if got, want := set.Size(), 1; got != want {
				t.Fatalf("unexpected size: got %d, want %d", got, want)
			}
		})

		t.Run("it keeps the size equal to the number of members", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 1, 2, 3)

			if got, want := set.Size(), 3; got != want {
				t.Fatalf("unexpected size: got %d, want %d", got, want)
			}

			if got, want := len(set.Members()), 3; got != want {
				t.Fatalf("unexpected member count: got %d, want %d", got, want)
			}
		})
	})

	t.Run("Take", func(t *testing.T) {
		t.Parallel()

		t.Run("it drains members in insertion order when selecting the oldest", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 10, 20, 30)

			for _, want := range []int{10, 20, 30} {
				got, err := set.Take(Oldest[int]())
				if err != nil {
					t.Fatal(err)
				}
				if got != want {
					t.Fatalf("unexpected value: got %d, want %d", got, want)
				}
			}

			if !set.IsEmpty() {
				t.Fatal("expected set to be empty")
			}

			if _, err := set.Take(Oldest[int]()); !IsNotFound(err) {
				t.Fatalf("unexpected error: got %v, want not-found", err)
			}
		})

		t.Run("it unlinks the member matching the selection", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 10, 20, 30)

			got, err := set.Take(Matching(20))
			if err != nil {
				t.Fatal(err)
			}
			if got != 20 {
				t.Fatalf("unexpected value: got %d, want %d", got, 20)
			}

			if set.Has(20) {
				t.Fatal("did not expect value to remain a member")
			}

			if got, want := set.Size(), 2; got != want {
				t.Fatalf("unexpected size: got %d, want %d", got, want)
			}
		})

		t.Run("it can unlink the newest member", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 10, 20, 30)

			if _, err := set.Take(Matching(30)); err != nil {
				t.Fatal(err)
			}

			// The tail reference must be rewound for subsequent appends to
			// remain reachable.
			if _, err := set.Add(40); err != nil {
				t.Fatal(err)
			}

			want := []int{10, 20, 40}
			if got := set.Members(); !slices.Equal(got, want) {
				t.Fatalf("unexpected members: got %v, want %v", got, want)
			}
		})

		t.Run("it returns a not-found error if no member matches", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 10)

			if _, err := set.Take(Matching(20)); !IsNotFound(err) {
				t.Fatalf("unexpected error: got %v, want not-found", err)
			}

			if got, want := set.Size(), 1; got != want {
				t.Fatalf("unexpected size: got %d, want %d", got, want)
			}
		})
	})

	t.Run("Remove", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns true if the value was removed", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 123)

			removed, err := set.Remove(123)
			if err != nil {
				t.Fatal(err)
			}
			if !removed {
				t.Fatal("expected ok to be true")
			}
		})

		t.Run("it returns false if the value was not a member", func(t *testing.T) {
			t.Parallel()

			set := setup(t)

			removed, err := set.Remove(123)
			if err != nil {
				t.Fatal(err)
			}
			if removed {
				t.Fatal("expected ok to be false")
			}
		})

		t.Run("it does not affect other members", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 123, 456)

			if _, err := set.Remove(123); err != nil {
				t.Fatal(err)
			}

			if !set.Has(456) {
				t.Fatal("expected other member to remain")
			}
		})
	})

	t.Run("Range", func(t *testing.T) {
		t.Parallel()

		t.Run("it visits members in insertion order", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 3, 1, 2)

			var got []int
			err := set.Range(
				func(v int) (bool, error) {
					got = append(got, v)
					return true, nil
				},
			)
			if err != nil {
				t.Fatal(err)
			}

			want := []int{3, 1, 2}
			if !slices.Equal(got, want) {
				t.Fatalf("unexpected members: got %v, want %v", got, want)
			}
		})

		t.Run("it returns ErrEmpty if the set has no members", func(t *testing.T) {
			t.Parallel()

			set := setup(t)

			err := set.Range(
				func(int) (bool, error) {
					return true, nil
				},
			)
			if !errors.Is(err, ErrEmpty) {
				t.Fatalf("unexpected error: got %v, want %v", err, ErrEmpty)
			}
		})

		t.Run("it returns an invalid-argument error if the function is nil", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 123)

			if err := set.Range(nil); !IsInvalidArgument(err) {
				t.Fatalf("unexpected error: got %v, want invalid-argument", err)
			}
		})

		t.Run("it stops without error when the function returns false", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 1, 2, 3)

			var visited int
			err := set.Range(
				func(int) (bool, error) {
					visited++
					return false, nil
				},
			)
			if err != nil {
				t.Fatal(err)
			}

			if visited != 1 {
				t.Fatalf("unexpected number of members visited: got %d, want 1", visited)
			}
		})

		t.Run("it propagates errors from the function", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 1, 2, 3)

			want := errors.New("<error>")
			got := set.Range(
				func(int) (bool, error) {
					return true, want
				},
			)
			if !errors.Is(got, want) {
				t.Fatalf("unexpected error: got %v, want %v", got, want)
			}
		})
	})

	t.Run("Clear", func(t *testing.T) {
		t.Parallel()

		t.Run("it removes every member", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 1, 2, 3)

			if err := set.Clear(); err != nil {
				t.Fatal(err)
			}

			if !set.IsEmpty() {
				t.Fatal("expected set to be empty")
			}
		})

		t.Run("it is a no-op on an already-empty set", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 1)

			if err := set.Clear(); err != nil {
				t.Fatal(err)
			}
			if err := set.Clear(); err != nil {
				t.Fatal(err)
			}

			if got, want := set.Size(), 0; got != want {
				t.Fatalf("unexpected size: got %d, want %d", got, want)
			}
		})

		t.Run("it leaves the set usable", func(t *testing.T) {
			t.Parallel()

			set := setup(t, 1, 2)

			if err := set.Clear(); err != nil {
				t.Fatal(err)
			}

			if _, err := set.Add(3); err != nil {
				t.Fatal(err)
			}

			want := []int{3}
			if got := set.Members(); !slices.Equal(got, want) {
				t.Fatalf("unexpected members: got %v, want %v", got, want)
			}
		})
	})

	t.Run("property-based", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(t *rapid.T) {
			set := newSet(t)

			value := rapid.IntRange(0, 50)

			// The model: membership and insertion order.
			member := map[int]struct{}{}
			var order []int

			t.Repeat(
				map[string]func(*rapid.T){
					"Has": func(t *rapid.T) {
						v := value.Draw(t, "value")

						_, want := member[v]
						if got := set.Has(v); got != want {
							t.Fatalf("unexpected membership for %d: got %t, want %t", v, got, want)
						}
					},
					"Add": func(t *rapid.T) {
						v := value.Draw(t, "value")
						_, present := member[v]

						added, err := set.Add(v)
						if err != nil {
							t.Fatal(err)
						}

						if added == present {
							t.Fatalf("unexpected result for %d: got %t, want %t", v, added, !present)
						}

						if !present {
							member[v] = struct{}{}
							order = append(order, v)
						}
					},
					"Remove": func(t *rapid.T) {
						v := value.Draw(t, "value")
						_, present := member[v]

						removed, err := set.Remove(v)
						if err != nil {
							t.Fatal(err)
						}

						if removed != present {
							t.Fatalf("unexpected result for %d: got %t, want %t", v, removed, present)
						}

						delete(member, v)
						order = slices.DeleteFunc(
							order,
							func(o int) bool { return o == v },
						)
					},
					"Take (oldest)": func(t *rapid.T) {
						if len(order) == 0 {
							if _, err := set.Take(Oldest[int]()); !IsNotFound(err) {
								t.Fatalf("unexpected error: got %v, want not-found", err)
							}
							return
						}

						got, err := set.Take(Oldest[int]())
						if err != nil {
							t.Fatal(err)
						}

						if want := order[0]; got != want {
							t.Fatalf("unexpected value: got %d, want %d", got, want)
						}

						delete(member, got)
						order = order[1:]
					},
					"Take (matching)": func(t *rapid.T) {
						if len(order) == 0 {
							t.Skip("skip: set is empty")
						}

						v := rapid.SampledFrom(order).Draw(t, "value")

						got, err := set.Take(Matching(v))
						if err != nil {
							t.Fatal(err)
						}

						if got != v {
							t.Fatalf("unexpected value: got %d, want %d", got, v)
						}

						delete(member, v)
						order = slices.DeleteFunc(
							order,
							func(o int) bool { return o == v },
						)
					},
					"Range": func(t *rapid.T) {
						var visited []int

						err := set.Range(
							func(v int) (bool, error) {
								visited = append(visited, v)
								return true, nil
							},
						)

						if len(order) == 0 {
							if !errors.Is(err, ErrEmpty) {
								t.Fatalf("unexpected error: got %v, want %v", err, ErrEmpty)
							}
							return
						}

						if err != nil {
							t.Fatal(err)
						}

						if !slices.Equal(visited, order) {
							t.Fatalf("unexpected members: got %v, want %v", visited, order)
						}
					},
					"Size": func(t *rapid.T) {
						if got, want := set.Size(), len(order); got != want {
							t.Fatalf("unexpected size: got %d, want %d", got, want)
						}
					},
				},
			)
		})
	})
}
