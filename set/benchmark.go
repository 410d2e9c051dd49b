package set

import "testing"

// RunBenchmarks runs benchmarks against a [Set] implementation.
//
// newSet returns a new, empty set of integers.
func RunBenchmarks(
	b *testing.B,
	newSet func(b *testing.B) Set[int],
) {
	populate := func(b *testing.B, n int) Set[int] {
		b.Helper()

		set := newSet(b)

		for v := range n {
			if _, err := set.Add(v); err != nil {
				b.Fatal(err)
			}
		}

		return set
	}

	b.Run("Has", func(b *testing.B) {
		b.Run("existing value", func(b *testing.B) {
			set := populate(b, 1024)

			for b.Loop() {
				set.Has(1023)
			}
		})

		b.Run("non-existent value", func(b *testing.B) {
			set := populate(b, 1024)

			for b.Loop() {
				set.Has(-1)
			}
		})
	})

	b.Run("Add", func(b *testing.B) {
		b.Run("new value", func(b *testing.B) {
			set := newSet(b)

			v := 0
			for b.Loop() {
				v++
				if _, err := set.Add(v); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run("existing value", func(b *testing.B) {
			set := populate(b, 1024)

			for b.Loop() {
				if _, err := set.Add(1023); err != nil {
					b.Fatal(err)
				}
			}
		})
	})

	b.Run("Take", func(b *testing.B) {
		b.Run("oldest", func(b *testing.B) {
			set := newSet(b)

			for b.Loop() {
				b.StopTimer()
				if _, err := set.Add(0); err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				if _, err := set.Take(Oldest[int]()); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run("matching the newest value", func(b *testing.B) {
			set := populate(b, 1024)

			for b.Loop() {
				v, err := set.Take(Matching(1023))
				if err != nil {
					b.Fatal(err)
				}

				b.StopTimer()
				if _, err := set.Add(v); err != nil {
					b.Fatal(err)
				}
				b.StartTimer()
			}
		})
	})
}
