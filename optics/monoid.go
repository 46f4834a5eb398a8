package optics

// Monoid packages an associative combine with its identity element. Empty is
// a constructor rather than a value so reference-typed identities (slices,
// maps) come out fresh per use.
//
// Callers must supply a genuinely lawful instance:
// Combine(Empty(), x) == Combine(x, Empty()) == x, and Combine associative.
type Monoid[T any] struct {
	Empty   func() T
	Combine func(T, T) T
}

// StringMonoid concatenates.
func StringMonoid() Monoid[string] {
	return Monoid[string]{
		Empty:   func() string { return "" },
		Combine: func(a, b string) string { return a + b },
	}
}

// SliceMonoid concatenates without aliasing either operand.
func SliceMonoid[T any]() Monoid[[]T] {
	return Monoid[[]T]{
		Empty: func() []T { return nil },
		Combine: func(a, b []T) []T {
			out := make([]T, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// SumMonoid adds, identity zero.
func SumMonoid[N Number]() Monoid[N] {
	return Monoid[N]{
		Empty:   func() N { return 0 },
		Combine: func(a, b N) N { return a + b },
	}
}

// ProductMonoid multiplies, identity one.
func ProductMonoid[N Number]() Monoid[N] {
	return Monoid[N]{
		Empty:   func() N { return 1 },
		Combine: func(a, b N) N { return a * b },
	}
}

// AllMonoid ands, identity true.
func AllMonoid[T Boolean]() Monoid[T] {
	return Monoid[T]{
		Empty:   func() T { return true },
		Combine: func(a, b T) T { return a && b },
	}
}

// AnyMonoid ors, identity false.
func AnyMonoid[T Boolean]() Monoid[T] {
	return Monoid[T]{
		Empty:   func() T { return false },
		Combine: func(a, b T) T { return a || b },
	}
}

// PairMonoid combines component-wise.
func PairMonoid[A, B any](ma Monoid[A], mb Monoid[B]) Monoid[Pair[A, B]] {
	return Monoid[Pair[A, B]]{
		Empty: func() Pair[A, B] {
			return Pair[A, B]{Fst: ma.Empty(), Snd: mb.Empty()}
		},
		Combine: func(x, y Pair[A, B]) Pair[A, B] {
			return Pair[A, B]{
				Fst: ma.Combine(x.Fst, y.Fst),
				Snd: mb.Combine(x.Snd, y.Snd),
			}
		},
	}
}
