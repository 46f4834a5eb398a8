package optics

// Pair is a two-field product used by the stock pair setters and PairMonoid.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// PairOf builds a pair.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Whole focuses the entire structure. It is the identity for Compose.
func Whole[S, T any]() Setter[S, T, S, T] {
	return Sets(func(f func(S) T) func(S) T { return f })
}

// Mapped focuses every element of a slice. The input slice is never mutated;
// updates allocate a fresh slice of the same length.
func Mapped[C, D any]() Setter[[]C, []D, C, D] {
	return Sets(func(f func(C) D) func([]C) []D {
		return func(xs []C) []D {
			ys := make([]D, len(xs))
			for i, x := range xs {
				ys[i] = f(x)
			}
			return ys
		}
	})
}

// MappedValues focuses every value of a map, keys untouched.
func MappedValues[K comparable, C, D any]() Setter[map[K]C, map[K]D, C, D] {
	return Sets(func(f func(C) D) func(map[K]C) map[K]D {
		return func(m map[K]C) map[K]D {
			out := make(map[K]D, len(m))
			for k, v := range m {
				out[k] = f(v)
			}
			return out
		}
	})
}

// FirstOf focuses the first component of a pair.
func FirstOf[A, B, A2 any]() Setter[Pair[A, B], Pair[A2, B], A, A2] {
	return Sets(func(f func(A) A2) func(Pair[A, B]) Pair[A2, B] {
		return func(p Pair[A, B]) Pair[A2, B] {
			return Pair[A2, B]{Fst: f(p.Fst), Snd: p.Snd}
		}
	})
}

// SecondOf focuses the second component of a pair.
func SecondOf[A, B, B2 any]() Setter[Pair[A, B], Pair[A, B2], B, B2] {
	return Sets(func(f func(B) B2) func(Pair[A, B]) Pair[A, B2] {
		return func(p Pair[A, B]) Pair[A, B2] {
			return Pair[A, B2]{Fst: p.Fst, Snd: f(p.Snd)}
		}
	})
}
