package optics

// Setter turns "transform a focus of type C into a mutator-carried D" into
// "transform a whole of type A into a mutator-carried B". Read A/B as the
// whole before/after, C/D as the focus before/after.
type Setter[A, B, C, D any] func(func(C) Mutator[D]) func(A) Mutator[B]

// Simple is the common in-place shape: updates that keep both the whole and
// the focus at their original types.
type Simple[S, A any] = Setter[S, S, A, A]

// Compose chains an outer setter with an inner one, focusing deeper. It is
// plain function composition in the mutator-carried function space; the
// result is itself a lawful setter whenever both operands are.
func Compose[A, B, C, D, E, F any](
	outer Setter[A, B, C, D],
	inner Setter[C, D, E, F],
) Setter[A, B, E, F] {
	return func(k func(E) Mutator[F]) func(A) Mutator[B] {
		return outer(inner(k))
	}
}

// Sets builds a setter from an ordinary whole-structure mapping function:
// anything of shape (C -> D) -> (A -> B), not just structures that support
// element-by-element traversal.
//
// f must genuinely satisfy the editor laws — f(id) == id and
// f(g) then f(h) == f(h∘g) — or the resulting setter composes incorrectly.
// The contract is caller-supplied, not checked at runtime.
func Sets[A, B, C, D any](f func(func(C) D) func(A) B) Setter[A, B, C, D] {
	return func(k func(C) Mutator[D]) func(A) Mutator[B] {
		g := f(func(c C) D { return k(c).Extract() })
		return func(a A) Mutator[B] { return Embed(g(a)) }
	}
}

// Adjust runs a setter with update function f through the mutator carrier and
// extracts the plain whole-structure transformation.
func Adjust[A, B, C, D any](l Setter[A, B, C, D], f func(C) D) func(A) B {
	g := l(func(c C) Mutator[D] { return Embed(f(c)) })
	return func(a A) B { return g(a).Extract() }
}

// MapOf is Adjust under its traditional optics name.
func MapOf[A, B, C, D any](l Setter[A, B, C, D], f func(C) D) func(A) B {
	return Adjust(l, f)
}

// Set runs a setter with a constant-replacement function, equivalent to
// Adjust with func(C) D { return d }.
func Set[A, B, C, D any](l Setter[A, B, C, D], d D) func(A) B {
	return Adjust(l, func(C) D { return d })
}
