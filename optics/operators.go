package optics

// Number covers the built-in arithmetic types usable with the numeric
// operator family.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Boolean covers the types usable with the logical operator family.
type Boolean interface {
	~bool
}

// The operator family spells out the infix combinators of the optics
// tradition as named functions (Go has no custom infix operators). Each is
// exactly "run Adjust with the obvious update function"; application order is
// left to right, so Replace(l, d)(a) reads like a .~-style pipeline.

// Replace (.~) replaces the focus with a constant.
func Replace[A, B, C, D any](l Setter[A, B, C, D], d D) func(A) B {
	return Set(l, d)
}

// Over (%~) maps a user function over the focus.
func Over[A, B, C, D any](l Setter[A, B, C, D], f func(C) D) func(A) B {
	return Adjust(l, f)
}

// Add (+~) adds n to the focus.
func Add[A, B any, N Number](l Setter[A, B, N, N], n N) func(A) B {
	return Adjust(l, func(x N) N { return x + n })
}

// Sub (-~) subtracts n from the focus.
func Sub[A, B any, N Number](l Setter[A, B, N, N], n N) func(A) B {
	return Adjust(l, func(x N) N { return x - n })
}

// Mul (*~) multiplies the focus by n.
func Mul[A, B any, N Number](l Setter[A, B, N, N], n N) func(A) B {
	return Adjust(l, func(x N) N { return x * n })
}

// Div (//~) divides the focus by n. Partiality is the focus type's own:
// integer division by zero panics, float division yields ±Inf or NaN.
func Div[A, B any, N Number](l Setter[A, B, N, N], n N) func(A) B {
	return Adjust(l, func(x N) N { return x / n })
}

// Or (||~) logically ors the focus with n.
func Or[A, B any, T Boolean](l Setter[A, B, T, T], n T) func(A) B {
	return Adjust(l, func(x T) T { return x || n })
}

// And (&&~) logically ands the focus with n.
func And[A, B any, T Boolean](l Setter[A, B, T, T], n T) func(A) B {
	return Adjust(l, func(x T) T { return x && n })
}

// Combine (<>~) merges n into the focus with an associative combine. The new
// operand lands on the LEFT of the existing focus value: combine(n, focus).
// The order is part of the contract and observable whenever combine is
// non-commutative.
func Combine[A, B, C any](l Setter[A, B, C, C], combine func(C, C) C, n C) func(A) B {
	return Adjust(l, func(x C) C { return combine(n, x) })
}
