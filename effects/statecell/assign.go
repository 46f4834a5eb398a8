package statecell

import (
	"context"

	"github.com/on-the-ground/optic_ive_go/optics"
)

// The assignment family lifts the optics operator family into the ambient
// state cell: read the current state, run the corresponding plain operator
// over it, replace the state with the result. Each function is exactly one
// Modify, so the read-modify-replace happens as a single logical step inside
// the handler worker.

// Assign (.=) replaces the focus of the ambient state with a constant.
func Assign[S, A any](ctx context.Context, l optics.Simple[S, A], d A) error {
	_, err := Modify(ctx, optics.Set(l, d))
	return err
}

// Modifying (%=) maps f over the focus of the ambient state.
func Modifying[S, A any](ctx context.Context, l optics.Simple[S, A], f func(A) A) error {
	_, err := Modify(ctx, optics.Adjust(l, f))
	return err
}

// AddAssign (+=) adds n to the focus of the ambient state.
func AddAssign[S any, N optics.Number](ctx context.Context, l optics.Simple[S, N], n N) error {
	_, err := Modify(ctx, optics.Add(l, n))
	return err
}

// SubAssign (-=) subtracts n from the focus of the ambient state.
func SubAssign[S any, N optics.Number](ctx context.Context, l optics.Simple[S, N], n N) error {
	_, err := Modify(ctx, optics.Sub(l, n))
	return err
}

// MulAssign (*=) multiplies the focus of the ambient state by n.
func MulAssign[S any, N optics.Number](ctx context.Context, l optics.Simple[S, N], n N) error {
	_, err := Modify(ctx, optics.Mul(l, n))
	return err
}

// DivAssign (//=) divides the focus of the ambient state by n.
func DivAssign[S any, N optics.Number](ctx context.Context, l optics.Simple[S, N], n N) error {
	_, err := Modify(ctx, optics.Div(l, n))
	return err
}

// OrAssign (||=) logically ors the focus of the ambient state with n.
func OrAssign[S any, T optics.Boolean](ctx context.Context, l optics.Simple[S, T], n T) error {
	_, err := Modify(ctx, optics.Or(l, n))
	return err
}

// AndAssign (&&=) logically ands the focus of the ambient state with n.
func AndAssign[S any, T optics.Boolean](ctx context.Context, l optics.Simple[S, T], n T) error {
	_, err := Modify(ctx, optics.And(l, n))
	return err
}

// CombineAssign (<>=) merges n into the focus of the ambient state with an
// associative combine; like optics.Combine, n lands on the left of the focus.
func CombineAssign[S, A any](ctx context.Context, l optics.Simple[S, A], combine func(A, A) A, n A) error {
	_, err := Modify(ctx, optics.Combine(l, combine, n))
	return err
}
