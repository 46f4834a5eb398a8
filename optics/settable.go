package optics

// Settable is the capability boundary an effect carrier must satisfy to flow
// through a setter: unwrap the carried value. The matching constructor is
// Embed. The full contract is Embed(x).Extract() == x — nothing else is
// available generically: no combining two carriers, no branching on wrapped
// content while wrapped. Any carrier supplied where a setter is actually run
// must be indistinguishable from the identity effect; that obligation sits on
// the carrier's author, not on this package.
type Settable[T any] interface {
	Extract() T
}

// Mutator is the one concrete effect carrier used to run setters. Embedding
// and extracting are pure pass-through, so the effect is definitionally the
// identity effect, just packaged through the capability interface so the
// generic plumbing type-checks without being able to observe real effects.
type Mutator[T any] struct {
	value T
}

var _ Settable[struct{}] = Mutator[struct{}]{}

// Embed wraps a value into the mutator carrier.
func Embed[T any](x T) Mutator[T] {
	return Mutator[T]{value: x}
}

// Extract unwraps the carried value.
func (m Mutator[T]) Extract() T {
	return m.value
}
