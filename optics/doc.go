// Package optics provides composable, write-only update combinators for Go.
//
// Optic-ive Go introduces the Setter Pattern: "modify the focused part(s) of a
// larger structure" becomes a first-class value that can be built from a plain
// mapping function, applied directly, and combined with constant-replacement,
// arithmetic, logical, and monoidal variants — while your data stays immutable
// and your update logic stays pure, testable, and reusable.
//
// # What is a Setter?
//
// A Setter[A, B, C, D] turns "transform a focus of type C into a D" into
// "transform a whole of type A into a B". It carries no runtime state; it is
// a function value, freely copyable and shareable.
//
// # The capability boundary
//
// Setters are phrased over an effect carrier restricted to behave exactly like
// identity: the Settable capability (Embed/Extract with Extract∘Embed == id)
// and its one concrete carrier, Mutator. The restriction is what lets
// arbitrary whole-structure mapping functions become setters via Sets, and
// what keeps setter composition plain function composition.
//
// # Laws
//
// Every setter must satisfy:
//   - Set(l, c)(Set(l, b)(a)) == Set(l, c)(a)
//   - Adjust(l, id) == id
//   - Adjust(l, f∘g) == Adjust(l, f) ∘ Adjust(l, g)
//
// Sets does not (cannot) verify these at runtime: a mapping function that
// breaks them produces silently wrong composition. Keep the laws in your
// tests.
//
// # How does it work?
//
// Build with Sets, Mapped, MappedValues, FirstOf, SecondOf; chain with
// Compose; run with Adjust (alias MapOf) or Set; or reach for the operator
// family (Replace, Over, Add, Sub, Mul, Div, Or, And, Combine) when the update
// is one of the usual suspects.
//
// For ambient-state and log-accumulating integration, see the effects
// packages (statecell, accumulator).
package optics
