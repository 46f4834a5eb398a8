// Package effects hosts the computation contexts the optics package
// integrates with, plus the minimal handler machinery they run on.
//
// The optics core is pure: every setter run is a total function call. The
// only stateful collaborators it ever touches live here, each behind a
// context-registered handler:
//
//   - statecell: a mutable-state context (read / replace / atomically modify
//     an ambient value, plus sharded keyed cells), with the assignment
//     operator family (Assign, AddAssign, CombineAssign, ...) that applies a
//     setter to the ambient state in one logical step.
//   - accumulator: a log-accumulating context (append values combined through
//     an associative monoid), with Whisper, which fills just the focus of a
//     monoid-empty whole and appends it.
//   - log: a fire-and-forget structured log effect backed by zap, used by the
//     other handlers for lifecycle and drop warnings.
//
// # How does it work?
//
// Handlers are registered via WithXxxEffectHandler(ctx) and perform effects
// through PerformResumableEffect or FireAndForgetEffect. Each handler's state
// is owned by its worker goroutine(s); a payload is handled start-to-finish by
// one worker, which is what makes every statecell/accumulator combinator one
// logical step with no observable intermediate state. Ordering across
// independent calls is whatever the surrounding computation provides.
//
// Handler lifecycle is scope-bound: registration returns a teardown function,
// and the context returned by teardown should be used for further operations.
package effects
