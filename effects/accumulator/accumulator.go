package accumulator

import (
	"context"
	"fmt"

	"github.com/on-the-ground/optic_ive_go/effects"
	effectmodel "github.com/on-the-ground/optic_ive_go/effects/internal/model"
	"github.com/on-the-ground/optic_ive_go/optics"
	"github.com/on-the-ground/optic_ive_go/shared/helper"
)

// WithEffectHandler registers a resumable effect handler accumulating values
// of type W through the given monoid. The accumulated output starts at
// monoid.Empty() and grows by acc = Combine(acc, appended) — new values on
// the right, so output order follows append order.
//
// A single worker goroutine owns the accumulator, so each append is one
// logical step. The teardown function should be called when the effect
// handler is no longer needed; the context it returns should be used for
// further operations.
func WithEffectHandler[W any](
	ctx context.Context,
	bufferSize int,
	monoid optics.Monoid[W],
) (context.Context, func() context.Context) {
	aH := &accHandler[W]{
		monoid: monoid,
		acc:    monoid.Empty(),
	}
	return effects.WithResumableEffectHandler(
		ctx,
		bufferSize,
		effectmodel.EffectAccumulator,
		aH.handle,
	)
}

// AppendEffect combines v into the accumulated output.
func AppendEffect[W any](ctx context.Context, v W) error {
	_, err := effect(ctx, Append[W]{Value: v})
	return err
}

// Whisper synthesizes the identity element of the whole type W, sets just the
// focus of l to d (everything else stays at its neutral value), and combines
// the result into the accumulated output. The synthesize-set-append sequence
// runs inside the handler worker as one logical step.
func Whisper[W, A any](ctx context.Context, l optics.Simple[W, A], d A) error {
	_, err := effect(ctx, Tell[W]{Fill: optics.Set(l, d)})
	return err
}

// Output reads the accumulated output so far.
func Output[W any](ctx context.Context) (W, error) {
	return helper.GetTypedValueOf[W](func() (any, error) {
		return effect(ctx, Snapshot{})
	})
}

// effect performs an accumulator operation using the EffectAccumulator handler.
func effect(ctx context.Context, payload Payload) (val any, err error) {
	resultCh := effects.PerformResumableEffect[Payload, any](ctx, effectmodel.EffectAccumulator, payload)
	select {
	case res, ok := <-resultCh:
		if ok {
			val = res.Value
			err = res.Err
			return
		}
	case <-ctx.Done():
	}
	err = ctx.Err()
	return
}

// accHandler owns the accumulated output. Confined to its worker goroutine.
type accHandler[W any] struct {
	monoid optics.Monoid[W]
	acc    W
}

// handle routes the given payload to the appropriate accumulator operation.
func (aH *accHandler[W]) handle(_ context.Context, payload Payload) (res any, err error) {
	switch payload := payload.(type) {

	case Append[W]:
		aH.acc = aH.monoid.Combine(aH.acc, payload.Value)
		return aH.acc, nil

	case Tell[W]:
		whole := payload.Fill(aH.monoid.Empty())
		aH.acc = aH.monoid.Combine(aH.acc, whole)
		return whole, nil

	case Snapshot:
		return aH.acc, nil

	default:
		// This should never happen because we are using a sealed interface to prevent adding new types.
		// So we need to panic to avoid silent failures.
		panic(fmt.Errorf("invalid accumulator operation type: %T", payload))
	}
}
