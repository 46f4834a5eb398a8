package statecell

import (
	"context"
	"fmt"

	"github.com/on-the-ground/optic_ive_go/effects"
	effectmodel "github.com/on-the-ground/optic_ive_go/effects/internal/model"
	"github.com/on-the-ground/optic_ive_go/effects/log"
	"github.com/on-the-ground/optic_ive_go/shared/helper"
)

// WithEffectHandler registers a resumable effect handler owning one ambient
// state cell of type S.
//
// A single worker goroutine owns the cell, so every payload — including
// Update's read-apply-write — is handled as one uninterrupted step. Committed
// replacements are emitted to a bounded change journal; when the journal is
// full, records are dropped with a warning through the log effect, so a log
// effect handler should be in scope.
//
// The teardown function should be called when the effect handler is no longer
// needed; the context it returns should be used for further operations.
func WithEffectHandler[S any](
	ctx context.Context,
	bufferSize int,
	initial S,
) (context.Context, func() context.Context) {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	sink := make(chan TimeBoundedChange[S], 2*bufferSize)
	cH := &cellHandler[S]{
		value: initial,
		sink:  sink,
	}
	return effects.WithResumableEffectHandler(
		ctx,
		bufferSize,
		effectmodel.EffectStateCell,
		cH.handle,
		func() {
			close(sink)
		},
	)
}

// Get reads the current ambient state.
func Get[S any](ctx context.Context) (S, error) {
	return helper.GetTypedValueOf[S](func() (any, error) {
		return effect(ctx, Load{})
	})
}

// Put replaces the ambient state and returns the previous value.
func Put[S any](ctx context.Context, new S) (S, error) {
	return helper.GetTypedValueOf[S](func() (any, error) {
		return effect(ctx, Replace[S]{New: new})
	})
}

// Modify applies f to the ambient state as one logical read-modify-replace
// and returns the new value.
func Modify[S any](ctx context.Context, f func(S) S) (S, error) {
	return helper.GetTypedValueOf[S](func() (any, error) {
		return effect(ctx, Update[S]{F: f})
	})
}

// Changes returns the journal channel of committed replacements.
func Changes[S any](ctx context.Context) (chan TimeBoundedChange[S], error) {
	return helper.GetTypedValueOf[chan TimeBoundedChange[S]](func() (any, error) {
		return effect(ctx, Source{})
	})
}

// effect performs a state-cell operation using the EffectStateCell handler.
func effect(ctx context.Context, payload Payload) (val any, err error) {
	resultCh := effects.PerformResumableEffect[Payload, any](ctx, effectmodel.EffectStateCell, payload)
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

// cellHandler owns the ambient cell value. Confined to its worker goroutine.
type cellHandler[S any] struct {
	value S
	sink  chan TimeBoundedChange[S]
}

// handle routes the given payload to the appropriate cell operation.
func (cH *cellHandler[S]) handle(ctx context.Context, payload Payload) (res any, err error) {
	switch payload := payload.(type) {

	case Load:
		return cH.value, nil

	case Replace[S]:
		old := cH.value
		cH.value = payload.New
		cH.emit(ctx, Change[S]{Old: old, New: cH.value})
		return old, nil

	case Update[S]:
		old := cH.value
		cH.value = payload.F(old)
		cH.emit(ctx, Change[S]{Old: old, New: cH.value})
		return cH.value, nil

	case Source:
		return cH.sink, nil

	default:
		// This should never happen because we are using a sealed interface to prevent adding new types.
		// So we need to panic to avoid silent failures.
		panic(fmt.Errorf("invalid state-cell operation type: %T", payload))
	}
}

// emit journals a committed replacement without blocking the worker.
func (cH *cellHandler[S]) emit(ctx context.Context, change Change[S]) {
	record := changeWithNow(change)
	select {
	case cH.sink <- record:
	default:
		log.Effect(ctx, log.LogWarn, "state-cell journal is full, dropping change record", map[string]interface{}{
			"change": fmt.Sprintf("%+v", change),
		})
	}
}

// Change records one committed replacement of the cell value.
type Change[S any] struct {
	Old S
	New S
}

// TimeBoundedChange is a Change stamped with the span it was committed in.
type TimeBoundedChange[S any] struct {
	Change[S]
	effects.TimeSpan
}

func changeWithNow[S any](change Change[S]) TimeBoundedChange[S] {
	return TimeBoundedChange[S]{Change: change, TimeSpan: effects.Now()}
}
