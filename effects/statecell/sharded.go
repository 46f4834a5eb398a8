package statecell

import (
	"context"
	"fmt"
	"sync"

	"github.com/on-the-ground/optic_ive_go/effects"
	effectmodel "github.com/on-the-ground/optic_ive_go/effects/internal/model"
	"github.com/on-the-ground/optic_ive_go/optics"
	"github.com/on-the-ground/optic_ive_go/shared/helper"
)

// ErrNoSuchCell is returned when a keyed operation finds no cell under its key.
var ErrNoSuchCell = fmt.Errorf("no cell under key")

// WithShardedEffectHandler registers a resumable, partitionable effect handler
// owning a family of independent cells keyed by K.
//
// Payloads are routed to workers by the hash of their key, so all operations
// on one key are serialized by a single worker (per-key atomic
// read-modify-replace) while different keys may proceed concurrently. The
// cell map itself is a sync.Map, keeping cross-worker access memory-safe.
func WithShardedEffectHandler[K comparable, S any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	initial map[K]S,
) (context.Context, func() context.Context) {
	sH := &shardedHandler[K, S]{cells: &sync.Map{}}
	for k, v := range initial {
		sH.cells.Store(k, v)
	}
	return effects.WithResumablePartitionableEffectHandler(
		ctx,
		config,
		effectmodel.EffectStateCell,
		sH.handle,
	)
}

// GetAt reads the cell under key.
func GetAt[S any, K comparable](ctx context.Context, key K) (S, error) {
	return helper.GetTypedValueOf[S](func() (any, error) {
		return effect(ctx, LoadAt[K]{Key: key})
	})
}

// PutAt replaces the cell under key, creating it if absent.
func PutAt[K comparable, S any](ctx context.Context, key K, new S) error {
	_, err := effect(ctx, ReplaceAt[K, S]{Key: key, New: new})
	return err
}

// ModifyAt applies f to the cell under key as one logical step and returns
// the new value.
func ModifyAt[K comparable, S any](ctx context.Context, key K, f func(S) S) (S, error) {
	return helper.GetTypedValueOf[S](func() (any, error) {
		return effect(ctx, UpdateAt[K, S]{Key: key, F: f})
	})
}

// AssignAt replaces the focus of the cell under key with a constant.
func AssignAt[K comparable, S, A any](ctx context.Context, key K, l optics.Simple[S, A], d A) error {
	_, err := ModifyAt(ctx, key, optics.Set(l, d))
	return err
}

// OverAt maps f over the focus of the cell under key.
func OverAt[K comparable, S, A any](ctx context.Context, key K, l optics.Simple[S, A], f func(A) A) error {
	_, err := ModifyAt(ctx, key, optics.Adjust(l, f))
	return err
}

// shardedHandler owns the keyed cells. Per-key serialization comes from
// partitioned dispatch; the sync.Map covers concurrent access from workers
// handling different keys.
type shardedHandler[K comparable, S any] struct {
	cells *sync.Map
}

func (sH *shardedHandler[K, S]) handle(_ context.Context, payload Payload) (res any, err error) {
	switch payload := payload.(type) {

	case LoadAt[K]:
		v, ok := sH.cells.Load(payload.Key)
		if !ok {
			return *new(S), fmt.Errorf("%w: %v", ErrNoSuchCell, payload.Key)
		}
		return v.(S), nil

	case ReplaceAt[K, S]:
		sH.cells.Store(payload.Key, payload.New)
		return payload.New, nil

	case UpdateAt[K, S]:
		v, ok := sH.cells.Load(payload.Key)
		if !ok {
			return *new(S), fmt.Errorf("%w: %v", ErrNoSuchCell, payload.Key)
		}
		new := payload.F(v.(S))
		sH.cells.Store(payload.Key, new)
		return new, nil

	default:
		// This should never happen because we are using a sealed interface to prevent adding new types.
		// So we need to panic to avoid silent failures.
		panic(fmt.Errorf("invalid sharded state-cell operation type: %T", payload))
	}
}
