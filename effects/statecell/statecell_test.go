package statecell_test

import (
	"context"
	"sync"
	"testing"

	effectmodel "github.com/on-the-ground/optic_ive_go/effects/internal/model"
	"github.com/on-the-ground/optic_ive_go/effects/log"
	"github.com/on-the-ground/optic_ive_go/effects/statecell"
	"github.com/on-the-ground/optic_ive_go/optics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScopeConfig() effectmodel.EffectScopeConfig {
	return effectmodel.NewEffectScopeConfig(1, 4)
}

func TestStateCell_GetPutModify(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	ctx, endOfCellHandler := statecell.WithEffectHandler(ctx, 1, 10)
	defer endOfCellHandler()

	got, err := statecell.Get[int](ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	old, err := statecell.Put(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, old)

	new, err := statecell.Modify(ctx, func(x int) int { return x + 1 })
	require.NoError(t, err)
	assert.Equal(t, 21, new)

	got, err = statecell.Get[int](ctx)
	require.NoError(t, err)
	assert.Equal(t, 21, got)
}

func TestStateCell_ModifyIsOneLogicalStep(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	ctx, endOfCellHandler := statecell.WithEffectHandler(ctx, 4, 0)
	defer endOfCellHandler()

	const callers = 100
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_, err := statecell.Modify(ctx, func(x int) int { return x + 1 })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := statecell.Get[int](ctx)
	require.NoError(t, err)
	assert.Equal(t, callers, got)
}

func TestStateCell_Changes(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	ctx, endOfCellHandler := statecell.WithEffectHandler(ctx, 1, "a")
	defer endOfCellHandler()

	journal, err := statecell.Changes[string](ctx)
	require.NoError(t, err)

	_, err = statecell.Put(ctx, "b")
	require.NoError(t, err)

	record := <-journal
	assert.Equal(t, "a", record.Old)
	assert.Equal(t, "b", record.New)
	assert.False(t, record.Start().IsZero())
}

func TestStateCell_NoHandlerPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = statecell.Get[int](context.Background())
	})
}

func TestSharded_PerKeyCells(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	ctx, endOfCellHandler := statecell.WithShardedEffectHandler(
		ctx,
		newTestScopeConfig(),
		map[string]int{"foo": 1, "bar": 2},
	)
	defer endOfCellHandler()

	got, err := statecell.GetAt[int](ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	require.NoError(t, statecell.PutAt(ctx, "bar", 20))
	new, err := statecell.ModifyAt(ctx, "bar", func(x int) int { return x * 2 })
	require.NoError(t, err)
	assert.Equal(t, 40, new)

	_, err = statecell.GetAt[int](ctx, "missing")
	assert.ErrorIs(t, err, statecell.ErrNoSuchCell)
}

func TestSharded_PerKeyUpdatesSerialize(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	ctx, endOfCellHandler := statecell.WithShardedEffectHandler(
		ctx,
		newTestScopeConfig(),
		map[string]int{"x": 0, "y": 0},
	)
	defer endOfCellHandler()

	const perKey = 50
	var wg sync.WaitGroup
	for _, key := range []string{"x", "y"} {
		for i := 0; i < perKey; i++ {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				_, err := statecell.ModifyAt(ctx, key, func(x int) int { return x + 1 })
				assert.NoError(t, err)
			}(key)
		}
	}
	wg.Wait()

	for _, key := range []string{"x", "y"} {
		got, err := statecell.GetAt[int](ctx, key)
		require.NoError(t, err)
		assert.Equal(t, perKey, got)
	}
}

func TestSharded_SetterIntegration(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	type scores = optics.Pair[int, int]
	ctx, endOfCellHandler := statecell.WithShardedEffectHandler(
		ctx,
		newTestScopeConfig(),
		map[string]scores{"alice": optics.PairOf(1, 2)},
	)
	defer endOfCellHandler()

	first := optics.FirstOf[int, int, int]()
	require.NoError(t, statecell.AssignAt(ctx, "alice", first, 5))
	require.NoError(t, statecell.OverAt(ctx, "alice", first, func(x int) int { return x * 2 }))

	got, err := statecell.GetAt[scores](ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, optics.PairOf(10, 2), got)
}
