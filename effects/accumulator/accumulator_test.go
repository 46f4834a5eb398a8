package accumulator_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/optic_ive_go/effects/accumulator"
	"github.com/on-the-ground/optic_ive_go/effects/log"
	"github.com/on-the-ground/optic_ive_go/optics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_AppendFollowsAppendOrder(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	ctx, endOfAccHandler := accumulator.WithEffectHandler(ctx, 1, optics.StringMonoid())
	defer endOfAccHandler()

	require.NoError(t, accumulator.AppendEffect(ctx, "a"))
	require.NoError(t, accumulator.AppendEffect(ctx, "b"))
	require.NoError(t, accumulator.AppendEffect(ctx, "c"))

	got, err := accumulator.Output[string](ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestAccumulator_SliceMonoid(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	ctx, endOfAccHandler := accumulator.WithEffectHandler(ctx, 1, optics.SliceMonoid[int]())
	defer endOfAccHandler()

	require.NoError(t, accumulator.AppendEffect(ctx, []int{1}))
	require.NoError(t, accumulator.AppendEffect(ctx, []int{2, 3}))

	got, err := accumulator.Output[[]int](ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestWhisper_FillsOnlyTheFocus(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	type record = optics.Pair[string, string]
	monoid := optics.PairMonoid(optics.StringMonoid(), optics.StringMonoid())
	ctx, endOfAccHandler := accumulator.WithEffectHandler(ctx, 1, monoid)
	defer endOfAccHandler()

	second := optics.SecondOf[string, string, string]()
	require.NoError(t, accumulator.Whisper(ctx, second, "x"))

	got, err := accumulator.Output[record](ctx)
	require.NoError(t, err)
	assert.Equal(t, optics.PairOf("", "x"), got)
}

func TestWhisper_InterleavesWithAppends(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	type record = optics.Pair[string, string]
	monoid := optics.PairMonoid(optics.StringMonoid(), optics.StringMonoid())
	ctx, endOfAccHandler := accumulator.WithEffectHandler(ctx, 1, monoid)
	defer endOfAccHandler()

	first := optics.FirstOf[string, string, string]()
	second := optics.SecondOf[string, string, string]()

	require.NoError(t, accumulator.AppendEffect(ctx, optics.PairOf("a", "")))
	require.NoError(t, accumulator.Whisper(ctx, second, "x"))
	require.NoError(t, accumulator.Whisper(ctx, first, "b"))

	got, err := accumulator.Output[record](ctx)
	require.NoError(t, err)
	assert.Equal(t, optics.PairOf("ab", "x"), got)
}

func TestAccumulator_NoHandlerPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = accumulator.AppendEffect(context.Background(), "orphan")
	})
}
