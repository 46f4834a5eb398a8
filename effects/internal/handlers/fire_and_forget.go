package handlers

import (
	"context"
	"log"

	effectmodel "github.com/on-the-ground/optic_ive_go/effects/internal/model"
)

func NewFireAndForgetHandler[P any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	ctx, cancelFn := context.WithCancel(ctx)
	return FireAndForgetHandler[P]{
		effectScope: newEffectScope(
			NewSingleQueue(
				ctx,
				bufferSize,
				func(ctx context.Context, msg FireAndForgetEffectMessage[P]) {
					handleFn(ctx, msg.Payload)
				},
			),
			func() {
				teardown()
				cancelFn()
			},
		),
	}
}

func NewPartitionableFireAndForgetHandler[P effectmodel.Partitionable](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	ctx, cancelFn := context.WithCancel(ctx)
	return FireAndForgetHandler[P]{
		effectScope: newEffectScope(
			NewPartitionedQueue(
				ctx,
				config.NumWorkers,
				config.BufferSize,
				func(ctx context.Context, msg FireAndForgetEffectMessage[P]) {
					handleFn(ctx, msg.Payload)
				},
			),
			func() {
				teardown()
				cancelFn()
			},
		),
	}
}

type FireAndForgetHandler[P any] struct {
	*effectScope[FireAndForgetEffectMessage[P]]
}

func (ffh FireAndForgetHandler[P]) FireAndForgetEffect(ctx context.Context, payload P) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf(
				"panic while sending to closed channel for effect: %+v",
				map[string]interface{}{
					"effectId": ffh.EffectId,
					"payload":  payload,
				},
			)
		}
	}()

	msg := FireAndForgetEffectMessage[P]{
		Payload: payload,
	}
	select {
	case <-ctx.Done():
	case ffh.dispatcher.GetChannelOf(msg) <- msg:
	}
}

var _ effectmodel.Partitionable = FireAndForgetEffectMessage[any]{}

type FireAndForgetEffectMessage[P any] struct {
	Payload P
}

func (ffem FireAndForgetEffectMessage[P]) PartitionKey() string {
	if p, ok := any(ffem.Payload).(effectmodel.Partitionable); ok {
		return p.PartitionKey()
	}
	return ""
}
