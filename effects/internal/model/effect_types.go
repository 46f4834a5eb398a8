package effectmodel

import "fmt"

type EffectEnum string

const (
	EffectLog         EffectEnum = "optic_ive_go_effect_enum_log"
	EffectStateCell   EffectEnum = "optic_ive_go_effect_enum_statecell"
	EffectAccumulator EffectEnum = "optic_ive_go_effect_enum_accumulator"
)

// ErrNoEffectHandler is returned (wrapped) when a perform call finds no
// handler registered in the context for the requested effect enum.
var ErrNoEffectHandler = fmt.Errorf("no effect handler registered for this effect")

type EffectScopeConfig struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1 (per-partition worker fan-out)
}

func NewEffectScopeConfig(bufferSize int, numWorkers int) EffectScopeConfig {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return EffectScopeConfig{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

// Partitionable payloads carry a key used to route them to a fixed worker,
// which gives per-key ordering and per-key serialized handling.
type Partitionable interface {
	PartitionKey() string
}
