package handlers

import (
	effectmodel "github.com/on-the-ground/optic_ive_go/effects/internal/model"

	"github.com/cespare/xxhash/v2"
)

func hash(key string) int {
	return int(xxhash.Sum64String(key))
}

func getIndexByHash(payload effectmodel.Partitionable, numChs int) int {
	switch numChs {
	case 0:
		panic("number of channels cannot be 0")
	case 1:
		return 0
	default:
		idx := hash(payload.PartitionKey()) % numChs
		if idx < 0 {
			idx += numChs
		}
		return idx
	}
}
