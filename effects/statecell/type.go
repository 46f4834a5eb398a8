package statecell

import "fmt"

// Payload is a sealed interface for state-cell operations.
// Only the predefined payload types can implement it.
type Payload interface {
	PartitionKey() string
	payload()
}

const ambientKey = "ambient"

var _ Payload = Load{}

// Load is the payload type for reading the ambient cell value.
type Load struct{}

func (Load) PartitionKey() string { return ambientKey }
func (Load) payload()             {}

// Replace is the payload type for unconditionally swapping in a new value.
type Replace[S any] struct {
	New S
}

func (Replace[S]) PartitionKey() string { return ambientKey }
func (Replace[S]) payload()             {}

// Update is the payload type for applying a pure function to the value.
// The whole read-apply-write runs inside the handler worker, so it is one
// logical step with no observable intermediate state.
type Update[S any] struct {
	F func(S) S
}

func (Update[S]) PartitionKey() string { return ambientKey }
func (Update[S]) payload()             {}

// Source is the payload type for obtaining the change journal channel.
type Source struct{}

func (Source) PartitionKey() string { return ambientKey }
func (Source) payload()             {}

// --- sharded keyed cells ---

// LoadAt reads the cell stored under Key.
type LoadAt[K comparable] struct {
	Key K
}

func (p LoadAt[K]) PartitionKey() string { return fmt.Sprintf("%v", p.Key) }
func (p LoadAt[K]) payload()             {}

// ReplaceAt swaps in a new value under Key, creating the cell if absent.
type ReplaceAt[K comparable, S any] struct {
	Key K
	New S
}

func (p ReplaceAt[K, S]) PartitionKey() string { return fmt.Sprintf("%v", p.Key) }
func (p ReplaceAt[K, S]) payload()             {}

// UpdateAt applies a pure function to the cell under Key as one step.
type UpdateAt[K comparable, S any] struct {
	Key K
	F   func(S) S
}

func (p UpdateAt[K, S]) PartitionKey() string { return fmt.Sprintf("%v", p.Key) }
func (p UpdateAt[K, S]) payload()             {}
