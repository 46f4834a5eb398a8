package accumulator

// Payload is a sealed interface for accumulator operations.
// Only the predefined payload types can implement it.
type Payload interface {
	PartitionKey() string
	payload()
}

var _ Payload = Snapshot{}

// Append is the payload type for combining a value into the accumulated output.
type Append[W any] struct {
	Value W
}

func (Append[W]) PartitionKey() string { return "unpartitioned" }
func (Append[W]) payload()             {}

// Tell is the payload type behind Whisper: Fill is applied to a fresh
// identity element of the whole type, and the filled whole is combined into
// the accumulated output — synthesize, set, append as one step.
type Tell[W any] struct {
	Fill func(W) W
}

func (Tell[W]) PartitionKey() string { return "unpartitioned" }
func (Tell[W]) payload()             {}

// Snapshot is the payload type for reading the accumulated output.
type Snapshot struct{}

func (Snapshot) PartitionKey() string { return "unpartitioned" }
func (Snapshot) payload()             {}
