package effects

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan stamps journal records emitted by the statecell context.
type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

const epsilon = time.Millisecond

// Now returns a span bracketing the current instant.
func Now() TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
}

type TimeBounded interface {
	TimeSpan() TimeSpan
}
