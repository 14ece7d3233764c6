// Package adapters provides infrastructure implementations of application adapters.
package adapters

import (
	"time"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
)

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock reporting times in loc, or UTC when loc is nil.
func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return &SystemClock{loc: loc}
}

// Now returns the current time in the clock's location.
func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

var _ adapter.Clock = (*SystemClock)(nil)
