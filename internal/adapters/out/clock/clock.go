// Package clock provides ports.Clock implementations.
package clock

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
)

// SystemClock reads the wall clock in a fixed location, so that "today" is
// the bakery's calendar day rather than the server's.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock in loc; a nil loc means UTC.
func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return &SystemClock{loc: loc}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *SystemClock) Today() kernel.Date {
	return kernel.DateOf(c.Now())
}

// FixedClock always reports the same instant.
type FixedClock struct {
	now time.Time
}

func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

func (c *FixedClock) Now() time.Time {
	return c.now
}

func (c *FixedClock) Today() kernel.Date {
	return kernel.DateOf(c.now)
}
