package kernel

import (
	"fmt"
	"time"

	"bakery/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall clock time within a day with minute precision.
type TimeOfDay struct {
	hour   int
	minute int
}

// NewTimeOfDay validates hour in [0,23] and minute in [0,59].
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// MustTimeOfDay is NewTimeOfDay for constants and panics on invalid input.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	tod, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return tod
}

// TimeOfDayFromMinutes restores a value stored as minutes since midnight.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minutes since midnight", minutes, 0, minutesPerDay-1)
	}
	return TimeOfDay{hour: minutes / 60, minute: minutes % 60}, nil
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.hour*60 + t.minute
}

// Duration returns the offset from midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Minutes()) * time.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}
