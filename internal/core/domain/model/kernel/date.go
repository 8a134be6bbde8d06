package kernel

import (
	"time"

	"bakery/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when validating the zero Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via NewDate or DateOf")

// Date is a calendar day. It carries no zone: two Dates are equal when their
// year, month and day are equal.
//
// Internally the day is kept as midnight UTC so calendar arithmetic can reuse
// the time package without daylight saving surprises.
type Date struct {
	t time.Time
}

// NewDate builds a Date, normalising out-of-range days the way time.Date does
// (2024-02-30 becomes 2024-03-01).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses the ISO form "2006-01-02".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateOf(t), nil
}

func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddMonths moves by n calendar months and clamps to the last day of the
// target month, so 2024-01-31 plus one month is 2024-02-29.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.t.Year(), d.t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := d.t.Day()
	if day > lastDay {
		day = lastDay
	}
	return NewDate(first.Year(), first.Month(), day)
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// At returns the instant of tod on this day, in UTC.
func (d Date) At(tod TimeOfDay) time.Time {
	return d.t.Add(tod.Duration())
}

// AtHour is At with a whole hour, used when fabricating timestamps.
func (d Date) AtHour(hour, minute int) time.Time {
	return d.t.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	if d.t.IsZero() {
		return "0000-00-00"
	}
	return d.t.Format(dateLayout)
}
