package reservation

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("check-out date must be after check-in date")

// StayPeriod is a pair of calendar dates. Times are normalized to midnight
// UTC so nights are whole-day differences regardless of how the caller built
// the time values.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := toDate(checkIn)
	out := toDate(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidDateRange
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

// Nights is the whole-day difference between the dates; always >= 1.
func (p StayPeriod) Nights() int64 {
	return int64(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// StartsOnOrBefore reports whether the stay begins on the given calendar date
// or earlier. Used for the occupy-on-create rule.
func (p StayPeriod) StartsOnOrBefore(date time.Time) bool {
	return !p.checkIn.After(toDate(date))
}
