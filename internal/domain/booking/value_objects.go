package booking

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

// DateRange is a closed calendar-date interval [start, end]. Both
// endpoints are normalized to midnight UTC; a one-day booking has
// start == end.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s := NormalizeDate(start)
	e := NormalizeDate(end)
	if e.Before(s) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

func SingleDay(day time.Time) DateRange {
	d := NormalizeDate(day)
	return DateRange{start: d, end: d}
}

func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Overlaps is the single conflict predicate for the whole system:
// closed intervals, so a booking ending on day D conflicts with one
// starting on day D.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

func (r DateRange) Contains(day time.Time) bool {
	return r.Overlaps(SingleDay(day))
}

func (r DateRange) Equal(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

// Days returns the inclusive sequence of calendar dates from start to end.
func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0, r.LengthDays())
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r DateRange) LengthDays() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

func (r DateRange) String() string {
	return r.start.Format(time.DateOnly) + ".." + r.end.Format(time.DateOnly)
}

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewReference builds a human-shareable booking reference of the form
// PREFIX-YYYYMMDD-XXXX. The random suffix keeps collisions unlikely;
// the bookings.reference unique constraint is the source of truth.
func NewReference(prefix string, now time.Time) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; fall back
		// to a nanosecond suffix rather than panicking here.
		return fmt.Sprintf("%s-%s-%04d", prefix, now.Format("20060102"), now.Nanosecond()%10000)
	}
	for i := range buf {
		buf[i] = referenceAlphabet[int(buf[i])%len(referenceAlphabet)]
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), string(buf))
}
