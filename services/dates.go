package services

import "time"

// DateOf drops the time of day from t, keeping the wall-clock date t carries.
// The result is midnight UTC so dates from different zones compare cleanly.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: DateOf(start), End: DateOf(end)}
}

func (r DateRange) Validate() error {
	if r.End.Before(r.Start) {
		return ErrEndBeforeStart
	}
	return nil
}

// Overlaps reports whether r and o share at least one day. Touching
// endpoints count as an overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.Start.After(o.End) && !r.End.Before(o.Start)
}

// Intersect returns the days r and o share, and false when they share none.
func (r DateRange) Intersect(o DateRange) (DateRange, bool) {
	if !r.Overlaps(o) {
		return DateRange{}, false
	}
	out := r
	if o.Start.After(out.Start) {
		out.Start = o.Start
	}
	if o.End.Before(out.End) {
		out.End = o.End
	}
	return out, true
}

const secondsPerDay = 24 * 60 * 60

// Len returns the number of days in the range, zero when End precedes Start.
// Both bounds are UTC midnights, so whole days are counted in seconds; a
// time.Duration would overflow past roughly 292 years.
func (r DateRange) Len() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return int((r.End.Unix()-r.Start.Unix())/secondsPerDay) + 1
}

// Days lists every date in the range in ascending order.
func (r DateRange) Days() []time.Time {
	n := r.Len()
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, r.Start.AddDate(0, 0, i))
	}
	return days
}
