package reporting

import (
	"fmt"
	"time"
)

// MonthKey identifies a calendar month in "YYYY-MM" form. It is the grid key
// every aggregation in this package is bucketed on.
type MonthKey string

// NewMonthKey builds a MonthKey from a year and month
func NewMonthKey(year int, month time.Month) MonthKey {
	return MonthKey(fmt.Sprintf("%04d-%02d", year, int(month)))
}

// MonthKeyFor returns the MonthKey of the month containing t
func MonthKeyFor(t time.Time) MonthKey {
	return NewMonthKey(t.Year(), t.Month())
}

// String returns the key in "YYYY-MM" form
func (k MonthKey) String() string {
	return string(k)
}

// Time returns the first instant of the month, or the zero time for a
// malformed key
func (k MonthKey) Time() time.Time {
	t, err := time.Parse("2006-01", string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Before reports whether k is an earlier month than other
func (k MonthKey) Before(other MonthKey) bool {
	return string(k) < string(other)
}

// MonthBucket is one cell of the calendar grid a report is aggregated on.
// Actual is true only for months that have fully elapsed; the current month
// and all future months carry planned figures.
type MonthBucket struct {
	Key    MonthKey `json:"key"`
	Label  string   `json:"label"`
	Actual bool     `json:"actual"`
}

// monthStart truncates t to the first day of its month in UTC
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// IsElapsedMonth reports whether the month identified by key lies strictly
// before the month containing now. This is the single actual-vs-planned
// threshold shared by every report builder.
func IsElapsedMonth(key MonthKey, now time.Time) bool {
	return key.Before(MonthKeyFor(now))
}

// MonthRange returns the ordered sequence of MonthBuckets covering every
// calendar month touched by the closed interval [from, to], inclusive of
// partial boundary months. A reversed interval yields an empty sequence.
func MonthRange(from, to time.Time, now time.Time) []MonthBucket {
	if to.Before(from) {
		return nil
	}

	var buckets []MonthBucket
	end := monthStart(to)
	for cur := monthStart(from); !cur.After(end); cur = cur.AddDate(0, 1, 0) {
		key := MonthKeyFor(cur)
		buckets = append(buckets, MonthBucket{
			Key:    key,
			Label:  cur.Format("Jan 2006"),
			Actual: IsElapsedMonth(key, now),
		})
	}
	return buckets
}
