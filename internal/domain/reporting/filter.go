package reporting

import (
	"time"

	"github.com/google/uuid"
)

// Filter narrows a report to a time window, an organization and/or an order
// (client engagement). Zero values mean "no restriction".
type Filter struct {
	Year           int
	Month          time.Month
	DateFrom       *time.Time
	DateTo         *time.Time
	OrganizationID *uuid.UUID
	OrderID        *uuid.UUID
}

// Window is the resolved closed date interval a report covers
type Window struct {
	From time.Time
	To   time.Time
}

// IsEmpty reports whether the window covers no time at all
func (w Window) IsEmpty() bool {
	return w.To.Before(w.From)
}

// ResolveWindow derives the report window from the filter. Explicit dates win
// over year/month; a month filter needs a year to anchor it; a bare year
// covers the full calendar year; with nothing set the current month is used.
// An explicitly reversed interval is kept as-is so builders emit empty,
// well-typed results instead of failing.
func (f Filter) ResolveWindow(now time.Time) Window {
	if f.DateFrom != nil && f.DateTo != nil {
		return Window{From: *f.DateFrom, To: *f.DateTo}
	}
	if f.DateFrom != nil {
		return Window{From: *f.DateFrom, To: endOfMonth(now)}
	}
	if f.DateTo != nil {
		return Window{From: monthStart(*f.DateTo), To: *f.DateTo}
	}

	year := f.Year
	if year == 0 {
		year = now.Year()
		if f.Month == 0 {
			// No date hints at all: default to the current month.
			return Window{From: monthStart(now), To: endOfMonth(now)}
		}
	}
	if f.Month != 0 {
		from := time.Date(year, f.Month, 1, 0, 0, 0, 0, time.UTC)
		return Window{From: from, To: endOfMonth(from)}
	}
	return Window{
		From: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
}

// endOfMonth returns the last instant of the month containing t
func endOfMonth(t time.Time) time.Time {
	return monthStart(t).AddDate(0, 1, 0).Add(-time.Second)
}
