package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveWindow(t *testing.T) {
	now := date(2024, time.June, 15)

	t.Run("explicit dates win over year and month", func(t *testing.T) {
		from := date(2024, time.February, 10)
		to := date(2024, time.April, 20)
		w := Filter{Year: 2023, Month: time.December, DateFrom: &from, DateTo: &to}.ResolveWindow(now)
		assert.Equal(t, from, w.From)
		assert.Equal(t, to, w.To)
	})

	t.Run("open-ended from runs to end of current month", func(t *testing.T) {
		from := date(2024, time.March, 1)
		w := Filter{DateFrom: &from}.ResolveWindow(now)
		assert.Equal(t, from, w.From)
		assert.Equal(t, date(2024, time.July, 1).Add(-time.Second), w.To)
	})

	t.Run("open-ended to starts at its month", func(t *testing.T) {
		to := date(2024, time.March, 20)
		w := Filter{DateTo: &to}.ResolveWindow(now)
		assert.Equal(t, date(2024, time.March, 1), w.From)
		assert.Equal(t, to, w.To)
	})

	t.Run("year and month cover that month", func(t *testing.T) {
		w := Filter{Year: 2024, Month: time.February}.ResolveWindow(now)
		assert.Equal(t, date(2024, time.February, 1), w.From)
		assert.Equal(t, date(2024, time.March, 1).Add(-time.Second), w.To)
	})

	t.Run("month without year anchors to current year", func(t *testing.T) {
		w := Filter{Month: time.March}.ResolveWindow(now)
		assert.Equal(t, date(2024, time.March, 1), w.From)
	})

	t.Run("bare year covers the calendar year", func(t *testing.T) {
		w := Filter{Year: 2023}.ResolveWindow(now)
		assert.Equal(t, date(2023, time.January, 1), w.From)
		assert.Equal(t, time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC), w.To)
	})

	t.Run("empty filter defaults to the current month", func(t *testing.T) {
		w := Filter{}.ResolveWindow(now)
		assert.Equal(t, date(2024, time.June, 1), w.From)
		assert.Equal(t, date(2024, time.July, 1).Add(-time.Second), w.To)
	})

	t.Run("reversed interval is kept and reports empty", func(t *testing.T) {
		from := date(2024, time.May, 1)
		to := date(2024, time.April, 1)
		w := Filter{DateFrom: &from, DateTo: &to}.ResolveWindow(now)
		assert.True(t, w.IsEmpty())
	})
}
