package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBucketAccumulator(t *testing.T) {
	now := date(2024, time.June, 1)
	buckets := MonthRange(date(2024, time.January, 1), date(2024, time.March, 31), now)

	t.Run("initializes one row per bucket in grid order", func(t *testing.T) {
		acc := NewMonthBucketAccumulator(buckets, func(b MonthBucket) string { return b.Key.String() })
		require.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, acc.Rows())
		assert.Equal(t, buckets, acc.Buckets())
	})

	t.Run("updates accumulate into the keyed row", func(t *testing.T) {
		acc := NewMonthBucketAccumulator(buckets, func(MonthBucket) int { return 0 })
		assert.True(t, acc.Update(MonthKey("2024-02"), func(v *int) { *v += 5 }))
		assert.True(t, acc.UpdateAt(date(2024, time.February, 28), func(v *int) { *v += 2 }))
		assert.Equal(t, []int{0, 7, 0}, acc.Rows())
	})

	t.Run("records outside the grid are dropped", func(t *testing.T) {
		acc := NewMonthBucketAccumulator(buckets, func(MonthBucket) int { return 0 })
		assert.False(t, acc.Update(MonthKey("2024-04"), func(v *int) { *v++ }))
		assert.False(t, acc.UpdateAt(date(2023, time.December, 31), func(v *int) { *v++ }))
		assert.Equal(t, []int{0, 0, 0}, acc.Rows())
	})
}
