package reporting

import "time"

// MonthBucketAccumulator is an arena of per-month rows indexed by MonthKey.
// Every report builder reduces its record streams into one; centralizing the
// keyed-map construction keeps the month grid and the actual/planned
// threshold identical across reports.
type MonthBucketAccumulator[T any] struct {
	buckets []MonthBucket
	index   map[MonthKey]int
	rows    []T
}

// NewMonthBucketAccumulator allocates a row per bucket, initialized by init
func NewMonthBucketAccumulator[T any](buckets []MonthBucket, init func(MonthBucket) T) *MonthBucketAccumulator[T] {
	acc := &MonthBucketAccumulator[T]{
		buckets: buckets,
		index:   make(map[MonthKey]int, len(buckets)),
		rows:    make([]T, len(buckets)),
	}
	for i, b := range buckets {
		acc.index[b.Key] = i
		acc.rows[i] = init(b)
	}
	return acc
}

// Update applies fn to the row for key. Records outside the grid are
// silently dropped; the report window is authoritative.
func (a *MonthBucketAccumulator[T]) Update(key MonthKey, fn func(*T)) bool {
	i, ok := a.index[key]
	if !ok {
		return false
	}
	fn(&a.rows[i])
	return true
}

// UpdateAt applies fn to the row for the month containing t
func (a *MonthBucketAccumulator[T]) UpdateAt(t time.Time, fn func(*T)) bool {
	return a.Update(MonthKeyFor(t), fn)
}

// Rows returns the rows in bucket order
func (a *MonthBucketAccumulator[T]) Rows() []T {
	return a.rows
}

// Buckets returns the underlying month grid
func (a *MonthBucketAccumulator[T]) Buckets() []MonthBucket {
	return a.buckets
}
