package reporting

// AgingBucket classifies an outstanding receivable by how many days past its
// due date it is
type AgingBucket string

const (
	Aging0To30  AgingBucket = "0-30"
	Aging31To60 AgingBucket = "31-60"
	Aging61To90 AgingBucket = "61-90"
	AgingOver90 AgingBucket = "90+"
)

// String returns the string representation of the aging bucket
func (b AgingBucket) String() string {
	return string(b)
}

// AllAgingBuckets returns the buckets in ascending age order
func AllAgingBuckets() []AgingBucket {
	return []AgingBucket{Aging0To30, Aging31To60, Aging61To90, AgingOver90}
}

// AgingBucketFor classifies daysOverdue into a bucket. Boundaries are
// inclusive on the upper end. Invoices not yet due (zero or negative
// daysOverdue) land in "0-30" alongside freshly overdue ones; there is no
// separate not-yet-due bucket.
func AgingBucketFor(daysOverdue int) AgingBucket {
	switch {
	case daysOverdue <= 30:
		return Aging0To30
	case daysOverdue <= 60:
		return Aging31To60
	case daysOverdue <= 90:
		return Aging61To90
	default:
		return AgingOver90
	}
}
