package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgingBucketFor(t *testing.T) {
	cases := []struct {
		days   int
		bucket AgingBucket
	}{
		{-5, Aging0To30},
		{0, Aging0To30},
		{1, Aging0To30},
		{30, Aging0To30},
		{31, Aging31To60},
		{60, Aging31To60},
		{61, Aging61To90},
		{90, Aging61To90},
		{91, AgingOver90},
		{365, AgingOver90},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.bucket, AgingBucketFor(tc.days), "days=%d", tc.days)
	}
}

func TestAllAgingBuckets(t *testing.T) {
	buckets := AllAgingBuckets()
	assert.Equal(t, []AgingBucket{Aging0To30, Aging31To60, Aging61To90, AgingOver90}, buckets)
}
