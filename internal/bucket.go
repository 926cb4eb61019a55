package internal

import "math"

// DefaultBucketCount is the number of angular buckets used unless configured
// otherwise. Lookups stay near O(1) as long as points are spread roughly
// evenly in angle; heavy clustering lengthens the walk inside a bucket.
const DefaultBucketCount = 1 << 10

const minBucketCount = 16

// ScaledBucketCount picks a bucket count for n points: the power of two
// nearest sqrt(n), and never fewer than minBucketCount.
func ScaledBucketCount(n int) int {
	target := math.Sqrt(float64(n))
	count := minBucketCount
	for float64(count) < target {
		count <<= 1
	}
	// Step back down if the smaller power of two is closer
	if count > minBucketCount && target-float64(count/2) < float64(count)-target {
		count /= 2
	}
	return count
}

// Maps an order rank to its bucket. Monotonic in rank, and the buckets
// partition the rank range contiguously.
func bucketOf(rank, bucketCount, pointCount int) int {
	return rank * bucketCount / pointCount
}
