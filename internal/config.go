package internal

// Config tunes hull construction. The zero value gives the defaults.
type Config struct {
	// Number of angular buckets. Zero means DefaultBucketCount, and a negative
	// value means ScaledBucketCount for the number of points.
	Buckets int
	// Pseudo-angle function used to rank points. Nil means PseudoAngle.
	Angle AngleFunc
}

func (c Config) bucketCount(pointCount int) int {
	switch {
	case c.Buckets == 0:
		return DefaultBucketCount
	case c.Buckets < 0:
		return ScaledBucketCount(pointCount)
	}
	return c.Buckets
}

func (c Config) angle() AngleFunc {
	if c.Angle == nil {
		return PseudoAngle
	}
	return c.Angle
}
