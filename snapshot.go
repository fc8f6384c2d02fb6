package average

// Snapshot is the exported state of a Covariance estimator, suitable for
// encoding with msgpack or JSON. Restoring a snapshot reproduces every query
// result exactly.
type Snapshot struct {
	N     uint64
	MeanX float64
	MeanY float64
	Sum2  float64
	Sum2X float64
	Sum2Y float64
}

// Snapshot captures the current state of the estimator.
func (c *Covariance) Snapshot() Snapshot {
	return Snapshot{
		N:     c.avgX.Len(),
		MeanX: c.avgX.Mean(),
		MeanY: c.avgY.Mean(),
		Sum2:  c.sum2,
		Sum2X: c.sum2X,
		Sum2Y: c.sum2Y,
	}
}

// FromSnapshot restores an estimator captured by Snapshot.
func FromSnapshot(s Snapshot) *Covariance {
	c := NewCovariance()
	c.avgX = Mean{mean: s.MeanX, n: s.N}
	c.avgY = Mean{mean: s.MeanY, n: s.N}
	c.sum2 = s.Sum2
	c.sum2X = s.Sum2X
	c.sum2Y = s.Sum2Y
	return c
}
