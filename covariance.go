package average

// Covariance estimates the covariance of two paired streams of values in a
// single pass, along with the mean and variance of each stream. It keeps two
// mean estimators and three co-moment sums, so memory stays constant no
// matter how long the stream is.
//
// The update rule is Welford's algorithm generalized to two variables: it
// accumulates sums of deviations from the running means instead of raw sums
// of squares, which keeps the estimates stable when the means are large
// relative to the variances.
type Covariance struct {
	avgX Mean
	avgY Mean
	// sum2 accumulates cross-products of deviations; sum2X and sum2Y
	// accumulate squared deviations, all scaled by n*(n-1).
	sum2  float64
	sum2X float64
	sum2Y float64
}

// NewCovariance creates an empty covariance estimator.
func NewCovariance() *Covariance {
	return &Covariance{}
}

// Add folds a new pair of observations into the estimator.
func (c *Covariance) Add(x, y float64) {
	c.increment()
	// The counts are already bumped, but the means are still the old ones.
	deltaX := (x - c.avgX.Mean()) / float64(c.avgX.Len())
	deltaY := (y - c.avgY.Mean()) / float64(c.avgY.Len())
	c.addInner(deltaX, deltaY)
}

// increment bumps the sample count of both sub-estimators. It does not
// update anything else.
func (c *Covariance) increment() {
	c.avgX.increment()
	c.avgY.increment()
}

// addInner applies already divided differences from the means, assuming the
// sample counts were already incremented. Scaling the sums by n*(n-1) keeps
// the per-sample cost at the two divisions done by the caller.
func (c *Covariance) addInner(deltaX, deltaY float64) {
	n := float64(c.avgX.Len())
	c.avgX.addInner(deltaX)
	c.avgY.addInner(deltaY)

	n1 := n * (n - 1)
	c.sum2 += deltaX * deltaY * n1
	c.sum2X += deltaX * deltaX * n1
	c.sum2Y += deltaY * deltaY * n1
}

// Append merges another estimator into this one, as if its samples had been
// added here, using the pairwise combination of Chan et al.
func (c *Covariance) Append(c1 *Covariance) {
	if c1.avgX.n == 0 {
		return
	}
	if c.avgX.n == 0 {
		*c = *c1
		return
	}

	nA := float64(c.avgX.n)
	nB := float64(c1.avgX.n)
	w := nA * nB / (nA + nB)
	deltaX := c1.avgX.mean - c.avgX.mean
	deltaY := c1.avgY.mean - c.avgY.mean

	c.sum2 += c1.sum2 + deltaX*deltaY*w
	c.sum2X += c1.sum2X + deltaX*deltaX*w
	c.sum2Y += c1.sum2Y + deltaY*deltaY*w
	c.avgX.append(&c1.avgX)
	c.avgY.append(&c1.avgY)
}

// IsEmpty determines whether the sample is empty.
func (c *Covariance) IsEmpty() bool {
	return c.avgX.IsEmpty() || c.avgY.IsEmpty()
}

// Len returns the sample size.
func (c *Covariance) Len() uint64 {
	return c.avgX.Len()
}

// MeanX returns the current mean of the X stream. Returns 0 for an empty
// sample.
func (c *Covariance) MeanX() float64 {
	return c.avgX.Mean()
}

// MeanY returns the current mean of the Y stream. Returns 0 for an empty
// sample.
func (c *Covariance) MeanY() float64 {
	return c.avgY.Mean()
}

// SampleCovariance returns the unbiased sample covariance. Returns 0 for
// fewer than two samples.
func (c *Covariance) SampleCovariance() float64 {
	n := c.avgX.Len()
	if n < 2 {
		return 0
	}
	return c.sum2 / float64(n-1)
}

// SampleVarianceX returns the unbiased sample variance of the X stream.
// Returns 0 for fewer than two samples.
func (c *Covariance) SampleVarianceX() float64 {
	n := c.avgX.Len()
	if n < 2 {
		return 0
	}
	return c.sum2X / float64(n-1)
}

// SampleVarianceY returns the unbiased sample variance of the Y stream.
// Returns 0 for fewer than two samples.
func (c *Covariance) SampleVarianceY() float64 {
	n := c.avgY.Len()
	if n < 2 {
		return 0
	}
	return c.sum2Y / float64(n-1)
}
