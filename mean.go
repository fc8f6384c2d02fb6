package average

// Mean estimates the mean of a stream of values in a single pass, keeping
// only a count and the current estimate.
type Mean struct {
	mean float64
	n    uint64
}

// NewMean creates an empty mean estimator.
func NewMean() *Mean {
	return &Mean{}
}

// Add folds a new value into the estimate.
func (m *Mean) Add(x float64) {
	m.increment()
	m.addInner((x - m.mean) / float64(m.n))
}

// increment bumps the sample count. It does not update anything else.
func (m *Mean) increment() {
	m.n++
}

// addInner applies an already divided difference from the mean, assuming
// the sample count was already incremented.
func (m *Mean) addInner(delta float64) {
	m.mean += delta
}

// append merges another mean estimator into this one.
func (m *Mean) append(m1 *Mean) {
	if m1.n == 0 {
		return
	}
	n := m.n + m1.n
	m.mean += (m1.mean - m.mean) * float64(m1.n) / float64(n)
	m.n = n
}

// IsEmpty determines whether the sample is empty.
func (m *Mean) IsEmpty() bool {
	return m.n == 0
}

// Len returns the sample size.
func (m *Mean) Len() uint64 {
	return m.n
}

// Mean returns the current estimate. Returns 0 for an empty sample.
func (m *Mean) Mean() float64 {
	return m.mean
}
