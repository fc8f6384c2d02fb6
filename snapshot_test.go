package average

import (
	"gopkg.in/vmihailenco/msgpack.v2"
	"testing"
)

func TestSnapshotRestore(t *testing.T) {
	xs, ys := testData()

	c := NewCovariance()
	for i := range xs {
		c.Add(xs[i], ys[i])
	}

	restored := FromSnapshot(c.Snapshot())
	if restored.Len() != c.Len() {
		t.Errorf("Len() = %d, expect %d", restored.Len(), c.Len())
	}
	if restored.MeanX() != c.MeanX() || restored.MeanY() != c.MeanY() {
		t.Error("restored means differ")
	}
	if restored.SampleCovariance() != c.SampleCovariance() {
		t.Errorf("SampleCovariance() = %g, expect %g",
			restored.SampleCovariance(), c.SampleCovariance())
	}
	if restored.SampleVarianceX() != c.SampleVarianceX() ||
		restored.SampleVarianceY() != c.SampleVarianceY() {
		t.Error("restored variances differ")
	}

	// A restored estimator keeps accumulating like the original.
	c.Add(7, -7)
	restored.Add(7, -7)
	if restored.SampleCovariance() != c.SampleCovariance() {
		t.Error("restored estimator diverges after further samples")
	}
}

func TestSnapshotMsgpack(t *testing.T) {
	c := NewCovariance()
	c.Add(1, 2)
	c.Add(3, 1)
	c.Add(-2, 5)

	value, err := msgpack.Marshal(c.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	s := Snapshot{}
	if err := msgpack.Unmarshal(value, &s); err != nil {
		t.Fatal(err)
	}
	if s != c.Snapshot() {
		t.Errorf("decoded snapshot %+v, expect %+v", s, c.Snapshot())
	}
}
