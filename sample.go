package average

import (
	"fmt"
	"strconv"
	"strings"
)

// Sample is one paired observation, optionally tagged with a series name.
type Sample struct {
	Series string
	X, Y   float64
}

func (s Sample) String() string {
	if s.Series == "" {
		return fmt.Sprintf("%g\t%g", s.X, s.Y)
	}
	return fmt.Sprintf("%s\t%g\t%g", s.Series, s.X, s.Y)
}

// ParseSample parses one tab-separated sample line, either "x\ty" or
// "series\tx\ty".
func ParseSample(line string) (Sample, error) {
	var s Sample
	terms := strings.Split(strings.TrimSpace(line), "\t")

	var xs, ys string
	switch len(terms) {
	case 2:
		xs, ys = terms[0], terms[1]
	case 3:
		s.Series = terms[0]
		xs, ys = terms[1], terms[2]
	default:
		return s, fmt.Errorf("average: expect 2 or 3 fields, got %d: %q", len(terms), strings.TrimSpace(line))
	}

	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return s, err
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return s, err
	}
	s.X, s.Y = x, y

	return s, nil
}
