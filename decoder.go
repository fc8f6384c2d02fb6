package average

import (
	"bufio"
	"io"
	"strings"
)

// Reader reads paired samples from a tab-separated stream, one per line.
// Blank lines and lines starting with '#' are skipped.
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	d := Reader{}
	d.r = bufio.NewReader(r)
	return &d
}

// Read returns the next sample. It returns io.EOF at the end of the stream.
func (d *Reader) Read() (s Sample, err error) {
	for {
		var line string
		line, err = d.r.ReadString('\n')
		if err != nil {
			// A final line without a newline can still carry a sample,
			// unless it is blank or a comment.
			t := strings.TrimSpace(line)
			if err == io.EOF && t != "" && !strings.HasPrefix(t, "#") {
				return ParseSample(line)
			}
			return Sample{}, err
		}

		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}

		return ParseSample(line)
	}
}
