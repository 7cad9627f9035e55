package digits

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

type Result struct {
	Offset   int64
	Computed byte
	Expected byte
	// The solution file ends before the offset
	Missing bool
}

func (r Result) OK() bool {
	return !r.Missing && r.Computed == r.Expected
}

type Report []Result

func (r Report) Failures() int {
	failures := 0
	for _, result := range r {
		if !result.OK() {
			failures++
		}
	}
	return failures
}

// Check CharAt against a solution file at each of the offsets. Offsets past the
// end of the file are reported as failures rather than errors.
func Compare(solution io.ReaderAt, offsets []int64) (Report, error) {
	report := make(Report, 0, len(offsets))
	buf := make([]byte, 1)
	for _, offset := range offsets {
		computed, err := CharAt(offset)
		if err != nil {
			return nil, err
		}
		result := Result{Offset: offset, Computed: computed}

		n, err := solution.ReadAt(buf, offset)
		switch {
		case n == 1:
			result.Expected = buf[0]
		case err == io.EOF:
			result.Missing = true
		default:
			return nil, errors.Wrapf(err, "reading solution at offset %d", offset)
		}
		report = append(report, result)
	}
	return report, nil
}

func (r Report) Write(w io.Writer, au aurora.Aurora) error {
	for _, result := range r {
		expected := string(result.Expected)
		if result.Missing {
			expected = "<eof>"
		}
		status := au.Green("SUCCESS")
		if !result.OK() {
			status = au.Red("FAILURE")
		}
		_, err := fmt.Fprintf(w, "charAt( %d ) = %c  solution file = %s : %s\n",
			result.Offset, result.Computed, expected, status)
		if err != nil {
			return errors.Wrap(err, "writing report")
		}
	}
	return nil
}

// Count consecutive offsets starting at start.
func OffsetRange(start int64, count int) []int64 {
	offsets := make([]int64, count)
	for i := range offsets {
		offsets[i] = start + int64(i)
	}
	return offsets
}

// Runs near the start of the string, and near each of the powers of ten where
// an off by one in block skipping would show up.
func DefaultOffsets() []int64 {
	var offsets []int64
	offsets = append(offsets, OffsetRange(0, 15)...)
	offsets = append(offsets, OffsetRange(1000000, 15)...)
	offsets = append(offsets, OffsetRange(1000000000, 35)...)
	offsets = append(offsets, OffsetRange(1000000000000, 25)...)
	return offsets
}
