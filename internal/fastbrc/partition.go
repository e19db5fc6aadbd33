package fastbrc

import (
	"bytes"
	"errors"
)

var ErrNoRecordBoundary = errors.New("no record terminator in input")

// Partition slices data into at most n contiguous record-aligned ranges
// covering the buffer exactly once. Split points start at multiples of
// len/n and snap to the byte after the next record terminator so that no
// range splits a record. The last range runs to the end of the buffer and
// absorbs the remainder; inputs with fewer records than n produce fewer
// ranges.
func Partition(data []byte, n int) ([][]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("empty input")
	}
	if n < 1 {
		n = 1
	}
	if n > 1 && bytes.IndexByte(data, recordSep) == -1 {
		// A single unterminated record cannot be split.
		return nil, ErrNoRecordBoundary
	}

	parts := make([][]byte, 0, n)
	size := len(data) / n
	start := 0
	for i := 0; i < n-1; i++ {
		target := start + size
		if target >= len(data) {
			break
		}
		off := bytes.IndexByte(data[target:], recordSep)
		if off == -1 {
			break
		}
		end := target + off + 1
		parts = append(parts, data[start:end])
		start = end
	}
	if start < len(data) {
		parts = append(parts, data[start:])
	}
	return parts, nil
}
