package fastbrc

import (
	"fmt"
	"math/bits"
)

// FieldScanner walks a buffer and yields one (station, temperature) field
// pair per record. Delimiter masks are computed one window at a time; the
// start of the unfinished field carries across windows in prev, so a field
// straddling a window boundary needs no copy. Every span returned aliases
// the buffer and must not outlive it.
//
// Usage mirrors bufio.Scanner: Scan, then Station/Temperature, then Err.
type FieldScanner struct {
	data []byte
	prev int // start of the field currently being accumulated
	win  int // start of the window whose mask is being drained
	next int // start of the next window to scan
	mask uint64

	station []byte
	temp    []byte
	err     error
	done    bool
}

func NewFieldScanner(data []byte) *FieldScanner {
	return &FieldScanner{data: data}
}

// Scan advances to the next record. It returns false at end of input or on
// malformed input; Err tells the two apart.
func (s *FieldScanner) Scan() bool {
	if s.done {
		return false
	}
	start := s.prev
	station, ok := s.nextField()
	if !ok {
		s.done = true
		return false
	}
	if len(station) == 0 {
		s.done = true
		s.err = fmt.Errorf("empty station name at offset %d", start)
		return false
	}
	temp, ok := s.nextField()
	if !ok {
		// A station name with no temperature: the tail of the buffer
		// cannot be sliced into records.
		s.done = true
		s.err = fmt.Errorf("dangling field %q at offset %d", station, start)
		return false
	}
	s.station, s.temp = station, temp
	return true
}

func (s *FieldScanner) Station() []byte     { return s.station }
func (s *FieldScanner) Temperature() []byte { return s.temp }

func (s *FieldScanner) Err() error { return s.err }

func (s *FieldScanner) nextField() ([]byte, bool) {
	for s.mask == 0 {
		if s.next >= len(s.data) {
			// No separator left. Whatever remains is a final field
			// without a trailing terminator.
			if s.prev < len(s.data) {
				f := s.data[s.prev:]
				s.prev = len(s.data)
				return f, true
			}
			return nil, false
		}
		end := min(s.next+windowSize, len(s.data))
		s.mask = delimMask(s.data[s.next:end])
		s.win = s.next
		s.next = end
	}

	i := bits.TrailingZeros64(s.mask)
	s.mask &= s.mask - 1
	cur := s.win + i
	f := s.data[s.prev:cur]
	s.prev = cur + 1
	return f, true
}
