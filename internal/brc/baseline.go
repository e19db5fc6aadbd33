// Package brc is the slow, obviously correct reference: one buffered pass,
// a std map and strict parsing. The fast pipeline in internal/fastbrc is
// tested against its output byte for byte.
package brc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Station accumulates fixed point (value times 10) measurements.
type Station struct {
	Min int16
	Max int16
	Sum int64
	N   uint32
}

func (s *Station) NewMeasurement(m int16) {
	if s.N == 0 {
		s.Min = m
		s.Max = m
		s.Sum = int64(m)
		s.N = 1
		return
	}
	if m < s.Min {
		s.Min = m
	}
	if m > s.Max {
		s.Max = m
	}
	s.Sum += int64(m)
	s.N++
}

// ParseFixedPoint parses -?D{1,2}.D as the value times 10, rejecting
// anything outside that grammar.
func ParseFixedPoint(b []byte) (int16, error) {
	i := 0
	neg := false
	if len(b) > 0 && b[0] == '-' {
		neg = true
		i = 1
	}

	var v int16
	start := i
	for ; i < len(b) && b[i] >= '0' && b[i] <= '9'; i++ {
		v = v*10 + int16(b[i]-'0')
	}
	nd := i - start
	if nd < 1 || nd > 2 || i >= len(b) || b[i] != '.' || i != len(b)-2 || b[i+1] < '0' || b[i+1] > '9' {
		return 0, fmt.Errorf("invalid temperature %q", b)
	}
	v = v*10 + int16(b[i+1]-'0')

	if neg {
		v = -v
	}
	return v, nil
}

// Summarize reads station;temperature lines and renders the sorted
// min/mean/max summary.
func Summarize(input io.Reader) (string, error) {
	stations := make(map[string]*Station, 2048)

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		name, value, ok := bytes.Cut(line, []byte{';'})
		if !ok {
			return "", fmt.Errorf("invalid line %q", line)
		}
		m, err := ParseFixedPoint(value)
		if err != nil {
			return "", err
		}

		station, ok := stations[string(name)]
		if !ok {
			station = &Station{}
			stations[string(name)] = station
		}
		station.NewMeasurement(m)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	keys := make([]string, 0, len(stations))
	for k := range stations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		s := stations[k]
		mean := float64(s.Sum) / 10 / float64(s.N)
		fmt.Fprintf(&sb, "%s=%s/%.1f/%s", k, num2str(s.Min), mean, num2str(s.Max))
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

func num2str(i int16) string {
	u, d := i/10, i%10
	if i >= 0 {
		return fmt.Sprintf("%d.%d", u, d)
	}
	return fmt.Sprintf("-%d.%d", -u, -d)
}
