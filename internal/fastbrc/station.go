package fastbrc

import "fmt"

// Station holds the running statistics for one station. Temperatures are
// fixed point: the observed value times 10.
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

// Merge folds o into s. Counts and sums add, min and max combine, so the
// result is the same whichever order tables get merged in.
func (s *Station) Merge(o Station) {
	if o.N == 0 {
		return
	}
	if s.N == 0 {
		*s = o
		return
	}
	if o.Min < s.Min {
		s.Min = o.Min
	}
	if o.Max > s.Max {
		s.Max = o.Max
	}
	s.Sum += o.Sum
	s.N += o.N
}

// num2str renders a fixed point value with one decimal without going
// through a float.
func num2str(i int16) string {
	u, d := i/10, i%10
	if i >= 0 {
		return fmt.Sprintf("%d.%d", u, d)
	}
	return fmt.Sprintf("-%d.%d", -u, -d)
}

// Summary renders min/mean/max. The mean is the only float computation in
// the whole pipeline and happens here, once per station.
func (s *Station) Summary() string {
	mean := float64(s.Sum) / 10 / float64(s.N)
	return num2str(s.Min) + "/" + fmt.Sprintf("%.1f", mean) + "/" + num2str(s.Max)
}
