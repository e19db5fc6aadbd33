package fastbrc

import "fmt"

// ParseTemp parses a temperature matching -?D{1,2}.D into its value times
// 10, e.g. "-3.2" -> -32. The input must match that grammar exactly; the
// file format guarantees it, so nothing is validated here. ParseTempStrict
// is the checked alternative.
//
// Sign and digit-count handling use arithmetic selection instead of
// branches so the cost is the same for every input shape.
func ParseTemp(t []byte) int16 {
	// '-' is 0x2d, digits are 0x30..0x39: bit 4 of the first byte tells
	// them apart.
	neg := int16(t[0]>>4&1) ^ 1
	sign := 1 - 2*neg
	// After the optional sign, the span is 4 bytes long iff there are
	// two integer digits.
	dd := int16(len(t)) - neg - 3
	d0 := (dd*90 + 10) * int16(t[neg]-'0')
	d1 := dd * 10 * int16(t[len(t)-3]-'0')
	d2 := int16(t[len(t)-1] - '0')
	return sign * (d0 + d1 + d2)
}

// ParseTempStrict parses the same grammar as ParseTemp but rejects
// anything outside it.
func ParseTempStrict(t []byte) (int16, error) {
	i := 0
	neg := false
	if len(t) > 0 && t[0] == '-' {
		neg = true
		i = 1
	}

	var v int16
	start := i
	for ; i < len(t) && t[i] >= '0' && t[i] <= '9'; i++ {
		v = v*10 + int16(t[i]-'0')
	}
	if nd := i - start; nd < 1 || nd > 2 {
		return 0, fmt.Errorf("parse %q: want 1 or 2 integer digits, got %d", t, nd)
	}
	if i >= len(t) || t[i] != '.' {
		return 0, fmt.Errorf("parse %q: missing decimal point", t)
	}
	i++
	if i != len(t)-1 || t[i] < '0' || t[i] > '9' {
		return 0, fmt.Errorf("parse %q: want exactly one fractional digit", t)
	}
	v = v*10 + int16(t[i]-'0')

	if neg {
		v = -v
	}
	return v, nil
}
