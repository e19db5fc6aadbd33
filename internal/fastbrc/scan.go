package fastbrc

const (
	fieldSep  = ';'
	recordSep = '\n'
)

// windowSize is the number of bytes covered by one delimiter mask.
const windowSize = 64

// delimMask returns a bitmask over w (len(w) <= windowSize) with bit i set
// iff w[i] is the field or record separator. Full windows take the
// word-at-a-time path, the final short window falls back to the byte loop.
// The two paths must produce identical masks for the same bytes, see
// TestDelimMaskWordsMatchesScalar and FuzzDelimMask.
func delimMask(w []byte) uint64 {
	if len(w) == windowSize {
		return delimMaskWords(w)
	}
	return delimMaskScalar(w)
}

func delimMaskScalar(w []byte) uint64 {
	var m uint64
	for i := 0; i < len(w); i++ {
		if w[i] == fieldSep || w[i] == recordSep {
			m |= 1 << i
		}
	}
	return m
}

const (
	lo7 = 0x7f7f7f7f7f7f7f7f
	msb = 0x8080808080808080

	fieldSepPattern  = fieldSep * 0x0101010101010101
	recordSepPattern = recordSep * 0x0101010101010101

	// movemaskMul gathers the per-byte high bits of a word into the top
	// byte of the product: bit 8i+7 lands on bit 56+i and no two
	// partial products collide, so there are no carries to corrupt it.
	movemaskMul = 0x0002040810204081
)

// matchMSB sets the high bit of every byte of x equal to the splat
// pattern c. Exact for all inputs; the shorter subtract trick has false
// positives next to a real match.
func matchMSB(x, c uint64) uint64 {
	y := x ^ c
	return ^(((y & lo7) + lo7) | y) & msb
}

func delimMaskWords(w []byte) uint64 {
	_ = w[windowSize-1]
	var m uint64
	for i := 0; i < windowSize/8; i++ {
		x := loadWord(w, i*8)
		hits := matchMSB(x, fieldSepPattern) | matchMSB(x, recordSepPattern)
		m |= hits * movemaskMul >> 56 << (i * 8)
	}
	return m
}
