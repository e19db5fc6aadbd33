package fastbrc

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher digests a station name. Implementations must be pure: equal byte
// content gives equal digests. Both tables of a merge must use the same
// Hasher.
type Hasher interface {
	Sum64([]byte) uint64
}

const mixSeed = 0x517cc1b727220a95

// MixHash is a multiply-xor mixer for short variable-length keys: each
// 8, 4 or 1 byte chunk is xored into the state, which is then multiplied
// by a fixed odd constant. Not collision resistant, just fast and well
// distributed for a few hundred city names.
type MixHash struct{}

func (MixHash) Sum64(b []byte) uint64 {
	var h uint64
	for len(b) >= 8 {
		h = (h ^ binary.LittleEndian.Uint64(b)) * mixSeed
		b = b[8:]
	}
	if len(b) >= 4 {
		h = (h ^ uint64(binary.LittleEndian.Uint32(b))) * mixSeed
		b = b[4:]
	}
	for _, c := range b {
		h = (h ^ uint64(c)) * mixSeed
	}
	return h
}

// XXHash is the well vetted drop-in alternative.
type XXHash struct{}

func (XXHash) Sum64(b []byte) uint64 { return xxhash.Sum64(b) }
