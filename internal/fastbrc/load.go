//go:build !unsafescan

package fastbrc

import "encoding/binary"

func loadWord(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i:])
}
