//go:build unsafescan

package fastbrc

import "unsafe"

// Unchecked variant of loadWord for little-endian targets. Callers
// guarantee i+8 <= len(b); the default build and FuzzDelimMask keep the
// two variants honest against each other.
func loadWord(b []byte, i int) uint64 {
	return *(*uint64)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), i))
}
