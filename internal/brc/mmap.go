package brc

import (
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// NewMmapReader returns a reader over the memory mapped file.
func NewMmapReader(path string) (io.Reader, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap.Open: %w", err)
	}
	return io.NewSectionReader(m, 0, int64(m.Len())), nil
}
