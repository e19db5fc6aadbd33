package fastbrc

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"golang.org/x/sys/unix"
)

// Mmap maps path read-only and returns the buffer plus an unmap func. The
// file descriptor is closed before returning; the mapping keeps the data
// reachable.
func Mmap(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if fi.Size() == 0 {
		return nil, nil, fmt.Errorf("mmap: %s is empty", path)
	}
	if fi.Size() != int64(int(fi.Size())) {
		return nil, nil, fmt.Errorf("mmap: %s is too large", path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap.Map: %w", err)
	}
	// Each worker makes exactly one sequential pass over its range.
	if err := unix.Madvise(m, unix.MADV_SEQUENTIAL|unix.MADV_WILLNEED); err != nil {
		m.Unmap()
		return nil, nil, fmt.Errorf("madvise: %w", err)
	}

	unmap := func() error { return m.Unmap() }
	return m, unmap, nil
}
