package fastbrc

import (
	"bytes"
	"fmt"
)

// Table maps station names to their running statistics. Keys are compared
// by content, so spans pointing into the input buffer work directly; the
// table never copies them and must not outlive the buffer.
//
// Open addressing with linear probing. Capacity is a power of two and
// doubles once half full, which keeps updates O(1) amortized no matter how
// many distinct stations show up.
type Table struct {
	hasher  Hasher
	entries []tableEntry
	mask    uint64
	n       int
}

type tableEntry struct {
	name []byte
	hash uint64
	stat Station
}

// Entry is one station's aggregate, as returned by Entries.
type Entry struct {
	Name    []byte
	Station Station
}

const defaultTableSize = 2048

func NewTable(h Hasher) *Table {
	t, err := NewTableSize(h, defaultTableSize)
	if err != nil {
		panic(err) // defaultTableSize is a power of 2
	}
	return t
}

func NewTableSize(h Hasher, size uint64) (*Table, error) {
	// http://www.graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	if size == 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("table size must be a power of 2: %d", size)
	}
	return &Table{
		hasher:  h,
		entries: make([]tableEntry, size),
		mask:    size - 1,
	}, nil
}

// Observe records one measurement for name, creating the entry on first
// sight.
func (t *Table) Observe(name []byte, m int16) {
	t.lookup(t.hasher.Sum64(name), name).stat.NewMeasurement(m)
}

func (t *Table) lookup(h uint64, name []byte) *tableEntry {
	for i := h & t.mask; ; i = (i + 1) & t.mask {
		e := &t.entries[i]
		if e.name == nil {
			if t.n >= len(t.entries)/2 {
				t.grow()
				return t.lookup(h, name)
			}
			e.name = name
			e.hash = h
			t.n++
			return e
		}
		if e.hash == h && bytes.Equal(e.name, name) {
			return e
		}
	}
}

func (t *Table) grow() {
	old := t.entries
	t.entries = make([]tableEntry, 2*len(old))
	t.mask = uint64(len(t.entries) - 1)
	for i := range old {
		if old[i].name == nil {
			continue
		}
		j := old[i].hash & t.mask
		for t.entries[j].name != nil {
			j = (j + 1) & t.mask
		}
		t.entries[j] = old[i]
	}
}

// Merge folds other into t using the stored digests, so both tables must
// share a Hasher. Merge order never changes the result.
func (t *Table) Merge(other *Table) {
	for i := range other.entries {
		e := &other.entries[i]
		if e.name == nil {
			continue
		}
		t.lookup(e.hash, e.name).stat.Merge(e.stat)
	}
}

// Len returns the number of distinct stations.
func (t *Table) Len() int { return t.n }

// Entries returns the station aggregates in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, t.n)
	for i := range t.entries {
		if t.entries[i].name == nil {
			continue
		}
		out = append(out, Entry{Name: t.entries[i].name, Station: t.entries[i].stat})
	}
	return out
}
