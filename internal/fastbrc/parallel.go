package fastbrc

import (
	"errors"
	"fmt"
	"sync"
)

// Run builds one table per partition concurrently and folds them into one.
// The worker count is fixed before partitioning; the buffer is shared read
// only, and every worker owns its table exclusively until the merge.
func Run(data []byte, nworkers int) (*Table, error) {
	parts, err := Partition(data, nworkers)
	if err != nil {
		return nil, fmt.Errorf("partition: %w", err)
	}

	tables := make([]*Table, len(parts))
	errs := make([]error, len(parts))
	wg := sync.WaitGroup{}
	wg.Add(len(parts))
	for i := range parts {
		i := i
		go func() {
			defer wg.Done()
			tables[i], errs[i] = buildTable(parts[i])
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	merged := tables[0]
	for _, t := range tables[1:] {
		merged.Merge(t)
	}
	return merged, nil
}

// buildTable is the per-partition pass: delimiter masks feed the field
// scanner, temperatures parse to fixed point, stats land in a private
// table.
func buildTable(part []byte) (*Table, error) {
	t := NewTable(MixHash{})
	fs := NewFieldScanner(part)
	for fs.Scan() {
		t.Observe(fs.Station(), ParseTemp(fs.Temperature()))
	}
	if err := fs.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
