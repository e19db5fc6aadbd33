package fastbrc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionInvariants(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&sb, "station-%d;%d.%d\n", i%17, i%100, i%10)
	}
	data := []byte(sb.String())

	for _, n := range []int{1, 2, 3, 4, 7, 8, 16, 50} {
		parts, err := Partition(data, n)
		require.NoError(t, err, "n=%d", n)
		require.NotEmpty(t, parts)
		assert.LessOrEqual(t, len(parts), n)

		// contiguous, non-overlapping, record aligned, covering
		rejoined := make([]byte, 0, len(data))
		for i, p := range parts {
			require.NotEmpty(t, p, "n=%d part=%d", n, i)
			if i < len(parts)-1 {
				assert.Equal(t, byte(recordSep), p[len(p)-1], "n=%d part=%d", n, i)
			}
			rejoined = append(rejoined, p...)
		}
		assert.Equal(t, data, rejoined, "n=%d", n)
	}
}

func TestPartitionSmallBuffer(t *testing.T) {
	data := []byte("Hamburg;12.0\nHamburg;8.5\nOslo;-2.3\n")
	parts, err := Partition(data, 3)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, "Hamburg;12.0\n", string(parts[0]))
	assert.Equal(t, "Hamburg;8.5\n", string(parts[1]))
	assert.Equal(t, "Oslo;-2.3\n", string(parts[2]))
}

func TestPartitionMoreWorkersThanRecords(t *testing.T) {
	data := []byte("Oslo;-2.3\n")
	parts, err := Partition(data, 8)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{data}, parts)
}

func TestPartitionErrors(t *testing.T) {
	_, err := Partition(nil, 4)
	assert.Error(t, err)

	_, err = Partition([]byte("one line without a terminator"), 4)
	assert.ErrorIs(t, err, ErrNoRecordBoundary)

	// a single worker accepts an unterminated final record
	parts, err := Partition([]byte("Oslo;-2.3"), 1)
	require.NoError(t, err)
	assert.Len(t, parts, 1)
}
