package fastbrc

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/twmb/murmur3"
	"github.com/zeebo/xxh3"
)

func TestMixHash(t *testing.T) {
	h := MixHash{}

	assert.Equal(t, h.Sum64([]byte("Hamburg")), h.Sum64([]byte("Hamburg")))
	assert.NotEqual(t, h.Sum64([]byte("Hamburg")), h.Sum64([]byte("Hamburh")))

	// keys on either side of the 8/4/1 chunk boundaries must all hash
	// differently
	keys := []string{
		"a", "ab", "abc", "abcd", "abcde", "abcdef", "abcdefg",
		"abcdefgh", "abcdefghi", "abcdefghij",
		"abcdefghijkl", "abcdefghijklm",
		"abcdefghijklmnop", "abcdefghijklmnopq",
	}
	seen := make(map[uint64]string, len(keys))
	for _, k := range keys {
		d := h.Sum64([]byte(k))
		prev, dup := seen[d]
		assert.Falsef(t, dup, "collision between %q and %q", k, prev)
		seen[d] = k
	}
}

func TestXXHashMatchesLibrary(t *testing.T) {
	assert.Equal(t, xxhash.Sum64String("Hamburg"), XXHash{}.Sum64([]byte("Hamburg")))
}

func benchmarkHasher(b *testing.B, fn func([]byte) uint64) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, name := range benchNames {
			_ = fn(name)
		}
	}
}

func BenchmarkMixHash(b *testing.B) { benchmarkHasher(b, MixHash{}.Sum64) }
func BenchmarkXXHash(b *testing.B)  { benchmarkHasher(b, xxhash.Sum64) }
func BenchmarkXXH3(b *testing.B)    { benchmarkHasher(b, xxh3.Hash) }
func BenchmarkMurmur3(b *testing.B) { benchmarkHasher(b, murmur3.Sum64) }
