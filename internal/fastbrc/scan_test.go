package fastbrc

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelimMaskScalar(t *testing.T) {
	assert.Equal(t, uint64(1<<2|1<<5), delimMaskScalar([]byte("ab;cd\nx")))
	assert.Zero(t, delimMaskScalar([]byte("abcdefg")))
	assert.Zero(t, delimMaskScalar(nil))
	assert.Equal(t, uint64(1), delimMaskScalar([]byte{recordSep}))
}

func TestDelimMaskAllSeparators(t *testing.T) {
	assert.Equal(t, ^uint64(0), delimMask(bytes.Repeat([]byte{fieldSep}, windowSize)))
	assert.Equal(t, ^uint64(0), delimMask(bytes.Repeat([]byte{recordSep}, windowSize)))
	assert.Zero(t, delimMask(bytes.Repeat([]byte{'x'}, windowSize)))
}

func TestDelimMaskWordsMatchesScalar(t *testing.T) {
	w := make([]byte, windowSize)
	rng := rand.New(rand.NewSource(1))

	// realistic record bytes
	alphabet := []byte("abcXYZ;\n0123456789.-")
	for i := 0; i < 10000; i++ {
		for i := range w {
			w[i] = alphabet[rng.Intn(len(alphabet))]
		}
		require.Equal(t, delimMaskScalar(w), delimMaskWords(w), "window %q", w)
	}

	// arbitrary bytes, including the values next to the separators
	for i := 0; i < 10000; i++ {
		rng.Read(w)
		require.Equal(t, delimMaskScalar(w), delimMaskWords(w), "window %q", w)
	}
}

func FuzzDelimMask(f *testing.F) {
	f.Add([]byte("Hamburg;12.0\nOslo;-2.3\n"))
	f.Add(bytes.Repeat([]byte{';'}, windowSize))
	f.Add(make([]byte, windowSize))
	f.Fuzz(func(t *testing.T, b []byte) {
		if len(b) > windowSize {
			b = b[:windowSize]
		}
		if got, want := delimMask(b), delimMaskScalar(b); got != want {
			t.Fatalf("mask mismatch for %q: %064b != %064b", b, got, want)
		}
	})
}
