package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	for _, length := range []int{0, 1, 12, 40} {
		got, err := Generate(length)
		require.NoError(t, err)

		want := length
		if want == 0 {
			want = DefaultLength
		}
		assert.Len(t, got, want)
		for _, r := range got {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
		}
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	for _, prefix := range []string{PrefixTicket, PrefixClient, PrefixMember} {
		got, err := GenerateWithPrefix(prefix, DefaultLength)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, prefix+"_"), got)
		assert.Len(t, got, len(prefix)+1+DefaultLength)
	}
}

func TestGenerateWithPrefix_NoCollisionsInBurst(t *testing.T) {
	seen := make(map[string]struct{}, 5000)
	for range 5000 {
		got, err := GenerateWithPrefix(PrefixClient, DefaultLength)
		require.NoError(t, err)
		_, dup := seen[got]
		require.False(t, dup, "duplicate id %s", got)
		seen[got] = struct{}{}
	}
}
