package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	for _, prefix := range []string{"save", "req"} {
		t.Run(prefix, func(t *testing.T) {
			id, err := Generate(prefix)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(id, prefix+"-"))

			part := strings.TrimPrefix(id, prefix+"-")
			assert.Len(t, part, 21)
			for _, c := range part {
				ok := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
					(c >= '0' && c <= '9') || c == '_' || c == '-'
				assert.True(t, ok, "unexpected character %q", c)
			}
		})
	}
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		id := MustGenerate("save")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
