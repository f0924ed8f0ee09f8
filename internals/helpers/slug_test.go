package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Junior Secondary School", "junior-secondary-school"},
		{"  SS1   Science!  ", "ss1-science"},
		{"WAEC/JAMB Prep 2026", "waec-jamb-prep-2026"},
		{"---", ""},
		{"Already-Slugged", "already-slugged"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.in), tt.in)
	}
}

func TestRandomSlugSuffix(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s := RandomSlugSuffix()
		assert.Len(t, s, 6)
		for _, r := range s {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
			assert.True(t, ok, "karakter %q di luar charset", r)
		}
		seen[s] = true
	}
	// 50 percobaan harus menghasilkan lebih dari satu nilai
	assert.Greater(t, len(seen), 1)
}
