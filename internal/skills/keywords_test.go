package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "no recognized skills",
			text: "I enjoy hiking and photography",
			want: nil,
		},
		{
			name: "case insensitive",
			text: "experienced in PYTHON and docker",
			want: []string{"Python", "Docker"},
		},
		{
			name: "vocabulary order not text order",
			text: "AWS first, then Python",
			want: []string{"Python", "AWS"},
		},
		{
			name: "substring matching",
			text: "built services with PostgreSQL",
			// PostgreSQL contains "sql", so SQL also matches.
			want: []string{"SQL", "PostgreSQL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.text))
		})
	}
}

func TestMatchSet(t *testing.T) {
	set := MatchSet("Python and AWS")
	assert.Equal(t, map[string]string{"python": "Python", "aws": "AWS"}, set)

	assert.Nil(t, MatchSet("nothing relevant"))
}

func TestCanonicalHasNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, skill := range Canonical {
		assert.False(t, seen[skill], "duplicate vocabulary entry %q", skill)
		seen[skill] = true
	}
}
