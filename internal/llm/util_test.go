package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare json untouched", in: `{"fit_score": 80}`, want: `{"fit_score": 80}`},
		{name: "json fence", in: "```json\n{\"fit_score\": 80}\n```", want: `{"fit_score": 80}`},
		{name: "generic fence", in: "```\n{\"fit_score\": 80}\n```", want: `{"fit_score": 80}`},
		{name: "surrounding whitespace", in: "  \n```json\n{}\n```\n  ", want: "{}"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.in))
		})
	}
}
