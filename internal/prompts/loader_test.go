package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get("analysis.json", "fit-analysis")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.CVText}}")
	assert.Contains(t, prompt, "{{.JobDescription}}")
	assert.Contains(t, prompt, "fit_score")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("analysis.json", "nonexistent")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nope.json", "fit-analysis")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("resume: {{.CVText}} job: {{.JobDescription}}", map[string]string{
		"CVText":         "text one",
		"JobDescription": "text two",
	})
	assert.Equal(t, "resume: text one job: text two", out)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("analysis.json", "missing-key") })
}
