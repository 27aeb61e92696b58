package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("evaluation.json", "analyze-experience")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "{{.JobTitle}}")
}

func TestGet_AllEvaluationPromptsExist(t *testing.T) {
	for _, key := range []string{
		"analyze-experience",
		"analyze-skills",
		"analyze-education",
		"generate-summary",
		"cv-payload",
		"summary-context",
	} {
		prompt, err := Get("evaluation.json", key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt, "key %s", key)
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("evaluation.json", "nonexistent-prompt")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "analyze-experience")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("evaluation.json", "nonexistent-prompt")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("Evaluate {{.Name}} for {{.Role}}", map[string]string{
		"Name": "Jane",
		"Role": "Backend Engineer",
	})

	assert.Equal(t, "Evaluate Jane for Backend Engineer", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestFormat_CVPayloadWrapsText(t *testing.T) {
	payload, err := Get("evaluation.json", "cv-payload")
	require.NoError(t, err)

	formatted := Format(payload, map[string]string{"CVText": "ten years of Go"})
	assert.Contains(t, formatted, "ten years of Go")
	assert.False(t, strings.Contains(formatted, "{{.CVText}}"))
}

func TestClearCache_ReloadsFile(t *testing.T) {
	_, err := Get("evaluation.json", "analyze-skills")
	require.NoError(t, err)

	ClearCache()

	prompt, err := Get("evaluation.json", "analyze-skills")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
}
