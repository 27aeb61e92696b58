package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain json untouched",
			input:    `{"skills": []}`,
			expected: `{"skills": []}`,
		},
		{
			name:     "json fence",
			input:    "```json\n{\"skills\": []}\n```",
			expected: `{"skills": []}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"skills\": []}\n```",
			expected: `{"skills": []}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"a\": 1}\n  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "short", truncateForLog("short", 100))
	assert.Equal(t, "abc...", truncateForLog("abcdefgh", 3))
	assert.Equal(t, "", truncateForLog("anything", 0))
	// rune-aware, not byte-aware
	assert.Equal(t, "héllo...", truncateForLog("héllo wörld", 5))
}
