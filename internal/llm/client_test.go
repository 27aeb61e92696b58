package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/genai"
)

func TestExtractText_JoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonStop,
			Content: &genai.Content{
				Parts: []*genai.Part{
					{Text: `{"skills":`},
					{Text: ` []}`},
				},
			},
		}},
	}

	text, err := extractText(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"skills": []}`, text)
}

func TestExtractText_NoCandidates(t *testing.T) {
	var refusal *RefusalError

	_, err := extractText(nil)
	require.ErrorAs(t, err, &refusal)

	_, err = extractText(&genai.GenerateContentResponse{})
	assert.ErrorAs(t, err, &refusal)
}

func TestExtractText_NonStopFinishReason(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonSafety,
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: "partial"}},
			},
		}},
	}

	var refusal *RefusalError
	_, err := extractText(resp)
	require.ErrorAs(t, err, &refusal)
	assert.Contains(t, refusal.Reason, "finish reason")
}

func TestExtractText_EmptyContent(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonStop,
			Content:      &genai.Content{Parts: []*genai.Part{{Text: ""}}},
		}},
	}

	_, err := extractText(resp)

	var refusal *RefusalError
	assert.ErrorAs(t, err, &refusal)
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(t.Context(), "  ", Options{}, nil)
	assert.Error(t, err)
}
