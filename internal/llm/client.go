// Package llm provides the Gemini client used for structured extraction.
// Every call runs with deterministic decoding parameters (fixed seed, low
// temperature) so repeated evaluations of the same input are reproducible.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Default decoding parameters for reproducible extraction
const (
	DefaultModel       = "gemini-2.5-flash"
	DefaultSeed        = 42
	DefaultTemperature = 0.1
)

// maxLogPreview bounds prompt/response previews in debug logs
const maxLogPreview = 200

// Client is the structured-extraction boundary consumed by the orchestrator
type Client interface {
	// GenerateJSON sends a system instruction plus a user payload and
	// returns the raw JSON text of the response.
	GenerateJSON(ctx context.Context, system, user string) (string, error)
	// Model returns the configured model name
	Model() string
}

// RefusalError indicates the service declined to produce a structured result
type RefusalError struct {
	Reason string
}

func (e *RefusalError) Error() string {
	return fmt.Sprintf("extraction service refused: %s", e.Reason)
}

// Options configures a GeminiClient
type Options struct {
	Model       string
	Seed        int32
	Temperature float32
}

// GeminiClient implements Client over the Gemini API
type GeminiClient struct {
	client      *genai.Client
	model       string
	seed        int32
	temperature float32
	logger      *zap.Logger
}

// NewGeminiClient creates a Gemini-backed client. Zero-valued options fall
// back to the deterministic defaults.
func NewGeminiClient(ctx context.Context, apiKey string, opts Options, logger *zap.Logger) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	return &GeminiClient{
		client:      client,
		model:       model,
		seed:        seed,
		temperature: temperature,
		logger:      logger,
	}, nil
}

// GenerateJSON generates a JSON response for the given system instruction
// and user payload. Markdown code fences are stripped before returning.
func (c *GeminiClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	if strings.TrimSpace(user) == "" {
		return "", errors.New("prompt must not be empty")
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(c.temperature),
		Seed:             genai.Ptr(c.seed),
		CandidateCount:   1,
		ResponseMIMEType: "application/json",
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	c.logger.Debug("gemini generate request",
		zap.String("model", c.model),
		zap.Int("prompt_length", utf8.RuneCountInString(user)),
		zap.String("prompt_preview", truncateForLog(user, maxLogPreview)),
	)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(user), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}

	c.logger.Debug("gemini generate response",
		zap.String("model", c.model),
		zap.Int("response_length", utf8.RuneCountInString(text)),
		zap.String("response_preview", truncateForLog(text, maxLogPreview)),
	)

	return CleanJSONBlock(text), nil
}

// Model returns the configured model name
func (c *GeminiClient) Model() string {
	return c.model
}

// extractText pulls the text parts from the first candidate, surfacing
// refusals and empty responses as typed errors.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &RefusalError{Reason: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason != "" && candidate.FinishReason != genai.FinishReasonStop {
		return "", &RefusalError{Reason: fmt.Sprintf("finish reason %s", candidate.FinishReason)}
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &RefusalError{Reason: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Text == "" {
			continue
		}
		parts = append(parts, part.Text)
	}
	if len(parts) == 0 {
		return "", &RefusalError{Reason: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
