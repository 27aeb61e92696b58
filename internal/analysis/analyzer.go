// Package analysis orchestrates a CV evaluation: three concurrent
// structured-extraction calls joined deterministically, the composite score,
// and a final narrative summary conditioned on the already-computed score.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-match/internal/audit"
	"github.com/jonathan/talent-match/internal/llm"
	"github.com/jonathan/talent-match/internal/prompts"
	"github.com/jonathan/talent-match/internal/schemas"
	"github.com/jonathan/talent-match/internal/scoring"
	"github.com/jonathan/talent-match/internal/types"
)

// promptFile holds the system instructions for the four stages
const promptFile = "evaluation.json"

// extractionWorkers bounds the number of concurrent extraction calls; the
// summary call runs alone after the join.
const extractionWorkers = 3

// Result is one finished evaluation with its audit session and the score
// breakdown behind the headline number.
type Result struct {
	SessionID  string                   `json:"session_id"`
	Evaluation types.CompleteEvaluation `json:"evaluation"`
	Breakdown  scoring.Breakdown        `json:"breakdown"`
}

// Analyzer coordinates the extraction service, the scorers, and the audit
// recorder for complete evaluation runs.
type Analyzer struct {
	client   llm.Client
	recorder audit.Recorder
	scorer   *scoring.CompositeScorer
	logger   *zap.Logger
}

// New creates an Analyzer. The scoring configuration is validated here so a
// broken weight table fails at startup, not at scoring time.
func New(client llm.Client, recorder audit.Recorder, cfg scoring.Config, logger *zap.Logger) (*Analyzer, error) {
	scorer, err := scoring.NewCompositeScorer(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		client:   client,
		recorder: recorder,
		scorer:   scorer,
		logger:   logger,
	}, nil
}

// Evaluate runs a complete evaluation of cvText against jobTitle.
//
// Protocol: open an audit session; dispatch the three extraction calls
// concurrently and join; assemble the partial evaluation; compute the
// composite score; issue the sequential summary call with the computed score
// in context; force the summary's fit score to the computed value; persist
// the finished evaluation. The first extraction failure cancels in-flight
// siblings and aborts the whole run.
func (a *Analyzer) Evaluate(ctx context.Context, cvText, jobTitle string) (*Result, error) {
	sessionID, err := a.recorder.Open(ctx, jobTitle, cvText)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit session: %w", err)
	}
	a.logger.Info("evaluation started",
		zap.String("session_id", sessionID),
		zap.String("job_title", jobTitle),
		zap.String("model", a.client.Model()),
	)

	cvPayload := prompts.Format(prompts.MustGet(promptFile, "cv-payload"),
		map[string]string{"CVText": cvText})

	var (
		experienceResp types.ExperienceResponse
		skillsResp     types.SkillsResponse
		educationResp  types.EducationResponse
	)

	started := time.Now()
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(extractionWorkers)

	// Each worker decodes into its own result variable and writes only its
	// own stage record; there is no shared mutable state between them.
	g.Go(func() error {
		return a.extract(gCtx, sessionID, schemas.DimensionExperience, jobTitle, cvPayload, &experienceResp)
	})
	g.Go(func() error {
		return a.extract(gCtx, sessionID, schemas.DimensionSkills, jobTitle, cvPayload, &skillsResp)
	})
	g.Go(func() error {
		return a.extract(gCtx, sessionID, schemas.DimensionEducation, jobTitle, cvPayload, &educationResp)
	})

	if err := g.Wait(); err != nil {
		a.logger.Error("evaluation aborted",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	partial := types.PartialEvaluation{
		Experiences: experienceResp.Experiences,
		Skills:      skillsResp.Skills,
		Education:   educationResp.Education,
	}

	breakdown := a.scorer.Breakdown(partial)
	a.logger.Info("extraction joined",
		zap.String("session_id", sessionID),
		zap.Duration("elapsed", time.Since(started)),
		zap.Float64("fit_score", breakdown.Composite),
	)

	summary, err := a.summarize(ctx, sessionID, jobTitle, cvPayload, partial, breakdown.Composite)
	if err != nil {
		return nil, err
	}

	evaluation := partial.Complete(summary, breakdown.Composite)

	if err := a.recorder.RecordFinal(ctx, sessionID, evaluation); err != nil {
		return nil, fmt.Errorf("failed to persist evaluation: %w", err)
	}
	a.logger.Info("evaluation complete",
		zap.String("session_id", sessionID),
		zap.Float64("fit_score", evaluation.Summary.FitScore),
	)

	return &Result{
		SessionID:  sessionID,
		Evaluation: evaluation,
		Breakdown:  breakdown,
	}, nil
}

// extraction envelopes share schema validation, decoding, and the
// struct-level checks behind a common interface
type validatable interface {
	Validate() error
}

// extract runs one extraction dimension: call the service, schema-validate
// the raw payload, decode it, check struct invariants, then record the
// stage before the orchestrator proceeds.
func (a *Analyzer) extract(ctx context.Context, sessionID string, dimension schemas.Dimension, jobTitle, cvPayload string, out validatable) error {
	systemPrompt := prompts.Format(prompts.MustGet(promptFile, "analyze-"+string(dimension)),
		map[string]string{"JobTitle": jobTitle})

	raw, err := a.client.GenerateJSON(ctx, systemPrompt, cvPayload)
	if err != nil {
		return &ExtractionError{Dimension: dimension, Message: "service call failed", Cause: err}
	}

	if err := schemas.ValidateBytes(dimension, []byte(raw)); err != nil {
		return &ExtractionError{Dimension: dimension, Message: "response rejected", Cause: err}
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &ExtractionError{Dimension: dimension, Message: "response did not decode", Cause: err}
	}

	if err := out.Validate(); err != nil {
		return &ExtractionError{Dimension: dimension, Message: "response failed validation", Cause: err}
	}

	return a.recordStage(ctx, sessionID, dimension, systemPrompt, cvPayload, raw)
}

// summarize issues the sequential narrative-summary request. It can only run
// after the extraction join, with the computed score embedded in the
// context so the narrative matches the number the user will see.
func (a *Analyzer) summarize(ctx context.Context, sessionID, jobTitle, cvPayload string, partial types.PartialEvaluation, fitScore float64) (types.Summary, error) {
	systemPrompt := prompts.Format(prompts.MustGet(promptFile, "generate-summary"),
		map[string]string{"JobTitle": jobTitle})

	experiencesJSON, _ := json.Marshal(partial.Experiences)
	skillsJSON, _ := json.Marshal(partial.Skills)
	educationJSON, _ := json.Marshal(partial.Education)

	userPayload := prompts.Format(prompts.MustGet(promptFile, "summary-context"), map[string]string{
		"CVPayload":   cvPayload,
		"Experiences": string(experiencesJSON),
		"Skills":      string(skillsJSON),
		"Education":   string(educationJSON),
		"FitScore":    fmt.Sprintf("%.2f", fitScore),
	})

	raw, err := a.client.GenerateJSON(ctx, systemPrompt, userPayload)
	if err != nil {
		return types.Summary{}, &ExtractionError{Dimension: schemas.DimensionSummary, Message: "service call failed", Cause: err}
	}

	if err := schemas.ValidateBytes(schemas.DimensionSummary, []byte(raw)); err != nil {
		return types.Summary{}, &ExtractionError{Dimension: schemas.DimensionSummary, Message: "response rejected", Cause: err}
	}

	var resp types.SummaryResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return types.Summary{}, &ExtractionError{Dimension: schemas.DimensionSummary, Message: "response did not decode", Cause: err}
	}
	if err := resp.Validate(); err != nil {
		return types.Summary{}, &ExtractionError{Dimension: schemas.DimensionSummary, Message: "response failed validation", Cause: err}
	}

	if err := a.recordStage(ctx, sessionID, schemas.DimensionSummary, systemPrompt, userPayload, raw); err != nil {
		return types.Summary{}, err
	}

	return resp.Summary, nil
}

// recordStage persists one stage's prompt, conversation payload, and
// validated response under the session.
func (a *Analyzer) recordStage(ctx context.Context, sessionID string, dimension schemas.Dimension, systemPrompt, userPayload, raw string) error {
	record := audit.StageRecord{
		Stage:      string(dimension),
		PromptText: systemPrompt,
		Messages: []audit.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPayload},
		},
		Response: json.RawMessage(raw),
	}
	if err := a.recorder.RecordStage(ctx, sessionID, record); err != nil {
		return fmt.Errorf("failed to record %s stage: %w", dimension, err)
	}
	return nil
}
