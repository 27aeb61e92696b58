// Package audit records every evaluation run under a session: the initial
// request, one record per extraction stage, and the final evaluation. A
// session is created at the start of a run, immutable once created, and
// never reused; the trail is loadable as a unit for replay and debugging.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talent-match/internal/types"
)

// sessionTimeLayout is the time-ordered prefix of a session identifier
const sessionTimeLayout = "20060102_150405"

// SessionStateError reports a recording call against a session that was
// never opened. This is a programming-contract violation and is always
// surfaced, never swallowed.
type SessionStateError struct {
	SessionID string
	Op        string
}

func (e *SessionStateError) Error() string {
	return fmt.Sprintf("audit %s: session %q is not open", e.Op, e.SessionID)
}

// Message is one turn of the conversation sent to the extraction service
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionInfo is the initial record written when a session opens
type SessionInfo struct {
	SessionID string    `json:"session_id"`
	JobTitle  string    `json:"job_title"`
	Timestamp time.Time `json:"timestamp"`
	CVText    string    `json:"cv_text"`
}

// StageRecord captures one extraction stage: the prompt, the exact
// conversation payload, and the validated response.
type StageRecord struct {
	Timestamp  time.Time       `json:"timestamp"`
	Stage      string          `json:"stage"`
	PromptText string          `json:"prompt_text"`
	Messages   []Message       `json:"messages"`
	Response   json.RawMessage `json:"response"`
}

// Trail is a full session loaded back for replay
type Trail struct {
	Info   SessionInfo               `json:"session_info"`
	Stages map[string]StageRecord    `json:"stages"`
	Final  *types.CompleteEvaluation `json:"final_evaluation,omitempty"`
}

// Recorder is the session persistence boundary consumed by the orchestrator.
// Implementations must be safe for one call per stage per session and must
// fail loudly when invoked without an open session.
type Recorder interface {
	// Open creates a new session and persists the initial request
	Open(ctx context.Context, jobTitle, cvText string) (string, error)
	// RecordStage persists one extraction stage under the session
	RecordStage(ctx context.Context, sessionID string, record StageRecord) error
	// RecordFinal persists the finished evaluation under the session
	RecordFinal(ctx context.Context, sessionID string, evaluation types.CompleteEvaluation) error
	// Load returns the full audit trail for a session
	Load(ctx context.Context, sessionID string) (*Trail, error)
}

// NewSessionID generates a time-ordered session identifier with a random
// suffix, collision-resistant under concurrent evaluations in one process.
func NewSessionID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s", now.UTC().Format(sessionTimeLayout), suffix)
}
