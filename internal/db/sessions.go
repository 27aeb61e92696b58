package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-match/internal/audit"
	"github.com/jonathan/talent-match/internal/types"
)

// Recorder implements audit.Recorder on top of PostgreSQL
type Recorder struct {
	db *DB

	// Now supplies record timestamps; overridable in tests
	Now func() time.Time
}

// NewRecorder creates a database-backed session recorder
func NewRecorder(db *DB) *Recorder {
	return &Recorder{db: db, Now: time.Now}
}

// Open creates a new session row and returns its identifier
func (r *Recorder) Open(ctx context.Context, jobTitle, cvText string) (string, error) {
	now := r.Now()
	sessionID := audit.NewSessionID(now)

	_, err := r.db.pool.Exec(ctx,
		`INSERT INTO evaluation_sessions (id, job_title, cv_text, created_at)
		 VALUES ($1, $2, $3, $4)`,
		sessionID, jobTitle, cvText, now,
	)
	if err != nil {
		return "", fmt.Errorf("failed to open session: %w", err)
	}
	return sessionID, nil
}

// RecordStage upserts one stage record for the session. A stage record for
// an unknown session fails with a SessionStateError.
func (r *Recorder) RecordStage(ctx context.Context, sessionID string, record audit.StageRecord) error {
	if err := r.checkOpen(ctx, sessionID, "record stage"); err != nil {
		return err
	}

	messagesJSON, err := json.Marshal(record.Messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	if record.Timestamp.IsZero() {
		record.Timestamp = r.Now()
	}

	_, err = r.db.pool.Exec(ctx,
		`INSERT INTO evaluation_stages (session_id, stage, prompt_text, messages, response, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (session_id, stage) DO UPDATE
		   SET prompt_text = $3, messages = $4, response = $5, created_at = $6`,
		sessionID, record.Stage, record.PromptText, messagesJSON, []byte(record.Response), record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to record stage %s: %w", record.Stage, err)
	}
	return nil
}

// RecordFinal stores the finished evaluation on the session row
func (r *Recorder) RecordFinal(ctx context.Context, sessionID string, evaluation types.CompleteEvaluation) error {
	finalJSON, err := json.Marshal(evaluation)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation: %w", err)
	}

	tag, err := r.db.pool.Exec(ctx,
		`UPDATE evaluation_sessions SET final = $1, completed_at = $2 WHERE id = $3`,
		finalJSON, r.Now(), sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to record final evaluation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &audit.SessionStateError{SessionID: sessionID, Op: "record final"}
	}
	return nil
}

// Load reads a full session trail back from the database
func (r *Recorder) Load(ctx context.Context, sessionID string) (*audit.Trail, error) {
	trail := &audit.Trail{Stages: make(map[string]audit.StageRecord)}

	var finalJSON []byte
	err := r.db.pool.QueryRow(ctx,
		`SELECT id, job_title, cv_text, created_at, final
		 FROM evaluation_sessions WHERE id = $1`,
		sessionID,
	).Scan(&trail.Info.SessionID, &trail.Info.JobTitle, &trail.Info.CVText, &trail.Info.Timestamp, &finalJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &audit.SessionStateError{SessionID: sessionID, Op: "load"}
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if finalJSON != nil {
		var final types.CompleteEvaluation
		if err := json.Unmarshal(finalJSON, &final); err != nil {
			return nil, fmt.Errorf("failed to parse final evaluation: %w", err)
		}
		trail.Final = &final
	}

	rows, err := r.db.pool.Query(ctx,
		`SELECT stage, prompt_text, messages, response, created_at
		 FROM evaluation_stages WHERE session_id = $1 ORDER BY created_at`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load stages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var record audit.StageRecord
		var messagesJSON, responseJSON []byte
		if err := rows.Scan(&record.Stage, &record.PromptText, &messagesJSON, &responseJSON, &record.Timestamp); err != nil {
			return nil, err
		}
		if messagesJSON != nil {
			if err := json.Unmarshal(messagesJSON, &record.Messages); err != nil {
				return nil, fmt.Errorf("failed to parse stage messages: %w", err)
			}
		}
		record.Response = json.RawMessage(responseJSON)
		trail.Stages[record.Stage] = record
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trail, nil
}

// checkOpen verifies the session row exists
func (r *Recorder) checkOpen(ctx context.Context, sessionID, op string) error {
	var exists bool
	err := r.db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM evaluation_sessions WHERE id = $1)`, sessionID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return &audit.SessionStateError{SessionID: sessionID, Op: op}
	}
	return nil
}
