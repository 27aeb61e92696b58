package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/talent-match/internal/types"
)

// File names within a session directory
const (
	sessionInfoFile = "session_info.json"
	finalFile       = "final_evaluation.json"
	promptsDir      = "prompts"
	stageSuffix     = "_result.json"
)

// FileRecorder persists sessions as one directory per session containing
// human-readable, indented UTF-8 JSON documents:
//
//	<base>/<session_id>/session_info.json
//	<base>/<session_id>/prompts/<stage>_result.json
//	<base>/<session_id>/final_evaluation.json
type FileRecorder struct {
	baseDir string

	// Now supplies record timestamps; overridable in tests
	Now func() time.Time
}

// NewFileRecorder creates a recorder rooted at baseDir, creating it if
// needed.
func NewFileRecorder(baseDir string) (*FileRecorder, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("audit base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audit directory %s: %w", baseDir, err)
	}
	return &FileRecorder{baseDir: baseDir, Now: time.Now}, nil
}

// Open creates the session directory and writes the initial session info
func (r *FileRecorder) Open(_ context.Context, jobTitle, cvText string) (string, error) {
	now := r.Now()
	sessionID := NewSessionID(now)

	sessionDir := filepath.Join(r.baseDir, sessionID)
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create session directory: %w", err)
	}

	info := SessionInfo{
		SessionID: sessionID,
		JobTitle:  jobTitle,
		Timestamp: now,
		CVText:    cvText,
	}
	if err := writeJSON(filepath.Join(sessionDir, sessionInfoFile), info); err != nil {
		return "", err
	}

	return sessionID, nil
}

// RecordStage writes one stage record under the session's prompts directory
func (r *FileRecorder) RecordStage(_ context.Context, sessionID string, record StageRecord) error {
	sessionDir, err := r.sessionDir(sessionID, "record stage")
	if err != nil {
		return err
	}

	dir := filepath.Join(sessionDir, promptsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create prompts directory: %w", err)
	}

	if record.Timestamp.IsZero() {
		record.Timestamp = r.Now()
	}

	return writeJSON(filepath.Join(dir, record.Stage+stageSuffix), record)
}

// RecordFinal writes the finished evaluation into the session directory
func (r *FileRecorder) RecordFinal(_ context.Context, sessionID string, evaluation types.CompleteEvaluation) error {
	sessionDir, err := r.sessionDir(sessionID, "record final")
	if err != nil {
		return err
	}
	return writeJSON(filepath.Join(sessionDir, finalFile), evaluation)
}

// Load reads a full session trail back from disk
func (r *FileRecorder) Load(_ context.Context, sessionID string) (*Trail, error) {
	sessionDir, err := r.sessionDir(sessionID, "load")
	if err != nil {
		return nil, err
	}

	trail := &Trail{Stages: make(map[string]StageRecord)}

	if err := readJSON(filepath.Join(sessionDir, sessionInfoFile), &trail.Info); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(sessionDir, promptsDir))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read prompts directory: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, stageSuffix) {
			continue
		}
		var record StageRecord
		if err := readJSON(filepath.Join(sessionDir, promptsDir, name), &record); err != nil {
			return nil, err
		}
		trail.Stages[strings.TrimSuffix(name, stageSuffix)] = record
	}

	finalPath := filepath.Join(sessionDir, finalFile)
	if _, err := os.Stat(finalPath); err == nil {
		var final types.CompleteEvaluation
		if err := readJSON(finalPath, &final); err != nil {
			return nil, err
		}
		trail.Final = &final
	}

	return trail, nil
}

// sessionDir resolves and checks the directory for an opened session
func (r *FileRecorder) sessionDir(sessionID, op string) (string, error) {
	if sessionID == "" {
		return "", &SessionStateError{SessionID: sessionID, Op: op}
	}
	dir := filepath.Join(r.baseDir, sessionID)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", &SessionStateError{SessionID: sessionID, Op: op}
	}
	return dir, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
