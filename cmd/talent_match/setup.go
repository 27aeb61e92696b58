package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/analysis"
	"github.com/jonathan/talent-match/internal/audit"
	"github.com/jonathan/talent-match/internal/config"
	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/llm"
	"github.com/jonathan/talent-match/internal/logger"
)

// sharedFlags are the flags common to evaluate, session, and serve
type sharedFlags struct {
	configPath  string
	apiKey      string
	model       string
	logDir      string
	databaseURL string
	verbose     bool
	jsonLogs    bool
}

// register adds the shared flags to a command
func (f *sharedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	cmd.Flags().StringVar(&f.model, "model", "", "Model name (optional)")
	cmd.Flags().StringVar(&f.logDir, "log-dir", "", "Base directory for audit sessions")
	cmd.Flags().StringVar(&f.databaseURL, "db-url", "", "PostgreSQL URL for DB-backed sessions (optional)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
	cmd.Flags().BoolVar(&f.jsonLogs, "json-logs", false, "Emit JSON logs instead of console output")
}

// loadConfig loads the config file if given and applies flag overrides.
// Command-line arguments take priority over config file values.
func (f *sharedFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = f.apiKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = f.model
	}
	if cmd.Flags().Changed("log-dir") {
		cfg.LogDir = f.logDir
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = f.databaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = f.jsonLogs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRecorder selects the session recorder: Postgres when a database URL is
// configured, otherwise the file recorder. The returned cleanup closes the
// pool when present.
func newRecorder(ctx context.Context, cfg *config.Config) (audit.Recorder, func(), error) {
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		return db.NewRecorder(database), database.Close, nil
	}

	recorder, err := audit.NewFileRecorder(cfg.EffectiveLogDir())
	if err != nil {
		return nil, nil, err
	}
	return recorder, func() {}, nil
}

// newAnalyzer wires the Gemini client, the recorder, and the scorers
func newAnalyzer(ctx context.Context, cfg *config.Config, recorder audit.Recorder, log *zap.Logger) (*analysis.Analyzer, error) {
	apiKey := cfg.EffectiveAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required (--api-key flag, config file, or GEMINI_API_KEY env var)")
	}

	client, err := llm.NewGeminiClient(ctx, apiKey, llm.Options{
		Model:       cfg.Model,
		Seed:        cfg.Seed,
		Temperature: cfg.Temperature,
	}, log)
	if err != nil {
		return nil, err
	}

	return analysis.New(client, recorder, cfg.ScoringConfig(), log)
}

// newLogger builds the zap logger from config
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLogs, cfg.Verbose)
}
