package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sessionCommand = &cobra.Command{
	Use:   "session <session-id>",
	Short: "Load and print the audit trail of a recorded evaluation",
	Args:  cobra.ExactArgs(1),
	RunE:  runSession,
}

var sessionFlags sharedFlags

func init() {
	sessionFlags.register(sessionCommand)
	rootCmd.AddCommand(sessionCommand)
}

func runSession(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := sessionFlags.loadConfig(cmd)
	if err != nil {
		return err
	}

	recorder, cleanup, err := newRecorder(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	trail, err := recorder.Load(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(trail)
}
