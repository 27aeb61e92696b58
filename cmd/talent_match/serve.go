package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the evaluation HTTP API server",
	RunE:  runServe,
}

var (
	serveFlags sharedFlags
	servePort  int
)

func init() {
	serveFlags.register(serveCommand)
	serveCommand.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCommand)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := serveFlags.loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	recorder, cleanup, err := newRecorder(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	analyzer, err := newAnalyzer(ctx, cfg, recorder, log)
	if err != nil {
		return err
	}

	return server.New(server.Config{Port: servePort}, analyzer, recorder, log).Start()
}
