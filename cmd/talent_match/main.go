// Package main provides the entry point for the Talent Match CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_match",
	Short: "Talent Match CV evaluation engine",
	Long:  "Talent Match scores a CV against a target job title: three parallel structured extractions, deterministic per-dimension scoring, a weighted composite, and a narrative summary conditioned on the computed score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
