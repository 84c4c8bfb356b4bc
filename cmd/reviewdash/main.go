// Package main provides the entry point for the candidate review dashboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reviewdash",
	Short: "Candidate review dashboard for the job portal",
	Long:  "reviewdash lets HR users browse job requisitions, rank and filter candidates by ATS score, inspect candidate details, update review statuses, and trigger bulk rescoring.",
}

var (
	flagConfigPath string
	flagBaseURL    string
	flagTimeout    int
	flagVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Portal base URL (defaults to REVIEWDASH_BASE_URL or http://localhost:5000)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "HTTP timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log advisory wire-schema warnings")

	rootCmd.AddCommand(jobsCommand)
	rootCmd.AddCommand(reviewCommand)
	rootCmd.AddCommand(statusCommand)
	rootCmd.AddCommand(rescoreCommand)
	rootCmd.AddCommand(previewCommand)
	rootCmd.AddCommand(loginCommand)
	rootCmd.AddCommand(logoutCommand)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
