// Package main provides the entry point for the resume matcher CLI and
// API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/logger"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume to job matching and optimization",
	Long:  "Resume Matcher scores resumes against job postings, checks ATS compatibility, and suggests targeted improvements via CLI or REST API.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Setup(rootVerbose)
	},
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}
