package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/optimizing"
)

var (
	analyzeInputFile string
	analyzeType      string
	analyzeJSON      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract skills, keywords, and contact info from a document",
	Long:  "Analyze a resume or job posting text file and report the extracted skills, keywords, experience, and (for resumes) contact info and ATS compatibility.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to text file to analyze (required)")
	analyzeCmd.Flags().StringVarP(&analyzeType, "type", "t", "resume", "Document type: resume or job")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output raw JSON instead of formatted text")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeType != "resume" && analyzeType != "job" {
		return fmt.Errorf("--type must be resume or job, got %q", analyzeType)
	}

	data, err := os.ReadFile(analyzeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	content := string(data)

	printer := observability.NewPrinter(os.Stdout)

	if analyzeType == "job" {
		analysis := optimizing.AnalyzeJob(content)
		if analyzeJSON {
			return writeJSON(analysis)
		}
		printer.PrintJobAnalysis(&analysis)
		return nil
	}

	analysis := optimizing.AnalyzeResume(content)
	if analyzeJSON {
		return writeJSON(analysis)
	}
	printer.PrintResumeAnalysis(&analysis)
	return nil
}
