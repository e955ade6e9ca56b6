package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var (
	matchConfigPath string
	matchResume     string
	matchJob        string
	matchJobURL     string
	matchAPIKey     string
	matchUseBrowser bool
	matchJSON       bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job posting",
	Long:  "Compute the weighted match score between a resume and a job posting, broken down into skill, keyword, experience, and education components.",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file")
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume text file")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key for semantic keyword scoring (optional)")
	matchCmd.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Output raw JSON instead of formatted text")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(matchConfigPath, config.Config{
		Resume:     matchResume,
		Job:        matchJob,
		JobURL:     matchJobURL,
		APIKey:     matchAPIKey,
		UseBrowser: matchUseBrowser,
	})
	if err != nil {
		return err
	}

	resume, err := loadResume(cfg)
	if err != nil {
		return err
	}
	job, err := loadJob(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	scorer, cleanup := newScorer(cfg)
	defer cleanup()

	score := scorer.Score(cmd.Context(), resume, job)
	if matchJSON {
		return writeJSON(score)
	}
	observability.NewPrinter(os.Stdout).PrintMatchScore(&score)
	return nil
}
