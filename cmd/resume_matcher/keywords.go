package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var (
	keywordsConfigPath string
	keywordsResume     string
	keywordsJob        string
	keywordsJobURL     string
	keywordsUseBrowser bool
	keywordsJSON       bool
	keywordsTopN       int
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Compare keywords between a resume and a job posting",
	Long:  "Extract the top keywords from a resume and a job posting, report the job keywords missing from the resume, and the lexical overlap ratio.",
	RunE:  runKeywords,
}

func init() {
	keywordsCmd.Flags().StringVar(&keywordsConfigPath, "config", "", "Path to config.json file")
	keywordsCmd.Flags().StringVarP(&keywordsResume, "resume", "r", "", "Path to resume text file")
	keywordsCmd.Flags().StringVarP(&keywordsJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	keywordsCmd.Flags().StringVar(&keywordsJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	keywordsCmd.Flags().BoolVar(&keywordsUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	keywordsCmd.Flags().BoolVar(&keywordsJSON, "json", false, "Output raw JSON instead of formatted text")
	keywordsCmd.Flags().IntVarP(&keywordsTopN, "top", "n", keywords.DefaultTopN, "Number of keywords to extract per document")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(keywordsConfigPath, config.Config{
		Resume:     keywordsResume,
		Job:        keywordsJob,
		JobURL:     keywordsJobURL,
		UseBrowser: keywordsUseBrowser,
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

	resumeKeywords := keywords.Extract(resume, keywordsTopN)
	jobKeywords := keywords.Extract(job, keywordsTopN)
	missing := keywords.Missing(job, resume, keywordsTopN)
	overlap := keywords.Overlap(resume, job)

	if keywordsJSON {
		return writeJSON(map[string]any{
			"resume_keywords":  resumeKeywords,
			"job_keywords":     jobKeywords,
			"missing_keywords": missing,
			"overlap":          overlap,
		})
	}

	observability.NewPrinter(os.Stdout).PrintKeywords(resumeKeywords, jobKeywords, missing, overlap)
	return nil
}
