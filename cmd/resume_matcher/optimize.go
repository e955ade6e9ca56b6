package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/optimizing"
	"github.com/jonathan/resume-matcher/internal/rewriting"
)

var (
	optimizeConfigPath string
	optimizeResume     string
	optimizeJob        string
	optimizeJobURL     string
	optimizeAPIKey     string
	optimizeUseBrowser bool
	optimizeJSON       bool
	optimizeInject     string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Produce a full optimization report for a resume",
	Long:  "Score a resume against a job posting and report missing skills, suggested keywords, prioritized improvements, ATS compatibility, and AI suggestions when an API key is configured.",
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeConfigPath, "config", "", "Path to config.json file")
	optimizeCmd.Flags().StringVarP(&optimizeResume, "resume", "r", "", "Path to resume text file")
	optimizeCmd.Flags().StringVarP(&optimizeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	optimizeCmd.Flags().StringVar(&optimizeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	optimizeCmd.Flags().StringVar(&optimizeAPIKey, "api-key", "", "Gemini API key for AI suggestions (optional)")
	optimizeCmd.Flags().BoolVar(&optimizeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	optimizeCmd.Flags().BoolVar(&optimizeJSON, "json", false, "Output raw JSON instead of formatted text")
	optimizeCmd.Flags().StringVar(&optimizeInject, "inject-skills", "", "Write a copy of the resume with missing skills injected to this path")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(optimizeConfigPath, config.Config{
		Resume:     optimizeResume,
		Job:        optimizeJob,
		JobURL:     optimizeJobURL,
		APIKey:     optimizeAPIKey,
		UseBrowser: optimizeUseBrowser,
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

	client, err := newLLMClient(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	optimizer := optimizing.NewOptimizer(scorer, client)
	result := optimizer.Optimize(cmd.Context(), resume, job)

	if optimizeInject != "" {
		updated := rewriting.InjectSkills(resume, result.MissingSkills)
		if err := os.WriteFile(optimizeInject, []byte(updated), 0o644); err != nil {
			return err
		}
	}

	if optimizeJSON {
		return writeJSON(result)
	}
	observability.NewPrinter(os.Stdout).PrintOptimization(&result)
	return nil
}
