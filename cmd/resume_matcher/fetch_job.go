package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

var (
	fetchJobURL        string
	fetchJobOut        string
	fetchJobUseBrowser bool
	fetchJobJSON       bool
)

var fetchJobCmd = &cobra.Command{
	Use:   "fetch-job",
	Short: "Fetch a job posting URL and extract its text",
	Long:  "Download a job posting page, detect the hosting platform, and extract the description text. Falls back to a headless browser when the static HTML has too little content.",
	RunE:  runFetchJob,
}

func init() {
	fetchJobCmd.Flags().StringVarP(&fetchJobURL, "url", "u", "", "Job posting URL (required)")
	fetchJobCmd.Flags().StringVarP(&fetchJobOut, "out", "o", "", "Write extracted text to this file instead of stdout")
	fetchJobCmd.Flags().BoolVar(&fetchJobUseBrowser, "use-browser", false, "Force headless browser rendering (requires Chrome)")
	fetchJobCmd.Flags().BoolVar(&fetchJobJSON, "json", false, "Output the full result as JSON")
	_ = fetchJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(fetchJobCmd)
}

func runFetchJob(cmd *cobra.Command, _ []string) error {
	result, err := fetch.JobPosting(cmd.Context(), fetchJobURL, fetchJobUseBrowser, nil)
	if err != nil {
		return err
	}

	if fetchJobOut != "" {
		return os.WriteFile(fetchJobOut, []byte(result.Text), 0o644)
	}
	if fetchJobJSON {
		return writeJSON(result)
	}
	fmt.Println(result.Text)
	return nil
}
