package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/similarity"
)

// resolveConfig merges flag values over the config file (if any) and the
// environment. Flags win, then the file, then the environment.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	defaults := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		defaults = fileCfg.MergeWithDefaults(defaults)
	}

	// Bool fields are not merged by MergeWithDefaults; a set flag or a
	// true default both enable.
	cfg := flags.MergeWithDefaults(defaults)
	cfg.UseBrowser = flags.UseBrowser || defaults.UseBrowser
	cfg.AuthEnabled = flags.AuthEnabled || defaults.AuthEnabled
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadResume reads the resume text from the configured file.
func loadResume(cfg config.Config) (string, error) {
	if cfg.Resume == "" {
		return "", fmt.Errorf("--resume is required")
	}
	data, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	return string(data), nil
}

// loadJob reads the job description from a file or fetches it from a URL.
func loadJob(ctx context.Context, cfg config.Config) (string, error) {
	switch {
	case cfg.Job != "":
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job posting: %w", err)
		}
		return string(data), nil
	case cfg.JobURL != "":
		result, err := fetch.JobPosting(ctx, cfg.JobURL, cfg.UseBrowser, nil)
		if err != nil {
			return "", err
		}
		return result.Text, nil
	default:
		return "", fmt.Errorf("either --job or --job-url is required")
	}
}

// newScorer builds a scorer, with semantic similarity when an API key is
// configured. The returned cleanup releases the embedder.
func newScorer(cfg config.Config) (*matching.Scorer, func()) {
	if cfg.APIKey == "" {
		return matching.NewScorer(nil), func() {}
	}

	apiKey, model := cfg.APIKey, cfg.EmbeddingModel
	sim := similarity.NewService(func(ctx context.Context) (similarity.Embedder, error) {
		return similarity.NewGeminiEmbedder(ctx, apiKey, model)
	}, similarity.DefaultMaxChars)
	return matching.NewScorer(sim), func() { _ = sim.Close() }
}

// newLLMClient builds the Gemini client, or returns nil without an API key.
func newLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	return llm.NewClient(ctx, nil, cfg.APIKey)
}

// writeJSON prints v as indented JSON to stdout.
func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
