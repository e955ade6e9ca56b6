// Package fetch - job.go composes fetching, platform detection, text
// extraction, and the headless-browser fallback into one entrypoint.
package fetch

import (
	"context"
	"log/slog"
	"time"
)

// JobResult is a fetched job posting reduced to text.
type JobResult struct {
	URL      string   `json:"url"`
	Platform Platform `json:"platform"`
	Text     string   `json:"text"`
	Rendered bool     `json:"rendered"`
}

// JobPosting fetches a job posting URL and extracts its description
// text. When the plain HTTP fetch yields too little text, forceBrowser
// is set, or the caller opts in, the page is re-rendered in a headless
// browser before extraction.
func JobPosting(ctx context.Context, urlStr string, forceBrowser bool, opts *Options) (*JobResult, error) {
	platform := DetectPlatform(urlStr)
	selectors := append(PlatformContentSelectors(platform), JobPostingSelectors()...)

	result := &JobResult{URL: urlStr, Platform: platform}

	var html string
	if !forceBrowser {
		fetched, err := URL(ctx, urlStr, opts)
		if err != nil {
			return nil, err
		}
		html = fetched.HTML

		text, err := ExtractMainText(html, selectors, PlatformNoiseSelectors(platform)...)
		if err != nil {
			return nil, &Error{URL: urlStr, Message: "text extraction failed", Cause: err}
		}
		if !ShouldUseBrowser(text) {
			result.Text = text
			return result, nil
		}
		slog.Debug("extracted text too short, falling back to browser",
			"url", urlStr, "length", len(text))
	}

	timeout := DefaultTimeout
	if opts != nil && opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	html, err := WithBrowser(ctx, urlStr, timeout+10*time.Second)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "browser rendering failed", Cause: err}
	}

	text, err := ExtractMainText(html, selectors, PlatformNoiseSelectors(platform)...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "text extraction failed", Cause: err}
	}

	result.Text = text
	result.Rendered = true
	return result, nil
}
