package similarity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-matcher/internal/parsing"
)

// DefaultMaxChars bounds the text sent to the embedding model per call.
const DefaultMaxChars = 1000

// DefaultEmbeddingModel is the Gemini embedding model used when none is
// configured.
const DefaultEmbeddingModel = "text-embedding-004"

// Embedder turns text into a dense vector.
type Embedder interface {
	// Embed returns the embedding vector for the text
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the embedder
	Close() error
}

// GeminiEmbedder implements Embedder over the Gemini embedding API.
type GeminiEmbedder struct {
	client *genai.Client
	model  *genai.EmbeddingModel
}

// NewGeminiEmbedder creates an embedder for the given model name. An
// empty model name falls back to DefaultEmbeddingModel.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{
		client: client,
		model:  client.EmbeddingModel(model),
	}, nil
}

// Embed returns the embedding vector for the text
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding in response")
	}
	return resp.Embedding.Values, nil
}

// Close releases resources held by the embedder
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// EmbedderFactory builds an Embedder on first use. Returning an error
// marks the service as lexical-only for its lifetime.
type EmbedderFactory func(ctx context.Context) (Embedder, error)

// Service computes document similarity. When an embedder factory is
// configured it prefers semantic similarity and falls back to 0 scores
// on any embedding failure, leaving the caller to use the lexical
// functions instead.
type Service struct {
	factory  EmbedderFactory
	maxChars int

	once     sync.Once
	embedder Embedder
	initErr  error
}

// NewService builds a Service. A nil factory produces a service whose
// Semantic always returns 0 and whose Available is false.
func NewService(factory EmbedderFactory, maxChars int) *Service {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Service{factory: factory, maxChars: maxChars}
}

// init lazily constructs the embedder exactly once.
func (s *Service) init(ctx context.Context) {
	s.once.Do(func() {
		if s.factory == nil {
			s.initErr = fmt.Errorf("no embedder configured")
			return
		}
		s.embedder, s.initErr = s.factory(ctx)
		if s.initErr != nil {
			slog.Warn("embedder unavailable, semantic scoring disabled", "error", s.initErr)
		}
	})
}

// Available reports whether semantic scoring can be attempted. It
// triggers the lazy embedder construction.
func (s *Service) Available(ctx context.Context) bool {
	s.init(ctx)
	return s.initErr == nil
}

// Close releases the underlying embedder if one was constructed.
func (s *Service) Close() error {
	if s.embedder != nil {
		return s.embedder.Close()
	}
	return nil
}

// Semantic embeds both texts and returns their cosine similarity in
// [0, 1], rounded to four decimal places. Inputs are truncated to the
// configured limit before embedding. Any failure, including an
// unconfigured embedder, yields 0.
func (s *Service) Semantic(ctx context.Context, a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	s.init(ctx)
	if s.initErr != nil {
		return 0
	}

	a = parsing.Truncate(a, s.maxChars)
	b = parsing.Truncate(b, s.maxChars)

	var vecA, vecB []float32
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vecA, err = s.embedder.Embed(gctx, a)
		return err
	})
	g.Go(func() error {
		var err error
		vecB, err = s.embedder.Embed(gctx, b)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Warn("embedding failed", "error", err)
		return 0
	}

	return round4(cosine(toFloat64(vecA), toFloat64(vecB)))
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
