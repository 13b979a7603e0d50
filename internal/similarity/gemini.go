package similarity

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultEmbeddingModel = "text-embedding-004"

// GeminiBackend scores text pairs as the cosine similarity of their Gemini
// embeddings. The underlying client is constructed on first use and reused
// for the process lifetime; it is safe for concurrent use.
type GeminiBackend struct {
	apiKey string
	model  string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiBackend creates a backend for the given API key. Construction is
// cheap; no network connection is made until the first Score call.
func NewGeminiBackend(apiKey, model string) *GeminiBackend {
	if model == "" {
		model = defaultEmbeddingModel
	}
	return &GeminiBackend{apiKey: apiKey, model: model}
}

func (b *GeminiBackend) Name() string {
	return "gemini/" + b.model
}

func (b *GeminiBackend) init(ctx context.Context) error {
	b.once.Do(func() {
		if b.apiKey == "" {
			b.initErr = fmt.Errorf("API key is required")
			return
		}
		b.client, b.initErr = genai.NewClient(ctx, option.WithAPIKey(b.apiKey))
	})
	return b.initErr
}

// Score embeds both texts in one batch request and returns their cosine
// similarity.
func (b *GeminiBackend) Score(ctx context.Context, a, c string) (float64, error) {
	if err := b.init(ctx); err != nil {
		return 0, err
	}

	em := b.client.EmbeddingModel(b.model)
	batch := em.NewBatch().
		AddContent(genai.Text(a)).
		AddContent(genai.Text(c))

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Embeddings) != 2 {
		return 0, fmt.Errorf("expected 2 embeddings, got %d", len(resp.Embeddings))
	}

	return cosine(resp.Embeddings[0].Values, resp.Embeddings[1].Values)
}

func cosine(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("embedding vectors have mismatched dimensions (%d vs %d)", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
