package ranking

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/hirelens/hirelens/internal/domain"
	"github.com/hirelens/hirelens/internal/textproc"
)

var testLexicon = textproc.DefaultLexicon()

// mockEmbedder returns a vector per text via vecFor, falling back to a unit
// vector. It only implements Embed, so the service goes through BatchFallback.
type mockEmbedder struct {
	vecFor     func(text string) []float32
	err        error
	embedCalls int
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.embedCalls++
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vec(text)}, nil
}

func (m *mockEmbedder) vec(text string) []float32 {
	if m.vecFor != nil {
		if v := m.vecFor(text); v != nil {
			return v
		}
	}
	return []float32{1, 0}
}

// mockBatchEmbedder additionally implements domain.BatchEmbedder so the
// service takes the single-call path per resume.
type mockBatchEmbedder struct {
	mockEmbedder
	batchCalls int
	batchErr   error
}

func (m *mockBatchEmbedder) BatchEmbed(_ context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	m.batchCalls++
	if m.batchErr != nil {
		return domain.BatchEmbeddingResult{}, m.batchErr
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = m.vec(t)
	}
	return domain.BatchEmbeddingResult{Embeddings: out}, nil
}

func newTestService(embed Embedder) *Service {
	return New(embed, testLexicon, zap.NewNop())
}

func sqrt32(x float64) float32 {
	return float32(math.Sqrt(x))
}
