package ranking

import (
	"context"

	"github.com/hirelens/hirelens/internal/domain"
)

// Embedder vectorizes text into embeddings. Implementations that also
// satisfy domain.BatchEmbedder get one API call per resume instead of two.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
