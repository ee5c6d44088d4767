package contract

import (
	"context"

	"studentdrive-be/internal/entity"

	"github.com/google/uuid"
)

// SemanticMatch is a similarity-search hit: the matched chunk's content id
// plus its cosine distance to the query vector (smaller is closer).
type SemanticMatch struct {
	ContentId uuid.UUID
	Document  string
	Distance  float64
}

type ContentEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.ContentEmbedding) error
	DeleteByContentId(ctx context.Context, contentId uuid.UUID) error
	SearchNearest(ctx context.Context, vector []float32, limit int) ([]*SemanticMatch, error)
}
