package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContentEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	ContentId      uuid.UUID
	ChunkIndex     int
	CreatedAt      time.Time
}
