package mapper

import (
	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ContentEmbeddingMapper struct{}

func NewContentEmbeddingMapper() *ContentEmbeddingMapper {
	return &ContentEmbeddingMapper{}
}

func (m *ContentEmbeddingMapper) ToEntity(e *model.ContentEmbedding) *entity.ContentEmbedding {
	if e == nil {
		return nil
	}
	return &entity.ContentEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		ContentId:      e.ContentId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ContentEmbeddingMapper) ToModel(e *entity.ContentEmbedding) *model.ContentEmbedding {
	if e == nil {
		return nil
	}
	return &model.ContentEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		ContentId:      e.ContentId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ContentEmbeddingMapper) ToModels(embeddings []*entity.ContentEmbedding) []*model.ContentEmbedding {
	models := make([]*model.ContentEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = m.ToModel(e)
	}
	return models
}
