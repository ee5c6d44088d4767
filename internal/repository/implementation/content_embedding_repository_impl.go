package implementation

import (
	"context"

	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/mapper"
	"studentdrive-be/internal/model"
	"studentdrive-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ContentEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentEmbeddingMapper
}

func NewContentEmbeddingRepository(db *gorm.DB) contract.ContentEmbeddingRepository {
	return &ContentEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentEmbeddingMapper(),
	}
}

func (r *ContentEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.ContentEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := r.mapper.ToModels(embeddings)
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *ContentEmbeddingRepositoryImpl) DeleteByContentId(ctx context.Context, contentId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("content_id = ?", contentId).
		Delete(&model.ContentEmbedding{}).Error
}

func (r *ContentEmbeddingRepositoryImpl) SearchNearest(ctx context.Context, vector []float32, limit int) ([]*contract.SemanticMatch, error) {
	var rows []struct {
		ContentId uuid.UUID
		Document  string
		Distance  float64
	}

	// <=> is pgvector's cosine distance operator; closest chunks come first.
	err := r.db.WithContext(ctx).
		Model(&model.ContentEmbedding{}).
		Select("content_id, document, embedding_value <=> ? AS distance", pgvector.NewVector(vector)).
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(vector))).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	matches := make([]*contract.SemanticMatch, len(rows))
	for i, row := range rows {
		matches[i] = &contract.SemanticMatch{
			ContentId: row.ContentId,
			Document:  row.Document,
			Distance:  row.Distance,
		}
	}
	return matches, nil
}
