package implementation

import (
	"context"

	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/mapper"
	"studentdrive-be/internal/model"
	"studentdrive-be/internal/repository/contract"
	"studentdrive-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FlashcardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FlashcardMapper
}

func NewFlashcardRepository(db *gorm.DB) contract.FlashcardRepository {
	return &FlashcardRepositoryImpl{
		db:     db,
		mapper: mapper.NewFlashcardMapper(),
	}
}

func (r *FlashcardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FlashcardRepositoryImpl) CreateBulk(ctx context.Context, cards []*entity.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	models := r.mapper.ToModels(cards)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*cards[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *FlashcardRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Flashcard, error) {
	var models []*model.Flashcard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FlashcardRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Flashcard{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
