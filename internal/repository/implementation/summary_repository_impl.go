package implementation

import (
	"context"
	"errors"

	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/mapper"
	"studentdrive-be/internal/model"
	"studentdrive-be/internal/repository/contract"
	"studentdrive-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SummaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SummaryMapper
}

func NewSummaryRepository(db *gorm.DB) contract.SummaryRepository {
	return &SummaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewSummaryMapper(),
	}
}

func (r *SummaryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SummaryRepositoryImpl) Create(ctx context.Context, summary *entity.Summary) error {
	m := r.mapper.ToModel(summary)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*summary = *r.mapper.ToEntity(m)
	return nil
}

func (r *SummaryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Summary, error) {
	var m model.Summary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SummaryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Summary, error) {
	var models []*model.Summary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SummaryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Summary{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
