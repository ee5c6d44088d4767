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

type MindMapRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MindMapMapper
}

func NewMindMapRepository(db *gorm.DB) contract.MindMapRepository {
	return &MindMapRepositoryImpl{
		db:     db,
		mapper: mapper.NewMindMapMapper(),
	}
}

func (r *MindMapRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MindMapRepositoryImpl) Create(ctx context.Context, mindMap *entity.MindMap) error {
	m := r.mapper.ToModel(mindMap)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*mindMap = *r.mapper.ToEntity(m)
	return nil
}

func (r *MindMapRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MindMap, error) {
	var m model.MindMap
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MindMapRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MindMap, error) {
	var models []*model.MindMap
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MindMapRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MindMap{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
