package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type ByIDs struct {
	IDs []uuid.UUID
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

type OwnedByUser struct {
	UserID uuid.UUID
}

func (s OwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type OrderByNewest struct{}

func (s OrderByNewest) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

type Paginate struct {
	Page  int
	Limit int
}

func (s Paginate) Apply(db *gorm.DB) *gorm.DB {
	page := s.Page
	if page < 1 {
		page = 1
	}
	limit := s.Limit
	if limit < 1 {
		limit = 10
	}
	return db.Offset((page - 1) * limit).Limit(limit)
}

type Limit struct {
	N int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.N)
}

type CreatedAfter struct {
	Time time.Time
}

func (s CreatedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at > ?", s.Time)
}
