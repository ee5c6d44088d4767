package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadedBy struct {
	UploaderID uuid.UUID
}

func (s UploadedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("uploader_id = ?", s.UploaderID)
}

type BySubject struct {
	Subject string
}

func (s BySubject) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject = ?", s.Subject)
}

// TitleOrDescriptionMatches performs a case-insensitive substring match,
// mirroring the keyword half of content search.
type TitleOrDescriptionMatches struct {
	Query string
}

func (s TitleOrDescriptionMatches) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
}
