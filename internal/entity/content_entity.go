package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	ContentTypeDocument ContentType = "DOCUMENT"
	ContentTypeVideo    ContentType = "VIDEO"
	ContentTypeNotes    ContentType = "NOTES"
)

type Content struct {
	Id          uuid.UUID
	Title       string
	Description string
	Type        ContentType
	Subject     string
	FileUrl     string
	UploaderId  uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
