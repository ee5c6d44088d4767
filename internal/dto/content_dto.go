package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateContentRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required,oneof=DOCUMENT VIDEO NOTES"`
	Subject     string `json:"subject"`
	FileUrl     string `json:"file_url" validate:"omitempty,url"`
}

type ContentResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Subject     string    `json:"subject"`
	FileUrl     string    `json:"file_url,omitempty"`
	UploaderId  uuid.UUID `json:"uploader_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListContentsRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

type ListContentsResponse struct {
	Contents []ContentResponse `json:"contents"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int64             `json:"total"`
}

// PublishEmbedContentMessage is the watermill payload that triggers the
// embedding pipeline for one content record.
type PublishEmbedContentMessage struct {
	ContentId uuid.UUID `json:"content_id"`
}
