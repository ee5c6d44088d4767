package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Content struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Type        string         `gorm:"type:varchar(20);not null;default:'DOCUMENT'"`
	Subject     string         `gorm:"type:varchar(100);index"`
	FileUrl     string         `gorm:"type:varchar(512)"`
	UploaderId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Content) TableName() string {
	return "contents"
}
