package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email            string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	FirstName        string    `gorm:"type:varchar(100)"`
	LastName         string    `gorm:"type:varchar(100)"`
	Role             string    `gorm:"type:varchar(20);not null;default:'STUDENT'"`
	SubscriptionTier string    `gorm:"type:varchar(20);not null;default:'FREE'"`

	Program         string         `gorm:"type:varchar(255)"`
	CurrentLevel    string         `gorm:"type:varchar(100)"`
	DiscoverySource string         `gorm:"type:varchar(100)"`
	Goals           datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
