package entity

import (
	"time"

	"github.com/google/uuid"
)

type Summary struct {
	Id        uuid.UUID
	Title     string
	Content   string
	KeyPoints []string
	ContentId *uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
}
