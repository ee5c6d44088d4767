package entity

import (
	"time"

	"github.com/google/uuid"
)

type Flashcard struct {
	Id         uuid.UUID
	Front      string
	Back       string
	Difficulty int
	ContentId  *uuid.UUID
	UserId     uuid.UUID
	CreatedAt  time.Time
}
