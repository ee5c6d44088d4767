package entity

import (
	"time"

	"github.com/google/uuid"
)

type QuizQuestionType string

const (
	QuizQuestionTypeMultipleChoice QuizQuestionType = "multiple_choice"
	QuizQuestionTypeTrueFalse      QuizQuestionType = "true_false"
)

type QuizQuestion struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type Quiz struct {
	Id          uuid.UUID
	Title       string
	Description string
	Questions   []QuizQuestion
	ContentId   *uuid.UUID
	UserId      uuid.UUID
	CreatedAt   time.Time
}
