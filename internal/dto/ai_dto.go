package dto

import (
	"time"

	"github.com/google/uuid"
)

// Generation requests. Counts are pointers so "absent" can fall back to the
// documented defaults (10 flashcards, 5 questions) while supplied zeros are
// still rejected by validation.

type GenerateFlashcardsRequest struct {
	ContentIds  []uuid.UUID `json:"content_ids"`
	TextContent string      `json:"text_content"`
	Count       *int        `json:"count" validate:"omitempty,min=1,max=20"`
}

type GenerateQuizRequest struct {
	ContentIds    []uuid.UUID `json:"content_ids"`
	YoutubeUrl    string      `json:"youtube_url" validate:"omitempty,url"`
	TextContent   string      `json:"text_content"`
	QuestionCount *int        `json:"question_count" validate:"omitempty,min=1,max=15"`
}

type GenerateSummaryRequest struct {
	ContentId *uuid.UUID `json:"content_id"`
	Text      string     `json:"text"`
}

type GenerateMindMapRequest struct {
	ContentIds []uuid.UUID `json:"content_ids" validate:"required,min=1"`
}

// Responses mirror the stored artifacts.

type FlashcardResponse struct {
	Id         uuid.UUID  `json:"id"`
	Front      string     `json:"front"`
	Back       string     `json:"back"`
	Difficulty int        `json:"difficulty"`
	ContentId  *uuid.UUID `json:"content_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

type GenerateFlashcardsResponse struct {
	Flashcards []FlashcardResponse `json:"flashcards"`
}

type QuizQuestionResponse struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type QuizResponse struct {
	Id          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Questions   []QuizQuestionResponse `json:"questions"`
	ContentId   *uuid.UUID             `json:"content_id"`
	CreatedAt   time.Time              `json:"created_at"`
}

type GenerateQuizResponse struct {
	Quiz QuizResponse `json:"quiz"`
}

type SummaryResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	KeyPoints []string   `json:"key_points"`
	ContentId *uuid.UUID `json:"content_id"`
	CreatedAt time.Time  `json:"created_at"`
}

type GenerateSummaryResponse struct {
	Summary SummaryResponse `json:"summary"`
}

type MindMapPositionResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type MindMapNodeResponse struct {
	Id       string                  `json:"id"`
	Label    string                  `json:"label"`
	Type     string                  `json:"type"`
	Position MindMapPositionResponse `json:"position"`
}

type MindMapEdgeResponse struct {
	Id     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type MindMapResponse struct {
	Id        uuid.UUID             `json:"id"`
	Title     string                `json:"title"`
	Nodes     []MindMapNodeResponse `json:"nodes"`
	Edges     []MindMapEdgeResponse `json:"edges"`
	ContentId *uuid.UUID            `json:"content_id"`
	CreatedAt time.Time             `json:"created_at"`
}

type GenerateMindMapResponse struct {
	MindMap MindMapResponse `json:"mindmap"`
}
