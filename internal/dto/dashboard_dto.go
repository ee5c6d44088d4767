package dto

import "time"

type RecentArtifact struct {
	Kind      string    `json:"kind"` // "flashcard_set", "quiz", "summary", "mindmap"
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardSummaryResponse struct {
	ContentCount   int64            `json:"content_count"`
	FlashcardCount int64            `json:"flashcard_count"`
	QuizCount      int64            `json:"quiz_count"`
	SummaryCount   int64            `json:"summary_count"`
	MindMapCount   int64            `json:"mindmap_count"`
	StudyStreak    int              `json:"study_streak"`
	Recent         []RecentArtifact `json:"recent"`
	GeneratedAt    time.Time        `json:"generated_at"`
}
