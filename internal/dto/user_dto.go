package dto

type OnboardingRequest struct {
	Program         string   `json:"program" validate:"required"`
	CurrentLevel    string   `json:"current_level" validate:"required"`
	DiscoverySource string   `json:"discovery_source"`
	Goals           []string `json:"goals" validate:"omitempty,max=10,dive,required"`
}

type UserStatsResponse struct {
	ContentCount   int64 `json:"content_count"`
	FlashcardCount int64 `json:"flashcard_count"`
	QuizCount      int64 `json:"quiz_count"`
	SummaryCount   int64 `json:"summary_count"`
	MindMapCount   int64 `json:"mindmap_count"`
	WeeklyActivity int64 `json:"weekly_activity"`
}
