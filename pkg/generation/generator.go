package generation

import "context"

// Generator is the contract the request orchestrator consumes. *Client is
// the production implementation.
type Generator interface {
	Available() bool
	GenerateFlashcards(ctx context.Context, text string, count int) (Result[[]FlashcardDraft], error)
	GenerateQuiz(ctx context.Context, text string, questionCount int) (Result[QuizDraft], error)
	GenerateSummary(ctx context.Context, text string) (Result[SummaryDraft], error)
	GenerateMindMap(ctx context.Context, text string) (Result[MindMapDraft], error)
}

var _ Generator = &Client{}
