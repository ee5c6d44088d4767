package generation

import (
	"context"
	"fmt"
	"strings"

	"studentdrive-be/pkg/llm"
)

// Client wraps an LLM provider with one method per artifact kind. It is
// constructed once at startup; provider may be nil when no backend is
// configured, in which case every method fails fast with ErrUnavailable
// without touching the network.
type Client struct {
	provider llm.LLMProvider
}

func NewClient(provider llm.LLMProvider) *Client {
	return &Client{provider: provider}
}

func (c *Client) Available() bool {
	return c.provider != nil
}

// Per-kind tuning constants. Token budgets are opaque knobs passed through
// to the backend.
const (
	flashcardTemperature = 0.7
	flashcardMaxTokens   = 2000

	quizTemperature = 0.7
	quizMaxTokens   = 3000

	summaryTemperature = 0.5
	summaryMaxTokens   = 1500

	mindMapTemperature = 0.7
	mindMapMaxTokens   = 2500
)

// generate runs one chat completion and enforces the shared error contract:
// ErrUnavailable before any call, ErrBackend on transport failure,
// ErrEmptyResponse on a blank completion.
func (c *Client) generate(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}

	raw, err := c.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}, llm.WithTemperature(temperature), llm.WithMaxTokens(maxTokens))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackend, err)
	}

	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}

func (c *Client) GenerateFlashcards(ctx context.Context, text string, count int) (Result[[]FlashcardDraft], error) {
	user := fmt.Sprintf("Create %d flashcards from this content:\n\n%s", count, text)
	raw, err := c.generate(ctx, flashcardSystemPrompt, user, flashcardTemperature, flashcardMaxTokens)
	if err != nil {
		return Result[[]FlashcardDraft]{}, err
	}
	return NormalizeFlashcards(raw), nil
}

func (c *Client) GenerateQuiz(ctx context.Context, text string, questionCount int) (Result[QuizDraft], error) {
	user := fmt.Sprintf("Create a %d-question quiz from this content:\n\n%s", questionCount, text)
	raw, err := c.generate(ctx, quizSystemPrompt, user, quizTemperature, quizMaxTokens)
	if err != nil {
		return Result[QuizDraft]{}, err
	}
	return NormalizeQuiz(raw), nil
}

func (c *Client) GenerateSummary(ctx context.Context, text string) (Result[SummaryDraft], error) {
	user := fmt.Sprintf("Summarize this content:\n\n%s", text)
	raw, err := c.generate(ctx, summarySystemPrompt, user, summaryTemperature, summaryMaxTokens)
	if err != nil {
		return Result[SummaryDraft]{}, err
	}
	return NormalizeSummary(raw), nil
}

func (c *Client) GenerateMindMap(ctx context.Context, text string) (Result[MindMapDraft], error) {
	user := fmt.Sprintf("Create a mind map from this content:\n\n%s", text)
	raw, err := c.generate(ctx, mindMapSystemPrompt, user, mindMapTemperature, mindMapMaxTokens)
	if err != nil {
		return Result[MindMapDraft]{}, err
	}
	return NormalizeMindMap(raw), nil
}
