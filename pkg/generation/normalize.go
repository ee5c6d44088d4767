package generation

import (
	"encoding/json"
	"strings"
)

// stripMarkdownFences removes a surrounding ```json ... ``` (or plain ```)
// block before the parse attempt. Models frequently wrap JSON in fences even
// when told not to.
func stripMarkdownFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// NormalizeFlashcards parses raw as a flashcard array. On any parse failure
// it returns a single-card fallback whose back side carries the original raw
// text, so a degraded generation is still stored rather than discarded.
func NormalizeFlashcards(raw string) Result[[]FlashcardDraft] {
	var cards []FlashcardDraft
	if err := json.Unmarshal([]byte(stripMarkdownFences(raw)), &cards); err != nil || cards == nil {
		return fallback([]FlashcardDraft{
			{Front: "Generated Content", Back: raw},
		})
	}
	return parsed(cards)
}

// NormalizeQuiz parses raw as a quiz object. The fallback is a one-question
// multiple-choice quiz whose explanation field carries the original raw text.
func NormalizeQuiz(raw string) Result[QuizDraft] {
	var quiz QuizDraft
	if err := json.Unmarshal([]byte(stripMarkdownFences(raw)), &quiz); err != nil {
		return fallback(QuizDraft{
			Title:       "Generated Quiz",
			Description: "Quiz generated from provided content",
			Questions: []QuizQuestionDraft{
				{
					Question:      "What is the main topic of the provided content?",
					Type:          "multiple_choice",
					Options:       []string{"A", "B", "C", "D"},
					CorrectAnswer: "A",
					Explanation:   raw,
				},
			},
		})
	}
	return parsed(quiz)
}

// NormalizeSummary parses raw as a summary object; the fallback stores the
// raw text as the summary body.
func NormalizeSummary(raw string) Result[SummaryDraft] {
	var summary SummaryDraft
	if err := json.Unmarshal([]byte(stripMarkdownFences(raw)), &summary); err != nil {
		return fallback(SummaryDraft{
			Title:   "Generated Summary",
			Content: raw,
			KeyPoints: []string{
				"Summary generated from provided content",
				"Content processed using AI analysis",
			},
		})
	}
	return parsed(summary)
}

// NormalizeMindMap parses raw as a mind map object. The fallback is a fixed
// three-node star (central topic plus two subtopics) independent of the raw
// text, since free-form text cannot be projected onto a graph.
func NormalizeMindMap(raw string) Result[MindMapDraft] {
	var mindMap MindMapDraft
	if err := json.Unmarshal([]byte(stripMarkdownFences(raw)), &mindMap); err != nil {
		return fallback(MindMapDraft{
			Title: "Generated Mind Map",
			Nodes: []MindMapNodeDraft{
				{Id: "1", Label: "Main Topic", Type: "topic", Position: PositionDraft{X: 0, Y: 0}},
				{Id: "2", Label: "Subtopic 1", Type: "subtopic", Position: PositionDraft{X: -200, Y: 100}},
				{Id: "3", Label: "Subtopic 2", Type: "subtopic", Position: PositionDraft{X: 200, Y: 100}},
			},
			Edges: []MindMapEdgeDraft{
				{Id: "e1", Source: "1", Target: "2"},
				{Id: "e2", Source: "1", Target: "3"},
			},
		})
	}
	return parsed(mindMap)
}
