package generation

import (
	"testing"
)

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "no fences",
			raw:  `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "json fence",
			raw:  "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "plain fence",
			raw:  "```\n[1,2]\n```",
			want: "[1,2]",
		},
		{
			name: "surrounding whitespace",
			raw:  "  ```json\n{}\n```  ",
			want: "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripMarkdownFences(tt.raw)
			if got != tt.want {
				t.Errorf("stripMarkdownFences(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeFlashcards(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantFallback bool
		wantCount    int
	}{
		{
			name:      "valid array",
			raw:       `[{"front":"Q1","back":"A1"},{"front":"Q2","back":"A2"}]`,
			wantCount: 2,
		},
		{
			name:      "fenced array",
			raw:       "```json\n[{\"front\":\"Q\",\"back\":\"A\"}]\n```",
			wantCount: 1,
		},
		{
			name:         "plain prose",
			raw:          "Here are your flashcards: photosynthesis is...",
			wantFallback: true,
			wantCount:    1,
		},
		{
			name:         "empty string",
			raw:          "",
			wantFallback: true,
			wantCount:    1,
		},
		{
			name:         "json null",
			raw:          "null",
			wantFallback: true,
			wantCount:    1,
		},
		{
			name:         "object instead of array",
			raw:          `{"front":"Q","back":"A"}`,
			wantFallback: true,
			wantCount:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NormalizeFlashcards(tt.raw)

			if res.Fallback != tt.wantFallback {
				t.Errorf("Fallback = %v, want %v", res.Fallback, tt.wantFallback)
			}
			if len(res.Value) != tt.wantCount {
				t.Errorf("card count = %d, want %d", len(res.Value), tt.wantCount)
			}
			if tt.wantFallback {
				if res.Value[0].Front != "Generated Content" {
					t.Errorf("fallback front = %q, want %q", res.Value[0].Front, "Generated Content")
				}
				if res.Value[0].Back != tt.raw {
					t.Errorf("fallback back = %q, want original raw %q", res.Value[0].Back, tt.raw)
				}
			}
		})
	}
}

func TestNormalizeFlashcardsFallbackKeepsFencedRaw(t *testing.T) {
	// A fenced block that still fails to parse must be preserved verbatim,
	// fences included, on the fallback card.
	raw := "```json\nnot actually json\n```"
	res := NormalizeFlashcards(raw)

	if !res.Fallback {
		t.Fatal("expected fallback")
	}
	if res.Value[0].Back != raw {
		t.Errorf("fallback back = %q, want %q", res.Value[0].Back, raw)
	}
}

func TestNormalizeQuiz(t *testing.T) {
	t.Run("valid quiz", func(t *testing.T) {
		raw := `{"title":"Biology","description":"Cells","questions":[{"question":"What is a cell?","type":"multiple_choice","options":["a","b","c","d"],"correct_answer":"a","explanation":"basics"}]}`
		res := NormalizeQuiz(raw)

		if res.Fallback {
			t.Fatal("expected parsed result")
		}
		if res.Value.Title != "Biology" {
			t.Errorf("Title = %q, want Biology", res.Value.Title)
		}
		if len(res.Value.Questions) != 1 {
			t.Fatalf("question count = %d, want 1", len(res.Value.Questions))
		}
		if res.Value.Questions[0].CorrectAnswer != "a" {
			t.Errorf("CorrectAnswer = %q, want a", res.Value.Questions[0].CorrectAnswer)
		}
	})

	t.Run("malformed json falls back", func(t *testing.T) {
		raw := "The quiz covers chapters 1-3."
		res := NormalizeQuiz(raw)

		if !res.Fallback {
			t.Fatal("expected fallback")
		}
		if res.Value.Title != "Generated Quiz" {
			t.Errorf("Title = %q, want Generated Quiz", res.Value.Title)
		}
		if res.Value.Description != "Quiz generated from provided content" {
			t.Errorf("Description = %q", res.Value.Description)
		}
		if len(res.Value.Questions) != 1 {
			t.Fatalf("question count = %d, want 1", len(res.Value.Questions))
		}
		q := res.Value.Questions[0]
		if q.Question != "What is the main topic of the provided content?" {
			t.Errorf("Question = %q", q.Question)
		}
		if q.Type != "multiple_choice" {
			t.Errorf("Type = %q, want multiple_choice", q.Type)
		}
		if len(q.Options) != 4 || q.Options[0] != "A" || q.Options[3] != "D" {
			t.Errorf("Options = %v, want [A B C D]", q.Options)
		}
		if q.CorrectAnswer != "A" {
			t.Errorf("CorrectAnswer = %q, want A", q.CorrectAnswer)
		}
		if q.Explanation != raw {
			t.Errorf("Explanation = %q, want original raw", q.Explanation)
		}
	})
}

func TestNormalizeSummary(t *testing.T) {
	t.Run("valid summary", func(t *testing.T) {
		raw := `{"title":"Photosynthesis","content":"Plants convert light.","keyPoints":["light","chlorophyll"]}`
		res := NormalizeSummary(raw)

		if res.Fallback {
			t.Fatal("expected parsed result")
		}
		if res.Value.Title != "Photosynthesis" {
			t.Errorf("Title = %q", res.Value.Title)
		}
		if len(res.Value.KeyPoints) != 2 {
			t.Errorf("KeyPoints = %v", res.Value.KeyPoints)
		}
	})

	t.Run("prose falls back", func(t *testing.T) {
		raw := "This chapter explains photosynthesis in depth."
		res := NormalizeSummary(raw)

		if !res.Fallback {
			t.Fatal("expected fallback")
		}
		if res.Value.Title != "Generated Summary" {
			t.Errorf("Title = %q, want Generated Summary", res.Value.Title)
		}
		if res.Value.Content != raw {
			t.Errorf("Content = %q, want original raw", res.Value.Content)
		}
		wantPoints := []string{
			"Summary generated from provided content",
			"Content processed using AI analysis",
		}
		if len(res.Value.KeyPoints) != 2 || res.Value.KeyPoints[0] != wantPoints[0] || res.Value.KeyPoints[1] != wantPoints[1] {
			t.Errorf("KeyPoints = %v, want %v", res.Value.KeyPoints, wantPoints)
		}
	})
}

func TestNormalizeMindMap(t *testing.T) {
	t.Run("valid mind map", func(t *testing.T) {
		raw := `{"title":"Cells","nodes":[{"id":"1","label":"Cell","type":"topic","position":{"x":0,"y":0}}],"edges":[]}`
		res := NormalizeMindMap(raw)

		if res.Fallback {
			t.Fatal("expected parsed result")
		}
		if res.Value.Title != "Cells" {
			t.Errorf("Title = %q", res.Value.Title)
		}
		if len(res.Value.Nodes) != 1 {
			t.Errorf("node count = %d, want 1", len(res.Value.Nodes))
		}
	})

	t.Run("prose falls back to fixed star", func(t *testing.T) {
		res := NormalizeMindMap("central idea with two branches")

		if !res.Fallback {
			t.Fatal("expected fallback")
		}
		if res.Value.Title != "Generated Mind Map" {
			t.Errorf("Title = %q, want Generated Mind Map", res.Value.Title)
		}
		if len(res.Value.Nodes) != 3 {
			t.Fatalf("node count = %d, want 3", len(res.Value.Nodes))
		}
		if res.Value.Nodes[0].Type != "topic" || res.Value.Nodes[1].Type != "subtopic" {
			t.Errorf("node types = %q, %q", res.Value.Nodes[0].Type, res.Value.Nodes[1].Type)
		}
		if res.Value.Nodes[1].Position.X != -200 || res.Value.Nodes[2].Position.X != 200 {
			t.Errorf("subtopic positions = %v, %v", res.Value.Nodes[1].Position, res.Value.Nodes[2].Position)
		}
		if len(res.Value.Edges) != 2 {
			t.Fatalf("edge count = %d, want 2", len(res.Value.Edges))
		}
		if res.Value.Edges[0].Source != "1" || res.Value.Edges[0].Target != "2" {
			t.Errorf("edge e1 = %+v", res.Value.Edges[0])
		}
		if res.Value.Edges[1].Source != "1" || res.Value.Edges[1].Target != "3" {
			t.Errorf("edge e2 = %+v", res.Value.Edges[1])
		}
	})
}
