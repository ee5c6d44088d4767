package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"studentdrive-be/pkg/llm"
)

// stubProvider records every Chat call and replies from a script.
type stubProvider struct {
	calls    int
	lastMsgs []llm.Message
	lastOpts llm.Options
	response string
	err      error
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.calls++
	s.lastMsgs = history
	s.lastOpts = llm.Options{}
	for _, opt := range options {
		opt(&s.lastOpts)
	}
	return s.response, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestClientNilProviderFailsFast(t *testing.T) {
	client := NewClient(nil)

	if client.Available() {
		t.Error("Available() = true, want false")
	}

	_, err := client.GenerateFlashcards(context.Background(), "text", 10)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("GenerateFlashcards err = %v, want ErrUnavailable", err)
	}
	_, err = client.GenerateQuiz(context.Background(), "text", 5)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("GenerateQuiz err = %v, want ErrUnavailable", err)
	}
	_, err = client.GenerateSummary(context.Background(), "text")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("GenerateSummary err = %v, want ErrUnavailable", err)
	}
	_, err = client.GenerateMindMap(context.Background(), "text")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("GenerateMindMap err = %v, want ErrUnavailable", err)
	}
}

func TestClientBackendError(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	client := NewClient(provider)

	_, err := client.GenerateSummary(context.Background(), "text")
	if !errors.Is(err, ErrBackend) {
		t.Fatalf("err = %v, want ErrBackend", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("err = %v, want wrapped cause", err)
	}
}

func TestClientEmptyResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(&stubProvider{response: tt.response})

			_, err := client.GenerateFlashcards(context.Background(), "text", 10)
			if !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("err = %v, want ErrEmptyResponse", err)
			}
		})
	}
}

func TestClientRequestShape(t *testing.T) {
	tests := []struct {
		name            string
		call            func(c *Client) error
		wantUserPrefix  string
		wantTemperature float64
		wantMaxTokens   int
	}{
		{
			name: "flashcards",
			call: func(c *Client) error {
				_, err := c.GenerateFlashcards(context.Background(), "cell biology", 12)
				return err
			},
			wantUserPrefix:  "Create 12 flashcards from this content:",
			wantTemperature: 0.7,
			wantMaxTokens:   2000,
		},
		{
			name: "quiz",
			call: func(c *Client) error {
				_, err := c.GenerateQuiz(context.Background(), "cell biology", 7)
				return err
			},
			wantUserPrefix:  "Create a 7-question quiz from this content:",
			wantTemperature: 0.7,
			wantMaxTokens:   3000,
		},
		{
			name: "summary",
			call: func(c *Client) error {
				_, err := c.GenerateSummary(context.Background(), "cell biology")
				return err
			},
			wantUserPrefix:  "Summarize this content:",
			wantTemperature: 0.5,
			wantMaxTokens:   1500,
		},
		{
			name: "mind map",
			call: func(c *Client) error {
				_, err := c.GenerateMindMap(context.Background(), "cell biology")
				return err
			},
			wantUserPrefix:  "Create a mind map from this content:",
			wantTemperature: 0.7,
			wantMaxTokens:   2500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{response: "not json, forces fallback"}
			client := NewClient(provider)

			if err := tt.call(client); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if provider.calls != 1 {
				t.Fatalf("calls = %d, want 1", provider.calls)
			}
			if len(provider.lastMsgs) != 2 {
				t.Fatalf("message count = %d, want system + user", len(provider.lastMsgs))
			}
			if provider.lastMsgs[0].Role != "system" {
				t.Errorf("first role = %q, want system", provider.lastMsgs[0].Role)
			}
			if provider.lastMsgs[1].Role != "user" {
				t.Errorf("second role = %q, want user", provider.lastMsgs[1].Role)
			}
			if !strings.HasPrefix(provider.lastMsgs[1].Content, tt.wantUserPrefix) {
				t.Errorf("user prompt = %q, want prefix %q", provider.lastMsgs[1].Content, tt.wantUserPrefix)
			}
			if !strings.Contains(provider.lastMsgs[1].Content, "cell biology") {
				t.Error("user prompt missing source text")
			}
			if provider.lastOpts.Temperature != tt.wantTemperature {
				t.Errorf("Temperature = %v, want %v", provider.lastOpts.Temperature, tt.wantTemperature)
			}
			if provider.lastOpts.MaxTokens != tt.wantMaxTokens {
				t.Errorf("MaxTokens = %d, want %d", provider.lastOpts.MaxTokens, tt.wantMaxTokens)
			}
		})
	}
}

func TestClientParsedResponsePassesThrough(t *testing.T) {
	provider := &stubProvider{response: `[{"front":"Q","back":"A"}]`}
	client := NewClient(provider)

	res, err := client.GenerateFlashcards(context.Background(), "text", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Fallback {
		t.Error("Fallback = true, want parsed")
	}
	if len(res.Value) != 1 || res.Value[0].Front != "Q" {
		t.Errorf("Value = %+v", res.Value)
	}
}
