package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GeminiProvider calls the text-embedding-004 endpoint (768 dimensions,
// matching the content_embeddings column).
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGeminiProvider(apiKey, baseURL string) Provider {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1"
	}
	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type geminiEmbedRequestPart struct {
	Text string `json:"text"`
}

type geminiEmbedRequestContent struct {
	Parts []geminiEmbedRequestPart `json:"parts"`
}

type geminiEmbedRequest struct {
	Model    string                    `json:"model"`
	Content  geminiEmbedRequestContent `json:"content"`
	TaskType string                    `json:"task_type,omitempty"`
}

type geminiEmbedResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

func (p *GeminiProvider) Generate(ctx context.Context, text string, taskType string) (*Response, error) {
	modelName := "text-embedding-004"

	geminiReq := geminiEmbedRequest{
		Model: modelName,
		Content: geminiEmbedRequestContent{
			Parts: []geminiEmbedRequestPart{
				{Text: text},
			},
		},
		TaskType: taskType,
	}
	geminiReqJson, err := json.Marshal(geminiReq)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/models/%s:embedContent", p.baseURL, modelName)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(geminiReqJson))
	if err != nil {
		return nil, err
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from gemini response, code %d, body %s", res.StatusCode, string(resByte))
	}

	var geminiRes geminiEmbedResponse
	if err := json.Unmarshal(resByte, &geminiRes); err != nil {
		return nil, err
	}

	return &Response{Values: geminiRes.Embedding.Values}, nil
}
