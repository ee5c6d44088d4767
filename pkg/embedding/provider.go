package embedding

import "context"

// Task types understood by embedding backends that distinguish indexing from
// querying. Backends that don't simply ignore the hint.
const (
	TaskTypeDocument = "RETRIEVAL_DOCUMENT"
	TaskTypeQuery    = "RETRIEVAL_QUERY"
)

// Provider defines the interface for generating text embeddings
type Provider interface {
	Generate(ctx context.Context, text string, taskType string) (*Response, error)
}

type Response struct {
	Values []float32
}
