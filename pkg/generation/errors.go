package generation

import "errors"

var (
	// ErrUnavailable is returned when no LLM provider is configured. No
	// external call is attempted in this state.
	ErrUnavailable = errors.New("generation backend not configured")

	// ErrBackend is returned when the external generation call fails.
	ErrBackend = errors.New("generation backend call failed")

	// ErrEmptyResponse is returned when the external call succeeds but
	// carries no textual content.
	ErrEmptyResponse = errors.New("empty response from generation backend")
)
