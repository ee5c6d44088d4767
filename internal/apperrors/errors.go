package apperrors

import "errors"

// Sentinel errors for the generation pipeline and its surrounding request
// handling. Controllers and middleware match on these with errors.Is; the
// messages below are the stable, user-safe strings returned to clients.
var (
	// ErrValidation is returned when a request body fails schema validation.
	ErrValidation = errors.New("validation failed")

	// ErrNoContent is returned when neither content ids nor raw text resolve
	// to non-empty study material.
	ErrNoContent = errors.New("no content provided for generation")

	// ErrGenerationUnavailable is returned when no generation backend is
	// configured. Surfaced to clients as a generic server error.
	ErrGenerationUnavailable = errors.New("generation service is not available")

	// ErrGenerationBackend is returned when the external generation call fails.
	ErrGenerationBackend = errors.New("generation backend request failed")

	// ErrEmptyGeneration is returned when the backend call succeeds but
	// returns no textual content.
	ErrEmptyGeneration = errors.New("generation backend returned no content")

	// ErrPersistence is returned when storing a generated artifact fails.
	ErrPersistence = errors.New("failed to store generated artifact")

	// ErrUnauthorized is returned for missing/invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned on duplicate-record writes (e.g. email taken).
	ErrConflict = errors.New("record already exists")

	// ErrForbidden is returned when the caller may not act on the resource.
	ErrForbidden = errors.New("insufficient permissions")
)

// IsClientError reports whether err should map to a 4xx status.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNoContent) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrForbidden)
}

// messageError pairs a sentinel with a user-facing message. The sentinel
// stays matchable through errors.Is while Error() carries the stable string
// shown to clients.
type messageError struct {
	err error
	msg string
}

func (e *messageError) Error() string {
	return e.msg
}

func (e *messageError) Unwrap() error {
	return e.err
}

// WithMessage attaches a stable client-facing message to a sentinel error.
func WithMessage(err error, msg string) error {
	return &messageError{err: err, msg: msg}
}
