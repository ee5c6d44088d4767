package serverutils

import (
	"errors"

	"studentdrive-be/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps the error taxonomy onto HTTP statuses. Everything not
// recognized is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrNoContent):
		return fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// standard error envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return ErrorHandler(ctx, err)
	}
}

// ErrorHandler is the central fiber error handler. Client errors echo their
// message; server errors only expose the attached stable message, never raw
// internals.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	code := statusFor(err)
	message := err.Error()

	if code == fiber.StatusInternalServerError {
		// 5xx messages must stay stable and user-safe. The pipeline attaches
		// its own messages via apperrors.WithMessage; anything else gets the
		// generic one.
		if !errors.Is(err, apperrors.ErrGenerationUnavailable) &&
			!errors.Is(err, apperrors.ErrGenerationBackend) &&
			!errors.Is(err, apperrors.ErrEmptyGeneration) &&
			!errors.Is(err, apperrors.ErrPersistence) {
			message = "Internal server error"
		}
	}

	return ctx.Status(code).JSON(ErrorResponse(code, message))
}
