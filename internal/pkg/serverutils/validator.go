package serverutils

import (
	"fmt"
	"strings"

	"studentdrive-be/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts the first group of
// violations into an ErrValidation naming the offending fields, so the error
// handler can echo which part of the body was rejected.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.WithMessage(apperrors.ErrValidation, "invalid request body")
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}

	return apperrors.WithMessage(
		apperrors.ErrValidation,
		"validation failed on: "+strings.Join(fields, ", "),
	)
}
