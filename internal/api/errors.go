package api

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/medtrack/medtrack-api/internal/api/shared"
	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/service"
	"github.com/medtrack/medtrack-api/internal/service/auth"
	"github.com/medtrack/medtrack-api/internal/store"
)

// newValidator constructs the request validator used by the handlers.
// Struct fields are reported under their JSON names so validation failure
// messages line up with what the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrUnknownUser),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors. Duplicate email is deliberately a 400, not a 409,
	// matching the signup contract.
	case errors.Is(err, auth.ErrInvalidPassword),
		errors.Is(err, auth.ErrEmptyPassword),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, service.ErrEmptyPayload),
		errors.Is(err, service.ErrEmptyRecord),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, domain.ErrNegativeDose):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrUnknownUser):
		return "User does not exist"

	case errors.Is(err, auth.ErrInvalidPassword):
		return "Invalid password"

	case errors.Is(err, auth.ErrEmptyPassword):
		return "Password cannot be empty"

	case errors.Is(err, store.ErrEmailExists):
		return "User already exists"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrDrugNotFound):
		return "Drug not found"

	case errors.Is(err, store.ErrVaccinationNotFound):
		return "Vaccination not found"

	case errors.Is(err, service.ErrEmptyPayload):
		return "The request payload cannot be empty"

	case errors.Is(err, service.ErrEmptyRecord):
		return "Stored record is empty"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, domain.ErrNegativeDose):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message, logs the
// full (redacted) error, and writes the sanitized response.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// ValidationFieldErrors converts a validator error into one message per
// violated field, keyed by the field's JSON name.
func ValidationFieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = validationTagMessage(fe)
	}
	return fields
}

// validationTagMessage maps validation tags to user-friendly error messages.
func validationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "The " + fe.Field() + " cannot be empty"
	case "email":
		return "The " + fe.Field() + " must be a valid email address"
	case "min":
		return "The " + fe.Field() + " must be at least " + fe.Param() + " characters"
	case "gte":
		return "The " + fe.Field() + " must be at least " + fe.Param()
	case "max":
		return "The " + fe.Field() + " is too long"
	default:
		return "The " + fe.Field() + " is invalid"
	}
}
