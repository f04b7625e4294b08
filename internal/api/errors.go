package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/abdelmajidelayachi/task-manager/internal/api/shared"
	"github.com/abdelmajidelayachi/task-manager/internal/domain"
	"github.com/abdelmajidelayachi/task-manager/internal/platform/logger"
	"github.com/abdelmajidelayachi/task-manager/internal/store"
)

// Error titles used in the error envelope.
const (
	errTitleNotFound       = "Resource Not Found"
	errTitleValidation     = "Validation Failed"
	errTitleBadRequest     = "Invalid Request Format"
	errTitleAuthentication = "Authentication Failed"
	errTitleConflict       = "Conflict"
	errTitleInternal       = "Internal Server Error"
)

// newValidator builds the request validator used by the handlers. Field
// names in validation errors come from the json tags so that
// fieldErrors keys match the wire names clients sent.
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

// fieldErrorsFrom converts a validator error into the fieldErrors map of
// the error envelope. Returns false if err is not a validation error.
func fieldErrorsFrom(err error) (map[string][]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	fieldErrors := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], validationMessage(fe))
	}
	return fieldErrors, true
}

// validationMessage renders a human-readable message for a single field
// validation failure.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", titleCase(fe.Field()))
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", titleCase(fe.Field()), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", titleCase(fe.Field()), fe.Param())
	case "oneof":
		return fmt.Sprintf("Invalid %s value '%v'. Valid values are: %s",
			fe.Field(), fe.Value(), strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", titleCase(fe.Field()))
	}
}

func titleCase(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// respondValidationError writes the 400 envelope for a failed request
// validation pass.
func respondValidationError(w http.ResponseWriter, r *http.Request, err error) {
	if fieldErrors, ok := fieldErrorsFrom(err); ok {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			errTitleValidation, "Request validation failed", fieldErrors)
		return
	}
	shared.RespondWithError(w, r, http.StatusBadRequest,
		errTitleValidation, "Request validation failed")
}

// respondTaskError translates an error from the task service into the
// envelope: not-found kinds (including unrecognized status text) map to
// 404, entity validation failures map to 400, everything else is a
// logged 500 with a generic body.
func respondTaskError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if store.IsNotFoundError(err) {
		shared.RespondWithError(w, r, http.StatusNotFound, errTitleNotFound, message)
		return
	}

	if isDomainValidationError(err) {
		shared.RespondWithError(w, r, http.StatusBadRequest, errTitleValidation, err.Error())
		return
	}

	logger.FromContext(r.Context()).Error("task operation failed",
		"error", err,
		"path", r.URL.Path,
		"method", r.Method)
	shared.RespondWithError(w, r, http.StatusInternalServerError, errTitleInternal,
		"An unexpected error occurred. Please try again later.")
}

// isDomainValidationError reports whether err is one of the entity
// validation errors. These can reach the handlers when a payload passes
// the request validator but fails an entity rule, and must surface as
// 400, never as an internal error.
func isDomainValidationError(err error) bool {
	return errors.Is(err, domain.ErrEmptyTitle) ||
		errors.Is(err, domain.ErrTitleTooLong) ||
		errors.Is(err, domain.ErrDescriptionTooLong) ||
		errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrInvalidPriority)
}
