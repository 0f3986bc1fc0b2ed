package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Azizul-haque1/plate-share-server/internal/query"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
	"github.com/Azizul-haque1/plate-share-server/internal/storage"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInvalidID is a validation failure for an id that is not in the store's native format.
	ErrInvalidID = fmt.Errorf("%w: malformed id", ErrValidation)

	// ErrStorageDisabled means photo endpoints were called without object storage.
	ErrStorageDisabled = errors.New("photo storage is not configured")
)

// ValidationError names the offending input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// storeErr classifies an adapter error. Anything other than a missing record is a store failure.
func storeErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrDisabled):
		return fmt.Errorf("%s: %w", op, ErrStorageDisabled)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
}

func paramErr(err error) error {
	var pe *query.ParamError
	if errors.As(err, &pe) {
		return &ValidationError{Field: pe.Param, Reason: pe.Reason}
	}
	return err
}

// fieldErr reports the first failed rule from validator/v10 under its JSON name.
func fieldErr(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Field: "body", Reason: err.Error()}
	}
	fe := verrs[0]
	reason := "failed " + fe.Tag()
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "email":
		reason = "must be an email address"
	case "url":
		reason = "must be a URL"
	case "min":
		reason = "must be at least " + fe.Param()
	case "max":
		reason = "must be at most " + fe.Param()
	}
	return &ValidationError{Field: fe.Field(), Reason: reason}
}

// newValidator reports struct fields by their json tag.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
