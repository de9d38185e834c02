package http

import (
	"errors"
	"reflect"
	"strings"

	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/process"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields by their json name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("reviewstatus", func(fl validator.FieldLevel) bool {
		return document.ReviewStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("dockind", func(fl validator.FieldLevel) bool {
		return document.IsKnown(fl.Field().String())
	})
	_ = v.RegisterValidation("stepid", func(fl validator.FieldLevel) bool {
		return process.StepID(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("stepstatus", func(fl validator.FieldLevel) bool {
		return process.StepStatus(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "reviewstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of pending, approved, rejected"})
		case "dockind":
			out = append(out, FieldError{Field: field, Message: "is not a known document kind"})
		case "stepid":
			out = append(out, FieldError{Field: field, Message: "must be one of document_collection, document_organization, bank_submission"})
		case "stepstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of pending, in_progress, completed"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must have at least " + e.Param() + " item(s)"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
