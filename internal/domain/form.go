package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Name length bounds, counted in runes after trimming.
const (
	MinNameLength = 4
	MaxNameLength = 16
)

// Field names a form field.
type Field string

const (
	FieldName  Field = "name"
	FieldDesc  Field = "desc"
	FieldCover Field = "cover"
)

// FormValues holds the create-organization form. It doubles as the request body.
type FormValues struct {
	Name  string `json:"name" validate:"required,min=4,max=16"`
	Desc  string `json:"desc"`
	Cover string `json:"cover"`
}

// NewFormValues returns the initial form with the given default cover.
func NewFormValues(defaultCover string) FormValues {
	return FormValues{Cover: defaultCover}
}

// Get returns the value of the named field.
func (v FormValues) Get(field Field) string {
	switch field {
	case FieldName:
		return v.Name
	case FieldDesc:
		return v.Desc
	case FieldCover:
		return v.Cover
	default:
		return ""
	}
}

// With returns a copy with the named field replaced. Unknown fields are ignored.
func (v FormValues) With(field Field, value string) FormValues {
	switch field {
	case FieldName:
		v.Name = value
	case FieldDesc:
		v.Desc = value
	case FieldCover:
		v.Cover = value
	}
	return v
}

// Normalize trims the name. Description and cover are sent as entered.
// It is idempotent.
func (v FormValues) Normalize() FormValues {
	v.Name = strings.TrimSpace(v.Name)
	return v
}

// ValidationReason classifies a rejected organization name.
type ValidationReason string

const (
	ReasonEmpty    ValidationReason = "empty"
	ReasonTooShort ValidationReason = "too-short"
	ReasonTooLong  ValidationReason = "too-long"
)

var reasonMessages = map[ValidationReason]string{
	ReasonEmpty:    "Title is required !",
	ReasonTooShort: "Title must greater than or equal 4 characters !",
	ReasonTooLong:  "Title must less than or equal 16 characters",
}

// ValidationError reports why the form cannot be submitted.
type ValidationError struct {
	Field  Field
	Reason ValidationReason
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Message is the text shown to the user.
func (e ValidationError) Message() string {
	if msg, ok := reasonMessages[e.Reason]; ok {
		return msg
	}
	return string(e.Reason)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate normalizes the form and checks the name bounds. The returned
// values are the trimmed ones to send; on failure the error wraps a
// ValidationError under CodeValidationFailed.
func Validate(values FormValues) (FormValues, error) {
	values = values.Normalize()

	err := validate.Struct(values)
	if err == nil {
		return values, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return values, validatorFailure(err)
	}

	verr := ValidationError{Field: FieldName, Reason: reasonForTag(fieldErrs[0].Tag())}
	return values, validationFailed(verr)
}

func reasonForTag(tag string) ValidationReason {
	switch tag {
	case "min":
		return ReasonTooShort
	case "max":
		return ReasonTooLong
	default:
		return ReasonEmpty
	}
}

// AsValidationError extracts a ValidationError from err's chain.
func AsValidationError(err error) (ValidationError, bool) {
	var verr ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return ValidationError{}, false
}
