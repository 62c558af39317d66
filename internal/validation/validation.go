// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like length limits or
// mail formats) defined in struct tags, and extracts validation errors into
// a format the client can understand. Rules that tags cannot express
// (cross-field checks, constraints on three-state optional fields) are
// reported through CustomValidationErrors and merged into the same
// field-error list, so a single payload reports every violation at once.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/oretally/oretally/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,max=50"`)
//   - Implement Validate() error that runs validation.Struct(req) and joins
//     in any CustomValidationErrors for rules tags can't express
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific
// field, used for rules that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "validation failed"
}

// mailShapeRegexp is the mail rule: exactly one "@" with non-empty parts on
// both sides. Deliberately looser than RFC addresses; it matches what the
// account store accepts.
var mailShapeRegexp = regexp.MustCompile(`^[^@]+@[^@]+$`)

// MailShape reports whether s satisfies the mail format rule.
func MailShape(s string) bool {
	return mailShapeRegexp.MatchString(s)
}

var validate = newValidator()

// newValidator builds the shared validator instance.
//
// Field names in errors come from the `json` tag, so a violation on
// PasswordConfirm is reported as "password_confirm", matching the wire
// format the client sent.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	if err := v.RegisterValidation("mailshape", func(fl validator.FieldLevel) bool {
		return MailShape(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Struct runs tag-based validation on payload. The returned error, if any,
// is a validator.ValidationErrors.
func Struct(payload any) error {
	return validate.Struct(payload)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from the incoming body.
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400) with field-level errors if validation
//     fails.
//
// payload must be a pointer to a struct, otherwise binding cannot populate
// it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		// Echo wraps bind failures (malformed JSON, type mismatches) in its
		// own HTTPError; reuse its message when present.
		message := "malformed request body"
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if msg, ok := echoErr.Message.(string); ok && msg != "" {
				message = msg
			}
		}
		return errs.NewBadRequestError(message, nil)
	}

	if fieldErrors := Extract(payload.Validate()); fieldErrors != nil {
		return errs.NewBadRequestError("Validation failed", fieldErrors)
	}

	return nil
}

// Extract flattens a Validate() result into field errors. It understands
// validator.ValidationErrors, CustomValidationErrors, and errors.Join-ed
// combinations of the two, so callers can report tag violations and custom
// violations from the same payload together. Returns nil for a nil error.
func Extract(err error) []errs.FieldError {
	if err == nil {
		return nil
	}

	var fieldErrors []errs.FieldError
	collectFieldErrors(err, &fieldErrors)
	return fieldErrors
}

func collectFieldErrors(err error, out *[]errs.FieldError) {
	switch e := err.(type) {
	case validator.ValidationErrors:
		for _, fe := range e {
			*out = append(*out, errs.FieldError{
				Field: fe.Field(),
				Error: fieldMessage(fe),
			})
		}

	case CustomValidationErrors:
		for _, ce := range e {
			*out = append(*out, errs.FieldError{
				Field: ce.Field,
				Error: ce.Message,
			})
		}

	default:
		// errors.Join result: recurse into the children.
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, child := range joined.Unwrap() {
				collectFieldErrors(child, out)
			}
			return
		}
		*out = append(*out, errs.FieldError{Field: "", Error: err.Error()})
	}
}

// fieldMessage converts one validator tag failure into a user-friendly
// message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		// min means minimum length for strings, minimum value for numbers.
		if fe.Type().Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()

	case "max":
		if fe.Type().Kind() == reflect.String {
			return "must not exceed " + fe.Param() + " characters"
		}
		return "must not exceed " + fe.Param()

	case "gt":
		return "must be greater than " + fe.Param()

	case "gte":
		return "must be at least " + fe.Param()

	case "lt":
		return "must be less than " + fe.Param()

	case "lte":
		return "must be at most " + fe.Param()

	case "oneof":
		return "must be one of: " + fe.Param()

	case "mailshape":
		return "must be a valid mail address"

	case "email":
		return "must be a valid email address"

	case "dive":
		return "some items are invalid"

	default:
		if fe.Param() != "" {
			return fe.Tag() + ":" + fe.Param()
		}
		return fe.Tag()
	}
}
