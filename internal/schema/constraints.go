package schema

import (
	"fmt"
	"unicode/utf8"

	"github.com/oretally/oretally/internal/validation"
)

// Shared field limits. Lengths are counted in characters, matching the
// validator library's handling of `max` on strings.
const (
	maxNameLength     = 50
	maxMailLength     = 250
	maxPasswordLength = 250
	maxScopeLength    = 50
)

// checkMaxLength appends a field error when an optional string field is set
// to a value longer than max characters. Unset and null fields pass: there
// is nothing to measure.
func checkMaxLength(out *validation.CustomValidationErrors, field string, o Optional[string], max int) {
	if v, ok := o.Value(); ok && utf8.RuneCountInString(v) > max {
		*out = append(*out, validation.CustomValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", max),
		})
	}
}

// checkMailShape appends a field error when an optional mail field is set to
// a value that does not match the mail format rule.
func checkMailShape(out *validation.CustomValidationErrors, field string, o Optional[string]) {
	if v, ok := o.Value(); ok && !validation.MailShape(v) {
		*out = append(*out, validation.CustomValidationError{
			Field:   field,
			Message: "must be a valid mail address",
		})
	}
}

// customOrNil returns the collected custom errors as an error, or nil when
// none were collected. Needed because a typed nil slice stored in an error
// interface would otherwise read as non-nil.
func customOrNil(custom validation.CustomValidationErrors) error {
	if len(custom) == 0 {
		return nil
	}
	return custom
}
