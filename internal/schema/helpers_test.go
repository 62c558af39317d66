package schema

import (
	"github.com/oretally/oretally/internal/validation"
)

// errorFields flattens a Validate() result into the list of field names that
// failed, in reported order.
func errorFields(err error) []string {
	var fields []string
	for _, fe := range validation.Extract(err) {
		fields = append(fields, fe.Field)
	}
	return fields
}
