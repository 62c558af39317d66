package errs

import (
	"errors"
	"fmt"
)

// IntegrityError reports that a persisted record handed to a response
// projection is missing a relation the projection requires (e.g. a station
// efficiency row whose ore reference is gone).
//
// This is a data-integrity failure, not an input-validation failure: the
// record already passed validation when it was written, so retrying the
// request cannot fix it. Projections return it instead of silently
// defaulting the missing value.
type IntegrityError struct {
	// Entity is the record type being projected, e.g. "friendship".
	Entity string

	// Relation is the missing related object, e.g. "friend".
	Relation string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s record is missing its %s relation", e.Entity, e.Relation)
}

// NewIntegrityError creates an IntegrityError for the given entity/relation
// pair.
func NewIntegrityError(entity, relation string) *IntegrityError {
	return &IntegrityError{Entity: entity, Relation: relation}
}

// AsHTTP maps any error to the HTTPError the routing layer should respond
// with. IntegrityErrors become generic 500s: the record is corrupt and the
// client can do nothing about it. Errors that already are *HTTPError pass
// through unchanged.
func AsHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return NewInternalServerError()
}
