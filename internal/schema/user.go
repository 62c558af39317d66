package schema

import (
	"errors"
	"fmt"
	"time"

	"github.com/oretally/oretally/internal/validation"
)

// User is the response shape for an account.
type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Mail      string     `json:"mail"`
	IsGoogle  bool       `json:"is_google"`
	IsActive  bool       `json:"is_active"`
	Created   time.Time  `json:"created"`
	Updated   time.Time  `json:"updated"`
	LastLogin *time.Time `json:"last_login"`

	// Scopes holds the permission scope names granted to the user, in the
	// order the store yields them.
	Scopes []string `json:"scopes"`
}

// UserScope is the response shape for a single permission scope grant.
type UserScope struct {
	Scope   string     `json:"scope"`
	Created *time.Time `json:"created"`
}

// UserScopeRecord is the persisted shape of one scope grant.
type UserScopeRecord struct {
	Scope   string
	Created *time.Time
}

// UserRecord is the persisted account shape the store hands to projections,
// with the scope relation already resolved.
type UserRecord struct {
	ID        int64
	Name      string
	Mail      string
	IsGoogle  bool
	IsActive  bool
	Created   time.Time
	Updated   time.Time
	LastLogin *time.Time
	Scopes    []UserScopeRecord
}

func (r *UserRecord) related() Related {
	return Related{ID: r.ID, Name: r.Name}
}

// UserFromRecord projects a persisted account into its response shape.
// Scopes are flattened to their names.
func UserFromRecord(rec UserRecord) User {
	scopes := make([]string, 0, len(rec.Scopes))
	for _, s := range rec.Scopes {
		scopes = append(scopes, s.Scope)
	}

	return User{
		ID:        rec.ID,
		Name:      rec.Name,
		Mail:      rec.Mail,
		IsGoogle:  rec.IsGoogle,
		IsActive:  rec.IsActive,
		Created:   rec.Created,
		Updated:   rec.Updated,
		LastLogin: rec.LastLogin,
		Scopes:    scopes,
	}
}

// UserScopeFromRecord projects a persisted scope grant.
func UserScopeFromRecord(rec UserScopeRecord) UserScope {
	return UserScope{Scope: rec.Scope, Created: rec.Created}
}

// Login is the request shape for credential sign-in.
type Login struct {
	Username string `json:"username" validate:"required,max=250"`
	Password string `json:"password" validate:"required,max=250"`
}

func (r *Login) Validate() error {
	return validation.Struct(r)
}

// UserCreate is the request shape for registering an account.
type UserCreate struct {
	Name            string   `json:"name" validate:"required,max=50"`
	Mail            string   `json:"mail" validate:"required,max=250,mailshape"`
	Password        string   `json:"password" validate:"required,max=250"`
	PasswordConfirm string   `json:"password_confirm" validate:"required,max=250"`
	IsGoogle        bool     `json:"is_google"`
	IsActive        bool     `json:"is_active"`
	Scopes          []string `json:"scopes" validate:"omitempty,dive,max=50"`
}

func (r *UserCreate) Validate() error {
	return errors.Join(validation.Struct(r), customOrNil(r.passwordsMatch()))
}

// passwordsMatch compares password and password_confirm when both are
// supplied. Supplying only one side is not an error here; the required tags
// report missing fields separately.
func (r *UserCreate) passwordsMatch() validation.CustomValidationErrors {
	if r.Password == "" || r.PasswordConfirm == "" {
		return nil
	}
	if r.Password != r.PasswordConfirm {
		return validation.CustomValidationErrors{{
			Field:   "password_confirm",
			Message: "passwords do not match",
		}}
	}
	return nil
}

// UserUpdate is the request shape for modifying an account. Every field is
// three-state: absent leaves the column unchanged, null clears it.
type UserUpdate struct {
	Name            Optional[string]   `json:"name,omitzero"`
	Mail            Optional[string]   `json:"mail,omitzero"`
	Password        Optional[string]   `json:"password,omitzero"`
	PasswordConfirm Optional[string]   `json:"password_confirm,omitzero"`
	IsGoogle        Optional[bool]     `json:"is_google,omitzero"`
	IsActive        Optional[bool]     `json:"is_active,omitzero"`
	Scopes          Optional[[]string] `json:"scopes,omitzero"`
}

func (r *UserUpdate) Validate() error {
	var custom validation.CustomValidationErrors

	checkMaxLength(&custom, "name", r.Name, maxNameLength)
	checkMaxLength(&custom, "mail", r.Mail, maxMailLength)
	checkMailShape(&custom, "mail", r.Mail)
	checkMaxLength(&custom, "password", r.Password, maxPasswordLength)
	checkMaxLength(&custom, "password_confirm", r.PasswordConfirm, maxPasswordLength)

	if scopes, ok := r.Scopes.Value(); ok {
		for i, s := range scopes {
			checkMaxLength(&custom, fmt.Sprintf("scopes[%d]", i), OptionalOf(s), maxScopeLength)
		}
	}

	// Password confirmation only applies when both sides were supplied:
	// clearing a password without confirmation is accepted as-is. Flagged
	// for product review, preserved for compatibility.
	if r.Password.IsSet() && r.PasswordConfirm.IsSet() {
		pv, pok := r.Password.Value()
		cv, cok := r.PasswordConfirm.Value()
		if pok != cok || (pok && pv != cv) {
			custom = append(custom, validation.CustomValidationError{
				Field:   "password_confirm",
				Message: "passwords do not match",
			})
		}
	}

	return customOrNil(custom)
}

// UserQuery is the request shape for filtering account lists. Unset fields
// do not participate in the filter.
type UserQuery struct {
	ID        Optional[int64]     `json:"id,omitzero"`
	Name      Optional[string]    `json:"name,omitzero"`
	Mail      Optional[string]    `json:"mail,omitzero"`
	IsGoogle  Optional[bool]      `json:"is_google,omitzero"`
	IsActive  Optional[bool]      `json:"is_active,omitzero"`
	Created   Optional[time.Time] `json:"created,omitzero"`
	Updated   Optional[time.Time] `json:"updated,omitzero"`
	LastLogin Optional[time.Time] `json:"last_login,omitzero"`
}

func (r *UserQuery) Validate() error {
	var custom validation.CustomValidationErrors
	checkMailShape(&custom, "mail", r.Mail)
	return customOrNil(custom)
}
