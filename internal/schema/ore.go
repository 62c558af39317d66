package schema

import (
	"time"

	"github.com/oretally/oretally/internal/validation"
)

// Ore is the response shape for a mineable ore.
type Ore struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// OreRecord is the persisted ore shape.
type OreRecord struct {
	ID      int64
	Name    string
	Created time.Time
	Updated time.Time
}

func (r *OreRecord) related() Related {
	return Related{ID: r.ID, Name: r.Name}
}

// OreFromRecord projects a persisted ore into its response shape.
func OreFromRecord(rec OreRecord) Ore {
	return Ore{
		ID:      rec.ID,
		Name:    rec.Name,
		Created: rec.Created,
		Updated: rec.Updated,
	}
}

// OreCreate is the request shape for adding an ore.
type OreCreate struct {
	Name string `json:"name" validate:"required,max=50"`
}

func (r *OreCreate) Validate() error {
	return validation.Struct(r)
}

// OreUpdate is the request shape for modifying an ore.
type OreUpdate struct {
	Name Optional[string] `json:"name,omitzero"`
}

func (r *OreUpdate) Validate() error {
	var custom validation.CustomValidationErrors
	checkMaxLength(&custom, "name", r.Name, maxNameLength)
	return customOrNil(custom)
}
