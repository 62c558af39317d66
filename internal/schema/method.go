package schema

import (
	"errors"
	"time"

	"github.com/oretally/oretally/internal/errs"
	"github.com/oretally/oretally/internal/validation"
)

// MethodOreEfficiency is the response shape for one extraction-method/ore
// pairing. OreName is projected from the related ore record.
type MethodOreEfficiency struct {
	// Efficiency is the yield ratio of the method for this ore, in (0, 1].
	Efficiency float64 `json:"efficiency"`

	// Duration is the extraction time in seconds, strictly positive.
	Duration float64 `json:"duration"`

	OreID   int64  `json:"ore_id"`
	OreName string `json:"ore_name"`
}

// Method is the response shape for an extraction method and its per-ore
// efficiencies.
type Method struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Created      time.Time             `json:"created"`
	Updated      time.Time             `json:"updated"`
	Efficiencies []MethodOreEfficiency `json:"efficiencies"`
}

// MethodOreEfficiencyRecord is the persisted pairing shape with its ore
// relation resolved.
type MethodOreEfficiencyRecord struct {
	Efficiency float64
	Duration   float64
	OreID      int64
	Ore        *OreRecord
}

// MethodRecord is the persisted extraction-method shape.
type MethodRecord struct {
	ID           int64
	Name         string
	Created      time.Time
	Updated      time.Time
	Efficiencies []MethodOreEfficiencyRecord
}

func (r *MethodRecord) related() Related {
	return Related{ID: r.ID, Name: r.Name}
}

// MethodOreEfficiencyFromRecord projects one pairing. The ore relation is
// required; missing it is a data-integrity error.
func MethodOreEfficiencyFromRecord(rec MethodOreEfficiencyRecord) (MethodOreEfficiency, error) {
	if rec.Ore == nil {
		return MethodOreEfficiency{}, errs.NewIntegrityError("method ore efficiency", "ore")
	}

	return MethodOreEfficiency{
		Efficiency: rec.Efficiency,
		Duration:   rec.Duration,
		OreID:      rec.OreID,
		OreName:    rec.Ore.Name,
	}, nil
}

// MethodFromRecord projects a persisted extraction method and all of its
// pairings.
func MethodFromRecord(rec MethodRecord) (Method, error) {
	efficiencies := make([]MethodOreEfficiency, 0, len(rec.Efficiencies))
	for _, e := range rec.Efficiencies {
		eff, err := MethodOreEfficiencyFromRecord(e)
		if err != nil {
			return Method{}, err
		}
		efficiencies = append(efficiencies, eff)
	}

	return Method{
		ID:           rec.ID,
		Name:         rec.Name,
		Created:      rec.Created,
		Updated:      rec.Updated,
		Efficiencies: efficiencies,
	}, nil
}

// MethodOreEfficiencyInput is the inbound pairing shape for method
// create/update requests. Efficiency must lie in (0, 1]: zero would mean the
// method extracts nothing, above one would mint ore from nowhere.
type MethodOreEfficiencyInput struct {
	Efficiency float64 `json:"efficiency" validate:"gt=0,lte=1"`
	Duration   float64 `json:"duration" validate:"gt=0"`
	OreID      int64   `json:"ore_id" validate:"required"`
}

// MethodCreate is the request shape for adding an extraction method.
type MethodCreate struct {
	Name         string                     `json:"name" validate:"required,max=50"`
	Efficiencies []MethodOreEfficiencyInput `json:"efficiencies" validate:"required,dive"`
}

func (r *MethodCreate) Validate() error {
	return validation.Struct(r)
}

// MethodUpdate is the request shape for modifying an extraction method.
type MethodUpdate struct {
	Name         Optional[string]                     `json:"name,omitzero"`
	Efficiencies Optional[[]MethodOreEfficiencyInput] `json:"efficiencies,omitzero"`
}

func (r *MethodUpdate) Validate() error {
	var custom validation.CustomValidationErrors
	checkMaxLength(&custom, "name", r.Name, maxNameLength)

	errList := []error{customOrNil(custom)}
	if efficiencies, ok := r.Efficiencies.Value(); ok {
		for i := range efficiencies {
			errList = append(errList, validation.Struct(&efficiencies[i]))
		}
	}

	return errors.Join(errList...)
}
