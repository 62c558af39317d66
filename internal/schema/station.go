package schema

import (
	"errors"
	"time"

	"github.com/oretally/oretally/internal/errs"
	"github.com/oretally/oretally/internal/validation"
)

// StationOreEfficiency is the response shape for one station/ore refining
// bonus. OreName is projected from the related ore record.
type StationOreEfficiency struct {
	EfficiencyBonus float64 `json:"efficiency_bonus"`
	OreID           int64   `json:"ore_id"`
	OreName         string  `json:"ore_name"`
}

// Station is the response shape for a refinery station and its per-ore
// bonuses.
type Station struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	Created      time.Time              `json:"created"`
	Updated      time.Time              `json:"updated"`
	Efficiencies []StationOreEfficiency `json:"efficiencies"`
}

// StationOreEfficiencyRecord is the persisted bonus shape with its ore
// relation resolved.
type StationOreEfficiencyRecord struct {
	EfficiencyBonus float64
	OreID           int64
	Ore             *OreRecord
}

// StationRecord is the persisted station shape.
type StationRecord struct {
	ID           int64
	Name         string
	Created      time.Time
	Updated      time.Time
	Efficiencies []StationOreEfficiencyRecord
}

func (r *StationRecord) related() Related {
	return Related{ID: r.ID, Name: r.Name}
}

// StationOreEfficiencyFromRecord projects one bonus entry. The ore relation
// is required; a bonus row pointing at a vanished ore is a data-integrity
// error.
func StationOreEfficiencyFromRecord(rec StationOreEfficiencyRecord) (StationOreEfficiency, error) {
	if rec.Ore == nil {
		return StationOreEfficiency{}, errs.NewIntegrityError("station ore efficiency", "ore")
	}

	return StationOreEfficiency{
		EfficiencyBonus: rec.EfficiencyBonus,
		OreID:           rec.OreID,
		OreName:         rec.Ore.Name,
	}, nil
}

// StationFromRecord projects a persisted station and all of its bonus
// entries.
func StationFromRecord(rec StationRecord) (Station, error) {
	efficiencies := make([]StationOreEfficiency, 0, len(rec.Efficiencies))
	for _, e := range rec.Efficiencies {
		eff, err := StationOreEfficiencyFromRecord(e)
		if err != nil {
			return Station{}, err
		}
		efficiencies = append(efficiencies, eff)
	}

	return Station{
		ID:           rec.ID,
		Name:         rec.Name,
		Created:      rec.Created,
		Updated:      rec.Updated,
		Efficiencies: efficiencies,
	}, nil
}

// StationOreEfficiencyInput is the inbound bonus shape for station
// create/update requests. The bonus itself is unconstrained; stations may
// refine some ores worse than baseline.
type StationOreEfficiencyInput struct {
	EfficiencyBonus float64 `json:"efficiency_bonus"`
	OreID           int64   `json:"ore_id" validate:"required"`
}

// StationCreate is the request shape for adding a station.
type StationCreate struct {
	Name         string                      `json:"name" validate:"required,max=50"`
	Efficiencies []StationOreEfficiencyInput `json:"efficiencies" validate:"required,dive"`
}

func (r *StationCreate) Validate() error {
	return validation.Struct(r)
}

// StationUpdate is the request shape for modifying a station.
type StationUpdate struct {
	Name         Optional[string]                      `json:"name,omitzero"`
	Efficiencies Optional[[]StationOreEfficiencyInput] `json:"efficiencies,omitzero"`
}

func (r *StationUpdate) Validate() error {
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
