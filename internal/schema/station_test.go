package schema

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oretally/oretally/internal/errs"
)

func TestStationCreate_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        StationCreate
		wantFields []string
	}{
		{
			name: "valid payload",
			req: StationCreate{
				Name: "ARC-L1",
				Efficiencies: []StationOreEfficiencyInput{
					{EfficiencyBonus: 0.12, OreID: 1},
					// Negative bonuses are legal; some stations refine an
					// ore worse than baseline.
					{EfficiencyBonus: -0.05, OreID: 2},
				},
			},
		},
		{
			name:       "efficiencies required",
			req:        StationCreate{Name: "ARC-L1"},
			wantFields: []string{"efficiencies"},
		},
		{
			name: "name too long",
			req: StationCreate{
				Name:         strings.Repeat("x", 51),
				Efficiencies: []StationOreEfficiencyInput{{OreID: 1}},
			},
			wantFields: []string{"name"},
		},
		{
			name: "efficiency entry without ore",
			req: StationCreate{
				Name:         "ARC-L1",
				Efficiencies: []StationOreEfficiencyInput{{EfficiencyBonus: 0.1}},
			},
			wantFields: []string{"ore_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, field := range tt.wantFields {
				assert.Contains(t, errorFields(err), field)
			}
		})
	}
}

func TestStationUpdate_Validate(t *testing.T) {
	assert.NoError(t, (&StationUpdate{}).Validate())
	assert.NoError(t, (&StationUpdate{Name: OptionalNull[string]()}).Validate())

	bad := StationUpdate{
		Name: OptionalOf(strings.Repeat("x", 51)),
		Efficiencies: OptionalOf([]StationOreEfficiencyInput{
			{EfficiencyBonus: 0.1}, // ore_id missing
		}),
	}
	err := bad.Validate()
	require.Error(t, err)

	fields := errorFields(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "ore_id")
}

func TestStationFromRecord(t *testing.T) {
	rec := StationRecord{
		ID:      2,
		Name:    "ARC-L1",
		Created: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Updated: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Efficiencies: []StationOreEfficiencyRecord{
			{EfficiencyBonus: 0.12, OreID: 5, Ore: &OreRecord{ID: 5, Name: "Taranite"}},
		},
	}

	got, err := StationFromRecord(rec)
	require.NoError(t, err)

	assert.Equal(t, "ARC-L1", got.Name)
	require.Len(t, got.Efficiencies, 1)
	assert.Equal(t, "Taranite", got.Efficiencies[0].OreName)
	assert.Equal(t, 0.12, got.Efficiencies[0].EfficiencyBonus)
}

func TestStationFromRecord_MissingOre(t *testing.T) {
	rec := StationRecord{
		ID:           2,
		Name:         "ARC-L1",
		Efficiencies: []StationOreEfficiencyRecord{{EfficiencyBonus: 0.12, OreID: 5}},
	}

	_, err := StationFromRecord(rec)

	var integrityErr *errs.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, "station ore efficiency", integrityErr.Entity)
	assert.Equal(t, "ore", integrityErr.Relation)
}
