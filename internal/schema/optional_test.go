package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Name Optional[string] `json:"name,omitzero"`
	}

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantNull  bool
		wantValue string
	}{
		{
			name: "absent field stays unset",
			body: `{}`,
		},
		{
			name:     "explicit null is set and null",
			body:     `{"name": null}`,
			wantSet:  true,
			wantNull: true,
		},
		{
			name:      "value is set with value",
			body:      `{"name": "Agricium"}`,
			wantSet:   true,
			wantValue: "Agricium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.Equal(t, tt.wantSet, p.Name.IsSet())
			assert.Equal(t, tt.wantNull, p.Name.IsNull())

			v, ok := p.Name.Value()
			assert.Equal(t, tt.wantSet && !tt.wantNull, ok)
			assert.Equal(t, tt.wantValue, v)
		})
	}
}

func TestOptional_MarshalJSON(t *testing.T) {
	type payload struct {
		Name Optional[string] `json:"name,omitzero"`
		Age  Optional[int]    `json:"age,omitzero"`
	}

	p := payload{
		Name: OptionalNull[string](),
		Age:  OptionalOf(42),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": null, "age": 42}`, string(data))

	// An unset field must not reappear as null on encode.
	data, err = json.Marshal(payload{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestOptional_RoundTrip(t *testing.T) {
	type payload struct {
		Name Optional[string]   `json:"name,omitzero"`
		Rate Optional[float64]  `json:"rate,omitzero"`
		Tags Optional[[]string] `json:"tags,omitzero"`
	}

	orig := payload{
		Name: OptionalOf("Laranite"),
		Rate: OptionalNull[float64](),
		Tags: OptionalOf([]string{"a", "b"}),
	}

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var got payload
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, orig, got)
}
