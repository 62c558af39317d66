package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListResponse_TotalCountIndependentOfPage(t *testing.T) {
	// A paginated page: 57 matches total, 20 on this page. The envelope
	// must not recompute or reconcile the two.
	items := make([]Ore, 20)
	resp := NewListResponse(57, items)

	assert.Equal(t, int64(57), resp.TotalCount)
	assert.Len(t, resp.Items, 20)
}

func TestListResponse_MarshalJSON(t *testing.T) {
	resp := NewListResponse(1, []Related{{ID: 3, Name: "Quantainium"}})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"total_count": 1,
		"items": [{"id": 3, "name": "Quantainium"}]
	}`, string(data))
}

func TestListResponse_EmptyPage(t *testing.T) {
	resp := NewListResponse[MiningSessionListItem](0, []MiningSessionListItem{})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_count": 0, "items": []}`, string(data))
}
