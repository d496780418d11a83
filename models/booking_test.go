package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOwner(t *testing.T) {
	assert.Nil(t, ResolveOwner("", "Alice", "snap"))
	assert.Equal(t, &Owner{ID: "u1", Name: "Alice"}, ResolveOwner("u1", "Alice", "snap"))
	assert.Equal(t, &Owner{ID: "u1", Name: "snap"}, ResolveOwner("u1", "", "snap"))
	assert.Equal(t, &Owner{ID: "u1"}, ResolveOwner("u1", "", ""))
}

func TestBooking_JSONExposesResolvedOwner(t *testing.T) {
	b := Booking{ID: "b1", BookedBy: "u1", Owner: ResolveOwner("u1", "Alice", "")}
	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, map[string]any{"_id": "u1", "name": "Alice"}, out["bookedBy"])
	assert.Equal(t, "u1", b.OwnerID())
}

func TestDepartmentValid(t *testing.T) {
	assert.True(t, DepartmentCSECore.Valid())
	assert.False(t, Department("MECH").Valid())
}
