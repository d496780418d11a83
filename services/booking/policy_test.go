package booking

import (
	"testing"

	"classalloc/models"

	"github.com/stretchr/testify/assert"
)

func TestCanOverride(t *testing.T) {
	assert.True(t, CanOverride(models.Booking{Source: models.SourceUser}))
	assert.True(t, CanOverride(models.Booking{Source: models.SourceTemplate}))
	assert.False(t, CanOverride(models.Booking{Source: models.SourceAdmin}))
	assert.True(t, CanOverride(models.Booking{Source: models.SourceAdmin, OverrideAllowed: true}))
}

func TestEvaluateOverride(t *testing.T) {
	user := models.Booking{ID: "u", Source: models.SourceUser}
	tpl := models.Booking{ID: "t", Source: models.SourceTemplate}
	locked := models.Booking{ID: "a", Source: models.SourceAdmin}

	cases := []struct {
		name      string
		conflicts []models.Booking
		force     bool
		action    OverrideAction
		deletable int
		protected int
	}{
		{"no conflicts", nil, false, DecisionProceed, 0, 0},
		{"no conflicts forced", nil, true, DecisionProceed, 0, 0},
		{"conflict without force", []models.Booking{user}, false, DecisionSkip, 1, 0},
		{"forced over user bookings", []models.Booking{user, tpl}, true, DecisionDeleteAndProceed, 2, 0},
		{"forced with protected", []models.Booking{locked}, true, DecisionSkip, 0, 1},
		{"mixed is all or nothing", []models.Booking{user, locked}, true, DecisionSkip, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := EvaluateOverride(tc.conflicts, tc.force)
			assert.Equal(t, tc.action, d.Action, d.Action.String())
			assert.Len(t, d.Deletable, tc.deletable)
			assert.Len(t, d.Protected, tc.protected)
		})
	}
}
