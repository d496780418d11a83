package booking

import "classalloc/models"

// OverrideAction is the outcome of evaluating a pairing's conflicts.
type OverrideAction int

const (
	// DecisionProceed: no conflicts, insert directly.
	DecisionProceed OverrideAction = iota
	// DecisionSkip: leave the pairing untouched.
	DecisionSkip
	// DecisionDeleteAndProceed: delete every conflict, then insert.
	DecisionDeleteAndProceed
)

func (a OverrideAction) String() string {
	switch a {
	case DecisionProceed:
		return "proceed"
	case DecisionSkip:
		return "skip"
	case DecisionDeleteAndProceed:
		return "delete_and_proceed"
	}
	return "unknown"
}

// OverrideDecision carries the action plus the bookings it applies to.
type OverrideDecision struct {
	Action    OverrideAction
	Deletable []models.Booking
	Protected []models.Booking
}

// CanOverride reports whether a conflicting booking may be deleted by a
// forced bulk run. Admin bookings are protected unless flagged.
func CanOverride(b models.Booking) bool {
	return b.Source != models.SourceAdmin || b.OverrideAllowed
}

// EvaluateOverride decides what to do with a pairing. Deletion is
// all-or-nothing: a single protected conflict skips the whole pairing.
func EvaluateOverride(conflicts []models.Booking, force bool) OverrideDecision {
	if len(conflicts) == 0 {
		return OverrideDecision{Action: DecisionProceed}
	}

	var d OverrideDecision
	for _, c := range conflicts {
		if CanOverride(c) {
			d.Deletable = append(d.Deletable, c)
		} else {
			d.Protected = append(d.Protected, c)
		}
	}

	if !force || len(d.Protected) > 0 {
		d.Action = DecisionSkip
		return d
	}
	d.Action = DecisionDeleteAndProceed
	return d
}
