package models

import "time"

// BulkRequest describes a recurring weekly booking intent across a horizon.
// An empty Room means every room on Floor.
type BulkRequest struct {
	Building      string       `json:"building" validate:"required"`
	Floor         string       `json:"floor" validate:"required"`
	Room          string       `json:"room,omitempty"`
	DayOfWeek     time.Weekday `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime     string       `json:"startTime" validate:"required"`
	EndTime       string       `json:"endTime" validate:"required"`
	Department    Department   `json:"department" validate:"required"`
	Subject       string       `json:"subject" validate:"required"`
	Teacher       string       `json:"teacher" validate:"required"`
	HorizonDays   int          `json:"horizonDays" validate:"min=1,max=365"`
	ForceOverride bool         `json:"forceOverride"`
	Admin         Actor        `json:"-"`
	Provenance    Provenance   `json:"-"`
}

// BulkResult aggregates the outcome of one bulk orchestration.
type BulkResult struct {
	Created       int      `json:"created"`
	Skipped       int      `json:"skipped"`
	Conflicts     int      `json:"conflicts"`
	Deleted       int      `json:"deleted"`
	AffectedDates []string `json:"affectedDates"`
	Errors        []string `json:"errors,omitempty"`
}
