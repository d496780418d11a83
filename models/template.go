package models

import "time"

// Template is a saved recurring booking pattern for one room.
type Template struct {
	ID              string       `bson:"id" json:"id"`
	Name            string       `bson:"name" json:"name" validate:"required"`
	Building        string       `bson:"building" json:"building" validate:"required"`
	Floor           string       `bson:"floor" json:"floor" validate:"required"`
	Room            string       `bson:"room" json:"room" validate:"required"`
	DayOfWeek       time.Weekday `bson:"dayOfWeek" json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime       string       `bson:"startTime" json:"startTime" validate:"required"`
	EndTime         string       `bson:"endTime" json:"endTime" validate:"required"`
	Teacher         string       `bson:"teacher" json:"teacher" validate:"required"`
	Subject         string       `bson:"subject" json:"subject" validate:"required"`
	Department      Department   `bson:"department" json:"department" validate:"required"`
	CreatedBy       string       `bson:"createdBy" json:"createdBy"`
	OverrideAllowed bool         `bson:"overrideAllowed" json:"overrideAllowed"`
	IsActive        bool         `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time    `bson:"updatedAt" json:"updatedAt"`
}
