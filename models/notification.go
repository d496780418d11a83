package models

// BookingUpdate is broadcast whenever the bookings of a date change.
type BookingUpdate struct {
	Date string `json:"date"`
}

// SweepResult reports one retention sweep run.
type SweepResult struct {
	Date         string `json:"date"`
	DeletedCount int64  `json:"deletedCount"`
}
