package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest   = errors.New("invalid booking request")
	ErrInvalidTime      = errors.New("invalid time format, expected HH:mm")
	ErrInvalidTimeRange = errors.New("invalid time range, end time must be after start time")
	ErrNoRooms          = errors.New("no rooms found for the specified criteria")
	ErrNoDates          = errors.New("no dates found for the requested day of week")
	ErrSlotTaken        = errors.New("room already booked for this time slot")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrForbidden        = errors.New("not authorized to cancel this booking")
	ErrFloorNotFound    = errors.New("floor not found")
)

// RequestError describes a rejected request field. It matches
// ErrInvalidRequest under errors.Is.
type RequestError struct {
	Code    string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RequestError) Unwrap() error { return ErrInvalidRequest }

func NewRequestError(msg string) error {
	return &RequestError{
		Code:    "invalidRequest",
		Message: msg,
	}
}
