package booking

import (
	"context"
	"fmt"

	"classalloc/models"
)

// FindConflicts returns the bookings of roomID on date that overlap
// [startTime, endTime). Adjacent bookings are not conflicts.
func (s *DefaultBookingService) FindConflicts(ctx context.Context, roomID, date, startTime, endTime string) ([]models.Booking, error) {
	conflicts, err := s.Store.FindOverlapping(ctx, roomID, date, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check conflicts for room %s on %s: %w", roomID, date, err)
	}
	return conflicts, nil
}
