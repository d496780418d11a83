package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "classalloc/database/repository/booking"
	directoryRepo "classalloc/database/repository/directory"
	"classalloc/models"
	"classalloc/services/audit"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 200
)

// CreateBooking books a single slot for actor. Admin bookings are audited.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, actor models.Actor, req models.CreateBookingRequest, prov models.Provenance) (*models.Booking, error) {
	if err := validateCreateRequest(actor, req); err != nil {
		return nil, err
	}

	conflicts, err := s.FindConflicts(ctx, req.Room, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		s.logger().Info("Slot already taken",
			zap.String("room", req.Room),
			zap.String("date", req.Date),
			zap.String("conflict", conflicts[0].ID),
		)
		return nil, ErrSlotTaken
	}

	now := s.now()
	// Single bookings stay overridable even when an admin makes them.
	createdByAdmin := ""
	if actor.IsAdmin() {
		createdByAdmin = actor.ID
	}

	b := models.Booking{
		ID:             uuid.New().String(),
		Building:       req.Building,
		Floor:          req.Floor,
		Room:           req.Room,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Purpose:        req.Purpose,
		BookedBy:       actor.ID,
		BookedByName:   actor.Name,
		Source:         models.SourceUser,
		Teacher:        req.Teacher,
		Subject:        req.Subject,
		Department:     req.Department,
		CreatedByAdmin: createdByAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Store.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	b.Owner = models.ResolveOwner(actor.ID, actor.Name, b.BookedByName)

	if actor.IsAdmin() {
		s.record(ctx, audit.AdminBookingEntry(actor, b, prov))
	}
	s.notify(ctx, b.Date)

	s.logger().Info("Booking created", zap.String("booking", b.ID), zap.String("room", b.Room), zap.String("date", b.Date))
	return &b, nil
}

// CancelBooking deletes a booking held by actor. Admins may cancel any
// booking; cancelling someone else's booking is audited before the delete.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, actor models.Actor, bookingID string, prov models.Provenance) error {
	b, err := s.Store.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}

	owner := b.OwnerID()
	if owner != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}
	if actor.IsAdmin() && owner != actor.ID {
		s.record(ctx, audit.DeleteEntry(actor, *b, prov))
	}

	if err := s.Store.DeleteByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to delete booking %s: %w", bookingID, err)
	}
	s.notify(ctx, b.Date)

	s.logger().Info("Booking cancelled", zap.String("booking", bookingID), zap.String("by", actor.ID))
	return nil
}

// ListBookings returns one page of bookings matching filter, newest date first.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter models.BookingFilter) (*models.BookingPage, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	bookings, total, err := s.Store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	limit := int64(filter.Limit)
	return &models.BookingPage{
		Bookings: bookings,
		Pagination: models.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

// FloorAvailability reports each room on a floor as booked or available for
// the window. Without a complete window every room is available.
func (s *DefaultBookingService) FloorAvailability(ctx context.Context, floorID, date, startTime, endTime string) ([]models.RoomAvailability, error) {
	if _, err := s.Directory.GetFloor(ctx, floorID); err != nil {
		if errors.Is(err, directoryRepo.ErrFloorNotFound) {
			return nil, ErrFloorNotFound
		}
		return nil, fmt.Errorf("failed to load floor %s: %w", floorID, err)
	}
	rooms, err := s.Directory.ListRoomsOnFloor(ctx, floorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms on floor %s: %w", floorID, err)
	}

	byRoom := map[string][]models.Booking{}
	if date != "" && startTime != "" && endTime != "" {
		if err := ValidateRange(startTime, endTime); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		bookings, err := s.Store.FindOverlappingOnFloor(ctx, floorID, date, startTime, endTime)
		if err != nil {
			return nil, fmt.Errorf("failed to load bookings on floor %s: %w", floorID, err)
		}
		for _, b := range bookings {
			byRoom[b.Room] = append(byRoom[b.Room], b)
		}
	}

	out := make([]models.RoomAvailability, 0, len(rooms))
	for _, r := range rooms {
		ra := models.RoomAvailability{
			ID:       r.ID,
			Number:   r.Number,
			Status:   models.RoomAvailable,
			Bookings: byRoom[r.ID],
		}
		if ra.Bookings == nil {
			ra.Bookings = []models.Booking{}
		}
		if len(ra.Bookings) > 0 {
			ra.Status = models.RoomBooked
		}
		out = append(out, ra)
	}
	return out, nil
}
