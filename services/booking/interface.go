package booking

import (
	"context"
	"time"

	"classalloc/models"

	"go.uber.org/zap"
)

// BookingService is the booking core used by the HTTP layer.
type BookingService interface {
	CreateBooking(ctx context.Context, actor models.Actor, req models.CreateBookingRequest, prov models.Provenance) (*models.Booking, error)
	CancelBooking(ctx context.Context, actor models.Actor, bookingID string, prov models.Provenance) error
	ListBookings(ctx context.Context, filter models.BookingFilter) (*models.BookingPage, error)
	FloorAvailability(ctx context.Context, floorID, date, startTime, endTime string) ([]models.RoomAvailability, error)
	BulkCreateBookings(ctx context.Context, req models.BulkRequest) (*models.BulkResult, error)
}

// BookingStore is the persistence the core needs. Reads return bookings
// with a resolved Owner.
type BookingStore interface {
	Create(ctx context.Context, booking models.Booking) error
	InsertManyUnordered(ctx context.Context, docs []models.Booking) (int, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	DeleteByID(ctx context.Context, id string) error
	FindOverlapping(ctx context.Context, roomID, date, startTime, endTime string) ([]models.Booking, error)
	FindOverlappingOnFloor(ctx context.Context, floorID, date, startTime, endTime string) ([]models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int64, error)
}

// RoomDirectory resolves rooms and floors.
type RoomDirectory interface {
	GetFloor(ctx context.Context, id string) (*models.Floor, error)
	ListRoomsOnFloor(ctx context.Context, floorID string) ([]models.Room, error)
}

// AuditSink records audit entries and never fails the caller.
type AuditSink interface {
	Record(ctx context.Context, record models.AuditRecord)
}

// ChangeNotifier broadcasts that the bookings of a date changed.
type ChangeNotifier interface {
	BookingsChanged(ctx context.Context, date string)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Store     BookingStore
	Directory RoomDirectory
	Audit     AuditSink
	Notifier  ChangeNotifier
	Metrics   *Metrics
	Logger    *zap.Logger
	Now       func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

func (s *DefaultBookingService) record(ctx context.Context, rec models.AuditRecord) {
	if s.Audit != nil {
		s.Audit.Record(ctx, rec)
	}
}

func (s *DefaultBookingService) notify(ctx context.Context, dates ...string) {
	if s.Notifier == nil {
		return
	}
	for _, d := range dates {
		s.Notifier.BookingsChanged(ctx, d)
	}
}
