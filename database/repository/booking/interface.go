// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"classalloc/database"
	"classalloc/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrBookingNotFound is returned when a lookup or delete matches nothing.
var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) error
	// InsertManyUnordered inserts docs without stopping at the first failed
	// document and reports how many were written even when err is non-nil.
	InsertManyUnordered(ctx context.Context, docs []models.Booking) (int, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteBefore(ctx context.Context, date string) (int64, error)
	FindOverlapping(ctx context.Context, roomID, date, startTime, endTime string) ([]models.Booking, error)
	FindOverlappingOnFloor(ctx context.Context, floorID, date, startTime, endTime string) ([]models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int64, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll      *mongo.Collection
	usersColl string
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return NewMongoBookingRepoFor(database.DB())
}

// NewMongoBookingRepoFor binds the repository to an explicit database.
func NewMongoBookingRepoFor(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll:      db.Collection("bookings"),
		usersColl: "users",
	}
}
