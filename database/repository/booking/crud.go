// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classalloc/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) InsertManyUnordered(ctx context.Context, bookings []models.Booking) (int, error) {
	if len(bookings) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 2*queryTimeout)
	defer cancel()

	docs := make([]interface{}, len(bookings))
	for i, b := range bookings {
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		docs[i] = b
	}

	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err == nil {
		return len(res.InsertedIDs), nil
	}

	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		inserted := len(docs) - len(bwe.WriteErrors)
		if bwe.WriteConcernError != nil || inserted < 0 {
			inserted = 0
		}
		return inserted, fmt.Errorf("bulk insert partially failed (%d of %d documents rejected): %w", len(bwe.WriteErrors), len(docs), err)
	}
	return 0, fmt.Errorf("bulk insert failed: %w", err)
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := r.findWithOwners(ctx, bson.M{"id": id}, nil, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	return &bookings[0], nil
}

func (r *mongoBookingRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting booking %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// DeleteBefore removes every booking dated strictly before date. ISO dates
// compare correctly as strings.
func (r *mongoBookingRepo) DeleteBefore(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 6*queryTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"date": bson.M{"$lt": date}})
	if err != nil {
		return 0, fmt.Errorf("error deleting bookings before %s: %w", date, err)
	}
	return res.DeletedCount, nil
}
