// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Conflict detection: room + date, then the interval bounds.
		{
			Keys:    bson.D{{Key: "room", Value: 1}, {Key: "date", Value: 1}, {Key: "startTime", Value: 1}, {Key: "endTime", Value: 1}},
			Options: options.Index().SetName("room_date_interval_idx"),
		},
		{
			Keys:    bson.D{{Key: "floor", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("floor_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "bookedBy", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("owner_date_idx"),
		},
		// Retention sweep.
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
