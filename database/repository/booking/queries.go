// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"regexp"

	"classalloc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindOverlapping returns bookings of a room on a date whose [start,end)
// interval intersects the requested one. Zero-padded HH:mm strings order
// the same way their minute offsets do, so the comparison runs in the store.
func (r *mongoBookingRepo) FindOverlapping(ctx context.Context, roomID, date, startTime, endTime string) ([]models.Booking, error) {
	filter := bson.M{
		"room":      roomID,
		"date":      date,
		"startTime": bson.M{"$lt": endTime},
		"endTime":   bson.M{"$gt": startTime},
	}
	bookings, err := r.findWithOwners(ctx, filter, nil, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("error finding overlapping bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) FindOverlappingOnFloor(ctx context.Context, floorID, date, startTime, endTime string) ([]models.Booking, error) {
	filter := bson.M{
		"floor":     floorID,
		"date":      date,
		"startTime": bson.M{"$lt": endTime},
		"endTime":   bson.M{"$gt": startTime},
	}
	bookings, err := r.findWithOwners(ctx, filter, bson.D{{Key: "startTime", Value: 1}}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("error finding floor bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) List(ctx context.Context, f models.BookingFilter) ([]models.Booking, int64, error) {
	filter := bson.M{}
	if f.Date != "" {
		filter["date"] = f.Date
	}
	if f.Building != "" {
		filter["building"] = f.Building
	}
	if f.Floor != "" {
		filter["floor"] = f.Floor
	}
	if f.Room != "" {
		filter["room"] = f.Room
	}
	if f.Department != "" {
		filter["department"] = f.Department
	}
	if f.Source != "" {
		filter["source"] = f.Source
	}
	if f.Teacher != "" {
		filter["teacher"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Teacher), Options: "i"}
	}

	countCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	total, err := r.coll.CountDocuments(countCtx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %w", err)
	}

	skip := int64((f.Page - 1) * f.Limit)
	sort := bson.D{{Key: "date", Value: -1}, {Key: "startTime", Value: 1}}
	bookings, err := r.findWithOwners(ctx, filter, sort, skip, int64(f.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("error listing bookings: %w", err)
	}
	return bookings, total, nil
}

// bookingWithOwner is the aggregation row: the stored booking plus the
// matching users documents joined on bookedBy.
type bookingWithOwner struct {
	models.Booking `bson:",inline"`
	OwnerDocs      []struct {
		Name string `bson:"name"`
	} `bson:"ownerDocs"`
}

// findWithOwners runs the match and joins the owning user so callers always
// receive a resolved owner instead of a bare reference.
func (r *mongoBookingRepo) findWithOwners(ctx context.Context, match bson.M, sort bson.D, skip, limit int64) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{{{Key: "$match", Value: match}}}
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$lookup", Value: bson.M{
		"from":         r.usersColl,
		"localField":   "bookedBy",
		"foreignField": "id",
		"as":           "ownerDocs",
	}}})

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []bookingWithOwner
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}

	bookings := make([]models.Booking, 0, len(rows))
	for _, row := range rows {
		b := row.Booking
		resolved := ""
		if len(row.OwnerDocs) > 0 {
			resolved = row.OwnerDocs[0].Name
		}
		b.Owner = models.ResolveOwner(b.BookedBy, resolved, b.BookedByName)
		bookings = append(bookings, b)
	}
	return bookings, nil
}
