package directoryRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classalloc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

func (r *mongoDirectoryRepo) ListBuildings(ctx context.Context) ([]models.Building, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.buildings.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch buildings: %w", err)
	}
	defer cursor.Close(ctx)

	var buildings []models.Building
	if err := cursor.All(ctx, &buildings); err != nil {
		return nil, fmt.Errorf("error decoding buildings: %w", err)
	}
	return buildings, nil
}

func (r *mongoDirectoryRepo) GetBuilding(ctx context.Context, id string) (*models.Building, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var building models.Building
	err := r.buildings.FindOne(ctx, bson.M{"id": id}).Decode(&building)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBuildingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching building %s: %w", id, err)
	}
	return &building, nil
}

func (r *mongoDirectoryRepo) ListFloors(ctx context.Context, buildingID string) ([]models.Floor, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.floors.Find(ctx, bson.M{"building": buildingID}, options.Find().SetSort(bson.D{{Key: "number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch floors: %w", err)
	}
	defer cursor.Close(ctx)

	var floors []models.Floor
	if err := cursor.All(ctx, &floors); err != nil {
		return nil, fmt.Errorf("error decoding floors: %w", err)
	}
	return floors, nil
}

func (r *mongoDirectoryRepo) GetFloor(ctx context.Context, id string) (*models.Floor, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var floor models.Floor
	err := r.floors.FindOne(ctx, bson.M{"id": id}).Decode(&floor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrFloorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching floor %s: %w", id, err)
	}
	return &floor, nil
}

// ListRoomsOnFloor returns the rooms of a floor ordered by id so bulk runs
// visit them in a stable order.
func (r *mongoDirectoryRepo) ListRoomsOnFloor(ctx context.Context, floorID string) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.rooms.Find(ctx, bson.M{"floor": floorID}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (r *mongoDirectoryRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := func(name string) *options.IndexOptions { return options.Index().SetUnique(true).SetName(name) }
	if _, err := r.buildings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique("unique_id")},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique("unique_name")},
	}); err != nil {
		return fmt.Errorf("failed to create building indexes: %w", err)
	}
	if _, err := r.floors.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique("unique_id")},
		{Keys: bson.D{{Key: "building", Value: 1}}, Options: options.Index().SetName("building_idx")},
	}); err != nil {
		return fmt.Errorf("failed to create floor indexes: %w", err)
	}
	if _, err := r.rooms.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique("unique_id")},
		{Keys: bson.D{{Key: "floor", Value: 1}}, Options: options.Index().SetName("floor_idx")},
	}); err != nil {
		return fmt.Errorf("failed to create room indexes: %w", err)
	}
	return nil
}
