package directoryRepo

import (
	"context"
	"errors"

	"classalloc/database"
	"classalloc/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrFloorNotFound    = errors.New("floor not found")
	ErrBuildingNotFound = errors.New("building not found")
)

// DirectoryRepository resolves the building/floor/room hierarchy.
type DirectoryRepository interface {
	ListBuildings(ctx context.Context) ([]models.Building, error)
	GetBuilding(ctx context.Context, id string) (*models.Building, error)
	ListFloors(ctx context.Context, buildingID string) ([]models.Floor, error)
	GetFloor(ctx context.Context, id string) (*models.Floor, error)
	ListRoomsOnFloor(ctx context.Context, floorID string) ([]models.Room, error)
	EnsureIndexes() error
}

type mongoDirectoryRepo struct {
	buildings *mongo.Collection
	floors    *mongo.Collection
	rooms     *mongo.Collection
}

func NewMongoDirectoryRepo() DirectoryRepository {
	return NewMongoDirectoryRepoFor(database.DB())
}

func NewMongoDirectoryRepoFor(db *mongo.Database) DirectoryRepository {
	return &mongoDirectoryRepo{
		buildings: db.Collection("buildings"),
		floors:    db.Collection("floors"),
		rooms:     db.Collection("rooms"),
	}
}
