package directory

import (
	"context"
	"errors"
	"fmt"

	directoryRepo "classalloc/database/repository/directory"
	"classalloc/models"
)

var (
	ErrBuildingNotFound = errors.New("building not found")
	ErrFloorNotFound    = errors.New("floor not found")
)

// DirectoryService lists the building/floor/room hierarchy.
type DirectoryService interface {
	ListBuildings(ctx context.Context) ([]models.Building, error)
	ListFloors(ctx context.Context, buildingID string) ([]models.Floor, error)
	ListRooms(ctx context.Context, floorID string) ([]models.Room, error)
}

type DefaultDirectoryService struct {
	Repo directoryRepo.DirectoryRepository
}

func (s *DefaultDirectoryService) ListBuildings(ctx context.Context) ([]models.Building, error) {
	out, err := s.Repo.ListBuildings(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Building{}
	}
	return out, nil
}

func (s *DefaultDirectoryService) ListFloors(ctx context.Context, buildingID string) ([]models.Floor, error) {
	if _, err := s.Repo.GetBuilding(ctx, buildingID); err != nil {
		if errors.Is(err, directoryRepo.ErrBuildingNotFound) {
			return nil, ErrBuildingNotFound
		}
		return nil, fmt.Errorf("failed to load building %s: %w", buildingID, err)
	}
	out, err := s.Repo.ListFloors(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Floor{}
	}
	return out, nil
}

func (s *DefaultDirectoryService) ListRooms(ctx context.Context, floorID string) ([]models.Room, error) {
	if _, err := s.Repo.GetFloor(ctx, floorID); err != nil {
		if errors.Is(err, directoryRepo.ErrFloorNotFound) {
			return nil, ErrFloorNotFound
		}
		return nil, fmt.Errorf("failed to load floor %s: %w", floorID, err)
	}
	out, err := s.Repo.ListRoomsOnFloor(ctx, floorID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Room{}
	}
	return out, nil
}
