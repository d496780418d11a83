package directory

import (
	"context"
	"testing"

	directoryRepo "classalloc/database/repository/directory"
	"classalloc/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	buildings []models.Building
	floors    []models.Floor
	rooms     []models.Room
}

func (m *memRepo) ListBuildings(context.Context) ([]models.Building, error) { return m.buildings, nil }

func (m *memRepo) GetBuilding(_ context.Context, id string) (*models.Building, error) {
	for _, b := range m.buildings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, directoryRepo.ErrBuildingNotFound
}

func (m *memRepo) ListFloors(_ context.Context, buildingID string) ([]models.Floor, error) {
	var out []models.Floor
	for _, f := range m.floors {
		if f.Building == buildingID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memRepo) GetFloor(_ context.Context, id string) (*models.Floor, error) {
	for _, f := range m.floors {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, directoryRepo.ErrFloorNotFound
}

func (m *memRepo) ListRoomsOnFloor(_ context.Context, floorID string) ([]models.Room, error) {
	var out []models.Room
	for _, r := range m.rooms {
		if r.Floor == floorID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) EnsureIndexes() error { return nil }

func TestDirectoryService(t *testing.T) {
	svc := &DefaultDirectoryService{Repo: &memRepo{
		buildings: []models.Building{{ID: "B1", Name: "Main"}},
		floors:    []models.Floor{{ID: "F1", Building: "B1", Number: 1}, {ID: "F2", Building: "B1", Number: 2}},
		rooms:     []models.Room{{ID: "R201", Floor: "F2", Number: "201"}},
	}}
	ctx := context.Background()

	floors, err := svc.ListFloors(ctx, "B1")
	require.NoError(t, err)
	assert.Len(t, floors, 2)

	rooms, err := svc.ListRooms(ctx, "F1")
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)

	_, err = svc.ListFloors(ctx, "B9")
	assert.ErrorIs(t, err, ErrBuildingNotFound)

	_, err = svc.ListRooms(ctx, "F9")
	assert.ErrorIs(t, err, ErrFloorNotFound)
}
