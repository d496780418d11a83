package booking

import (
	"context"
	"testing"

	bookingRepo "classalloc/database/repository/booking"
	"classalloc/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = models.Actor{ID: "user-alice", Name: "Alice", Role: models.RoleUser}

func createRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		Building:  "B1",
		Floor:     "F2",
		Room:      "R201",
		Date:      "2025-04-07",
		StartTime: "11:00",
		EndTime:   "12:00",
		Purpose:   "Thesis review",
	}
}

func TestCreateBooking(t *testing.T) {
	h := newHarness()

	b, err := h.svc.CreateBooking(context.Background(), alice, createRequest(), models.Provenance{})
	require.NoError(t, err)

	assert.Equal(t, models.SourceUser, b.Source)
	assert.Equal(t, "user-alice", b.BookedBy)
	require.NotNil(t, b.Owner)
	assert.Equal(t, "Alice", b.Owner.Name)
	assert.Empty(t, b.CreatedByAdmin)
	assert.Equal(t, 1, h.store.count())
	assert.Equal(t, []string{"2025-04-07"}, h.notifier.dates)
	assert.Empty(t, h.audit.records)
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	h := newHarness()
	h.store.seed(userBooking("u1", "R201", "2025-04-07", "11:30", "12:30"))

	_, err := h.svc.CreateBooking(context.Background(), alice, createRequest(), models.Provenance{})
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, h.store.count())
	assert.Empty(t, h.notifier.dates)
}

func TestCreateBooking_AdjacentAllowed(t *testing.T) {
	h := newHarness()
	h.store.seed(userBooking("u1", "R201", "2025-04-07", "10:00", "11:00"))

	_, err := h.svc.CreateBooking(context.Background(), alice, createRequest(), models.Provenance{})
	require.NoError(t, err)
	assert.Equal(t, 2, h.store.count())
}

func TestCreateBooking_AdminIsAudited(t *testing.T) {
	h := newHarness()
	prov := models.Provenance{IPAddress: "10.1.1.1", UserAgent: "ui"}

	b, err := h.svc.CreateBooking(context.Background(), admin, createRequest(), prov)
	require.NoError(t, err)
	assert.Equal(t, models.SourceUser, b.Source)
	assert.Equal(t, "admin-1", b.CreatedByAdmin)

	recs := h.audit.byAction(models.AuditAdminBooking)
	require.Len(t, recs, 1)
	assert.Equal(t, "10.1.1.1", recs[0].IPAddress)
	assert.Equal(t, b.ID, recs[0].BookingSnapshot.ID)
}

func TestCreateBooking_AdminBookingIsOverridable(t *testing.T) {
	h := newHarness()

	b, err := h.svc.CreateBooking(context.Background(), admin, createRequest(), models.Provenance{})
	require.NoError(t, err)
	require.True(t, CanOverride(*b))

	req := bulkRequest()
	req.StartTime, req.EndTime = "11:30", "12:30"
	req.ForceOverride = true
	res, err := h.svc.BulkCreateBookings(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	assert.Zero(t, res.Skipped)
	assert.Equal(t, 1, res.Deleted)
	_, err = h.store.GetByID(context.Background(), b.ID)
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)
}

func TestCreateBooking_Invalid(t *testing.T) {
	cases := map[string]func(r *models.CreateBookingRequest){
		"missing purpose": func(r *models.CreateBookingRequest) { r.Purpose = "" },
		"bad date":        func(r *models.CreateBookingRequest) { r.Date = "07/04/2025" },
		"zero duration":   func(r *models.CreateBookingRequest) { r.EndTime = r.StartTime },
		"bad time":        func(r *models.CreateBookingRequest) { r.StartTime = "11.00" },
		"bad department":  func(r *models.CreateBookingRequest) { r.Department = "MECH" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness()
			req := createRequest()
			mutate(&req)

			_, err := h.svc.CreateBooking(context.Background(), alice, req, models.Provenance{})
			require.ErrorIs(t, err, ErrInvalidRequest)
			assert.Zero(t, h.store.count())
		})
	}
}

func TestCancelBooking(t *testing.T) {
	own := userBooking("own", "R201", "2025-04-07", "09:00", "10:00")
	own.BookedBy = alice.ID
	other := userBooking("other", "R202", "2025-04-08", "09:00", "10:00")

	t.Run("owner cancels without audit", func(t *testing.T) {
		h := newHarness()
		h.store.seed(own)

		require.NoError(t, h.svc.CancelBooking(context.Background(), alice, "own", models.Provenance{}))
		assert.Zero(t, h.store.count())
		assert.Empty(t, h.audit.records)
		assert.Equal(t, []string{"2025-04-07"}, h.notifier.dates)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		h := newHarness()
		h.store.seed(other)

		err := h.svc.CancelBooking(context.Background(), alice, "other", models.Provenance{})
		require.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, 1, h.store.count())
	})

	t.Run("admin cancelling another user is audited first", func(t *testing.T) {
		h := newHarness()
		h.store.seed(other)

		require.NoError(t, h.svc.CancelBooking(context.Background(), admin, "other", models.Provenance{}))
		recs := h.audit.byAction(models.AuditDelete)
		require.Len(t, recs, 1)
		assert.Equal(t, "Admin deletion", recs[0].Reason)
		assert.Equal(t, "user-other", recs[0].AffectedUser)
		assert.Equal(t, []string{"audit:delete:other", "delete:other"}, h.journal.all())
	})

	t.Run("missing booking", func(t *testing.T) {
		h := newHarness()
		err := h.svc.CancelBooking(context.Background(), alice, "nope", models.Provenance{})
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestListBookings_Pagination(t *testing.T) {
	h := newHarness()
	for i := 0; i < 5; i++ {
		h.store.seed(userBooking(string(rune('a'+i)), "R201", "2025-04-07", "09:00", "10:00"))
	}

	page, err := h.svc.ListBookings(context.Background(), models.BookingFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Bookings, 2)
	assert.Equal(t, models.Pagination{Page: 2, Limit: 2, Total: 5, Pages: 3}, page.Pagination)

	page, err = h.svc.ListBookings(context.Background(), models.BookingFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 50, page.Pagination.Limit)
	assert.Len(t, page.Bookings, 5)

	page, err = h.svc.ListBookings(context.Background(), models.BookingFilter{Date: "2030-01-01"})
	require.NoError(t, err)
	assert.NotNil(t, page.Bookings)
	assert.Zero(t, page.Pagination.Pages)
}

func TestFloorAvailability(t *testing.T) {
	h := newHarness()
	h.dir.floors["F2"] = []models.Room{
		{ID: "R201", Number: "201", Floor: "F2"},
		{ID: "R202", Number: "202", Floor: "F2"},
	}
	h.store.seed(userBooking("u1", "R201", "2025-04-07", "09:00", "10:00"))

	rooms, err := h.svc.FloorAvailability(context.Background(), "F2", "2025-04-07", "09:30", "11:00")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, models.RoomBooked, rooms[0].Status)
	require.Len(t, rooms[0].Bookings, 1)
	assert.Equal(t, "Snapshot u1", rooms[0].Bookings[0].Owner.Name)
	assert.Equal(t, models.RoomAvailable, rooms[1].Status)
	assert.NotNil(t, rooms[1].Bookings)

	rooms, err = h.svc.FloorAvailability(context.Background(), "F2", "", "", "")
	require.NoError(t, err)
	for _, r := range rooms {
		assert.Equal(t, models.RoomAvailable, r.Status)
	}

	_, err = h.svc.FloorAvailability(context.Background(), "F9", "", "", "")
	require.ErrorIs(t, err, ErrFloorNotFound)

	_, err = h.svc.FloorAvailability(context.Background(), "F2", "2025-04-07", "11:00", "10:00")
	require.ErrorIs(t, err, ErrInvalidRequest)
}
