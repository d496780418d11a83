package handlers

import (
	"context"

	"classalloc/models"

	"github.com/stretchr/testify/mock"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) CreateBooking(ctx context.Context, actor models.Actor, req models.CreateBookingRequest, prov models.Provenance) (*models.Booking, error) {
	args := m.Called(actor, req)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) CancelBooking(ctx context.Context, actor models.Actor, bookingID string, prov models.Provenance) error {
	return m.Called(actor, bookingID).Error(0)
}

func (m *mockBookingService) ListBookings(ctx context.Context, filter models.BookingFilter) (*models.BookingPage, error) {
	args := m.Called(filter)
	p, _ := args.Get(0).(*models.BookingPage)
	return p, args.Error(1)
}

func (m *mockBookingService) FloorAvailability(ctx context.Context, floorID, date, startTime, endTime string) ([]models.RoomAvailability, error) {
	args := m.Called(floorID, date, startTime, endTime)
	r, _ := args.Get(0).([]models.RoomAvailability)
	return r, args.Error(1)
}

func (m *mockBookingService) BulkCreateBookings(ctx context.Context, req models.BulkRequest) (*models.BulkResult, error) {
	args := m.Called(req)
	r, _ := args.Get(0).(*models.BulkResult)
	return r, args.Error(1)
}

type mockAdminService struct {
	mock.Mock
}

func (m *mockAdminService) ListTemplates(ctx context.Context) ([]models.Template, error) {
	args := m.Called()
	t, _ := args.Get(0).([]models.Template)
	return t, args.Error(1)
}

func (m *mockAdminService) CreateTemplate(ctx context.Context, admin models.Actor, tpl models.Template) (*models.Template, error) {
	args := m.Called(admin, tpl)
	t, _ := args.Get(0).(*models.Template)
	return t, args.Error(1)
}

func (m *mockAdminService) ListAudits(ctx context.Context, filter models.AuditFilter) ([]models.AuditRecord, error) {
	args := m.Called(filter)
	r, _ := args.Get(0).([]models.AuditRecord)
	return r, args.Error(1)
}
