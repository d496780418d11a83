package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "classalloc/database/repository/booking"
	"classalloc/models"
	"classalloc/services/audit"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BulkChunkSize bounds each batch insert.
const BulkChunkSize = 100

// BulkCreateBookings expands a weekly pattern over the horizon and books it
// into every target room. For each (room, date) pairing it checks conflicts,
// applies the override policy, audits and deletes overridden bookings, and
// stages the new booking. Staged bookings are flushed in unordered chunks.
//
// Only an empty room scope or an empty date set fail the call, and both are
// detected before anything is written. Everything else is folded into the
// returned result.
//
// Pairings are processed one at a time with no lock on the room: a booking
// made by someone else between the conflict check and the flush can still
// overlap (last writer wins).
func (s *DefaultBookingService) BulkCreateBookings(ctx context.Context, req models.BulkRequest) (*models.BulkResult, error) {
	started := s.now()
	if err := validateBulkRequest(req); err != nil {
		return nil, err
	}

	log := s.logger().With(
		zap.String("admin", req.Admin.ID),
		zap.String("floor", req.Floor),
		zap.Int("dayOfWeek", int(req.DayOfWeek)),
		zap.String("startTime", req.StartTime),
		zap.String("endTime", req.EndTime),
	)

	rooms, err := s.resolveRooms(ctx, req)
	if err != nil {
		s.Metrics.observeFailure()
		return nil, err
	}

	dates := GenerateDates(req.DayOfWeek, req.HorizonDays, started)
	if len(dates) == 0 {
		s.Metrics.observeFailure()
		return nil, fmt.Errorf("%w: day %d in the next %d days", ErrNoDates, req.DayOfWeek, req.HorizonDays)
	}

	log.Info("Generating bookings", zap.Int("rooms", len(rooms)), zap.Int("dates", len(dates)))

	result := &models.BulkResult{AffectedDates: []string{}}
	seen := make(map[string]struct{}, len(dates))
	staged := make([]models.Booking, 0, len(rooms)*len(dates))

	for _, room := range rooms {
		for _, date := range dates {
			doc, ok := s.processPairing(ctx, log, req, room, date, result)
			if !ok {
				continue
			}
			staged = append(staged, doc)
			if _, dup := seen[date]; !dup {
				seen[date] = struct{}{}
				result.AffectedDates = append(result.AffectedDates, date)
			}
		}
	}

	s.flush(ctx, log, staged, result)

	log.Info("Bulk operation completed",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("conflicts", result.Conflicts),
		zap.Int("deleted", result.Deleted),
		zap.Int("errors", len(result.Errors)),
	)

	s.record(ctx, audit.BulkCreateEntry(req, result, req.Provenance))
	s.notify(ctx, result.AffectedDates...)
	s.Metrics.observeBulk(result, s.now().Sub(started))
	return result, nil
}

func (s *DefaultBookingService) resolveRooms(ctx context.Context, req models.BulkRequest) ([]models.Room, error) {
	if req.Room != "" {
		return []models.Room{{ID: req.Room, Floor: req.Floor}}, nil
	}
	rooms, err := s.Directory.ListRoomsOnFloor(ctx, req.Floor)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rooms on floor %s: %w", req.Floor, err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: floor %s", ErrNoRooms, req.Floor)
	}
	return rooms, nil
}

// processPairing runs check, policy, audit and delete for one (room, date)
// and returns the booking to stage, or false when the pairing is skipped.
func (s *DefaultBookingService) processPairing(
	ctx context.Context,
	log *zap.Logger,
	req models.BulkRequest,
	room models.Room,
	date string,
	result *models.BulkResult,
) (models.Booking, bool) {
	conflicts, err := s.FindConflicts(ctx, room.ID, date, req.StartTime, req.EndTime)
	if err != nil {
		log.Error("Conflict lookup failed", zap.String("room", room.ID), zap.String("date", date), zap.Error(err))
		result.Errors = append(result.Errors, err.Error())
		return models.Booking{}, false
	}
	if len(conflicts) > 0 {
		result.Conflicts++
	}

	decision := EvaluateOverride(conflicts, req.ForceOverride)
	switch decision.Action {
	case DecisionSkip:
		for _, p := range decision.Protected {
			log.Info("Cannot delete protected admin booking", zap.String("booking", p.ID), zap.String("date", date))
		}
		result.Skipped++
		return models.Booking{}, false

	case DecisionDeleteAndProceed:
		nb := audit.NewBooking{
			Teacher:    req.Teacher,
			Subject:    req.Subject,
			Department: req.Department,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Date:       date,
		}
		var removed []string
		for _, c := range decision.Deletable {
			// The audit entry goes first so its snapshot is the pre-delete state.
			s.record(ctx, audit.OverrideEntry(req.Admin, c, nb, room.ID, req.Provenance))

			err := s.Store.DeleteByID(ctx, c.ID)
			switch {
			case err == nil:
				result.Deleted++
				removed = append(removed, c.ID)
				log.Info("Deleted conflicting booking for override", zap.String("booking", c.ID), zap.String("date", date))
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				log.Warn("Conflicting booking already gone", zap.String("booking", c.ID))
			default:
				// Not a skip: earlier deletes of this pairing may already be applied.
				log.Error("Failed to delete conflicting booking",
					zap.String("booking", c.ID),
					zap.Strings("alreadyDeleted", removed),
					zap.Error(err),
				)
				result.Errors = append(result.Errors, deleteFailure(room.ID, date, c.ID, removed, err))
				return models.Booking{}, false
			}
		}
	}

	return s.newBulkBooking(req, room, date), true
}

func deleteFailure(roomID, date, bookingID string, removed []string, err error) string {
	msg := fmt.Sprintf("Room %s on %s: delete %s: %v", roomID, date, bookingID, err)
	if len(removed) > 0 {
		msg += fmt.Sprintf(" (already deleted: %s)", strings.Join(removed, ", "))
	}
	return msg
}

func (s *DefaultBookingService) newBulkBooking(req models.BulkRequest, room models.Room, date string) models.Booking {
	now := s.now()
	floor := room.Floor
	if floor == "" {
		floor = req.Floor
	}
	return models.Booking{
		ID:              uuid.New().String(),
		Building:        req.Building,
		Floor:           floor,
		Room:            room.ID,
		Date:            date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Purpose:         fmt.Sprintf("%s - %s", req.Subject, req.Department),
		BookedBy:        req.Admin.ID,
		BookedByName:    req.Admin.Name,
		Source:          models.SourceAdmin,
		Teacher:         req.Teacher,
		Subject:         req.Subject,
		Department:      req.Department,
		OverrideAllowed: false,
		CreatedByAdmin:  req.Admin.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// flush writes staged bookings in chunks of BulkChunkSize. A failing chunk
// is reported in result.Errors and does not stop later chunks.
func (s *DefaultBookingService) flush(ctx context.Context, log *zap.Logger, staged []models.Booking, result *models.BulkResult) {
	for i := 0; i < len(staged); i += BulkChunkSize {
		end := min(i+BulkChunkSize, len(staged))
		chunk := staged[i:end]

		inserted, err := s.Store.InsertManyUnordered(ctx, chunk)
		result.Created += inserted
		if err != nil {
			log.Error("Bulk write error for chunk", zap.Int("from", i), zap.Int("to", end), zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("Chunk %d-%d: %v", i, end, err))
		}
	}
}
