package audit

import (
	"fmt"

	"classalloc/models"
)

// NewBooking is the booking that triggered an override.
type NewBooking struct {
	Teacher    string
	Subject    string
	Department models.Department
	StartTime  string
	EndTime    string
	Date       string
}

func snapshot(b models.Booking) *models.Booking {
	snap := b
	if b.Owner != nil {
		owner := *b.Owner
		snap.Owner = &owner
	}
	return &snap
}

// OverrideEntry records the deletion of conflict by a forced bulk run.
func OverrideEntry(admin models.Actor, conflict models.Booking, nb NewBooking, roomID string, prov models.Provenance) models.AuditRecord {
	return models.AuditRecord{
		Action:          models.AuditOverride,
		PerformedBy:     admin.ID,
		AffectedUser:    conflict.OwnerID(),
		BookingSnapshot: snapshot(conflict),
		Reason:          fmt.Sprintf("Force override for bulk booking: %s - %s", nb.Department, nb.Subject),
		Metadata: map[string]any{
			"newBooking": map[string]any{
				"teacher":    nb.Teacher,
				"subject":    nb.Subject,
				"department": string(nb.Department),
				"startTime":  nb.StartTime,
				"endTime":    nb.EndTime,
				"date":       nb.Date,
			},
			"roomId": roomID,
		},
		IPAddress: prov.IPAddress,
		UserAgent: prov.UserAgent,
	}
}

// BulkCreateEntry summarises one bulk run.
func BulkCreateEntry(req models.BulkRequest, result *models.BulkResult, prov models.Provenance) models.AuditRecord {
	return models.AuditRecord{
		Action:      models.AuditBulkCreate,
		PerformedBy: req.Admin.ID,
		Reason:      fmt.Sprintf("Bulk booking creation for %s - %s", req.Department, req.Subject),
		Metadata: map[string]any{
			"batchParams": map[string]any{
				"building":      req.Building,
				"floor":         req.Floor,
				"room":          req.Room,
				"dayOfWeek":     int(req.DayOfWeek),
				"startTime":     req.StartTime,
				"endTime":       req.EndTime,
				"department":    string(req.Department),
				"subject":       req.Subject,
				"teacher":       req.Teacher,
				"horizonDays":   req.HorizonDays,
				"forceOverride": req.ForceOverride,
			},
			"result": map[string]any{
				"created":   result.Created,
				"skipped":   result.Skipped,
				"conflicts": result.Conflicts,
				"deleted":   result.Deleted,
			},
		},
		IPAddress: prov.IPAddress,
		UserAgent: prov.UserAgent,
	}
}

// DeleteEntry records an admin cancelling another user's booking.
func DeleteEntry(admin models.Actor, b models.Booking, prov models.Provenance) models.AuditRecord {
	return models.AuditRecord{
		Action:          models.AuditDelete,
		PerformedBy:     admin.ID,
		AffectedUser:    b.OwnerID(),
		BookingSnapshot: snapshot(b),
		Reason:          "Admin deletion",
		Metadata: map[string]any{
			"bookingId": b.ID,
			"roomDetails": map[string]any{
				"building": b.Building,
				"floor":    b.Floor,
				"room":     b.Room,
			},
		},
		IPAddress: prov.IPAddress,
		UserAgent: prov.UserAgent,
	}
}

// AdminBookingEntry records a single booking placed by an admin.
func AdminBookingEntry(admin models.Actor, b models.Booking, prov models.Provenance) models.AuditRecord {
	return models.AuditRecord{
		Action:          models.AuditAdminBooking,
		PerformedBy:     admin.ID,
		BookingSnapshot: snapshot(b),
		Reason:          "Admin booking",
		Metadata: map[string]any{
			"bookingId": b.ID,
			"room":      b.Room,
			"date":      b.Date,
		},
		IPAddress: prov.IPAddress,
		UserAgent: prov.UserAgent,
	}
}
