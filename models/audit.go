package models

import "time"

// AuditAction enumerates the actions captured in the audit trail.
type AuditAction string

const (
	AuditDelete       AuditAction = "delete"
	AuditOverride     AuditAction = "override"
	AuditBulkCreate   AuditAction = "bulk_create"
	AuditAdminBooking AuditAction = "admin_booking"
)

// AuditRecord is an immutable audit trail entry. BookingSnapshot holds the
// full booking state captured before the action was applied.
type AuditRecord struct {
	ID              string         `bson:"id" json:"id"`
	Action          AuditAction    `bson:"action" json:"action"`
	PerformedBy     string         `bson:"performedBy" json:"performedBy"`
	AffectedUser    string         `bson:"affectedUser,omitempty" json:"affectedUser,omitempty"`
	BookingSnapshot *Booking       `bson:"bookingSnapshot,omitempty" json:"bookingSnapshot,omitempty"`
	Reason          string         `bson:"reason,omitempty" json:"reason,omitempty"`
	Metadata        map[string]any `bson:"metadata" json:"metadata"`
	IPAddress       string         `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent       string         `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`
}

// AuditFilter narrows the read-only audit listing.
type AuditFilter struct {
	Action       AuditAction
	PerformedBy  string
	AffectedUser string
	Limit        int
}
