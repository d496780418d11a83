package models

import "time"

// BookingSource tags who created a booking.
type BookingSource string

const (
	SourceUser     BookingSource = "user"
	SourceAdmin    BookingSource = "admin"
	SourceTemplate BookingSource = "template"
)

// Booking is one reserved room-timeslot on a single calendar date.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	Building        string        `bson:"building" json:"building"`
	Floor           string        `bson:"floor" json:"floor"`
	Room            string        `bson:"room" json:"room"`
	Date            string        `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime       string        `bson:"startTime" json:"startTime"` // "HH:mm", local wall clock
	EndTime         string        `bson:"endTime" json:"endTime"`
	Purpose         string        `bson:"purpose" json:"purpose"`
	BookedBy        string        `bson:"bookedBy" json:"-"`
	BookedByName    string        `bson:"bookedByName,omitempty" json:"bookedByName,omitempty"`
	Source          BookingSource `bson:"source" json:"source"`
	Teacher         string        `bson:"teacher,omitempty" json:"teacher,omitempty"`
	Subject         string        `bson:"subject,omitempty" json:"subject,omitempty"`
	Department      Department    `bson:"department,omitempty" json:"department,omitempty"`
	TemplateID      string        `bson:"templateId,omitempty" json:"templateId,omitempty"`
	OverrideAllowed bool          `bson:"overrideAllowed" json:"overrideAllowed"`
	CreatedByAdmin  string        `bson:"createdByAdmin,omitempty" json:"createdByAdmin,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`

	// Owner is resolved by the store adapter on reads and never persisted.
	Owner *Owner `bson:"-" json:"bookedBy"`
}

// Owner is the resolved identity of the user holding a booking. Name comes
// from the users collection when the reference resolves, else from the
// bookedByName snapshot taken at booking time.
type Owner struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

// ResolveOwner applies the owner precedence rules: no reference means no
// owner; a resolved display name wins over the stored snapshot.
func ResolveOwner(id, resolvedName, snapshot string) *Owner {
	if id == "" {
		return nil
	}
	name := resolvedName
	if name == "" {
		name = snapshot
	}
	return &Owner{ID: id, Name: name}
}

// OwnerID returns the id of the booking holder, preferring the resolved owner.
func (b Booking) OwnerID() string {
	if b.Owner != nil {
		return b.Owner.ID
	}
	return b.BookedBy
}

// CreateBookingRequest is the payload of a single user booking.
type CreateBookingRequest struct {
	Building   string     `json:"building" validate:"required"`
	Floor      string     `json:"floor" validate:"required"`
	Room       string     `json:"room" validate:"required"`
	Date       string     `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string     `json:"startTime" validate:"required"`
	EndTime    string     `json:"endTime" validate:"required"`
	Purpose    string     `json:"purpose" validate:"required"`
	Teacher    string     `json:"teacher"`
	Subject    string     `json:"subject"`
	Department Department `json:"department"`
}

// BookingFilter narrows the admin booking listing.
type BookingFilter struct {
	Date       string
	Building   string
	Floor      string
	Room       string
	Department Department
	Source     BookingSource
	Teacher    string // case-insensitive substring match
	Page       int
	Limit      int
}

// BookingPage is one page of an admin listing.
type BookingPage struct {
	Bookings   []Booking  `json:"bookings"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}
