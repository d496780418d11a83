package models

// Building groups floors.
type Building struct {
	ID     string   `bson:"id" json:"id"`
	Name   string   `bson:"name" json:"name"`
	Floors []string `bson:"floors" json:"floors"`
}

// Floor groups rooms inside a building.
type Floor struct {
	ID       string   `bson:"id" json:"id"`
	Number   int      `bson:"number" json:"number"`
	Building string   `bson:"building" json:"building"`
	Rooms    []string `bson:"rooms" json:"rooms"`
}

// Room is a bookable space on a floor.
type Room struct {
	ID     string `bson:"id" json:"id"`
	Number string `bson:"number" json:"number"`
	Floor  string `bson:"floor" json:"floor"`
}

// RoomStatus values reported by floor availability.
const (
	RoomAvailable = "available"
	RoomBooked    = "booked"
)

// RoomAvailability is the per-room view returned for a floor.
type RoomAvailability struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Status   string    `json:"status"`
	Bookings []Booking `json:"bookings"`
}
