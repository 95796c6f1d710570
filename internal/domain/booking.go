package domain

// NamedRef is how the backend embeds the unit and room of a booking.
type NamedRef struct {
	Name string `json:"name"`
}

// Booking is a server-owned booking row shown on the user dashboard.
// The frontend never mutates it directly, it only creates new ones.
type Booking struct {
	ID        int      `json:"id"`
	Unit      NamedRef `json:"unit"`
	Room      NamedRef `json:"room"`
	Date      string   `json:"date"`
	TimeStart string   `json:"time_start"`
	TimeEnd   string   `json:"time_end"`
	Status    string   `json:"status"`
}

// BookingRequest is the transient client-side request composed on the
// booking form. Shape validation happens before any network call.
// time_start < time_end is deliberately not enforced here, ordering and
// overlap semantics belong to the backend.
type BookingRequest struct {
	UnitID    int    `json:"unit_id" validate:"required,gt=0"`
	RoomID    int    `json:"room_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeStart string `json:"time_start" validate:"required,datetime=15:04"`
	TimeEnd   string `json:"time_end" validate:"required,datetime=15:04"`
}
