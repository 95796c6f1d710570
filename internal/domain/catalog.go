package domain

// Unit is an organizational unit that owns room bookings.
type Unit struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Room is a bookable room.
type Room struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
