package domain

// AvailabilityQuery is the (room, date) pair an availability check is
// issued for. Responses are only applied when the pair is still current.
type AvailabilityQuery struct {
	RoomID int    `json:"room_id"`
	Date   string `json:"date"`
}

// AvailabilitySnapshot is the checker state at a point in time. Available
// only means anything for the pair it was computed for; it is reset the
// moment either input changes.
type AvailabilitySnapshot struct {
	RoomID    *int
	Date      *string
	Checking  bool
	Available bool
}

// Complete reports whether both inputs are chosen.
func (s AvailabilitySnapshot) Complete() bool {
	return s.RoomID != nil && s.Date != nil
}

// Blocked reports the warning-banner condition: both inputs chosen, the
// check has finished, and the verdict was negative.
func (s AvailabilitySnapshot) Blocked() bool {
	return s.Complete() && !s.Checking && !s.Available
}
