package dto

import (
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

// AvailabilityResponse mirrors one checker snapshot. Blocked drives the
// warning banner; the submit button stays disabled unless Available is true
// and Checking is false.
type AvailabilityResponse struct {
	RoomID    *int    `json:"room_id"`
	Date      *string `json:"date"`
	Checking  bool    `json:"checking"`
	Available bool    `json:"available"`
	Blocked   bool    `json:"blocked"`
}

// SubmitBookingResponse tells the page to show the toast and navigate after
// a short delay so the user can read it.
type SubmitBookingResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
	DelayMS  int    `json:"delay_ms"`
}

type UnitResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type RoomResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID        int    `json:"id"`
	Unit      string `json:"unit"`
	Room      string `json:"room"`
	Date      string `json:"date"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
	Status    string `json:"status"`
}

type IdentityResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func ToAvailabilityResponse(s domain.AvailabilitySnapshot) AvailabilityResponse {
	return AvailabilityResponse{
		RoomID:    s.RoomID,
		Date:      s.Date,
		Checking:  s.Checking,
		Available: s.Available,
		Blocked:   s.Blocked(),
	}
}

func ToUnitResponse(u domain.Unit) UnitResponse {
	return UnitResponse{ID: u.ID, Name: u.Name}
}

func ToRoomResponse(r domain.Room) RoomResponse {
	return RoomResponse{ID: r.ID, Name: r.Name}
}

func ToBookingResponse(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Unit:      b.Unit.Name,
		Room:      b.Room.Name,
		Date:      b.Date,
		TimeStart: b.TimeStart,
		TimeEnd:   b.TimeEnd,
		Status:    b.Status,
	}
}

func ToIdentityResponse(i *domain.Identity) IdentityResponse {
	return IdentityResponse{
		ID:       i.ID,
		Name:     i.Name,
		Username: i.Username,
		Role:     string(i.Role),
	}
}
