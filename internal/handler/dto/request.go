package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type CatalogItemRequest struct {
	Name string `json:"name" binding:"required"`
}

// AvailabilityRequest carries the booking form's current selection. Either
// field may be absent while the user is still composing the form.
type AvailabilityRequest struct {
	RoomID *int    `json:"room_id"`
	Date   *string `json:"date"`
}

// BookingSubmitRequest is deliberately loose; real shape validation happens
// in the booking service before any network call.
type BookingSubmitRequest struct {
	UnitID    int    `json:"unit_id"`
	RoomID    int    `json:"room_id"`
	Date      string `json:"date"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}
