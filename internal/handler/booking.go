package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/handler/dto"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/middleware"
)

// submitRedirectDelayMS is how long the page shows the success toast before
// navigating to the dashboard.
const submitRedirectDelayMS = 1000

// UpdateAvailability receives the form's current room/date selection and
// returns the checker snapshot for it. The page calls this on every change
// of either field.
func (h *Handler) UpdateAvailability(c *ginext.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// Empty selections come through as zero values; normalize to absent.
	if req.RoomID != nil && *req.RoomID <= 0 {
		req.RoomID = nil
	}
	if req.Date != nil && *req.Date == "" {
		req.Date = nil
	}

	snapshot := h.availability.Update(
		c.Request.Context(),
		middleware.SID(c),
		middleware.Token(c),
		req.RoomID,
		req.Date,
	)

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(snapshot))
}

// AvailabilityStatus is polled by the page while a check is in flight.
func (h *Handler) AvailabilityStatus(c *ginext.Context) {
	snapshot := h.availability.Snapshot(middleware.SID(c))
	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(snapshot))
}

func (h *Handler) SubmitBooking(c *ginext.Context) {
	var req dto.BookingSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking := domain.BookingRequest{
		UnitID:    req.UnitID,
		RoomID:    req.RoomID,
		Date:      req.Date,
		TimeStart: req.TimeStart,
		TimeEnd:   req.TimeEnd,
	}

	err := h.booking.Submit(
		c.Request.Context(),
		middleware.SID(c),
		middleware.Token(c),
		middleware.Identity(c),
		booking,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitBookingResponse{
		Message:  "Room booked successfully.",
		Redirect: "/user",
		DelayMS:  submitRedirectDelayMS,
	})
}

func (h *Handler) ListOwnBookings(c *ginext.Context) {
	bookings, err := h.booking.ListOwn(c.Request.Context(), middleware.SID(c), middleware.Token(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}
