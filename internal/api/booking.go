package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

type availabilityResponse struct {
	Available bool `json:"available"`
}

func (c *Client) ListOwn(ctx context.Context, token string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/room-requests", token, &bookings); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// CheckAvailability asks the backend whether the room is free on the date.
// Not retried: a superseded or failed check is simply discarded by the caller.
func (c *Client) CheckAvailability(ctx context.Context, token string, q domain.AvailabilityQuery) (bool, error) {
	var resp availabilityResponse
	if err := c.do(ctx, http.MethodPost, "/room-requests/check-availability", token, q, &resp); err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}
	return resp.Available, nil
}

func (c *Client) Create(ctx context.Context, token string, req domain.BookingRequest) error {
	if err := c.do(ctx, http.MethodPost, "/room-requests", token, req, nil); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}
