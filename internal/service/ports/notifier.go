package ports

import (
	"context"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

// BookingNotifier announces accepted booking requests out of band.
type BookingNotifier interface {
	NotifyBookingSubmitted(ctx context.Context, identity *domain.Identity, req domain.BookingRequest)
}
