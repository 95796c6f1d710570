package service

import (
	"context"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

// AvailabilityService exposes the per-session checker to the HTTP layer.
type AvailabilityService struct {
	checkers *CheckerRegistry
}

func NewAvailabilityService(checkers *CheckerRegistry) *AvailabilityService {
	return &AvailabilityService{checkers: checkers}
}

// Update feeds the form's current (room, date) pair into the session's
// checker and returns the resulting snapshot.
func (s *AvailabilityService) Update(ctx context.Context, sid, token string, roomID *int, date *string) domain.AvailabilitySnapshot {
	return s.checkers.For(sid).SetInputs(ctx, token, roomID, date)
}

// Snapshot reports the current checker state without touching the inputs.
func (s *AvailabilityService) Snapshot(sid string) domain.AvailabilitySnapshot {
	return s.checkers.For(sid).Snapshot()
}
