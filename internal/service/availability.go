package service

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

// AvailabilityAPI is the one backend call the checker needs.
type AvailabilityAPI interface {
	CheckAvailability(ctx context.Context, token string, q domain.AvailabilityQuery) (bool, error)
}

// Checker tracks whether the currently chosen room is free on the currently
// chosen date for one booking form. Each input change that yields a complete
// pair launches a check tagged with a generation number; a response is only
// applied if its generation is still current, so a stale answer for a
// superseded pair can never flip the gate (last-pair-wins).
type Checker struct {
	api    AvailabilityAPI
	logger logger.Logger

	mu        sync.Mutex
	gen       uint64
	roomID    *int
	date      *string
	checking  bool
	available bool
	lastUsed  time.Time
}

func NewChecker(api AvailabilityAPI, log logger.Logger) *Checker {
	return &Checker{
		api:      api,
		logger:   log,
		lastUsed: time.Now(),
	}
}

// SetInputs records the form's current (room, date) pair and, when both are
// present and the pair actually changed, starts a fresh check. The gate
// closes immediately on any change; it only reopens when the check for the
// current pair comes back positive.
func (c *Checker) SetInputs(ctx context.Context, token string, roomID *int, date *string) domain.AvailabilitySnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastUsed = time.Now()

	if equalIntPtr(c.roomID, roomID) && equalStrPtr(c.date, date) {
		return c.snapshotLocked()
	}

	c.roomID = roomID
	c.date = date
	c.gen++
	c.available = false

	if roomID == nil || date == nil {
		c.checking = false
		return c.snapshotLocked()
	}

	c.checking = true
	gen := c.gen
	q := domain.AvailabilityQuery{RoomID: *roomID, Date: *date}
	go c.check(context.WithoutCancel(ctx), gen, token, q)

	return c.snapshotLocked()
}

func (c *Checker) check(ctx context.Context, gen uint64, token string, q domain.AvailabilityQuery) {
	available, err := c.api.CheckAvailability(ctx, token, q)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// Superseded: the form moved on to another pair.
		return
	}

	c.checking = false
	if err != nil {
		// Fail closed: an errored check never enables submission.
		c.available = false
		c.logger.Warn("availability check failed",
			logger.Int("room_id", q.RoomID),
			logger.String("date", q.Date),
			logger.String("error", err.Error()),
		)
		return
	}

	c.available = available
}

func (c *Checker) Snapshot() domain.AvailabilitySnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastUsed = time.Now()
	return c.snapshotLocked()
}

// Gate admits a submission only when the submitted pair is exactly the pair
// last checked, the check has finished, and the verdict was positive.
func (c *Checker) Gate(req domain.BookingRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.roomID == nil || c.date == nil || *c.roomID != req.RoomID || *c.date != req.Date {
		return domain.ErrRoomUnavailable
	}
	if c.checking {
		return domain.ErrCheckPending
	}
	if !c.available {
		return domain.ErrRoomUnavailable
	}
	return nil
}

func (c *Checker) LastUsed() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUsed
}

func (c *Checker) snapshotLocked() domain.AvailabilitySnapshot {
	return domain.AvailabilitySnapshot{
		RoomID:    c.roomID,
		Date:      c.date,
		Checking:  c.checking,
		Available: c.available,
	}
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// CheckerRegistry hands out one Checker per session and prunes the ones no
// browser has touched in a while.
type CheckerRegistry struct {
	api    AvailabilityAPI
	logger logger.Logger

	mu       sync.Mutex
	checkers map[string]*Checker
}

func NewCheckerRegistry(api AvailabilityAPI, log logger.Logger) *CheckerRegistry {
	return &CheckerRegistry{
		api:      api,
		logger:   log,
		checkers: make(map[string]*Checker),
	}
}

func (r *CheckerRegistry) For(sid string) *Checker {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.checkers[sid]
	if !ok {
		c = NewChecker(r.api, r.logger)
		r.checkers[sid] = c
	}
	return c
}

func (r *CheckerRegistry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.checkers, sid)
}

// PruneIdle drops checkers idle for longer than maxIdle and reports how
// many were removed.
func (r *CheckerRegistry) PruneIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for sid, c := range r.checkers {
		if c.LastUsed().Before(cutoff) {
			delete(r.checkers, sid)
			n++
		}
	}
	return n
}
