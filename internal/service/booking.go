package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/logger"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/cache"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/service/ports"
)

// BookingService owns the booking submission workflow: shape validation,
// the availability gate, submission, and cache invalidation afterwards.
type BookingService struct {
	api      ports.BookingAPI
	cache    ports.KVCache
	checkers *CheckerRegistry
	notifier ports.BookingNotifier
	validate *validator.Validate
	ttl      time.Duration
	logger   logger.Logger
}

func NewBookingService(
	api ports.BookingAPI,
	kv ports.KVCache,
	checkers *CheckerRegistry,
	notifier ports.BookingNotifier,
	ttl time.Duration,
	log logger.Logger,
) *BookingService {
	return &BookingService{
		api:      api,
		cache:    kv,
		checkers: checkers,
		notifier: notifier,
		validate: validator.New(),
		ttl:      ttl,
		logger:   log,
	}
}

// ListOwn returns the session user's bookings, cached per session until a
// submission or logout drops the entry.
func (s *BookingService) ListOwn(ctx context.Context, sid, token string) ([]domain.Booking, error) {
	key := cache.BookingsKey(sid)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var bookings []domain.Booking
		if err := json.Unmarshal([]byte(raw), &bookings); err == nil {
			return bookings, nil
		}
		s.cache.Del(ctx, key)
	}

	bookings, err := s.api.ListOwn(ctx, token)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(bookings); err == nil {
		if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
			s.logger.Warn("bookings cache write failed",
				logger.String("error", err.Error()),
			)
		}
	}

	return bookings, nil
}

// Submit validates the request, checks the availability gate for the
// session's form, and sends the booking to the backend. On success the
// session's bookings cache is dropped so the dashboard re-fetches. On
// failure nothing is left in flight: the caller may resubmit immediately.
func (s *BookingService) Submit(ctx context.Context, sid, token string, identity *domain.Identity, req domain.BookingRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	checker := s.checkers.For(sid)
	if err := checker.Gate(req); err != nil {
		return err
	}

	if err := s.api.Create(ctx, token, req); err != nil {
		return err
	}

	s.logger.Info("booking submitted",
		logger.Int("unit_id", req.UnitID),
		logger.Int("room_id", req.RoomID),
		logger.String("date", req.Date),
	)

	if err := s.cache.Del(ctx, cache.BookingsKey(sid)); err != nil {
		s.logger.Warn("bookings cache invalidation failed",
			logger.String("error", err.Error()),
		)
	}

	go s.notifier.NotifyBookingSubmitted(context.WithoutCancel(ctx), identity, req)

	return nil
}
