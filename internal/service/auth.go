package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/logger"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/cache"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/service/ports"
)

// AuthService drives login, register and logout. Each of the three
// invalidates the session's cached identity, which is the only way a
// resolution is ever refreshed.
type AuthService struct {
	api      ports.AuthAPI
	sessions ports.SessionStore
	identity *IdentityService
	checkers *CheckerRegistry
	cache    ports.KVCache
	validate *validator.Validate
	logger   logger.Logger
}

func NewAuthService(
	api ports.AuthAPI,
	sessions ports.SessionStore,
	identity *IdentityService,
	checkers *CheckerRegistry,
	kv ports.KVCache,
	log logger.Logger,
) *AuthService {
	return &AuthService{
		api:      api,
		sessions: sessions,
		identity: identity,
		checkers: checkers,
		cache:    kv,
		validate: validator.New(),
		logger:   log,
	}
}

// Login exchanges credentials for a backend token and parks it in a new
// session. It returns the sid for the cookie.
func (s *AuthService) Login(ctx context.Context, input domain.LoginInput) (string, error) {
	if err := s.validate.Struct(input); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	token, err := s.api.Login(ctx, input)
	if err != nil {
		return "", err
	}

	sid, err := s.sessions.Create(ctx, token)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	s.identity.Invalidate(ctx, sid)
	s.logger.Info("user logged in", logger.String("username", input.Username))

	return sid, nil
}

// Register creates an account and logs the new user straight in.
func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (string, error) {
	if err := s.validate.Struct(input); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	token, err := s.api.Register(ctx, input)
	if err != nil {
		return "", err
	}

	sid, err := s.sessions.Create(ctx, token)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	s.identity.Invalidate(ctx, sid)
	s.logger.Info("user registered", logger.String("username", input.Username))

	return sid, nil
}

// Logout tells the backend to revoke the token, then clears every trace of
// the session: the row, the cached identity, the cached bookings, and any
// in-progress booking form. The local teardown happens even when the
// backend call fails.
func (s *AuthService) Logout(ctx context.Context, sid, token string) error {
	if token != "" {
		if err := s.api.Logout(ctx, token); err != nil {
			s.logger.Warn("backend logout failed",
				logger.String("error", err.Error()),
			)
		}
	}

	if err := s.sessions.Delete(ctx, sid); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.identity.Invalidate(ctx, sid)
	if err := s.cache.Del(ctx, cache.BookingsKey(sid)); err != nil {
		s.logger.Warn("bookings cache invalidation failed",
			logger.String("error", err.Error()),
		)
	}
	s.checkers.Drop(sid)

	s.logger.Info("user logged out", logger.String("sid", sid))

	return nil
}
