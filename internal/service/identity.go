package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/cache"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/service/ports"
)

// IdentityService resolves the current session to an identity. Results are
// cached per session until explicitly invalidated by login, register or
// logout, so navigation does not re-fetch.
type IdentityService struct {
	api    ports.AuthAPI
	cache  ports.KVCache
	ttl    time.Duration
	logger logger.Logger
}

func NewIdentityService(api ports.AuthAPI, kv ports.KVCache, ttl time.Duration, log logger.Logger) *IdentityService {
	return &IdentityService{
		api:    api,
		cache:  kv,
		ttl:    ttl,
		logger: log,
	}
}

// Resolve returns the identity behind the session. A missing or rejected
// token is the normal unauthenticated state and yields a nil error; only
// non-auth failures (backend down, decode errors) are returned as errors.
func (s *IdentityService) Resolve(ctx context.Context, sid, token string) (domain.Resolution, error) {
	if token == "" {
		return domain.Resolution{}, nil
	}

	if sid != "" {
		if raw, err := s.cache.Get(ctx, cache.IdentityKey(sid)); err == nil {
			var identity domain.Identity
			if err := json.Unmarshal([]byte(raw), &identity); err == nil {
				return domain.Resolution{Identity: &identity, Authenticated: true}, nil
			}
			// Unreadable entry, fall through to a fresh fetch.
			s.cache.Del(ctx, cache.IdentityKey(sid))
		}
	}

	identity, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return domain.Resolution{}, nil
		}
		return domain.Resolution{}, fmt.Errorf("resolve identity: %w", err)
	}

	if sid != "" {
		if raw, err := json.Marshal(identity); err == nil {
			if err := s.cache.Set(ctx, cache.IdentityKey(sid), string(raw), s.ttl); err != nil {
				s.logger.Warn("identity cache write failed",
					logger.String("error", err.Error()),
				)
			}
		}
	}

	return domain.Resolution{Identity: identity, Authenticated: true}, nil
}

// Invalidate drops the cached identity for the session. Called on login,
// register and logout; a fresh resolve follows on the next request.
func (s *IdentityService) Invalidate(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	if err := s.cache.Del(ctx, cache.IdentityKey(sid)); err != nil {
		s.logger.Warn("identity cache invalidation failed",
			logger.String("sid", sid),
			logger.String("error", err.Error()),
		)
	}
}
