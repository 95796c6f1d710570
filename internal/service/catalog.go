package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/cache"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/service/ports"
)

// CatalogService serves the unit and room lists behind a shared cache and
// proxies admin mutations. Every successful mutation drops the matching
// list entry so the next read re-fetches.
type CatalogService struct {
	api    ports.CatalogAPI
	cache  ports.KVCache
	ttl    time.Duration
	logger logger.Logger
}

func NewCatalogService(api ports.CatalogAPI, kv ports.KVCache, ttl time.Duration, log logger.Logger) *CatalogService {
	return &CatalogService{
		api:    api,
		cache:  kv,
		ttl:    ttl,
		logger: log,
	}
}

func (s *CatalogService) Units(ctx context.Context, token string) ([]domain.Unit, error) {
	var units []domain.Unit
	if hit := s.fromCache(ctx, cache.UnitsKey, &units); hit {
		return units, nil
	}

	units, err := s.api.ListUnits(ctx, token)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cache.UnitsKey, units)

	return units, nil
}

func (s *CatalogService) Rooms(ctx context.Context, token string) ([]domain.Room, error) {
	var rooms []domain.Room
	if hit := s.fromCache(ctx, cache.RoomsKey, &rooms); hit {
		return rooms, nil
	}

	rooms, err := s.api.ListRooms(ctx, token)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cache.RoomsKey, rooms)

	return rooms, nil
}

func (s *CatalogService) CreateUnit(ctx context.Context, token, name string) error {
	name, err := catalogName(name)
	if err != nil {
		return err
	}
	if err := s.api.CreateUnit(ctx, token, name); err != nil {
		return err
	}
	s.invalidate(ctx, cache.UnitsKey)
	return nil
}

func (s *CatalogService) RenameUnit(ctx context.Context, token string, id int, name string) error {
	name, err := catalogName(name)
	if err != nil {
		return err
	}
	if err := s.api.UpdateUnit(ctx, token, id, name); err != nil {
		return err
	}
	s.invalidate(ctx, cache.UnitsKey)
	return nil
}

func (s *CatalogService) DeleteUnit(ctx context.Context, token string, id int) error {
	if err := s.api.DeleteUnit(ctx, token, id); err != nil {
		return err
	}
	s.invalidate(ctx, cache.UnitsKey)
	return nil
}

func (s *CatalogService) CreateRoom(ctx context.Context, token, name string) error {
	name, err := catalogName(name)
	if err != nil {
		return err
	}
	if err := s.api.CreateRoom(ctx, token, name); err != nil {
		return err
	}
	s.invalidate(ctx, cache.RoomsKey)
	return nil
}

func (s *CatalogService) RenameRoom(ctx context.Context, token string, id int, name string) error {
	name, err := catalogName(name)
	if err != nil {
		return err
	}
	if err := s.api.UpdateRoom(ctx, token, id, name); err != nil {
		return err
	}
	s.invalidate(ctx, cache.RoomsKey)
	return nil
}

func (s *CatalogService) DeleteRoom(ctx context.Context, token string, id int) error {
	if err := s.api.DeleteRoom(ctx, token, id); err != nil {
		return err
	}
	s.invalidate(ctx, cache.RoomsKey)
	return nil
}

// catalogName rejects blank names before any network call.
func catalogName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return name, nil
}

func (s *CatalogService) fromCache(ctx context.Context, key string, out any) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.invalidate(ctx, key)
		return false
	}
	return true
}

func (s *CatalogService) toCache(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		s.logger.Warn("catalog cache write failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (s *CatalogService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Del(ctx, key); err != nil {
		s.logger.Warn("catalog cache invalidation failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}
