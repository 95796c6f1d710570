package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/service/ports/mocks"
)

func TestIdentityService_Resolve_NoToken(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	kv := mocks.NewMockKVCache(t)

	svc := NewIdentityService(api, kv, time.Minute, newTestLogger(t))

	res, err := svc.Resolve(context.Background(), testSID, "")

	require.NoError(t, err)
	assert.False(t, res.Authenticated)
	assert.Nil(t, res.Identity)
}

func TestIdentityService_Resolve_CacheHit(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	kv := mocks.NewMockKVCache(t)

	svc := NewIdentityService(api, kv, time.Minute, newTestLogger(t))

	cached := domain.Identity{ID: 7, Name: "Alice", Username: "alice", Role: domain.RoleUser}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	kv.EXPECT().Get(mock.Anything, "identity:"+testSID).Return(string(raw), nil)

	res, err := svc.Resolve(context.Background(), testSID, "tok")

	require.NoError(t, err)
	assert.True(t, res.Authenticated)
	assert.Equal(t, cached, *res.Identity)
}

func TestIdentityService_Resolve_FetchesAndCaches(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	kv := mocks.NewMockKVCache(t)

	svc := NewIdentityService(api, kv, time.Minute, newTestLogger(t))

	identity := &domain.Identity{ID: 7, Name: "Alice", Username: "alice", Role: domain.RoleUser}

	kv.EXPECT().Get(mock.Anything, "identity:"+testSID).Return("", domain.ErrNotFound)
	api.EXPECT().CurrentUser(mock.Anything, "tok").Return(identity, nil)
	kv.EXPECT().Set(mock.Anything, "identity:"+testSID, mock.Anything, time.Minute).Return(nil)

	res, err := svc.Resolve(context.Background(), testSID, "tok")

	require.NoError(t, err)
	assert.True(t, res.Authenticated)
	assert.Equal(t, identity, res.Identity)
}

// A token the backend rejects is the normal expired-session state, not an
// error: the caller treats it as unauthenticated and redirects to login.
func TestIdentityService_Resolve_RejectedToken(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	kv := mocks.NewMockKVCache(t)

	svc := NewIdentityService(api, kv, time.Minute, newTestLogger(t))

	kv.EXPECT().Get(mock.Anything, "identity:"+testSID).Return("", domain.ErrNotFound)
	api.EXPECT().CurrentUser(mock.Anything, "stale").Return(nil, domain.ErrUnauthorized)

	res, err := svc.Resolve(context.Background(), testSID, "stale")

	require.NoError(t, err)
	assert.False(t, res.Authenticated)
	assert.Nil(t, res.Identity)
}

func TestIdentityService_Resolve_BackendError(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	kv := mocks.NewMockKVCache(t)

	svc := NewIdentityService(api, kv, time.Minute, newTestLogger(t))

	kv.EXPECT().Get(mock.Anything, "identity:"+testSID).Return("", domain.ErrNotFound)
	api.EXPECT().CurrentUser(mock.Anything, "tok").Return(nil, domain.ErrBackendUnavailable)

	_, err := svc.Resolve(context.Background(), testSID, "tok")

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestIdentityService_Resolve_CorruptCacheEntryRefetches(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	kv := mocks.NewMockKVCache(t)

	svc := NewIdentityService(api, kv, time.Minute, newTestLogger(t))

	identity := &domain.Identity{ID: 7, Role: domain.RoleAdmin}

	kv.EXPECT().Get(mock.Anything, "identity:"+testSID).Return("{not json", nil)
	kv.EXPECT().Del(mock.Anything, "identity:"+testSID).Return(nil)
	api.EXPECT().CurrentUser(mock.Anything, "tok").Return(identity, nil)
	kv.EXPECT().Set(mock.Anything, "identity:"+testSID, mock.Anything, time.Minute).Return(nil)

	res, err := svc.Resolve(context.Background(), testSID, "tok")

	require.NoError(t, err)
	assert.True(t, res.Authenticated)
}

func TestIdentityService_Invalidate(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	kv := mocks.NewMockKVCache(t)

	svc := NewIdentityService(api, kv, time.Minute, newTestLogger(t))

	kv.EXPECT().Del(mock.Anything, "identity:"+testSID).Return(nil)

	svc.Invalidate(context.Background(), testSID)
}

func TestIdentityService_Invalidate_EmptySIDIsNoop(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	kv := mocks.NewMockKVCache(t)

	svc := NewIdentityService(api, kv, time.Minute, newTestLogger(t))

	svc.Invalidate(context.Background(), "")
}
