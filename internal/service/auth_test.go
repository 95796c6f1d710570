package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/service/ports/mocks"
)

type authFixture struct {
	api      *mocks.MockAuthAPI
	sessions *mocks.MockSessionStore
	kv       *mocks.MockKVCache
	registry *CheckerRegistry
	svc      *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	api := mocks.NewMockAuthAPI(t)
	sessions := mocks.NewMockSessionStore(t)
	kv := mocks.NewMockKVCache(t)
	log := newTestLogger(t)

	identity := NewIdentityService(api, kv, time.Minute, log)
	registry := NewCheckerRegistry(mocks.NewMockBookingAPI(t), log)

	return &authFixture{
		api:      api,
		sessions: sessions,
		kv:       kv,
		registry: registry,
		svc:      NewAuthService(api, sessions, identity, registry, kv, log),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture(t)

	input := domain.LoginInput{Username: "alice", Password: "secret"}

	f.api.EXPECT().Login(mock.Anything, input).Return("backend-token", nil)
	f.sessions.EXPECT().Create(mock.Anything, "backend-token").Return(testSID, nil)
	f.kv.EXPECT().Del(mock.Anything, "identity:"+testSID).Return(nil)

	sid, err := f.svc.Login(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, testSID, sid)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), domain.LoginInput{Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.Login(context.Background(), domain.LoginInput{Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	f := newAuthFixture(t)

	input := domain.LoginInput{Username: "alice", Password: "wrong"}

	f.api.EXPECT().Login(mock.Anything, input).Return("", domain.ErrUnauthorized)

	_, err := f.svc.Login(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Login_SessionStoreError(t *testing.T) {
	f := newAuthFixture(t)

	input := domain.LoginInput{Username: "alice", Password: "secret"}

	f.api.EXPECT().Login(mock.Anything, input).Return("backend-token", nil)
	f.sessions.EXPECT().Create(mock.Anything, "backend-token").Return("", errors.New("db down"))

	_, err := f.svc.Login(context.Background(), input)
	require.Error(t, err)
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newAuthFixture(t)

	input := domain.RegisterInput{
		Name:            "Alice",
		Username:        "alice",
		Password:        "secret",
		ConfirmPassword: "secret",
	}

	f.api.EXPECT().Register(mock.Anything, input).Return("backend-token", nil)
	f.sessions.EXPECT().Create(mock.Anything, "backend-token").Return(testSID, nil)
	f.kv.EXPECT().Del(mock.Anything, "identity:"+testSID).Return(nil)

	sid, err := f.svc.Register(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, testSID, sid)
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	f := newAuthFixture(t)

	input := domain.RegisterInput{
		Name:            "Alice",
		Username:        "alice",
		Password:        "secret",
		ConfirmPassword: "different",
	}

	_, err := f.svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Logout_FullTeardown(t *testing.T) {
	f := newAuthFixture(t)

	before := f.registry.For(testSID)

	f.api.EXPECT().Logout(mock.Anything, "tok").Return(nil)
	f.sessions.EXPECT().Delete(mock.Anything, testSID).Return(nil)
	f.kv.EXPECT().Del(mock.Anything, "identity:"+testSID).Return(nil)
	f.kv.EXPECT().Del(mock.Anything, "bookings:"+testSID).Return(nil)

	err := f.svc.Logout(context.Background(), testSID, "tok")
	require.NoError(t, err)

	assert.NotSame(t, before, f.registry.For(testSID))
}

// Backend logout failures are logged and swallowed: the local session is
// torn down regardless, so the browser always ends up signed out.
func TestAuthService_Logout_BackendFailureStillTearsDown(t *testing.T) {
	f := newAuthFixture(t)

	f.api.EXPECT().Logout(mock.Anything, "tok").Return(domain.ErrBackendUnavailable)
	f.sessions.EXPECT().Delete(mock.Anything, testSID).Return(nil)
	f.kv.EXPECT().Del(mock.Anything, "identity:"+testSID).Return(nil)
	f.kv.EXPECT().Del(mock.Anything, "bookings:"+testSID).Return(nil)

	err := f.svc.Logout(context.Background(), testSID, "tok")
	require.NoError(t, err)
}

func TestAuthService_Logout_NoTokenSkipsBackendCall(t *testing.T) {
	f := newAuthFixture(t)

	f.sessions.EXPECT().Delete(mock.Anything, testSID).Return(nil)
	f.kv.EXPECT().Del(mock.Anything, "identity:"+testSID).Return(nil)
	f.kv.EXPECT().Del(mock.Anything, "bookings:"+testSID).Return(nil)

	err := f.svc.Logout(context.Background(), testSID, "")
	require.NoError(t, err)
}
