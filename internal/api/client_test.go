package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(Options{
		BaseURL:        srv.URL,
		Timeout:        2 * time.Second,
		BreakerTimeout: time.Second,
	}, newTestLogger(t))

	return c, srv
}

func TestClient_Login_Success(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "secret", body["password"])

		json.NewEncoder(w).Encode(map[string]string{"token": "backend-token"})
	})

	token, err := c.Login(context.Background(), domain.LoginInput{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "backend-token", token)
}

func TestClient_Login_BadCredentials(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	})

	_, err := c.Login(context.Background(), domain.LoginInput{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_Login_EmptyTokenIsBackendFault(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": ""})
	})

	_, err := c.Login(context.Background(), domain.LoginInput{Username: "alice", Password: "secret"})

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestClient_CurrentUser_SendsBearerToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer backend-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(domain.Identity{ID: 7, Name: "Alice", Username: "alice", Role: domain.RoleUser})
	})

	identity, err := c.CurrentUser(context.Background(), "backend-token")

	require.NoError(t, err)
	assert.Equal(t, 7, identity.ID)
	assert.Equal(t, domain.RoleUser, identity.Role)
}

// A 401 is a final answer; the client must not retry it.
func TestClient_CurrentUser_UnauthorizedNotRetried(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.CurrentUser(context.Background(), "stale")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_CurrentUser_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(domain.Identity{ID: 7, Role: domain.RoleUser})
	})

	identity, err := c.CurrentUser(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, 7, identity.ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Logout_DeadTokenIsSuccess(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := c.Logout(context.Background(), "stale")

	assert.NoError(t, err)
}

func TestClient_CheckAvailability(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/room-requests/check-availability", r.URL.Path)

		var q domain.AvailabilityQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, 3, q.RoomID)
		assert.Equal(t, "2026-09-01", q.Date)

		json.NewEncoder(w).Encode(map[string]bool{"available": true})
	})

	available, err := c.CheckAvailability(context.Background(), "tok", domain.AvailabilityQuery{RoomID: 3, Date: "2026-09-01"})

	require.NoError(t, err)
	assert.True(t, available)
}

func TestClient_CheckAvailability_NotAvailable(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"available": false})
	})

	available, err := c.CheckAvailability(context.Background(), "tok", domain.AvailabilityQuery{RoomID: 3, Date: "2026-09-01"})

	require.NoError(t, err)
	assert.False(t, available)
}

func TestClient_CreateBooking_BadRequestCarriesMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "time_end must be after time_start"})
	})

	err := c.Create(context.Background(), "tok", domain.BookingRequest{
		UnitID: 1, RoomID: 3, Date: "2026-09-01", TimeStart: "11:00", TimeEnd: "09:00",
	})

	require.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Contains(t, err.Error(), "time_end must be after time_start")
}

func TestClient_ListUnits(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/units", r.URL.Path)
		json.NewEncoder(w).Encode([]domain.Unit{{ID: 1, Name: "FTIK"}, {ID: 2, Name: "FBS"}})
	})

	units, err := c.ListUnits(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "FBS", units[1].Name)
}

func TestClient_DeleteUnit_NotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.DeleteUnit(context.Background(), "tok", 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// A logged-out visitor with a stale cookie produces a 401 on every page
// load. That is normal traffic and must never open the breaker: after a
// burst of them the backend has to stay reachable for everyone else.
func TestClient_UnauthorizedBurstDoesNotOpenBreaker(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			json.NewEncoder(w).Encode(map[string]string{"token": "backend-token"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})

	for i := 0; i < 10; i++ {
		_, err := c.CurrentUser(context.Background(), "stale")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	}

	token, err := c.Login(context.Background(), domain.LoginInput{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "backend-token", token)
}

// Repeated 5xx outcomes are real failures and do open it: once tripped,
// calls are rejected without reaching the backend.
func TestClient_ServerErrorBurstOpensBreaker(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 10; i++ {
		err := c.CreateUnit(context.Background(), "tok", "FTIK")
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	}

	// gobreaker's default ReadyToTrip fires after 6 consecutive failures.
	assert.Equal(t, int32(6), calls.Load())
}

func TestClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(Options{
		BaseURL:        url,
		Timeout:        time.Second,
		BreakerTimeout: time.Second,
	}, newTestLogger(t))

	err := c.CreateUnit(context.Background(), "tok", "FTIK")

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}
