package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func waitSettled(t *testing.T, c *Checker) domain.AvailabilitySnapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return !c.Snapshot().Checking
	}, time.Second, 5*time.Millisecond, "check never finished")
	return c.Snapshot()
}

func TestChecker_IncompleteInputs_NoCheck(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	c := NewChecker(api, newTestLogger(t))

	snap := c.SetInputs(context.Background(), "tok", intPtr(3), nil)

	assert.False(t, snap.Checking)
	assert.False(t, snap.Available)
	assert.False(t, snap.Complete())

	snap = c.SetInputs(context.Background(), "tok", nil, strPtr("2026-09-01"))

	assert.False(t, snap.Checking)
	assert.False(t, snap.Available)
}

func TestChecker_CompletePair_OpensGateWhenAvailable(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	c := NewChecker(api, newTestLogger(t))

	api.EXPECT().
		CheckAvailability(mock.Anything, "tok", domain.AvailabilityQuery{RoomID: 3, Date: "2026-09-01"}).
		Return(true, nil)

	snap := c.SetInputs(context.Background(), "tok", intPtr(3), strPtr("2026-09-01"))
	assert.True(t, snap.Checking)
	assert.False(t, snap.Available)

	snap = waitSettled(t, c)
	assert.True(t, snap.Available)

	err := c.Gate(domain.BookingRequest{UnitID: 1, RoomID: 3, Date: "2026-09-01", TimeStart: "09:00", TimeEnd: "11:00"})
	assert.NoError(t, err)
}

func TestChecker_Unavailable_KeepsGateClosed(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	c := NewChecker(api, newTestLogger(t))

	api.EXPECT().
		CheckAvailability(mock.Anything, "tok", mock.Anything).
		Return(false, nil)

	c.SetInputs(context.Background(), "tok", intPtr(3), strPtr("2026-09-01"))
	snap := waitSettled(t, c)

	assert.False(t, snap.Available)
	assert.True(t, snap.Blocked())

	err := c.Gate(domain.BookingRequest{RoomID: 3, Date: "2026-09-01"})
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestChecker_ErrorFailsClosed(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	c := NewChecker(api, newTestLogger(t))

	api.EXPECT().
		CheckAvailability(mock.Anything, "tok", mock.Anything).
		Return(false, errors.New("backend down"))

	c.SetInputs(context.Background(), "tok", intPtr(3), strPtr("2026-09-01"))
	snap := waitSettled(t, c)

	assert.False(t, snap.Available)

	err := c.Gate(domain.BookingRequest{RoomID: 3, Date: "2026-09-01"})
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestChecker_GatePendingWhileCheckInFlight(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	c := NewChecker(api, newTestLogger(t))

	release := make(chan struct{})
	api.EXPECT().
		CheckAvailability(mock.Anything, "tok", mock.Anything).
		RunAndReturn(func(context.Context, string, domain.AvailabilityQuery) (bool, error) {
			<-release
			return true, nil
		})

	c.SetInputs(context.Background(), "tok", intPtr(3), strPtr("2026-09-01"))

	err := c.Gate(domain.BookingRequest{RoomID: 3, Date: "2026-09-01"})
	assert.ErrorIs(t, err, domain.ErrCheckPending)

	close(release)
	waitSettled(t, c)

	err = c.Gate(domain.BookingRequest{RoomID: 3, Date: "2026-09-01"})
	assert.NoError(t, err)
}

// A positive answer for a pair the form has already moved away from must
// never open the gate for the new pair.
func TestChecker_StaleResponseIgnored(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	c := NewChecker(api, newTestLogger(t))

	firstDone := make(chan struct{})
	api.EXPECT().
		CheckAvailability(mock.Anything, "tok", domain.AvailabilityQuery{RoomID: 3, Date: "2026-09-01"}).
		RunAndReturn(func(context.Context, string, domain.AvailabilityQuery) (bool, error) {
			<-firstDone
			return true, nil
		})
	api.EXPECT().
		CheckAvailability(mock.Anything, "tok", domain.AvailabilityQuery{RoomID: 3, Date: "2026-09-02"}).
		Return(false, nil)

	c.SetInputs(context.Background(), "tok", intPtr(3), strPtr("2026-09-01"))
	c.SetInputs(context.Background(), "tok", intPtr(3), strPtr("2026-09-02"))

	// The slow answer for the old date arrives after the new pair's verdict.
	close(firstDone)

	snap := waitSettled(t, c)
	assert.False(t, snap.Available)

	assert.ErrorIs(t, c.Gate(domain.BookingRequest{RoomID: 3, Date: "2026-09-01"}), domain.ErrRoomUnavailable)
	assert.ErrorIs(t, c.Gate(domain.BookingRequest{RoomID: 3, Date: "2026-09-02"}), domain.ErrRoomUnavailable)
}

func TestChecker_SameInputs_NoNewCheck(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	c := NewChecker(api, newTestLogger(t))

	api.EXPECT().
		CheckAvailability(mock.Anything, "tok", mock.Anything).
		Return(true, nil).
		Once()

	c.SetInputs(context.Background(), "tok", intPtr(3), strPtr("2026-09-01"))
	waitSettled(t, c)

	snap := c.SetInputs(context.Background(), "tok", intPtr(3), strPtr("2026-09-01"))
	assert.False(t, snap.Checking)
	assert.True(t, snap.Available)
}

func TestChecker_GateRejectsDifferentPair(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	c := NewChecker(api, newTestLogger(t))

	api.EXPECT().
		CheckAvailability(mock.Anything, "tok", mock.Anything).
		Return(true, nil)

	c.SetInputs(context.Background(), "tok", intPtr(3), strPtr("2026-09-01"))
	waitSettled(t, c)

	err := c.Gate(domain.BookingRequest{RoomID: 4, Date: "2026-09-01"})
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)

	err = c.Gate(domain.BookingRequest{RoomID: 3, Date: "2026-09-02"})
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestCheckerRegistry_PerSession(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	r := NewCheckerRegistry(api, newTestLogger(t))

	a := r.For("sid-a")
	b := r.For("sid-b")

	assert.NotSame(t, a, b)
	assert.Same(t, a, r.For("sid-a"))

	r.Drop("sid-a")
	assert.NotSame(t, a, r.For("sid-a"))
}

func TestCheckerRegistry_PruneIdle(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	r := NewCheckerRegistry(api, newTestLogger(t))

	r.For("sid-a")
	r.For("sid-b")

	assert.Equal(t, 0, r.PruneIdle(time.Hour))

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, r.PruneIdle(10*time.Millisecond))
	assert.Equal(t, 0, r.PruneIdle(10*time.Millisecond))
}

func TestAvailabilityService_UpdateAndSnapshot(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	registry := NewCheckerRegistry(api, newTestLogger(t))
	svc := NewAvailabilityService(registry)

	api.EXPECT().
		CheckAvailability(mock.Anything, "tok", mock.Anything).
		Return(true, nil)

	snap := svc.Update(context.Background(), "sid", "tok", intPtr(3), strPtr("2026-09-01"))
	assert.True(t, snap.Checking)

	require.Eventually(t, func() bool {
		return !svc.Snapshot("sid").Checking
	}, time.Second, 5*time.Millisecond)

	assert.True(t, svc.Snapshot("sid").Available)
}
