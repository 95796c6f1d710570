package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/service/ports/mocks"
)

const testSID = "11111111-2222-3333-4444-555555555555"

func validRequest() domain.BookingRequest {
	return domain.BookingRequest{
		UnitID:    1,
		RoomID:    3,
		Date:      "2026-09-01",
		TimeStart: "09:00",
		TimeEnd:   "11:00",
	}
}

// openGate drives the session's checker through a successful availability
// check for the request's pair.
func openGate(t *testing.T, api *mocks.MockBookingAPI, registry *CheckerRegistry, req domain.BookingRequest) {
	t.Helper()

	api.EXPECT().
		CheckAvailability(mock.Anything, "tok", domain.AvailabilityQuery{RoomID: req.RoomID, Date: req.Date}).
		Return(true, nil)

	c := registry.For(testSID)
	c.SetInputs(context.Background(), "tok", &req.RoomID, &req.Date)
	require.Eventually(t, func() bool {
		return !c.Snapshot().Checking
	}, time.Second, 5*time.Millisecond)
}

func TestBookingService_Submit_Success(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	kv := mocks.NewMockKVCache(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)
	registry := NewCheckerRegistry(api, log)

	svc := NewBookingService(api, kv, registry, notifier, time.Minute, log)

	req := validRequest()
	openGate(t, api, registry, req)

	identity := &domain.Identity{ID: 7, Name: "Alice", Role: domain.RoleUser}

	api.EXPECT().Create(mock.Anything, "tok", req).Return(nil)
	kv.EXPECT().Del(mock.Anything, "bookings:"+testSID).Return(nil)
	notifier.EXPECT().NotifyBookingSubmitted(mock.Anything, identity, req).Return()

	err := svc.Submit(context.Background(), testSID, "tok", identity, req)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Submit_ValidationFails(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	kv := mocks.NewMockKVCache(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)
	registry := NewCheckerRegistry(api, log)

	svc := NewBookingService(api, kv, registry, notifier, time.Minute, log)

	cases := map[string]domain.BookingRequest{
		"missing unit": {RoomID: 3, Date: "2026-09-01", TimeStart: "09:00", TimeEnd: "11:00"},
		"missing room": {UnitID: 1, Date: "2026-09-01", TimeStart: "09:00", TimeEnd: "11:00"},
		"bad date":     {UnitID: 1, RoomID: 3, Date: "01-09-2026", TimeStart: "09:00", TimeEnd: "11:00"},
		"bad time":     {UnitID: 1, RoomID: 3, Date: "2026-09-01", TimeStart: "9am", TimeEnd: "11:00"},
		"missing end":  {UnitID: 1, RoomID: 3, Date: "2026-09-01", TimeStart: "09:00"},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			err := svc.Submit(context.Background(), testSID, "tok", nil, req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Submit_GateClosedForUncheckedPair(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	kv := mocks.NewMockKVCache(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)
	registry := NewCheckerRegistry(api, log)

	svc := NewBookingService(api, kv, registry, notifier, time.Minute, log)

	err := svc.Submit(context.Background(), testSID, "tok", nil, validRequest())
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestBookingService_Submit_CheckStillPending(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	kv := mocks.NewMockKVCache(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)
	registry := NewCheckerRegistry(api, log)

	svc := NewBookingService(api, kv, registry, notifier, time.Minute, log)

	req := validRequest()

	release := make(chan struct{})
	defer close(release)
	api.EXPECT().
		CheckAvailability(mock.Anything, "tok", mock.Anything).
		RunAndReturn(func(context.Context, string, domain.AvailabilityQuery) (bool, error) {
			<-release
			return true, nil
		})

	registry.For(testSID).SetInputs(context.Background(), "tok", &req.RoomID, &req.Date)

	err := svc.Submit(context.Background(), testSID, "tok", nil, req)
	assert.ErrorIs(t, err, domain.ErrCheckPending)
}

func TestBookingService_Submit_BackendErrorAllowsResubmit(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	kv := mocks.NewMockKVCache(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)
	registry := NewCheckerRegistry(api, log)

	svc := NewBookingService(api, kv, registry, notifier, time.Minute, log)

	req := validRequest()
	openGate(t, api, registry, req)

	api.EXPECT().Create(mock.Anything, "tok", req).Return(domain.ErrBackendUnavailable).Once()

	err := svc.Submit(context.Background(), testSID, "tok", nil, req)
	require.ErrorIs(t, err, domain.ErrBackendUnavailable)

	// The gate stays open for the checked pair, so a retry goes straight out.
	api.EXPECT().Create(mock.Anything, "tok", req).Return(nil).Once()
	kv.EXPECT().Del(mock.Anything, "bookings:"+testSID).Return(nil)
	notifier.EXPECT().NotifyBookingSubmitted(mock.Anything, mock.Anything, req).Return()

	err = svc.Submit(context.Background(), testSID, "tok", nil, req)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ListOwn_CacheHit(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	kv := mocks.NewMockKVCache(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)
	registry := NewCheckerRegistry(api, log)

	svc := NewBookingService(api, kv, registry, notifier, time.Minute, log)

	cached := []domain.Booking{
		{ID: 1, Unit: domain.NamedRef{Name: "FTIK"}, Room: domain.NamedRef{Name: "Lab 2"}, Date: "2026-09-01", Status: "pending"},
	}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	kv.EXPECT().Get(mock.Anything, "bookings:"+testSID).Return(string(raw), nil)

	bookings, err := svc.ListOwn(context.Background(), testSID, "tok")
	require.NoError(t, err)
	assert.Equal(t, cached, bookings)
}

func TestBookingService_ListOwn_CacheMissFetchesAndStores(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	kv := mocks.NewMockKVCache(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)
	registry := NewCheckerRegistry(api, log)

	svc := NewBookingService(api, kv, registry, notifier, time.Minute, log)

	fetched := []domain.Booking{{ID: 2, Date: "2026-09-03", Status: "approved"}}

	kv.EXPECT().Get(mock.Anything, "bookings:"+testSID).Return("", domain.ErrNotFound)
	api.EXPECT().ListOwn(mock.Anything, "tok").Return(fetched, nil)
	kv.EXPECT().Set(mock.Anything, "bookings:"+testSID, mock.Anything, time.Minute).Return(nil)

	bookings, err := svc.ListOwn(context.Background(), testSID, "tok")
	require.NoError(t, err)
	assert.Equal(t, fetched, bookings)
}

func TestBookingService_ListOwn_BackendError(t *testing.T) {
	api := mocks.NewMockBookingAPI(t)
	kv := mocks.NewMockKVCache(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)
	registry := NewCheckerRegistry(api, log)

	svc := NewBookingService(api, kv, registry, notifier, time.Minute, log)

	kv.EXPECT().Get(mock.Anything, "bookings:"+testSID).Return("", domain.ErrNotFound)
	api.EXPECT().ListOwn(mock.Anything, "tok").Return(nil, errors.New("boom"))

	_, err := svc.ListOwn(context.Background(), testSID, "tok")
	require.Error(t, err)
}
