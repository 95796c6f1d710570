package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/service/ports/mocks"
)

const testSID = "11111111-2222-3333-4444-555555555555"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func sessionRouter(t *testing.T, store *mocks.MockSessionStore) http.Handler {
	t.Helper()

	r := ginext.New("test")
	r.Use(Session(store, "ruangan_sid", newTestLogger(t)))
	r.GET("/whoami", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"sid": SID(c), "token": Token(c)})
	})
	return r
}

func TestSession_LoadsTokenFromStore(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	r := sessionRouter(t, store)

	store.EXPECT().Token(mock.Anything, testSID).Return("backend-token", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "ruangan_sid", Value: testSID})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sid":"`+testSID+`","token":"backend-token"}`, w.Body.String())
}

func TestSession_NoCookieProceedsUnauthenticated(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	r := sessionRouter(t, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sid":"","token":""}`, w.Body.String())
}

// An expired or deleted session row keeps the sid around (so logout can
// still clear the cookie) but yields no token.
func TestSession_ExpiredRowYieldsNoToken(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	r := sessionRouter(t, store)

	store.EXPECT().Token(mock.Anything, testSID).Return("", domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "ruangan_sid", Value: testSID})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sid":"`+testSID+`","token":""}`, w.Body.String())
}
