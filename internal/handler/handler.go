package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/handler/dto"
)

type AuthSvc interface {
	Login(ctx context.Context, input domain.LoginInput) (string, error)
	Register(ctx context.Context, input domain.RegisterInput) (string, error)
	Logout(ctx context.Context, sid, token string) error
}

type IdentitySvc interface {
	Resolve(ctx context.Context, sid, token string) (domain.Resolution, error)
}

type CatalogSvc interface {
	Units(ctx context.Context, token string) ([]domain.Unit, error)
	Rooms(ctx context.Context, token string) ([]domain.Room, error)
	CreateUnit(ctx context.Context, token, name string) error
	RenameUnit(ctx context.Context, token string, id int, name string) error
	DeleteUnit(ctx context.Context, token string, id int) error
	CreateRoom(ctx context.Context, token, name string) error
	RenameRoom(ctx context.Context, token string, id int, name string) error
	DeleteRoom(ctx context.Context, token string, id int) error
}

type BookingSvc interface {
	ListOwn(ctx context.Context, sid, token string) ([]domain.Booking, error)
	Submit(ctx context.Context, sid, token string, identity *domain.Identity, req domain.BookingRequest) error
}

type AvailabilitySvc interface {
	Update(ctx context.Context, sid, token string, roomID *int, date *string) domain.AvailabilitySnapshot
	Snapshot(sid string) domain.AvailabilitySnapshot
}

// CookieConfig is how the sid cookie is issued.
type CookieConfig struct {
	Name   string
	MaxAge int
	Secure bool
}

type Handler struct {
	auth         AuthSvc
	identity     IdentitySvc
	catalog      CatalogSvc
	booking      BookingSvc
	availability AvailabilitySvc
	cookie       CookieConfig
}

func NewHandler(
	auth AuthSvc,
	identity IdentitySvc,
	catalog CatalogSvc,
	booking BookingSvc,
	availability AvailabilitySvc,
	cookie CookieConfig,
) *Handler {
	return &Handler{
		auth:         auth,
		identity:     identity,
		catalog:      catalog,
		booking:      booking,
		availability: availability,
		cookie:       cookie,
	}
}

func (h *Handler) setSessionCookie(c *ginext.Context, sid string) {
	c.SetCookie(h.cookie.Name, sid, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
}

func (h *Handler) clearSessionCookie(c *ginext.Context) {
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrCheckPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBackendUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "booking backend unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
