package ports

import (
	"context"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

// AuthAPI is the authentication surface of the booking backend.
type AuthAPI interface {
	Login(ctx context.Context, input domain.LoginInput) (string, error)
	Register(ctx context.Context, input domain.RegisterInput) (string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.Identity, error)
}

// CatalogAPI is the unit/room catalog surface of the booking backend.
type CatalogAPI interface {
	ListUnits(ctx context.Context, token string) ([]domain.Unit, error)
	CreateUnit(ctx context.Context, token, name string) error
	UpdateUnit(ctx context.Context, token string, id int, name string) error
	DeleteUnit(ctx context.Context, token string, id int) error
	ListRooms(ctx context.Context, token string) ([]domain.Room, error)
	CreateRoom(ctx context.Context, token, name string) error
	UpdateRoom(ctx context.Context, token string, id int, name string) error
	DeleteRoom(ctx context.Context, token string, id int) error
}

// BookingAPI is the booking surface of the booking backend.
type BookingAPI interface {
	ListOwn(ctx context.Context, token string) ([]domain.Booking, error)
	CheckAvailability(ctx context.Context, token string, q domain.AvailabilityQuery) (bool, error)
	Create(ctx context.Context, token string, req domain.BookingRequest) error
}
