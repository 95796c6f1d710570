package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

type nameBody struct {
	Name string `json:"name"`
}

func (c *Client) ListUnits(ctx context.Context, token string) ([]domain.Unit, error) {
	var units []domain.Unit
	if err := c.get(ctx, "/units", token, &units); err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	return units, nil
}

func (c *Client) CreateUnit(ctx context.Context, token, name string) error {
	if err := c.do(ctx, http.MethodPost, "/units", token, nameBody{Name: name}, nil); err != nil {
		return fmt.Errorf("create unit: %w", err)
	}
	return nil
}

func (c *Client) UpdateUnit(ctx context.Context, token string, id int, name string) error {
	path := fmt.Sprintf("/units/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, nameBody{Name: name}, nil); err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

func (c *Client) DeleteUnit(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/units/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

func (c *Client) ListRooms(ctx context.Context, token string) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := c.get(ctx, "/rooms", token, &rooms); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (c *Client) CreateRoom(ctx context.Context, token, name string) error {
	if err := c.do(ctx, http.MethodPost, "/rooms", token, nameBody{Name: name}, nil); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (c *Client) UpdateRoom(ctx context.Context, token string, id int, name string) error {
	path := fmt.Sprintf("/rooms/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, nameBody{Name: name}, nil); err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

func (c *Client) DeleteRoom(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/rooms/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
