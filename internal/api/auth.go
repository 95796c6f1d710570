package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

type tokenResponse struct {
	Token string `json:"token"`
}

func (c *Client) Login(ctx context.Context, input domain.LoginInput) (string, error) {
	body := map[string]string{
		"username": input.Username,
		"password": input.Password,
	}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: %w: empty token", domain.ErrBackendUnavailable)
	}

	return resp.Token, nil
}

func (c *Client) Register(ctx context.Context, input domain.RegisterInput) (string, error) {
	body := map[string]string{
		"name":             input.Name,
		"username":         input.Username,
		"password":         input.Password,
		"confirm_password": input.ConfirmPassword,
	}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/register", "", body, &resp); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("register: %w: empty token", domain.ErrBackendUnavailable)
	}

	return resp.Token, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	if err := c.do(ctx, http.MethodPost, "/logout", token, nil, nil); err != nil {
		// An already-dead token is a successful logout.
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil
		}
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*domain.Identity, error) {
	var identity domain.Identity
	if err := c.get(ctx, "/user", token, &identity); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("current user: %w", err)
	}
	return &identity, nil
}
