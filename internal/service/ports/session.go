package ports

import "context"

// SessionStore persists the browser sessions holding backend bearer tokens.
// Token must always return the current row; callers never cache its result
// across requests.
type SessionStore interface {
	Create(ctx context.Context, token string) (string, error)
	Token(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
