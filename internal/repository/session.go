package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

// SessionRepository stores browser sessions in Postgres. Each row maps a
// sid cookie value to the backend bearer token it fronts.
type SessionRepository struct {
	db       *dbpg.DB
	ttl      time.Duration
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		db:  db,
		ttl: ttl,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SessionRepository) Create(ctx context.Context, token string) (string, error) {
	sid := uuid.New().String()
	now := time.Now().UTC()

	query := `INSERT INTO sessions (sid, token, created_at, expires_at)
			  VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Master.ExecContext(ctx, query, sid, token, now, now.Add(r.ttl)); err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}

	return sid, nil
}

// Token returns the bearer token behind sid, reading the latest row every
// time so a logout elsewhere is seen immediately.
func (r *SessionRepository) Token(ctx context.Context, sid string) (string, error) {
	query := `SELECT token FROM sessions
			  WHERE sid = $1 AND expires_at > $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, sid, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	var token string
	if err = row.Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("scan session: %w", err)
	}

	return token, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	query := `DELETE FROM sessions WHERE sid = $1`
	if _, err := r.db.Master.ExecContext(ctx, query, sid); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at <= $1`
	res, err := r.db.Master.ExecContext(ctx, query, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
