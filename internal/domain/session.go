package domain

import "time"

// Session is one browser session: an opaque backend bearer token parked
// server-side behind the sid cookie. The frontend never inspects the token.
type Session struct {
	SID       string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}
