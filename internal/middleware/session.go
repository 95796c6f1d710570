package middleware

import (
	"errors"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/service/ports"
)

// Session loads the browser's session, if any, and stashes the sid and the
// bearer token for the handlers. A missing or expired session is not an
// error here; the request simply proceeds unauthenticated.
func Session(store ports.SessionStore, cookieName string, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			c.Next()
			return
		}

		c.Set(ctxKeySID, sid)

		token, err := store.Token(c.Request.Context(), sid)
		if err != nil {
			if !errors.Is(err, domain.ErrSessionNotFound) {
				log.Warn("session lookup failed",
					logger.String("error", err.Error()),
				)
			}
			c.Next()
			return
		}

		c.Set(ctxKeyToken, token)
		c.Next()
	}
}
