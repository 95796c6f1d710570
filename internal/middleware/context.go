package middleware

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

const (
	ctxKeySID      = "session_sid"
	ctxKeyToken    = "session_token"
	ctxKeyIdentity = "identity"
	ctxKeyReqID    = "request_id"
)

// SID returns the sid cookie value loaded by the Session middleware, or ""
// when the browser carries no session.
func SID(c *ginext.Context) string {
	return c.GetString(ctxKeySID)
}

// Token returns the backend bearer token for this request. It is looked up
// fresh on every request; nothing downstream should hold on to it.
func Token(c *ginext.Context) string {
	return c.GetString(ctxKeyToken)
}

// Identity returns the resolved identity placed by the role guard.
func Identity(c *ginext.Context) *domain.Identity {
	v, ok := c.Get(ctxKeyIdentity)
	if !ok {
		return nil
	}
	identity, ok := v.(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}

func RequestIDFrom(c *ginext.Context) string {
	return c.GetString(ctxKeyReqID)
}
