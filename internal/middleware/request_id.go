package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags each request with an id, honoring one supplied by a proxy.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(ctxKeyReqID, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}
