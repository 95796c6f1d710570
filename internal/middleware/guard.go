package middleware

import (
	"context"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

// IdentityResolver is the slice of the identity service the guard needs.
type IdentityResolver interface {
	Resolve(ctx context.Context, sid, token string) (domain.Resolution, error)
}

// RequireRole gates a page subtree on the resolved identity. The decision
// table, in order: resolver error -> generic error page; unauthenticated ->
// redirect to the landing route; wrong role -> redirect to the landing
// route (which re-dispatches by role); match -> render. This is UX gating
// only; the backend re-checks every operation.
func RequireRole(resolver IdentityResolver, role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		res, err := resolver.Resolve(c.Request.Context(), SID(c), Token(c))
		if err != nil {
			c.Set("error", err.Error())
			c.Abort()
			c.HTML(http.StatusInternalServerError, "error.html", ginext.H{
				"Message": "Something went wrong. Please try again.",
			})
			return
		}

		if !res.Authenticated {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		if res.Identity.Role != role {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(ctxKeyIdentity, res.Identity)
		c.Next()
	}
}

// RequireRoleAPI is the JSON twin of RequireRole for the fetch endpoints:
// 401 when unauthenticated or unresolved, 403 on a role mismatch. Page
// scripts treat a 401 as "go back to the landing route".
func RequireRoleAPI(resolver IdentityResolver, roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		res, err := resolver.Resolve(c.Request.Context(), SID(c), Token(c))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusBadGateway, ginext.H{"error": "identity resolution failed"})
			return
		}

		if !res.Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthenticated"})
			return
		}

		for _, role := range roles {
			if res.Identity.Role == role {
				c.Set(ctxKeyIdentity, res.Identity)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
	}
}
