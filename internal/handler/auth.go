package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/handler/dto"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/middleware"
)

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sid, err := h.auth.Login(c.Request.Context(), domain.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, sid)
	c.JSON(http.StatusOK, dto.RedirectResponse{Redirect: "/"})
}

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sid, err := h.auth.Register(c.Request.Context(), domain.RegisterInput{
		Name:            req.Name,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, sid)
	c.JSON(http.StatusOK, dto.RedirectResponse{Redirect: "/"})
}

// Logout tears the session down and sends the browser to the login page.
// It always succeeds from the browser's point of view.
func (h *Handler) Logout(c *ginext.Context) {
	sid := middleware.SID(c)
	token := middleware.Token(c)

	if sid != "" {
		if err := h.auth.Logout(c.Request.Context(), sid, token); err != nil {
			c.Set("error", err.Error())
		}
	}

	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/login")
}

// CurrentIdentity returns the guard-resolved identity so page scripts can
// render the signed-in user without a second backend round trip.
func (h *Handler) CurrentIdentity(c *ginext.Context) {
	identity := middleware.Identity(c)
	if identity == nil {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, dto.ToIdentityResponse(identity))
}
