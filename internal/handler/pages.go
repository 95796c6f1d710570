package handler

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/middleware"
)

// Landing dispatches by resolved role: admins to the catalog, users to the
// dashboard, everyone else to login. Unknown roles fall back to login.
func (h *Handler) Landing(c *ginext.Context) {
	res, err := h.identity.Resolve(c.Request.Context(), middleware.SID(c), middleware.Token(c))
	if err != nil {
		c.Set("error", err.Error())
		c.HTML(http.StatusInternalServerError, "error.html", ginext.H{
			"Message": "Something went wrong. Please try again.",
		})
		return
	}

	if !res.Authenticated {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	switch res.Identity.Role {
	case domain.RoleAdmin:
		c.Redirect(http.StatusFound, "/admin/units")
	case domain.RoleUser:
		c.Redirect(http.StatusFound, "/user")
	default:
		c.Redirect(http.StatusFound, "/login")
	}
}

func (h *Handler) LoginPage(c *ginext.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *Handler) RegisterPage(c *ginext.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// UserDashboard renders the user's booking list.
func (h *Handler) UserDashboard(c *ginext.Context) {
	bookings, err := h.booking.ListOwn(c.Request.Context(), middleware.SID(c), middleware.Token(c))
	if err != nil {
		c.Set("error", err.Error())
		c.HTML(http.StatusInternalServerError, "error.html", ginext.H{
			"Message": "Could not load your bookings. Please try again.",
		})
		return
	}

	rows := make([]ginext.H, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, ginext.H{
			"ID":        b.ID,
			"Unit":      b.Unit.Name,
			"Room":      b.Room.Name,
			"Date":      humanDate(b.Date),
			"TimeStart": b.TimeStart,
			"TimeEnd":   b.TimeEnd,
			"Status":    b.Status,
		})
	}

	c.HTML(http.StatusOK, "dashboard.html", ginext.H{
		"Identity": middleware.Identity(c),
		"Bookings": rows,
	})
}

// BookingForm renders the booking request form with the unit and room
// selectors pre-populated.
func (h *Handler) BookingForm(c *ginext.Context) {
	token := middleware.Token(c)

	units, err := h.catalog.Units(c.Request.Context(), token)
	if err != nil {
		c.Set("error", err.Error())
		c.HTML(http.StatusInternalServerError, "error.html", ginext.H{
			"Message": "Could not load the catalog. Please try again.",
		})
		return
	}

	rooms, err := h.catalog.Rooms(c.Request.Context(), token)
	if err != nil {
		c.Set("error", err.Error())
		c.HTML(http.StatusInternalServerError, "error.html", ginext.H{
			"Message": "Could not load the catalog. Please try again.",
		})
		return
	}

	c.HTML(http.StatusOK, "request.html", ginext.H{
		"Identity": middleware.Identity(c),
		"Units":    units,
		"Rooms":    rooms,
	})
}

func (h *Handler) AdminRedirect(c *ginext.Context) {
	c.Redirect(http.StatusFound, "/admin/units")
}

func (h *Handler) AdminUnits(c *ginext.Context) {
	units, err := h.catalog.Units(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.Set("error", err.Error())
		c.HTML(http.StatusInternalServerError, "error.html", ginext.H{
			"Message": "Could not load units. Please try again.",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_units.html", ginext.H{
		"Identity": middleware.Identity(c),
		"Units":    units,
	})
}

func (h *Handler) AdminRooms(c *ginext.Context) {
	rooms, err := h.catalog.Rooms(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.Set("error", err.Error())
		c.HTML(http.StatusInternalServerError, "error.html", ginext.H{
			"Message": "Could not load rooms. Please try again.",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_rooms.html", ginext.H{
		"Identity": middleware.Identity(c),
		"Rooms":    rooms,
	})
}

// humanDate turns an ISO date into the long form shown on the dashboard.
// Unparseable values render as-is.
func humanDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Monday, 02 January 2006")
}
