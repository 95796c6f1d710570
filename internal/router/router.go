package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Landing(c *ginext.Context)
	LoginPage(c *ginext.Context)
	Login(c *ginext.Context)
	RegisterPage(c *ginext.Context)
	Register(c *ginext.Context)
	Logout(c *ginext.Context)
	CurrentIdentity(c *ginext.Context)
	UserDashboard(c *ginext.Context)
	BookingForm(c *ginext.Context)
	AdminRedirect(c *ginext.Context)
	AdminUnits(c *ginext.Context)
	AdminRooms(c *ginext.Context)
	UpdateAvailability(c *ginext.Context)
	AvailabilityStatus(c *ginext.Context)
	SubmitBooking(c *ginext.Context)
	ListOwnBookings(c *ginext.Context)
	ListUnits(c *ginext.Context)
	CreateUnit(c *ginext.Context)
	UpdateUnit(c *ginext.Context)
	DeleteUnit(c *ginext.Context)
	ListRooms(c *ginext.Context)
	CreateRoom(c *ginext.Context)
	UpdateRoom(c *ginext.Context)
	DeleteRoom(c *ginext.Context)
}

// Guards are the pre-built role gates the route table hangs routes on.
type Guards struct {
	PageUser  ginext.HandlerFunc
	PageAdmin ginext.HandlerFunc
	APIUser   ginext.HandlerFunc
	APIAdmin  ginext.HandlerFunc
	APIAny    ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Public pages
	router.GET("/", h.Landing)
	router.GET("/login", h.LoginPage)
	router.POST("/login", h.Login)
	router.GET("/register", h.RegisterPage)
	router.POST("/register", h.Register)
	router.GET("/logout", h.Logout)

	// User pages
	router.GET("/user", g.PageUser, h.UserDashboard)
	router.GET("/user/request", g.PageUser, h.BookingForm)

	// Admin pages
	router.GET("/admin", g.PageAdmin, h.AdminRedirect)
	router.GET("/admin/units", g.PageAdmin, h.AdminUnits)
	router.GET("/admin/rooms", g.PageAdmin, h.AdminRooms)

	api := router.Group("/api")
	{
		// Signed-in identity for page scripts.
		api.GET("/user", g.APIAny, h.CurrentIdentity)

		// Booking workflow
		api.POST("/availability", g.APIUser, h.UpdateAvailability)
		api.GET("/availability", g.APIUser, h.AvailabilityStatus)
		api.POST("/bookings", g.APIUser, h.SubmitBooking)
		api.GET("/bookings", g.APIUser, h.ListOwnBookings)

		// Catalog reads serve both the booking form and the admin tables.
		api.GET("/units", g.APIAny, h.ListUnits)
		api.GET("/rooms", g.APIAny, h.ListRooms)

		// Catalog mutations are admin-only.
		api.POST("/units", g.APIAdmin, h.CreateUnit)
		api.PUT("/units/:id", g.APIAdmin, h.UpdateUnit)
		api.DELETE("/units/:id", g.APIAdmin, h.DeleteUnit)
		api.POST("/rooms", g.APIAdmin, h.CreateRoom)
		api.PUT("/rooms/:id", g.APIAdmin, h.UpdateRoom)
		api.DELETE("/rooms/:id", g.APIAdmin, h.DeleteRoom)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	return router
}
