package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/campusjive/campus-events/internal/handler"    // import the handlers that implement business logic
	"github.com/campusjive/campus-events/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/campusjive/campus-events/internal/model"      // role constants shared with the JWT claims
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// This endpoint can be used by load balancers or monitoring systems to
	// verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes.  Login and logout are
// unauthenticated (logout clears the persisted session unconditionally and
// has no error path); /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)

	// Protected group: every handler registered here runs the JWTAuth
	// middleware first.  Both roles may ask who they are.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleStudent, model.RoleAdmin))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated browse endpoints.  Guests
// can inspect the catalog, the categories, the photo gallery and the
// current background reference without logging in.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	e.GET("/v1/events", p.GetEvents)
	e.GET("/v1/categories", p.GetCategories)
	e.GET("/v1/photos", p.GetPhotos)
	e.GET("/v1/background", p.GetBackground)
}

// RegisterStudent registers the endpoints available to any authenticated
// user: creating registration requests, listing one's own bookings (admins
// see all), viewing a ticket and asking for AI suggestions.
func RegisterStudent(e *echo.Echo, b *handler.BookingHandler, sg *handler.SuggestHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleStudent, model.RoleAdmin))
	g.POST("/bookings", b.CreateBooking)
	g.GET("/bookings", b.ListBookings)
	g.GET("/tickets/:bookingId", b.GetTicket)
	g.POST("/suggestions", sg.Suggest)
}

// RegisterAdmin registers every admin-only mutation behind
// RequireRole("admin").  The store performs no authorization itself, so
// this group is the enforcement point for the admin workflows.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin))

	g.POST("/events", a.CreateEvent)
	g.DELETE("/events/:id", a.DeleteEvent)
	g.GET("/events/:id/participants.csv", a.DownloadParticipants)

	g.POST("/categories", a.CreateCategory)
	g.DELETE("/categories/:id", a.DeleteCategory)

	g.POST("/photos", a.CreatePhoto)
	g.DELETE("/photos/:id", a.DeletePhoto)

	g.PATCH("/bookings/:id/status", a.DecideBooking)

	g.PUT("/pin", a.UpdatePIN)
	g.PUT("/background", a.UpdateBackground)
}
