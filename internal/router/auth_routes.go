package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/handler"
	"github.com/iliyamo/event-hotel-booking/internal/middleware"
)

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Operations that do not require an existing session.  Each of these
	// handlers is responsible for generating or exchanging tokens.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token and returns a new pair.
	g.POST("/refresh", a.Refresh)
	// Logout accepts a JSON body containing a `refresh_token` and
	// invalidates that session.  It does not require JWT authentication.
	g.POST("/logout", a.Logout)

	// Routes that require a valid access token.  The JWTAuth middleware runs
	// before every handler registered on this group.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}
