package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-hotel-booking/internal/config"
	"github.com/iliyamo/event-hotel-booking/internal/handler"
	"github.com/iliyamo/event-hotel-booking/internal/middleware"
)

// RegisterHotels wires the hotel browse endpoints under the protected /v1
// prefix.  Listing hotels and reading a hotel's rooms are the hottest read
// paths in the service, so both sit behind the Redis response cache when a
// Redis client is available.  With rdb == nil the routes still work, just
// uncached.
func RegisterHotels(e *echo.Echo, h *handler.HotelHandler, jwtSecret string, cacheCfg config.CacheConfig, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	if rdb != nil {
		g.Use(middleware.NewRedisCache(cacheCfg, rdb))
	}

	g.GET("/hotels", h.ListHotels)
	g.GET("/hotels/:id", h.GetHotel)
}
