package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hotel-booking/internal/config"
	"github.com/iliyamo/event-hotel-booking/internal/database"
	"github.com/iliyamo/event-hotel-booking/internal/handler"
	"github.com/iliyamo/event-hotel-booking/internal/middleware"
	"github.com/iliyamo/event-hotel-booking/internal/repository"
	"github.com/iliyamo/event-hotel-booking/internal/router"
	"github.com/iliyamo/event-hotel-booking/internal/service"
)

func main() {
	// Load a local .env file when present; in production the variables come
	// from the real environment and the file is simply absent.
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: when it is unreachable the client is nil and both
	// the response cache and the rate limiter quietly disable themselves.
	rdb := config.NewRedisClient()

	users := repository.NewUserRepo(db)
	sessions := repository.NewSessionRepo(db)
	enrollments := repository.NewEnrollmentRepo(db)
	tickets := repository.NewTicketRepo(db)
	hotels := repository.NewHotelRepo(db)
	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)

	bookingSvc := service.NewBookingService(bookings, rooms, enrollments, tickets)

	authH := handler.NewAuthHandler(cfg, users, sessions)
	enrollH := handler.NewEnrollmentHandler(enrollments)
	ticketH := handler.NewTicketHandler(tickets, enrollments)
	hotelH := handler.NewHotelHandler(hotels)
	bookingH := handler.NewBookingHandler(bookingSvc)

	e := echo.New()
	if rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterBooking(e, enrollH, ticketH, bookingH, cfg.JWTSecret)
	router.RegisterHotels(e, hotelH, cfg.JWTSecret, config.LoadCacheConfig(), rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
