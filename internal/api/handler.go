package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/nicolasreynoso/forja/internal/db"
	"github.com/nicolasreynoso/forja/internal/services"
)

type Handler struct {
	database     *gorm.DB
	repos        *db.Repositories
	bookings     *services.BookingService
	payments     *services.PaymentService
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	repos := db.NewRepositories(database)
	return &Handler{
		database:     database,
		repos:        repos,
		bookings:     services.NewBookingService(repos.Bookings, repos.Settings),
		payments:     services.NewPaymentService(repos.Payments),
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
