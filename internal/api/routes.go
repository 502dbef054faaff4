package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health
//	GET  /api/v1/today
//	POST /api/v1/convert/to-gregorian
//	POST /api/v1/convert/to-ethiopian
//	GET  /api/v1/dates/{date}
//	GET  /api/v1/bahire-hasab/{year}
//	GET  /api/v1/bahire-hasab/{year}/feasts/{key}
//	GET  /api/v1/holidays/{year}
//	GET  /api/v1/holidays/{year}/{month}
//	GET  /api/v1/holiday/{key}
//	GET  /api/v1/calendar/{year}
//
// Every JSON route accepts ?lang=am|en.
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RecoveryMiddleware(logger))
	r.Use(RequestIDMiddleware())
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware())
	r.Use(middleware.Timeout(30 * time.Second))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", CodeMethodNotAllowed)
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/today", handlers.GetToday)

		r.Route("/convert", func(r chi.Router) {
			r.Post("/to-gregorian", handlers.ConvertToGregorian)
			r.Post("/to-ethiopian", handlers.ConvertToEthiopian)
		})

		r.Get("/dates/{date}", handlers.GetDate)

		r.Route("/bahire-hasab/{year}", func(r chi.Router) {
			r.Get("/", handlers.GetBahireHasab)
			r.Get("/feasts/{key}", handlers.GetFeast)
		})

		r.Route("/holidays/{year}", func(r chi.Router) {
			r.Get("/", handlers.GetHolidays)
			r.Get("/{month}", handlers.GetMonth)
		})

		r.Get("/holiday/{key}", handlers.GetHoliday)
		r.Get("/calendar/{year}", handlers.GetCalendar)
	})

	return r
}
