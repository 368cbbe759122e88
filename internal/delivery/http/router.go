package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferencecompanion/internal/delivery/http/controllers"
	"conferencecompanion/internal/delivery/http/middleware"
	"conferencecompanion/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(scheduleController *controllers.ScheduleController, authController *controllers.AuthController, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Public schedule views
	mux.HandleFunc("GET /conferences/{code}/days", scheduleController.ListDays)
	mux.HandleFunc("GET /conferences/{code}/days/{date}/schedule", scheduleController.GetDaySchedule)
	mux.HandleFunc("GET /conferences/{code}/days/{date}/list", scheduleController.ChronologicalList)
	mux.HandleFunc("GET /conferences/{code}/search", scheduleController.Search)
	mux.HandleFunc("GET /conferences/{code}/sessions/{slug}/next", scheduleController.NextSession)

	// Operator endpoints
	mux.HandleFunc("POST /conferences/{code}/import", requireAuth(scheduleController.ImportFeed))
	mux.HandleFunc("GET /conferences/{code}/snapshots", requireAuth(scheduleController.ListSnapshots))

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
