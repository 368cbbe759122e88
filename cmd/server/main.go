package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"conferencecompanion/config"
	"conferencecompanion/internal/adapters/auth"
	"conferencecompanion/internal/adapters/email"
	"conferencecompanion/internal/adapters/feed"
	_ "conferencecompanion/docs"
	delivery "conferencecompanion/internal/delivery/http"
	"conferencecompanion/internal/delivery/http/controllers"
	"conferencecompanion/internal/delivery/http/middleware"
	"conferencecompanion/internal/repository/postgres"
	"conferencecompanion/internal/services"
)

// @title Conference Companion API
// @version 1.0
// @description Schedule layout engine and query API for conference companion apps.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()
	logger.Info("starting", "env", cfg.Environment, "port", cfg.Port)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("db open failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("db ping failed", "err", err)
		os.Exit(1)
	}
	logger.Info("db connected")

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mailer.SES.Region,
			AccessKeyID:        cfg.Mailer.SES.AccessKeyID,
			SecretAccessKey:    cfg.Mailer.SES.SecretAccessKey,
			InsecureSkipVerify: cfg.Mailer.SES.InsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("mailer init failed", "err", err)
		os.Exit(1)
	}

	tokens := auth.NewJWTManager(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(10)
	fetcher := feed.NewHTTPFetcher(cfg.FeedBaseURL, &http.Client{Timeout: 30 * time.Second})
	snapshotRepo := postgres.NewSnapshotRepository(db)
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer())

	scheduleSvc := services.NewScheduleService(fetcher, snapshotRepo, emailSvc, logger, cfg.Mailer.ReportTo, 30*time.Second)
	authSvc := services.NewAuthService(hasher, tokens, cfg.AccessCodeHash, cfg.TokenExpiry)

	scheduleController := controllers.NewScheduleController(logger, scheduleSvc)
	authController := controllers.NewAuthController(logger, authSvc)

	mux := delivery.NewRouter(scheduleController, authController, tokens, logger)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server failed", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}
