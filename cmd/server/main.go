package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"gamenight/config"
	_ "gamenight/docs"
	"gamenight/internal/adapters/email"
	httpdelivery "gamenight/internal/delivery/http"
	"gamenight/internal/delivery/http/controllers"
	"gamenight/internal/delivery/http/middleware"
	"gamenight/internal/repository/postgres"
	"gamenight/internal/services"
)

// @title           Game Night API
// @version         1.0
// @description     Event scheduling and RSVP service for game nights.
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := config.NewLogger(cfg)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	store := postgres.NewKVStore(db)
	eventRepo := postgres.NewEventRepository(store, logger)
	prefRepo := postgres.NewPreferenceRepository(store, logger)

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailerProvider,
		FromAddress: cfg.MailerFromEmail,
		FromName:    cfg.MailerFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	}, logger)
	renderer := email.NewTemplateRenderer()

	eventService := services.NewEventService(eventRepo)
	emailService := services.NewEmailService(mailer, renderer, logger)
	rsvpService := services.NewRSVPService(eventRepo, emailService, logger)
	prefService := services.NewPreferenceService(prefRepo)
	shareService := services.NewShareService(eventRepo, cfg.ShareSecret, cfg.ShareBaseURL)
	transferService := services.NewTransferService(eventRepo, prefRepo)

	mux := httpdelivery.NewRouter(
		controllers.NewEventController(logger, eventService),
		controllers.NewGuestController(logger, rsvpService),
		controllers.NewCalendarController(logger, eventService),
		controllers.NewShareController(logger, shareService),
		controllers.NewPreferencesController(logger, prefService),
		controllers.NewTransferController(logger, transferService, eventService),
	)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
