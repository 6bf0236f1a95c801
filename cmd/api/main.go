package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/http/handlers"
	apimw "github.com/appdotbuilder/elegant-wedding-invitation/internal/http/middleware"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/mailer"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/repository"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/service"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/config"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/database"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/events"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/logger"
	mw "github.com/appdotbuilder/elegant-wedding-invitation/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	if err := database.Migrate(ctx, cfg.Database.URL); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Event bus is optional; without NATS_URL events are dropped.
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		bus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer bus.Close()
		publisher = bus
	}

	var mail mailer.Service
	switch {
	case cfg.Email.DevMode:
		mail = mailer.NewDevMailer()
	case cfg.Email.MailerSendKey != "":
		mail = mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.SMTPFrom)
	default:
		mail = mailer.NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom, cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPUseTLS)
	}

	// Initialize repositories
	guestRepo := repository.NewGuestRepository(pool)
	rsvpRepo := repository.NewRsvpRepository(pool)
	infoRepo := repository.NewWeddingInfoRepository(pool)
	photoRepo := repository.NewPhotoRepository(pool)
	rateLimitRepo := repository.NewRateLimitRepository(pool)

	// Initialize services
	guestService := service.NewGuestService(guestRepo, publisher)
	rsvpService := service.NewRsvpService(rsvpRepo, guestRepo, publisher, mail)
	infoService := service.NewWeddingInfoService(infoRepo, publisher)
	photoService := service.NewPhotoService(photoRepo, publisher)

	// Initialize handlers
	h := handlers.New(guestService, rsvpService, infoService, photoService)

	// Setup router
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("wedding-api"))
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.CORSOrigins},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	limiter := apimw.RateLimit(rateLimitRepo, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// Sweep expired rate limit windows so the table stays small.
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := rateLimitRepo.CleanupExpired(ctx); err != nil {
				logger.Error("Rate limit cleanup failed", "error", err)
			} else if n > 0 {
				logger.Debug("Cleaned up expired rate limits", "removed", n)
			}
		}
	}()

	r.Route("/api", func(r chi.Router) {
		h.RegisterRoutes(r, limiter)
	})

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down wedding api...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Wedding api shutdown error", "error", err)
		}
	}()

	logger.Info("Starting wedding api", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Wedding api error", "error", err)
		os.Exit(1)
	}
}
