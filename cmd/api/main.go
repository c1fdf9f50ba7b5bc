package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/lifechef-health/careportal-api/internal/config"
	"github.com/lifechef-health/careportal-api/internal/email"
	alertHandler "github.com/lifechef-health/careportal-api/internal/handler/alert"
	analyticsHandler "github.com/lifechef-health/careportal-api/internal/handler/analytics"
	authHandler "github.com/lifechef-health/careportal-api/internal/handler/auth"
	careplanHandler "github.com/lifechef-health/careportal-api/internal/handler/careplan"
	"github.com/lifechef-health/careportal-api/internal/handler/health"
	mealplanHandler "github.com/lifechef-health/careportal-api/internal/handler/mealplan"
	messageHandler "github.com/lifechef-health/careportal-api/internal/handler/message"
	patientHandler "github.com/lifechef-health/careportal-api/internal/handler/patient"
	"github.com/lifechef-health/careportal-api/internal/middleware"
	"github.com/lifechef-health/careportal-api/internal/repository/memory"
	"github.com/lifechef-health/careportal-api/internal/router"
	"github.com/lifechef-health/careportal-api/internal/service/alert"
	"github.com/lifechef-health/careportal-api/internal/service/analytics"
	authService "github.com/lifechef-health/careportal-api/internal/service/auth"
	careplanService "github.com/lifechef-health/careportal-api/internal/service/careplan"
	"github.com/lifechef-health/careportal-api/internal/service/messaging"
	patientService "github.com/lifechef-health/careportal-api/internal/service/patient"
	"github.com/lifechef-health/careportal-api/internal/session"
	jwtauth "github.com/lifechef-health/careportal-api/pkg/auth"
	"github.com/lifechef-health/careportal-api/pkg/logger"
	"github.com/lifechef-health/careportal-api/pkg/security"
	"github.com/lifechef-health/careportal-api/pkg/sessionstore"
)

func main() {
	appLog := logger.NewLogger(nil).WithFields(map[string]interface{}{"service": "careportal-api"})

	cfg, err := config.Load()
	if err != nil {
		appLog.Fatal(err, "failed to load configuration")
	}

	// The request middleware logs through the zerolog global.
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.Log.Level))

	// Seeded in-memory store and repositories
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	patientRepo := memory.NewPatientRepository(store)
	carePlanRepo := memory.NewCarePlanRepository(store)
	messageRepo := memory.NewMessageRepository(store)
	alertRepo := memory.NewAlertRepository(store)
	analyticsRepo := memory.NewAnalyticsRepository(store)

	// Session and auth plumbing
	tokens := jwtauth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	hasher := security.NewBcryptHasher(0)
	sessions := sessionstore.New(time.Duration(cfg.Session.TTLHours)*time.Hour, cfg.Session.SnapshotPath)
	tracker := session.NewTracker()

	// Services
	authSvc := authService.NewService(userRepo, tokens, hasher, sessions, tracker,
		time.Duration(cfg.Login.DelayMillis)*time.Millisecond)
	patientSvc := patientService.NewService(patientRepo)
	careplanSvc := careplanService.NewService(carePlanRepo, patientRepo)
	messagingSvc := messaging.NewService(messageRepo)
	analyticsSvc := analytics.NewService(patientRepo, alertRepo, analyticsRepo)
	notifier := email.NewService(email.Config{
		Enabled:  cfg.Email.Enabled,
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
	})
	alertSvc := alert.NewService(alertRepo, patientRepo, userRepo, notifier)

	if err := authSvc.Restore(context.Background()); err != nil {
		appLog.Warn("failed to restore sessions", "error", err.Error())
	}

	// Router
	r := router.New(
		authSvc,
		authHandler.NewHandler(authSvc),
		health.NewHandler(),
		patientHandler.NewHandler(patientSvc, alertSvc),
		careplanHandler.NewHandler(careplanSvc),
		mealplanHandler.NewHandler(careplanSvc),
		messageHandler.NewHandler(messagingSvc),
		alertHandler.NewHandler(alertSvc),
		analyticsHandler.NewHandler(analyticsSvc),
		router.Config{
			RateLimit:  rate.Limit(cfg.RateLimit.RPS),
			RateBurst:  cfg.RateLimit.Burst,
			Timeout:    time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
			CORSConfig: middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLog.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(err, "server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := sessions.Save(); err != nil {
		appLog.Error(err, "failed to snapshot sessions on shutdown")
	}
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Fatal(err, "forced shutdown")
	}

	appLog.Info("server stopped")
}
