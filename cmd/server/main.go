package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtside/internal/config"
	"courtside/internal/database"
	"courtside/internal/handlers"
	"courtside/internal/middleware"
	"courtside/internal/repositories"
	"courtside/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	clientRepo := repositories.NewClientRepository(db)
	playerRepo := repositories.NewPlayerRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	dayEventRepo := repositories.NewDayEventRepository(db)
	snapshotRepo := repositories.NewSnapshotRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	statementService := services.NewStatementService(snapshotRepo, metrics)
	accountsService := services.NewAccountsService(snapshotRepo, metrics)
	analyticsService := services.NewAnalyticsService(snapshotRepo, metrics)
	clientService := services.NewClientService(db, clientRepo, playerRepo, paymentRepo, metrics)
	scheduleService := services.NewScheduleService(sessionRepo, playerRepo, dayEventRepo, metrics)
	paymentService := services.NewPaymentService(paymentRepo, clientRepo, playerRepo, metrics)
	demoDataService := services.NewDemoDataService(db, cfg.Billing.SeedEnabled, metrics)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	statementHandler := handlers.NewStatementHandler(statementService)
	accountsHandler := handlers.NewAccountsHandler(accountsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	clientHandler := handlers.NewClientHandler(clientService)
	sessionHandler := handlers.NewSessionHandler(scheduleService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	devHandler := handlers.NewDevHandler(demoDataService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Billing.RateLimitPerSecond, cfg.Billing.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RequireAuth(&cfg.Portal))

	// Client directory and rosters (staff only, except a client's own record)
	clients := api.Group("/clients")
	clients.POST("", clientHandler.CreateClient, middleware.RequireStaff())
	clients.GET("", clientHandler.ListClients, middleware.RequireStaff())
	clients.GET("/duplicates", clientHandler.FindDuplicates, middleware.RequireAdmin())
	clients.GET("/:clientId", clientHandler.GetClient, middleware.RequireClientAccess("clientId"))
	clients.PUT("/:clientId", clientHandler.UpdateClient, middleware.RequireStaff())
	clients.DELETE("/:clientId", clientHandler.DeleteClient, middleware.RequireAdmin())
	clients.POST("/:clientId/merge", clientHandler.MergeClients, middleware.RequireAdmin())
	clients.GET("/:clientId/statements", statementHandler.GetStatement, middleware.RequireClientAccess("clientId"))

	players := api.Group("/players", middleware.RequireStaff())
	players.POST("", clientHandler.CreatePlayer)
	players.GET("", clientHandler.ListPlayers)
	players.GET("/:playerId", clientHandler.GetPlayer)
	players.PUT("/:playerId", clientHandler.UpdatePlayer)
	players.DELETE("/:playerId", clientHandler.DeletePlayer)

	sessions := api.Group("/sessions", middleware.RequireStaff())
	sessions.POST("", sessionHandler.CreateSession)
	sessions.GET("", sessionHandler.ListSessions)
	sessions.GET("/:sessionId", sessionHandler.GetSession)
	sessions.PUT("/:sessionId", sessionHandler.UpdateSession)
	sessions.PUT("/:sessionId/cancellation", sessionHandler.SetSessionCancelled)
	sessions.DELETE("/:sessionId", sessionHandler.DeleteSession)

	dayEvents := api.Group("/day-events", middleware.RequireStaff())
	dayEvents.POST("", sessionHandler.RecordDayEvent)
	dayEvents.GET("", sessionHandler.ListDayEvents)
	dayEvents.DELETE("/:eventId", sessionHandler.DeleteDayEvent)

	payments := api.Group("/payments", middleware.RequireStaff())
	payments.POST("", paymentHandler.RecordPayment)
	payments.GET("", paymentHandler.ListPayments)
	payments.GET("/:paymentId", paymentHandler.GetPayment)
	payments.PUT("/:paymentId", paymentHandler.UpdatePayment)
	payments.DELETE("/:paymentId", paymentHandler.DeletePayment)

	reports := api.Group("/reports", middleware.RequireAdmin())
	reports.GET("/accounts", accountsHandler.GetAccountsReport)

	analytics := api.Group("/analytics", middleware.RequireAdmin())
	analytics.GET("/revenue-trend", analyticsHandler.GetRevenueTrend)
	analytics.GET("/session-mix", analyticsHandler.GetSessionMix)
	analytics.GET("/client-health", analyticsHandler.GetClientHealth)
	analytics.GET("/peak-hours", analyticsHandler.GetPeakHours)

	if !cfg.IsProduction() {
		api.POST("/dev/seed", devHandler.SeedDemoData, middleware.RequireAdmin())
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	serverErrCh := make(chan error, 1)
	go func() {
		slog.Info("server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment)
		serverErrCh <- e.Start(":" + cfg.Server.Port)
	}()

	select {
	case <-sigCtx.Done():
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	case err := <-serverErrCh:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	slog.Info("server stopped")
}
