package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"audit-statements/internal/config"
	"audit-statements/internal/database"
	"audit-statements/internal/handlers"
	custommiddleware "audit-statements/internal/middleware"
	"audit-statements/internal/repositories"
	"audit-statements/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err.Error())
		os.Exit(1)
	}

	// Repositories
	projectRepo := repositories.NewProjectRepository(db)
	trialBalanceRepo := repositories.NewTrialBalanceRepository(db)
	statementRepo := repositories.NewStatementRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	projectService := services.NewProjectService(projectRepo)
	trialBalanceService := services.NewTrialBalanceService(projectRepo, trialBalanceRepo)
	summaryService := services.NewProjectSummaryService(projectRepo, trialBalanceRepo, statementRepo)
	generationService := services.NewStatementGenerationService(
		projectRepo,
		trialBalanceRepo,
		statementRepo,
		metrics,
		cfg.Engine,
	)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService, summaryService)
	trialBalanceHandler := handlers.NewTrialBalanceHandler(trialBalanceService)
	statementHandler := handlers.NewStatementHandler(generationService)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, custommiddleware.TraceIDHeader},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	projects := v1.Group("/projects")
	projects.POST("", projectHandler.CreateProject)
	projects.GET("", projectHandler.ListProjects)
	projects.GET("/:id", projectHandler.GetProject)
	projects.DELETE("/:id", projectHandler.DeleteProject)
	projects.GET("/:id/summary", projectHandler.GetProjectSummary)
	projects.GET("/:id/trial-balance", trialBalanceHandler.GetTrialBalance)
	projects.PUT("/:id/trial-balance", trialBalanceHandler.ReplaceTrialBalance)
	projects.POST("/:id/statements/generate", statementHandler.GenerateStatements)
	projects.GET("/:id/statements", statementHandler.ListStatements)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server",
			"address", addr,
			"environment", cfg.Server.Environment,
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server", "timeout", cfg.Server.ShutdownTimeout.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
