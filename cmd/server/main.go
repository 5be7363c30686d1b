package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"financehub/internal/config"
	"financehub/internal/database"
	"financehub/internal/handlers"
	"financehub/internal/importer"
	"financehub/internal/middleware"
	"financehub/internal/repositories"
	"financehub/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrationsIfEnabled(db, cfg.Database.Driver); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	rules, err := importer.LoadRules(cfg.Import.RulesPath)
	if err != nil {
		log.Fatalf("Failed to load classification rules: %v", err)
	}

	var metrics services.MetricsRecorderInterface
	if cfg.Server.MetricsEnabled {
		metrics = services.NewPrometheusMetrics()
	} else {
		metrics = services.NewNoopMetrics()
	}

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	netWorthRepo := repositories.NewNetWorthRepository(db.DB)
	fundRepo := repositories.NewProtectedFundRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)

	pipeline := importer.NewPipeline(rules, nil)
	importService := services.NewImportService(transactionRepo, pipeline, cfg.Import, metrics)
	reviewService := services.NewReviewService(transactionRepo, metrics)
	insightsService := services.NewInsightsService(transactionRepo, budgetRepo)
	planningService := services.NewPlanningService(netWorthRepo, fundRepo, budgetRepo, transactionRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))

	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	e.GET("/health", healthHandler.HealthCheck)
	if cfg.Server.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	api := e.Group("/api/v1")
	api.Use(middleware.StaticTokenAuth(cfg.Security))

	importHandler := handlers.NewImportHandler(importService)
	api.POST("/imports", importHandler.ImportBatch)

	transactionHandler := handlers.NewTransactionHandler(reviewService)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/counts", transactionHandler.QueueCounts)
	api.POST("/transactions/approve", transactionHandler.BulkApprove)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PATCH("/transactions/:id", transactionHandler.UpdateTransaction)

	insightsHandler := handlers.NewInsightsHandler(insightsService)
	api.GET("/insights/summary", insightsHandler.Summary)
	api.GET("/insights/recurring", insightsHandler.RecurringCharges)
	api.GET("/insights/budgets", insightsHandler.BudgetStatus)

	planningHandler := handlers.NewPlanningHandler(planningService)
	api.GET("/networth", planningHandler.NetWorthSummary)
	api.POST("/networth", planningHandler.CreateNetWorthEntry)
	api.PUT("/networth/:id", planningHandler.UpdateNetWorthEntry)
	api.DELETE("/networth/:id", planningHandler.DeleteNetWorthEntry)

	api.GET("/funds", planningHandler.ListProtectedFunds)
	api.POST("/funds", planningHandler.CreateProtectedFund)
	api.GET("/funds/reserve", planningHandler.EmergencyReserve)
	api.PUT("/funds/:id", planningHandler.UpdateProtectedFund)
	api.DELETE("/funds/:id", planningHandler.DeleteProtectedFund)

	api.GET("/budgets", planningHandler.ListBudgets)
	api.PUT("/budgets", planningHandler.SetBudget)
	api.DELETE("/budgets/:category", planningHandler.DeleteBudget)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server",
			"address", server.Addr,
			"environment", cfg.Server.Environment,
			"db_driver", cfg.Database.Driver,
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("server exited")
}
