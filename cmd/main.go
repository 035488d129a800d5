package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/freelance-tracker/docs"
	"github.com/sbilibin2017/freelance-tracker/internal/config"
	"github.com/sbilibin2017/freelance-tracker/internal/handlers"
	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/middlewares"
	"github.com/sbilibin2017/freelance-tracker/internal/repositories"
	"github.com/sbilibin2017/freelance-tracker/internal/services"
	"github.com/sbilibin2017/freelance-tracker/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title freelance-tracker API
// @version 1.0.0
// @description Time and client tracking for freelancers
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey UserEmail
// @in header
// @name x-user-email
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger and the database, serves HTTP until ctx is
// cancelled or a termination signal arrives, then shuts down gracefully.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	db, err := storage.Open(ctx, cfg.DatabasePath, cfg.DBMaxOpenConns)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      newRouter(db, cfg.Addr(), time.Now),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP routes.
func newRouter(db *sqlx.DB, addr string, now func() time.Time) http.Handler {
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	clientReadRepo := repositories.NewClientReadRepository(db, txGetter)
	clientWriteRepo := repositories.NewClientWriteRepository(db, txGetter)
	entryReadRepo := repositories.NewWorkEntryReadRepository(db, txGetter)
	entryWriteRepo := repositories.NewWorkEntryWriteRepository(db, txGetter)
	dashboardRepo := repositories.NewDashboardReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo)
	clientService := services.NewClientService(clientReadRepo, clientWriteRepo)
	entryService := services.NewWorkEntryService(entryReadRepo, entryWriteRepo, clientReadRepo)
	reportService := services.NewReportService(clientReadRepo, entryReadRepo)
	dashboardService := services.NewDashboardService(dashboardRepo, now)

	emailGetter := handlers.EmailGetter(middlewares.UserEmailFromContext)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/health", handlers.NewHealthHandler(now))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", addr)),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(authService))

			r.Get("/auth/me", handlers.NewMeHandler(authService, emailGetter))
			r.Get("/clients", handlers.NewListClientsHandler(clientService, emailGetter))
			r.Get("/clients/{id}", handlers.NewGetClientHandler(clientService, emailGetter))
			r.Get("/work-entries", handlers.NewListWorkEntriesHandler(entryService, emailGetter))
			r.Get("/work-entries/{id}", handlers.NewGetWorkEntryHandler(entryService, emailGetter))
			r.Get("/reports/client/{id}", handlers.NewClientReportHandler(reportService, emailGetter))
			r.Get("/reports/export/csv/{id}", handlers.NewExportCSVHandler(reportService, emailGetter))
			r.Get("/dashboard/stats", handlers.NewDashboardStatsHandler(dashboardService, emailGetter))
			r.Get("/dashboard/defaulters", handlers.NewDefaultersHandler(dashboardService, emailGetter))
			r.Get("/dashboard/due-dates", handlers.NewDueDatesHandler(dashboardService, emailGetter))

			// Mutations run in a transaction
			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))

				r.Delete("/auth/me", handlers.NewDeleteAccountHandler(authService, emailGetter))
				r.Post("/clients", handlers.NewCreateClientHandler(clientService, emailGetter))
				r.Put("/clients/{id}", handlers.NewUpdateClientHandler(clientService, emailGetter))
				r.Delete("/clients/{id}", handlers.NewDeleteClientHandler(clientService, emailGetter))
				r.Post("/work-entries", handlers.NewCreateWorkEntryHandler(entryService, emailGetter))
				r.Put("/work-entries/{id}", handlers.NewUpdateWorkEntryHandler(entryService, emailGetter))
				r.Delete("/work-entries/{id}", handlers.NewDeleteWorkEntryHandler(entryService, emailGetter))
			})
		})
	})

	return r
}
