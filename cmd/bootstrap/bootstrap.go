package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blood-donation-api/config"
	deliveryHttp "blood-donation-api/internal/delivery/http"
	"blood-donation-api/internal/delivery/http/handler"
	"blood-donation-api/internal/delivery/http/middleware"
	"blood-donation-api/internal/infrastructure/database"
	"blood-donation-api/internal/repository"
	"blood-donation-api/internal/usecase"
	"blood-donation-api/pkg/jwt"
	"blood-donation-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	medecinRepo := repository.NewMedecinRepository(db)
	donneurRepo := repository.NewDonneurRepository(db)
	banqueRepo := repository.NewBanqueDeSangRepository(db)
	stockRepo := repository.NewStockSangRepository(db)
	demandeRepo := repository.NewDemandeRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, medecinRepo, donneurRepo, jwtService)
	medecinUsecase := usecase.NewMedecinUsecase(log, medecinRepo)
	donneurUsecase := usecase.NewDonneurUsecase(log, donneurRepo)
	banqueUsecase := usecase.NewBanqueDeSangUsecase(log, banqueRepo)
	stockUsecase := usecase.NewStockSangUsecase(log, stockRepo, banqueRepo)
	demandeUsecase := usecase.NewDemandeUsecase(log, demandeRepo, donneurRepo, notificationRepo)
	notificationUsecase := usecase.NewNotificationUsecase(log, notificationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	medecinHandler := handler.NewMedecinHandler(medecinUsecase, customValidator)
	donneurHandler := handler.NewDonneurHandler(donneurUsecase, customValidator)
	banqueHandler := handler.NewBanqueDeSangHandler(banqueUsecase, customValidator)
	stockHandler := handler.NewStockSangHandler(stockUsecase, customValidator)
	demandeHandler := handler.NewDemandeHandler(demandeUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, medecinRepo, donneurRepo)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		medecinHandler,
		donneurHandler,
		banqueHandler,
		stockHandler,
		demandeHandler,
		notificationHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
