package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"videvida-booking-api/config"
	"videvida-booking-api/internal/catalog"
	deliveryHttp "videvida-booking-api/internal/delivery/http"
	"videvida-booking-api/internal/delivery/http/handler"
	"videvida-booking-api/internal/delivery/http/middleware"
	"videvida-booking-api/internal/domain/repository"
	"videvida-booking-api/internal/infrastructure/cache"
	"videvida-booking-api/internal/infrastructure/database"
	gormrepo "videvida-booking-api/internal/repository"
	"videvida-booking-api/internal/repository/mockstore"
	"videvida-booking-api/internal/service"
	"videvida-booking-api/internal/store"
	"videvida-booking-api/internal/usecase"
	"videvida-booking-api/pkg/jwt"
	"videvida-booking-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
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

	// Redis backs token revocation in both modes and the blob store in
	// mock mode.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	if cfg.App.Mode == config.ModeDatabase {
		if err := database.RunMigrations(cfg.DB); err != nil {
			return nil, err
		}
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
	} else {
		logrus.Infof("Running in mock mode (latency %s)", cfg.App.MockLatency)
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, app.DB, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Static catalogs are shared by both modes
	cat := catalog.New()

	// Persistence backend per mode
	var (
		directory       service.Directory
		profileRepo     repository.ProfileRepository
		appointmentRepo repository.AppointmentRepository
	)
	if cfg.App.Mode == config.ModeDatabase {
		userRepo := gormrepo.NewUserRepository(db)
		profileRepo = gormrepo.NewProfileRepository(db)
		appointmentRepo = gormrepo.NewAppointmentRepository(db)
		directory = service.NewDBDirectory(userRepo, log)
	} else {
		kv := store.NewRedisStore(redisClient)
		latency := cfg.App.MockLatency
		directory = service.NewMockDirectory(kv, log, latency)
		profileRepo = mockstore.NewProfileStore(kv, log, latency)
		appointmentRepo = mockstore.NewAppointmentStore(kv, log, latency)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, directory, jwtService, redisClient)
	profileUsecase := usecase.NewProfileUsecase(log, profileRepo, directory)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, cat)
	dashboardUsecase := usecase.NewDashboardUsecase(log, appointmentRepo, directory, profileUsecase, cat)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(cat)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	profileGuard := middleware.NewProfileGuard(profileUsecase)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		profileHandler,
		catalogHandler,
		appointmentHandler,
		dashboardHandler,
		authMiddleware,
		profileGuard,
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
		logrus.Infof("Environment: %s, mode: %s", app.Config.App.Env, app.Config.App.Mode)
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

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
