package app

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"payanam.app/api"
	"payanam.app/config"
	"payanam.app/database"
	"payanam.app/providers/cache"
	"payanam.app/repository"
	"payanam.app/service"
)

// Application represents the main application with all its dependencies
type Application struct {
	config *config.Config
	db     *gorm.DB
	cache  cache.GenericCacheInterface
	server *api.Server
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeDatabase(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeDatabase() error {
	slog.Info("Initializing database...")

	db, err := database.InitDB(app.config.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return fmt.Errorf("initialize database connection: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		return fmt.Errorf("run database migrations: %w", err)
	}

	if app.config.Catalog.SeedOnStartup {
		if err := database.SeedCatalog(db); err != nil {
			slog.Error("Failed to seed catalog", "error", err)
			return fmt.Errorf("seed catalog reference data: %w", err)
		}
	}

	app.db = db
	slog.Info("Database initialized successfully")
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	catalogCache, err := cache.NewCacheFromConfig(&app.config.Cache)
	if err != nil {
		return fmt.Errorf("create catalog cache: %w", err)
	}
	app.cache = catalogCache
	slog.Debug("Catalog cache created", "type", string(app.config.Cache.Type))

	// Create repositories
	userRepo := repository.NewUserRepository(app.db)
	tripRepo := repository.NewTripRepository(app.db)
	cityRepo := repository.NewCityRepository(app.db)
	activityRepo := repository.NewActivityRepository(app.db)

	// Create services
	userService := service.NewUserService(userRepo)
	tripService := service.NewTripService(tripRepo, userRepo)
	catalogService := service.NewCatalogService(cityRepo, activityRepo, catalogCache, app.config)
	analyticsService := service.NewAnalyticsService(tripRepo)

	app.server = api.NewServer(
		app.db,
		app.config,
		tripService,
		userService,
		catalogService,
		analyticsService,
	)

	slog.Info("Services initialized successfully")
	return nil
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			slog.Warn("Error closing cache", "error", err)
		}
	}

	if app.db != nil {
		if err := database.CloseDB(app.db); err != nil {
			slog.Warn("Error closing database", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
