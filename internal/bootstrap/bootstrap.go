// Package bootstrap wires configuration, storage, services, controllers
// and routes into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/scholarhub/scholarhub/internal/app/controllers"
	appMigrations "github.com/scholarhub/scholarhub/internal/app/migrations"
	appRepos "github.com/scholarhub/scholarhub/internal/app/repositories"
	"github.com/scholarhub/scholarhub/internal/app/repositories/memory"
	"github.com/scholarhub/scholarhub/internal/app/repositories/postgres"
	appRoutes "github.com/scholarhub/scholarhub/internal/app/routes"
	appServices "github.com/scholarhub/scholarhub/internal/app/services"
	"github.com/scholarhub/scholarhub/internal/config"
	"github.com/scholarhub/scholarhub/internal/db"
	appMiddleware "github.com/scholarhub/scholarhub/internal/middleware"
	"github.com/scholarhub/scholarhub/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	StudentController       *appControllers.StudentController
	ParentController        *appControllers.ParentController
	GradeController         *appControllers.GradeController
	AttendanceController    *appControllers.AttendanceController
	CommunicationController *appControllers.CommunicationController
	ReportController        *appControllers.ReportController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
// It returns nil without error when the memory backend is configured.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	if cfg.Storage.Backend == config.StorageMemory {
		lgr.Info().Msg("Using in-memory storage, skipping database setup")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		if dbPool == nil {
			return nil, fmt.Errorf("postgres backend configured but no database pool available")
		}
		deps.Repos = postgres.NewRepositories(dbPool)
	case config.StorageMemory:
		deps.Repos = memory.NewRepositories()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	lgr.Info().Str("backend", cfg.Storage.Backend).Msg("Storage backend initialized")

	deps.Services = appServices.NewServices(deps.Repos)

	deps.StudentController = appControllers.NewStudentController(deps.Services.Students)
	deps.ParentController = appControllers.NewParentController(deps.Services.Parents)
	deps.GradeController = appControllers.NewGradeController(deps.Services.Grades)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.Services.Attendance)
	deps.CommunicationController = appControllers.NewCommunicationController(deps.Services.Communications)
	deps.ReportController = appControllers.NewReportController(deps.Services.Reports)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.ParentController,
		deps.GradeController,
		deps.AttendanceController,
		deps.CommunicationController,
		deps.ReportController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
