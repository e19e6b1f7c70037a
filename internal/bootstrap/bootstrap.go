package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/nasheeman/portal/internal/app/controllers"
	appMigrations "github.com/nasheeman/portal/internal/app/migrations"
	appRepos "github.com/nasheeman/portal/internal/app/repositories"
	appRoutes "github.com/nasheeman/portal/internal/app/routes"
	appServices "github.com/nasheeman/portal/internal/app/services"
	"github.com/nasheeman/portal/internal/config"
	"github.com/nasheeman/portal/internal/db"
	appMiddleware "github.com/nasheeman/portal/internal/middleware"
	pkgAuth "github.com/nasheeman/portal/internal/pkg/auth"
	"github.com/nasheeman/portal/internal/pkg/filestorage"
	"github.com/nasheeman/portal/internal/pkg/logger"
	"github.com/nasheeman/portal/internal/pkg/mailer"
	pkgValidation "github.com/nasheeman/portal/internal/pkg/validation"
	"github.com/nasheeman/portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	AuthController      *appControllers.AuthController
	GuardianController  *appControllers.GuardianController
	AdmissionController *appControllers.AdmissionController
	CourseController    *appControllers.CourseController
	EventController     *appControllers.EventController
	StaffController     *appControllers.StaffController
	PopupController     *appControllers.PopupController
	ContactController   *appControllers.ContactController
	SiteInfoController  *appControllers.SiteInfoController
	DashboardController *appControllers.DashboardController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
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

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	mail := mailer.NewConsoleMailer(lgr)

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage, mail)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.GuardianController = appControllers.NewGuardianController(deps.Services.GuardianService)
	deps.AdmissionController = appControllers.NewAdmissionController(deps.Services.AdmissionService)
	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.EventController = appControllers.NewEventController(deps.Services.EventService)
	deps.StaffController = appControllers.NewStaffController(deps.Services.StaffService)
	deps.PopupController = appControllers.NewPopupController(deps.Services.PopupService)
	deps.ContactController = appControllers.NewContactController(deps.Services.ContactService)
	deps.SiteInfoController = appControllers.NewSiteInfoController(deps.Services.SiteInfoService)
	deps.DashboardController = appControllers.NewDashboardController(deps.Services.DashboardService)

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

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := pkgValidation.RegisterCustomValidators(v); err != nil {
			lgr.Error().Err(err).Msg("Failed to register custom validators")
		}
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.GuardianController,
		deps.AdmissionController,
		deps.CourseController,
		deps.EventController,
		deps.StaffController,
		deps.PopupController,
		deps.ContactController,
		deps.SiteInfoController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
