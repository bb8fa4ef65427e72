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

	appControllers "github.com/ebsuite/claimsportal/internal/app/controllers"
	appMigrations "github.com/ebsuite/claimsportal/internal/app/migrations"
	appRepos "github.com/ebsuite/claimsportal/internal/app/repositories"
	appRoutes "github.com/ebsuite/claimsportal/internal/app/routes"
	appServices "github.com/ebsuite/claimsportal/internal/app/services"
	"github.com/ebsuite/claimsportal/internal/config"
	"github.com/ebsuite/claimsportal/internal/db"
	appMiddleware "github.com/ebsuite/claimsportal/internal/middleware"
	pkgAuth "github.com/ebsuite/claimsportal/internal/pkg/auth"
	"github.com/ebsuite/claimsportal/internal/pkg/helpers"
	"github.com/ebsuite/claimsportal/internal/pkg/logger"
	"github.com/ebsuite/claimsportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	ClaimService           *appServices.ClaimService
	StudentService         *appServices.StudentService
	PractitionerService    *appServices.PractitionerService
	ServiceCodeService     *appServices.ServiceCodeService
	DistrictService        *appServices.DistrictService
	UserService            *appServices.UserService
	AuthController         *appControllers.AuthController
	ClaimController        *appControllers.ClaimController
	StudentController      *appControllers.StudentController
	PractitionerController *appControllers.PractitionerController
	ServiceCodeController  *appControllers.ServiceCodeController
	DistrictController     *appControllers.DistrictController
	UserController         *appControllers.UserController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
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
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := filepath.Join("internal", "app", "migrations")
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed defaults after migrations. Failures are logged but never block
	// startup.
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	// Sweep stale refresh tokens once per start.
	if removed, err := appRepos.NewTokenRepository(dbPool).CleanupExpiredTokens(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to clean up expired refresh tokens")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Expired refresh tokens cleaned up")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.Users,
		deps.Repos.Tokens,
		deps.JWTService,
		logger.WithField("component", "auth"),
	)
	deps.ClaimService = appServices.NewClaimService(deps.Repos.Claims, logger.WithField("component", "claims"))
	deps.StudentService = appServices.NewStudentService(deps.Repos.Students, deps.Repos.Districts)
	deps.PractitionerService = appServices.NewPractitionerService(deps.Repos.Practitioners, deps.Repos.Districts, deps.Repos.Users)
	deps.ServiceCodeService = appServices.NewServiceCodeService(deps.Repos.ServiceCodes)
	deps.DistrictService = appServices.NewDistrictService(deps.Repos.Districts)
	deps.UserService = appServices.NewUserService(deps.Repos.Users, deps.Repos.Tokens, logger.WithField("component", "users"))

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ClaimController = appControllers.NewClaimController(deps.ClaimService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.PractitionerController = appControllers.NewPractitionerController(deps.PractitionerService)
	deps.ServiceCodeController = appControllers.NewServiceCodeController(deps.ServiceCodeService)
	deps.DistrictController = appControllers.NewDistrictController(deps.DistrictService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ClaimController,
		deps.StudentController,
		deps.PractitionerController,
		deps.ServiceCodeController,
		deps.DistrictController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
