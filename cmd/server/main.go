package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"intern-hub.backend/internal/config"
	"intern-hub.backend/internal/domain/repositories"
	"intern-hub.backend/internal/infrastructure/jobs"
	"intern-hub.backend/internal/infrastructure/mailer"
	"intern-hub.backend/internal/infrastructure/models"
	infraRepos "intern-hub.backend/internal/infrastructure/repositories"
	"intern-hub.backend/internal/interfaces/http/handlers"
	"intern-hub.backend/internal/interfaces/http/middleware"
	"intern-hub.backend/internal/usecases"
	"intern-hub.backend/pkg/jwt"
	"intern-hub.backend/pkg/logger"
	"intern-hub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	autoMigrate = func(db *gorm.DB) error {
		return db.AutoMigrate(
			&models.Account{},
			&models.Profile{},
			&models.Course{},
			&models.Skill{},
			&models.Language{},
			&models.Experience{},
		)
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis. The stats cache degrades to direct DB reads
	// when Redis is absent, so a failure here is not fatal.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, stats cache disabled", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Redis initialized")
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
		if err := autoMigrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	accountRepo := infraRepos.NewAccountRepository(db)
	profileRepo := infraRepos.NewProfileRepository(db)
	uow := infraRepos.NewUnitOfWork(db)

	// Initialize mail notifier
	mailCfg := mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		AppURL:   cfg.SMTP.AppURL,
	}
	var notifier repositories.Notifier
	if mailCfg.Configured() {
		notifier = mailer.NewSMTPNotifier(mailCfg)
		logger.Info(context.Background(), "SMTP notifier enabled", zap.String("host", mailCfg.Host))
	} else {
		notifier = mailer.NewLogNotifier()
		log.Println("📭 SMTP not configured, review notifications go to the log")
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(accountRepo, jwtService)
	profileUsecase := usecases.NewProfileUsecase(accountRepo, profileRepo, uow)
	reviewUsecase := usecases.NewReviewUsecase(accountRepo, profileRepo, notifier)
	directoryUsecase := usecases.NewDirectoryUsecase(profileRepo)
	statsUsecase := usecases.NewStatsUsecase(profileRepo)

	// Initialize handlers
	secureCookie := cfg.Server.Env == "production"
	authHandler := handlers.NewAuthHandler(authUsecase, jwtService.Expiry(), secureCookie)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	adminHandler := handlers.NewAdminHandler(reviewUsecase, statsUsecase)
	directoryHandler := handlers.NewDirectoryHandler(directoryUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statsJob := jobs.NewStatsRefreshJob(statsUsecase, time.Minute)
	go statsJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:      authHandler,
		profileHandler:   profileHandler,
		adminHandler:     adminHandler,
		directoryHandler: directoryHandler,
		authMiddleware:   middleware.AuthMiddleware(jwtService),
		adminOnly:        middleware.RequireAdmin(),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		statsJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Intern Hub Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
