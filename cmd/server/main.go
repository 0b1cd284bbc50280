package main

import (
	"context"
	"database/sql"
	"errors"
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

	"fx-bothub.backend/internal/config"
	"fx-bothub.backend/internal/domain/entities"
	domainerrors "fx-bothub.backend/internal/domain/errors"
	domainrepos "fx-bothub.backend/internal/domain/repositories"
	"fx-bothub.backend/internal/infrastructure/repositories"
	"fx-bothub.backend/internal/infrastructure/storage"
	"fx-bothub.backend/internal/interfaces/http/handlers"
	"fx-bothub.backend/internal/interfaces/http/middleware"
	"fx-bothub.backend/internal/usecases"
	"fx-bothub.backend/pkg/crypto"
	"fx-bothub.backend/pkg/jwt"
	"fx-bothub.backend/pkg/logger"
	"fx-bothub.backend/pkg/redis"
	"fx-bothub.backend/pkg/utils"
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
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	kycRepo := repositories.NewKycProfileRepository(db)
	accountRepo := repositories.NewBrokerAccountRepository(db)
	botRepo := repositories.NewBotRepository(db)
	assignmentRepo := repositories.NewBotAssignmentRepository(db)

	blobs := storage.NewDataURLStore()

	// Usecases
	onboardingUsecase := usecases.NewOnboardingUsecase(userRepo, kycRepo)
	kycUsecase := usecases.NewKycUsecase(kycRepo, userRepo, blobs)
	accountUsecase := usecases.NewAccountUsecase(accountRepo, userRepo)
	catalogUsecase := usecases.NewCatalogUsecase(botRepo, assignmentRepo)
	assignmentUsecase := usecases.NewAssignmentUsecase(assignmentRepo, accountRepo, botRepo, userRepo, blobs)
	adminUsecase := usecases.NewAdminUsecase(userRepo, kycRepo, botRepo, assignmentRepo)
	authUsecase := usecases.NewAuthUsecase(adminRepo, jwtService)

	if err := seedAdmin(adminRepo, cfg.Admin); err != nil {
		logger.Warn(context.Background(), "bootstrap admin not created", zap.Error(err))
	}

	// Handlers
	userHandler := handlers.NewUserHandler(onboardingUsecase)
	kycHandler := handlers.NewKycHandler(kycUsecase)
	accountHandler := handlers.NewAccountHandler(accountUsecase)
	botHandler := handlers.NewBotHandler(assignmentUsecase, catalogUsecase)
	catalogHandler := handlers.NewCatalogHandler(catalogUsecase)
	botRequestHandler := handlers.NewBotRequestHandler(assignmentUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase, onboardingUsecase)
	authHandler := handlers.NewAuthHandler(authUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		userHandler:       userHandler,
		kycHandler:        kycHandler,
		accountHandler:    accountHandler,
		botHandler:        botHandler,
		catalogHandler:    catalogHandler,
		botRequestHandler: botRequestHandler,
		adminHandler:      adminHandler,
		authHandler:       authHandler,
		authMiddleware:    authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down server...")
		sqlDB.Close()
		os.Exit(0)
	}()

	log.Printf("FX BotHub backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// seedAdmin creates the bootstrap admin account from config unless an
// admin with that email already exists. Missing config is not an error;
// ops may prefer to seed via cmd/hash-gen and SQL.
func seedAdmin(adminRepo domainrepos.AdminRepository, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := adminRepo.GetByEmail(ctx, cfg.Email); err == nil {
		return nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	return adminRepo.Create(ctx, &entities.Admin{
		ID:           utils.GenerateUUIDv7(),
		Email:        cfg.Email,
		Name:         "Administrator",
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
}
