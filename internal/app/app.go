package app

import (
	"fmt"
	"time"

	"folio_backend/internal/auth"
	"folio_backend/internal/config"
	"folio_backend/internal/email"
	"folio_backend/internal/handlers"
	"folio_backend/internal/logger"
	"folio_backend/internal/middleware"
	"folio_backend/internal/models"
	"folio_backend/internal/routes"
	"folio_backend/internal/services"
	"folio_backend/internal/storage"
	"folio_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run loads configuration, connects to Postgres and serves until the process
// is killed.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	// TranslateError maps driver duplicate-key failures onto
	// gorm.ErrDuplicatedKey, which the repositories rely on for the
	// username-taken conflict.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to unwrap sql.DB", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.SocialLink{},
		&models.Skill{},
		&models.ExperienceItem{},
		&models.EducationItem{},
		&models.PortfolioItem{},
	); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter assembles the full engine: collaborators, services, handlers,
// middleware chain and routes. Tests call it with their own gorm handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	logger.Info("storage initialized", "type", cfg.Storage.Type)

	tokens, err := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	if err != nil {
		logger.Fatal("failed to initialize token service", "error", err)
	}

	github := auth.NewGitHubProvider(
		cfg.OAuth.GitHubClientID,
		cfg.OAuth.GitHubClientSecret,
		cfg.OAuth.GitHubCallbackURL,
	)

	var mailer email.Mailer
	if cfg.Email.SMTPHost == "" {
		logger.Warn("no SMTP host configured, contact relay will only log messages")
		mailer = email.NewLogMailer()
	} else {
		mailer, err = email.NewSMTPMailer(email.Config{
			SMTPHost:  cfg.Email.SMTPHost,
			SMTPPort:  cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("failed to initialize mailer", "error", err)
		}
	}

	svcs := services.NewServiceContainer(cfg, store, tokens, mailer)
	appHandlers := handlers.NewAppHandlers(svcs, github, store, validator.New())

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(gormDB))

	routes.SetupRoutes(router, appHandlers, tokens)

	return router
}
