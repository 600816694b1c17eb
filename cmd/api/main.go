package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pawsition/pawsition-api/internal/config"
	"github.com/pawsition/pawsition-api/internal/database"
	"github.com/pawsition/pawsition-api/internal/handler"
	"github.com/pawsition/pawsition-api/internal/middleware"
	"github.com/pawsition/pawsition-api/internal/models"
	"github.com/pawsition/pawsition-api/internal/repository"
	"github.com/pawsition/pawsition-api/internal/router"
	"github.com/pawsition/pawsition-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Class{},
		&models.Section{},
		&models.Skill{},
		&models.Submission{},
		&models.Completion{},
		&models.Grade{},
		&models.GradeCompletion{},
		&models.Certificate{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	classRepo := repository.NewClassRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	completionRepo := repository.NewCompletionRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	certificateRepo := repository.NewCertificateRepository(db)

	authService := service.NewAuthService(userRepo, validate, cfg.JWTSecret, cfg.TokenTTL, logger)
	userService := service.NewUserService(userRepo, validate, cfg.BcryptCost, logger)
	profileService := service.NewProfileService(profileRepo, classRepo, userRepo, validate, logger)
	classService := service.NewClassService(classRepo, userRepo, validate, logger)
	curriculumService := service.NewCurriculumService(sectionRepo, skillRepo, validate, logger)
	submissionService := service.NewSubmissionService(submissionRepo, completionRepo, skillRepo, userRepo, classRepo, validate, logger)
	completionService := service.NewCompletionService(completionRepo, skillRepo, userRepo, classRepo, validate, logger)
	progressService := service.NewProgressService(completionRepo, gradeRepo, userRepo, redisClient, cfg.ProgressCacheTTL, logger)
	gradeService := service.NewGradeService(gradeRepo, completionRepo, userRepo, validate, logger)
	certificateService := service.NewCertificateService(certificateRepo, gradeRepo, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:        handler.NewAuthHandler(authService, logger),
		UserHandler:        handler.NewUserHandler(userService, logger),
		ProfileHandler:     handler.NewProfileHandler(profileService, logger),
		ClassHandler:       handler.NewClassHandler(classService, logger),
		CurriculumHandler:  handler.NewCurriculumHandler(curriculumService, logger),
		SubmissionHandler:  handler.NewSubmissionHandler(submissionService, logger),
		CompletionHandler:  handler.NewCompletionHandler(completionService, logger),
		GradeHandler:       handler.NewGradeHandler(gradeService, logger),
		CertificateHandler: handler.NewCertificateHandler(certificateService, logger),
		ProgressHandler:    handler.NewProgressHandler(progressService, logger),
		JWTMiddleware:      middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
