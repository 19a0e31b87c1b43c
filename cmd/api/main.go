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
	"github.com/rs/zerolog"

	"github.com/classguard/classguard-api/internal/config"
	"github.com/classguard/classguard-api/internal/database"
	"github.com/classguard/classguard-api/internal/handler"
	"github.com/classguard/classguard-api/internal/middleware"
	"github.com/classguard/classguard-api/internal/models"
	"github.com/classguard/classguard-api/internal/repository"
	"github.com/classguard/classguard-api/internal/router"
	"github.com/classguard/classguard-api/internal/service"
	"github.com/classguard/classguard-api/pkg/ai"
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

	if err := db.AutoMigrate(&models.User{}, &models.ProgressRecord{}, &models.ClassroomRecord{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoStore, err := database.ConnectMongo(startupCtx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		startupCancel()
		log.Fatalf("failed to connect to mongo: %v", err)
	}

	redisClient, err := database.ConnectRedis(startupCtx, cfg.RedisURL)
	startupCancel()
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	natsConn, err := database.ConnectNATS(cfg.NATSURL)
	if err != nil {
		log.Fatalf("failed to connect to nats: %v", err)
	}
	if natsConn != nil {
		defer natsConn.Close()
	}

	generator, err := ai.NewOpenRouterGenerator(ai.OpenRouterConfig{
		APIKey:  cfg.OpenRouterAPIKey,
		BaseURL: cfg.OpenRouterBaseURL,
		Model:   cfg.AIModel,
		Logger:  logger,
	})
	if err != nil {
		log.Fatalf("failed to create ai client: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	progressRepo := repository.NewProgressRepository(db)
	classroomRepo := repository.NewClassroomRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditLogRepository(mongoStore)

	events := service.NewEventPublisher(natsConn, logger)

	progressService := service.NewProgressService(progressRepo, auditRepo, events, validate, logger)
	classroomService := service.NewClassroomService(classroomRepo, auditRepo, events, validate, logger)
	dashboardService := service.NewDashboardService(progressRepo, classroomRepo, redisClient, cfg.DashboardCacheTTL, logger)
	reviewService := service.NewReviewService(generator, cfg.AITimeout, logger)
	activityService := service.NewActivityService(auditRepo, logger)
	profileService := service.NewProfileService(userRepo, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ProgressHandler:  handler.NewProgressHandler(progressService, logger),
		ClassroomHandler: handler.NewClassroomHandler(classroomService, logger),
		ReviewHandler:    handler.NewReviewHandler(reviewService, logger),
		DashboardHandler: handler.NewDashboardHandler(dashboardService, logger),
		ActivityHandler:  handler.NewActivityHandler(activityService, logger),
		ProfileHandler:   handler.NewProfileHandler(profileService, logger),
		JWTMiddleware:    middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app, mongoStore)
}

func waitForShutdown(app *fiber.App, mongoStore *database.Mongo) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	if err := mongoStore.Close(ctx); err != nil {
		log.Printf("failed to close mongo client: %v", err)
	}

	log.Println("server stopped")
}
