package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talent-marketplace-backend/config"
	_ "talent-marketplace-backend/docs" // Important for Swagger
	"talent-marketplace-backend/internal/cache"
	v1 "talent-marketplace-backend/internal/delivery/http/v1"
	"talent-marketplace-backend/internal/repository/postgres"
	"talent-marketplace-backend/internal/usecase"
	"talent-marketplace-backend/pkg/database"
	"talent-marketplace-backend/pkg/logger"
	"talent-marketplace-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Talent Marketplace API
// @version         1.0
// @description     Talent discovery engine: search, recommendations and recruiter interactions.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting talent marketplace backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Cache is best-effort: a missing or broken Redis means uncached reads.
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, result caching disabled", "error", err)
		} else {
			defer redisClient.Close()
		}
	}
	resultCache := cache.New(redisClient)

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	talentRepo := postgres.NewTalentRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterRepository(dbPool)
	interactionRepo := postgres.NewInteractionRepository(dbPool)
	metricsRepo := postgres.NewMetricsRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)

	// UseCases
	validate := validator.New()
	notifier := usecase.NewNotificationSender(notificationRepo, userRepo)
	talentUC := usecase.NewTalentUsecase(talentRepo, interactionRepo, metricsRepo, validate)
	interactionUC := usecase.NewInteractionUsecase(userRepo, interactionRepo, metricsRepo, notifier, resultCache)
	recommendUC := usecase.NewRecommendationUsecase(
		userRepo, recruiterRepo, talentRepo, interactionRepo,
		resultCache, time.Duration(cfg.CacheTTLSeconds)*time.Second,
	)

	router := v1.NewRouter(v1.RouterDeps{
		TalentUC:      talentUC,
		InteractionUC: interactionUC,
		RecommendUC:   recommendUC,
		UserRepo:      userRepo,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
