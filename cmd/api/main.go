package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"fitplan/internal/catalog"
	"fitplan/internal/config"
	"fitplan/internal/db"
	apihttp "fitplan/internal/http"
	"fitplan/internal/repository"
	"fitplan/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	profileRepo := repository.NewPgProfileRepository(pool)
	progressRepo := repository.NewPgProgressRepository(pool)
	overrideRepo := repository.NewPgOverrideRepository(pool)
	messageRepo := repository.NewPgScheduledMessageRepository(pool)

	var planCache service.PlanCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory plan cache", zap.Error(err))
		} else {
			planCache = service.NewRedisPlanCache(redisClient)
		}
		cancel()
	}
	if planCache == nil {
		planCache = service.NewMemoryPlanCache()
	}

	content := catalog.NewStaticCatalog()
	planSvc := service.NewPlanService(
		logger,
		profileRepo,
		progressRepo,
		overrideRepo,
		content,
		content,
		planCache,
		time.Duration(cfg.PlanCacheTTLMinutes)*time.Minute,
	)

	profileHandler := apihttp.NewProfileHandler(logger, profileRepo)
	planHandler := apihttp.NewPlanHandler(logger, planSvc)
	adminHandler := apihttp.NewAdminHandler(logger, overrideRepo, messageRepo)
	router := apihttp.NewRouter(logger, profileHandler, planHandler, adminHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
