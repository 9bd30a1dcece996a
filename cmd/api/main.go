package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"passion-match/internal/config"
	"passion-match/internal/db"
	apihttp "passion-match/internal/http"
	"passion-match/internal/repository"
	"passion-match/internal/service"

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

	ctxPing, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := db.Ping(ctxPing, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}
	cancelPing()

	traitRepo := repository.NewPgTraitRepository(pool)
	roomRepo := repository.NewPgRoomRepository(pool)

	var (
		analysisCache service.AnalysisCache
		limiter       service.RateLimiter
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxRedis, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxRedis).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory cache", zap.Error(err))
		} else {
			analysisCache = service.NewRedisAnalysisCache(redisClient)
			limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.AnalyzeRatePerMinute)
		}
		cancel()
	}
	if analysisCache == nil {
		analysisCache = service.NewMemoryAnalysisCache()
	}
	if limiter == nil {
		limiter = service.NewMemoryRateLimiter(time.Minute, cfg.AnalyzeRatePerMinute)
	}

	clusterSvc := service.NewClusterService(roomRepo, logger)
	traitSvc := service.NewTraitService(
		logger,
		traitRepo,
		clusterSvc,
		analysisCache,
		time.Duration(cfg.AnalysisCacheTTLMinutes)*time.Minute,
	)

	jwtSvc := service.NewJWTService(cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	analysisHandler := apihttp.NewAnalysisHandler(logger, traitSvc)
	roomHandler := apihttp.NewRoomHandler(logger, clusterSvc)
	router := apihttp.NewRouter(logger, jwtSvc, limiter, analysisHandler, roomHandler)

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
