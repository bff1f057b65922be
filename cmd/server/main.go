package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	rediscache "github.com/quanganhdev/teacher-management/internal/adapter/cache/redis"
	"github.com/quanganhdev/teacher-management/internal/adapter/mongodb"
	"github.com/quanganhdev/teacher-management/internal/config"
	"github.com/quanganhdev/teacher-management/internal/handler"
	"github.com/quanganhdev/teacher-management/internal/middleware"
	"github.com/quanganhdev/teacher-management/internal/router"
	"github.com/quanganhdev/teacher-management/internal/seed"
	"github.com/quanganhdev/teacher-management/internal/usecase"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// connectMongo applies the configured startup policy: fail fast, or retry
// every MongoRetryInterval until the database comes up.
func connectMongo(cfg *config.Config, logger *zap.Logger) (*mongo.Client, error) {
	for {
		client, err := mongodb.Connect(cfg)
		if err == nil {
			return client, nil
		}
		if !cfg.MongoRetryConnect {
			return nil, err
		}
		logger.Error("MongoDB connection failed, retrying",
			zap.Duration("retryIn", cfg.MongoRetryInterval), zap.Error(err))
		time.Sleep(cfg.MongoRetryInterval)
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	mongoClient, err := connectMongo(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	db := mongoClient.Database(cfg.MongoDatabase)
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	redisClient, err := rediscache.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	cacheRepo := rediscache.NewRedisCacheRepository(redisClient, logger)

	userRepo := mongodb.NewUserMongoRepository(db, logger)
	positionRepo := mongodb.NewPositionMongoRepository(db, logger)
	teacherRepo := mongodb.NewTeacherMongoRepository(db, logger)

	// The seed runs to completion (or failure) before the listener starts.
	if cfg.SeedOnStart {
		loader := seed.NewLoader(positionRepo, userRepo, teacherRepo, cfg.SeedDir, logger)
		if err := loader.Run(context.Background()); err != nil {
			logger.Fatal("Failed to load fixture data", zap.Error(err))
		}
	}

	teacherUsecase := usecase.NewTeacherUsecase(teacherRepo, userRepo, logger)
	positionUsecase := usecase.NewPositionUsecase(positionRepo, cacheRepo, logger)
	userUsecase := usecase.NewUserUsecase(userRepo, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	router.Setup(r,
		handler.NewTeacherHandler(teacherUsecase, logger),
		handler.NewPositionHandler(positionUsecase, logger),
		handler.NewUserHandler(userUsecase, logger),
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting teacher management HTTP server", zap.String("address", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("Failed to start HTTP server", zap.Error(err))
	}
}
