package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	appconfig "github.com/provamed/backend/config"
	"github.com/provamed/backend/internal/cache"
	"github.com/provamed/backend/internal/config"
	"github.com/provamed/backend/internal/repository"
	"github.com/provamed/backend/internal/service"
	"github.com/provamed/backend/internal/transport/rest"
	"github.com/provamed/backend/internal/transport/ws"
)

// @title ProvaMed Exam Performance API
// @version 1.0
// @description Answer tracking, performance analytics and error notebook for residency exam questions
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := appconfig.Load()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Resolution: %s", aiConfig.Models.Resolution)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:    configured")
	} else {
		log.Println("  API Key:    NOT SET (resolution generation disabled)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	eventRepo := repository.NewAnswerEventRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	resolutionRepo := repository.NewResolutionRepo(db)

	// Indexes: userId/answeredAt for windowed trend queries, unique
	// questionId backing the resolution first-writer-wins contract
	if err := eventRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create answer event indexes:", err)
	}
	if err := resolutionRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create resolution indexes:", err)
	}

	// Initialize cache
	resolutionCache := cache.NewResolutionCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	questionSvc := service.NewQuestionService(questionRepo)
	answerSvc := service.NewAnswerService(eventRepo, questionRepo)
	performanceSvc := service.NewPerformanceService(eventRepo, questionRepo)
	errorbookSvc := service.NewErrorbookService(eventRepo, questionRepo)
	resolutionSvc := service.NewResolutionService(resolutionRepo, resolutionCache)
	generator := service.NewGeneratorService()

	// Inject broadcaster (wsHub implements service.Broadcaster)
	answerSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:        authSvc,
		QuestionService:    questionSvc,
		AnswerService:      answerSvc,
		PerformanceService: performanceSvc,
		ErrorbookService:   errorbookSvc,
		ResolutionService:  resolutionSvc,
		Generator:          generator,
		WSHub:              wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/questions")
		log.Println("  POST /v1/answers")
		log.Println("  GET  /v1/performance")
		log.Println("  GET  /v1/errorbook")
		log.Println("  POST /v1/questions/{id}/resolution")
		log.Println("  WS   /v1/ws/feed")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
