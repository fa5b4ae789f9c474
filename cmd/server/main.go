package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"calmcompass/internal/cache"
	"calmcompass/internal/config"
	"calmcompass/internal/personalize"
	"calmcompass/internal/repository"
	"calmcompass/internal/service"
	"calmcompass/internal/transport/rest"
)

// @title CalmCompass Check-In API
// @version 1.0
// @description Guided mental-health check-in: screening, one suggestion, crisis gate
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	aiCfg := config.DefaultAIConfig()
	log.Printf("Personalization:")
	if aiCfg.PlanEnabled() {
		log.Printf("  Coping plan:  %s", aiCfg.PlanModel)
	} else {
		log.Println("  Coping plan:  static fallback (OPENAI_API_KEY not set)")
	}
	if aiCfg.EmotionEnabled() {
		log.Println("  Emotion model: configured")
	} else {
		log.Println("  Emotion model: disabled (EMOTION_MODEL_URL not set)")
	}
	if aiCfg.RecommenderEnabled() {
		log.Println("  Recommender:  configured")
	} else {
		log.Println("  Recommender:  rule fallback (RECOMMENDER_URL not set)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Repositories and caches
	summaryRepo := repository.NewSummaryRepo(db)
	feedbackRepo := repository.NewFeedbackRepo(db)
	checkinCache := cache.NewCheckinCache(rdb)

	// Personalization collaborators (all optional, all degrade to fallback)
	emotion := personalize.NewEmotionClassifier(aiCfg)
	planner := personalize.NewPlanGenerator(aiCfg)
	recommender := personalize.NewRecommender(aiCfg)

	// Services
	checkinSvc := service.NewCheckinService(checkinCache, summaryRepo, emotion, planner, recommender, cfg.DefaultRegion)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, checkinCache)

	container := &rest.Container{
		CheckinService:  checkinSvc,
		FeedbackService: feedbackSvc,
		DefaultRegion:   cfg.DefaultRegion,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/checkins")
		log.Println("  GET  /v1/checkins/instruments")
		log.Println("  PUT  /v1/checkins/{id}/answers/{instrument}")
		log.Println("  PUT  /v1/checkins/{id}/context")
		log.Println("  GET  /v1/checkins/{id}/result")
		log.Println("  GET/POST /v1/checkins/{id}/summary")
		log.Println("  POST /v1/feedback")
		log.Println("  GET  /v1/feedback/export")
		log.Println("  GET  /v1/support")

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
