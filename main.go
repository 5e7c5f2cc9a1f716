package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"tweetsmith/api/router"
	"tweetsmith/config"
	"tweetsmith/db"
	_ "tweetsmith/docs"
	"tweetsmith/eventbus"
	"tweetsmith/generator"
	"tweetsmith/logger"
	"tweetsmith/publisher"
	"tweetsmith/ratelimit"
	"tweetsmith/repositories"
	"tweetsmith/services"
)

// @title           Tweetsmith API
// @version         1.0
// @description     Generate tweet drafts with Gemini and publish them to X
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	// Mongo is optional; without it the relay keeps no history or AI logs.
	var historyRepo *repositories.PublishedTweetRepository
	var aiLogRepo *repositories.AILogRepository
	if cfg.MongoURI != "" {
		if err := db.Init(context.Background()); err != nil {
			log.Fatal(err)
		}
		historyRepo = repositories.NewPublishedTweetRepository(db.Database())
		aiLogRepo = repositories.NewAILogRepository(db.Database())
	}

	window := time.Duration(cfg.RateLimit.WindowHours) * time.Hour
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Backend == "redis" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.MaxTweets, window)
		logger.Log.Info("using redis rate limiter")
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.MaxTweets, window)
	}

	var bus eventbus.Bus = eventbus.NoopBus{}
	if cfg.KafkaBrokers != "" {
		kafkaBus, err := eventbus.NewKafkaEventBus(cfg.KafkaBrokers)
		if err != nil {
			log.Fatal(err)
		}
		defer kafkaBus.Close()
		bus = kafkaBus
	}

	gen := generator.New(cfg, aiLogRepo)
	tweetSvc := services.NewTweetService(gen, cfg.Article.RenderJS)
	publishSvc := services.NewPublishService(publisher.New(cfg), limiter, historyRepo, bus)

	r := router.New(tweetSvc, publishSvc)
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Log.Infof("tweetsmith listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
