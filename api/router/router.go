package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tweetsmith/api/handlers"
	"tweetsmith/api/middleware"
	_ "tweetsmith/docs"
	"tweetsmith/services"
)

// New wires the HTTP surface. Paths are top-level by design: the relay is
// consumed directly by a small frontend, not versioned per API.
func New(tweets *services.TweetService, publishes *services.PublishService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLogging())

	r.GET("/status", handlers.StatusHandler())
	r.GET("/rate-limit", handlers.RateLimitHandler(publishes))
	r.GET("/history", handlers.HistoryHandler(publishes))

	r.POST("/generate-tweet", handlers.GenerateTweetHandler(tweets))
	r.POST("/generate-thread", handlers.GenerateThreadHandler(tweets))
	r.POST("/generate-from-feed", handlers.GenerateFromFeedHandler(tweets))

	r.POST("/post-tweet", handlers.PostTweetHandler(publishes))
	r.POST("/post-thread", handlers.PostThreadHandler(publishes))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
