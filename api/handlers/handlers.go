package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tweetsmith/dto"
	"tweetsmith/logger"
	"tweetsmith/publisher"
	"tweetsmith/ratelimit"
	"tweetsmith/services"
)

func rateLimitDTO(st ratelimit.Status) dto.RateLimitDTO {
	return dto.RateLimitDTO{
		Remaining: st.Remaining,
		ResetTime: st.ResetAt.Format(time.RFC3339),
	}
}

// publishFailure maps publish-pipeline errors onto 429 or 500.
func publishFailure(c *gin.Context, action string, err error) {
	var limitErr *ratelimit.LimitExceededError
	if errors.As(err, &limitErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":     "Rate limit exceeded",
			"details":   limitErr.Error(),
			"resetTime": limitErr.Status.ResetAt.Format(time.RFC3339),
		})
		return
	}

	logger.Log.Errorf("%s: %v", action, err)
	details := err.Error()
	var pubErr *publisher.PublishError
	if errors.As(err, &pubErr) && pubErr.Body != "" {
		details = pubErr.Body
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": action, "details": details})
}

// GenerateTweetHandler godoc
// @Summary      Generate a tweet
// @Description  Draft one tweet about a topic, optionally grounded in a source article
// @Tags         generate
// @Accept       json
// @Produce      json
// @Param        request  body  dto.GenerateTweetRequest  true  "Topic and options"
// @Success      200  {object}  dto.TweetResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /generate-tweet [post]
func GenerateTweetHandler(svc *services.TweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateTweetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Topic == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
			return
		}

		tweet, err := svc.GenerateTweet(c.Request.Context(), services.GenerateTweetInput{
			Topic:     req.Topic,
			Language:  req.Language,
			SourceURL: req.SourceURL,
		})
		if err != nil {
			logger.Log.Errorf("generate tweet failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tweet", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.TweetResponse{Tweet: tweet})
	}
}

// GenerateThreadHandler godoc
// @Summary      Generate a tweet thread
// @Description  Draft a multi-part thread about a topic (default 3 parts)
// @Tags         generate
// @Accept       json
// @Produce      json
// @Param        request  body  dto.GenerateThreadRequest  true  "Topic and options"
// @Success      200  {object}  dto.ThreadResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /generate-thread [post]
func GenerateThreadHandler(svc *services.TweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateThreadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Topic == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
			return
		}

		tweets, err := svc.GenerateThread(c.Request.Context(), req.Topic, req.PartCount, req.Language)
		if err != nil {
			logger.Log.Errorf("generate thread failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate thread", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.ThreadResponse{Tweets: tweets})
	}
}

// GenerateFromFeedHandler godoc
// @Summary      Generate a tweet from an RSS feed
// @Description  Draft a tweet about the newest item of the given feed
// @Tags         generate
// @Accept       json
// @Produce      json
// @Param        request  body  dto.GenerateFromFeedRequest  true  "Feed URL and options"
// @Success      200  {object}  dto.TweetResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /generate-from-feed [post]
func GenerateFromFeedHandler(svc *services.TweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateFromFeedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.FeedURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Feed URL is required"})
			return
		}

		tweet, err := svc.GenerateFromFeed(c.Request.Context(), req.FeedURL, req.Language)
		if err != nil {
			logger.Log.Errorf("generate from feed failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tweet", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.TweetResponse{Tweet: tweet})
	}
}

// PostTweetHandler godoc
// @Summary      Post a tweet
// @Description  Publish one tweet, guarded by the 17-per-24h quota
// @Tags         publish
// @Accept       json
// @Produce      json
// @Param        request  body  dto.PostTweetRequest  true  "Tweet text"
// @Success      200  {object}  dto.PostTweetResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      429  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /post-tweet [post]
func PostTweetHandler(svc *services.PublishService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PostTweetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Tweet == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tweet text is required"})
			return
		}

		res, st, err := svc.PublishTweet(c.Request.Context(), req.Tweet)
		if err != nil {
			publishFailure(c, "Failed to post tweet", err)
			return
		}
		c.JSON(http.StatusOK, dto.PostTweetResponse{
			Success:   true,
			TweetID:   res.TweetID,
			TweetURL:  res.TweetURL,
			RateLimit: rateLimitDTO(st),
		})
	}
}

// PostThreadHandler godoc
// @Summary      Post a tweet thread
// @Description  Publish tweets as a linear reply chain; aborts on the first failure
// @Tags         publish
// @Accept       json
// @Produce      json
// @Param        request  body  dto.PostThreadRequest  true  "Ordered tweet texts"
// @Success      200  {object}  dto.PostThreadResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      429  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /post-thread [post]
func PostThreadHandler(svc *services.PublishService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PostThreadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if len(req.Tweets) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tweets array is required"})
			return
		}
		for _, t := range req.Tweets {
			if t == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Tweet text is required"})
				return
			}
		}

		results, st, err := svc.PublishThread(c.Request.Context(), req.Tweets)
		if err != nil {
			publishFailure(c, "Failed to post thread", err)
			return
		}

		out := make([]dto.ThreadResultDTO, 0, len(results))
		for _, r := range results {
			out = append(out, dto.ThreadResultDTO{TweetID: r.TweetID, TweetURL: r.TweetURL, Text: r.Text})
		}
		c.JSON(http.StatusOK, dto.PostThreadResponse{
			Success:       true,
			ThreadResults: out,
			RateLimit:     rateLimitDTO(st),
		})
	}
}

// RateLimitHandler godoc
// @Summary      Current publish quota
// @Tags         publish
// @Produce      json
// @Success      200  {object}  dto.RateLimitDTO
// @Router       /rate-limit [get]
func RateLimitHandler(svc *services.PublishService) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := svc.RateLimit(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read rate limit", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rateLimitDTO(st))
	}
}

// HistoryHandler godoc
// @Summary      Recently published tweets
// @Description  Empty when the relay runs without Mongo
// @Tags         publish
// @Produce      json
// @Success      200  {array}  models.PublishedTweet
// @Router       /history [get]
func HistoryHandler(svc *services.PublishService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.History(c.Request.Context(), 20)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// StatusHandler godoc
// @Summary      Liveness check
// @Tags         status
// @Produce      json
// @Success      200  {object}  object{status=string}
// @Router       /status [get]
func StatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Online"})
	}
}
