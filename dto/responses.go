package dto

type TweetResponse struct {
	Tweet string `json:"tweet"`
}

type ThreadResponse struct {
	Tweets []string `json:"tweets"`
}

// RateLimitDTO reports the publish quota; ResetTime is RFC 3339.
type RateLimitDTO struct {
	Remaining int    `json:"remaining" example:"17"`
	ResetTime string `json:"resetTime" example:"2026-08-30T09:00:00Z"`
}

type PostTweetResponse struct {
	Success   bool         `json:"success"`
	TweetID   string       `json:"tweetId"`
	TweetURL  string       `json:"tweetUrl"`
	RateLimit RateLimitDTO `json:"rateLimit"`
}

type ThreadResultDTO struct {
	TweetID  string `json:"tweetId"`
	TweetURL string `json:"tweetUrl"`
	Text     string `json:"text"`
}

type PostThreadResponse struct {
	Success       bool              `json:"success"`
	ThreadResults []ThreadResultDTO `json:"threadResults"`
	RateLimit     RateLimitDTO      `json:"rateLimit"`
}

// ErrorResponseDTO is the common error shape.
type ErrorResponseDTO struct {
	Error     string `json:"error" example:"Topic is required"`
	Details   string `json:"details,omitempty"`
	ResetTime string `json:"resetTime,omitempty"`
}
