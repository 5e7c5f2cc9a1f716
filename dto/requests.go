package dto

// GenerateTweetRequest asks for one drafted tweet. SourceURL optionally
// grounds the draft in an article.
type GenerateTweetRequest struct {
	Topic     string `json:"topic" example:"go generics"`
	Language  string `json:"language" example:"english"`
	SourceURL string `json:"sourceUrl,omitempty" example:"https://go.dev/blog/range-functions"`
}

// GenerateThreadRequest asks for a partCount-part thread (default 3).
type GenerateThreadRequest struct {
	Topic     string `json:"topic" example:"kubernetes operators"`
	PartCount int    `json:"partCount" example:"3"`
	Language  string `json:"language" example:"hinglish"`
}

// GenerateFromFeedRequest drafts a tweet about the newest item of a feed.
type GenerateFromFeedRequest struct {
	FeedURL  string `json:"feedUrl" example:"https://go.dev/blog/feed.atom"`
	Language string `json:"language" example:"english"`
}

type PostTweetRequest struct {
	Tweet string `json:"tweet" example:"shipping is a feature"`
}

type PostThreadRequest struct {
	Tweets []string `json:"tweets"`
}
