// Package eventbus publishes audit events about the relay's activity so
// downstream consumers (analytics, alerting) can react to published tweets.
package eventbus

import (
	"context"
	"encoding/json"
	"time"
)

// Topic names.
const (
	TopicTweetPublished = "tweetsmith.tweet.published"
)

// Event is the payload shape for every topic.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// TweetPublishedPayload is the payload for TopicTweetPublished.
type TweetPublishedPayload struct {
	TweetID     string `json:"tweet_id"`
	TweetURL    string `json:"tweet_url"`
	Text        string `json:"text"`
	InReplyToID string `json:"in_reply_to_id,omitempty"`
}

// Bus abstracts event publication. Publish must not block request handling
// beyond the enqueue; delivery is asynchronous.
type Bus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NoopBus is used when no brokers are configured.
type NoopBus struct{}

func (NoopBus) Publish(ctx context.Context, topic string, event Event) error { return nil }
func (NoopBus) Close()                                                       {}
