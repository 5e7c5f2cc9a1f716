package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublishedTweet records one successfully posted tweet.
// Collection: published_tweets
type PublishedTweet struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TweetID     string             `bson:"tweet_id" json:"tweet_id"`
	TweetURL    string             `bson:"tweet_url" json:"tweet_url"`
	Text        string             `bson:"text" json:"text"`
	InReplyToID string             `bson:"in_reply_to_id,omitempty" json:"in_reply_to_id,omitempty"`
	ThreadIndex int                `bson:"thread_index,omitempty" json:"thread_index,omitempty"`
	PostedAt    time.Time          `bson:"posted_at" json:"posted_at"`
}
