package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tweetsmith/models"
)

type PublishedTweetRepository struct {
	col *mongo.Collection
}

func NewPublishedTweetRepository(db *mongo.Database) *PublishedTweetRepository {
	return &PublishedTweetRepository{col: db.Collection("published_tweets")}
}

func (r *PublishedTweetRepository) Insert(ctx context.Context, t models.PublishedTweet) (*mongo.InsertOneResult, error) {
	if t.PostedAt.IsZero() {
		t.PostedAt = time.Now()
	}
	return r.col.InsertOne(ctx, t)
}

// ListRecent returns up to limit tweets, newest first.
func (r *PublishedTweetRepository) ListRecent(ctx context.Context, limit int) ([]models.PublishedTweet, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "posted_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.PublishedTweet, 0, limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
