package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"tweetsmith/config"
	"tweetsmith/logger"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
// It is only called when MONGO_URI is set; the relay runs fine without
// persistence.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		dbName := cfg.MongoDBName
		if dbName == "" {
			dbName = "tweetsmith"
		}

		cl, err := mongo.NewClient(options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.Log.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// published_tweets: unique tweet_id, posted_at desc for history listing
	if _, err := d.Collection("published_tweets").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tweet_id", Value: 1}},
		Options: options.Index().SetName("uniq_tweet_id").SetUnique(true),
	}); err != nil {
		return err
	}
	if _, err := d.Collection("published_tweets").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "posted_at", Value: -1}},
		Options: options.Index().SetName("idx_posted_at_desc"),
	}); err != nil {
		return err
	}

	// ai_logs: requested_at desc
	if _, err := d.Collection("ai_logs").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "requested_at", Value: -1}},
		Options: options.Index().SetName("idx_requested_at_desc"),
	}); err != nil {
		return err
	}
	return nil
}
