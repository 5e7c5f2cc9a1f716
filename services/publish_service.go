package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"tweetsmith/eventbus"
	"tweetsmith/logger"
	"tweetsmith/models"
	"tweetsmith/publisher"
	"tweetsmith/ratelimit"
	"tweetsmith/repositories"
)

// TweetPublisher is the slice of the publisher client the service needs.
type TweetPublisher interface {
	PublishOne(ctx context.Context, text, replyToID string) (publisher.Result, error)
}

// PublishService owns the publish pipeline: quota check, posting, quota
// consumption, history recording and event emission. Quota is consumed only
// after a publish attempt succeeds.
type PublishService struct {
	pub     TweetPublisher
	limiter ratelimit.Limiter
	history *repositories.PublishedTweetRepository // nil without Mongo
	bus     eventbus.Bus
}

func NewPublishService(pub TweetPublisher, limiter ratelimit.Limiter, history *repositories.PublishedTweetRepository, bus eventbus.Bus) *PublishService {
	if bus == nil {
		bus = eventbus.NoopBus{}
	}
	return &PublishService{pub: pub, limiter: limiter, history: history, bus: bus}
}

// RateLimit reports the current quota state.
func (s *PublishService) RateLimit(ctx context.Context) (ratelimit.Status, error) {
	return s.limiter.Check(ctx)
}

// PublishTweet posts one tweet. The returned Status reflects the quota
// after the publish.
func (s *PublishService) PublishTweet(ctx context.Context, text string) (publisher.Result, ratelimit.Status, error) {
	st, err := s.limiter.Check(ctx)
	if err != nil {
		return publisher.Result{}, st, err
	}
	if !st.Allowed {
		return publisher.Result{}, st, &ratelimit.LimitExceededError{Status: st}
	}

	res, err := s.pub.PublishOne(ctx, text, "")
	if err != nil {
		// failed attempt must not consume quota
		return publisher.Result{}, st, err
	}
	if err := s.limiter.Consume(ctx); err != nil {
		logger.Log.Errorf("quota consume failed after publish: %v", err)
	}
	s.record(ctx, res, "", 0)

	after, err := s.limiter.Check(ctx)
	if err != nil {
		after = st
	}
	return res, after, nil
}

// PublishThread posts texts as a linear reply chain, strictly in order.
// It fails fast: the first failing item aborts the rest, already-published
// items stay published, and no partial results are returned.
func (s *PublishService) PublishThread(ctx context.Context, texts []string) ([]publisher.Result, ratelimit.Status, error) {
	st, err := s.limiter.Check(ctx)
	if err != nil {
		return nil, st, err
	}
	// the limiter has no reservation concept, so the whole batch must fit
	// up front
	if !st.Allowed || st.Remaining < len(texts) {
		return nil, st, &ratelimit.LimitExceededError{Status: st}
	}

	results := make([]publisher.Result, 0, len(texts))
	replyToID := ""
	for i, text := range texts {
		st, err := s.limiter.Check(ctx)
		if err != nil {
			return nil, st, err
		}
		if !st.Allowed {
			return nil, st, &ratelimit.LimitExceededError{Status: st}
		}

		res, err := s.pub.PublishOne(ctx, text, replyToID)
		if err != nil {
			return nil, st, err
		}
		if err := s.limiter.Consume(ctx); err != nil {
			logger.Log.Errorf("quota consume failed after publish: %v", err)
		}
		s.record(ctx, res, replyToID, i+1)

		replyToID = res.TweetID
		results = append(results, res)
	}

	after, err := s.limiter.Check(ctx)
	if err != nil {
		after = st
	}
	return results, after, nil
}

// History lists recently published tweets, newest first. Without Mongo the
// relay keeps no history and the list is empty.
func (s *PublishService) History(ctx context.Context, limit int) ([]models.PublishedTweet, error) {
	if s.history == nil {
		return []models.PublishedTweet{}, nil
	}
	return s.history.ListRecent(ctx, limit)
}

func (s *PublishService) record(ctx context.Context, res publisher.Result, replyToID string, threadIndex int) {
	if s.history != nil {
		_, err := s.history.Insert(ctx, models.PublishedTweet{
			TweetID:     res.TweetID,
			TweetURL:    res.TweetURL,
			Text:        res.Text,
			InReplyToID: replyToID,
			ThreadIndex: threadIndex,
			PostedAt:    time.Now(),
		})
		if err != nil {
			logger.Log.Errorf("history insert failed for tweet %s: %v", res.TweetID, err)
		}
	}

	payload, err := json.Marshal(eventbus.TweetPublishedPayload{
		TweetID:     res.TweetID,
		TweetURL:    res.TweetURL,
		Text:        res.Text,
		InReplyToID: replyToID,
	})
	if err != nil {
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicTweetPublished, eventbus.Event{
		ID:         uuid.NewString(),
		Type:       eventbus.TopicTweetPublished,
		Payload:    payload,
		OccurredAt: time.Now(),
	}); err != nil {
		logger.Log.Errorf("event publish failed for tweet %s: %v", res.TweetID, err)
	}
}
