package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetsmith/publisher"
	"tweetsmith/ratelimit"
	"tweetsmith/services"
)

type publishCall struct {
	text      string
	replyToID string
}

// fakePublisher returns sequential ids ("1", "2", ...) and can be told to
// fail on a specific call number (1-based).
type fakePublisher struct {
	calls  []publishCall
	failOn int
}

func (f *fakePublisher) PublishOne(ctx context.Context, text, replyToID string) (publisher.Result, error) {
	f.calls = append(f.calls, publishCall{text: text, replyToID: replyToID})
	n := len(f.calls)
	if f.failOn == n {
		return publisher.Result{}, &publisher.PublishError{StatusCode: 403, Body: "forbidden"}
	}
	id := fmt.Sprint(n)
	return publisher.Result{TweetID: id, TweetURL: "https://twitter.com/testuser/status/" + id, Text: text}, nil
}

func newService(pub *fakePublisher, limit int) (*services.PublishService, *ratelimit.MemoryLimiter) {
	l := ratelimit.NewMemoryLimiter(limit, 24*time.Hour)
	return services.NewPublishService(pub, l, nil, nil), l
}

func TestPublishTweetConsumesQuota(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	svc, _ := newService(pub, 17)

	res, st, err := svc.PublishTweet(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "1", res.TweetID)
	assert.Equal(t, 16, st.Remaining)
}

func TestPublishTweetFailureKeepsQuota(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{failOn: 1}
	svc, _ := newService(pub, 17)

	_, _, err := svc.PublishTweet(ctx, "hello")
	var pubErr *publisher.PublishError
	require.ErrorAs(t, err, &pubErr)

	st, _ := svc.RateLimit(ctx)
	assert.Equal(t, 17, st.Remaining)
}

func TestPublishTweetOverLimit(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	svc, _ := newService(pub, 1)

	_, _, err := svc.PublishTweet(ctx, "first")
	require.NoError(t, err)

	_, _, err = svc.PublishTweet(ctx, "second")
	var limitErr *ratelimit.LimitExceededError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 0, limitErr.Status.Remaining)
	assert.True(t, limitErr.Status.ResetAt.After(time.Now()))

	// the denied attempt never reached the publisher
	assert.Len(t, pub.calls, 1)
}

func TestPublishThreadChainsReplies(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	svc, _ := newService(pub, 17)

	results, st, err := svc.PublishThread(ctx, []string{"A", "B", "C"})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 14, st.Remaining)

	require.Len(t, pub.calls, 3)
	assert.Equal(t, "", pub.calls[0].replyToID)
	assert.Equal(t, "1", pub.calls[1].replyToID)
	assert.Equal(t, "2", pub.calls[2].replyToID)
	assert.Equal(t, []publishCall{
		{text: "A", replyToID: ""},
		{text: "B", replyToID: "1"},
		{text: "C", replyToID: "2"},
	}, pub.calls)
}

func TestPublishThreadAbortsOnFailure(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{failOn: 2}
	svc, _ := newService(pub, 17)

	results, _, err := svc.PublishThread(ctx, []string{"A", "B", "C"})
	var pubErr *publisher.PublishError
	require.ErrorAs(t, err, &pubErr)
	assert.Nil(t, results)

	// third item never attempted; only the first succeeded and consumed
	assert.Len(t, pub.calls, 2)
	st, _ := svc.RateLimit(ctx)
	assert.Equal(t, 16, st.Remaining)
}

func TestPublishThreadNeedsRoomForWholeBatch(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	svc, _ := newService(pub, 2)

	_, _, err := svc.PublishThread(ctx, []string{"A", "B", "C"})
	var limitErr *ratelimit.LimitExceededError
	require.ErrorAs(t, err, &limitErr)
	assert.Empty(t, pub.calls)
}
