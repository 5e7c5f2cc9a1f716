package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetsmith/api/router"
	"tweetsmith/generator"
	"tweetsmith/publisher"
	"tweetsmith/ratelimit"
	"tweetsmith/services"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type fakeGen struct {
	fail bool
}

func (f *fakeGen) GenerateTweet(ctx context.Context, topic, language, articleText string) (string, error) {
	if f.fail {
		return "", &generator.GenerationError{Message: "empty response"}
	}
	return "a tweet about " + topic, nil
}

func (f *fakeGen) GenerateThread(ctx context.Context, topic string, partCount int, language string) ([]string, error) {
	if f.fail {
		return nil, &generator.GenerationError{Message: "empty response"}
	}
	if partCount <= 0 {
		partCount = 3
	}
	out := make([]string, partCount)
	for i := range out {
		out[i] = fmt.Sprintf("part %d about %s", i+1, topic)
	}
	return out, nil
}

type fakePub struct {
	calls int
	fail  bool
}

func (f *fakePub) PublishOne(ctx context.Context, text, replyToID string) (publisher.Result, error) {
	f.calls++
	if f.fail {
		return publisher.Result{}, &publisher.PublishError{StatusCode: 403, Body: "forbidden"}
	}
	id := fmt.Sprint(f.calls)
	return publisher.Result{TweetID: id, TweetURL: "https://twitter.com/testuser/status/" + id, Text: text}, nil
}

type testEnv struct {
	engine  *gin.Engine
	gen     *fakeGen
	pub     *fakePub
	limiter *ratelimit.MemoryLimiter
}

func newEnv() *testEnv {
	gen := &fakeGen{}
	pub := &fakePub{}
	limiter := ratelimit.NewMemoryLimiter(17, 24*time.Hour)
	tweets := services.NewTweetService(gen, false)
	publishes := services.NewPublishService(pub, limiter, nil, nil)
	return &testEnv{
		engine:  router.New(tweets, publishes),
		gen:     gen,
		pub:     pub,
		limiter: limiter,
	}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestStatus(t *testing.T) {
	w := newEnv().do(http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Online", decode(t, w)["status"])
}

func TestGenerateTweetMissingTopic(t *testing.T) {
	w := newEnv().do(http.MethodPost, "/generate-tweet", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Topic is required", decode(t, w)["error"])
}

func TestGenerateTweet(t *testing.T) {
	w := newEnv().do(http.MethodPost, "/generate-tweet", `{"topic":"go generics","language":"hinglish"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a tweet about go generics", decode(t, w)["tweet"])
}

func TestGenerateTweetUpstreamFailure(t *testing.T) {
	env := newEnv()
	env.gen.fail = true
	w := env.do(http.MethodPost, "/generate-tweet", `{"topic":"go"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to generate tweet", decode(t, w)["error"])
}

func TestGenerateThreadDefaultsToThreeParts(t *testing.T) {
	w := newEnv().do(http.MethodPost, "/generate-thread", `{"topic":"kubernetes"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tweets []string `json:"tweets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Tweets, 3)
}

func TestPostTweetMissingText(t *testing.T) {
	w := newEnv().do(http.MethodPost, "/post-tweet", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Tweet text is required", decode(t, w)["error"])
}

func TestPostTweet(t *testing.T) {
	w := newEnv().do(http.MethodPost, "/post-tweet", `{"tweet":"hello"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "1", body["tweetId"])
	assert.Equal(t, "https://twitter.com/testuser/status/1", body["tweetUrl"])

	rl := body["rateLimit"].(map[string]any)
	assert.Equal(t, float64(16), rl["remaining"])
}

func TestPostTweetOverLimit(t *testing.T) {
	env := newEnv()
	ctx := context.Background()
	for i := 0; i < 17; i++ {
		require.NoError(t, env.limiter.Consume(ctx))
	}

	w := env.do(http.MethodPost, "/post-tweet", `{"tweet":"one too many"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Rate limit exceeded", body["error"])
	resetTime, err := time.Parse(time.RFC3339, body["resetTime"].(string))
	require.NoError(t, err)
	assert.True(t, resetTime.After(time.Now()))

	// the denied request never reached the publisher
	assert.Equal(t, 0, env.pub.calls)
}

func TestPostTweetUpstreamFailure(t *testing.T) {
	env := newEnv()
	env.pub.fail = true
	w := env.do(http.MethodPost, "/post-tweet", `{"tweet":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Failed to post tweet", body["error"])
	assert.Contains(t, body["details"], "forbidden")

	// failed attempt keeps the quota intact
	st, _ := env.limiter.Check(context.Background())
	assert.Equal(t, 17, st.Remaining)
}

func TestPostThreadEmptyArray(t *testing.T) {
	w := newEnv().do(http.MethodPost, "/post-thread", `{"tweets":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Tweets array is required", decode(t, w)["error"])
}

func TestPostThread(t *testing.T) {
	w := newEnv().do(http.MethodPost, "/post-thread", `{"tweets":["A","B","C"]}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success       bool `json:"success"`
		ThreadResults []struct {
			TweetID string `json:"tweetId"`
			Text    string `json:"text"`
		} `json:"threadResults"`
		RateLimit struct {
			Remaining int `json:"remaining"`
		} `json:"rateLimit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.ThreadResults, 3)
	assert.Equal(t, "1", resp.ThreadResults[0].TweetID)
	assert.Equal(t, "3", resp.ThreadResults[2].TweetID)
	assert.Equal(t, 14, resp.RateLimit.Remaining)
}

func TestRateLimitEndpoint(t *testing.T) {
	w := newEnv().do(http.MethodGet, "/rate-limit", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(17), body["remaining"])
	_, err := time.Parse(time.RFC3339, body["resetTime"].(string))
	assert.NoError(t, err)
}

func TestHistoryWithoutMongo(t *testing.T) {
	w := newEnv().do(http.MethodGet, "/history", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
