package publisher_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetsmith/config"
	"tweetsmith/publisher"
)

func testConfig(apiBase string) config.AppConfig {
	return config.AppConfig{
		Twitter: config.TwitterConfig{
			Username:          "testuser",
			APIBase:           apiBase,
			ConsumerKey:       "ck",
			ConsumerSecret:    "cs",
			AccessToken:       "at",
			AccessTokenSecret: "ats",
		},
		HTTPTimeoutSeconds: 5,
	}
}

func TestPublishOne(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/2/tweets", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"data":{"id":"111"}}`)
	}))
	defer ts.Close()

	c := publisher.New(testConfig(ts.URL))
	res, err := c.PublishOne(t.Context(), "hello world", "")
	require.NoError(t, err)

	assert.Equal(t, "111", res.TweetID)
	assert.Equal(t, "https://twitter.com/testuser/status/111", res.TweetURL)
	assert.Equal(t, "hello world", res.Text)

	assert.Equal(t, "hello world", gotBody["text"])
	_, hasReply := gotBody["reply"]
	assert.False(t, hasReply)

	// request must be OAuth 1.0a signed
	assert.True(t, strings.HasPrefix(gotAuth, "OAuth "))
	assert.Contains(t, gotAuth, "oauth_signature=")
	assert.Contains(t, gotAuth, `oauth_signature_method="HMAC-SHA1"`)
}

func TestPublishOneReply(t *testing.T) {
	var gotBody struct {
		Text  string `json:"text"`
		Reply struct {
			InReplyToTweetID string `json:"in_reply_to_tweet_id"`
		} `json:"reply"`
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"data":{"id":"222"}}`)
	}))
	defer ts.Close()

	c := publisher.New(testConfig(ts.URL))
	res, err := c.PublishOne(t.Context(), "part two", "111")
	require.NoError(t, err)

	assert.Equal(t, "222", res.TweetID)
	assert.Equal(t, "111", gotBody.Reply.InReplyToTweetID)
}

func TestPublishOneUpstreamRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"title":"Unauthorized"}`)
	}))
	defer ts.Close()

	c := publisher.New(testConfig(ts.URL))
	_, err := c.PublishOne(t.Context(), "hello", "")
	require.Error(t, err)

	var pubErr *publisher.PublishError
	require.ErrorAs(t, err, &pubErr)
	assert.Equal(t, http.StatusUnauthorized, pubErr.StatusCode)
	assert.Contains(t, pubErr.Body, "Unauthorized")
}

func TestPublishOneMissingID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{}}`)
	}))
	defer ts.Close()

	c := publisher.New(testConfig(ts.URL))
	_, err := c.PublishOne(t.Context(), "hello", "")

	var pubErr *publisher.PublishError
	require.ErrorAs(t, err, &pubErr)
}
