// Package publisher posts tweets through the X API v2 create-post endpoint.
// Request signing (OAuth 1.0a, HMAC-SHA1) is delegated to dghubble/oauth1.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"

	"tweetsmith/config"
)

const defaultAPIBase = "https://api.twitter.com"

// PublishError carries whatever the upstream gave us. Auth rejections,
// validation rejections and network failures all look the same to callers.
type PublishError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *PublishError) Error() string {
	if e.Err != nil {
		return "tweet publish failed: " + e.Err.Error()
	}
	return fmt.Sprintf("tweet publish failed: upstream status %d: %s", e.StatusCode, e.Body)
}

func (e *PublishError) Unwrap() error { return e.Err }

// Result describes one successfully created tweet.
type Result struct {
	TweetID  string `json:"tweetId"`
	TweetURL string `json:"tweetUrl"`
	Text     string `json:"text"`
}

type Client struct {
	httpClient *http.Client
	apiBase    string
	username   string
}

// New builds a publisher whose HTTP client signs every request with the
// four credentials from config.
func New(cfg config.AppConfig) *Client {
	oc := oauth1.NewConfig(cfg.Twitter.ConsumerKey, cfg.Twitter.ConsumerSecret)
	token := oauth1.NewToken(cfg.Twitter.AccessToken, cfg.Twitter.AccessTokenSecret)

	httpClient := oc.Client(oauth1.NoContext, token)
	httpClient.Timeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	apiBase := cfg.Twitter.APIBase
	if apiBase == "" {
		apiBase = defaultAPIBase
	}

	return &Client{
		httpClient: httpClient,
		apiBase:    apiBase,
		username:   cfg.Twitter.Username,
	}
}

type createTweetRequest struct {
	Text  string      `json:"text"`
	Reply *tweetReply `json:"reply,omitempty"`
}

type tweetReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

type createTweetResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// PublishOne posts a single tweet. A non-empty replyToID threads it under
// that tweet. The caller is responsible for checking the rate limit before
// calling and consuming quota only when this returns nil error.
func (c *Client) PublishOne(ctx context.Context, text, replyToID string) (Result, error) {
	payload := createTweetRequest{Text: text}
	if replyToID != "" {
		payload.Reply = &tweetReply{InReplyToTweetID: replyToID}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, &PublishError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return Result{}, &PublishError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, &PublishError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &PublishError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, &PublishError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var created createTweetResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return Result{}, &PublishError{Err: err}
	}
	if created.Data.ID == "" {
		return Result{}, &PublishError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return Result{
		TweetID:  created.Data.ID,
		TweetURL: c.TweetURL(created.Data.ID),
		Text:     text,
	}, nil
}

// TweetURL derives the public URL of a tweet from the configured username.
func (c *Client) TweetURL(tweetID string) string {
	return fmt.Sprintf("https://twitter.com/%s/status/%s", c.username, tweetID)
}
