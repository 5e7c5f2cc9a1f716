// Package generator talks to the Gemini API and turns prompts into tweet
// text. Upstream failures and empty candidates both surface as
// *GenerationError; the caller maps them to a 500.
package generator

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"

	"tweetsmith/config"
	"tweetsmith/models"
	"tweetsmith/prompt"
	"tweetsmith/repositories"
)

// GenerationError wraps any failure to obtain usable text from the model.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return "generation failed: " + e.Message + ": " + e.Err.Error()
	}
	return "generation failed: " + e.Message
}

func (e *GenerationError) Unwrap() error { return e.Err }

type Client struct {
	model   string
	apiKey  string
	timeout time.Duration

	// aiLogs is optional; nil when Mongo is not configured.
	aiLogs *repositories.AILogRepository
}

func New(cfg config.AppConfig, aiLogs *repositories.AILogRepository) *Client {
	return &Client{
		model:   cfg.GeminiModel,
		apiKey:  cfg.GeminiApiKey,
		timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		aiLogs:  aiLogs,
	}
}

// Generate sends one prompt to the model and returns the cleaned text.
func (c *Client) Generate(ctx context.Context, promptText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestedAt := time.Now()
	text, err := c.generate(ctx, promptText)
	c.logCall(promptText, text, requestedAt, err)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *Client) generate(ctx context.Context, promptText string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", &GenerationError{Message: "client init", Err: err}
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(promptText), nil)
	if err != nil {
		return "", &GenerationError{Message: "upstream call", Err: err}
	}

	text := CleanText(result.Text())
	if text == "" {
		// the call succeeded but no candidate text came back
		return "", &GenerationError{Message: "empty response"}
	}
	return text, nil
}

// GenerateTweet drafts one standalone tweet about topic. articleText, when
// non-empty, is folded into the prompt as source context.
func (c *Client) GenerateTweet(ctx context.Context, topic, language, articleText string) (string, error) {
	p := prompt.Single(topic, prompt.Normalize(language))
	return c.Generate(ctx, prompt.WithArticle(p, articleText))
}

// GenerateThread drafts partCount tweets about topic, strictly in order.
// The whole operation fails on the first bad part; parts generated before
// the failure are discarded.
func (c *Client) GenerateThread(ctx context.Context, topic string, partCount int, language string) ([]string, error) {
	if partCount <= 0 {
		partCount = 3
	}
	lang := prompt.Normalize(language)

	tweets := make([]string, 0, partCount)
	for i := 1; i <= partCount; i++ {
		text, err := c.Generate(ctx, prompt.ThreadPart(topic, lang, i, partCount))
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, text)
	}
	return tweets, nil
}

// CleanText trims the model output and strips one leading and one trailing
// quote character, since models like to return the tweet wrapped in quotes.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 0 && isQuote(s[0]) {
		s = s[1:]
	}
	if len(s) > 0 && isQuote(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}

func isQuote(b byte) bool {
	return b == '"' || b == '\''
}

func (c *Client) logCall(promptText, response string, requestedAt time.Time, callErr error) {
	if c.aiLogs == nil {
		return
	}
	entry := models.AILog{
		ModelName:      c.model,
		InputPrompt:    promptText,
		OutputResponse: response,
		RequestedAt:    requestedAt,
		CompletedAt:    time.Now(),
		DurationMs:     time.Since(requestedAt).Milliseconds(),
	}
	if callErr != nil {
		msg := callErr.Error()
		entry.ErrorMessage = &msg
	}
	// best effort; a failed audit write must not fail the request
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = c.aiLogs.Insert(ctx, entry)
}
