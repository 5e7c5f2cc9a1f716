package services

import (
	"context"
	"errors"

	"tweetsmith/feeder"
	"tweetsmith/generator"
	"tweetsmith/parser"
	"tweetsmith/renderer"
)

// Generator is the slice of the generation client the service needs.
type Generator interface {
	GenerateTweet(ctx context.Context, topic, language, articleText string) (string, error)
	GenerateThread(ctx context.Context, topic string, partCount int, language string) ([]string, error)
}

// TweetService drafts tweet content, optionally grounded in a source
// article or an RSS feed's newest item.
type TweetService struct {
	gen      Generator
	renderJS bool
}

func NewTweetService(gen Generator, renderJS bool) *TweetService {
	return &TweetService{gen: gen, renderJS: renderJS}
}

type GenerateTweetInput struct {
	Topic     string
	Language  string
	SourceURL string
}

// maxArticleRunes caps how much extracted article text goes into the prompt.
const maxArticleRunes = 8000

func (s *TweetService) GenerateTweet(ctx context.Context, in GenerateTweetInput) (string, error) {
	articleText := ""
	if in.SourceURL != "" {
		text, err := s.readArticle(ctx, in.SourceURL)
		if err != nil {
			return "", &generator.GenerationError{Message: "source article " + in.SourceURL, Err: err}
		}
		articleText = text
	}
	return s.gen.GenerateTweet(ctx, in.Topic, in.Language, articleText)
}

func (s *TweetService) GenerateThread(ctx context.Context, topic string, partCount int, language string) ([]string, error) {
	return s.gen.GenerateThread(ctx, topic, partCount, language)
}

var errEmptyFeed = errors.New("feed has no items")

// GenerateFromFeed drafts a tweet about the newest item of an RSS feed.
// Article extraction is best effort; the item title alone is enough for a
// usable prompt.
func (s *TweetService) GenerateFromFeed(ctx context.Context, feedURL, language string) (string, error) {
	items, err := feeder.FetchRssFeeds(feedURL, 1)
	if err != nil {
		return "", &generator.GenerationError{Message: "feed fetch " + feedURL, Err: err}
	}
	if len(items) == 0 {
		return "", &generator.GenerationError{Message: "feed " + feedURL, Err: errEmptyFeed}
	}

	item := items[0]
	articleText, err := s.readArticle(ctx, item.Link)
	if err != nil {
		articleText = ""
	}
	return s.gen.GenerateTweet(ctx, item.Title, language, articleText)
}

func (s *TweetService) readArticle(ctx context.Context, url string) (string, error) {
	var htmlStr string
	var err error
	if s.renderJS {
		htmlStr, err = renderer.RenderHTML(url)
	} else {
		htmlStr, err = renderer.FetchHTML(ctx, url)
	}
	if err != nil {
		return "", err
	}

	text, err := parser.ExtractText(htmlStr)
	if err != nil {
		return "", err
	}
	return truncate(text, maxArticleRunes), nil
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
