// Package parser extracts readable plain text from article HTML so it can
// be fed to the model as source context.
package parser

import (
	"errors"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var ErrNoContent = errors.New("no readable content extracted")

// ExtractText runs the extractors in order of quality and returns the first
// non-empty result: trafilatura, then readability, then goose.
func ExtractText(htmlStr string) (string, error) {
	if text, err := extractWithTrafilatura(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text), nil
	}
	if text, err := extractWithReadability(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text), nil
	}
	if text, err := extractWithGoose(htmlStr); err == nil && strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text), nil
	}
	return "", ErrNoContent
}

func extractWithTrafilatura(htmlStr string) (string, error) {
	article, err := trafilatura.Extract(strings.NewReader(htmlStr), trafilatura.Options{})
	if err != nil {
		return "", err
	}
	return article.ContentText, nil
}

func extractWithReadability(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}
	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}

func extractWithGoose(htmlStr string) (string, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return "", err
	}
	return article.CleanedText, nil
}
