package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tweetsmith/prompt"
)

func TestSingleContainsTopic(t *testing.T) {
	topics := []string{"go generics", "मौसम", "chai vs coffee"}
	langs := []prompt.Language{prompt.English, prompt.Hindi, prompt.Hinglish}

	for _, topic := range topics {
		for _, lang := range langs {
			p := prompt.Single(topic, lang)
			assert.NotEmpty(t, p)
			assert.Contains(t, p, topic)
		}
	}
}

func TestNormalizeFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, prompt.English, prompt.Normalize("english"))
	assert.Equal(t, prompt.Hindi, prompt.Normalize("hindi"))
	assert.Equal(t, prompt.Hinglish, prompt.Normalize("hinglish"))

	// unsupported values silently default
	assert.Equal(t, prompt.English, prompt.Normalize(""))
	assert.Equal(t, prompt.English, prompt.Normalize("french"))
	assert.Equal(t, prompt.English, prompt.Normalize("HINDI"))
}

func TestThreadPartContinuity(t *testing.T) {
	first := prompt.ThreadPart("kubernetes", prompt.English, 1, 3)
	second := prompt.ThreadPart("kubernetes", prompt.English, 2, 3)

	assert.Contains(t, first, "part 1 of a 3-part")
	assert.Contains(t, second, "part 2 of a 3-part")
	assert.NotContains(t, first, "continuation")
	assert.Contains(t, second, "continuation")
}

func TestWithArticle(t *testing.T) {
	base := prompt.Single("release notes", prompt.English)
	combined := prompt.WithArticle(base, "v2.0 ships tomorrow")
	assert.True(t, strings.Contains(combined, "v2.0 ships tomorrow"))
	assert.True(t, strings.HasSuffix(combined, base))

	assert.Equal(t, base, prompt.WithArticle(base, ""))
}
