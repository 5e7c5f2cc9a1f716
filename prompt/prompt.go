// Package prompt builds the natural-language instructions sent to the
// generative model. Templates keep the 280-character ceiling advisory:
// it is stated in the instruction, never enforced on the result.
package prompt

import "fmt"

// Language selects the wording of the generated tweet.
type Language string

const (
	English  Language = "english"
	Hindi    Language = "hindi"
	Hinglish Language = "hinglish"
)

// Normalize maps arbitrary input onto a supported language.
// Unknown values fall back to English rather than failing the request.
func Normalize(lang string) Language {
	switch Language(lang) {
	case Hindi:
		return Hindi
	case Hinglish:
		return Hinglish
	default:
		return English
	}
}

func languageDirective(lang Language) string {
	switch lang {
	case Hindi:
		return "Write the tweet in Hindi (Devanagari script)."
	case Hinglish:
		return "Write the tweet in Hinglish (Hindi written casually in Latin script, mixed with English)."
	default:
		return "Write the tweet in English."
	}
}

// Single returns the instruction for one standalone tweet about topic.
func Single(topic string, lang Language) string {
	return fmt.Sprintf(
		"Write a single short tweet about: %s\n"+
			"%s\n"+
			"Keep it under 280 characters, sound natural and conversational, "+
			"and do not add hashtags unless the topic explicitly asks for them. "+
			"Return only the tweet text, with no quotes around it.",
		topic, languageDirective(lang))
}

// ThreadPart returns the instruction for part partIndex (1-based) of a
// partCount-part thread about topic. Parts after the first are asked to
// read as continuations of what came before.
func ThreadPart(topic string, lang Language, partIndex, partCount int) string {
	continuity := ""
	if partIndex > 1 {
		continuity = "This part must read as a natural continuation of the previous parts, without repeating them. "
	}
	return fmt.Sprintf(
		"Write part %d of a %d-part tweet thread about: %s\n"+
			"%s\n"+
			"%sKeep it under 280 characters, sound natural and conversational, "+
			"and do not add hashtags unless the topic explicitly asks for them. "+
			"Return only the tweet text, with no quotes and no part numbering.",
		partIndex, partCount, topic, languageDirective(lang), continuity)
}

// WithArticle prefixes an instruction with extracted article text so the
// model can draft a tweet grounded in the source.
func WithArticle(instruction, articleText string) string {
	if articleText == "" {
		return instruction
	}
	return fmt.Sprintf("Here is the source article:\n---\n%s\n---\n\n%s", articleText, instruction)
}
