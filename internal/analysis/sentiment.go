package analysis

import (
	"strings"

	"propertychat/internal/model"
)

// Sentiment lexicons. The score is a plain signed word-count delta, so
// the lists only need to cover the vocabulary users actually type when
// reacting to listings.
var positiveWords = map[string]struct{}{
	"good":       {},
	"great":      {},
	"nice":       {},
	"love":       {},
	"like":       {},
	"excellent":  {},
	"amazing":    {},
	"beautiful":  {},
	"perfect":    {},
	"awesome":    {},
	"wonderful":  {},
	"fantastic":  {},
	"spacious":   {},
	"affordable": {},
	"clean":      {},
	"modern":     {},
	"lovely":     {},
	"best":       {},
}

var negativeWords = map[string]struct{}{
	"bad":           {},
	"terrible":      {},
	"awful":         {},
	"hate":          {},
	"poor":          {},
	"horrible":      {},
	"expensive":     {},
	"dirty":         {},
	"noisy":         {},
	"ugly":          {},
	"worst":         {},
	"disappointing": {},
	"cramped":       {},
	"overpriced":    {},
}

// AnalyzeSentiment scores a message by counting lexicon hits.
// score = positive hits - negative hits; the polarity follows the sign.
// Always returns a result, even for empty input.
func (a *TextAnalyzer) AnalyzeSentiment(text string) model.SentimentResult {
	score := 0
	for _, token := range strings.Fields(strings.ToLower(text)) {
		if _, ok := positiveWords[token]; ok {
			score++
		}
		if _, ok := negativeWords[token]; ok {
			score--
		}
	}

	sentiment := model.SentimentNeutral
	switch {
	case score > 0:
		sentiment = model.SentimentPositive
	case score < 0:
		sentiment = model.SentimentNegative
	}

	return model.SentimentResult{Sentiment: sentiment, Score: score}
}
