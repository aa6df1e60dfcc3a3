package analysis

import (
	"strings"

	"propertychat/internal/model"
)

const (
	matchConfidence   = 0.8
	defaultConfidence = 0.6
)

// intentRule pairs an intent category with its ordered phrase list.
type intentRule struct {
	intent  model.Intent
	phrases []string
}

// Canonical keyword table. Category order is the tie-break policy:
// search is checked before inquire, inquire before compare, and the
// first phrase hit wins outright.
var intentRules = []intentRule{
	{
		intent: model.IntentSearch,
		phrases: []string{
			"show me",
			"find",
			"search",
			"looking for",
			"i want",
			"i need",
			"properties in",
			"available",
			"list",
		},
	},
	{
		intent: model.IntentInquire,
		phrases: []string{
			"tell me about",
			"what is",
			"how much",
			"details",
			"more information",
			"about this",
			"describe",
		},
	},
	{
		intent: model.IntentCompare,
		phrases: []string{
			"compare",
			"difference",
			"versus",
			"vs",
			"better",
			"which one",
		},
	},
}

// IntentClassifier predicts the coarse purpose of a message from the
// keyword rule table. Pure and stateless.
type IntentClassifier struct{}

// NewIntentClassifier creates a new intent classifier
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{}
}

// Predict returns the first matching category with fixed confidence 0.8,
// or general with confidence 0.6 when nothing matches.
func (c *IntentClassifier) Predict(message string) model.IntentPrediction {
	lowered := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(lowered, phrase) {
				return model.IntentPrediction{Intent: rule.intent, Confidence: matchConfidence}
			}
		}
	}
	return model.IntentPrediction{Intent: model.IntentGeneral, Confidence: defaultConfidence}
}
