package model

// EntityType classifies an extracted span of meaning
type EntityType string

const (
	EntityLocation     EntityType = "location"
	EntityPrice        EntityType = "price"
	EntityPropertyType EntityType = "propertyType"
)

// Entity represents a typed span extracted from free text
type Entity struct {
	Type EntityType `json:"type"`
	Text string     `json:"text"`
}

// Sentiment is the coarse polarity of a message
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SentimentResult holds the lexicon word-count delta and its derived polarity
type SentimentResult struct {
	Sentiment Sentiment `json:"sentiment"`
	Score     int       `json:"score"`
}

// Intent is the coarse purpose of a user message
type Intent string

const (
	IntentSearch  Intent = "search"
	IntentInquire Intent = "inquire"
	IntentCompare Intent = "compare"
	IntentGeneral Intent = "general"
)

// IntentPrediction holds a predicted intent with its fixed confidence
type IntentPrediction struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Analysis bundles the per-message analysis attached to a chat response
type Analysis struct {
	Sentiment SentimentResult  `json:"sentiment"`
	Entities  []Entity         `json:"entities"`
	Intent    IntentPrediction `json:"intent"`
}

// ConversationTurn is a single message in a user's conversation history
type ConversationTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the inbound chat payload
type ChatRequest struct {
	Message    string `json:"message" binding:"required"`
	UserID     string `json:"user_id,omitempty"`
	PropertyID *int64 `json:"property_id,omitempty"`
}

// ChatResponse is the outbound chat payload
type ChatResponse struct {
	ID          string     `json:"id"`
	Message     string     `json:"message"`
	Analysis    Analysis   `json:"analysis"`
	Properties  []Property `json:"properties"`
	Suggestions []string   `json:"suggestions"`
}
