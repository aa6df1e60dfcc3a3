package analysis

import (
	"regexp"
	"strings"

	"propertychat/internal/model"
)

// TextAnalyzer extracts sentiment and entities from raw message text.
// It is pure and stateless; a single instance is safe for concurrent use.
type TextAnalyzer struct{}

// NewTextAnalyzer creates a new text analyzer
func NewTextAnalyzer() *TextAnalyzer {
	return &TextAnalyzer{}
}

// Price patterns, in priority order. Earlier families are more specific;
// the generic numeric family deliberately re-matches spans the specific
// ones already caught, and only the normalized-text dedup guards against
// emitting the exact same span twice.
var pricePatterns = []*regexp.Regexp{
	// currency symbol + number + million/m: "₦5 million", "$2.5m"
	regexp.MustCompile(`(?i)[₦$]\s*\d+(?:\.\d+)?\s*(?:million|m)\b`),
	// number + million/m + naira: "5 million naira"
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:million|m)\s*naira\b`),
	// NGN prefix + number + million/m: "NGN 5m"
	regexp.MustCompile(`(?i)\bngn\s*\d+(?:\.\d+)?\s*(?:million|m)\b`),
	// bare symbol- or NGN-prefixed numbers with optional thousands separators
	regexp.MustCompile(`(?i)(?:[₦$]|\bngn\b)\s*\d+(?:,\d{3})*(?:\.\d+)?`),
	// number + naira: "500,000 naira"
	regexp.MustCompile(`(?i)\b\d+(?:,\d{3})*(?:\.\d+)?\s*naira\b`),
}

// Gazetteer of known place names, matched per token after case-folding.
var knownLocations = map[string]struct{}{
	"lekki":     {},
	"ikoyi":     {},
	"ikeja":     {},
	"yaba":      {},
	"surulere":  {},
	"ajah":      {},
	"gbagada":   {},
	"magodo":    {},
	"festac":    {},
	"maryland":  {},
	"ogba":      {},
	"sangotedo": {},
	"epe":       {},
	"lagos":     {},
	"abuja":     {},
	"ibadan":    {},
	"enugu":     {},
	"kano":      {},
}

// Spatial prepositions that promote the following token to a location
// when it is in the gazetteer.
var spatialPrepositions = map[string]struct{}{
	"in":     {},
	"at":     {},
	"near":   {},
	"around": {},
	"within": {},
}

var propertyTypes = map[string]struct{}{
	"apartment": {},
	"duplex":    {},
	"studio":    {},
	"bungalow":  {},
	"flat":      {},
	"house":     {},
	"mansion":   {},
	"penthouse": {},
	"terrace":   {},
	"townhouse": {},
	"land":      {},
	"office":    {},
	"shop":      {},
	"warehouse": {},
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ExtractEntities runs three additive extraction passes (price, location,
// property type) over the text. No pass aborts another; an input with no
// matches yields an empty slice, never an error.
func (a *TextAnalyzer) ExtractEntities(text string) []model.Entity {
	entities := []model.Entity{}

	// Price pass. Matches are normalized (trimmed, internal whitespace
	// collapsed) and deduplicated by that normalized text.
	seenPrices := map[string]struct{}{}
	for _, pattern := range pricePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			normalized := whitespaceRe.ReplaceAllString(strings.TrimSpace(match), " ")
			if _, dup := seenPrices[normalized]; dup {
				continue
			}
			seenPrices[normalized] = struct{}{}
			entities = append(entities, model.Entity{Type: model.EntityPrice, Text: normalized})
		}
	}

	// Location pass. A gazetteer token following a spatial preposition is
	// emitted by both rules; those duplicates are kept.
	tokens := strings.Fields(strings.ToLower(text))
	for i, token := range tokens {
		if _, ok := knownLocations[token]; ok {
			entities = append(entities, model.Entity{Type: model.EntityLocation, Text: token})
		}
		if _, ok := spatialPrepositions[token]; ok && i+1 < len(tokens) {
			next := tokens[i+1]
			if _, ok := knownLocations[next]; ok {
				entities = append(entities, model.Entity{Type: model.EntityLocation, Text: next})
			}
		}
	}

	// Property type pass.
	for _, token := range tokens {
		if _, ok := propertyTypes[token]; ok {
			entities = append(entities, model.Entity{Type: model.EntityPropertyType, Text: token})
		}
	}

	return entities
}
