package service

import (
	"regexp"
	"strconv"
	"strings"

	"propertychat/internal/model"
)

var (
	currencyStripper = strings.NewReplacer("₦", "", "$", "", ",", "")
	leadingNumberRe  = regexp.MustCompile(`^\d+(?:\.\d+)?`)
)

// BuildFilter turns extracted entities into a catalog filter. The first
// entity of each type wins. A price entity that cannot be normalized to a
// number is dropped rather than producing an invalid bound.
func BuildFilter(entities []model.Entity) *model.PropertyFilter {
	filter := &model.PropertyFilter{}
	priceSeen := false

	for _, entity := range entities {
		switch entity.Type {
		case model.EntityLocation:
			if filter.Location == nil {
				text := entity.Text
				filter.Location = &text
			}
		case model.EntityPropertyType:
			if filter.Type == nil {
				text := entity.Text
				filter.Type = &text
			}
		case model.EntityPrice:
			// Only the first price entity counts; if it does not
			// normalize, the bound is omitted rather than taken from a
			// later match.
			if !priceSeen {
				priceSeen = true
				if price, ok := normalizePrice(entity.Text); ok {
					filter.MaxPrice = &price
				}
			}
		}
	}

	return filter
}

// normalizePrice strips currency symbols and separators, applies the
// million multiplier, and parses the leading numeric portion. Returns
// false when no number can be extracted.
func normalizePrice(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "ngn", "")
	s = strings.TrimSpace(currencyStripper.Replace(s))

	million := strings.Contains(s, "million") || strings.HasSuffix(s, "m")

	match := leadingNumberRe.FindString(s)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	if million {
		value *= 1_000_000
	}
	return value, true
}
