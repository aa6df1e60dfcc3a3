package utils

import (
	"strconv"
	"strings"
)

// FormatPrice renders a naira amount with thousands separators,
// e.g. 4500000 -> "₦4,500,000".
func FormatPrice(amount float64) string {
	whole := strconv.FormatFloat(amount, 'f', 0, 64)

	negative := strings.HasPrefix(whole, "-")
	if negative {
		whole = whole[1:]
	}

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := "₦" + b.String()
	if negative {
		out = "-" + out
	}
	return out
}

// IntOrNA renders an optional count, substituting "N/A" when absent
func IntOrNA(value *int) string {
	if value == nil {
		return "N/A"
	}
	return strconv.Itoa(*value)
}

// JoinOrNA joins items with commas, substituting "N/A" when empty
func JoinOrNA(items []string) string {
	if len(items) == 0 {
		return "N/A"
	}
	return strings.Join(items, ", ")
}

// StatusOrDefault substitutes "Available" for an unset listing status
func StatusOrDefault(status *string) string {
	if status == nil || *status == "" {
		return "Available"
	}
	return *status
}
