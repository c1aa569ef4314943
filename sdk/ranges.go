package krishi

import (
	"regexp"
	"strconv"
	"strings"
)

// AmountBounds is a parsed numeric view of a free-text money range.
type AmountBounds struct {
	Low  float64
	High float64
}

var numberPattern = regexp.MustCompile(`-?\d+(?:,\d{3})*(?:\.\d+)?`)

// ParseAmountRange extracts numeric bounds from a free-text amount range
// such as "₹45,000 - ₹60,000" or "50000 to 75000". Best effort for display
// purposes only: the canonical value stays free text. A single number yields
// equal bounds; no number yields ok=false.
func ParseAmountRange(text string) (AmountBounds, bool) {
	matches := numberPattern.FindAllString(text, 2)
	if len(matches) == 0 {
		return AmountBounds{}, false
	}

	low, err := strconv.ParseFloat(strings.ReplaceAll(matches[0], ",", ""), 64)
	if err != nil {
		return AmountBounds{}, false
	}

	high := low
	if len(matches) == 2 {
		h, err := strconv.ParseFloat(strings.ReplaceAll(matches[1], ",", ""), 64)
		if err == nil {
			high = h
		}
	}

	if high < low {
		low, high = high, low
	}
	return AmountBounds{Low: low, High: high}, true
}
