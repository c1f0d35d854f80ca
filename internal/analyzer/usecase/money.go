package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// moneyRe matches "$1,250.50", "500usd", "500 dollars", "1500".
// Group 1 is the amount including separators and fraction.
var moneyRe = regexp.MustCompile(`\$?((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?)\s*(?:usd|dollars)?`)

// extractBudget returns the first monetary amount in text, or 0. An amount
// that overflows float64 also yields 0.
func extractBudget(text string) float64 {
	m := moneyRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}
