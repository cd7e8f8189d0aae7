package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish   = regexp.MustCompile(`\b\d{1,2}[-/][A-Za-z0-9]{2,}[-/]\d{2,4}\b`)
	reCurrency  = regexp.MustCompile(`\binr\b|₹|\brs\.?\b`)
	reAmountish = regexp.MustCompile(`\b\d{1,3}(,\d{3})*(\.\d{2})\b|\b\d+\.\d{2}\b`)
	reGSTINish  = regexp.MustCompile(`(?i)\b\d{2}[a-z]{5}\d{4}[a-z][a-z0-9]z[a-z0-9]\b`)
)

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// boost for common invoice artifacts: date-ish, currency-ish,
	// amount-ish, tax-ID-ish tokens.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if reDateish.MatchString(txtL) {
		score += 0.2
	}
	if reCurrency.MatchString(txtL) {
		score += 0.1
	}
	if reAmountish.MatchString(txtL) {
		score += 0.15
	}
	if reGSTINish.MatchString(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
