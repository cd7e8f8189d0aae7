package extract

import (
	"strings"
	"unicode"
)

// validityBlocklist rejects vendor names that are really labels.
var validityBlocklist = []string{
	"invoice no", "invoice", "gstin", "dated", "tax invoice", "party :", "party:",
	"bill to", "ship to", "address", "order no", "prepared by", "amount",
}

// addressTokens mark vendor names that may actually be address lines.
var addressTokens = []string{
	"road", "rd", "street", "st ", "st.", "lane", "ln", "complex", "tower",
	"floor", "opp", "near", "shop", "block", "sector", "phase", "plot", "no.", "no ",
}

// IsOutputValid is the output-validity classifier: a pure predicate over a
// structured result. It rejects garbage vendor names, missing mandatory
// fields and address lines masquerading as names. Never errors; absent
// fields simply yield false.
func IsOutputValid(f Fields) bool {
	vendor := strings.TrimSpace(f.VendorName)
	if vendor == "" || f.TotalAmount == nil {
		return false
	}
	low := strings.ToLower(vendor)
	for _, t := range validityBlocklist {
		if strings.Contains(low, t) {
			return false
		}
	}
	// A company name may contain a street-type word; an actual address line
	// additionally carries digits or commas.
	for _, t := range addressTokens {
		if !strings.Contains(low, t) {
			continue
		}
		digits := 0
		for _, r := range vendor {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits >= 2 || strings.Contains(vendor, ",") {
			return false
		}
		break
	}
	letters := 0
	runes := []rune(vendor)
	for _, r := range runes {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	minLetters := 0.4 * float64(len(runes))
	if minLetters < 3 {
		minLetters = 3
	}
	return float64(letters) >= minLetters
}
