package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

var (
	reAmountToken = regexp.MustCompile(`\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?`)
	reYearMonth   = regexp.MustCompile(`^20\d{2}-\d{2}$`)
	reLetter      = regexp.MustCompile(`[A-Za-z]`)
	reDigit       = regexp.MustCompile(`\d`)
	reInvToken    = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9_\-/]{2,24}`)
	reNumericOnly = regexp.MustCompile(`^[\d/ .-]+$`)
)

// dateLayouts are tried before falling back to fuzzy parsing. These cover the
// label formats the tier-1 patterns capture ("01-Jan-2024", "01/02/2024").
var dateLayouts = []string{
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"2-Jan-06",
	"02-January-2006",
	"01/02/2006",
	"2006-01-02",
}

// CleanAmount strips currency symbols and thousands separators and parses the
// largest numeric token found. Returns false when the string holds no number.
// The tokenizer's first alternation takes at most three digits before a
// separator group, so a run of four or more digits without separators splits
// after the third digit: "5000" yields tokens 500 and 0, not 5000.
func CleanAmount(s string) (float64, bool) {
	tokens := reAmountToken.FindAllString(s, -1)
	if len(tokens) == 0 {
		return 0, false
	}
	best := 0.0
	found := false
	for _, t := range tokens {
		v, err := strconv.ParseFloat(strings.ReplaceAll(t, ",", ""), 64)
		if err != nil {
			continue
		}
		if !found || v > best {
			best = v
			found = true
		}
	}
	return best, found
}

// ParseDate fuzzily parses free text into an ISO calendar date. Bare
// "YYYY-MM" fragments are a known false positive and are rejected outright.
// Returns "" on failure, never an error.
func ParseDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || reYearMonth.MatchString(s) {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// AlnumMix reports whether s contains at least one letter and one digit.
func AlnumMix(s string) bool {
	return reLetter.MatchString(s) && reDigit.MatchString(s)
}

// companyBlocklist rejects structural, address and contact lines outright.
var companyBlocklist = []string{
	"invoice", "gstin", "bill to", "ship to", "address", "tax invoice", "order no", "invoice code", "ref.", "ref ", "ref:",
	"contact", "phone", "mobile", "email", "www", "website", "store", "helpline", "care", "customer",
	"road", "rd", "street", "st ", "st.", "lane", "ln", "complex", "tower", "floor", "opp", "near", "shop", "block",
	"sector", "phase", "plot", "no.", "no ", "colony", "market", "apartment", "residency", "residence", "society",
	"village", "taluka", "tehsil", "district", "dist", "po ", "ps ", "pin", "pincode", "zip", "city", "state",
}

// legalSuffixes mark a line as a legal entity name regardless of casing.
var legalSuffixes = []string{
	"private limited", "pvt", "pvt.", "pvt ltd", "ltd", "llp", "inc", "co", "company", "limited",
}

// IsCompanyLike classifies a line as plausibly naming a legal entity rather
// than an address, label, or contact detail. A legal-entity suffix accepts
// immediately; otherwise ALL-CAPS letterhead heuristics apply.
func IsCompanyLike(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return false
	}
	low := strings.ToLower(s)
	for _, b := range companyBlocklist {
		if strings.Contains(low, b) {
			return false
		}
	}
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < 3 {
		return false
	}
	for _, sf := range legalSuffixes {
		if strings.Contains(low, sf) {
			return true
		}
	}
	compact := strings.Join(strings.Fields(s), "")
	upper := 0
	for _, r := range compact {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	digits := 0
	runes := []rune(s)
	for _, r := range runes {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	upperRatio := float64(upper) / float64(max(1, len([]rune(compact))))
	digitRatio := float64(digits) / float64(max(1, len(runes)))
	return upperRatio > 0.4 && digitRatio < 0.25
}

// NormalizeInvoiceNumber extracts the best alphanumeric token (3-24 chars,
// at least one digit) from a raw label capture. Tokens mixing letters and
// digits win over purely numeric ones; longer tokens win next. Returns ""
// when nothing plausible remains.
func NormalizeInvoiceNumber(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	candidates := reInvToken.FindAllString(s, -1)
	filtered := candidates[:0]
	for _, c := range candidates {
		if reDigit.MatchString(c) {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return ""
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		mi, mj := AlnumMix(filtered[i]), AlnumMix(filtered[j])
		if mi != mj {
			return mi
		}
		return len(filtered[i]) > len(filtered[j])
	})
	best := strings.ToUpper(filtered[0])
	if len(best) < 3 || len(best) > 24 {
		return ""
	}
	return best
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
