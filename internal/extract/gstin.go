package extract

import (
	"regexp"
	"strings"
)

// GSTINPattern is the strict 15-character tax-ID shape: 2 digits, 5 letters,
// 4 digits, 1 letter, 1 alphanumeric, literal Z, 1 alphanumeric.
var GSTINPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][A-Z0-9]Z[A-Z0-9]$`)

// reGSTINScan finds tax-ID-shaped tokens anywhere in a line, case-insensitively.
var reGSTINScan = regexp.MustCompile(`(?i)\b(\d{2}[A-Z]{5}\d{4}[A-Z][A-Z0-9]Z[A-Z0-9])\b`)

var (
	customerKeywords = []string{"customer", "buyer", "bill to", "billed to", "consignee", "ship to"}
	vendorKeywords   = []string{"supplier", "vendor", "seller", "from"}
)

// Resolution carries the resolver's output: the chosen tax IDs plus a
// vendor-name hint derived from the lines around the vendor tax ID.
type Resolution struct {
	VendorGSTIN    string
	CustomerGSTIN  string
	VendorNameHint string
}

type gstinMatch struct {
	value    string
	lineIdx  int
	role     string // "vendor" | "customer" | ""
	inHeader bool
}

func hasAny(s string, keywords []string) bool {
	low := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(low, k) {
			return true
		}
	}
	return false
}

// ResolveGSTINs scans every line for tax-ID tokens, assigns each a role from
// a +/-2 line keyword window (vendor keywords win ties by being checked
// last), then picks vendor and customer IDs by the priority order described
// on each step below. headerText must be a prefix of text.
func ResolveGSTINs(text, headerText string) Resolution {
	lines := strings.Split(text, "\n")
	headerLineCount := len(strings.Split(headerText, "\n"))

	var matches []gstinMatch
	for idx, line := range lines {
		for _, m := range reGSTINScan.FindAllStringSubmatch(line, -1) {
			val := strings.ToUpper(strings.TrimSpace(m[1]))
			lo := idx - 2
			if lo < 0 {
				lo = 0
			}
			hi := idx + 3
			if hi > len(lines) {
				hi = len(lines)
			}
			neighborhood := strings.Join(lines[lo:hi], " ")
			role := ""
			if hasAny(neighborhood, customerKeywords) {
				role = "customer"
			}
			if hasAny(neighborhood, vendorKeywords) {
				role = "vendor"
			}
			matches = append(matches, gstinMatch{
				value:    val,
				lineIdx:  idx,
				role:     role,
				inHeader: idx < headerLineCount,
			})
		}
	}

	// Deduplicate by value, first occurrence wins.
	seen := make(map[string]struct{}, len(matches))
	dedup := matches[:0]
	for _, m := range matches {
		if _, ok := seen[m.value]; ok {
			continue
		}
		seen[m.value] = struct{}{}
		dedup = append(dedup, m)
	}
	matches = dedup

	if len(matches) == 0 {
		return Resolution{}
	}

	// Vendor: role-hinted strict match, else first header match, else first match.
	var vendor, customer *gstinMatch
	for i := range matches {
		if matches[i].role == "vendor" && GSTINPattern.MatchString(matches[i].value) {
			vendor = &matches[i]
			break
		}
	}
	for i := range matches {
		if matches[i].role == "customer" && GSTINPattern.MatchString(matches[i].value) {
			customer = &matches[i]
			break
		}
	}
	if vendor == nil {
		for i := range matches {
			if matches[i].inHeader {
				vendor = &matches[i]
				break
			}
		}
		if vendor == nil {
			vendor = &matches[0]
		}
	}
	if customer == nil {
		for i := range matches {
			if vendor != nil && matches[i].value != vendor.value {
				customer = &matches[i]
				break
			}
		}
	}

	res := Resolution{}
	if vendor != nil {
		res.VendorGSTIN = vendor.value
		res.VendorNameHint = vendorNameHint(lines, vendor.lineIdx)
	}
	if customer != nil {
		res.CustomerGSTIN = customer.value
	}
	return res
}

// hintBlocklist rejects lines that cannot name the vendor even when they
// otherwise look company-like.
var hintBlocklist = []string{
	"invoice", "gstin", "date", "tax invoice", "bill to", "buyer", "consignee", "ship to", "address", "store",
}

func goodVendorLine(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return false
	}
	if hasAny(s, hintBlocklist) {
		return false
	}
	if reNumericOnly.MatchString(s) {
		return false
	}
	letters := 0
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			letters++
		}
	}
	if letters < 3 {
		return false
	}
	return IsCompanyLike(s)
}

var hintSuffixes = []string{"private limited", "pvt ltd", "pvt. ltd.", "ltd", "llp", "inc", "company", "limited"}

// vendorNameHint searches backward up to 10 lines, then forward up to 3,
// preferring lines carrying a legal-entity suffix; a second pass relaxes to
// any company-like line. Truncated to 120 characters.
func vendorNameHint(lines []string, vendorIdx int) string {
	up := vendorIdx - 10
	if up < 0 {
		up = 0
	}
	down := vendorIdx + 4
	if down > len(lines) {
		down = len(lines)
	}

	withSuffix := func(s string) bool {
		low := strings.ToLower(s)
		for _, sf := range hintSuffixes {
			if strings.Contains(low, sf) {
				return true
			}
		}
		return false
	}

	for _, relaxed := range []bool{false, true} {
		for j := vendorIdx - 1; j >= up; j-- {
			cand := strings.TrimSpace(lines[j])
			if goodVendorLine(cand) && (relaxed || withSuffix(cand)) {
				return truncate(cand, 120)
			}
		}
		for j := vendorIdx + 1; j < down; j++ {
			cand := strings.TrimSpace(lines[j])
			if goodVendorLine(cand) && (relaxed || withSuffix(cand)) {
				return truncate(cand, 120)
			}
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
