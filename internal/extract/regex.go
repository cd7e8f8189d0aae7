package extract

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

// Field extraction order matters: each list is a fixed priority chain and
// the first match wins.
var invoiceNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)Invoice\s*No\.?\s*[:#-]?\s*([A-Z0-9/-]{3,})`),
	regexp.MustCompile(`(?im)Invoice\s*#\s*([A-Z0-9/-]{3,})`),
	regexp.MustCompile(`(?im)Invoice\s*Number\s*[:#-]?\s*([A-Z0-9/-]{3,})`),
	regexp.MustCompile(`(?im)Invoice Code\s*[:#-]?\s*([A-Z0-9/-]{3,})`),
	regexp.MustCompile(`(?im)Tax Invoice#\s*([A-Z0-9/-]{3,})`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)Dated\s*[:\s]*(\d{1,2}[-/][A-Za-z]{3,}[-/]\d{2,4})`),
	regexp.MustCompile(`(?im)Invoice Date\s*[:\s]*(\d{1,2}[-/][A-Za-z]{3,}[-/]\d{2,4})`),
	regexp.MustCompile(`(?im)Dt[:\s]*(\d{2}/\d{2}/\d{4})`),
	regexp.MustCompile(`(?im)(\d{1,2}[-/][A-Za-z]{3,}[-/]\d{2,4})`),
}

var totalAmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)BALANCE DUE\s*₹?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?im)Total Amount after Tax\s*₹?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?im)Total\s*₹?\s*([0-9,]+(?:\.\d{2})?)`),
}

var (
	reBareDateAlpha = regexp.MustCompile(`\b\d{1,2}-[A-Za-z]{3}-\d{2,4}\b`)
	reBareDateNum   = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	reLineAmount    = regexp.MustCompile(`₹?\s*([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{2})?)`)
	reAmountThenTot = regexp.MustCompile(`(?i)₹?\s*([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{2})?)\s+total\b`)
	reTotalLabelEnd = regexp.MustCompile(`(?i)(grand\s+total|total\s*amount|total|amount\s*\(inr\))[:\s]*₹?\s*([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{2})?)\s*$`)
	rePreparedBy    = regexp.MustCompile(`(?im)^\s*Prepared\s*By\s*[:\-]\s*(.+)$`)
	reForLabel      = regexp.MustCompile(`(?im)^\s*For\s+(.+?)\s*$`)
	reStoreMarker   = regexp.MustCompile(`(?im)\bstore\s*(?:contact|manager)\b`)
	reEnumLine      = regexp.MustCompile(`^\d+\)?$`)
	reItemLine      = regexp.MustCompile(`^(.{3,80}?)\s{2,}₹?\s*([0-9]{1,3}(?:,[0-9]{3})*\.[0-9]{2})$`)
)

var totalKeywords = []string{"total", "amount chargeable", "grand total", "amount (inr)"}

// Extractor applies the tier-1 regex strategy: segment, resolve tax IDs,
// then extract each field through its fixed priority chain.
type Extractor struct {
	// FallbackAmountFloor gates the last-resort "largest number anywhere"
	// total fallback. Zero means the default of 100.
	FallbackAmountFloor float64
}

// Extract produces a first structured guess from raw document text,
// tagged Regex. The caller retags to RegexOnly on the standalone first
// attempt.
func (e Extractor) Extract(text string) Fields {
	floor := e.FallbackAmountFloor
	if floor <= 0 {
		floor = 100
	}

	sections := SplitSections(text)
	resolution := ResolveGSTINs(text, sections.Header)

	out := Fields{
		VendorGSTIN:   resolution.VendorGSTIN,
		CustomerGSTIN: resolution.CustomerGSTIN,
		Tier:          constants.TierRegex,
	}

	out.VendorName = e.extractVendorName(text, sections, resolution)
	out.InvoiceNumber = NormalizeInvoiceNumber(findFirstMatch(text, invoiceNumberPatterns))

	rawDate := findFirstMatch(text, datePatterns)
	if rawDate == "" {
		if m := reBareDateAlpha.FindString(sections.Header); m != "" {
			rawDate = m
		} else if m := reBareDateNum.FindString(sections.Header); m != "" {
			rawDate = m
		}
	}
	out.InvoiceDate = ParseDate(rawDate)

	out.TotalAmount, out.RawTotal = e.extractTotal(text, sections.Summary, floor)
	out.LineItems = extractLineItems(sections.Header)
	return out
}

func findFirstMatch(text string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractTotal prefers the grand-total scanner, then the labeled summary
// patterns, then as a last resort the largest number anywhere at or above
// the floor. That final fallback is a broad heuristic that can misfire on
// large non-monetary numbers; raise the floor to effectively disable it.
func (e Extractor) extractTotal(text, summary string, floor float64) (*float64, string) {
	if v, raw, ok := extractGrandTotal(text); ok {
		return Amount(v), raw
	}
	if raw := findFirstMatch(summary, totalAmountPatterns); raw != "" {
		if v, ok := CleanAmount(raw); ok {
			return Amount(v), raw
		}
	}
	best := 0.0
	found := false
	for _, tok := range reAmountToken.FindAllString(text, -1) {
		if v, ok := CleanAmount(tok); ok && (!found || v > best) {
			best = v
			found = true
		}
	}
	if found && best >= floor {
		return Amount(best), ""
	}
	return nil, ""
}

// extractGrandTotal collects every amount on total-keyword lines and returns
// the maximum. When the maximum is under 10 and other candidates exist, the
// maximum among candidates >= 10 wins instead (filters stray quantity
// tokens).
func extractGrandTotal(text string) (float64, string, bool) {
	type candidate struct {
		value float64
		raw   string
	}
	var candidates []candidate
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		low := strings.ToLower(ln)
		if !hasAny(low, totalKeywords) {
			continue
		}
		for _, m := range reAmountThenTot.FindAllStringSubmatch(low, -1) {
			if v, ok := CleanAmount(m[1]); ok {
				candidates = append(candidates, candidate{v, m[1]})
			}
		}
		if m := reTotalLabelEnd.FindStringSubmatch(low); m != nil {
			if v, ok := CleanAmount(m[2]); ok {
				candidates = append(candidates, candidate{v, m[2]})
			}
		}
		if strings.Contains(low, "total") {
			for _, m := range reLineAmount.FindAllStringSubmatch(ln, -1) {
				if v, ok := CleanAmount(m[1]); ok {
					candidates = append(candidates, candidate{v, m[1]})
				}
			}
		}
	}
	if len(candidates) == 0 {
		return 0, "", false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.value > best.value {
			best = c
		}
	}
	if best.value < 10 && len(candidates) > 1 {
		for _, c := range candidates {
			if c.value >= 10 && (best.value < 10 || c.value > best.value) {
				best = c
			}
		}
	}
	return best.value, best.raw, true
}

// extractVendorName walks the fallback chain: header candidate lines, the
// resolver's hint, "Prepared By:", "For <name>", lines near a store
// contact/manager marker, then the longest company-like line among the
// first 30 header lines. A final name failing the company-likeness check is
// discarded unless the resolver's hint independently passes.
func (e Extractor) extractVendorName(text string, sections Sections, resolution Resolution) string {
	headerLines := nonEmptyLines(sections.Header)

	var candidates []string
	for _, ln := range headerLines {
		low := strings.ToLower(ln)
		if strings.Contains(low, "invoice") || strings.Contains(low, "gstin") || strings.HasPrefix(low, "dated") {
			break
		}
		if reEnumLine.MatchString(ln) || len(ln) < 3 {
			continue
		}
		if IsCompanyLike(ln) {
			candidates = append(candidates, ln)
		}
	}

	vendorName := ""
	if len(candidates) > 0 {
		kept := candidates[:0]
		for _, c := range candidates {
			if !reNumericOnly.MatchString(c) {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			kept = candidates
		}
		vendorName = truncate(longest(kept), 120)
	}
	if vendorName == "" && len(headerLines) > 0 {
		vendorName = truncate(headerLines[0], 120)
	}

	if hint := resolution.VendorNameHint; hint != "" && IsCompanyLike(hint) {
		if vendorName == "" || (len(hint) > len(vendorName) && !strings.Contains(strings.ToLower(vendorName), strings.ToLower(hint))) {
			vendorName = hint
		}
	}

	if vendorName == "" || strings.Contains(strings.ToLower(vendorName), "invoice") {
		if m := rePreparedBy.FindStringSubmatch(text); m != nil {
			if cand := strings.TrimSpace(m[1]); IsCompanyLike(cand) {
				vendorName = truncate(cand, 120)
			}
		}
		if vendorName == "" {
			if m := reForLabel.FindStringSubmatch(text); m != nil {
				if cand := strings.TrimSpace(m[1]); IsCompanyLike(cand) {
					vendorName = truncate(cand, 120)
				}
			}
		}
		if vendorName == "" {
			vendorName = vendorNearStoreMarker(text)
		}
		if vendorName == "" || strings.Contains(strings.ToLower(vendorName), "invoice") {
			scan := headerLines
			if len(scan) > 30 {
				scan = scan[:30]
			}
			var companyLines []string
			for _, ln := range scan {
				if IsCompanyLike(ln) {
					companyLines = append(companyLines, ln)
				}
			}
			if len(companyLines) > 0 {
				vendorName = truncate(longest(companyLines), 120)
			}
		}
	}

	if vendorName != "" && !IsCompanyLike(vendorName) {
		if hint := resolution.VendorNameHint; hint != "" && IsCompanyLike(hint) {
			vendorName = hint
		} else {
			vendorName = ""
		}
	}
	return vendorName
}

// vendorNearStoreMarker scans backward up to 6 lines from a store
// contact/manager marker for a company-like line.
func vendorNearStoreMarker(text string) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if !reStoreMarker.MatchString(ln) {
			continue
		}
		lo := i - 6
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < i; j++ {
			if cand := strings.TrimSpace(lines[j]); IsCompanyLike(cand) {
				return truncate(cand, 120)
			}
		}
	}
	return ""
}

// extractLineItems is best-effort: description columns followed by a
// trailing decimal amount inside the header region, skipping label and
// total lines. Population is not required for validity.
func extractLineItems(header string) []LineItem {
	var items []LineItem
	for _, ln := range strings.Split(header, "\n") {
		ln = strings.TrimRight(ln, " \t")
		m := reItemLine.FindStringSubmatch(strings.TrimLeft(ln, " \t"))
		if m == nil {
			continue
		}
		desc := strings.TrimSpace(m[1])
		low := strings.ToLower(desc)
		if hasAny(low, totalKeywords) || strings.Contains(low, "invoice") || strings.Contains(low, "gstin") {
			continue
		}
		if !reLetter.MatchString(desc) {
			continue
		}
		v, ok := CleanAmount(m[2])
		if !ok {
			continue
		}
		items = append(items, LineItem{Description: desc, Amount: v})
		if len(items) == 20 {
			break
		}
	}
	return items
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, ln := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func longest(ss []string) string {
	best := ""
	for _, s := range ss {
		if len(s) > len(best) {
			best = s
		}
	}
	return best
}
