package extract

import "regexp"

// Sections splits a document into the header region (vendor, customer,
// identifiers) and the summary region (totals).
type Sections struct {
	Header  string
	Summary string
}

// The summary region starts at the first line opening with a total-like
// marker; everything before is header.
var reSummaryStart = regexp.MustCompile(`(?im)^[ \t]*(?:total|subtotal|amount chargeable|balance due)`)

// SplitSections degrades gracefully: with no marker the whole document is
// both header and summary.
func SplitSections(text string) Sections {
	loc := reSummaryStart.FindStringIndex(text)
	if loc == nil {
		return Sections{Header: text, Summary: text}
	}
	return Sections{Header: text[:loc[0]], Summary: text[loc[0]:]}
}
