package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGSTINPattern(t *testing.T) {
	assert.True(t, GSTINPattern.MatchString("29ABCDE1234F1Z5"))
	assert.False(t, GSTINPattern.MatchString("12345"))
	assert.False(t, GSTINPattern.MatchString("29ABCDE1234F1X5")) // no literal Z
	assert.False(t, GSTINPattern.MatchString("29abcde1234f1z5")) // strict form is uppercase
}

func TestResolveGSTINs_RolesFromKeywords(t *testing.T) {
	text := strings.Join([]string{
		"Supplier Details",
		"Acme Traders Pvt Ltd",
		"GST 29ABCDE1234F1Z5",
		"",
		"",
		"Bill To",
		"Some Buyer",
		"GST 07FGHIJ5678K2Z9",
	}, "\n")

	res := ResolveGSTINs(text, text)
	assert.Equal(t, "29ABCDE1234F1Z5", res.VendorGSTIN)
	assert.Equal(t, "07FGHIJ5678K2Z9", res.CustomerGSTIN)
	assert.Equal(t, "Acme Traders Pvt Ltd", res.VendorNameHint)
}

func TestResolveGSTINs_LowercaseNormalized(t *testing.T) {
	text := "Vendor copy\n29abcde1234f1z5\n"
	res := ResolveGSTINs(text, text)
	assert.Equal(t, "29ABCDE1234F1Z5", res.VendorGSTIN)
}

func TestResolveGSTINs_VendorKeywordWinsTies(t *testing.T) {
	// Both keyword families land in the window; vendor is checked last and wins.
	text := strings.Join([]string{
		"From: seller desk, Bill To: someone",
		"29ABCDE1234F1Z5",
		"",
		"",
		"",
		"Consignee copy",
		"07FGHIJ5678K2Z9",
	}, "\n")
	res := ResolveGSTINs(text, text)
	assert.Equal(t, "29ABCDE1234F1Z5", res.VendorGSTIN)
	assert.Equal(t, "07FGHIJ5678K2Z9", res.CustomerGSTIN)
}

func TestResolveGSTINs_HeaderFallback(t *testing.T) {
	// No role keywords anywhere: first header match becomes the vendor,
	// first differing value the customer.
	header := "INVOICE COPY\n11KLMNO9876P1Z2\n"
	text := header + "body\n33QRSTU4321V1Z8\n"
	res := ResolveGSTINs(text, header)
	assert.Equal(t, "11KLMNO9876P1Z2", res.VendorGSTIN)
	assert.Equal(t, "33QRSTU4321V1Z8", res.CustomerGSTIN)
}

func TestResolveGSTINs_DeduplicatesByValue(t *testing.T) {
	text := "29ABCDE1234F1Z5\nsome line\n29ABCDE1234F1Z5\n"
	res := ResolveGSTINs(text, text)
	require.Equal(t, "29ABCDE1234F1Z5", res.VendorGSTIN)
	assert.Empty(t, res.CustomerGSTIN)
}

func TestResolveGSTINs_NoMatches(t *testing.T) {
	res := ResolveGSTINs("nothing here\n", "nothing here\n")
	assert.Empty(t, res.VendorGSTIN)
	assert.Empty(t, res.CustomerGSTIN)
	assert.Empty(t, res.VendorNameHint)
}
