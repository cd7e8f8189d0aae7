package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

func TestExtract_TypicalInvoice(t *testing.T) {
	text := strings.Join([]string{
		"ABC Pvt Ltd",
		"Bengaluru",
		"Invoice No: INV/22/001",
		"Dated: 01-Jan-2024",
		"",
		"Widget assembly kit      4,000.00",
		"Service charge           1,000.00",
		"Total ₹5,000.00",
	}, "\n")

	f := Extractor{}.Extract(text)
	assert.Equal(t, "ABC Pvt Ltd", f.VendorName)
	assert.Equal(t, "INV/22/001", f.InvoiceNumber)
	assert.Equal(t, "2024-01-01", f.InvoiceDate)
	require.NotNil(t, f.TotalAmount)
	assert.InDelta(t, 5000.0, *f.TotalAmount, 1e-9)
	assert.Equal(t, constants.TierRegex, f.Tier)
	require.Len(t, f.LineItems, 2)
	assert.Equal(t, "Widget assembly kit", f.LineItems[0].Description)
	assert.InDelta(t, 4000.0, f.LineItems[0].Amount, 1e-9)
}

func TestExtract_GrandTotalBeatsLabeledPattern(t *testing.T) {
	text := strings.Join([]string{
		"MEGAMART RETAIL",
		"Invoice #A1B2C3",
		"Total 120.00",
		"Grand Total 999.00",
	}, "\n")

	f := Extractor{}.Extract(text)
	require.NotNil(t, f.TotalAmount)
	assert.InDelta(t, 999.0, *f.TotalAmount, 1e-9)
}

func TestExtract_QuantityTokensLoseOnTotalLines(t *testing.T) {
	// A stray quantity on a "Total qty" line must not shadow the real amount.
	text := "SHOP FLOOR SUPPLIES LLP\nTotal qty 3\nTotal 45.00\n"
	f := Extractor{}.Extract(text)
	require.NotNil(t, f.TotalAmount)
	assert.InDelta(t, 45.0, *f.TotalAmount, 1e-9)
}

func TestExtract_FallbackLargestNumberNeedsFloor(t *testing.T) {
	// No total-like line at all: the largest number anywhere counts only at
	// or above the floor.
	f := Extractor{}.Extract("ACME LOGISTICS LLP\nweight 35 kg\nref 80\n")
	assert.Nil(t, f.TotalAmount)

	// Unseparated "3500" tokenizes as 350 and 0 (see CleanAmount), so the
	// fallback lands on 350.
	f = Extractor{}.Extract("ACME LOGISTICS LLP\ncharge note 3500\n")
	require.NotNil(t, f.TotalAmount)
	assert.InDelta(t, 350.0, *f.TotalAmount, 1e-9)
}

func TestExtract_BareDateFallbackScansHeaderOnly(t *testing.T) {
	// No "Dated"/"Invoice Date" label anywhere: bare numeric dates are
	// picked up from the header region only.
	text := "ACME LOGISTICS LLP\n04/05/2024\nTotal 500.00\n12/31/2024\n"
	f := Extractor{}.Extract(text)
	assert.Equal(t, "2024-04-05", f.InvoiceDate)
}

func TestExtract_VendorPreparedByFallback(t *testing.T) {
	text := strings.Join([]string{
		"Tax Invoice",
		"Prepared By: Sunrise Traders Pvt Ltd",
		"Total 750.00",
	}, "\n")
	f := Extractor{}.Extract(text)
	assert.Equal(t, "Sunrise Traders Pvt Ltd", f.VendorName)
}

func TestExtract_VendorDiscardedWhenNotCompanyLike(t *testing.T) {
	f := Extractor{}.Extract("some lowercase words only\nmore words here\nTotal 500.00\n")
	assert.Empty(t, f.VendorName)
}

func TestExtract_GSTINsDelegatedToResolver(t *testing.T) {
	text := strings.Join([]string{
		"Supplier: ACME STEEL WORKS",
		"29ABCDE1234F1Z5",
		"",
		"",
		"Bill To: buyer desk",
		"07FGHIJ5678K2Z9",
		"Total 2,500.00",
	}, "\n")
	f := Extractor{}.Extract(text)
	assert.Equal(t, "29ABCDE1234F1Z5", f.VendorGSTIN)
	assert.Equal(t, "07FGHIJ5678K2Z9", f.CustomerGSTIN)
}
