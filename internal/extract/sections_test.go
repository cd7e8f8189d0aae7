package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSections(t *testing.T) {
	t.Run("splits at first total marker", func(t *testing.T) {
		text := "ACME CORP\nInvoice No: 123\nTotal ₹500.00\nThank you\n"
		s := SplitSections(text)
		assert.Equal(t, "ACME CORP\nInvoice No: 123\n", s.Header)
		assert.Equal(t, "Total ₹500.00\nThank you\n", s.Summary)
	})

	t.Run("marker is case-insensitive and line-anchored", func(t *testing.T) {
		text := "header\n  SUBTOTAL 100\nrest"
		s := SplitSections(text)
		assert.Equal(t, "header\n", s.Header)
		assert.Equal(t, "  SUBTOTAL 100\nrest", s.Summary)
	})

	t.Run("mid-line total does not split", func(t *testing.T) {
		text := "Grand hotel\nsum: total inline\n"
		s := SplitSections(text)
		assert.Equal(t, text, s.Header)
		assert.Equal(t, text, s.Summary)
	})

	t.Run("no marker degrades to full text for both", func(t *testing.T) {
		text := "just a header\nno markers here\n"
		s := SplitSections(text)
		assert.Equal(t, text, s.Header)
		assert.Equal(t, text, s.Summary)
	})
}
