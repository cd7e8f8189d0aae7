package qa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

func TestExtractFields_EndToEnd(t *testing.T) {
	answers := map[string]string{
		"legal name":            "Sunrise Traders Pvt Ltd",
		"invoice number":        "INV/22/001",
		"invoice date":          "01-Jan-2024",
		"grand total":           "₹5,000.00",
		"GSTIN of the vendor":   "29ABCDE1234F1Z5",
		"GSTIN of the customer": "07FGHIJ5678K2Z9",
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Inputs struct {
				Question string `json:"question"`
				Context  string `json:"context"`
			} `json:"inputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Inputs.Context)

		answer := ""
		for key, a := range answers {
			if strings.Contains(req.Inputs.Question, key) {
				answer = a
				break
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"answer": answer, "score": 0.91})
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, nil)
	f, err := c.ExtractFields(context.Background(), "Sunrise Traders Pvt Ltd\nInvoice No: INV/22/001\nTotal ₹5,000.00\n")
	require.NoError(t, err)

	assert.Equal(t, "Sunrise Traders Pvt Ltd", f.VendorName)
	assert.Equal(t, "INV/22/001", f.InvoiceNumber)
	assert.Equal(t, "2024-01-01", f.InvoiceDate)
	require.NotNil(t, f.TotalAmount)
	assert.InDelta(t, 5000.0, *f.TotalAmount, 1e-9)
	assert.Equal(t, "29ABCDE1234F1Z5", f.VendorGSTIN)
	assert.Equal(t, "07FGHIJ5678K2Z9", f.CustomerGSTIN)
	assert.Equal(t, constants.TierTextQA, f.Tier)
}

func TestExtractFields_DeadEndpointIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, nil)
	_, err := c.ExtractFields(context.Background(), "whatever")
	assert.Error(t, err)
}

func TestExtractFields_CapsContext(t *testing.T) {
	var seen int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Inputs struct {
				Context string `json:"context"`
			} `json:"inputs"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		seen = len(req.Inputs.Context)
		_ = json.NewEncoder(w).Encode(map[string]any{"answer": "", "score": 0.0})
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, MaxContextChars: 100}, nil)
	_, err := c.ExtractFields(context.Background(), strings.Repeat("x", 500))
	require.NoError(t, err)
	assert.Equal(t, 100, seen)
}
