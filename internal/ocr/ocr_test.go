package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

type fakeRunner struct {
	outputs map[string]string // binary name -> stdout
	errs    map[string]error
	calls   [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if err := f.errs[name]; err != nil {
		return nil, []byte("boom"), err
	}
	return []byte(f.outputs[name]), nil, nil
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, nil)
	e.runner = r
	return e
}

func TestExtractText_PDFTextLayer(t *testing.T) {
	text := "ACME Pvt Ltd\nInvoice No: INV-1\nDated: 01-Jan-2024\nTotal ₹5,000.00\n"
	r := &fakeRunner{outputs: map[string]string{"pdftotext": text}}
	e := newTestExtractor(r)

	res, err := e.ExtractText(context.Background(), "/tmp/in.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, constants.PDF, res.SourceType)
	assert.Contains(t, res.Text, "Invoice No: INV-1")
	assert.Equal(t, 1, res.Pages)
	assert.InDelta(t, 0.95, float64(res.Confidence), 1e-6)

	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"pdftotext", "-layout", "-enc", "UTF-8", "-eol", "unix", "/tmp/in.pdf", "-"}, r.calls[0])
}

func TestExtractText_Image(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"tesseract": "MEGAMART RETAIL\nTotal 45.00\n"}}
	e := newTestExtractor(r)

	res, err := e.ExtractText(context.Background(), "/tmp/in.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, constants.IMAGE, res.SourceType)
	assert.Contains(t, res.Text, "MEGAMART RETAIL")
	assert.Greater(t, res.Confidence, float32(0))
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	e := newTestExtractor(&fakeRunner{})
	_, err := e.ExtractText(context.Background(), "/tmp/in.docx")
	assert.Error(t, err)
}

func TestRescan_UnsupportedExtensionIsEmptyNotError(t *testing.T) {
	e := newTestExtractor(&fakeRunner{})
	res, err := e.Rescan(context.Background(), "/tmp/in.pdf")
	require.NoError(t, err)
	assert.Empty(t, res.RawText)
	assert.True(t, res.Fields.IsEmpty())
}

func TestRescan_ImageUsesBlockSegmentation(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"tesseract": "\nSunrise Traders Pvt Ltd\nTotal 750.00\n"}}
	e := newTestExtractor(r)

	res, err := e.Rescan(context.Background(), "/tmp/scan.png")
	require.NoError(t, err)
	assert.Contains(t, res.RawText, "Total 750.00")
	assert.Equal(t, "Sunrise Traders Pvt Ltd", res.Fields.VendorName)
	assert.Equal(t, constants.TierDocTR, res.Fields.Tier)

	require.Len(t, r.calls, 1)
	assert.Contains(t, strings.Join(r.calls[0], " "), "--psm 6")
}

func TestRescan_ToolFailurePropagates(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"tesseract": errors.New("exit 1")}}
	e := newTestExtractor(r)
	_, err := e.Rescan(context.Background(), "/tmp/scan.png")
	assert.Error(t, err)
}

func TestNormalize_PreservesColumnSpacing(t *testing.T) {
	in := "Widget kit      4,000.00  \r\n\n\n\nTotal 5,000.00\r\n"
	out := Normalize(in)
	assert.Equal(t, "Widget kit      4,000.00\n\nTotal 5,000.00", out)
}
