package ocr

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// RescanResult is the outcome of the secondary OCR pass.
type RescanResult struct {
	RawText string
	Fields  extract.Fields
}

// Rescan re-reads an image with block page segmentation, trading layout
// fidelity for recall on photographed or skewed documents. Only png, jpg
// and jpeg inputs are supported; anything else yields an empty result
// without an error so the caller can move on to the next strategy.
func (e *Extractor) Rescan(ctx context.Context, path string) (RescanResult, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if !constants.IsImageExt(ext) {
		e.logger.Debug("ocr.rescan.skipped", "path", path, "ext", ext)
		return RescanResult{}, nil
	}

	txt, _, err := e.tesseractOCR(ctx, path, 6)
	if err != nil {
		return RescanResult{}, err
	}
	txt = Normalize(txt)

	fields := extract.Fields{Tier: constants.TierDocTR}
	for _, ln := range strings.Split(txt, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			if len(ln) > 120 {
				ln = ln[:120]
			}
			fields.VendorName = ln
			break
		}
	}

	e.logger.Debug("ocr.rescan.done", "path", path, "text_len", len(txt))
	return RescanResult{RawText: txt, Fields: fields}, nil
}
