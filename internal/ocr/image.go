package ocr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	txt, warn, err := e.tesseractOCR(ctx, path, 0)
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE, Warnings: warn}, err
	}
	txt = Normalize(txt)

	return ExtractionResult{
		Text:       txt,
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warn,
		Confidence: heuristicConfidence(txt),
	}, nil
}

// tesseractOCR shells out as `tesseract <file> stdout -l <lang>`. A
// non-zero psm overrides the engine's automatic page segmentation.
func (e *Extractor) tesseractOCR(ctx context.Context, path string, psm int) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if psm > 0 {
		args = append(args, "--psm", strconv.Itoa(psm))
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return txt, nil, nil
}
