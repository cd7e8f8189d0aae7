package pipeline

import (
	"context"
	"fmt"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// RunTier executes a single named tier in isolation and persists its
// outcome. Used for manual reprocessing, typically with the tier from
// AlternativeTier. Unlike Run, collaborator errors surface to the
// caller; a manual request deserves a real answer about why it failed.
func (c *Controller) RunTier(ctx context.Context, filePath, text string, tier constants.ProcessingTier) (Record, error) {
	var f extract.Fields

	switch tier {
	case constants.TierRegexOnly, constants.TierRegex:
		f = c.extractor.Extract(text)
		f.Tier = tier

	case constants.TierRegexDocTR:
		f = c.extractor.Extract(text)
		if c.rescanner != nil {
			res, err := c.rescanner.Rescan(ctx, filePath)
			if err != nil {
				return Record{}, fmt.Errorf("rescan %s: %w", filePath, err)
			}
			if res.RawText != "" {
				retry := c.extractor.Extract(combineTexts(text, res.RawText))
				f = extract.Merge(f, retry)
				if f.VendorName == "" && extract.IsCompanyLike(res.Fields.VendorName) {
					f.VendorName = res.Fields.VendorName
				}
			}
		}
		f.Tier = constants.TierRegexDocTR

	case constants.TierTextQA:
		if c.answerer == nil {
			return Record{}, fmt.Errorf("qa collaborator not configured")
		}
		qf, err := c.answerer.ExtractFields(ctx, text)
		if err != nil {
			return Record{}, fmt.Errorf("qa extract: %w", err)
		}
		f = qf

	case constants.TierLLM:
		if c.completer == nil {
			return Record{}, fmt.Errorf("llm collaborator not configured")
		}
		lf, _, err := c.completer.ExtractFields(ctx, text)
		if err != nil {
			return Record{}, fmt.Errorf("llm extract: %w", err)
		}
		f = lf

	default:
		return Record{}, fmt.Errorf("unknown tier %q", tier)
	}

	status := constants.StatusFailed
	switch {
	case extract.IsOutputValid(f):
		status = constants.StatusSuccess
	case f.HasAnyField():
		status = constants.StatusPartial
	}
	return c.persist(ctx, filePath, f, status)
}
