package pipeline

import (
	"context"
	"strings"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
	"github.com/joseph-ayodele/invoice-extractor/internal/ocr"
)

// Run walks the full tier sequence for one document. Every code path
// terminates with a persisted record: SUCCESS at the first tier whose
// output validates, PARTIAL while escalation is still improving fields,
// FAILED with tier ALL_TIERS when no tier produced a single core field.
func (c *Controller) Run(ctx context.Context, filePath, text string) (Record, error) {
	c.log.Info("pipeline.run.start", "file_path", filePath, "text_len", len(text))

	// Tier 1: standalone regex attempt.
	baseline := c.extractor.Extract(text)
	baseline.Tier = constants.TierRegexOnly
	if extract.IsOutputValid(baseline) && extract.IsCompanyLike(baseline.VendorName) {
		return c.persist(ctx, filePath, baseline, constants.StatusSuccess)
	}
	c.log.Info("pipeline.tier.invalid",
		"file_path", filePath, "tier", baseline.Tier, "fields", baseline.FieldCount())

	partialPersisted := false
	if baseline.HasAnyField() {
		if rec, err := c.persist(ctx, filePath, baseline, constants.StatusPartial); err != nil {
			return rec, err
		}
		partialPersisted = true
	}

	// Tier 2: secondary OCR read, regex over the combined text, merge.
	bestText := text
	if c.rescanner != nil {
		res, err := c.rescanner.Rescan(ctx, filePath)
		if err != nil {
			c.log.Warn("pipeline.rescan.failed", "file_path", filePath, "error", err)
			res = ocr.RescanResult{}
		}
		if res.RawText != "" {
			bestText = combineTexts(text, res.RawText)
			retry := c.extractor.Extract(bestText)
			merged := extract.Merge(baseline, retry)
			if merged.VendorName == "" && extract.IsCompanyLike(res.Fields.VendorName) {
				merged.VendorName = res.Fields.VendorName
			}
			baseline = merged
			if extract.IsOutputValid(baseline) {
				return c.persist(ctx, filePath, baseline, constants.StatusSuccess)
			}
			c.log.Info("pipeline.tier.invalid",
				"file_path", filePath, "tier", baseline.Tier, "fields", baseline.FieldCount())
			// The merge changed the baseline; the store must reflect it
			// even when tier 1 already wrote a partial row.
			if baseline.HasAnyField() {
				if rec, err := c.persist(ctx, filePath, baseline, constants.StatusPartial); err != nil {
					return rec, err
				}
				partialPersisted = true
			}
		}
	}

	// Tier 3: extractive QA, folded in field by field.
	if c.cfg.EnableTextQA && c.answerer != nil {
		qf, err := c.answerer.ExtractFields(ctx, qaContext(bestText, baseline))
		if err != nil {
			c.log.Warn("pipeline.qa.failed", "file_path", filePath, "error", err)
			qf = extract.Fields{}
		}
		if !qf.HasAnyField() {
			c.log.Warn("pipeline.qa.empty", "file_path", filePath)
		} else {
			candidate := mergeQA(baseline, qf, c.cfg.QAAcceptMargin)
			if c.accepts(baseline, candidate) {
				baseline = candidate
				if extract.IsOutputValid(baseline) {
					return c.persist(ctx, filePath, baseline, constants.StatusSuccess)
				}
				if rec, err := c.persist(ctx, filePath, baseline, constants.StatusPartial); err != nil {
					return rec, err
				}
				partialPersisted = true
			} else {
				c.log.Info("pipeline.qa.rejected",
					"file_path", filePath,
					"baseline_fields", baseline.FieldCount(),
					"candidate_fields", candidate.FieldCount())
			}
		}
	}

	// Tier 4: LLM completion, accepted wholesale or not at all.
	if c.completer != nil {
		lf, _, err := c.completer.ExtractFields(ctx, bestText)
		if err != nil {
			c.log.Warn("pipeline.llm.failed", "file_path", filePath, "error", err)
			lf = extract.Fields{}
		}
		if !lf.HasAnyField() {
			c.log.Warn("pipeline.llm.empty", "file_path", filePath)
		} else if c.accepts(baseline, lf) {
			baseline = lf
			if extract.IsOutputValid(baseline) {
				return c.persist(ctx, filePath, baseline, constants.StatusSuccess)
			}
			return c.persist(ctx, filePath, baseline, constants.StatusPartial)
		} else {
			c.log.Info("pipeline.llm.rejected",
				"file_path", filePath,
				"baseline_fields", baseline.FieldCount(),
				"candidate_fields", lf.FieldCount())
		}
	}

	// Terminal: every tier ran and nothing produced a core field.
	if !baseline.HasAnyField() {
		failed := extract.Fields{Tier: constants.TierAllTiers}
		return c.persist(ctx, filePath, failed, constants.StatusFailed)
	}
	if !partialPersisted {
		return c.persist(ctx, filePath, baseline, constants.StatusPartial)
	}
	return Record{FilePath: filePath, Fields: baseline, Status: constants.StatusPartial}, nil
}

// accepts applies the field-count heuristic gating Text_QA and LLM
// candidates: strictly more populated core fields, or invalid baseline
// turned valid.
func (c *Controller) accepts(baseline, candidate extract.Fields) bool {
	if candidate.FieldCount() > baseline.FieldCount() {
		return true
	}
	return !extract.IsOutputValid(baseline) && extract.IsOutputValid(candidate)
}

func (c *Controller) persist(ctx context.Context, filePath string, f extract.Fields, status constants.ExtractionStatus) (Record, error) {
	rec := Record{FilePath: filePath, Fields: f, Status: status}
	if err := c.store.Upsert(ctx, rec); err != nil {
		c.log.Error("pipeline.persist.failed", "file_path", filePath, "status", status, "error", err)
		return rec, err
	}
	c.log.Info("pipeline.persist.ok",
		"file_path", filePath,
		"status", status,
		"tier", f.Tier,
		"fields", f.FieldCount())
	return rec, nil
}

// qaContext appends the baseline's vendor name and invoice number to the
// document text so the model can re-confirm fields earlier tiers found.
func qaContext(text string, baseline extract.Fields) string {
	extra := ""
	if baseline.VendorName != "" {
		extra += "\n" + baseline.VendorName
	}
	if baseline.InvoiceNumber != "" {
		extra += "\n" + baseline.InvoiceNumber
	}
	return text + extra
}

// combineTexts appends lines from the secondary read that the primary
// text does not already contain, preserving order.
func combineTexts(primary, secondary string) string {
	seen := make(map[string]struct{})
	for _, ln := range strings.Split(primary, "\n") {
		seen[strings.TrimSpace(ln)] = struct{}{}
	}
	out := []string{primary}
	for _, ln := range strings.Split(secondary, "\n") {
		key := strings.TrimSpace(ln)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ln)
	}
	return strings.Join(out, "\n")
}
