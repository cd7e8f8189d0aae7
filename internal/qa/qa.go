package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
	"github.com/joseph-ayodele/invoice-extractor/internal/llm"
)

// One fixed question per field. Extractive QA answers with a span of the
// context, so questions name the exact thing the span should cover.
var questions = []struct {
	field    string
	question string
}{
	{"vendor_name", "What is the legal name of the vendor or seller?"},
	{"invoice_number", "What is the invoice number?"},
	{"invoice_date", "What is the invoice date?"},
	{"total_amount", "What is the grand total amount payable?"},
	{"vendor_gstin", "What is the GSTIN of the vendor or seller?"},
	{"customer_gstin", "What is the GSTIN of the customer or buyer?"},
}

// ExtractFields asks the endpoint one question per field and keeps only
// answers that survive the per-field plausibility gates. Individual
// question failures are logged and skipped; only a fully dead endpoint
// surfaces as an error.
func (c *Client) ExtractFields(ctx context.Context, text string) (extract.Fields, error) {
	rid := uuid.New().String()
	start := time.Now()

	if len(text) > c.cfg.MaxContextChars {
		text = text[:c.cfg.MaxContextChars]
	}

	c.log.Info("qa.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"context_len", len(text),
	)

	out := extract.Fields{Tier: constants.TierTextQA}
	answered := 0
	failed := 0
	for _, q := range questions {
		answer, score, err := c.ask(ctx, q.question, text)
		if err != nil {
			failed++
			c.log.Warn("qa.question.failed",
				"req_id", rid, "field", q.field, "error", err,
			)
			continue
		}
		answered++
		applyAnswer(&out, q.field, answer, c.cfg.TotalFloor)
		c.log.Debug("qa.question.answered",
			"req_id", rid, "field", q.field, "score", score,
		)
	}
	if answered == 0 && failed > 0 {
		return extract.Fields{}, fmt.Errorf("qa endpoint unreachable: %d/%d questions failed", failed, len(questions))
	}

	c.log.Info("qa.extract.ok",
		"req_id", rid,
		"answered", answered,
		"fields", out.FieldCount(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (c *Client) ask(ctx context.Context, question, context_ string) (string, float64, error) {
	body := map[string]any{
		"inputs": map[string]string{
			"question": question,
			"context":  context_,
		},
	}
	headers := map[string]string{}
	if c.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.cfg.APIKey
	}

	raw, _, err := llm.SendJSON(ctx, c.httpClient, c.cfg.Endpoint, body, headers, c.log)
	if err != nil {
		return "", 0, err
	}

	var resp struct {
		Answer string  `json:"answer"`
		Score  float64 `json:"score"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", 0, fmt.Errorf("decode qa response: %w", err)
	}
	return resp.Answer, resp.Score, nil
}
