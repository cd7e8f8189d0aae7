package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
	"github.com/joseph-ayodele/invoice-extractor/internal/llm"
)

const systemPrompt = "You are an invoice parser. Respond with ONLY a minified JSON object with exactly these keys: " +
	`"vendor_name" (string or null), "invoice_number" (string or null), ` +
	`"invoice_date" (ISO YYYY-MM-DD string or null), "total_amount" (number or null), ` +
	`"vendor_gstin" (string or null), "customer_gstin" (string or null). ` +
	"Use null for anything not present in the document. No prose, no markdown."

// ExtractFields implements llm.FieldExtractor using text-only chat/completions.
func (c *Client) ExtractFields(ctx context.Context, text string) (extract.Fields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	if len(text) > c.cfg.MaxContextChars {
		text = text[:c.cfg.MaxContextChars]
	}

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": "Invoice Text:\n" + text},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, _, httpErr := llm.SendJSON(ctx, c.httpClient, endpoint, body,
		map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}, c.log)
	if httpErr != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.Fields{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
		)
		return extract.Fields{}, raw, fmt.Errorf("decode chat response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices", "req_id", rid, "raw", string(raw))
		return extract.Fields{}, raw, fmt.Errorf("no choices in chat response")
	}

	content, ok := llm.ExtractJSONObject(cc.Choices[0].Message.Content)
	if !ok {
		c.log.Error("llm.extract.no_json_object",
			"req_id", rid, "content", cc.Choices[0].Message.Content,
		)
		return extract.Fields{}, raw, fmt.Errorf("no JSON object in model content")
	}

	schema := llm.BuildInvoiceJSONSchema()
	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(content),
		)
		return extract.Fields{}, content, fmt.Errorf("schema validation failed: %w", err)
	}

	var payload llm.InvoicePayload
	if err := json.Unmarshal(content, &payload); err != nil {
		c.log.Error("llm.extract.unmarshal_failed", "req_id", rid, "error", err)
		return extract.Fields{}, content, fmt.Errorf("unmarshal fields: %w", err)
	}

	out := llm.PayloadToFields(payload)
	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"vendor", out.VendorName,
		"number", out.InvoiceNumber,
		"date", out.InvoiceDate,
		"has_total", out.TotalAmount != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}
