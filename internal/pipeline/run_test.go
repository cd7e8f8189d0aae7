package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
	"github.com/joseph-ayodele/invoice-extractor/internal/ocr"
)

type fakeStore struct {
	recs []Record
	err  error
}

func (s *fakeStore) Upsert(_ context.Context, r Record) error {
	if s.err != nil {
		return s.err
	}
	s.recs = append(s.recs, r)
	return nil
}

type fakeRescanner struct {
	res   ocr.RescanResult
	err   error
	calls int
}

func (f *fakeRescanner) Rescan(context.Context, string) (ocr.RescanResult, error) {
	f.calls++
	return f.res, f.err
}

type fakeAnswerer struct {
	f       extract.Fields
	err     error
	calls   int
	gotText string
}

func (f *fakeAnswerer) ExtractFields(_ context.Context, text string) (extract.Fields, error) {
	f.calls++
	f.gotText = text
	return f.f, f.err
}

type fakeCompleter struct {
	f     extract.Fields
	err   error
	calls int
}

func (f *fakeCompleter) ExtractFields(context.Context, string) (extract.Fields, []byte, error) {
	f.calls++
	return f.f, nil, f.err
}

func newController(re *fakeRescanner, qa *fakeAnswerer, llm *fakeCompleter, st *fakeStore) *Controller {
	var (
		rs Rescanner
		an Answerer
		co Completer
	)
	if re != nil {
		rs = re
	}
	if qa != nil {
		an = qa
	}
	if llm != nil {
		co = llm
	}
	return NewController(Config{EnableTextQA: true}, rs, an, co, st, nil)
}

const goodText = "ABC Pvt Ltd\nBengaluru\nInvoice No: INV/22/001\nDated: 01-Jan-2024\n\nTotal ₹5,000.00\n"

func TestRun_SuccessAtTierOne(t *testing.T) {
	st := &fakeStore{}
	re := &fakeRescanner{}
	qa := &fakeAnswerer{}
	llm := &fakeCompleter{}
	c := newController(re, qa, llm, st)

	rec, err := c.Run(context.Background(), "/inv/a.pdf", goodText)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusSuccess, rec.Status)
	assert.Equal(t, constants.TierRegexOnly, rec.Fields.Tier)
	assert.Equal(t, "ABC Pvt Ltd", rec.Fields.VendorName)
	assert.Equal(t, "INV/22/001", rec.Fields.InvoiceNumber)
	assert.Equal(t, "2024-01-01", rec.Fields.InvoiceDate)
	require.NotNil(t, rec.Fields.TotalAmount)
	assert.InDelta(t, 5000.0, *rec.Fields.TotalAmount, 1e-9)

	// Escalation never proceeds past the first tier whose output validates.
	assert.Zero(t, re.calls)
	assert.Zero(t, qa.calls)
	assert.Zero(t, llm.calls)
	require.Len(t, st.recs, 1)
}

func TestRun_AllTiersFail(t *testing.T) {
	st := &fakeStore{}
	re := &fakeRescanner{}
	qa := &fakeAnswerer{}
	llm := &fakeCompleter{}
	c := newController(re, qa, llm, st)

	rec, err := c.Run(context.Background(), "/inv/junk.png", "???\n!!!\n")
	require.NoError(t, err)

	assert.Equal(t, constants.StatusFailed, rec.Status)
	assert.Equal(t, constants.TierAllTiers, rec.Fields.Tier)
	assert.False(t, rec.Fields.HasAnyField())

	assert.Equal(t, 1, re.calls)
	assert.Equal(t, 1, qa.calls)
	assert.Equal(t, 1, llm.calls)
	require.Len(t, st.recs, 1)
	assert.Equal(t, constants.StatusFailed, st.recs[0].Status)
}

func TestRun_RescanMergeReachesSuccess(t *testing.T) {
	st := &fakeStore{}
	re := &fakeRescanner{res: ocr.RescanResult{
		RawText: "Total ₹5,000.00",
		Fields:  extract.Fields{VendorName: "ABC Pvt Ltd", Tier: constants.TierDocTR},
	}}
	c := newController(re, nil, nil, st)

	rec, err := c.Run(context.Background(), "/inv/b.png", "ABC Pvt Ltd\nInvoice No: INV/22/001\n")
	require.NoError(t, err)

	assert.Equal(t, constants.StatusSuccess, rec.Status)
	assert.Equal(t, constants.TierRegexDocTR, rec.Fields.Tier)
	assert.Equal(t, "ABC Pvt Ltd", rec.Fields.VendorName)
	require.NotNil(t, rec.Fields.TotalAmount)
	assert.InDelta(t, 5000.0, *rec.Fields.TotalAmount, 1e-9)

	// Partial first, then success, both through the store.
	require.Len(t, st.recs, 2)
	assert.Equal(t, constants.StatusPartial, st.recs[0].Status)
	assert.Equal(t, constants.StatusSuccess, st.recs[1].Status)
}

func TestRun_RescanImprovementPersisted(t *testing.T) {
	st := &fakeStore{}
	re := &fakeRescanner{res: ocr.RescanResult{RawText: "Dated: 01-Jan-2024"}}
	c := newController(re, nil, nil, st)

	rec, err := c.Run(context.Background(), "/inv/i.png", "ABC Pvt Ltd\nInvoice No: INV/22/001\n")
	require.NoError(t, err)

	// Still no total, so the run ends PARTIAL, but the stored row must be
	// the merged snapshot rather than the tier-1 one.
	assert.Equal(t, constants.StatusPartial, rec.Status)
	assert.Equal(t, constants.TierRegexDocTR, rec.Fields.Tier)
	assert.Equal(t, "2024-01-01", rec.Fields.InvoiceDate)

	require.Len(t, st.recs, 2)
	assert.Equal(t, constants.TierRegexOnly, st.recs[0].Fields.Tier)
	assert.Equal(t, rec.Fields, st.recs[1].Fields)
	assert.Equal(t, rec.Status, st.recs[1].Status)
}

func TestRun_QAContextCarriesKnownFields(t *testing.T) {
	st := &fakeStore{}
	qa := &fakeAnswerer{}
	c := newController(nil, qa, nil, st)

	_, err := c.Run(context.Background(), "/inv/j.pdf", "ABC Pvt Ltd\nInvoice No: INV/22/001\n")
	require.NoError(t, err)

	// The question context ends with the fields the regex tier already
	// found, so the model can re-confirm them.
	assert.True(t, strings.HasSuffix(qa.gotText, "\nABC Pvt Ltd\nINV/22/001"))
}

func TestRun_QAFillsMissingTotal(t *testing.T) {
	st := &fakeStore{}
	qa := &fakeAnswerer{f: extract.Fields{
		TotalAmount: extract.Amount(5000),
		Tier:        constants.TierTextQA,
	}}
	c := newController(nil, qa, nil, st)

	rec, err := c.Run(context.Background(), "/inv/c.pdf", "ABC Pvt Ltd\nInvoice No: INV/22/001\n")
	require.NoError(t, err)

	assert.Equal(t, constants.StatusSuccess, rec.Status)
	assert.Equal(t, constants.TierTextQA, rec.Fields.Tier)
	assert.Equal(t, "ABC Pvt Ltd", rec.Fields.VendorName)
	assert.Equal(t, "INV/22/001", rec.Fields.InvoiceNumber)
	require.NotNil(t, rec.Fields.TotalAmount)
}

func TestRun_QARejectedWithoutImprovement(t *testing.T) {
	st := &fakeStore{}
	qa := &fakeAnswerer{f: extract.Fields{
		VendorName: "ABC Pvt Ltd", // same field count as baseline, still invalid
		Tier:       constants.TierTextQA,
	}}
	c := newController(nil, qa, nil, st)

	rec, err := c.Run(context.Background(), "/inv/d.pdf", "ABC Pvt Ltd\nInvoice No: INV/22/001\n")
	require.NoError(t, err)

	assert.Equal(t, constants.StatusPartial, rec.Status)
	assert.Equal(t, 1, qa.calls)
	require.Len(t, st.recs, 1)
	assert.Equal(t, constants.StatusPartial, st.recs[0].Status)
}

func TestRun_LLMAcceptedWholesale(t *testing.T) {
	st := &fakeStore{}
	llm := &fakeCompleter{f: extract.Fields{
		VendorName:    "Sunrise Traders Pvt Ltd",
		InvoiceNumber: "INV/22/001",
		InvoiceDate:   "2024-01-01",
		TotalAmount:   extract.Amount(750),
		Tier:          constants.TierLLM,
	}}
	c := newController(nil, nil, llm, st)

	rec, err := c.Run(context.Background(), "/inv/e.jpg", "???\n")
	require.NoError(t, err)

	assert.Equal(t, constants.StatusSuccess, rec.Status)
	assert.Equal(t, constants.TierLLM, rec.Fields.Tier)
	require.Len(t, st.recs, 1)
}

func TestRun_CollaboratorErrorsTreatedAsEmpty(t *testing.T) {
	st := &fakeStore{}
	re := &fakeRescanner{err: errors.New("tesseract exploded")}
	qa := &fakeAnswerer{err: errors.New("endpoint down")}
	llm := &fakeCompleter{err: errors.New("rate limited")}
	c := newController(re, qa, llm, st)

	rec, err := c.Run(context.Background(), "/inv/f.png", "???\n")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusFailed, rec.Status)
	assert.Equal(t, constants.TierAllTiers, rec.Fields.Tier)
}

func TestMergeQA_Rules(t *testing.T) {
	base := extract.Fields{
		VendorName:    "ABC Pvt Ltd",
		InvoiceNumber: "123456",
		TotalAmount:   extract.Amount(1000),
	}

	// Within the margin: baseline total stands.
	got := mergeQA(base, extract.Fields{TotalAmount: extract.Amount(1040)}, 0.05)
	assert.InDelta(t, 1000.0, *got.TotalAmount, 1e-9)

	// Beyond the margin: QA total adopted.
	got = mergeQA(base, extract.Fields{TotalAmount: extract.Amount(1100)}, 0.05)
	assert.InDelta(t, 1100.0, *got.TotalAmount, 1e-9)

	// Vendor adopts any differing answer.
	got = mergeQA(base, extract.Fields{VendorName: "XYZ Traders LLP"}, 0.05)
	assert.Equal(t, "XYZ Traders LLP", got.VendorName)

	// Invoice number: letters+digits mix beats the numeric baseline.
	got = mergeQA(base, extract.Fields{InvoiceNumber: "INV22"}, 0.05)
	assert.Equal(t, "INV22", got.InvoiceNumber)

	// Shorter same-mix answer does not replace the baseline.
	base2 := extract.Fields{InvoiceNumber: "INV/22/001"}
	got = mergeQA(base2, extract.Fields{InvoiceNumber: "INV22"}, 0.05)
	assert.Equal(t, "INV/22/001", got.InvoiceNumber)

	assert.Equal(t, constants.TierTextQA, got.Tier)
}

func TestTierMaps(t *testing.T) {
	assert.Equal(t, constants.TierRegexDocTR, NextTier(constants.TierRegexOnly))
	assert.Equal(t, constants.TierTextQA, NextTier(constants.TierRegexDocTR))
	assert.Equal(t, constants.TierLLM, NextTier(constants.TierTextQA))
	assert.Empty(t, NextTier(constants.TierLLM))

	assert.Equal(t, constants.TierLLM, AlternativeTier(constants.TierRegexDocTR))
	assert.Empty(t, AlternativeTier(constants.TierTextQA))
	assert.Empty(t, AlternativeTier(constants.TierLLM))
}

func TestRunTier_ManualLLM(t *testing.T) {
	st := &fakeStore{}
	llm := &fakeCompleter{f: extract.Fields{
		VendorName:  "ABC Pvt Ltd",
		TotalAmount: extract.Amount(5000),
		Tier:        constants.TierLLM,
	}}
	c := newController(nil, nil, llm, st)

	rec, err := c.RunTier(context.Background(), "/inv/g.pdf", "whatever", constants.TierLLM)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusSuccess, rec.Status)
	assert.Equal(t, constants.TierLLM, rec.Fields.Tier)
}

func TestRunTier_MissingCollaborator(t *testing.T) {
	c := newController(nil, nil, nil, &fakeStore{})
	_, err := c.RunTier(context.Background(), "/inv/h.pdf", "text", constants.TierTextQA)
	assert.Error(t, err)
}

func TestCombineTexts(t *testing.T) {
	got := combineTexts("a\nb\n", "b\nc\n\nd")
	assert.Equal(t, []string{"a", "b", "", "c", "d"}, strings.Split(got, "\n"))
}
