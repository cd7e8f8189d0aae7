package constants

// ProcessingTier records which extraction strategy produced a result.
type ProcessingTier string

// Stable values (store these exact strings in DB).
const (
	TierRegexOnly  ProcessingTier = "RegexOnly"   // tier 1, standalone first attempt
	TierRegex      ProcessingTier = "Regex"       // tier 1 invoked as part of a re-run
	TierRegexDocTR ProcessingTier = "Regex+DocTR" // tier 2, regex over OCR-enriched text
	TierTextQA     ProcessingTier = "Text_QA"     // tier 3, question-answering model
	TierLLM        ProcessingTier = "LLM"         // tier 4, structured-JSON completion
	TierDocTR      ProcessingTier = "DocTR"       // raw OCR collaborator output
	TierAllTiers   ProcessingTier = "ALL_TIERS"   // terminal-failure marker, not a runnable tier
)

// Tiers holds the allowed values for the tier column.
var Tiers = []string{
	string(TierRegexOnly),
	string(TierRegex),
	string(TierRegexDocTR),
	string(TierTextQA),
	string(TierLLM),
	string(TierDocTR),
	string(TierAllTiers),
}
