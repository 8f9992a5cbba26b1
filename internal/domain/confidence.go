package domain

// ConfidenceTier is a discrete bucket derived from a continuous similarity or
// classification score. The ordering NONE < LOW < MEDIUM < HIGH is relied on
// by callers comparing tiers.
type ConfidenceTier int

const (
	Tier_NONE ConfidenceTier = iota
	Tier_LOW
	Tier_MEDIUM
	Tier_HIGH
)

// String returns the lowercase tier name.
func (t ConfidenceTier) String() string {
	switch t {
	case Tier_HIGH:
		return "high"
	case Tier_MEDIUM:
		return "medium"
	case Tier_LOW:
		return "low"
	default:
		return "none"
	}
}

// ResponseAction is the downstream strategy selected for a confidence tier.
type ResponseAction string

const (
	// ResponseAction_ANSWER_DIRECTLY returns the knowledge-base answer verbatim.
	ResponseAction_ANSWER_DIRECTLY ResponseAction = "ANSWER_DIRECTLY"
	// ResponseAction_ANSWER_ENRICHED returns the knowledge-base answer, eligible
	// for optional language-model enrichment.
	ResponseAction_ANSWER_ENRICHED ResponseAction = "ANSWER_ENRICHED"
	// ResponseAction_USE_AS_CONTEXT supplies the match as context to the
	// language-model fallback instead of answering directly.
	ResponseAction_USE_AS_CONTEXT ResponseAction = "USE_AS_CONTEXT"
	// ResponseAction_LLM_FALLBACK answers with the language model alone.
	ResponseAction_LLM_FALLBACK ResponseAction = "LLM_FALLBACK"
)

// TierThresholds holds the similarity cutoffs separating confidence tiers.
// The values are configuration, not constants baked into call sites.
type TierThresholds struct {
	High   float64
	Medium float64
	Low    float64
}

// DefaultTierThresholds are the empirically tuned cutoffs.
var DefaultTierThresholds = TierThresholds{
	High:   0.85,
	Medium: 0.70,
	Low:    0.55,
}

// TierFor maps a similarity score to its confidence tier. The mapping is
// deterministic and monotonic in the score.
func (t TierThresholds) TierFor(score float64) ConfidenceTier {
	switch {
	case score >= t.High:
		return Tier_HIGH
	case score >= t.Medium:
		return Tier_MEDIUM
	case score >= t.Low:
		return Tier_LOW
	default:
		return Tier_NONE
	}
}

// Classification is the outcome of mapping a score to a tier and action.
type Classification struct {
	Tier   ConfidenceTier
	Action ResponseAction
}

// Classify maps a score to the tier and response action. It is intentionally
// agnostic of which matcher produced the score, so the caller can switch
// matchers on failure without downstream consumers noticing.
func (t TierThresholds) Classify(score float64) Classification {
	tier := t.TierFor(score)
	return Classification{
		Tier:   tier,
		Action: tier.Action(),
	}
}

// Action returns the response action for a tier.
func (t ConfidenceTier) Action() ResponseAction {
	switch t {
	case Tier_HIGH:
		return ResponseAction_ANSWER_DIRECTLY
	case Tier_MEDIUM:
		return ResponseAction_ANSWER_ENRICHED
	case Tier_LOW:
		return ResponseAction_USE_AS_CONTEXT
	default:
		return ResponseAction_LLM_FALLBACK
	}
}
