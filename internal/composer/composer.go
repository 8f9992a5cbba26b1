// Package composer renders assistant responses with repetition-aware
// verbosity: the same guidance delivered for the third consecutive turn is
// compressed to a one-liner instead of repeated verbatim.
package composer

import (
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
)

// DefaultLookback is how many recent assistant messages are inspected when
// counting repetitions.
const DefaultLookback = 3

// variant holds the three verbosity levels for one message category. A "%s"
// placeholder is substituted with the body passed to Compose.
type variant struct {
	full    string
	short   string
	minimal string
}

// variants exist only for categories that can repeat across consecutive
// turns. Every other category always renders its body unchanged.
var variants = map[domain.MessageCategory]variant{
	domain.MessageCategory_LOW_CONFIDENCE_WARNING: {
		full:    "I'm not fully confident this matches your question, so take it as a starting point:\n\n%s\n\nRephrasing with a few more details usually helps me find a better answer.",
		short:   "Still not a confident match, but here is the closest guidance I have:\n\n%s",
		minimal: "Closest I have: %s",
	},
	domain.MessageCategory_VALIDATION_FAILED: {
		full:    "I couldn't verify that this photo shows a dog. Please upload a clear, well-lit photo where your dog fills most of the frame.",
		short:   "Still no dog detected in the photo. A closer, well-lit shot usually works better.",
		minimal: "No dog detected. Try another photo.",
	},
	domain.MessageCategory_BREED_UNCERTAIN: {
		full:    "This looks like a dog, but I couldn't pin down the breed with enough confidence. A sharper side-on photo in daylight would help me identify it.",
		short:   "The breed is still unclear. A sharper photo would help.",
		minimal: "Breed unclear. Try a sharper photo.",
	},
	domain.MessageCategory_DEGRADED: {
		full:    "I'm having trouble reaching my knowledge services right now. Please try again in a few minutes; if the issue is urgent, contact your veterinarian directly.",
		short:   "Still having trouble reaching my knowledge services. Please retry shortly.",
		minimal: "Service still unavailable. Please retry.",
	},
}

// Composer selects message variants based on consecutive same-category
// repetitions in the recent assistant history.
type Composer struct {
	lookback int
}

// New creates a new Composer with the given repetition lookback.
func New(lookback int) Composer {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	return Composer{lookback: lookback}
}

// Compose renders the response for a category. The history must be the recent
// assistant messages ordered newest first; body is the category-specific
// content and is ignored by variants without a placeholder.
func (c Composer) Compose(category domain.MessageCategory, history []domain.ChatMessage, body string) string {
	v, ok := variants[category]
	if !ok {
		return body
	}

	template := v.full
	switch count := c.consecutive(category, history); {
	case count == 1:
		template = v.short
	case count >= 2:
		template = v.minimal
	}

	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, body)
	}
	return template
}

// consecutive counts how many of the newest assistant messages share the
// category, stopping at the first differing one.
func (c Composer) consecutive(category domain.MessageCategory, history []domain.ChatMessage) int {
	count := 0
	for _, message := range history {
		if count == c.lookback {
			break
		}
		if message.Category != category {
			break
		}
		count++
	}
	return count
}
