// Package vision implements the cascaded image validation pipeline: a coarse
// general-purpose detector gated by an explicit reject list, refined by a
// fine-grained breed classifier that can only narrow or veto the coarse
// result, never accept on its own.
package vision

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds the validation thresholds. The numeric defaults are empirically
// tuned constants; treat them as a starting point for recalibration, not as
// fixed truths.
type Config struct {
	// RejectLabels veto acceptance whenever one of them is detected, no matter
	// how low its confidence. False negatives here are costlier than false
	// positives.
	RejectLabels []string

	// RejectTopFloor is the confidence floor for a top-1 reject-list veto.
	RejectTopFloor float64

	// RejectTopKFloor is the confidence floor for a reject-list label found
	// anywhere in the top-K predictions.
	RejectTopKFloor float64

	// TargetKeywords identify in-domain labels in the coarse vocabulary.
	TargetKeywords []string

	// TopK is how many coarse predictions are inspected.
	TopK int

	// TopKFoundFloor is the minimum confidence for a target label found among
	// the top-K predictions.
	TopKFoundFloor float64

	// DirectFloor is the minimum confidence for a top-1 target match.
	DirectFloor float64

	// BreedMinConfidence is the minimum fine-grained confidence to trust the
	// breed label. Below it the result is downgraded to uncertain.
	BreedMinConfidence float64

	// HairlessFloor is the extra coarse-confidence floor applied to hairless
	// breeds, which resemble reject-list livestock.
	HairlessFloor float64

	// HairlessBreeds lists the breeds subject to HairlessFloor.
	HairlessBreeds []string
}

// DefaultConfig returns the tuned validation thresholds.
func DefaultConfig() Config {
	return Config{
		RejectLabels: []string{
			"ram", "goat", "sheep", "pig", "hog", "sow", "boar",
			"ox", "bull", "cow", "bison", "llama", "alpaca",
		},
		RejectTopFloor:  0.02,
		RejectTopKFloor: 0.03,
		TargetKeywords: []string{
			"dog", "puppy", "terrier", "retriever", "spaniel", "shepherd",
			"hound", "poodle", "bulldog", "pug", "beagle", "husky", "corgi",
			"dachshund", "chihuahua", "mastiff", "collie", "setter", "pointer",
			"schnauzer", "malamute", "pekinese", "papillon", "pinscher",
		},
		TopK:               10,
		TopKFoundFloor:     0.15,
		DirectFloor:        0.25,
		BreedMinConfidence: 0.50,
		HairlessFloor:      0.40,
		HairlessBreeds: []string{
			"mexican hairless", "chinese crested", "xoloitzcuintli",
			"peruvian inca orchid", "american hairless terrier",
		},
	}
}

// Validator runs the cascaded validation state machine.
type Validator struct {
	detector   domain.CoarseDetector
	classifier domain.BreedClassifier
	config     Config
}

// NewValidator creates a new Validator.
func NewValidator(detector domain.CoarseDetector, classifier domain.BreedClassifier, config Config) Validator {
	return Validator{
		detector:   detector,
		classifier: classifier,
		config:     config,
	}
}

// Validate screens one image. Policy rejections return a reject result with a
// nil error; classifier failures return a reject result with zero confidence
// together with a *domain.ClassifierErr carrying the diagnostic detail. A
// failure is never treated as an accept.
func (v Validator) Validate(ctx context.Context, imageRef string) (domain.ClassificationResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rejected := domain.ClassificationResult{Method: domain.ValidationMethod_Reject}

	predictions, err := v.detector.Detect(spanCtx, imageRef, v.config.TopK)
	if telemetry.RecordErrorAndStatus(span, err) {
		return rejected, domain.NewClassifierErr("coarse detection failed", err)
	}
	if len(predictions) == 0 {
		span.AddEvent("coarse detector returned no predictions")
		return rejected, nil
	}

	top := predictions[0]
	if v.matchesRejectLabel(top.Label) && top.Confidence >= v.config.RejectTopFloor {
		span.SetAttributes(attribute.String("reject_label", top.Label))
		return rejected, nil
	}
	for _, prediction := range predictions {
		if v.matchesRejectLabel(prediction.Label) && prediction.Confidence >= v.config.RejectTopKFloor {
			span.SetAttributes(attribute.String("reject_label", prediction.Label))
			return rejected, nil
		}
	}

	candidate, ok := v.findTarget(predictions)
	if !ok {
		span.AddEvent("no target label among top-K predictions")
		return rejected, nil
	}

	breed, err := v.classifier.ClassifyBreed(spanCtx, imageRef)
	if telemetry.RecordErrorAndStatus(span, err) {
		return rejected, domain.NewClassifierErr("breed classification failed", err)
	}

	if v.matchesAny(breed.Label, v.config.HairlessBreeds) && candidate.Confidence < v.config.HairlessFloor {
		span.SetAttributes(attribute.String("reject_label", breed.Label))
		return rejected, nil
	}

	// The fine stage refines the coarse result or is discarded; it cannot
	// overrule a coarse rejection.
	if breed.Confidence >= v.config.BreedMinConfidence {
		candidate.Breed = breed.Label
		candidate.BreedConfidence = breed.Confidence
	}

	span.SetAttributes(
		attribute.String("validation_method", string(candidate.Method)),
		attribute.Float64("confidence", candidate.Confidence),
	)
	return candidate, nil
}

// findTarget applies the target-keyword acceptance rules: a confident top-1
// match wins outright, otherwise the top-K predictions are scanned under the
// lower floor.
func (v Validator) findTarget(predictions []domain.Prediction) (domain.ClassificationResult, bool) {
	top := predictions[0]
	if v.matchesAny(top.Label, v.config.TargetKeywords) && top.Confidence >= v.config.DirectFloor {
		return domain.ClassificationResult{
			Label:      top.Label,
			Confidence: top.Confidence,
			Method:     domain.ValidationMethod_KeywordMatch,
		}, true
	}

	for _, prediction := range predictions {
		if v.matchesAny(prediction.Label, v.config.TargetKeywords) && prediction.Confidence >= v.config.TopKFoundFloor {
			return domain.ClassificationResult{
				Label:      prediction.Label,
				Confidence: prediction.Confidence,
				Method:     domain.ValidationMethod_TopKMatch,
			}, true
		}
	}
	return domain.ClassificationResult{}, false
}

// matchesRejectLabel compares whole words so that reject labels never match
// inside longer breed names ("sheep" must not veto "sheepdog").
func (v Validator) matchesRejectLabel(label string) bool {
	words := strings.FieldsFunc(strings.ToLower(label), func(r rune) bool {
		return !('a' <= r && r <= 'z')
	})
	for _, word := range words {
		for _, reject := range v.config.RejectLabels {
			if word == reject {
				return true
			}
		}
	}
	return false
}

func (v Validator) matchesAny(label string, vocabulary []string) bool {
	labelLower := strings.ToLower(label)
	for _, word := range vocabulary {
		if strings.Contains(labelLower, word) {
			return true
		}
	}
	return false
}
