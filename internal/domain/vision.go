package domain

import "context"

// Prediction is one label/probability pair emitted by an image classifier.
type Prediction struct {
	Label      string
	Confidence float64
}

// ValidationMethod records how the cascaded validator arrived at its result.
type ValidationMethod string

const (
	// ValidationMethod_KeywordMatch means the coarse detector's top prediction
	// matched the target vocabulary directly.
	ValidationMethod_KeywordMatch ValidationMethod = "keyword_match"
	// ValidationMethod_TopKMatch means a target label was found among the
	// detector's top-K predictions.
	ValidationMethod_TopKMatch ValidationMethod = "topK_match"
	// ValidationMethod_Reject means validation failed.
	ValidationMethod_Reject ValidationMethod = "reject"
)

// ClassificationResult is the single validated outcome of the cascaded
// validator for one image. It is consumed by the caller and never persisted
// by the core.
type ClassificationResult struct {
	Label      string
	Confidence float64
	Method     ValidationMethod

	// Breed is the refined fine-grained label, empty when the fine stage could
	// not clear its confidence minimum and the result was downgraded to
	// uncertain.
	Breed           string
	BreedConfidence float64
}

// Accepted reports whether the validator accepted the image.
func (r ClassificationResult) Accepted() bool {
	return r.Method != ValidationMethod_Reject
}

// CoarseDetector classifies an image over a broad general-purpose vocabulary
// and exposes its top-K predictions, ordered by descending confidence.
type CoarseDetector interface {
	Detect(ctx context.Context, imageRef string, topK int) ([]Prediction, error)
}

// BreedClassifier is the fine-grained second stage. It runs only after the
// coarse stage accepted and can refine or veto, never unilaterally accept.
type BreedClassifier interface {
	ClassifyBreed(ctx context.Context, imageRef string) (Prediction, error)
}
