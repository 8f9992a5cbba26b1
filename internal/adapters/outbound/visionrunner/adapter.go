package visionrunner

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CoarseDetector adapts VisionAPIClient to domain.CoarseDetector using a
// general-purpose classification model.
type CoarseDetector struct {
	client VisionAPIClient
	model  string
}

// NewCoarseDetector creates a new detector backed by the given model.
func NewCoarseDetector(client VisionAPIClient, model string) CoarseDetector {
	return CoarseDetector{client: client, model: model}
}

// Detect implements domain.CoarseDetector.Detect
func (d CoarseDetector) Detect(ctx context.Context, imageRef string, topK int) ([]domain.Prediction, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	predictions, err := d.client.Predict(spanCtx, d.model, imageRef, topK)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return predictions, nil
}

// BreedClassifier adapts VisionAPIClient to domain.BreedClassifier using a
// breed-specialized model.
type BreedClassifier struct {
	client VisionAPIClient
	model  string
}

// NewBreedClassifier creates a new classifier backed by the given model.
func NewBreedClassifier(client VisionAPIClient, model string) BreedClassifier {
	return BreedClassifier{client: client, model: model}
}

// ClassifyBreed implements domain.BreedClassifier.ClassifyBreed
func (c BreedClassifier) ClassifyBreed(ctx context.Context, imageRef string) (domain.Prediction, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	predictions, err := c.client.Predict(spanCtx, c.model, imageRef, 1)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Prediction{}, err
	}
	if len(predictions) == 0 {
		err := errors.New("no predictions in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Prediction{}, err
	}
	return predictions[0], nil
}

// InitVisionClients initializes the coarse detector and breed classifier.
type InitVisionClients struct {
	HttpClient    *http.Client `resolve:""`
	VisionHost    string       `config:"VISION_MODEL_HOST"`
	DetectorModel string       `config:"VISION_DETECTOR_MODEL" default:"resnet50"`
	BreedModel    string       `config:"VISION_BREED_MODEL" default:"dogbreed"`
}

// Initialize registers both vision clients.
func (i InitVisionClients) Initialize(ctx context.Context) (context.Context, error) {
	client := NewVisionAPIClient(i.VisionHost, i.HttpClient)
	depend.Register[domain.CoarseDetector](NewCoarseDetector(client, i.DetectorModel))
	depend.Register[domain.BreedClassifier](NewBreedClassifier(client, i.BreedModel))
	return ctx, nil
}
