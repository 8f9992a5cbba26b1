package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/composer"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/vision"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// ImageValidator screens one image through the cascaded validation pipeline.
type ImageValidator interface {
	Validate(ctx context.Context, imageRef string) (domain.ClassificationResult, error)
}

// AnalyzeImageResult is the composed assistant response for one uploaded image.
type AnalyzeImageResult struct {
	Content        string
	Category       domain.MessageCategory
	Classification domain.ClassificationResult
}

// AnalyzeImage defines the interface for analyzing one uploaded pet photo.
type AnalyzeImage interface {
	// Execute validates the image and returns the composed, persisted
	// assistant response.
	Execute(ctx context.Context, imageRef string, profile domain.PetProfile) (AnalyzeImageResult, error)
}

// AnalyzeImageImpl is the implementation of AnalyzeImage.
type AnalyzeImageImpl struct {
	validator    ImageValidator
	chatRepo     domain.ChatMessageRepository
	timeProvider domain.CurrentTimeProvider
	composer     composer.Composer
}

// NewAnalyzeImageImpl creates a new instance of AnalyzeImageImpl.
func NewAnalyzeImageImpl(
	validator ImageValidator,
	chatRepo domain.ChatMessageRepository,
	timeProvider domain.CurrentTimeProvider,
	c composer.Composer,
) AnalyzeImageImpl {
	return AnalyzeImageImpl{
		validator:    validator,
		chatRepo:     chatRepo,
		timeProvider: timeProvider,
		composer:     c,
	}
}

// Execute screens the image and responds according to the validation outcome.
// Classifier failures degrade to a rejection response; they never surface as
// errors to the owner.
func (ai AnalyzeImageImpl) Execute(ctx context.Context, imageRef string, profile domain.PetProfile) (AnalyzeImageResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(imageRef) == "" {
		return AnalyzeImageResult{}, domain.NewValidationErr("image reference cannot be empty")
	}
	if profile.PetID == uuid.Nil {
		return AnalyzeImageResult{}, domain.NewValidationErr("pet id cannot be empty")
	}

	classification, err := ai.validator.Validate(spanCtx, imageRef)
	if err != nil {
		// Diagnostic detail stays in the trace; the owner sees a normal rejection.
		span.RecordError(err)
	}
	RecordImageValidation(spanCtx, classification.Method)
	span.SetAttributes(attribute.String("validation_method", string(classification.Method)))

	result := AnalyzeImageResult{Classification: classification}
	switch {
	case !classification.Accepted():
		result.Category = domain.MessageCategory_VALIDATION_FAILED
	case classification.Breed != "":
		result.Category = domain.MessageCategory_BREED_IDENTIFIED
		result.Content = fmt.Sprintf(
			"Great photo of %s! This looks like a %s (%.0f%% confident). Feel free to ask me anything specific to the breed.",
			profile.DisplayName(), classification.Breed, classification.BreedConfidence*100,
		)
	default:
		result.Category = domain.MessageCategory_BREED_UNCERTAIN
	}

	history, err := ai.chatRepo.ListRecentAssistantMessages(spanCtx, profile.PetID, composer.DefaultLookback)
	if err != nil {
		span.RecordError(err)
		history = nil
	}
	result.Content = ai.composer.Compose(result.Category, history, result.Content)

	now := ai.timeProvider.Now()
	err = ai.chatRepo.CreateChatMessages(spanCtx, []domain.ChatMessage{
		{
			ID:        uuid.New(),
			PetID:     profile.PetID,
			ChatRole:  domain.ChatRole_User,
			Content:   "[photo uploaded]",
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			PetID:     profile.PetID,
			ChatRole:  domain.ChatRole_Assistant,
			Content:   result.Content,
			Category:  result.Category,
			CreatedAt: now,
		},
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return AnalyzeImageResult{}, fmt.Errorf("failed to persist image analysis turn: %w", err)
	}
	return result, nil
}

// InitAnalyzeImage initializes AnalyzeImage. The validation floors are
// recalibration knobs; the defaults match vision.DefaultConfig.
type InitAnalyzeImage struct {
	Detector           domain.CoarseDetector        `resolve:""`
	Classifier         domain.BreedClassifier       `resolve:""`
	ChatRepo           domain.ChatMessageRepository `resolve:""`
	TimeProvider       domain.CurrentTimeProvider   `resolve:""`
	BreedMinConfidence float64                      `config:"VISION_BREED_MIN_CONFIDENCE" default:"0.50"`
	HairlessFloor      float64                      `config:"VISION_HAIRLESS_FLOOR" default:"0.40"`
	RejectTopFloor     float64                      `config:"VISION_REJECT_TOP_FLOOR" default:"0.02"`
	RejectTopKFloor    float64                      `config:"VISION_REJECT_TOPK_FLOOR" default:"0.03"`
}

// validatorConfig applies the configured floors over the default thresholds.
func (i InitAnalyzeImage) validatorConfig() vision.Config {
	cfg := vision.DefaultConfig()
	cfg.BreedMinConfidence = i.BreedMinConfidence
	cfg.HairlessFloor = i.HairlessFloor
	cfg.RejectTopFloor = i.RejectTopFloor
	cfg.RejectTopKFloor = i.RejectTopKFloor
	return cfg
}

// Initialize registers AnalyzeImage in the dependency container.
func (i InitAnalyzeImage) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AnalyzeImage](NewAnalyzeImageImpl(
		vision.NewValidator(i.Detector, i.Classifier, i.validatorConfig()),
		i.ChatRepo,
		i.TimeProvider,
		composer.New(composer.DefaultLookback),
	))
	return ctx, nil
}
