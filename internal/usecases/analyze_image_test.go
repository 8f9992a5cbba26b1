package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/composer"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// stubValidator returns a canned classification result.
type stubValidator struct {
	result domain.ClassificationResult
	err    error
}

func (v stubValidator) Validate(_ context.Context, _ string) (domain.ClassificationResult, error) {
	return v.result, v.err
}

func TestAnalyzeImageImpl_Execute(t *testing.T) {
	petID := uuid.New()
	profile := domain.PetProfile{PetID: petID, Name: "Rex"}
	fixedTime := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	const imageRef = "uploads/pet-42.jpg"

	tests := map[string]struct {
		classification  domain.ClassificationResult
		validatorErr    error
		history         []domain.ChatMessage
		wantCategory    domain.MessageCategory
		wantContent     string
	}{
		"identified-breed-composes-a-success-message": {
			classification: domain.ClassificationResult{
				Label:           "dog",
				Confidence:      0.82,
				Method:          domain.ValidationMethod_KeywordMatch,
				Breed:           "beagle",
				BreedConfidence: 0.74,
			},
			wantCategory: domain.MessageCategory_BREED_IDENTIFIED,
			wantContent:  "Great photo of Rex! This looks like a beagle (74% confident). Feel free to ask me anything specific to the breed.",
		},
		"accepted-without-breed-is-uncertain": {
			classification: domain.ClassificationResult{
				Label:      "dog",
				Confidence: 0.60,
				Method:     domain.ValidationMethod_TopKMatch,
			},
			wantCategory: domain.MessageCategory_BREED_UNCERTAIN,
			wantContent:  "This looks like a dog, but I couldn't pin down the breed with enough confidence. A sharper side-on photo in daylight would help me identify it.",
		},
		"rejection-composes-the-full-failure-message": {
			classification: domain.ClassificationResult{Method: domain.ValidationMethod_Reject},
			wantCategory:   domain.MessageCategory_VALIDATION_FAILED,
			wantContent:    "I couldn't verify that this photo shows a dog. Please upload a clear, well-lit photo where your dog fills most of the frame.",
		},
		"classifier-failure-degrades-to-a-rejection": {
			classification: domain.ClassificationResult{Method: domain.ValidationMethod_Reject},
			validatorErr:   domain.NewClassifierErr("coarse detection failed", assert.AnError),
			wantCategory:   domain.MessageCategory_VALIDATION_FAILED,
			wantContent:    "I couldn't verify that this photo shows a dog. Please upload a clear, well-lit photo where your dog fills most of the frame.",
		},
		"repeated-rejection-shortens-the-message": {
			classification: domain.ClassificationResult{Method: domain.ValidationMethod_Reject},
			history: []domain.ChatMessage{
				{ChatRole: domain.ChatRole_Assistant, Category: domain.MessageCategory_VALIDATION_FAILED},
			},
			wantCategory: domain.MessageCategory_VALIDATION_FAILED,
			wantContent:  "Still no dog detected in the photo. A closer, well-lit shot usually works better.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			chatRepo := domain.NewMockChatMessageRepository(t)
			chatRepo.EXPECT().
				ListRecentAssistantMessages(mock.Anything, petID, composer.DefaultLookback).
				Return(tt.history, nil).
				Once()
			chatRepo.EXPECT().
				CreateChatMessages(mock.Anything, mock.MatchedBy(func(messages []domain.ChatMessage) bool {
					return len(messages) == 2 &&
						messages[1].Category == tt.wantCategory &&
						messages[1].Content == tt.wantContent
				})).
				Return(nil).
				Once()

			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(fixedTime).Once()

			ai := NewAnalyzeImageImpl(
				stubValidator{result: tt.classification, err: tt.validatorErr},
				chatRepo,
				timeProvider,
				composer.New(composer.DefaultLookback),
			)

			result, err := ai.Execute(context.Background(), imageRef, profile)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, tt.wantContent, result.Content)
			assert.Equal(t, tt.classification, result.Classification)
		})
	}
}

func TestAnalyzeImageImpl_Execute_Validation(t *testing.T) {
	ai := NewAnalyzeImageImpl(
		stubValidator{},
		domain.NewMockChatMessageRepository(t),
		domain.NewMockCurrentTimeProvider(t),
		composer.New(composer.DefaultLookback),
	)

	_, err := ai.Execute(context.Background(), "  ", domain.PetProfile{PetID: uuid.New()})
	assert.IsType(t, &domain.ValidationErr{}, err)

	_, err = ai.Execute(context.Background(), "uploads/pet-42.jpg", domain.PetProfile{})
	assert.IsType(t, &domain.ValidationErr{}, err)
}

func TestInitAnalyzeImage_ValidatorConfig(t *testing.T) {
	i := InitAnalyzeImage{
		BreedMinConfidence: 0.65,
		HairlessFloor:      0.35,
		RejectTopFloor:     0.05,
		RejectTopKFloor:    0.08,
	}

	cfg := i.validatorConfig()

	assert.Equal(t, 0.65, cfg.BreedMinConfidence)
	assert.Equal(t, 0.35, cfg.HairlessFloor)
	assert.Equal(t, 0.05, cfg.RejectTopFloor)
	assert.Equal(t, 0.08, cfg.RejectTopKFloor)
	assert.NotEmpty(t, cfg.RejectLabels, "the label vocabularies keep their defaults")
	assert.NotEmpty(t, cfg.TargetKeywords)
}
