package search

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/common"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := map[string]struct {
		text string
		want []string
	}{
		"stop-words-and-short-tokens-are-dropped": {
			text: "What should I do if my dog ate chocolate?",
			want: []string{"dog", "ate", "chocolate"},
		},
		"punctuation-is-trimmed": {
			text: "brushing, teeth! (daily)",
			want: []string{"brushing", "teeth", "daily"},
		},
		"uppercase-is-lowered": {
			text: "DOG Vaccinations",
			want: []string{"dog", "vaccinations"},
		},
		"only-stop-words-yields-nothing": {
			text: "what should i do",
			want: []string{},
		},
		"empty-text-yields-nothing": {
			text: "   ",
			want: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestKeywordStrategy_Attempt(t *testing.T) {
	teethEntry := domain.KnowledgeEntry{
		ID:       uuid.New(),
		Question: "How often should I brush my dog's teeth?",
		Answer:   "Brush your dog's teeth daily, or at least three times a week.",
		Category: common.Ptr("dental"),
	}
	chocolateEntry := domain.KnowledgeEntry{
		ID:       uuid.New(),
		Question: "What foods are toxic for dogs?",
		Answer:   "Chocolate, grapes, onions and xylitol are all toxic.",
		Category: common.Ptr("nutrition"),
	}
	bonesEntry := domain.KnowledgeEntry{
		ID:       uuid.New(),
		Question: "Is it ok to feed bones?",
		Answer:   "Cooked bones splinter and should never be fed.",
	}
	entries := []domain.KnowledgeEntry{teethEntry, chocolateEntry, bonesEntry}

	tests := map[string]struct {
		queryText       string
		setExpectations func(knowledgeRepo *domain.MockKnowledgeRepository)
		wantMatches     int
		wantTopID       uuid.UUID
		wantTopScore    float64
		wantErr         bool
	}{
		"strong-question-overlap-is-capped": {
			queryText: "brush teeth dog",
			setExpectations: func(knowledgeRepo *domain.MockKnowledgeRepository) {
				knowledgeRepo.EXPECT().
					ListEntries(context.Background(), false).
					Return(entries, nil).
					Once()
			},
			wantMatches:  2,
			wantTopID:    teethEntry.ID,
			wantTopScore: questionMatchCap,
		},
		"answer-only-overlap-uses-lower-cap": {
			queryText: "grapes xylitol",
			setExpectations: func(knowledgeRepo *domain.MockKnowledgeRepository) {
				knowledgeRepo.EXPECT().
					ListEntries(context.Background(), false).
					Return(entries, nil).
					Once()
			},
			wantMatches:  1,
			wantTopID:    chocolateEntry.ID,
			wantTopScore: 0.5,
		},
		"weak-overlap-below-floor-yields-nothing": {
			queryText: "splinter training leash walking recall",
			setExpectations: func(knowledgeRepo *domain.MockKnowledgeRepository) {
				knowledgeRepo.EXPECT().
					ListEntries(context.Background(), false).
					Return(entries, nil).
					Once()
			},
			wantMatches: 0,
		},
		"no-usable-tokens-falls-back-to-exact-substring": {
			queryText: "is it ok",
			setExpectations: func(knowledgeRepo *domain.MockKnowledgeRepository) {
				knowledgeRepo.EXPECT().
					ListEntries(context.Background(), false).
					Return(entries, nil).
					Once()
			},
			wantMatches:  1,
			wantTopID:    bonesEntry.ID,
			wantTopScore: exactMatchScore,
		},
		"empty-query-yields-nothing": {
			queryText: "  ",
			setExpectations: func(knowledgeRepo *domain.MockKnowledgeRepository) {
				knowledgeRepo.EXPECT().
					ListEntries(context.Background(), false).
					Return(entries, nil).
					Once()
			},
			wantMatches: 0,
		},
		"repository-error-is-propagated": {
			queryText: "brush teeth",
			setExpectations: func(knowledgeRepo *domain.MockKnowledgeRepository) {
				knowledgeRepo.EXPECT().
					ListEntries(context.Background(), false).
					Return(nil, assert.AnError).
					Once()
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			knowledgeRepo := domain.NewMockKnowledgeRepository(t)
			tt.setExpectations(knowledgeRepo)

			strategy := NewKeywordStrategy(knowledgeRepo, DefaultTopK)
			matches, err := strategy.Attempt(context.Background(), domain.Query{Text: tt.queryText})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, matches, tt.wantMatches)
			if tt.wantMatches > 0 {
				assert.Equal(t, tt.wantTopID, matches[0].Entry.ID)
				assert.InDelta(t, tt.wantTopScore, matches[0].Score, 0.0001)
			}
		})
	}
}

func TestKeywordStrategy_Name(t *testing.T) {
	assert.Equal(t, "keyword", NewKeywordStrategy(nil, DefaultTopK).Name())
}
