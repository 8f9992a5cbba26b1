package search

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVectorStrategy_Attempt(t *testing.T) {
	entry := domain.KnowledgeEntry{
		ID:       uuid.New(),
		Question: "How much exercise does a dog need?",
		Answer:   "Most adult dogs need 30 minutes to 2 hours of activity a day.",
	}
	embedding := []float64{0.1, 0.2, 0.3}

	tests := map[string]struct {
		query           domain.Query
		setExpectations func(knowledgeRepo *domain.MockKnowledgeRepository)
		wantMatches     []domain.ScoredEntry
		wantErr         error
	}{
		"delegates-to-the-vector-store": {
			query: domain.Query{Text: "exercise", Embedding: embedding},
			setExpectations: func(knowledgeRepo *domain.MockKnowledgeRepository) {
				knowledgeRepo.EXPECT().
					SearchByEmbedding(context.Background(), embedding, DefaultTopK, 0.55).
					Return([]domain.ScoredEntry{{Entry: entry, Score: 0.91}}, nil).
					Once()
			},
			wantMatches: []domain.ScoredEntry{{Entry: entry, Score: 0.91}},
		},
		"store-failure-is-propagated": {
			query: domain.Query{Text: "exercise", Embedding: embedding},
			setExpectations: func(knowledgeRepo *domain.MockKnowledgeRepository) {
				knowledgeRepo.EXPECT().
					SearchByEmbedding(context.Background(), embedding, DefaultTopK, 0.55).
					Return(nil, domain.NewVectorStoreUnavailableErr("connection refused", assert.AnError)).
					Once()
			},
			wantErr: domain.NewVectorStoreUnavailableErr("connection refused", assert.AnError),
		},
		"missing-query-embedding-is-an-error": {
			query:           domain.Query{Text: "exercise"},
			setExpectations: func(knowledgeRepo *domain.MockKnowledgeRepository) {},
			wantErr:         domain.NewEmbeddingUnavailableErr("no query embedding available for vector search", nil),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			knowledgeRepo := domain.NewMockKnowledgeRepository(t)
			tt.setExpectations(knowledgeRepo)

			strategy := NewVectorStrategy(knowledgeRepo, DefaultTopK, 0.55)
			matches, err := strategy.Attempt(context.Background(), tt.query)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantMatches, matches)
		})
	}
}

func TestVectorStrategy_Name(t *testing.T) {
	assert.Equal(t, "vector_store", NewVectorStrategy(nil, DefaultTopK, 0.55).Name())
}
