package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// stubRefreshingEncoder counts cache-path and provider-path calls.
type stubRefreshingEncoder struct {
	embedding    []float64
	failOn       string
	encodeCalls  int
	refreshCalls int
}

func (e *stubRefreshingEncoder) Encode(_ context.Context, text string) (domain.EmbedResponse, error) {
	e.encodeCalls++
	if text == e.failOn {
		return domain.EmbedResponse{}, domain.NewEmbeddingUnavailableErr("quota exhausted", nil)
	}
	return domain.EmbedResponse{Embedding: e.embedding, TotalTokens: 5}, nil
}

func (e *stubRefreshingEncoder) Refresh(_ context.Context, text string) (domain.EmbedResponse, error) {
	e.refreshCalls++
	if text == e.failOn {
		return domain.EmbedResponse{}, domain.NewEmbeddingUnavailableErr("quota exhausted", nil)
	}
	return domain.EmbedResponse{Embedding: e.embedding, TotalTokens: 5}, nil
}

func TestRegenerateEmbeddingsImpl_Execute(t *testing.T) {
	embedded := domain.KnowledgeEntry{
		ID:        uuid.New(),
		Question:  "How much exercise does a dog need?",
		Embedding: []float64{0.5, 0.5},
	}
	missingA := domain.KnowledgeEntry{
		ID:       uuid.New(),
		Question: "What foods are toxic for dogs?",
	}
	missingB := domain.KnowledgeEntry{
		ID:       uuid.New(),
		Question: "How often should I bathe my dog?",
	}
	newEmbedding := []float64{0.1, 0.9}

	t.Run("embeds-only-entries-lacking-vectors", func(t *testing.T) {
		knowledgeRepo := domain.NewMockKnowledgeRepository(t)
		knowledgeRepo.EXPECT().
			ListEntries(mock.Anything, false).
			Return([]domain.KnowledgeEntry{embedded, missingA, missingB}, nil).
			Once()
		knowledgeRepo.EXPECT().
			UpdateEmbedding(mock.Anything, missingA.ID, newEmbedding).
			Return(nil).
			Once()
		knowledgeRepo.EXPECT().
			UpdateEmbedding(mock.Anything, missingB.ID, newEmbedding).
			Return(nil).
			Once()

		encoder := &stubRefreshingEncoder{embedding: newEmbedding}
		report, err := NewRegenerateEmbeddingsImpl(knowledgeRepo, encoder).Execute(context.Background(), false)

		assert.NoError(t, err)
		assert.Equal(t, RegenerateEmbeddingsReport{Processed: 2, Skipped: 1}, report)
		assert.Equal(t, 2, encoder.encodeCalls)
		assert.Equal(t, 0, encoder.refreshCalls)
	})

	t.Run("force-re-embeds-everything-bypassing-the-cache", func(t *testing.T) {
		knowledgeRepo := domain.NewMockKnowledgeRepository(t)
		knowledgeRepo.EXPECT().
			ListEntries(mock.Anything, false).
			Return([]domain.KnowledgeEntry{embedded, missingA}, nil).
			Once()
		knowledgeRepo.EXPECT().
			UpdateEmbedding(mock.Anything, embedded.ID, newEmbedding).
			Return(nil).
			Once()
		knowledgeRepo.EXPECT().
			UpdateEmbedding(mock.Anything, missingA.ID, newEmbedding).
			Return(nil).
			Once()

		encoder := &stubRefreshingEncoder{embedding: newEmbedding}
		report, err := NewRegenerateEmbeddingsImpl(knowledgeRepo, encoder).Execute(context.Background(), true)

		assert.NoError(t, err)
		assert.Equal(t, RegenerateEmbeddingsReport{Processed: 2, Skipped: 0}, report)
		assert.Equal(t, 0, encoder.encodeCalls)
		assert.Equal(t, 2, encoder.refreshCalls)
	})

	t.Run("provider-failure-aborts-but-keeps-prior-progress", func(t *testing.T) {
		knowledgeRepo := domain.NewMockKnowledgeRepository(t)
		knowledgeRepo.EXPECT().
			ListEntries(mock.Anything, false).
			Return([]domain.KnowledgeEntry{missingA, missingB}, nil).
			Once()
		knowledgeRepo.EXPECT().
			UpdateEmbedding(mock.Anything, missingA.ID, newEmbedding).
			Return(nil).
			Once()

		encoder := &stubRefreshingEncoder{embedding: newEmbedding, failOn: missingB.Question}
		report, err := NewRegenerateEmbeddingsImpl(knowledgeRepo, encoder).Execute(context.Background(), false)

		assert.Error(t, err)
		embeddingErr := &domain.EmbeddingUnavailableErr{}
		assert.ErrorAs(t, err, &embeddingErr)
		assert.Equal(t, RegenerateEmbeddingsReport{Processed: 1}, report)
	})

	t.Run("list-failure-is-returned", func(t *testing.T) {
		knowledgeRepo := domain.NewMockKnowledgeRepository(t)
		knowledgeRepo.EXPECT().
			ListEntries(mock.Anything, false).
			Return(nil, assert.AnError).
			Once()

		_, err := NewRegenerateEmbeddingsImpl(knowledgeRepo, &stubRefreshingEncoder{}).Execute(context.Background(), false)
		assert.Error(t, err)
	})
}
