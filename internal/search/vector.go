package search

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
)

const (
	// DefaultTopK bounds how many knowledge entries a matcher returns.
	DefaultTopK = 3
)

// VectorStrategy queries the vector store by cosine similarity. It is the
// highest-priority stage of the chain.
type VectorStrategy struct {
	knowledgeRepo domain.KnowledgeRepository
	topK          int
	minSimilarity float64
}

// NewVectorStrategy creates a new VectorStrategy.
func NewVectorStrategy(knowledgeRepo domain.KnowledgeRepository, topK int, minSimilarity float64) VectorStrategy {
	return VectorStrategy{
		knowledgeRepo: knowledgeRepo,
		topK:          topK,
		minSimilarity: minSimilarity,
	}
}

// Name implements MatchStrategy.
func (s VectorStrategy) Name() string {
	return "vector_store"
}

// Attempt implements MatchStrategy. It requires a query embedding; when the
// provider could not produce one the stage reports unavailable so the chain
// advances instead of treating the failure as "no match".
func (s VectorStrategy) Attempt(ctx context.Context, query domain.Query) ([]domain.ScoredEntry, error) {
	if len(query.Embedding) == 0 {
		return nil, domain.NewEmbeddingUnavailableErr("no query embedding available for vector search", nil)
	}
	return s.knowledgeRepo.SearchByEmbedding(ctx, query.Embedding, s.topK, s.minSimilarity)
}
