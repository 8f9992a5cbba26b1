package search

import (
	"context"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/common"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
)

// InMemoryStrategy recomputes cosine similarity over the embedded entries
// loaded into memory. It is the fallback when the vector store cannot execute
// the similarity query itself.
type InMemoryStrategy struct {
	knowledgeRepo domain.KnowledgeRepository
	topK          int
	minSimilarity float64
}

// NewInMemoryStrategy creates a new InMemoryStrategy.
func NewInMemoryStrategy(knowledgeRepo domain.KnowledgeRepository, topK int, minSimilarity float64) InMemoryStrategy {
	return InMemoryStrategy{
		knowledgeRepo: knowledgeRepo,
		topK:          topK,
		minSimilarity: minSimilarity,
	}
}

// Name implements MatchStrategy.
func (s InMemoryStrategy) Name() string {
	return "in_memory"
}

// Attempt implements MatchStrategy.
func (s InMemoryStrategy) Attempt(ctx context.Context, query domain.Query) ([]domain.ScoredEntry, error) {
	if len(query.Embedding) == 0 {
		return nil, domain.NewEmbeddingUnavailableErr("no query embedding available for in-memory search", nil)
	}

	entries, err := s.knowledgeRepo.ListEntries(ctx, true)
	if err != nil {
		return nil, err
	}

	var matches []domain.ScoredEntry
	for _, entry := range entries {
		score, ok := common.CosineSimilarity(query.Embedding, entry.Embedding)
		if !ok {
			continue
		}
		if score >= s.minSimilarity {
			matches = append(matches, domain.ScoredEntry{Entry: entry, Score: score})
		}
	}

	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > s.topK {
		matches = matches[:s.topK]
	}
	return matches, nil
}
