package domain

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// KnowledgeEntry is one question/answer pair from the knowledge base.
// Entries are created and updated by the offline migration pass; query
// traffic only reads them. Embedding is nil when it has not been computed
// yet or the last regeneration pass failed under provider quota.
type KnowledgeEntry struct {
	ID        uuid.UUID
	Question  string
	Answer    string
	Category  *string
	Embedding []float64
}

// SanitizedAnswer trims the entry answer to a chat-friendly length:
// at most 5 lines and roughly 500 characters.
func (e KnowledgeEntry) SanitizedAnswer() string {
	answer := e.Answer
	lines := strings.Split(answer, "\n")
	if len(lines) > 5 {
		answer = strings.Join(lines[:5], "\n")
	}
	if len(answer) > 500 {
		// Never cut inside a multibyte rune.
		cut := 497
		for cut > 0 && !utf8.RuneStart(answer[cut]) {
			cut--
		}
		answer = answer[:cut] + "..."
	}
	return strings.TrimSpace(answer)
}

// Query is an ephemeral inbound question. The embedding is computed once per
// request and never persisted.
type Query struct {
	Text      string
	Embedding []float64
}

// ScoredEntry pairs a knowledge entry with the similarity score a matcher
// assigned to it.
type ScoredEntry struct {
	Entry KnowledgeEntry
	Score float64
}

// KnowledgeRepository defines the interface for reading and indexing the
// knowledge base.
type KnowledgeRepository interface {
	// SearchByEmbedding returns up to topK entries with similarity >= minSimilarity,
	// ordered by descending cosine similarity (ties stable by insertion order).
	// A connectivity failure is returned as *VectorStoreUnavailableErr, never as
	// an empty result.
	SearchByEmbedding(ctx context.Context, embedding []float64, topK int, minSimilarity float64) ([]ScoredEntry, error)

	// ListEntries retrieves all knowledge entries. When embeddedOnly is true,
	// entries without a stored embedding are skipped.
	ListEntries(ctx context.Context, embeddedOnly bool) ([]KnowledgeEntry, error)

	// UpdateEmbedding stores a freshly computed embedding for one entry.
	UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float64) error
}
