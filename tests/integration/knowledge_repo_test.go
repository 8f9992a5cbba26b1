//go:build integration

package integration

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var db *sql.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := startPgVector(ctx)
	if err != nil {
		log.Fatalf("failed to start pgvector: %v", err)
	}

	initDB := &postgres.InitDB{
		Logger: log.New(os.Stdout, "", log.Lmsgprefix),
		DBUser: dbUser,
		DBPass: dbPass,
		DBHost: container.Host,
		DBPort: container.Port,
		DBName: dbName,
	}
	if _, err := initDB.Initialize(ctx); err != nil {
		container.Close()
		log.Fatalf("failed to initialize database: %v", err)
	}

	db, err = depend.Resolve[*sql.DB]()
	if err != nil {
		container.Close()
		log.Fatalf("failed to resolve database: %v", err)
	}

	code := m.Run()

	initDB.Close()
	container.Close()
	os.Exit(code)
}

func insertEntry(t *testing.T, id uuid.UUID, question, answer string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO knowledge_entries (id, question, answer, category) VALUES ($1, $2, $3, $4)",
		id, question, answer, "feeding",
	)
	require.NoError(t, err)
}

func TestKnowledgeRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewKnowledgeRepository(db)

	puppyID := uuid.New()
	grapesID := uuid.New()
	insertEntry(t, puppyID, "How often should I feed my puppy?", "Three to four meals a day until six months.")
	insertEntry(t, grapesID, "Can dogs eat grapes?", "No. Grapes and raisins are toxic to dogs.")

	puppyVec := make([]float64, 768)
	grapesVec := make([]float64, 768)
	queryVec := make([]float64, 768)
	puppyVec[0], puppyVec[1] = 1, 0
	grapesVec[0], grapesVec[1] = 0, 1
	queryVec[0], queryVec[1] = 0.9, 0.1

	t.Run("list-reports-missing-embeddings", func(t *testing.T) {
		entries, err := repo.ListEntries(ctx, false)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, entry := range entries {
			require.Empty(t, entry.Embedding)
		}

		embedded, err := repo.ListEntries(ctx, true)
		require.NoError(t, err)
		require.Empty(t, embedded)
	})

	t.Run("update-embeddings", func(t *testing.T) {
		require.NoError(t, repo.UpdateEmbedding(ctx, puppyID, puppyVec))
		require.NoError(t, repo.UpdateEmbedding(ctx, grapesID, grapesVec))

		embedded, err := repo.ListEntries(ctx, true)
		require.NoError(t, err)
		require.Len(t, embedded, 2)
	})

	t.Run("update-unknown-entry", func(t *testing.T) {
		err := repo.UpdateEmbedding(ctx, uuid.New(), puppyVec)
		require.ErrorAs(t, err, new(*domain.NotFoundErr))
	})

	t.Run("similarity-search-orders-and-filters", func(t *testing.T) {
		matches, err := repo.SearchByEmbedding(ctx, queryVec, 3, 0.55)
		require.NoError(t, err)
		require.Len(t, matches, 1, "only the aligned vector clears the similarity floor")
		require.Equal(t, puppyID, matches[0].Entry.ID)
		require.InDelta(t, 0.99, matches[0].Score, 0.02)
	})

	t.Run("similarity-search-empty-below-floor", func(t *testing.T) {
		orthogonal := make([]float64, 768)
		orthogonal[2] = 1
		matches, err := repo.SearchByEmbedding(ctx, orthogonal, 3, 0.55)
		require.NoError(t, err)
		require.Empty(t, matches)
	})
}

func TestChatMessageRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewChatMessageRepository(db)

	petID := uuid.New()
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	messages := []domain.ChatMessage{
		{ID: uuid.New(), PetID: petID, ChatRole: domain.ChatRole_User, Content: "is chocolate bad?", CreatedAt: base},
		{ID: uuid.New(), PetID: petID, ChatRole: domain.ChatRole_Assistant, Content: "Yes, chocolate is toxic to dogs.", Category: domain.MessageCategory_KB_ANSWER, Model: "ai/gpt-oss", CreatedAt: base.Add(time.Second)},
		{ID: uuid.New(), PetID: petID, ChatRole: domain.ChatRole_Assistant, Content: "Please upload a clearer photo.", Category: domain.MessageCategory_VALIDATION_FAILED, Model: "ai/gpt-oss", CreatedAt: base.Add(2 * time.Second)},
	}
	require.NoError(t, repo.CreateChatMessages(ctx, messages))

	recent, err := repo.ListRecentAssistantMessages(ctx, petID, 3)
	require.NoError(t, err)
	require.Len(t, recent, 2, "user messages are excluded")
	require.Equal(t, domain.MessageCategory_VALIDATION_FAILED, recent[0].Category, "newest first")
	require.Equal(t, domain.MessageCategory_KB_ANSWER, recent[1].Category)

	limited, err := repo.ListRecentAssistantMessages(ctx, petID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, domain.MessageCategory_VALIDATION_FAILED, limited[0].Category)

	other, err := repo.ListRecentAssistantMessages(ctx, uuid.New(), 3)
	require.NoError(t, err)
	require.Empty(t, other)
}
