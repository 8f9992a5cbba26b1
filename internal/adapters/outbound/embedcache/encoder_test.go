package embedcache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testModel = "ai/qwen3-embedding"

func TestEncoder_Encode_CachesProviderResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	llm := domain.NewMockLLMClient(t)
	llm.EXPECT().
		Embed(mock.Anything, testModel, "how often should I feed my puppy?").
		Return(domain.EmbedResponse{Embedding: []float64{0.1, 0.2}, TotalTokens: 7}, nil).
		Times(1)

	encoder, err := NewEncoder(llm, testModel, path)
	assert.NoError(t, err)

	cold, err := encoder.Encode(context.Background(), "how often should I feed my puppy?")
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2}, cold.Embedding)
	assert.Equal(t, 7, cold.TotalTokens)

	// Warm hit: same vector, no second provider call.
	warm, err := encoder.Encode(context.Background(), "how often should I feed my puppy?")
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2}, warm.Embedding)
	assert.Equal(t, 0, warm.TotalTokens)
}

func TestEncoder_Encode_SnapshotSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	llm := domain.NewMockLLMClient(t)
	llm.EXPECT().
		Embed(mock.Anything, testModel, "can dogs eat grapes?").
		Return(domain.EmbedResponse{Embedding: []float64{0.5, 0.25}}, nil).
		Times(1)

	first, err := NewEncoder(llm, testModel, path)
	assert.NoError(t, err)
	_, err = first.Encode(context.Background(), "can dogs eat grapes?")
	assert.NoError(t, err)

	// A fresh encoder loading the same snapshot never calls the provider.
	second, err := NewEncoder(domain.NewMockLLMClient(t), testModel, path)
	assert.NoError(t, err)
	got, err := second.Encode(context.Background(), "can dogs eat grapes?")
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.25}, got.Embedding)
}

func TestEncoder_Refresh_BypassesWarmCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	llm := domain.NewMockLLMClient(t)
	llm.EXPECT().
		Embed(mock.Anything, testModel, "grooming basics").
		Return(domain.EmbedResponse{Embedding: []float64{1, 0}}, nil).
		Times(1)

	encoder, err := NewEncoder(llm, testModel, path)
	assert.NoError(t, err)
	_, err = encoder.Encode(context.Background(), "grooming basics")
	assert.NoError(t, err)

	llm.EXPECT().
		Embed(mock.Anything, testModel, "grooming basics").
		Return(domain.EmbedResponse{Embedding: []float64{0, 1}}, nil).
		Times(1)

	refreshed, err := encoder.Refresh(context.Background(), "grooming basics")
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, refreshed.Embedding)

	// The refreshed vector replaces the cached one.
	warm, err := encoder.Encode(context.Background(), "grooming basics")
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, warm.Embedding)
}

func TestEncoder_Encode_ProviderFailureCachesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	llm := domain.NewMockLLMClient(t)
	llm.EXPECT().
		Embed(mock.Anything, testModel, "tick prevention").
		Return(domain.EmbedResponse{}, domain.NewEmbeddingUnavailableErr("quota exhausted", nil)).
		Times(2)

	encoder, err := NewEncoder(llm, testModel, path)
	assert.NoError(t, err)

	_, err = encoder.Encode(context.Background(), "tick prevention")
	assert.Error(t, err)

	// The failure is not cached; the next call retries the provider.
	_, err = encoder.Encode(context.Background(), "tick prevention")
	assert.Error(t, err)
}

func TestNewEncoder_CorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewEncoder(domain.NewMockLLMClient(t), testModel, path)
	assert.Error(t, err)
}
