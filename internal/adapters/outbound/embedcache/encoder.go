// Package embedcache provides a semantic encoder that caches embedding
// vectors in a JSON snapshot on disk, so repeated texts never hit the
// embedding provider twice.
package embedcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// Encoder wraps domain.LLMClient.Embed with a persistent vector cache.
// A warm hit returns the stored vector unchanged and makes no provider call.
type Encoder struct {
	client domain.LLMClient
	model  string
	path   string

	mu      sync.Mutex
	entries map[string][]float64
}

// NewEncoder creates an Encoder backed by the snapshot at path. A missing
// snapshot starts the cache cold; a corrupt one is an error so a bad write
// never silently degrades every lookup to a provider call.
func NewEncoder(client domain.LLMClient, model, path string) (*Encoder, error) {
	e := &Encoder{
		client:  client,
		model:   model,
		path:    path,
		entries: map[string][]float64{},
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return e, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read embedding cache: %w", err)
	}
	if err := json.Unmarshal(data, &e.entries); err != nil {
		return nil, fmt.Errorf("parse embedding cache %s: %w", path, err)
	}
	return e, nil
}

// Encode returns the embedding for the given text, consulting the cache first.
func (e *Encoder) Encode(ctx context.Context, text string) (domain.EmbedResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	key := cacheKey(text)

	e.mu.Lock()
	vector, hit := e.entries[key]
	e.mu.Unlock()

	span.SetAttributes(attribute.Bool("cache_hit", hit))
	if hit {
		return domain.EmbedResponse{Embedding: vector}, nil
	}

	resp, err := e.embedAndStore(spanCtx, key, text)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbedResponse{}, err
	}
	return resp, nil
}

// Refresh embeds the text through the provider unconditionally and overwrites
// the cached vector.
func (e *Encoder) Refresh(ctx context.Context, text string) (domain.EmbedResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := e.embedAndStore(spanCtx, cacheKey(text), text)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbedResponse{}, err
	}
	return resp, nil
}

func (e *Encoder) embedAndStore(ctx context.Context, key, text string) (domain.EmbedResponse, error) {
	resp, err := e.client.Embed(ctx, e.model, text)
	if err != nil {
		return domain.EmbedResponse{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries[key] = resp.Embedding
	if err := e.persistLocked(); err != nil {
		return domain.EmbedResponse{}, err
	}
	return resp, nil
}

// persistLocked writes the snapshot through a temp file and rename so readers
// never observe a partially written cache. Caller must hold e.mu.
func (e *Encoder) persistLocked() error {
	data, err := json.Marshal(e.entries)
	if err != nil {
		return fmt.Errorf("marshal embedding cache: %w", err)
	}

	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".embedding-cache-*")
	if err != nil {
		return fmt.Errorf("create cache temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()           //nolint:errcheck
		os.Remove(tmp.Name()) //nolint:errcheck
		return fmt.Errorf("write cache temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck
		return fmt.Errorf("close cache temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), e.path); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck
		return fmt.Errorf("replace cache snapshot: %w", err)
	}
	return nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// InitSemanticEncoder initializes the cached semantic encoder.
type InitSemanticEncoder struct {
	LLMClient      domain.LLMClient `resolve:""`
	EmbeddingModel string           `config:"EMBEDDING_MODEL" default:"ai/qwen3-embedding"`
	CachePath      string           `config:"EMBEDDING_CACHE_PATH" default:"data/embedding-cache.json"`
}

// Initialize registers the encoder for both cached lookups and forced refresh.
func (i InitSemanticEncoder) Initialize(ctx context.Context) (context.Context, error) {
	encoder, err := NewEncoder(i.LLMClient, i.EmbeddingModel, i.CachePath)
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.SemanticEncoder](encoder)
	depend.Register[usecases.RefreshingEncoder](encoder)
	return ctx, nil
}
