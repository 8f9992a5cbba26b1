package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// RefreshingEncoder extends the semantic encoder with a cache-bypassing
// variant used by forced regeneration.
type RefreshingEncoder interface {
	domain.SemanticEncoder

	// Refresh embeds the text through the provider unconditionally and
	// overwrites the cached vector.
	Refresh(ctx context.Context, text string) (domain.EmbedResponse, error)
}

// RegenerateEmbeddingsReport summarizes one regeneration pass.
type RegenerateEmbeddingsReport struct {
	Processed int
	Skipped   int
}

// RegenerateEmbeddings defines the interface for the offline embedding
// migration pass.
type RegenerateEmbeddings interface {
	// Execute embeds every knowledge entry lacking a vector (every entry, when
	// force is set) and persists the results. A provider failure aborts the
	// pass; entries processed before the failure stay persisted.
	Execute(ctx context.Context, force bool) (RegenerateEmbeddingsReport, error)
}

// RegenerateEmbeddingsImpl is the implementation of RegenerateEmbeddings.
type RegenerateEmbeddingsImpl struct {
	knowledgeRepo domain.KnowledgeRepository
	encoder       RefreshingEncoder
}

// NewRegenerateEmbeddingsImpl creates a new instance of RegenerateEmbeddingsImpl.
func NewRegenerateEmbeddingsImpl(knowledgeRepo domain.KnowledgeRepository, encoder RefreshingEncoder) RegenerateEmbeddingsImpl {
	return RegenerateEmbeddingsImpl{
		knowledgeRepo: knowledgeRepo,
		encoder:       encoder,
	}
}

// Execute runs one regeneration pass. Regeneration is idempotent: re-running
// it over already-embedded entries is a no-op unless force is set.
func (re RegenerateEmbeddingsImpl) Execute(ctx context.Context, force bool) (RegenerateEmbeddingsReport, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.Bool("force", force))

	entries, err := re.knowledgeRepo.ListEntries(spanCtx, false)
	if telemetry.RecordErrorAndStatus(span, err) {
		return RegenerateEmbeddingsReport{}, fmt.Errorf("failed to list knowledge entries: %w", err)
	}

	report := RegenerateEmbeddingsReport{}
	for _, entry := range entries {
		if len(entry.Embedding) > 0 && !force {
			report.Skipped++
			continue
		}

		resp, err := re.embed(spanCtx, entry.Question, force)
		if telemetry.RecordErrorAndStatus(span, err) {
			// Stale embeddings beat unavailable answers; keep what was
			// persisted so far and abort the rest of the pass.
			return report, fmt.Errorf("embedding pass aborted at %q: %w", entry.Question, err)
		}
		RecordLLMTokensEmbedding(spanCtx, resp.TotalTokens)

		if err := re.knowledgeRepo.UpdateEmbedding(spanCtx, entry.ID, resp.Embedding); telemetry.RecordErrorAndStatus(span, err) {
			return report, fmt.Errorf("failed to persist embedding for %q: %w", entry.Question, err)
		}
		report.Processed++
	}

	span.SetAttributes(
		attribute.Int("processed", report.Processed),
		attribute.Int("skipped", report.Skipped),
	)
	return report, nil
}

func (re RegenerateEmbeddingsImpl) embed(ctx context.Context, text string, force bool) (domain.EmbedResponse, error) {
	if force {
		return re.encoder.Refresh(ctx, text)
	}
	return re.encoder.Encode(ctx, text)
}

// InitRegenerateEmbeddings initializes RegenerateEmbeddings.
type InitRegenerateEmbeddings struct {
	KnowledgeRepo domain.KnowledgeRepository `resolve:""`
	Encoder       RefreshingEncoder          `resolve:""`
}

// Initialize registers RegenerateEmbeddings in the dependency container.
func (i InitRegenerateEmbeddings) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RegenerateEmbeddings](NewRegenerateEmbeddingsImpl(i.KnowledgeRepo, i.Encoder))
	return ctx, nil
}
