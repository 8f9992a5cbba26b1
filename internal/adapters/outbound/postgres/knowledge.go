package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var knowledgeFields = []string{
	"id",
	"question",
	"answer",
	"category",
	"embedding",
}

// KnowledgeRepository reads and indexes the knowledge base in Postgres with
// pgvector similarity search.
type KnowledgeRepository struct {
	sb squirrel.StatementBuilderType
}

// NewKnowledgeRepository creates a new KnowledgeRepository.
func NewKnowledgeRepository(br squirrel.BaseRunner) KnowledgeRepository {
	return KnowledgeRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// SearchByEmbedding retrieves the topK most similar embedded entries with
// cosine similarity >= minSimilarity, ordered by descending similarity. Any
// store failure is reported as *domain.VectorStoreUnavailableErr so the caller
// can distinguish it from "no rows" and fall back.
func (r KnowledgeRepository) SearchByEmbedding(ctx context.Context, embedding []float64, topK int, minSimilarity float64) ([]domain.ScoredEntry, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("top_k", topK),
		attribute.Float64("min_similarity", minSimilarity),
	))
	defer span.End()

	vec := pgvector.NewVector(toFloat32(embedding))

	rows, err := r.sb.
		Select(knowledgeFields...).
		Column(squirrel.Expr("1 - (embedding <=> ?) AS similarity", vec)).
		From("knowledge_entries").
		Where("embedding IS NOT NULL").
		Where(squirrel.Expr("1 - (embedding <=> ?) >= ?", vec, minSimilarity)).
		OrderByClause("embedding <=> ?", vec).
		// Ties on similarity resolve by insertion order.
		OrderBy("created_at ASC").
		Limit(uint64(topK)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewVectorStoreUnavailableErr("similarity query failed", err)
	}
	defer rows.Close() //nolint:errcheck

	var matches []domain.ScoredEntry
	for rows.Next() {
		var (
			entry domain.KnowledgeEntry
			score float64
		)
		if err := scanKnowledgeEntry(rows, &entry, &score); telemetry.RecordErrorAndStatus(span, err) {
			return nil, domain.NewVectorStoreUnavailableErr("failed to scan similarity row", err)
		}
		matches = append(matches, domain.ScoredEntry{Entry: entry, Score: score})
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewVectorStoreUnavailableErr("similarity query failed", err)
	}
	return matches, nil
}

// ListEntries retrieves knowledge entries in insertion order. When
// embeddedOnly is true, entries without a stored embedding are skipped.
func (r KnowledgeRepository) ListEntries(ctx context.Context, embeddedOnly bool) ([]domain.KnowledgeEntry, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Bool("embedded_only", embeddedOnly),
	))
	defer span.End()

	qry := r.sb.
		Select(knowledgeFields...).
		From("knowledge_entries").
		OrderBy("created_at ASC")
	if embeddedOnly {
		qry = qry.Where("embedding IS NOT NULL")
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var entries []domain.KnowledgeEntry
	for rows.Next() {
		var entry domain.KnowledgeEntry
		if err := scanKnowledgeEntry(rows, &entry, nil); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return entries, nil
}

// UpdateEmbedding stores a freshly computed embedding for one entry.
func (r KnowledgeRepository) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float64) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result, err := r.sb.
		Update("knowledge_entries").
		Set("embedding", pgvector.NewVector(toFloat32(embedding))).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	affected, err := result.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundErr("knowledge entry not found")
	}
	return nil
}

// scanKnowledgeEntry scans one row. The embedding column is nullable; score is
// scanned only when requested by the similarity query.
func scanKnowledgeEntry(rows *sql.Rows, entry *domain.KnowledgeEntry, score *float64) error {
	var embeddingRaw []byte

	dest := []any{&entry.ID, &entry.Question, &entry.Answer, &entry.Category, &embeddingRaw}
	if score != nil {
		dest = append(dest, score)
	}
	if err := rows.Scan(dest...); err != nil {
		return err
	}

	if len(embeddingRaw) > 0 {
		var vec pgvector.Vector
		if err := vec.Scan(embeddingRaw); err != nil {
			return err
		}
		entry.Embedding = toFloat64(vec.Slice())
	}
	return nil
}

func toFloat32(values []float64) []float32 {
	converted := make([]float32, len(values))
	for i, v := range values {
		converted[i] = float32(v)
	}
	return converted
}

func toFloat64(values []float32) []float64 {
	converted := make([]float64, len(values))
	for i, v := range values {
		converted[i] = float64(v)
	}
	return converted
}

// InitKnowledgeRepository is a Symbiont initializer for KnowledgeRepository.
type InitKnowledgeRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the KnowledgeRepository in the dependency container.
func (r InitKnowledgeRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.KnowledgeRepository](NewKnowledgeRepository(r.DB))
	return ctx, nil
}
