package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var chatFields = []string{
	"id",
	"pet_id",
	"chat_role",
	"content",
	"category",
	"model",
	"created_at",
}

// ChatMessageRepository persists chat messages in Postgres.
type ChatMessageRepository struct {
	sb squirrel.StatementBuilderType
}

// NewChatMessageRepository creates a new ChatMessageRepository.
func NewChatMessageRepository(br squirrel.BaseRunner) ChatMessageRepository {
	return ChatMessageRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateChatMessages appends chat messages to the pet conversation.
func (r ChatMessageRepository) CreateChatMessages(ctx context.Context, messages []domain.ChatMessage) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	insertQry := r.sb.
		Insert("ai_chat_messages").
		Columns(chatFields...)

	for _, message := range messages {
		insertQry = insertQry.Values(
			message.ID,
			message.PetID,
			message.ChatRole,
			message.Content,
			message.Category,
			message.Model,
			message.CreatedAt,
		)
	}

	_, err := insertQry.ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListRecentAssistantMessages retrieves the latest assistant messages for a
// pet conversation, newest first, up to limit.
func (r ChatMessageRepository) ListRecentAssistantMessages(ctx context.Context, petID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	rows, err := r.sb.
		Select(chatFields...).
		From("ai_chat_messages").
		Where(squirrel.Eq{"pet_id": petID, "chat_role": domain.ChatRole_Assistant}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var msgs []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(
			&m.ID,
			&m.PetID,
			&m.ChatRole,
			&m.Content,
			&m.Category,
			&m.Model,
			&m.CreatedAt,
		); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return msgs, nil
}

// InitChatMessageRepository is a Symbiont initializer for ChatMessageRepository.
type InitChatMessageRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ChatMessageRepository in the dependency container.
func (r InitChatMessageRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ChatMessageRepository](NewChatMessageRepository(r.DB))
	return ctx, nil
}
