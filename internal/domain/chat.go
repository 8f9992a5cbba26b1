package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
)

// MessageCategory tags the semantic type of an assistant message. The tag is
// assigned at write time so later turns never re-parse rendered text to infer
// what kind of message was sent.
type MessageCategory string

const (
	MessageCategory_GREETING               MessageCategory = "GREETING"
	MessageCategory_KB_ANSWER              MessageCategory = "KB_ANSWER"
	MessageCategory_ENRICHED_ANSWER        MessageCategory = "ENRICHED_ANSWER"
	MessageCategory_LLM_FALLBACK           MessageCategory = "LLM_FALLBACK"
	MessageCategory_LOW_CONFIDENCE_WARNING MessageCategory = "LOW_CONFIDENCE_WARNING"
	MessageCategory_VALIDATION_FAILED      MessageCategory = "VALIDATION_FAILED"
	MessageCategory_BREED_IDENTIFIED       MessageCategory = "BREED_IDENTIFIED"
	MessageCategory_BREED_UNCERTAIN        MessageCategory = "BREED_UNCERTAIN"
	MessageCategory_DEGRADED               MessageCategory = "DEGRADED"
)

// ChatMessage represents a chat message in the pet conversation.
// User messages carry an empty Category.
type ChatMessage struct {
	ID        uuid.UUID
	PetID     uuid.UUID
	ChatRole  ChatRole
	Content   string
	Category  MessageCategory
	Model     string
	CreatedAt time.Time
}

// ChatMessageRepository defines the interface for chat message persistence.
// The conversation store is owned externally; the core only appends and reads
// a bounded recent suffix.
type ChatMessageRepository interface {
	// CreateChatMessages appends chat messages to the pet conversation.
	CreateChatMessages(ctx context.Context, messages []ChatMessage) error

	// ListRecentAssistantMessages retrieves the latest assistant messages for a
	// pet conversation, newest first, up to limit.
	ListRecentAssistantMessages(ctx context.Context, petID uuid.UUID, limit int) ([]ChatMessage, error)
}
