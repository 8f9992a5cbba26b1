package domain

import "context"

// EmbedResponse represents the response from an embedding request to the LLM API.
type EmbedResponse struct {
	Embedding   []float64
	TotalTokens int
}

// LLMMessage is one message in a chat-completion request.
type LLMMessage struct {
	Role    ChatRole `yaml:"role"`
	Content string   `yaml:"content"`
}

// LLMChatRequest is a chat-completion request in domain terms.
type LLMChatRequest struct {
	Model       string
	Messages    []LLMMessage
	Temperature *float64
	MaxTokens   *int
}

// LLMChatResponse carries the assistant content and token accounting.
type LLMChatResponse struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// LLMClient defines the interface for interacting with an LLM API.
type LLMClient interface {
	// Chat sends a chat request to the LLM and returns the full assistant response.
	Chat(ctx context.Context, req LLMChatRequest) (LLMChatResponse, error)

	// Embed creates an embedding for the given input string. Quota or network
	// failures are returned as *EmbeddingUnavailableErr.
	Embed(ctx context.Context, model, input string) (EmbedResponse, error)
}

// SemanticEncoder produces query and document vectors, consulting a persistent
// cache before calling the embedding provider.
type SemanticEncoder interface {
	// Encode returns the embedding for the given text. A warm cache hit makes
	// no provider call and returns the stored vector unchanged.
	Encode(ctx context.Context, text string) (EmbedResponse, error)
}
