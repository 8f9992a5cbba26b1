package modelrunner

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// LLMClient adapts DRMAPIClient to domain.LLMClient interface
type LLMClient struct {
	client DRMAPIClient
}

// NewLLMClientAdapter creates a new adapter
func NewLLMClientAdapter(client DRMAPIClient) LLMClient {
	return LLMClient{client: client}
}

// Chat implements domain.LLMClient.Chat
func (a LLMClient) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}

	for i, msg := range req.Messages {
		adapterReq.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	out := domain.LLMChatResponse{
		Content: resp.Choices[0].Message.Content,
	}
	if resp.Usage != nil {
		out.PromptTokens = resp.Usage.PromptTokens
		out.CompletionTokens = resp.Usage.CompletionTokens
	}
	return out, nil
}

// Embed implements domain.LLMClient.Embed. Quota exhaustion and transport
// failures are mapped to *domain.EmbeddingUnavailableErr so callers can fall
// back instead of failing the request.
func (a LLMClient) Embed(ctx context.Context, model, input string) (domain.EmbedResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.Embeddings(spanCtx, EmbeddingsRequest{
		Model: model,
		Input: input,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbedResponse{}, mapEmbedError(err)
	}

	if len(resp.Data) == 0 {
		err := domain.NewEmbeddingUnavailableErr("no embedding data in response", nil)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbedResponse{}, err
	}

	return domain.EmbedResponse{
		Embedding:   resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// mapEmbedError classifies a provider failure. Quota responses and network
// errors both make embeddings unavailable; the distinction matters only for
// the wrapped cause.
func mapEmbedError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests, http.StatusPaymentRequired:
			return domain.NewEmbeddingUnavailableErr("embedding quota exhausted", err)
		default:
			return domain.NewEmbeddingUnavailableErr("embedding provider error", err)
		}
	}
	return domain.NewEmbeddingUnavailableErr("embedding provider unreachable", err)
}

// InitLLMClient initializes the LLMClient dependency
type InitLLMClient struct {
	HttpClient *http.Client `resolve:""`
	LLMHost    string       `config:"LLM_MODEL_HOST"`
}

// Initialize registers the LLMClient
func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.LLMClient](NewLLMClientAdapter(
		NewDRMAPIClient(i.LLMHost, "", i.HttpClient),
	))
	return ctx, nil
}
