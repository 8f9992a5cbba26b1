package usecases

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/common"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/composer"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/search"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.yaml.in/yaml/v3"
)

const (
	// Keep generation grounded and bounded.
	ANSWER_MAX_TOKENS  = 512
	ANSWER_TEMPERATURE = 0.4

	// Bound on the embedding call so a slow provider degrades to the keyword
	// stage instead of stalling the request.
	DEFAULT_ENCODE_TIMEOUT = 5 * time.Second
)

//go:embed prompts/enrich-answer.yml prompts/fallback-answer.yml
var answerPrompts embed.FS

// greetings are matched against the whole normalized question, not substrings.
var greetings = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "yo": {}, "hiya": {}, "howdy": {},
	"good morning": {}, "good afternoon": {}, "good evening": {},
	"hi there": {}, "hello there": {},
}

// Matcher runs the knowledge-base fallback chain for one query.
type Matcher interface {
	Run(ctx context.Context, query domain.Query) (search.Result, bool)
}

// AnswerQuestionResult is the composed assistant response for one question.
type AnswerQuestionResult struct {
	Content  string
	Category domain.MessageCategory
	Tier     domain.ConfidenceTier
	Strategy string
}

// AnswerQuestion defines the interface for answering one owner question.
type AnswerQuestion interface {
	// Execute runs the question through the fallback chain and the confidence
	// classifier and returns the composed, persisted assistant response.
	Execute(ctx context.Context, question string, profile domain.PetProfile) (AnswerQuestionResult, error)
}

// AnswerQuestionImpl is the implementation of AnswerQuestion.
type AnswerQuestionImpl struct {
	encoder       domain.SemanticEncoder
	matcher       Matcher
	thresholds    domain.TierThresholds
	llmClient     domain.LLMClient
	chatRepo      domain.ChatMessageRepository
	timeProvider  domain.CurrentTimeProvider
	composer      composer.Composer
	model         string
	encodeTimeout time.Duration
}

// NewAnswerQuestionImpl creates a new instance of AnswerQuestionImpl.
func NewAnswerQuestionImpl(
	encoder domain.SemanticEncoder,
	matcher Matcher,
	thresholds domain.TierThresholds,
	llmClient domain.LLMClient,
	chatRepo domain.ChatMessageRepository,
	timeProvider domain.CurrentTimeProvider,
	c composer.Composer,
	model string,
	encodeTimeout time.Duration,
) AnswerQuestionImpl {
	if encodeTimeout <= 0 {
		encodeTimeout = DEFAULT_ENCODE_TIMEOUT
	}
	return AnswerQuestionImpl{
		encoder:       encoder,
		matcher:       matcher,
		thresholds:    thresholds,
		llmClient:     llmClient,
		chatRepo:      chatRepo,
		timeProvider:  timeProvider,
		composer:      c,
		model:         model,
		encodeTimeout: encodeTimeout,
	}
}

// Execute answers one question. Degraded conditions (provider down, store
// unreachable, no match) never surface as errors; they produce a composed
// response with the appropriate category tag.
func (aq AnswerQuestionImpl) Execute(ctx context.Context, question string, profile domain.PetProfile) (AnswerQuestionResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	question = strings.TrimSpace(question)
	if question == "" {
		return AnswerQuestionResult{}, domain.NewValidationErr("question cannot be empty")
	}
	if profile.PetID == uuid.Nil {
		return AnswerQuestionResult{}, domain.NewValidationErr("pet id cannot be empty")
	}

	if isGreeting(question) {
		result := AnswerQuestionResult{
			Content:  fmt.Sprintf("Hello! I'm here to help you take care of %s. Ask me anything about feeding, health, training or grooming.", profile.DisplayName()),
			Category: domain.MessageCategory_GREETING,
		}
		if err := aq.persistTurn(spanCtx, profile.PetID, question, result); telemetry.RecordErrorAndStatus(span, err) {
			return AnswerQuestionResult{}, fmt.Errorf("failed to persist greeting: %w", err)
		}
		return result, nil
	}

	query := domain.Query{Text: question, Embedding: aq.encodeQuery(spanCtx, question)}

	matchResult, found := aq.matcher.Run(spanCtx, query)
	classification := domain.Classification{Tier: domain.Tier_NONE, Action: domain.ResponseAction_LLM_FALLBACK}
	var best domain.ScoredEntry
	if found {
		best, _ = matchResult.Best()
		classification = aq.thresholds.Classify(best.Score)
	}
	span.SetAttributes(
		attribute.String("confidence_tier", classification.Tier.String()),
		attribute.String("response_action", string(classification.Action)),
	)

	result := aq.buildResponse(spanCtx, question, profile, classification, best)
	result.Tier = classification.Tier
	result.Strategy = matchResult.Strategy
	RecordQuestionAnswered(spanCtx, classification.Tier, matchResult.Strategy)

	history, err := aq.chatRepo.ListRecentAssistantMessages(spanCtx, profile.PetID, composer.DefaultLookback)
	if err != nil {
		// Composition degrades to the full variant; the response itself is unaffected.
		span.RecordError(err)
		history = nil
	}
	result.Content = aq.composer.Compose(result.Category, history, result.Content)

	if err := aq.persistTurn(spanCtx, profile.PetID, question, result); telemetry.RecordErrorAndStatus(span, err) {
		return AnswerQuestionResult{}, fmt.Errorf("failed to persist chat turn: %w", err)
	}
	return result, nil
}

// encodeQuery embeds the question under a bounded timeout. Failures are
// recorded and produce a nil embedding so the chain can advance to the
// keyword stage.
func (aq AnswerQuestionImpl) encodeQuery(ctx context.Context, question string) []float64 {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	encodeCtx, cancel := context.WithTimeout(spanCtx, aq.encodeTimeout)
	defer cancel()

	resp, err := aq.encoder.Encode(encodeCtx, question)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil
	}
	RecordLLMTokensEmbedding(spanCtx, resp.TotalTokens)
	return resp.Embedding
}

// buildResponse maps the classification action to response content and
// category. LLM failures inside this step always degrade to a static message,
// never propagate.
func (aq AnswerQuestionImpl) buildResponse(
	ctx context.Context,
	question string,
	profile domain.PetProfile,
	classification domain.Classification,
	best domain.ScoredEntry,
) AnswerQuestionResult {
	switch classification.Action {
	case domain.ResponseAction_ANSWER_DIRECTLY:
		return AnswerQuestionResult{
			Content:  best.Entry.SanitizedAnswer(),
			Category: domain.MessageCategory_KB_ANSWER,
		}

	case domain.ResponseAction_ANSWER_ENRICHED:
		enriched, err := aq.enrichAnswer(ctx, question, profile, best.Entry)
		if err != nil {
			// Enrichment is an optional improvement; the verified answer stands.
			return AnswerQuestionResult{
				Content:  best.Entry.SanitizedAnswer(),
				Category: domain.MessageCategory_KB_ANSWER,
			}
		}
		return AnswerQuestionResult{
			Content:  enriched,
			Category: domain.MessageCategory_ENRICHED_ANSWER,
		}

	case domain.ResponseAction_USE_AS_CONTEXT:
		content, err := aq.fallbackAnswer(ctx, question, profile, &best.Entry)
		if err != nil {
			return AnswerQuestionResult{Category: domain.MessageCategory_DEGRADED}
		}
		return AnswerQuestionResult{
			Content:  content,
			Category: domain.MessageCategory_LOW_CONFIDENCE_WARNING,
		}

	default:
		content, err := aq.fallbackAnswer(ctx, question, profile, nil)
		if err != nil {
			return AnswerQuestionResult{Category: domain.MessageCategory_DEGRADED}
		}
		return AnswerQuestionResult{
			Content:  content,
			Category: domain.MessageCategory_LLM_FALLBACK,
		}
	}
}

// enrichAnswer asks the LLM to tailor a verified answer to the pet profile.
func (aq AnswerQuestionImpl) enrichAnswer(ctx context.Context, question string, profile domain.PetProfile, entry domain.KnowledgeEntry) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	messages, err := loadPromptMessages(answerPrompts, "prompts/enrich-answer.yml", profileTOON(profile), entry.SanitizedAnswer(), question)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	resp, err := aq.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:       aq.model,
		Messages:    messages,
		Temperature: common.Ptr(ANSWER_TEMPERATURE),
		MaxTokens:   common.Ptr(ANSWER_MAX_TOKENS),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	RecordLLMTokensUsed(spanCtx, resp.PromptTokens, resp.CompletionTokens)

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", domain.NewValidationErr("llm returned an empty enrichment")
	}
	return content, nil
}

// fallbackAnswer generates an answer with the LLM, optionally grounded on a
// weakly matching knowledge-base entry.
func (aq AnswerQuestionImpl) fallbackAnswer(ctx context.Context, question string, profile domain.PetProfile, entry *domain.KnowledgeEntry) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	kbContext := "none"
	if entry != nil {
		kbContext = fmt.Sprintf("Q: %s\nA: %s", entry.Question, entry.SanitizedAnswer())
	}

	messages, err := loadPromptMessages(answerPrompts, "prompts/fallback-answer.yml", profileTOON(profile), kbContext, question)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	resp, err := aq.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:       aq.model,
		Messages:    messages,
		Temperature: common.Ptr(ANSWER_TEMPERATURE),
		MaxTokens:   common.Ptr(ANSWER_MAX_TOKENS),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	RecordLLMTokensUsed(spanCtx, resp.PromptTokens, resp.CompletionTokens)

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", domain.NewValidationErr("llm returned an empty answer")
	}
	return content, nil
}

// persistTurn appends the user question and the assistant response in one call.
func (aq AnswerQuestionImpl) persistTurn(ctx context.Context, petID uuid.UUID, question string, result AnswerQuestionResult) error {
	now := aq.timeProvider.Now()
	return aq.chatRepo.CreateChatMessages(ctx, []domain.ChatMessage{
		{
			ID:        uuid.New(),
			PetID:     petID,
			ChatRole:  domain.ChatRole_User,
			Content:   question,
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			PetID:     petID,
			ChatRole:  domain.ChatRole_Assistant,
			Content:   result.Content,
			Category:  result.Category,
			Model:     aq.model,
			CreatedAt: now,
		},
	})
}

// isGreeting reports whether the whole question is a plain greeting.
func isGreeting(question string) bool {
	normalized := strings.ToLower(strings.TrimRight(strings.TrimSpace(question), ".,!? "))
	_, ok := greetings[normalized]
	return ok
}

// profileTOON serializes the pet profile for LLM input.
func profileTOON(profile domain.PetProfile) string {
	serialized, err := toon.MarshalString(profile, toon.WithLengthMarkers(true))
	if err != nil {
		return "name: " + profile.DisplayName()
	}
	return serialized
}

// loadPromptMessages loads an embedded prompt template and injects the
// arguments into placeholder-bearing messages.
func loadPromptMessages(prompts embed.FS, name string, args ...any) ([]domain.LLMMessage, error) {
	file, err := prompts.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, err
	}

	for i, msg := range messages {
		if strings.Contains(msg.Content, "%[") {
			messages[i].Content = fmt.Sprintf(msg.Content, args...)
		}
	}
	return messages, nil
}

// InitAnswerQuestion initializes AnswerQuestion.
type InitAnswerQuestion struct {
	Encoder       domain.SemanticEncoder       `resolve:""`
	KnowledgeRepo domain.KnowledgeRepository   `resolve:""`
	LLMClient     domain.LLMClient             `resolve:""`
	ChatRepo      domain.ChatMessageRepository `resolve:""`
	TimeProvider  domain.CurrentTimeProvider   `resolve:""`
	Model         string                       `config:"LLM_CHAT_MODEL"`
	EncodeTimeout time.Duration                `config:"EMBEDDING_TIMEOUT" default:"5s"`
	SearchTimeout time.Duration                `config:"SEARCH_TIMEOUT" default:"5s"`
	TopK          int                          `config:"SEARCH_TOP_K" default:"3"`
	MinSimilarity float64                      `config:"SEARCH_MIN_SIMILARITY" default:"0.55"`
}

// Initialize registers AnswerQuestion in the dependency container.
func (i InitAnswerQuestion) Initialize(ctx context.Context) (context.Context, error) {
	chain := search.NewChain(
		i.SearchTimeout,
		search.NewVectorStrategy(i.KnowledgeRepo, i.TopK, i.MinSimilarity),
		search.NewInMemoryStrategy(i.KnowledgeRepo, i.TopK, i.MinSimilarity),
		search.NewKeywordStrategy(i.KnowledgeRepo, i.TopK),
	)
	depend.Register[AnswerQuestion](NewAnswerQuestionImpl(
		i.Encoder,
		chain,
		domain.DefaultTierThresholds,
		i.LLMClient,
		i.ChatRepo,
		i.TimeProvider,
		composer.New(composer.DefaultLookback),
		i.Model,
		i.EncodeTimeout,
	))
	return ctx, nil
}
