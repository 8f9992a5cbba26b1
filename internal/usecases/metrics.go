package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                   = otel.Meter("usecases")
	LLMTokensUsed           metric.Int64Counter
	QuestionsAnswered       metric.Int64Counter
	ImageValidationOutcomes metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	// Answered questions split by confidence tier and matching strategy
	QuestionsAnswered, err = meter.Int64Counter(
		"questions_answered_total",
		metric.WithDescription("Total questions answered, by confidence tier and match strategy"),
	)
	if err != nil {
		panic(err)
	}

	// Image validation outcomes split by method
	ImageValidationOutcomes, err = meter.Int64Counter(
		"image_validations_total",
		metric.WithDescription("Total image validations, by outcome method"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordQuestionAnswered records one answered question with its confidence tier
// and the matching strategy that produced the score.
func RecordQuestionAnswered(ctx context.Context, tier domain.ConfidenceTier, strategy string) {
	if strategy == "" {
		strategy = "none"
	}
	QuestionsAnswered.Add(ctx, 1, metric.WithAttributes(
		attribute.String("confidence_tier", tier.String()),
		attribute.String("match_strategy", strategy),
	))
}

// RecordImageValidation records one image validation outcome.
func RecordImageValidation(ctx context.Context, method domain.ValidationMethod) {
	ImageValidationOutcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", string(method)),
	))
}
