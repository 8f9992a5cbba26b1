// Package search implements the tiered knowledge-base matching chain:
// vector store, in-memory cosine recomputation, keyword overlap. The order is
// a first-class data structure so failure-mode switching stays testable and
// invisible to downstream consumers.
package search

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// DefaultAttemptTimeout bounds one strategy attempt so a hung store
	// degrades to the next stage instead of stalling the request.
	DefaultAttemptTimeout = 5 * time.Second
)

// MatchStrategy is one matching stage. Attempt returns scored entries in
// descending score order, or an error when the stage cannot run at all
// (provider/store unavailable). An empty result means the stage ran and
// found nothing.
type MatchStrategy interface {
	// Name identifies the strategy in logs, spans and metrics.
	Name() string

	// Attempt runs the strategy for one query.
	Attempt(ctx context.Context, query domain.Query) ([]domain.ScoredEntry, error)
}

// Result is the outcome of a chain run.
type Result struct {
	Matches  []domain.ScoredEntry
	Strategy string
}

// Best returns the top match.
func (r Result) Best() (domain.ScoredEntry, bool) {
	if len(r.Matches) == 0 {
		return domain.ScoredEntry{}, false
	}
	return r.Matches[0], true
}

// Chain runs an ordered list of strategies until one yields matches. Every
// attempt runs under its own deadline so one hung stage cannot keep the later
// stages from being tried.
type Chain struct {
	strategies     []MatchStrategy
	attemptTimeout time.Duration
}

// NewChain creates a chain over the given strategies, tried in order.
func NewChain(attemptTimeout time.Duration, strategies ...MatchStrategy) Chain {
	if attemptTimeout <= 0 {
		attemptTimeout = DefaultAttemptTimeout
	}
	return Chain{strategies: strategies, attemptTimeout: attemptTimeout}
}

// Run tries each strategy in order and returns the first non-empty result.
// Stage failures (embedding unavailable, vector store unreachable, attempt
// deadline exceeded) advance the chain; they are recorded on the span but
// never surfaced to the caller. Only cancellation of the caller's context
// stops the chain early. The second return value is false when every stage
// was exhausted without a match.
func (c Chain) Run(ctx context.Context, query domain.Query) (Result, bool) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	for _, strategy := range c.strategies {
		if spanCtx.Err() != nil {
			break
		}

		matches, err := c.attempt(spanCtx, strategy, query)
		if err != nil {
			span.AddEvent("match strategy failed, advancing chain")
			span.RecordError(err)
			continue
		}
		if len(matches) == 0 {
			continue
		}

		span.SetAttributes(
			attribute.String("match_strategy", strategy.Name()),
			attribute.Float64("best_score", matches[0].Score),
		)
		return Result{Matches: matches, Strategy: strategy.Name()}, true
	}

	span.AddEvent("match chain exhausted without a match")
	return Result{}, false
}

// attempt runs one strategy under the per-attempt deadline.
func (c Chain) attempt(ctx context.Context, strategy MatchStrategy, query domain.Query) ([]domain.ScoredEntry, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()
	return strategy.Attempt(attemptCtx, query)
}
