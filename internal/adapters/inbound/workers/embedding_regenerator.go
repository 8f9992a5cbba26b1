package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/usecases"
)

// EmbeddingRegenerator is a runnable that keeps the knowledge base embedded.
// It runs one pass at startup (forced when FORCE_REGENERATE is set) and then
// sweeps periodically to pick up entries whose embedding failed under quota.
type EmbeddingRegenerator struct {
	Logger               *log.Logger                   `resolve:""`
	RegenerateEmbeddings usecases.RegenerateEmbeddings `resolve:""`
	Interval             time.Duration                 `config:"REGENERATE_INTERVAL" default:"1h"`
	Force                bool                          `config:"FORCE_REGENERATE" default:"false"`
	workerExecutionChan  chan struct{}
}

// Run starts the embedding regenerator worker.
func (r EmbeddingRegenerator) Run(ctx context.Context) error {
	r.Logger.Println("EmbeddingRegenerator: running...")

	// The startup pass honors the force flag; periodic sweeps never do.
	r.pass(ctx, r.Force)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Logger.Println("EmbeddingRegenerator: stopped")
			return nil
		case <-ticker.C:
			r.pass(ctx, false)
		}
	}
}

func (r EmbeddingRegenerator) pass(ctx context.Context, force bool) {
	if r.workerExecutionChan != nil {
		r.workerExecutionChan <- struct{}{}
	}

	report, err := r.RegenerateEmbeddings.Execute(ctx, force)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			r.Logger.Printf("EmbeddingRegenerator: %v", err)
		}
		return
	}
	r.Logger.Printf("EmbeddingRegenerator: pass complete processed=%d skipped=%d", report.Processed, report.Skipped)
}
