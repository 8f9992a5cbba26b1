package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/adapters/outbound/embedcache"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/adapters/outbound/visionrunner"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/usecases"
)

// NewDogCareApp creates and returns a new instance of the dog care assistant application.
func NewDogCareApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitKnowledgeRepository{},
			&postgres.InitChatMessageRepository{},
			&time.InitCurrentTimeProvider{},
			&modelrunner.InitLLMClient{},
			&visionrunner.InitVisionClients{},
			&embedcache.InitSemanticEncoder{},

			&usecases.InitAnswerQuestion{},
			&usecases.InitAnalyzeImage{},
			&usecases.InitRegenerateEmbeddings{},
		).
		Host(
			&workers.EmbeddingRegenerator{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
