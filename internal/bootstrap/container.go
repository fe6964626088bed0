package bootstrap

import (
	"log"

	"rag-demo-be/internal/config"
	"rag-demo-be/internal/controller"
	"rag-demo-be/internal/pkg/logger"
	"rag-demo-be/internal/repository/implementation"
	"rag-demo-be/internal/service"
	"rag-demo-be/pkg/corpus"
	"rag-demo-be/pkg/embedding"
	"rag-demo-be/pkg/sensitive"

	pktNats "rag-demo-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	RagController controller.IRagController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for the one-shot CLI indexer
	IndexingService service.IIndexingService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// 2.5 Infrastructure
	// NATS is optional: the pipeline works without it, completion events
	// are simply not broadcast.
	var eventPublisher service.EventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
	}

	// 3. Repositories
	searchIndexRepo := implementation.NewSearchIndexRepository(db)
	runRepo := implementation.NewIndexingRunRepository(db)

	// 4. Services
	corpusSource := corpus.NewFsSource(cfg.Rag.DataPath)
	detector := sensitive.NewDefaultDetector()

	indexingService := service.NewIndexingService(
		corpusSource,
		embeddingProvider, // Injected
		searchIndexRepo,
		runRepo,
		eventPublisher,
		sysLogger,
		cfg.Rag.MaxChunkSize,
		cfg.Rag.OverlapSize,
	)
	queryService := service.NewQueryService(
		embeddingProvider, // Injected
		searchIndexRepo,
		detector,
		sysLogger,
		cfg.Rag.DefaultTopK,
	)

	publisherService := service.NewPublisherService(cfg.Rag.IndexTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Rag.IndexTopicName,
		indexingService,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		RagController: controller.NewRagController(indexingService, queryService, publisherService),

		ConsumerService: consumerService,
		IndexingService: indexingService,
		Logger:          sysLogger,
	}
}
