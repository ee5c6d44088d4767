package bootstrap

import (
	"context"
	"log"

	"studentdrive-be/internal/config"
	"studentdrive-be/internal/controller"
	"studentdrive-be/internal/pkg/logger"
	"studentdrive-be/internal/repository/memory"
	"studentdrive-be/internal/repository/unitofwork"
	"studentdrive-be/internal/service"
	"studentdrive-be/pkg/embedding"
	"studentdrive-be/pkg/generation"
	"studentdrive-be/pkg/llm/factory"

	pktNats "studentdrive-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	ContentController   controller.IContentController
	AiController        controller.IAiController
	SearchController    controller.ISearchController
	DashboardController controller.IDashboardController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Infrastructure exposed for server middleware
	Redis *redis.Client
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Embedding Provider
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbedModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else if cfg.Ai.GoogleGeminiKey != "" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey, "")
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		log.Printf("[WARN] No embedding provider configured. Semantic search disabled.")
	}

	// 4. Generation Client
	// The client tolerates a nil provider: all generation endpoints then fail
	// fast without touching the network.
	apiKey := cfg.Ai.GoogleGeminiKey
	if cfg.Ai.LLMProvider == "huggingface" {
		apiKey = cfg.Ai.HuggingFaceKey
	}
	generator := generation.NewClient(nil)
	llmProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, apiKey, cfg.Ai.LLMModel, cfg.Ai.LLMBaseURL)
	if err != nil {
		log.Printf("[WARN] LLM provider unavailable: %v. AI generation disabled.", err)
	} else {
		generator = generation.NewClient(llmProvider)
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 5. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	dashboardCache := memory.NewDashboardCache()

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Ai.EmbedTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ai.EmbedTopicName,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory, natsPub, cfg.Auth.TokenExpiryHrs)
	userService := service.NewUserService(uowFactory)
	contentService := service.NewContentService(uowFactory, publisherService, natsPub)
	aiService := service.NewAiService(uowFactory, generator, natsPub, sysLogger)
	searchService := service.NewSearchService(uowFactory, embeddingProvider)
	dashboardService := service.NewDashboardService(uowFactory, dashboardCache)

	// 7. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		ContentController:   controller.NewContentController(contentService),
		AiController:        controller.NewAiController(aiService),
		SearchController:    controller.NewSearchController(searchService),
		DashboardController: controller.NewDashboardController(dashboardService),

		ConsumerService: consumerService,

		Redis: rdb,
	}
}
