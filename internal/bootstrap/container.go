package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"vape-support-be/internal/config"
	"vape-support-be/internal/controller"
	"vape-support-be/internal/pkg/convlog"
	"vape-support-be/internal/pkg/logger"
	"vape-support-be/internal/repository/catalog"
	"vape-support-be/internal/repository/memory"
	"vape-support-be/internal/service"
	"vape-support-be/pkg/convo"
	"vape-support-be/pkg/llm/factory"
	"vape-support-be/pkg/search"
)

// ConversationRecordTopic is the in-process topic the chat pipeline publishes
// audit records to.
const ConversationRecordTopic = "CONVERSATION_RECORD"

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Health surface
	SessionRepo  *memory.SessionRepository
	CatalogCount int
	AnswerCount  int
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Static Data
	loader := catalog.NewLoader(sysLogger)
	products, err := loader.LoadProducts(cfg.Data.CatalogPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load product catalog: %v", err)
	}
	answerCache, err := loader.LoadAnswers(cfg.Data.AnswersPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load answer cache: %v", err)
	}

	index := search.BuildIndex(products)
	searcher := search.NewCatalogSearcher(index, products)

	// 4. LLM Provider
	llmProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Session State
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Chat.SessionTTLMinutes) * time.Minute)
	convoManager := convo.NewManager(sessionRepo, cfg.Chat.MaxHistory, sysLogger)

	// 6. Services
	publisherService := service.NewPublisherService(ConversationRecordTopic, pubSub)
	convlogWriter := convlog.NewWriter(cfg.Data.ConvlogDir, sysLogger)
	consumerService := service.NewConsumerService(pubSub, ConversationRecordTopic, convlogWriter)

	chatService := service.NewChatService(
		answerCache,
		searcher,
		convoManager,
		llmProvider,
		publisherService,
		cfg.Chat.SearchTopK,
		sysLogger,
	)

	// 7. Controllers
	return &Container{
		ChatController:  controller.NewChatController(chatService),
		ConsumerService: consumerService,

		SessionRepo:  sessionRepo,
		CatalogCount: len(products),
		AnswerCount:  answerCache.Size(),
	}
}
