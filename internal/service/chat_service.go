package service

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"vape-support-be/internal/constant"
	"vape-support-be/internal/dto"
	"vape-support-be/internal/pkg/convlog"
	"vape-support-be/internal/pkg/logger"
	"vape-support-be/pkg/answercache"
	"vape-support-be/pkg/convo"
	"vape-support-be/pkg/llm"
	"vape-support-be/pkg/query"
	"vape-support-be/pkg/rag/response"
	"vape-support-be/pkg/search"
	"vape-support-be/pkg/store"
)

// IChatService defines the chat service interface
type IChatService interface {
	SendChat(ctx context.Context, request *dto.SendChatRequest) *dto.SendChatResponse
	RecordFeedback(ctx context.Context, request *dto.FeedbackRequest) error
	GetChatHistory(ctx context.Context, sessionID string, limit int) *dto.GetChatHistoryResponse
}

// chatService coordinates the per-request pipeline: follow-up resolution,
// preprocessing, cache lookup, classification, retrieval, generation and the
// session/audit updates that follow.
type chatService struct {
	preprocessor      *query.Preprocessor
	classifier        *query.Classifier
	answerCache       *answercache.Cache
	searcher          *search.CatalogSearcher
	convoManager      *convo.Manager
	responseGenerator *response.Generator
	publisherService  IPublisherService

	searchTopK int
	sysLogger  logger.ILogger
	llmLogger  *log.Logger
}

func NewChatService(
	answerCache *answercache.Cache,
	searcher *search.CatalogSearcher,
	convoManager *convo.Manager,
	llmProvider llm.Provider,
	publisherService IPublisherService,
	searchTopK int,
	sysLogger logger.ILogger,
) IChatService {
	if searchTopK <= 0 {
		searchTopK = 3
	}

	llmLogger := initLLMLogger()

	return &chatService{
		preprocessor:      query.NewPreprocessor(),
		classifier:        query.NewClassifier(),
		answerCache:       answerCache,
		searcher:          searcher,
		convoManager:      convoManager,
		responseGenerator: response.NewGenerator(llmProvider, llmLogger),
		publisherService:  publisherService,
		searchTopK:        searchTopK,
		sysLogger:         sysLogger,
		llmLogger:         llmLogger,
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_chat.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-CHAT] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// SendChat runs the full pipeline for one message. It never returns an error:
// a panic anywhere below degrades to an apology with status "error", every
// other failure degrades inside its own component.
func (cs *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (resp *dto.SendChatResponse) {
	sessionID := request.SessionId
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	defer func() {
		if r := recover(); r != nil {
			cs.sysLogger.Error("chat", "panic recovered in chat pipeline", map[string]interface{}{
				"session_id": sessionID,
				"panic":      r,
			})
			resp = &dto.SendChatResponse{
				Response:  constant.RecoveryApology,
				Status:    "error",
				SessionId: sessionID,
			}
		}
	}()

	sess := cs.convoManager.GetOrCreate(sessionID)

	// Resolve pronouns against the last-mentioned product before anything
	// downstream sees the query.
	resolved := cs.convoManager.ResolveFollowUp(request.Message, sess)

	pre := cs.preprocessor.Process(resolved)
	cacheHit, cachedResponse, cachedProducts := cs.answerCache.Lookup(pre.Cleaned)

	result := cs.classifier.Classify(query.Input{
		Query:    pre.Cleaned,
		Pre:      pre,
		Session:  sess,
		CacheHit: cacheHit,
	})

	cs.sysLogger.Info("chat", "query classified", map[string]interface{}{
		"session_id": sessionID,
		"intent":     result.Intent,
		"confidence": result.Confidence,
		"cache_hit":  cacheHit,
		"material":   pre.Material,
	})

	history := cs.convoManager.GetHistory(sessionID, 3)

	var answer string
	var productsShown []store.Product

	switch {
	case result.Intent == query.IntentOffTopic:
		answer = constant.OffTopicRedirect

	case cacheHit:
		answer = cachedResponse
		productsShown = cachedProducts

	case result.Intent == query.IntentCustomerService:
		answer = cs.responseGenerator.GenerateWithPolicy(
			ctx, resolved, result.Intent, constant.CustomerServicePolicy, history)

	default:
		productsShown = cs.searcher.Search(pre.Cleaned, cs.searchTopK)
		answer = cs.responseGenerator.Generate(ctx, resolved, result.Intent, productsShown, history)
	}

	cs.convoManager.Update(sessionID, resolved, result.Intent, productsShown)
	cs.convoManager.AddExchange(sessionID, store.Exchange{
		UserMessage:   request.Message,
		BotResponse:   answer,
		Intent:        result.Intent,
		Confidence:    result.Confidence,
		ProductsShown: productsShown,
		Timestamp:     time.Now(),
	})

	cs.publishRecord(ctx, convlog.Record{
		ChatId:        uuid.NewString(),
		SessionId:     sessionID,
		Timestamp:     time.Now(),
		UserMessage:   request.Message,
		BotResponse:   answer,
		Intent:        result.Intent,
		Confidence:    result.Confidence,
		ProductsShown: productNames(productsShown),
		ProductURLs:   productURLs(productsShown),
	})

	return &dto.SendChatResponse{
		Response:      answer,
		Status:        "success",
		SessionId:     sessionID,
		Intent:        result.Intent,
		Confidence:    result.Confidence,
		ProductsShown: productSummaries(productsShown),
	}
}

// RecordFeedback attaches feedback to a past exchange and logs it to the
// conversation sink. Unknown sessions or indexes are a no-op by design of the
// conversation manager.
func (cs *chatService) RecordFeedback(ctx context.Context, request *dto.FeedbackRequest) error {
	cs.convoManager.RecordFeedback(request.SessionId, request.ExchangeIndex, request.Feedback)

	cs.publishRecord(ctx, convlog.Record{
		ChatId:    uuid.NewString(),
		SessionId: request.SessionId,
		Timestamp: time.Now(),
		Feedback:  request.Feedback,
	})
	return nil
}

func (cs *chatService) GetChatHistory(ctx context.Context, sessionID string, limit int) *dto.GetChatHistoryResponse {
	if limit <= 0 {
		limit = convo.DefaultMaxHistory
	}
	exchanges := cs.convoManager.GetHistory(sessionID, limit)

	out := make([]dto.ExchangeResponse, 0, len(exchanges))
	for _, ex := range exchanges {
		out = append(out, dto.ExchangeResponse{
			UserMessage: ex.UserMessage,
			BotResponse: ex.BotResponse,
			Intent:      ex.Intent,
			Confidence:  ex.Confidence,
			Feedback:    ex.Feedback,
			Timestamp:   ex.Timestamp,
		})
	}

	return &dto.GetChatHistoryResponse{
		SessionId: sessionID,
		Exchanges: out,
	}
}

// publishRecord hands the record to the event bus. Audit logging is
// auxiliary; a publish failure is logged and the request proceeds.
func (cs *chatService) publishRecord(ctx context.Context, rec convlog.Record) {
	payload, err := json.Marshal(rec)
	if err != nil {
		cs.sysLogger.Error("chat", "marshal conversation record failed", map[string]interface{}{
			"session_id": rec.SessionId, "error": err.Error(),
		})
		return
	}
	if err := cs.publisherService.Publish(ctx, payload); err != nil {
		cs.sysLogger.Warn("chat", "publish conversation record failed", map[string]interface{}{
			"session_id": rec.SessionId, "error": err.Error(),
		})
	}
}

func productNames(products []store.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func productURLs(products []store.Product) []string {
	urls := make([]string, 0, len(products))
	for _, p := range products {
		if p.URL != "" {
			urls = append(urls, p.URL)
		}
	}
	return urls
}

func productSummaries(products []store.Product) []dto.ProductSummary {
	summaries := make([]dto.ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, dto.ProductSummary{
			Name:  p.Name,
			Price: p.Price,
			URL:   p.URL,
		})
	}
	return summaries
}
