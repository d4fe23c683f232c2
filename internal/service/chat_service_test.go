package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vape-support-be/internal/constant"
	"vape-support-be/internal/dto"
	"vape-support-be/internal/pkg/convlog"
	"vape-support-be/internal/pkg/logger"
	"vape-support-be/internal/repository/memory"
	"vape-support-be/pkg/answercache"
	"vape-support-be/pkg/convo"
	"vape-support-be/pkg/llm"
	"vape-support-be/pkg/query"
	"vape-support-be/pkg/search"
	"vape-support-be/pkg/store"
)

// fakeProvider returns a fixed answer and counts calls.
type fakeProvider struct {
	answer string
	calls  int
	panics bool
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return f.Generate(ctx, "", opts...)
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.calls++
	if f.panics {
		panic("provider exploded")
	}
	return f.answer, nil
}

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error {
	return nil
}

var _ logger.ILogger = nopLogger{}

func testProducts() []store.Product {
	return []store.Product{
		{
			Name: "V5", FullName: "V5 Concentrate Atomizer",
			URL: "https://shop/v5", Price: "$89.99", Priority: 1, Boost: 1.5,
			Description: "ceramic cup atomizer for wax and concentrates",
			Keywords:    []string{"wax", "dab", "concentrate"},
		},
		{
			Name: "Core 2.0", FullName: "Core 2.0 Deluxe E-Rig",
			URL: "https://shop/core", Price: "$199.99", Priority: 2, Boost: 1.3,
			Description: "all in one e-rig with bubbler for concentrates",
			Keywords:    []string{"core", "rig", "bubbler"},
		},
		{
			Name: "Nice Dreamz", FullName: "Nice Dreamz Dry Herb Vaporizer",
			URL: "https://shop/dreamz", Price: "$129.99", Priority: 2, Boost: 1.2,
			Description: "convection vaporizer for dry herb and flower",
			Keywords:    []string{"herb", "flower", "convection"},
		},
	}
}

func newTestService(provider llm.Provider, publisher IPublisherService) IChatService {
	products := testProducts()
	searcher := search.NewCatalogSearcher(search.BuildIndex(products), products)
	sessionRepo := memory.NewSessionRepository(time.Hour)
	convoManager := convo.NewManager(sessionRepo, 10, nopLogger{})

	return NewChatService(
		answercache.New(answercache.Defaults()),
		searcher,
		convoManager,
		provider,
		publisher,
		3,
		nopLogger{},
	)
}

func TestSendChatShoppingScenario(t *testing.T) {
	provider := &fakeProvider{answer: "The V5 is a great fit for wax."}
	publisher := &capturingPublisher{}
	svc := newTestService(provider, publisher)

	res := svc.SendChat(context.Background(), &dto.SendChatRequest{
		Message: "best vape for wax under $150",
	})

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, query.IntentMaterialShopping, res.Intent)
	assert.Equal(t, 0.75, res.Confidence)
	assert.NotEmpty(t, res.SessionId)
	assert.NotEmpty(t, res.ProductsShown)
	assert.Equal(t, provider.answer, res.Response)
	assert.Equal(t, 1, provider.calls)
}

func TestSendChatOffTopicSkipsGeneration(t *testing.T) {
	provider := &fakeProvider{answer: "should never appear"}
	svc := newTestService(provider, &capturingPublisher{})

	res := svc.SendChat(context.Background(), &dto.SendChatRequest{
		Message: "who won the football game last night",
	})

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, query.IntentOffTopic, res.Intent)
	assert.Equal(t, constant.OffTopicRedirect, res.Response)
	assert.Empty(t, res.ProductsShown)
	assert.Zero(t, provider.calls)
}

func TestSendChatCacheHitSkipsGeneration(t *testing.T) {
	provider := &fakeProvider{answer: "should never appear"}
	svc := newTestService(provider, &capturingPublisher{})

	res := svc.SendChat(context.Background(), &dto.SendChatRequest{
		Message: "tell me about v5",
	})

	assert.Equal(t, "success", res.Status)
	assert.Contains(t, res.Response, "**V5 Advanced Concentrate Atomizer**")
	assert.Len(t, res.ProductsShown, 1)
	assert.Zero(t, provider.calls)
}

func TestSendChatFollowUpResolution(t *testing.T) {
	provider := &fakeProvider{answer: "Generated answer."}
	svc := newTestService(provider, &capturingPublisher{})

	first := svc.SendChat(context.Background(), &dto.SendChatRequest{
		Message: "looking at the core, is the rig worth it",
	})
	assert.Equal(t, "success", first.Status)
	assert.NotEmpty(t, first.ProductsShown)

	// The pronoun resolves against the product just shown, so the follow-up
	// stays a product question instead of losing all context.
	second := svc.SendChat(context.Background(), &dto.SendChatRequest{
		Message:   "is it good for beginners",
		SessionId: first.SessionId,
	})
	assert.Equal(t, "success", second.Status)
	assert.Equal(t, first.SessionId, second.SessionId)
	assert.NotEmpty(t, second.ProductsShown)

	history := svc.GetChatHistory(context.Background(), first.SessionId, 10)
	assert.Len(t, history.Exchanges, 2)
	assert.Equal(t, "is it good for beginners", history.Exchanges[1].UserMessage)
}

func TestSendChatPanicRecovery(t *testing.T) {
	provider := &fakeProvider{panics: true}
	svc := newTestService(provider, &capturingPublisher{})

	res := svc.SendChat(context.Background(), &dto.SendChatRequest{
		Message: "best device for wax",
	})

	assert.Equal(t, "error", res.Status)
	assert.Equal(t, constant.RecoveryApology, res.Response)
	assert.NotEmpty(t, res.SessionId)
}

func TestSendChatPublishesConversationRecord(t *testing.T) {
	provider := &fakeProvider{answer: "answer"}
	publisher := &capturingPublisher{}
	svc := newTestService(provider, publisher)

	res := svc.SendChat(context.Background(), &dto.SendChatRequest{
		Message: "best device for wax",
	})

	assert.Len(t, publisher.payloads, 1)

	var rec convlog.Record
	assert.NoError(t, json.Unmarshal(publisher.payloads[0], &rec))
	assert.Equal(t, res.SessionId, rec.SessionId)
	assert.Equal(t, "best device for wax", rec.UserMessage)
	assert.NotEmpty(t, rec.ChatId)
	assert.NotEmpty(t, rec.ProductsShown)
	assert.Len(t, rec.ProductURLs, len(rec.ProductsShown))
}

func TestRecordFeedbackRoundTrip(t *testing.T) {
	provider := &fakeProvider{answer: "answer"}
	publisher := &capturingPublisher{}
	svc := newTestService(provider, publisher)

	res := svc.SendChat(context.Background(), &dto.SendChatRequest{
		Message: "best device for wax",
	})

	err := svc.RecordFeedback(context.Background(), &dto.FeedbackRequest{
		SessionId:     res.SessionId,
		ExchangeIndex: 0,
		Feedback:      "positive",
	})
	assert.NoError(t, err)

	history := svc.GetChatHistory(context.Background(), res.SessionId, 10)
	assert.Equal(t, "positive", history.Exchanges[0].Feedback)

	// One record for the chat, one for the feedback.
	assert.Len(t, publisher.payloads, 2)
}

func TestGetChatHistoryUnknownSession(t *testing.T) {
	svc := newTestService(&fakeProvider{}, &capturingPublisher{})

	history := svc.GetChatHistory(context.Background(), "missing", 10)
	assert.Empty(t, history.Exchanges)
	assert.Equal(t, "missing", history.SessionId)
}

func TestOffTopicRedirectMentionsStore(t *testing.T) {
	assert.True(t, strings.Contains(constant.OffTopicRedirect, "ineedhemp.com"))
}
