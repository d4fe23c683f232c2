package response

import (
	"context"
	"log"

	"vape-support-be/pkg/llm"
	"vape-support-be/pkg/rag/prompt"
	"vape-support-be/pkg/store"
)

// Fallback texts returned when generation fails. A provider failure degrades
// to an apology, never to an error surfaced to the customer.
const (
	ApologyGeneration = "I'm sorry, I'm having trouble putting together an answer right now. Please try again in a moment."
	ApologyNoContext  = "I'm sorry, I couldn't find anything in our catalog matching that. Could you rephrase your question?"
)

// Generator turns a resolved query plus retrieved products into the final
// answer text via the configured LLM provider.
type Generator struct {
	llmProvider llm.Provider
	logger      *log.Logger
}

func NewGenerator(llmProvider llm.Provider, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Generate builds the grounded prompt and asks the provider for an answer.
// With nothing to ground on it short-circuits to the no-context reply. On
// provider failure it logs and returns the apology text; the caller treats
// both as normal responses.
func (g *Generator) Generate(
	ctx context.Context,
	query string,
	intent string,
	products []store.Product,
	history []store.Exchange,
) string {
	if len(products) == 0 {
		g.logger.Printf("[GENERATION] no grounding products for %q, returning no-context reply", query)
		return ApologyNoContext
	}

	promptText := prompt.NewBuilder(query, intent, products, history).Build()

	answer, err := g.llmProvider.Generate(ctx, promptText)
	if err != nil {
		g.logger.Printf("[ERROR] LLM generation failed: %v", err)
		return ApologyGeneration
	}

	g.logger.Printf("[GENERATION] answer generated (intent=%s, products=%d)", intent, len(products))
	return answer
}

// GenerateWithPolicy is Generate with store policy text injected as extra
// grounding, used for customer-service questions.
func (g *Generator) GenerateWithPolicy(
	ctx context.Context,
	query string,
	intent string,
	policy string,
	history []store.Exchange,
) string {
	promptText := prompt.NewBuilder(query, intent, nil, history).WithPolicy(policy).Build()

	answer, err := g.llmProvider.Generate(ctx, promptText)
	if err != nil {
		g.logger.Printf("[ERROR] LLM generation failed: %v", err)
		return ApologyGeneration
	}

	g.logger.Printf("[GENERATION] policy answer generated (intent=%s)", intent)
	return answer
}
