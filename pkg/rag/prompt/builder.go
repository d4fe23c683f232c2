package prompt

import (
	"fmt"
	"strings"

	"vape-support-be/pkg/store"
)

// Builder assembles the grounded generation prompt for one request: retrieved
// catalog entries as the only data source, intent-specific guidance, recent
// conversation turns, then the resolved user query.
type Builder struct {
	query    string
	intent   string
	products []store.Product
	history  []store.Exchange
	policy   string
}

// NewBuilder creates a prompt builder for the resolved query.
func NewBuilder(query, intent string, products []store.Product, history []store.Exchange) *Builder {
	return &Builder{
		query:    query,
		intent:   intent,
		products: products,
		history:  history,
	}
}

// WithPolicy injects store policy text as additional grounding, used for
// customer-service intents.
func (b *Builder) WithPolicy(policy string) *Builder {
	b.policy = policy
	return b
}

// Build renders the full prompt.
func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writeTask(&prompt)
	b.writePolicy(&prompt)
	b.writeProductContext(&prompt)
	b.writeGuidance(&prompt)
	b.writeHistory(&prompt)
	b.writeUserQuery(&prompt)

	return prompt.String()
}

func (b *Builder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString("You are a helpful customer support assistant for a vaporizer hardware store.\n")
	prompt.WriteString("Answer the customer's question using ONLY the product information provided below.\n")
	prompt.WriteString("</task>\n\n")
}

func (b *Builder) writePolicy(prompt *strings.Builder) {
	if b.policy == "" {
		return
	}
	prompt.WriteString("<store_policy>\n")
	prompt.WriteString(b.policy)
	prompt.WriteString("\n</store_policy>\n\n")
}

func (b *Builder) writeProductContext(prompt *strings.Builder) {
	if len(b.products) == 0 {
		return
	}

	prompt.WriteString("<product_catalog>\n")
	prompt.WriteString("CRITICAL: This is the ONLY data source. Do NOT invent products, prices, or URLs.\n\n")
	for i, p := range b.products {
		name := p.FullName
		if name == "" {
			name = p.Name
		}
		prompt.WriteString(fmt.Sprintf("--- PRODUCT %d: %s ---\n", i+1, name))
		if p.Price != "" {
			prompt.WriteString(fmt.Sprintf("Price: %s\n", p.Price))
		}
		if p.URL != "" {
			prompt.WriteString(fmt.Sprintf("URL: %s\n", p.URL))
		}
		if p.Description != "" {
			prompt.WriteString(fmt.Sprintf("Description: %s\n", p.Description))
		}
		for _, f := range p.Features {
			prompt.WriteString(fmt.Sprintf("- %s\n", f))
		}
		prompt.WriteString(fmt.Sprintf("--- END PRODUCT %d ---\n\n", i+1))
	}
	prompt.WriteString("</product_catalog>\n\n")
}

func (b *Builder) writeGuidance(prompt *strings.Builder) {
	prompt.WriteString("<guidelines>\n")

	switch b.intent {
	case "product_comparison":
		prompt.WriteString("The customer wants a comparison:\n")
		prompt.WriteString("- Compare the listed products feature by feature\n")
		prompt.WriteString("- Use a markdown table when two or more products are involved\n")
		prompt.WriteString("- Finish with a clear recommendation and the reason for it\n")
	case "troubleshooting":
		prompt.WriteString("The customer has a problem with their device:\n")
		prompt.WriteString("- Give numbered diagnostic steps, simplest check first\n")
		prompt.WriteString("- Mention the relevant product features when they matter\n")
		prompt.WriteString("- If the steps may not resolve it, suggest contacting support\n")
	case "how_to":
		prompt.WriteString("The customer wants usage instructions:\n")
		prompt.WriteString("- Give numbered step-by-step instructions\n")
		prompt.WriteString("- Keep each step short and concrete\n")
	case "material_shopping", "product_info":
		prompt.WriteString("The customer is shopping or asking about a product:\n")
		prompt.WriteString("- Recommend from the listed products only\n")
		prompt.WriteString("- State the exact product name, price, and URL when recommending\n")
		prompt.WriteString("- Explain which listed features make it a fit for the question\n")
	case "customer_service":
		prompt.WriteString("The customer has a service question (orders, returns, shipping):\n")
		prompt.WriteString("- Be empathetic and concrete about the next step they should take\n")
		prompt.WriteString("- Do not promise outcomes you cannot verify\n")
	default:
		prompt.WriteString("Answer conversationally and helpfully:\n")
		prompt.WriteString("- Stay on the topic of vaporizer hardware and this store\n")
		prompt.WriteString("- If the catalog does not cover the question, say so honestly\n")
	}

	prompt.WriteString("\nResponse principles:\n")
	prompt.WriteString("1. Base every claim on the product catalog above\n")
	prompt.WriteString("2. Use the exact product names, prices, and URLs as written\n")
	prompt.WriteString("3. Keep the answer focused; do not pad with marketing language\n")
	prompt.WriteString("4. If the catalog does not contain what is asked, say so honestly\n")
	prompt.WriteString("</guidelines>\n\n")
}

func (b *Builder) writeHistory(prompt *strings.Builder) {
	if len(b.history) == 0 {
		return
	}

	prompt.WriteString("<recent_conversation>\n")
	for _, ex := range b.history {
		prompt.WriteString("Customer: " + ex.UserMessage + "\n")
		prompt.WriteString("Assistant: " + ex.BotResponse + "\n")
	}
	prompt.WriteString("</recent_conversation>\n\n")
}

func (b *Builder) writeUserQuery(prompt *strings.Builder) {
	prompt.WriteString("<customer_question>\n")
	prompt.WriteString(b.query)
	prompt.WriteString("\n</customer_question>\n\n")
	prompt.WriteString("Now provide your complete response based on the product catalog:")
}
