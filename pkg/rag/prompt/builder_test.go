package prompt

import (
	"strings"
	"testing"

	"vape-support-be/pkg/store"
)

func TestBuildGroundsOnProducts(t *testing.T) {
	products := []store.Product{
		{
			Name: "V5", FullName: "V5 Concentrate Atomizer",
			URL: "https://shop/v5", Price: "$89.99",
			Description: "ceramic cup atomizer",
			Features:    []string{"ceramic cup"},
		},
	}

	got := NewBuilder("best for wax?", "product_info", products, nil).Build()

	for _, want := range []string{
		"<product_catalog>",
		"V5 Concentrate Atomizer",
		"Price: $89.99",
		"URL: https://shop/v5",
		"- ceramic cup",
		"<customer_question>\nbest for wax?",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildOmitsEmptySections(t *testing.T) {
	got := NewBuilder("hi", "reasoning", nil, nil).Build()

	if strings.Contains(got, "<product_catalog>") {
		t.Error("empty catalog section rendered")
	}
	if strings.Contains(got, "<recent_conversation>") {
		t.Error("empty history section rendered")
	}
	if strings.Contains(got, "<store_policy>") {
		t.Error("empty policy section rendered")
	}
}

func TestBuildIntentGuidance(t *testing.T) {
	tests := []struct {
		intent string
		want   string
	}{
		{"product_comparison", "markdown table"},
		{"troubleshooting", "numbered diagnostic steps"},
		{"how_to", "step-by-step"},
		{"customer_service", "empathetic"},
		{"reasoning", "say so honestly"},
	}

	for _, tt := range tests {
		t.Run(tt.intent, func(t *testing.T) {
			got := NewBuilder("q", tt.intent, nil, nil).Build()
			if !strings.Contains(got, tt.want) {
				t.Errorf("intent %q guidance missing %q", tt.intent, tt.want)
			}
		})
	}
}

func TestBuildIncludesHistoryAndPolicy(t *testing.T) {
	history := []store.Exchange{
		{UserMessage: "earlier question", BotResponse: "earlier answer"},
	}

	got := NewBuilder("next question", "customer_service", nil, history).
		WithPolicy("Returns: 30 days.").
		Build()

	if !strings.Contains(got, "Customer: earlier question") {
		t.Error("history turn missing")
	}
	if !strings.Contains(got, "<store_policy>\nReturns: 30 days.") {
		t.Error("policy section missing")
	}
}
