package query

import (
	"strings"

	"vape-support-be/pkg/lexicon"
	"vape-support-be/pkg/store"
)

// Intents produced by the classifier.
const (
	IntentOffTopic          = "off_topic"
	IntentProductInfo       = "product_info"
	IntentCustomerService   = "customer_service"
	IntentTroubleshooting   = "troubleshooting"
	IntentHowTo             = "how_to"
	IntentProductComparison = "product_comparison"
	IntentMaterialShopping  = "material_shopping"
	IntentReasoning         = "reasoning"
)

// StoreDomain is the shop's URL substring; a message containing it is always
// a product inquiry.
const StoreDomain = "ineedhemp.com"

// OffTopicReason is the canned rejection attached to off-topic results.
const OffTopicReason = "query matches off-topic vocabulary with no product context"

// Input carries everything a rule may inspect.
type Input struct {
	Query    string // normalized query text
	Pre      *Preprocessed
	Session  *store.Session
	CacheHit bool
}

// Result is the classification outcome.
type Result struct {
	Intent     string
	Confidence float64
	Reason     string // human-readable rejection/explanation, may be empty
}

// Rule is one entry of the cascade: the first rule whose predicate fires
// decides the result, later rules are never reached.
type Rule struct {
	Name    string
	Applies func(in Input) bool
	Resolve func(in Input) Result
}

// Classifier evaluates an ordered rule cascade. The precedence lives in the
// rule slice itself so it can be inspected and tested as data.
type Classifier struct {
	rules []Rule
}

func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules()}
}

// Rules exposes the cascade for inspection.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Classify runs the cascade top to bottom and returns the first match. The
// final rule always fires, so a result is guaranteed.
func (c *Classifier) Classify(in Input) Result {
	for _, rule := range c.rules {
		if rule.Applies(in) {
			return rule.Resolve(in)
		}
	}
	// Unreachable: the default rule matches everything.
	return Result{Intent: IntentReasoning, Confidence: 0.4}
}

func fixed(intent string, confidence float64) func(Input) Result {
	return func(Input) Result {
		return Result{Intent: intent, Confidence: confidence}
	}
}

func defaultRules() []Rule {
	return []Rule{
		{
			// Off-topic vocabulary with no on-topic term present. The
			// allowlist is narrow on purpose; "what's the weather like on my
			// vape's display" is NOT off-topic and falls through.
			Name: "off_topic",
			Applies: func(in Input) bool {
				return lexicon.Matches(lexicon.OffTopic, in.Query) &&
					!lexicon.Matches(lexicon.OnTopic, in.Query)
			},
			Resolve: func(Input) Result {
				return Result{Intent: IntentOffTopic, Confidence: 1.0, Reason: OffTopicReason}
			},
		},
		{
			Name: "store_url",
			Applies: func(in Input) bool {
				return strings.Contains(in.Query, StoreDomain)
			},
			Resolve: fixed(IntentProductInfo, 1.0),
		},
		{
			Name:    "cache_hit",
			Applies: func(in Input) bool { return in.CacheHit },
			Resolve: fixed(IntentProductInfo, 0.95),
		},
		{
			Name: "customer_service",
			Applies: func(in Input) bool {
				return lexicon.Matches(lexicon.CustomerService, in.Query)
			},
			Resolve: fixed(IntentCustomerService, 0.9),
		},
		{
			Name: "troubleshooting_lexicon",
			Applies: func(in Input) bool {
				return lexicon.Matches(lexicon.Troubleshooting, in.Query)
			},
			Resolve: fixed(IntentTroubleshooting, 0.85),
		},
		{
			Name: "how_to_lexicon",
			Applies: func(in Input) bool {
				return lexicon.Matches(lexicon.HowTo, in.Query)
			},
			Resolve: fixed(IntentHowTo, 0.8),
		},
		{
			Name:    "product_mention",
			Applies: func(in Input) bool { return len(in.Pre.Mentions) > 0 },
			Resolve: func(in Input) Result {
				if in.Pre.IsComparison {
					return Result{Intent: IntentProductComparison, Confidence: 0.8}
				}
				return Result{Intent: IntentProductInfo, Confidence: 0.8}
			},
		},
		{
			Name:    "comparison_hint",
			Applies: func(in Input) bool { return in.Pre.HasHint(HintComparison) },
			Resolve: fixed(IntentProductComparison, 0.7),
		},
		{
			Name:    "shopping_hint",
			Applies: func(in Input) bool { return in.Pre.HasHint(HintShopping) },
			Resolve: func(in Input) Result {
				switch in.Pre.Material {
				case MaterialConcentrate, MaterialDryHerb:
					return Result{Intent: IntentMaterialShopping, Confidence: 0.75}
				}
				return Result{Intent: IntentProductInfo, Confidence: 0.7}
			},
		},
		{
			Name:    "troubleshooting_hint",
			Applies: func(in Input) bool { return in.Pre.HasHint(HintTroubleshooting) },
			Resolve: fixed(IntentTroubleshooting, 0.7),
		},
		{
			Name:    "how_to_hint",
			Applies: func(in Input) bool { return in.Pre.HasHint(HintHowTo) },
			Resolve: fixed(IntentHowTo, 0.7),
		},
		{
			// Sticky context: reuse the session's previous intent.
			Name: "session_context",
			Applies: func(in Input) bool {
				return in.Session != nil && in.Session.LastIntent != ""
			},
			Resolve: func(in Input) Result {
				return Result{Intent: in.Session.LastIntent, Confidence: 0.5}
			},
		},
		{
			Name:    "default",
			Applies: func(Input) bool { return true },
			Resolve: fixed(IntentReasoning, 0.4),
		},
	}
}
