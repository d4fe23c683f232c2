package store

import (
	"sync"
	"time"
)

// Conversation states. Transitions are keyword-driven and evaluated on every
// update, independent of the classifier's output.
const (
	StateInitial         = "INITIAL"
	StateBrowsing        = "BROWSING"
	StateComparing       = "COMPARING"
	StateTroubleshooting = "TROUBLESHOOTING"
)

// Exchange is one user/bot turn appended to a session's bounded history.
type Exchange struct {
	UserMessage   string    `json:"user_message"`
	BotResponse   string    `json:"bot_response"`
	Intent        string    `json:"intent"`
	Confidence    float64   `json:"confidence"`
	ProductsShown []Product `json:"products_shown,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Feedback      string    `json:"feedback,omitempty"` // attached later, out-of-band
}

// Session is the per-conversation context. It is created on first reference to
// a session id and mutated once per request by the conversation manager.
//
// The embedded mutex makes history append/read safe for concurrent requests on
// the same session; the design otherwise assumes at most one in-flight request
// per session.
type Session struct {
	ID                string            `json:"id"`
	State             string            `json:"state"`
	MentionedProducts []Product         `json:"mentioned_products"` // append-only, dedup by URL
	Preferences       map[string]string `json:"preferences"`
	LastIntent        string            `json:"last_intent"`
	LastProduct       *Product          `json:"last_product,omitempty"`
	ExchangeCount     int               `json:"exchange_count"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`

	History []Exchange `json:"history"`

	Mu sync.Mutex `json:"-"`
}

// NewSession returns a fresh Initial-state session.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:          id,
		State:       StateInitial,
		Preferences: make(map[string]string),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
