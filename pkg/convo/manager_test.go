package convo

import (
	"fmt"
	"testing"
	"time"

	"vape-support-be/pkg/lexicon"
	"vape-support-be/pkg/store"
)

type quietLogger struct{}

func (quietLogger) Warn(module, message string, details map[string]interface{}) {}

// mapStore is a plain map-backed Store for tests; the production store sits
// on a TTL cache.
type mapStore struct {
	sessions map[string]*store.Session
}

func newMapStore() *mapStore {
	return &mapStore{sessions: make(map[string]*store.Session)}
}

func (m *mapStore) Get(id string) (*store.Session, bool) {
	s, ok := m.sessions[id]
	return s, ok
}

func (m *mapStore) Put(s *store.Session) { m.sessions[s.ID] = s }
func (m *mapStore) Delete(id string)     { delete(m.sessions, id) }

func newTestManager(maxHistory int) *Manager {
	return NewManager(newMapStore(), maxHistory, quietLogger{})
}

func TestGetOrCreate(t *testing.T) {
	m := newTestManager(0)

	sess := m.GetOrCreate("s1")
	if sess.State != store.StateInitial {
		t.Errorf("State = %q, want %q", sess.State, store.StateInitial)
	}

	again := m.GetOrCreate("s1")
	if sess != again {
		t.Error("second GetOrCreate returned a different session")
	}
}

func TestUpdateTracksProductsAndIntent(t *testing.T) {
	m := newTestManager(0)
	v5 := store.Product{Name: "V5", URL: "https://shop/v5"}

	m.Update("s1", "tell me about the v5", "product_info", []store.Product{v5})

	sess := m.GetOrCreate("s1")
	if len(sess.MentionedProducts) != 1 {
		t.Fatalf("MentionedProducts = %d, want 1", len(sess.MentionedProducts))
	}
	if sess.LastProduct == nil || sess.LastProduct.Name != "V5" {
		t.Errorf("LastProduct = %+v, want V5", sess.LastProduct)
	}
	if sess.LastIntent != "product_info" {
		t.Errorf("LastIntent = %q, want product_info", sess.LastIntent)
	}
	if sess.ExchangeCount != 1 {
		t.Errorf("ExchangeCount = %d, want 1", sess.ExchangeCount)
	}

	// Showing the same product again must not duplicate it.
	m.Update("s1", "and again", "product_info", []store.Product{v5})
	if len(sess.MentionedProducts) != 1 {
		t.Errorf("MentionedProducts = %d after repeat, want 1", len(sess.MentionedProducts))
	}
}

func TestUpdateStateTransitions(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		wantState string
	}{
		{"comparing", "v5 versus the core", store.StateComparing},
		{"troubleshooting", "my unit is broken", store.StateTroubleshooting},
		{"browsing", "i want to buy something", store.StateBrowsing},
		{"comparing beats troubleshooting", "compare them, mine is broken anyway", store.StateComparing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(0)
			m.Update("s1", tt.message, "", nil)
			if got := m.GetOrCreate("s1").State; got != tt.wantState {
				t.Errorf("State = %q, want %q", got, tt.wantState)
			}
		})
	}
}

func TestUpdateNoTransitionKeepsState(t *testing.T) {
	m := newTestManager(0)
	m.Update("s1", "my unit is broken", "", nil)
	m.Update("s1", "thanks for the info", "", nil)

	if got := m.GetOrCreate("s1").State; got != store.StateTroubleshooting {
		t.Errorf("State = %q, want state preserved", got)
	}
}

func TestUpdateExtractsPreferences(t *testing.T) {
	m := newTestManager(0)
	m.Update("s1", "i'm a beginner looking for something portable and cheap", "", nil)

	prefs := m.GetOrCreate("s1").Preferences
	want := map[string]string{
		"experience_level": "beginner",
		"form_factor":      "portable",
		"priority":         "price",
	}
	for k, v := range want {
		if prefs[k] != v {
			t.Errorf("Preferences[%q] = %q, want %q", k, prefs[k], v)
		}
	}
}

func TestResolveFollowUp(t *testing.T) {
	xl := store.Product{Name: "V5 XL", URL: "https://shop/v5-xl"}

	tests := []struct {
		name        string
		query       string
		lastProduct *store.Product
		want        string
	}{
		{
			name:        "no last product passes through",
			query:       "does it come with a battery",
			lastProduct: nil,
			want:        "does it come with a battery",
		},
		{
			name:        "leading pronoun is replaced",
			query:       "it needs what wattage",
			lastProduct: &xl,
			want:        "V5 XL needs what wattage",
		},
		{
			name:        "mid-sentence pronoun prefixes",
			query:       "does it come with a battery",
			lastProduct: &xl,
			want:        "V5 XL does it come with a battery",
		},
		{
			name:        "what about cue prefixes",
			query:       "what about the price",
			lastProduct: &xl,
			want:        "V5 XL what about the price",
		},
		{
			name:        "the one cue prefixes",
			query:       "is the one you mentioned in stock",
			lastProduct: &xl,
			want:        "V5 XL is the one you mentioned in stock",
		},
		{
			name:        "no cue passes through",
			query:       "show me dry herb vapes",
			lastProduct: &xl,
			want:        "show me dry herb vapes",
		},
	}

	m := newTestManager(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := store.NewSession("s1")
			sess.LastProduct = tt.lastProduct
			if got := m.ResolveFollowUp(tt.query, sess); got != tt.want {
				t.Errorf("ResolveFollowUp(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestResolveFollowUpCuesComeFromLexicon(t *testing.T) {
	xl := store.Product{Name: "V5 XL", URL: "https://shop/v5-xl"}
	m := newTestManager(0)

	// Every cue in the shared vocabulary must trigger resolution; no cue may
	// live as a literal outside the lexicon.
	for _, cue := range lexicon.Terms(lexicon.FollowUpCues) {
		t.Run(cue, func(t *testing.T) {
			query := "is " + cue + " still available"
			sess := store.NewSession("s1")
			sess.LastProduct = &xl

			want := "V5 XL is " + cue + " still available"
			if got := m.ResolveFollowUp(query, sess); got != want {
				t.Errorf("ResolveFollowUp(%q) = %q, want %q", query, got, want)
			}
		})
	}
}

func TestHistoryIsBounded(t *testing.T) {
	m := newTestManager(10)

	for i := 0; i < 15; i++ {
		m.AddExchange("s1", store.Exchange{
			UserMessage: fmt.Sprintf("message %d", i),
			Timestamp:   time.Now(),
		})
	}

	history := m.GetHistory("s1", 100)
	if len(history) != 10 {
		t.Fatalf("history length = %d, want 10", len(history))
	}
	// Oldest entries were evicted: the window is messages 5..14, oldest first.
	if history[0].UserMessage != "message 5" {
		t.Errorf("oldest = %q, want message 5", history[0].UserMessage)
	}
	if history[9].UserMessage != "message 14" {
		t.Errorf("newest = %q, want message 14", history[9].UserMessage)
	}
}

func TestGetHistoryWindow(t *testing.T) {
	m := newTestManager(10)
	for i := 0; i < 5; i++ {
		m.AddExchange("s1", store.Exchange{UserMessage: fmt.Sprintf("m%d", i)})
	}

	got := m.GetHistory("s1", 2)
	if len(got) != 2 || got[0].UserMessage != "m3" || got[1].UserMessage != "m4" {
		t.Errorf("window = %+v, want last two oldest-first", got)
	}

	if m.GetHistory("unknown", 5) != nil {
		t.Error("unknown session should yield nil history")
	}
}

func TestRecordFeedback(t *testing.T) {
	m := newTestManager(10)
	m.AddExchange("s1", store.Exchange{UserMessage: "hello"})

	m.RecordFeedback("s1", 0, "positive")
	if got := m.GetHistory("s1", 10)[0].Feedback; got != "positive" {
		t.Errorf("Feedback = %q, want positive", got)
	}

	// Out-of-range and unknown-session feedback are silent no-ops.
	m.RecordFeedback("s1", 7, "negative")
	m.RecordFeedback("nope", 0, "negative")
	if got := m.GetHistory("s1", 10)[0].Feedback; got != "positive" {
		t.Errorf("Feedback = %q after no-op calls, want positive", got)
	}
}
