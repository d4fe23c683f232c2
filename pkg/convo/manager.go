// Package convo tracks per-session conversation context: mentioned products,
// extracted preferences, a keyword-driven state machine and a bounded
// exchange history, plus pronoun-style follow-up resolution.
package convo

import (
	"strings"
	"time"

	"vape-support-be/pkg/lexicon"
	"vape-support-be/pkg/store"
)

// DefaultMaxHistory bounds the per-session exchange history.
const DefaultMaxHistory = 10

// Logger is the warning sink for soft failures (unknown sessions, bad
// feedback indexes). The application's structured logger satisfies it.
type Logger interface {
	Warn(module, message string, details map[string]interface{})
}

// Manager owns all session mutation. The orchestrator calls it exactly once
// per request, after the response is determined.
type Manager struct {
	sessions   Store
	maxHistory int
	logger     Logger
}

func NewManager(sessions Store, maxHistory int, logger Logger) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		sessions:   sessions,
		maxHistory: maxHistory,
		logger:     logger,
	}
}

// GetOrCreate returns the existing context for the session id or creates a
// fresh Initial-state one.
func (m *Manager) GetOrCreate(sessionID string) *store.Session {
	if sess, found := m.sessions.Get(sessionID); found {
		return sess
	}
	sess := store.NewSession(sessionID)
	m.sessions.Put(sess)
	return sess
}

// Update folds one finished request into the session: newly shown products
// are appended (dedup by URL), the last-mentioned product and intent are set,
// preference key/value pairs are merged, the state transition runs on the
// user message, and the exchange counter and timestamp advance.
func (m *Manager) Update(sessionID, userMessage, intent string, productsShown []store.Product) {
	sess := m.GetOrCreate(sessionID)
	lower := strings.ToLower(userMessage)

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	for _, p := range productsShown {
		if !mentionedBefore(sess, p) {
			sess.MentionedProducts = append(sess.MentionedProducts, p)
		}
	}

	if len(productsShown) > 0 {
		sess.LastProduct = referenceTo(sess, productsShown[0])
	}

	for key, value := range extractPreferences(lower) {
		sess.Preferences[key] = value
	}

	if next := transition(lower); next != "" {
		sess.State = next
	}

	if intent != "" {
		sess.LastIntent = intent
	}

	sess.ExchangeCount++
	sess.UpdatedAt = time.Now()

	m.sessions.Put(sess)
}

func mentionedBefore(sess *store.Session, p store.Product) bool {
	if p.URL == "" {
		return false
	}
	for _, existing := range sess.MentionedProducts {
		if existing.URL == p.URL {
			return true
		}
	}
	return false
}

// referenceTo points the last-product reference into the mentioned list when
// possible; the session never owns a private copy of catalog data it already
// tracks.
func referenceTo(sess *store.Session, p store.Product) *store.Product {
	if p.URL != "" {
		for i := range sess.MentionedProducts {
			if sess.MentionedProducts[i].URL == p.URL {
				return &sess.MentionedProducts[i]
			}
		}
	}
	return &p
}

// transition returns the next conversation state for the message, or "" when
// no transition vocabulary matches.
func transition(lower string) string {
	switch {
	case lexicon.Matches(lexicon.StateComparing, lower):
		return store.StateComparing
	case lexicon.Matches(lexicon.StateTrouble, lower):
		return store.StateTroubleshooting
	case lexicon.Matches(lexicon.StateBrowsing, lower):
		return store.StateBrowsing
	}
	return ""
}

func extractPreferences(lower string) map[string]string {
	prefs := make(map[string]string)
	for key, buckets := range lexicon.PreferenceBuckets {
		for _, bucket := range buckets {
			matched := false
			for _, term := range bucket.Terms {
				if strings.Contains(lower, term) {
					matched = true
					break
				}
			}
			if matched {
				prefs[key] = bucket.Value
				break
			}
		}
	}
	return prefs
}

// ResolveFollowUp rewrites a pronoun-bearing query using the session's
// last-mentioned product: a leading pronoun word is substituted by the
// product name, any other cue prefixes the name. Without a cue or a
// last-mentioned product the query passes through unchanged. The resolved
// query, not the raw one, feeds all downstream components.
func (m *Manager) ResolveFollowUp(query string, sess *store.Session) string {
	if sess == nil || sess.LastProduct == nil {
		return query
	}

	lower := strings.ToLower(query)

	for _, cue := range lexicon.Terms(lexicon.FollowUpPrefix) {
		if strings.Contains(lower, cue) {
			return sess.LastProduct.Name + " " + query
		}
	}

	words := strings.Fields(query)
	if len(words) == 0 {
		return query
	}

	if isPronounCue(words[0]) {
		words[0] = sess.LastProduct.Name
		return strings.Join(words, " ")
	}

	for _, w := range words[1:] {
		if isPronounCue(w) {
			return sess.LastProduct.Name + " " + query
		}
	}
	for _, cue := range lexicon.Terms(lexicon.FollowUpCues) {
		if strings.Contains(cue, " ") && strings.Contains(lower, cue) {
			return sess.LastProduct.Name + " " + query
		}
	}

	return query
}

// isPronounCue matches a word against the single-word follow-up cues;
// multi-word cues are matched as substrings by the caller.
func isPronounCue(word string) bool {
	word = strings.ToLower(strings.Trim(word, ".,!?'\""))
	for _, cue := range lexicon.Terms(lexicon.FollowUpCues) {
		if !strings.Contains(cue, " ") && word == cue {
			return true
		}
	}
	return false
}

// AddExchange appends to the session's bounded history, evicting the oldest
// entry once the configured maximum is exceeded.
func (m *Manager) AddExchange(sessionID string, exchange store.Exchange) {
	sess := m.GetOrCreate(sessionID)

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	sess.History = append(sess.History, exchange)
	if len(sess.History) > m.maxHistory {
		sess.History = sess.History[len(sess.History)-m.maxHistory:]
	}

	m.sessions.Put(sess)
}

// GetHistory returns the most recent limit exchanges, oldest-first within
// that window.
func (m *Manager) GetHistory(sessionID string, limit int) []store.Exchange {
	sess, found := m.sessions.Get(sessionID)
	if !found || limit <= 0 {
		return nil
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	start := 0
	if len(sess.History) > limit {
		start = len(sess.History) - limit
	}
	out := make([]store.Exchange, len(sess.History)-start)
	copy(out, sess.History[start:])
	return out
}

// RecordFeedback attaches feedback to the exchange at the given position.
// Unknown sessions and out-of-range indexes are a logged no-op, not an error.
func (m *Manager) RecordFeedback(sessionID string, index int, feedback string) {
	sess, found := m.sessions.Get(sessionID)
	if !found {
		m.logger.Warn("convo", "feedback for unknown session ignored", map[string]interface{}{
			"session_id": sessionID,
		})
		return
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	if index < 0 || index >= len(sess.History) {
		m.logger.Warn("convo", "feedback index out of range", map[string]interface{}{
			"session_id": sessionID, "index": index, "history": len(sess.History),
		})
		return
	}

	sess.History[index].Feedback = feedback
	m.sessions.Put(sess)
}
