package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"vape-support-be/pkg/convo"
	"vape-support-be/pkg/store"
)

// SessionRepository keeps conversation sessions in-process with TTL-based
// eviction. go-cache's janitor purges idle sessions in the background, so
// abandoned conversations never need explicit cleanup.
type SessionRepository struct {
	cache *cache.Cache
}

var _ convo.Store = &SessionRepository{}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// Put refreshes the session's TTL as well, so active conversations stay alive.
func (r *SessionRepository) Put(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// Count reports live (non-expired) sessions, used by the health endpoint.
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
