package convo

import "vape-support-be/pkg/store"

// Store abstracts the session container so lifecycle and concurrency policy
// are explicit instead of living in a package-level map. Implementations must
// be safe for concurrent use; eviction of idle sessions is the store's
// concern, not the manager's.
type Store interface {
	Get(sessionID string) (*store.Session, bool)
	Put(session *store.Session)
	Delete(sessionID string)
}
