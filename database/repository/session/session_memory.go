package session

import (
	"sync"
	"time"

	"concierge/models"
)

type memoryEntry struct {
	session   models.ConversationSession
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in a process-local map with TTL-based
// eviction. A janitor goroutine sweeps expired entries so a long-running
// process does not accumulate idle conversations.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemorySessionStore creates a store with the given TTL and starts the
// eviction janitor.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	s := &MemorySessionStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemorySessionStore) Get(sessionID string) (*models.ConversationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, ErrNotFound
	}
	sess := entry.session
	return &sess, nil
}

func (s *MemorySessionStore) Save(session *models.ConversationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.SessionID] = memoryEntry{
		session:   *session,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemorySessionStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Close stops the janitor goroutine.
func (s *MemorySessionStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemorySessionStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, entry := range s.sessions {
				if now.After(entry.expiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}
