package session

import (
	"errors"

	"concierge/models"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found or expired")

// SessionStore persists conversation sessions keyed by session id.
// Implementations must apply a TTL so idle sessions are evicted.
type SessionStore interface {
	Get(sessionID string) (*models.ConversationSession, error)
	Save(session *models.ConversationSession) error
	Delete(sessionID string) error
}
