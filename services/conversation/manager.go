package conversation

import (
	"fmt"
	"sync"
	"time"

	sessionRepo "concierge/database/repository/session"
	"concierge/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager owns the mapping from session identifier to conversation state,
// lazily creating sessions on first message. Access to a given session is
// serialized through a per-session mutex so concurrent requests for the same
// session id cannot corrupt its context.
type Manager struct {
	Store   sessionRepo.SessionStore
	Machine *StateMachine
	Logger  *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewManager builds a session manager over the given store and machine.
func NewManager(store sessionRepo.SessionStore, machine *StateMachine, logger *zap.Logger) *Manager {
	return &Manager{
		Store:   store,
		Machine: machine,
		Logger:  logger,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (mgr *Manager) sessionLock(sessionID string) *sync.Mutex {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	lock, ok := mgr.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		mgr.locks[sessionID] = lock
	}
	return lock
}

// ProcessMessage drives the state machine for one inbound message. An empty
// session id starts a fresh conversation; the (possibly generated) id is
// returned so the caller can continue the exchange.
func (mgr *Manager) ProcessMessage(sessionID, text string) (string, models.StepResult, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	lock := mgr.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := mgr.Store.Get(sessionID)
	if err == sessionRepo.ErrNotFound {
		now := time.Now()
		sess = &models.ConversationSession{
			SessionID: sessionID,
			State:     models.StateInitial,
			CreatedAt: now,
			UpdatedAt: now,
		}
		mgr.Logger.Debug("created conversation session", zap.String("sessionId", sessionID))
	} else if err != nil {
		return sessionID, models.StepResult{}, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	result := mgr.Machine.Step(sess, text)

	if err := mgr.Store.Save(sess); err != nil {
		return sessionID, models.StepResult{}, fmt.Errorf("failed to save session %s: %w", sessionID, err)
	}
	return sessionID, result, nil
}

// EndSession drops a conversation explicitly.
func (mgr *Manager) EndSession(sessionID string) error {
	lock := mgr.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	if err := mgr.Store.Delete(sessionID); err != nil {
		return fmt.Errorf("failed to end session %s: %w", sessionID, err)
	}

	mgr.mu.Lock()
	delete(mgr.locks, sessionID)
	mgr.mu.Unlock()
	return nil
}
