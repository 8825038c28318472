package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-chat-wizard/internal/conversation"
	"github.com/jonathan/resume-chat-wizard/internal/types"
)

// ErrSessionNotFound indicates the session ID is unknown or already expired.
type ErrSessionNotFound struct {
	SessionID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// Session is one live conversation: the accumulator state plus the message
// transcript. A session has exactly one owner and is discarded when deleted or
// when its idle TTL elapses.
type Session struct {
	ID         uuid.UUID               `json:"id"`
	State      types.ConversationState `json:"state"`
	Transcript []types.ChatMessage     `json:"transcript"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

// Manager is an in-memory session store. Access is serialized per store; each
// turn is processed to completion before the next, so no ordering race between
// turns of the same session is possible.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// DefaultTTL is how long an idle session survives before the janitor drops it.
const DefaultTTL = 30 * time.Minute

// NewManager creates a session manager and starts its cleanup goroutine.
// Call Stop when the manager is no longer needed.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

// Start creates a new session at the greeting stage and records the greeting
// prompt as the first transcript entry.
func (m *Manager) Start() *Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New(),
		State:     StartSession(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	sess.Transcript = append(sess.Transcript, types.ChatMessage{
		Role:        "assistant",
		Text:        conversation.PromptFor(types.StageGreeting),
		Stage:       types.StageGreeting,
		Suggestions: conversation.SuggestionsFor(types.StageGreeting),
		CreatedAt:   now,
	})

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess
}

// Get returns a snapshot of the session.
func (m *Manager) Get(id uuid.UUID) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return Session{}, &ErrSessionNotFound{SessionID: id}
	}
	return snapshot(sess), nil
}

// Advance processes one user utterance for the session and returns the turn
// result along with the updated session snapshot.
func (m *Manager) Advance(id uuid.UUID, userText string) (Turn, Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return Turn{}, Session{}, &ErrSessionNotFound{SessionID: id}
	}

	now := time.Now()
	turn := Advance(sess.State, userText)

	sess.State = turn.State
	sess.UpdatedAt = now
	sess.Transcript = append(sess.Transcript,
		types.ChatMessage{
			Role:      "user",
			Text:      userText,
			Stage:     turn.State.Stage,
			CreatedAt: now,
		},
		types.ChatMessage{
			Role:        "assistant",
			Text:        turn.Prompt,
			Stage:       turn.State.Stage,
			Suggestions: turn.Suggestions,
			CreatedAt:   now,
		},
	)

	return turn, snapshot(sess), nil
}

// Delete discards a session.
func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return &ErrSessionNotFound{SessionID: id}
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(m.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.evictExpired()
		case <-m.stop:
			return
		}
	}
}

func (m *Manager) evictExpired() {
	cutoff := time.Now().Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

// snapshot copies a session so callers never alias the stored transcript.
func snapshot(sess *Session) Session {
	out := *sess
	out.Transcript = make([]types.ChatMessage, len(sess.Transcript))
	copy(out.Transcript, sess.Transcript)
	return out
}
