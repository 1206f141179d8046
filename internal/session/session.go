// Package session gives every browser its own wizard store. Sessions live in
// memory only and are dropped after a period of inactivity.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// Session is one browser's wizard.
type Session struct {
	ID    string
	Store *wizard.Store

	mu         sync.Mutex
	lastAccess time.Time
	notice     string
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastAccess = now
	s.mu.Unlock()
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess.Before(cutoff)
}

// SetNotice stores a one-shot message for the next rendered screen, such as
// a failed export.
func (s *Session) SetNotice(msg string) {
	s.mu.Lock()
	s.notice = msg
	s.mu.Unlock()
}

// TakeNotice returns and clears the pending message.
func (s *Session) TakeNotice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.notice
	s.notice = ""
	return msg
}

// Config holds session configuration.
type Config struct {
	Secret          string        // HMAC key for cookies; random per process when empty
	TTL             time.Duration // idle time before a session is dropped
	CleanupInterval time.Duration
}

// Manager creates, finds and expires sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	tokens   *TokenService
	ttl      time.Duration
	now      func() time.Time

	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
}

// NewManager creates a manager and starts its cleanup goroutine when
// cfg.CleanupInterval is positive.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.TTL <= 0 {
		cfg.TTL = 2 * time.Hour
	}
	if cfg.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.Secret = secret
	}
	tokens, err := NewTokenService(cfg.Secret, cfg.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	m := &Manager{
		sessions: make(map[string]*Session),
		tokens:   tokens,
		ttl:      cfg.TTL,
		now:      time.Now,
	}
	if cfg.CleanupInterval > 0 {
		m.ticker = time.NewTicker(cfg.CleanupInterval)
		m.stop = make(chan struct{})
		go m.cleanup()
	}
	return m, nil
}

// Resolve returns the session named by token together with a newly signed
// token for it. The token is re-issued on every call so that it, like the
// session, expires only after TTL of inactivity. When the token is missing,
// invalid or names an expired session, a new session is created.
func (m *Manager) Resolve(token string) (*Session, string, error) {
	if token != "" {
		id, err := m.tokens.Parse(token)
		if err == nil {
			if s := m.Get(id); s != nil {
				renewed, err := m.tokens.Issue(s.ID)
				if err != nil {
					return nil, "", err
				}
				return s, renewed, nil
			}
		} else {
			logging.Debug("discarding session token", "error", err)
		}
	}

	sess := m.Create()
	fresh, err := m.tokens.Issue(sess.ID)
	if err != nil {
		m.Delete(sess.ID)
		return nil, "", err
	}
	return sess, fresh, nil
}

// Create registers a new session with an empty wizard.
func (m *Manager) Create() *Session {
	s := &Session{ID: uuid.NewString(), Store: wizard.NewStore(), lastAccess: m.now()}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	logging.Debug("session created", "session", s.ID)
	return s
}

// Get returns the session with id and refreshes its idle timer, or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	s := m.sessions[id]
	m.mu.RUnlock()
	if s != nil {
		s.touch(m.now())
	}
	return s
}

// Delete drops a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// TTL is the idle lifetime of a session.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) cleanup() {
	for {
		select {
		case <-m.ticker.C:
			m.Sweep()
		case <-m.stop:
			return
		}
	}
}

// Sweep removes sessions idle for longer than the TTL.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.idleSince(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		logging.Debug("expired idle sessions", "count", removed)
	}
	return removed
}

// Stop stops the cleanup goroutine.
func (m *Manager) Stop() {
	m.once.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
		}
		if m.stop != nil {
			close(m.stop)
		}
	})
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
