// Package session holds server-side login state keyed by an opaque token.
// The token travels in an HttpOnly cookie; everything else stays on the
// server so logout can revoke a session immediately.
package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the name of the session cookie.
const CookieName = "todo_session"

// Session is the server-held state for one logged-in client.
type Session struct {
	Token     string
	UserID    int64
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Manager issues, resolves, and destroys sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]Session

	ttl           time.Duration
	secureCookies bool
}

func NewManager(ttl time.Duration, secureCookies bool) *Manager {
	return &Manager{
		sessions:      make(map[string]Session),
		ttl:           ttl,
		secureCookies: secureCookies,
	}
}

// Issue creates a session for the given user and returns it.
func (m *Manager) Issue(userID int64, username string) Session {
	now := time.Now()
	sess := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[sess.Token] = sess
	m.mu.Unlock()
	return sess
}

// Get resolves a token to its session. Expired sessions are reaped and
// reported as absent, so callers never see a stale login.
func (m *Manager) Get(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	m.mu.RLock()
	sess, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if time.Now().After(sess.ExpiresAt) {
		m.Destroy(token)
		return Session{}, false
	}
	return sess, true
}

// Destroy removes the session unconditionally. Destroying an unknown token
// is a no-op.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// SetCookie attaches the session token to the response.
func (m *Manager) SetCookie(w http.ResponseWriter, sess Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   m.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest resolves the request's session cookie, if any.
func (m *Manager) FromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, false
	}
	return m.Get(cookie.Value)
}
