// Package session manages the persisted HR session: the bearer token issued
// by the portal's login endpoint, read once on startup and cleared on logout.
// All access goes through Store; nothing else touches the session file.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Session is the material persisted between CLI invocations. The token is
// opaque; the portal owns its validity, and ExpiresAt mirrors the lifetime
// the portal reported at login so obviously dead sessions are dropped
// without a round trip.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's recorded lifetime has passed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the standard session file location under the user's
// config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "reviewdash", "session.json"), nil
}

// Load reads the persisted session. A missing file means no session and
// returns (nil, nil); an expired session is dropped the same way.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file %s: %w", st.path, err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", st.path, err)
	}
	if s.Token == "" || s.Expired(time.Now()) {
		return nil, nil
	}
	return &s, nil
}

// Save persists the session, creating the parent directory if needed. The
// file is written with owner-only permissions since it carries the token.
func (st *Store) Save(s *Session) error {
	if s == nil || s.Token == "" {
		return fmt.Errorf("cannot save an empty session")
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", st.path, err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is a
// no-op.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file %s: %w", st.path, err)
	}
	return nil
}
