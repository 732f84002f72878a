// ABOUTME: Authentication session for the media generation backend
// ABOUTME: Persists the access token across runs and owns login/logout

package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/medvista/mediastudio-cli/internal/debuglog"
)

// Authenticator is the part of the API client the session needs for login.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginResult is the structured outcome of a login attempt. Login never
// returns an error; failures are carried in Message.
type LoginResult struct {
	OK      bool
	Message string
}

// Store holds the current session token. Exactly one Store exists per
// process. Restore must run before the first route decision so callers can
// tell "not yet determined" apart from "determined unauthenticated".
type Store struct {
	configDir string
	token     string
	restored  bool
}

type sessionData struct {
	AccessToken string `json:"access_token"`
}

// New creates a session store backed by the given config directory.
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mediastudio")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mediastudio")
}

func (s *Store) sessionFile() string {
	return filepath.Join(s.configDir, "session.json")
}

// Restore loads a previously persisted token from disk. It makes no network
// call; a stale token surfaces as an error on first use, not here. A missing
// or unreadable file leaves the store unauthenticated.
func (s *Store) Restore() {
	s.restored = true
	s.token = ""

	data, err := os.ReadFile(s.sessionFile())
	if err != nil {
		if !os.IsNotExist(err) {
			debuglog.Error("session restore", err)
		}
		return
	}

	var sess sessionData
	if err := json.Unmarshal(data, &sess); err != nil {
		debuglog.Error("session restore", err)
		return
	}
	s.token = sess.AccessToken
}

// Restored reports whether Restore has run. False means the session state is
// not yet determined and no route decision should be made from it.
func (s *Store) Restored() bool {
	return s.restored
}

// IsAuthenticated reports whether a token is held.
func (s *Store) IsAuthenticated() bool {
	return s.token != ""
}

// Token returns the current access token, or "" when unauthenticated.
func (s *Store) Token() string {
	return s.token
}

// Login authenticates against the backend and persists the returned token.
// The token also stays in memory for the lifetime of the process.
func (s *Store) Login(ctx context.Context, api Authenticator, username, password string) LoginResult {
	token, err := api.Login(ctx, username, password)
	if err != nil {
		return LoginResult{OK: false, Message: err.Error()}
	}

	s.token = token
	s.restored = true
	if err := s.persist(token); err != nil {
		// The session is still valid in memory; it just won't survive a
		// restart.
		debuglog.Error("session persist", err)
	}

	return LoginResult{OK: true}
}

// Logout clears the in-memory and persisted token. Safe to call when already
// logged out.
func (s *Store) Logout() {
	s.token = ""

	err := os.Remove(s.sessionFile())
	if err != nil && !os.IsNotExist(err) {
		debuglog.Error("session clear", err)
	}
}

func (s *Store) persist(token string) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(sessionData{AccessToken: token}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.sessionFile(), data, 0600)
}
