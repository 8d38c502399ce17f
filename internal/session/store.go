// Package session owns "who is logged in". The Store is the single
// source of truth for the current bearer token and profile, persists
// both to the credentials directory, and pushes every credential
// change into the API client before the caller proceeds. Only the auth
// service writes to it; everything else observes.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/errors"
	"github.com/careops/shiftctl/internal/log"
)

const (
	tokenFile = "access_token"
	userFile  = "user.json"
)

// Session is the current bearer token plus, optionally, the profile of
// the user it belongs to. The profile can lag behind the token: some
// login responses carry no profile, and callers must tolerate that.
type Session struct {
	Token string
	User  *api.User
}

// IsAuthenticated reports whether a token is present. Token presence
// is the whole definition; the profile is allowed to be nil.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// CredentialSink receives the current token whenever it changes.
// The API client is the one sink that matters: attaching it keeps
// outgoing requests in step with the session.
type CredentialSink interface {
	SetToken(token string)
}

// Store holds the session in memory and mirrors it to disk.
type Store struct {
	dir    string
	logger *log.Logger

	mu          sync.RWMutex
	current     Session
	sinks       []CredentialSink
	subscribers []func(Session)
}

// NewStore creates a store persisting under dir. The directory is
// created on first write, not here.
func NewStore(dir string) *Store {
	return &Store{
		dir:    dir,
		logger: log.L().With("component", "session"),
	}
}

// Attach registers a credential sink and immediately pushes the
// current token into it.
func (s *Store) Attach(sink CredentialSink) {
	s.mu.Lock()
	s.sinks = append(s.sinks, sink)
	token := s.current.Token
	s.mu.Unlock()

	sink.SetToken(token)
}

// Subscribe registers a read-only observer called after every session
// change. Observers must not mutate the session.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Current returns the in-memory session. Side-effect free.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Restore loads the persisted session into memory. Called once at
// startup. Any unreadable or unparsable state degrades to an empty
// session; Restore never fails.
func (s *Store) Restore() Session {
	var sess Session

	if data, err := os.ReadFile(filepath.Join(s.dir, tokenFile)); err == nil {
		sess.Token = string(data)
	}

	if data, err := os.ReadFile(filepath.Join(s.dir, userFile)); err == nil {
		var user api.User
		if err := json.Unmarshal(data, &user); err == nil {
			sess.User = &user
		} else {
			s.logger.Warn("ignoring corrupt persisted profile", "path", filepath.Join(s.dir, userFile))
		}
	}

	// A profile without a token is stale; the session is anonymous.
	if sess.Token == "" {
		sess.User = nil
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.propagate()
	return sess
}

// Set stores the token and profile in memory and on disk. A nil user
// keeps the previous profile, which tolerates backends that return a
// token without profile data. The new credential reaches every sink
// before Set returns.
func (s *Store) Set(token string, user *api.User) error {
	s.mu.Lock()
	s.current.Token = token
	if user != nil {
		s.current.User = user
	}
	persistUser := s.current.User
	s.mu.Unlock()

	s.propagate()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return errors.NewCredentialWriteError(s.dir, err)
	}

	tokenPath := filepath.Join(s.dir, tokenFile)
	if err := os.WriteFile(tokenPath, []byte(token), 0o600); err != nil {
		return errors.NewCredentialWriteError(tokenPath, err)
	}

	if persistUser != nil {
		data, err := json.Marshal(persistUser)
		if err != nil {
			return errors.Wrap(errors.ErrCodeCredentialWrite, "failed to encode profile", err)
		}
		userPath := filepath.Join(s.dir, userFile)
		if err := os.WriteFile(userPath, data, 0o600); err != nil {
			return errors.NewCredentialWriteError(userPath, err)
		}
	}

	return nil
}

// Clear removes the session from memory and disk. Idempotent: clearing
// an empty session is a no-op that still succeeds.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = Session{}
	s.mu.Unlock()

	s.propagate()

	// Best effort; a missing file is already the desired state.
	os.Remove(filepath.Join(s.dir, tokenFile))
	os.Remove(filepath.Join(s.dir, userFile))
}

// propagate pushes the current token into every sink and notifies
// subscribers. Runs synchronously so a request issued right after a
// session change carries the new credential.
func (s *Store) propagate() {
	s.mu.RLock()
	sess := s.current
	sinks := make([]CredentialSink, len(s.sinks))
	copy(sinks, s.sinks)
	subs := make([]func(Session), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, sink := range sinks {
		sink.SetToken(sess.Token)
	}
	for _, fn := range subs {
		fn(sess)
	}
}
