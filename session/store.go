package session

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
)

// Store keeps the canonical session record in a file and mirrors it in
// memory. The file is read once when the store opens; Set and Clear update
// both sides immediately. A malformed or expired file means "no session",
// never an error.
type Store struct {
	path string
	now  func() time.Time

	mu  sync.RWMutex
	cur *Session
}

// Open hydrates a store from the session file at path.
func Open(path string) *Store {
	s := &Store{path: path, now: time.Now}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var sess Session
	if err := sonic.ConfigStd.Unmarshal(data, &sess); err != nil {
		log.Debugf("session: discarding malformed session file: %v", err)
		return
	}
	if sess.AccessToken == "" || sess.Expired(s.now()) {
		return
	}
	s.cur = &sess
}

// Current returns the live session, if any.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil || s.cur.Expired(s.now()) {
		return Session{}, false
	}
	return *s.cur, true
}

// Token returns the current access token or "". It satisfies the API
// client's token source.
func (s *Store) Token() string {
	sess, ok := s.Current()
	if !ok {
		return ""
	}
	return sess.AccessToken
}

// Set records a fresh sign-in: the expiry is stamped one day out, memory is
// updated immediately, and the file is rewritten.
func (s *Store) Set(email, accessToken string) (Session, error) {
	sess := Session{
		Email:       email,
		AccessToken: accessToken,
		ExpiresAt:   s.now().Add(TTL),
	}

	s.mu.Lock()
	s.cur = &sess
	s.mu.Unlock()

	if err := s.write(sess); err != nil {
		return sess, err
	}
	return sess, nil
}

// Clear signs out: memory and file are both dropped.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.cur = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) write(sess Session) error {
	data, err := sonic.ConfigStd.Marshal(sess)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// DefaultPath returns the session file location under the user's home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".boardsync/session.json"
	}
	return filepath.Join(home, ".boardsync", "session.json")
}
