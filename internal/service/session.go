package service

import (
	"sync"

	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
)

// SessionState holds the key record of the one authenticated operator.
// Update and Reset each replace the whole record under the lock, so readers
// never observe a half-written session.
type SessionState struct {
	mu  sync.RWMutex
	key passkey.KeyRecord
}

// NewSessionState returns an empty, invalid session.
func NewSessionState() *SessionState {
	return &SessionState{}
}

// IsValid reports whether the current record is active and complete.
func (s *SessionState) IsValid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key.IsValid()
}

// Update replaces the session with rec.
func (s *SessionState) Update(rec passkey.KeyRecord) {
	s.mu.Lock()
	s.key = rec
	s.mu.Unlock()
}

// Reset clears every field back to its zero value.
func (s *SessionState) Reset() {
	s.mu.Lock()
	s.key = passkey.KeyRecord{}
	s.mu.Unlock()
}

// Snapshot returns a copy of the current record.
func (s *SessionState) Snapshot() passkey.KeyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}
