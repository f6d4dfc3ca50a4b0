// Package session keeps validated datasets alive between the upload request
// and later report-generation requests. Entries are keyed by an opaque
// session ID and evicted after a fixed TTL. The store holds read-only
// snapshots; the processing core never sees it.
package session

import (
	"sync"
	"time"

	"github.com/MaxHT0x/WebAlumni/internal/core"
)

// Entry is one uploaded, validated dataset held for its session.
type Entry struct {
	ID         string
	FileName   string
	Dataset    *core.Dataset
	UploadedAt time.Time
}

// Store is a TTL-bounded map of session ID to dataset snapshot. Safe for
// concurrent use. The clock is injected so eviction is testable.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a store whose entries expire after ttl. A nil clock
// defaults to time.Now.
func NewStore(ttl time.Duration, clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		entries: make(map[string]*Entry),
		ttl:     ttl,
		now:     clock,
	}
}

// Put stores a dataset under the given session ID, stamping the upload time.
func (s *Store) Put(id, fileName string, ds *core.Dataset) *Entry {
	entry := &Entry{
		ID:         id,
		FileName:   fileName,
		Dataset:    ds,
		UploadedAt: s.now(),
	}
	s.mu.Lock()
	s.entries[id] = entry
	s.mu.Unlock()
	return entry
}

// Get returns the entry for a session ID. Expired entries are treated as
// absent and removed.
func (s *Store) Get(id string) (*Entry, bool) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.expired(entry) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return nil, false
	}
	return entry, true
}

// Delete removes a session entry if present.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Sweep removes every expired entry and reports how many were evicted.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, entry := range s.entries {
		if s.expired(entry) {
			delete(s.entries, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live entries, expired ones included until the
// next Sweep or Get touches them.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) expired(entry *Entry) bool {
	return s.now().Sub(entry.UploadedAt) > s.ttl
}
