// Package review tracks an instructor's approve/flag decisions over one
// extraction batch. Downstream quiz generation is gated until every concept
// has been disposed.
package review

import (
	"errors"
	"sync"
)

// Status of a key concept within the current review session.
type Status string

const (
	StatusUnreviewed Status = "unreviewed"
	StatusApproved   Status = "approved"
	StatusFlagged    Status = "flagged"
)

var (
	ErrNoSession      = errors.New("review session not found")
	ErrUnknownConcept = errors.New("concept not in review session")
)

// session holds one reviewer's in-memory state. No network or storage side
// effects; state lives only for the duration of the batch.
type session struct {
	statuses map[string]Status
	reviewed int
}

// Store keys review sessions by session id so concurrent reviewers never
// share state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*session)}
}

// Begin starts a review session over the given concept ids, discarding any
// previous state for that session.
func (s *Store) Begin(sessionID string, ids []string) {
	st := &session{statuses: make(map[string]Status, len(ids))}
	for _, id := range ids {
		st.statuses[id] = StatusUnreviewed
	}
	s.mu.Lock()
	s.sessions[sessionID] = st
	s.mu.Unlock()
}

// MarkApproved records approval for a concept. Re-marking an already-decided
// concept is an idempotent re-assignment and does not change the reviewed
// count.
func (s *Store) MarkApproved(sessionID, id string) error {
	return s.mark(sessionID, id, StatusApproved)
}

// MarkFlagged records a flag for a concept.
func (s *Store) MarkFlagged(sessionID, id string) error {
	return s.mark(sessionID, id, StatusFlagged)
}

func (s *Store) mark(sessionID, id string, to Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[sessionID]
	if !ok {
		return ErrNoSession
	}
	cur, ok := st.statuses[id]
	if !ok {
		return ErrUnknownConcept
	}
	if cur == StatusUnreviewed {
		st.reviewed++
	}
	st.statuses[id] = to
	return nil
}

// Snapshot returns a copy of the id -> status mapping.
func (s *Store) Snapshot(sessionID string) (map[string]Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNoSession
	}
	out := make(map[string]Status, len(st.statuses))
	for k, v := range st.statuses {
		out[k] = v
	}
	return out, nil
}

// AllReviewed reports whether every concept in the session has been approved
// or flagged. An empty session counts as fully reviewed.
func (s *Store) AllReviewed(sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[sessionID]
	if !ok {
		return false, ErrNoSession
	}
	return st.reviewed == len(st.statuses), nil
}

// End discards a session's state.
func (s *Store) End(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}
