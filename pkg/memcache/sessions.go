// pkg/memcache/sessions.go
package mem

import (
	"sync"

	"lounge/internal/models/quiz_models"
)

type SessionStore interface {
	Put(session *quiz_models.QuizSession)

	// Get returns the session for id, or nil if unknown.
	Get(id string) *quiz_models.QuizSession

	// Delete drops a session once the player abandons or finishes it.
	Delete(id string)
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]*quiz_models.QuizSession
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[string]*quiz_models.QuizSession),
	}
}

func (s *Sessions) Put(session *quiz_models.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = session
}

func (s *Sessions) Get(id string) *quiz_models.QuizSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[id]
}

func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
