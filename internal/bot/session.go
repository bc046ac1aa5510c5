package bot

import "sync"

// Sessions tracks which users are expected to send a task description
// as their next free-text message. The bot dispatches updates on
// separate goroutines, so the map needs a lock.
type Sessions struct {
	mu      sync.Mutex
	pending map[int64]struct{}
}

func NewSessions() *Sessions {
	return &Sessions{pending: make(map[int64]struct{})}
}

// Await marks the user's next free-text message as a task description.
func (s *Sessions) Await(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = struct{}{}
}

// Claim consumes the marker if set. Each prompt gets at most one
// attempt; the user has to press the add button again after a failure.
func (s *Sessions) Claim(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[userID]
	if ok {
		delete(s.pending, userID)
	}
	return ok
}
