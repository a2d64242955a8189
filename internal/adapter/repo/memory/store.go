package memory

import (
	"sync"

	"emberhold/internal/app/ports"
	"emberhold/internal/domain/economy"
)

// Store backs the in-memory adapters. Map access is guarded by mu; the
// transactional span of one action is guarded by a per-player mutex so
// requests for different players never block each other.
type Store struct {
	mu      sync.Mutex
	locks   map[string]*sync.Mutex
	states  map[string]economy.PlayerState
	players map[int64]ports.PlayerRecord
	tokens  map[string]ports.SessionTokenRecord
}

func NewStore() *Store {
	return &Store{
		locks:   make(map[string]*sync.Mutex),
		states:  make(map[string]economy.PlayerState),
		players: make(map[int64]ports.PlayerRecord),
		tokens:  make(map[string]ports.SessionTokenRecord),
	}
}

func (s *Store) playerLock(playerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[playerID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[playerID] = lock
	}
	return lock
}

// SeedState installs a record directly, bypassing the lock discipline.
// Test setup only.
func (s *Store) SeedState(state economy.PlayerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.PlayerID] = state
}
