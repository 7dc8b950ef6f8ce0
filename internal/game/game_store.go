package game

import (
	"sync"

	"github.com/google/uuid"
)

// GameStore holds every in-memory game session, keyed by game id.
type GameStore struct {
	mu    sync.Mutex
	games map[uuid.UUID]*TussieGame
}

func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[uuid.UUID]*TussieGame),
	}
}

func (s *GameStore) AddGame(game *TussieGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
}

func (s *GameStore) GetGame(id uuid.UUID) (*TussieGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, exists := s.games[id]
	return g, exists
}

func (s *GameStore) DeleteGame(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}
