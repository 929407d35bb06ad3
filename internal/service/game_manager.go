package service

import (
	"errors"
	"sync"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// GameManager is the registry of live game sessions.
type GameManager struct {
	mu    sync.RWMutex
	games map[string]*GameSession
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*GameSession),
	}
}

// CreateGame registers a fresh session under the given ID.
func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}
	gm.games[gameID] = NewGameSession(gameID)
	return nil
}

// GetSession looks up a live session.
func (gm *GameManager) GetSession(gameID string) (*GameSession, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

// RemoveGame drops a session from the registry.
func (gm *GameManager) RemoveGame(gameID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.games, gameID)
}
