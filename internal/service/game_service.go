package service

import (
	"fmt"

	"github.com/GigabyteBlender/chess-backend/internal/model"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// GameService is the facade the controllers talk to. Squares cross this
// boundary in algebraic notation; the engine's Position type stays inside.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{gameManager: gameManager}
}

// CreateGame mints an ID and registers a new game.
func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()
	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

// GetGameState returns the snapshot for a game.
func (gs *GameService) GetGameState(gameID string) (model.Snapshot, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return session.State(), nil
}

// GetLegalMoves returns the legal destinations for the piece on square, in
// algebraic notation.
func (gs *GameService) GetLegalMoves(gameID, square string) ([]string, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return nil, err
	}
	pos, err := model.FromAlgebraic(square)
	if err != nil {
		return nil, err
	}

	moves := session.LegalMoves(pos)
	squares := make([]string, 0, len(moves))
	for _, m := range moves {
		squares = append(squares, m.ToAlgebraic())
	}
	return squares, nil
}

// HandleMove applies a move given in algebraic squares. The bool reports
// legality; errors are reserved for unknown games and malformed squares.
func (gs *GameService) HandleMove(gameID, from, to string) (model.Snapshot, bool, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return model.Snapshot{}, false, err
	}
	start, err := model.FromAlgebraic(from)
	if err != nil {
		return model.Snapshot{}, false, err
	}
	end, err := model.FromAlgebraic(to)
	if err != nil {
		return model.Snapshot{}, false, err
	}

	snap, ok := session.Move(start, end)
	return snap, ok, nil
}

// GetHistory returns the formatted transcript for a game.
func (gs *GameService) GetHistory(gameID string) ([]string, error) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return nil, err
	}
	return session.History(), nil
}

// RegisterConnection attaches a WebSocket connection to a game.
func (gs *GameService) RegisterConnection(gameID, clientID string, conn *websocket.Conn) error {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return err
	}
	session.RegisterConnection(clientID, conn)
	return nil
}

// UnregisterConnection detaches a WebSocket connection from a game.
func (gs *GameService) UnregisterConnection(gameID, clientID string, conn *websocket.Conn) {
	session, err := gs.gameManager.GetSession(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(clientID, conn)
}
