package service

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/GigabyteBlender/chess-backend/internal/model"
	"github.com/GigabyteBlender/chess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// GameSession wraps one engine instance for concurrent consumers. The
// engine itself is single-caller by design, so every call into it happens
// under the session mutex; MakeMove is not atomic internally and must not
// be entered twice.
type GameSession struct {
	ID string

	mu   sync.Mutex
	game *model.GameState

	connMu      sync.RWMutex
	connections map[string]*websocket.Conn // clientID -> connection
}

func NewGameSession(id string) *GameSession {
	return &GameSession{
		ID:          id,
		game:        model.NewGameState(),
		connections: make(map[string]*websocket.Conn),
	}
}

// Move applies a move and returns the resulting snapshot along with
// whether the move was accepted. Accepted moves are broadcast to every
// registered connection.
func (s *GameSession) Move(from, to model.Position) (model.Snapshot, bool) {
	s.mu.Lock()
	ok := s.game.MakeMove(from, to)
	snap := s.game.Snapshot()
	s.mu.Unlock()

	if ok {
		go s.broadcastState(snap)
	}
	return snap, ok
}

// State returns the current snapshot.
func (s *GameSession) State() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// LegalMoves returns the legal destinations for the piece on the square.
func (s *GameSession) LegalMoves(pos model.Position) []model.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.GetLegalMoves(pos)
}

// History returns the formatted move transcript.
func (s *GameSession) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.MoveHistory.GetFormattedHistory()
}

// RegisterConnection attaches a WebSocket connection and sends it the
// current state. A client reconnecting replaces its previous connection.
func (s *GameSession) RegisterConnection(clientID string, conn *websocket.Conn) {
	s.connMu.Lock()
	if old, exists := s.connections[clientID]; exists {
		old.Close()
	}
	s.connections[clientID] = conn
	s.connMu.Unlock()

	snap := s.State()
	go s.broadcastState(snap)
}

// UnregisterConnection detaches a client's connection if it is still the
// registered one.
func (s *GameSession) UnregisterConnection(clientID string, conn *websocket.Conn) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	if current, exists := s.connections[clientID]; exists && current == conn {
		delete(s.connections, clientID)
	}
}

// broadcastState pushes a snapshot to every registered connection. Writes
// happen on a copy of the connection map so a slow socket never blocks the
// game.
func (s *GameSession) broadcastState(snap model.Snapshot) {
	s.connMu.RLock()
	active := make(map[string]*websocket.Conn, len(s.connections))
	for clientID, conn := range s.connections {
		active[clientID] = conn
	}
	s.connMu.RUnlock()

	payload, err := json.Marshal(snap)
	if err != nil {
		log.Printf("game %s: marshal state: %v", s.ID, err)
		return
	}
	msg := ws.Message{Type: ws.MessageTypeGameState, Payload: payload}

	for clientID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: send state to %s: %v", s.ID, clientID, err)
			s.connMu.Lock()
			if s.connections[clientID] == conn {
				delete(s.connections, clientID)
			}
			s.connMu.Unlock()
		}
	}
}
