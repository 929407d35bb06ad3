package ws

import (
	"encoding/json"
)

// MessageType discriminates the WebSocket messages the server understands
// or emits.
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeLegalMoves MessageType = "legalMoves"
	MessageTypeError      MessageType = "error"
)

// Message is the envelope for every WebSocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload carries a move request in algebraic squares, e.g. "e2"→"e4".
type MovePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MoveResult reports whether a move was applied.
type MoveResult struct {
	OK bool `json:"ok"`
}
