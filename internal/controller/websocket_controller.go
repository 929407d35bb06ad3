package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/GigabyteBlender/chess-backend/internal/service"
	"github.com/GigabyteBlender/chess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// WebSocketController pushes game state to connected clients and accepts
// moves over the same socket.
type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{gameService: gameService}
}

// HandleConnection runs the read loop for one connection until it closes.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	clientID, _ := c.Locals("clientID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, clientID, c); err != nil {
		log.Printf("ws register %s/%s: %v", gameID, clientID, err)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, clientID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(c, "malformed message")
			continue
		}
		if err := wsc.handleMessage(c, gameID, msg); err != nil {
			log.Printf("ws handle %s/%s: %v", gameID, clientID, err)
			wsc.sendError(c, err.Error())
		}
	}
}

func (wsc *WebSocketController) handleMessage(c *websocket.Conn, gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, ok, err := wsc.gameService.HandleMove(gameID, move.From, move.To)
		if err != nil {
			return err
		}
		if !ok {
			// Illegal move: tell only this client; there is no new state
			// to broadcast.
			result, _ := json.Marshal(ws.MoveResult{OK: false})
			return c.WriteJSON(ws.Message{Type: ws.MessageTypeMove, Payload: result})
		}
		return nil

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	payload, _ := json.Marshal(errorMsg)
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: payload,
	})
}
