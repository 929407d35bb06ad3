package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GigabyteBlender/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	gameService := service.NewGameService(service.NewGameManager())
	gc := NewGameController(gameService)

	gameRoutes := app.Group("/api/game")
	gameRoutes.Post("/create", gc.CreateGame)
	gameRoutes.Get("/:gameId", gc.GetGameState)
	gameRoutes.Get("/:gameId/moves", gc.GetLegalMoves)
	gameRoutes.Post("/:gameId/move", gc.MakeMove)
	gameRoutes.Get("/:gameId/history", gc.GetHistory)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body any, out any) int {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s: %v", method, url, err)
		}
	}
	return resp.StatusCode
}

func TestGameEndpoints(t *testing.T) {
	app := newTestApp()

	var created struct {
		GameID string `json:"game_id"`
	}
	if code := doJSON(t, app, http.MethodPost, "/api/game/create", nil, &created); code != http.StatusOK {
		t.Fatalf("create status = %d; want 200", code)
	}
	if created.GameID == "" {
		t.Fatal("create returned no game_id")
	}

	t.Run("state of a fresh game", func(t *testing.T) {
		var state struct {
			ToMove   string `json:"toMove"`
			GameOver bool   `json:"gameOver"`
		}
		if code := doJSON(t, app, http.MethodGet, "/api/game/"+created.GameID, nil, &state); code != http.StatusOK {
			t.Fatalf("state status = %d; want 200", code)
		}
		if state.ToMove != "white" || state.GameOver {
			t.Errorf("state = %+v; want white to move, game running", state)
		}
	})

	t.Run("legal moves for a square", func(t *testing.T) {
		var moves struct {
			Square string   `json:"square"`
			Moves  []string `json:"moves"`
		}
		code := doJSON(t, app, http.MethodGet, "/api/game/"+created.GameID+"/moves?square=e2", nil, &moves)
		if code != http.StatusOK {
			t.Fatalf("moves status = %d; want 200", code)
		}
		if len(moves.Moves) != 2 {
			t.Errorf("e2 moves = %v; want two pushes", moves.Moves)
		}
	})

	t.Run("bad square is a 400", func(t *testing.T) {
		code := doJSON(t, app, http.MethodGet, "/api/game/"+created.GameID+"/moves?square=z9", nil, nil)
		if code != http.StatusBadRequest {
			t.Errorf("bad square status = %d; want 400", code)
		}
	})

	t.Run("legal move accepted", func(t *testing.T) {
		var result struct {
			OK    bool `json:"ok"`
			State struct {
				ToMove string `json:"toMove"`
			} `json:"state"`
		}
		body := map[string]string{"from": "e2", "to": "e4"}
		code := doJSON(t, app, http.MethodPost, "/api/game/"+created.GameID+"/move", body, &result)
		if code != http.StatusOK {
			t.Fatalf("move status = %d; want 200", code)
		}
		if !result.OK {
			t.Error("legal move reported not ok")
		}
		if result.State.ToMove != "black" {
			t.Errorf("toMove after e4 = %q; want black", result.State.ToMove)
		}
	})

	t.Run("illegal move is ok=false, not an error status", func(t *testing.T) {
		var result struct {
			OK bool `json:"ok"`
		}
		body := map[string]string{"from": "e4", "to": "e6"}
		code := doJSON(t, app, http.MethodPost, "/api/game/"+created.GameID+"/move", body, &result)
		if code != http.StatusOK {
			t.Fatalf("illegal move status = %d; want 200", code)
		}
		if result.OK {
			t.Error("illegal move reported ok")
		}
	})

	t.Run("history", func(t *testing.T) {
		var history struct {
			History []string `json:"history"`
		}
		code := doJSON(t, app, http.MethodGet, "/api/game/"+created.GameID+"/history", nil, &history)
		if code != http.StatusOK {
			t.Fatalf("history status = %d; want 200", code)
		}
		if len(history.History) != 1 || history.History[0] != "1. e4" {
			t.Errorf("history = %v; want [1. e4]", history.History)
		}
	})

	t.Run("unknown game is a 404", func(t *testing.T) {
		code := doJSON(t, app, http.MethodGet, "/api/game/does-not-exist", nil, nil)
		if code != http.StatusNotFound {
			t.Errorf("unknown game status = %d; want 404", code)
		}
	})
}
