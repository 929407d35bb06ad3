package controller

import (
	"errors"

	"github.com/GigabyteBlender/chess-backend/internal/model"
	"github.com/GigabyteBlender/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// GameController exposes the engine over REST. Legality failures are data
// (ok=false), not HTTP errors; only unknown games and malformed squares
// map to error statuses.
type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	snapshot, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return statusFor(c, err)
	}
	return c.JSON(snapshot)
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	square := c.Query("square")

	moves, err := gc.gameService.GetLegalMoves(gameID, square)
	if err != nil {
		return statusFor(c, err)
	}
	return c.JSON(fiber.Map{
		"square": square,
		"moves":  moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move payload",
		})
	}

	snapshot, ok, err := gc.gameService.HandleMove(gameID, req.From, req.To)
	if err != nil {
		return statusFor(c, err)
	}
	return c.JSON(fiber.Map{
		"ok":    ok,
		"state": snapshot,
	})
}

func (gc *GameController) GetHistory(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	history, err := gc.gameService.GetHistory(gameID)
	if err != nil {
		return statusFor(c, err)
	}
	return c.JSON(fiber.Map{
		"history": history,
	})
}

func statusFor(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, model.ErrInvalidPosition):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
