package service

import (
	"errors"
	"testing"
)

func TestGameManager(t *testing.T) {
	gm := NewGameManager()

	t.Run("create and fetch", func(t *testing.T) {
		if err := gm.CreateGame("g1"); err != nil {
			t.Fatalf("CreateGame: %v", err)
		}
		session, err := gm.GetSession("g1")
		if err != nil {
			t.Fatalf("GetSession: %v", err)
		}
		if session.ID != "g1" {
			t.Errorf("session ID = %q; want g1", session.ID)
		}
	})

	t.Run("duplicate ID rejected", func(t *testing.T) {
		if err := gm.CreateGame("g1"); !errors.Is(err, ErrGameExists) {
			t.Errorf("duplicate CreateGame = %v; want ErrGameExists", err)
		}
	})

	t.Run("unknown game", func(t *testing.T) {
		if _, err := gm.GetSession("missing"); !errors.Is(err, ErrGameNotFound) {
			t.Errorf("GetSession(missing) = %v; want ErrGameNotFound", err)
		}
	})

	t.Run("remove", func(t *testing.T) {
		gm.RemoveGame("g1")
		if _, err := gm.GetSession("g1"); !errors.Is(err, ErrGameNotFound) {
			t.Errorf("GetSession after remove = %v; want ErrGameNotFound", err)
		}
	})
}
