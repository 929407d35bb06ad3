package model

import (
	"sort"
	"testing"
)

// sq parses an algebraic square and fails the test on bad input.
func sq(t *testing.T, notation string) Position {
	t.Helper()
	pos, err := FromAlgebraic(notation)
	if err != nil {
		t.Fatalf("bad square %q: %v", notation, err)
	}
	return pos
}

// place puts a fresh piece on the square.
func place(t *testing.T, b *Board, square string, color Color, pieceType PieceType) {
	t.Helper()
	if err := b.SetPiece(sq(t, square), &Piece{Type: pieceType, Color: color}); err != nil {
		t.Fatalf("place %s: %v", square, err)
	}
}

// newTestGame wraps a fixture board in a playable GameState.
func newTestGame(b *Board, turn Color) *GameState {
	return &GameState{
		Board:       b,
		CurrentTurn: turn,
		MoveHistory: NewMoveHistory(),
		Captured:    NewCapturedPieces(),
		CheckStatus: map[Color]bool{White: false, Black: false},
	}
}

// squares renders positions as sorted algebraic squares for stable
// comparison.
func squares(positions []Position) []string {
	out := make([]string, 0, len(positions))
	for _, p := range positions {
		out = append(out, p.ToAlgebraic())
	}
	sort.Strings(out)
	return out
}

func sortedCopy(in []string) []string {
	out := append([]string{}, in...)
	sort.Strings(out)
	return out
}
