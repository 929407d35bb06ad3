package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCapturedPieces(t *testing.T) {
	c := NewCapturedPieces()

	c.Add(Pawn, White)
	c.Add(Queen, White)
	c.Add(Knight, Black)
	c.Add(Pawn, Black)
	c.Add(Pawn, Black)

	t.Run("per-color lists", func(t *testing.T) {
		if diff := cmp.Diff([]PieceType{Pawn, Queen}, c.By(White)); diff != "" {
			t.Errorf("white captures mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]PieceType{Knight, Pawn, Pawn}, c.By(Black)); diff != "" {
			t.Errorf("black captures mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("material advantage", func(t *testing.T) {
		// White took 1+9, black took 3+1+1.
		if got := c.MaterialAdvantage(); got != 5 {
			t.Errorf("MaterialAdvantage = %d; want 5", got)
		}
	})

	t.Run("counts by type", func(t *testing.T) {
		want := map[PieceType]int{Knight: 1, Pawn: 2}
		if diff := cmp.Diff(want, c.CountByType(Black)); diff != "" {
			t.Errorf("black counts mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestMaterialAdvantageEmpty(t *testing.T) {
	c := NewCapturedPieces()
	if got := c.MaterialAdvantage(); got != 0 {
		t.Errorf("MaterialAdvantage on empty = %d; want 0", got)
	}
}
