package model

import (
	"errors"
	"testing"
)

func TestNewPosition(t *testing.T) {
	t.Run("valid corners", func(t *testing.T) {
		for _, rc := range [][2]int{{0, 0}, {0, 7}, {7, 0}, {7, 7}} {
			if _, err := NewPosition(rc[0], rc[1]); err != nil {
				t.Errorf("NewPosition(%d, %d) = %v; want nil", rc[0], rc[1], err)
			}
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, rc := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-3, 12}} {
			_, err := NewPosition(rc[0], rc[1])
			if !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("NewPosition(%d, %d) = %v; want ErrInvalidPosition", rc[0], rc[1], err)
			}
		}
	})
}

func TestToAlgebraic(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{Row: 0, Col: 0}, "a8"},
		{Position{Row: 7, Col: 0}, "a1"},
		{Position{Row: 0, Col: 7}, "h8"},
		{Position{Row: 7, Col: 7}, "h1"},
		{Position{Row: 6, Col: 4}, "e2"},
		{Position{Row: 4, Col: 4}, "e4"},
	}
	for _, tt := range tests {
		if got := tt.pos.ToAlgebraic(); got != tt.want {
			t.Errorf("Position{%d,%d}.ToAlgebraic() = %q; want %q", tt.pos.Row, tt.pos.Col, got, tt.want)
		}
	}
}

func TestFromAlgebraic(t *testing.T) {
	t.Run("round trip all squares", func(t *testing.T) {
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				pos := Position{Row: row, Col: col}
				parsed, err := FromAlgebraic(pos.ToAlgebraic())
				if err != nil {
					t.Fatalf("FromAlgebraic(%q) error: %v", pos.ToAlgebraic(), err)
				}
				if parsed != pos {
					t.Errorf("round trip %q = %v; want %v", pos.ToAlgebraic(), parsed, pos)
				}
			}
		}
	})

	t.Run("uppercase file accepted", func(t *testing.T) {
		pos, err := FromAlgebraic("E4")
		if err != nil {
			t.Fatalf("FromAlgebraic(E4) error: %v", err)
		}
		if want := (Position{Row: 4, Col: 4}); pos != want {
			t.Errorf("FromAlgebraic(E4) = %v; want %v", pos, want)
		}
	})

	t.Run("invalid notation", func(t *testing.T) {
		for _, s := range []string{"", "e", "e44", "i4", "e0", "e9", "44", "??"} {
			if _, err := FromAlgebraic(s); !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("FromAlgebraic(%q) = %v; want ErrInvalidPosition", s, err)
			}
		}
	})
}
