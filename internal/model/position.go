package model

import "fmt"

// Position is a square on the board. Row 0 is black's back rank (rank 8),
// row 7 is white's back rank (rank 1). Col 0 is the 'a' file.
// It is a comparable value type so it works as a map key.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewPosition builds a Position and rejects out-of-range coordinates.
func NewPosition(row, col int) (Position, error) {
	p := Position{Row: row, Col: col}
	if !p.IsValid() {
		return Position{}, fmt.Errorf("%w: row=%d col=%d", ErrInvalidPosition, row, col)
	}
	return p, nil
}

// IsValid reports whether the position is on the board.
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

// ToAlgebraic converts to algebraic notation, e.g. Position{6,4} -> "e2".
func (p Position) ToAlgebraic() string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, 8-p.Row)
}

// FromAlgebraic parses algebraic notation like "e4" into a Position.
func FromAlgebraic(notation string) (Position, error) {
	if len(notation) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, notation)
	}
	file := notation[0]
	rank := notation[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' {
		return Position{}, fmt.Errorf("%w: bad file in %q", ErrInvalidPosition, notation)
	}
	if rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidPosition, notation)
	}
	return Position{Row: 8 - int(rank-'0'), Col: int(file - 'a')}, nil
}

func (p Position) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Position(%d,%d)", p.Row, p.Col)
	}
	return p.ToAlgebraic()
}
