package model

import (
	"fmt"
	"strings"
)

// Board is the 8x8 grid of pieces. A nil entry is an empty square. Each
// square owns at most one piece; cloning a board clones the pieces too, so
// a copy can be mutated freely for move simulation.
type Board struct {
	grid [8][8]*Piece
}

// NewEmptyBoard returns a board with no pieces, for building fixtures.
func NewEmptyBoard() *Board {
	return &Board{}
}

// NewBoard returns a board with the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, t := range backRank {
		b.grid[0][col] = &Piece{Type: t, Color: Black}
		b.grid[7][col] = &Piece{Type: t, Color: White}
	}
	for col := 0; col < 8; col++ {
		b.grid[1][col] = &Piece{Type: Pawn, Color: Black}
		b.grid[6][col] = &Piece{Type: Pawn, Color: White}
	}
	return b
}

// GetPiece returns the piece on the square, or nil if the square is empty
// or off the board.
func (b *Board) GetPiece(pos Position) *Piece {
	if !pos.IsValid() {
		return nil
	}
	return b.grid[pos.Row][pos.Col]
}

// SetPiece places a piece on the square, or clears it when piece is nil.
func (b *Board) SetPiece(pos Position, piece *Piece) error {
	if !pos.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, pos)
	}
	b.grid[pos.Row][pos.Col] = piece
	return nil
}

// MovePiece relocates the piece on start to end, returning any captured
// piece. It marks the mover as having moved. This is the mechanical
// primitive only: no legality checks, no castling or en passant side
// effects. GameState composes those on top.
func (b *Board) MovePiece(start, end Position) (*Piece, error) {
	piece := b.GetPiece(start)
	if piece == nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptySquare, start)
	}
	if !end.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, end)
	}

	captured := b.grid[end.Row][end.Col]
	b.grid[end.Row][end.Col] = piece
	b.grid[start.Row][start.Col] = nil
	piece.HasMoved = true
	return captured, nil
}

// FindKing locates the king of the given color. ok is false if the board
// holds no such king; callers treat that as an unanswerable query rather
// than a crash.
func (b *Board) FindKing(color Color) (Position, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p != nil && p.Type == King && p.Color == color {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// PlacedPiece pairs a piece with the square it stands on.
type PlacedPiece struct {
	Pos   Position
	Piece *Piece
}

// PiecesOf returns every piece of the given color with its square, scanned
// in row-major order.
func (b *Board) PiecesOf(color Color) []PlacedPiece {
	pieces := []PlacedPiece{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p != nil && p.Color == color {
				pieces = append(pieces, PlacedPiece{Pos: Position{Row: row, Col: col}, Piece: p})
			}
		}
	}
	return pieces
}

// Copy returns a fully independent clone. Pieces are reallocated so that
// mutating the copy (including HasMoved flags) never touches the original.
func (b *Board) Copy() *Board {
	clone := &Board{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; p != nil {
				cp := *p
				clone.grid[row][col] = &cp
			}
		}
	}
	return clone
}

// String renders the board for debugging, black's back rank on top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			p := b.grid[row][col]
			if p == nil {
				sb.WriteByte('.')
				continue
			}
			c := "w"
			if p.Color == Black {
				c = "b"
			}
			n := p.Type.Notation()
			if n == "" {
				n = "P"
			}
			sb.WriteString(c + n)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
