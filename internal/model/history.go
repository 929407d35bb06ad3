package model

import (
	"fmt"
	"time"
)

// MoveRecord is one executed move. Records are immutable once appended.
type MoveRecord struct {
	MoveNumber  int       `json:"moveNumber"`
	Player      Color     `json:"player"`
	PieceType   PieceType `json:"pieceType"`
	From        Position  `json:"from"`
	To          Position  `json:"to"`
	Captured    PieceType `json:"captured,omitempty"`
	IsCheck     bool      `json:"isCheck"`
	IsCheckmate bool      `json:"isCheckmate"`
	IsCastling  bool      `json:"isCastling"`
	IsEnPassant bool      `json:"isEnPassant"`
	Notation    string    `json:"notation"`
	Timestamp   time.Time `json:"timestamp"`
}

// MoveFacts is everything the history needs to record a move that has
// already been executed on the board.
type MoveFacts struct {
	Piece       Piece
	From        Position
	To          Position
	Captured    PieceType
	IsCheck     bool
	IsCheckmate bool
	IsCastling  bool
	IsEnPassant bool
}

// MoveHistory is the chronological log of the game in standard algebraic
// notation.
type MoveHistory struct {
	moves []MoveRecord
}

// NewMoveHistory returns an empty history.
func NewMoveHistory() *MoveHistory {
	return &MoveHistory{moves: []MoveRecord{}}
}

// AddMove appends a record for the move described by facts. board must be
// the position before the move: disambiguation asks which rivals could
// reach the destination, and once the mover stands there none can.
func (h *MoveHistory) AddMove(board *Board, facts MoveFacts) {
	record := MoveRecord{
		MoveNumber:  len(h.moves)/2 + 1,
		Player:      facts.Piece.Color,
		PieceType:   facts.Piece.Type,
		From:        facts.From,
		To:          facts.To,
		Captured:    facts.Captured,
		IsCheck:     facts.IsCheck,
		IsCheckmate: facts.IsCheckmate,
		IsCastling:  facts.IsCastling,
		IsEnPassant: facts.IsEnPassant,
		Notation:    h.toAlgebraicNotation(board, facts),
		Timestamp:   time.Now(),
	}
	h.moves = append(h.moves, record)
}

// toAlgebraicNotation builds standard algebraic notation: O-O/O-O-O for
// castles, otherwise piece letter (plus disambiguation), pawn origin file
// on captures, 'x' for captures, destination square, an " e.p." marker for
// en passant, and finally '#' or '+'.
func (h *MoveHistory) toAlgebraicNotation(board *Board, facts MoveFacts) string {
	var notation string
	isCapture := facts.Captured != ""

	if facts.IsCastling {
		if facts.To.Col > facts.From.Col {
			notation = "O-O"
		} else {
			notation = "O-O-O"
		}
	} else {
		if facts.Piece.Type != Pawn {
			notation += facts.Piece.Type.Notation()
			notation += disambiguation(board, facts.Piece, facts.From, facts.To)
		} else if isCapture {
			notation += facts.From.ToAlgebraic()[:1]
		}
		if isCapture {
			notation += "x"
		}
		notation += facts.To.ToAlgebraic()
		if facts.IsEnPassant {
			notation += " e.p."
		}
	}

	if facts.IsCheckmate {
		notation += "#"
	} else if facts.IsCheck {
		notation += "+"
	}
	return notation
}

// disambiguation returns the origin detail needed when another piece of
// the same kind and color could also reach the destination: file if the
// files differ, rank if only the ranks differ, full square otherwise.
func disambiguation(board *Board, piece Piece, from, to Position) string {
	rivals := []Position{}
	for _, placed := range board.PiecesOf(piece.Color) {
		if placed.Pos == from {
			continue
		}
		if placed.Piece.Type != piece.Type {
			continue
		}
		if containsPosition(placed.Piece.PossibleMoves(board, placed.Pos), to) {
			rivals = append(rivals, placed.Pos)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile := false
	sameRank := false
	for _, pos := range rivals {
		if pos.Col == from.Col {
			sameFile = true
		}
		if pos.Row == from.Row {
			sameRank = true
		}
	}
	square := from.ToAlgebraic()
	switch {
	case !sameFile:
		return square[:1]
	case !sameRank:
		return square[1:]
	default:
		return square
	}
}

// Moves returns the records in order. The returned slice must not be
// mutated.
func (h *MoveHistory) Moves() []MoveRecord {
	return h.moves
}

// LastMove returns the most recent record, or nil if no move was made.
func (h *MoveHistory) LastMove() *MoveRecord {
	if len(h.moves) == 0 {
		return nil
	}
	return &h.moves[len(h.moves)-1]
}

// GetFormattedHistory renders the history as display lines, one full move
// per line: "1. e4 e5".
func (h *MoveHistory) GetFormattedHistory() []string {
	formatted := []string{}
	for i := 0; i < len(h.moves); i += 2 {
		white := h.moves[i]
		line := fmt.Sprintf("%d. %s", white.MoveNumber, white.Notation)
		if i+1 < len(h.moves) {
			line += " " + h.moves[i+1].Notation
		}
		formatted = append(formatted, line)
	}
	return formatted
}

// Len returns the number of plies recorded.
func (h *MoveHistory) Len() int {
	return len(h.moves)
}

// Clear removes every record.
func (h *MoveHistory) Clear() {
	h.moves = h.moves[:0]
}
