package model

// Color of a side.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceType is the closed set of piece kinds. Movement is dispatched over
// this set in PossibleMoves rather than through an interface hierarchy so
// the switch stays exhaustive.
type PieceType string

const (
	Pawn   PieceType = "pawn"
	Rook   PieceType = "rook"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	Queen  PieceType = "queen"
	King   PieceType = "king"
)

// Notation returns the algebraic letter for the piece type. Pawns have none.
func (t PieceType) Notation() string {
	switch t {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// Piece is a chessman on some square. It carries no reference back to the
// board; movement generation takes the square it stands on as an argument.
// HasMoved gates the pawn double advance and castling and is never reset.
type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

type offset struct{ dr, dc int }

var (
	rookDirs   = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	kingDirs   = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs = []offset{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	queenDirs  = append(append([]offset{}, rookDirs...), bishopDirs...)
)

// PossibleMoves returns the geometric candidate destinations for the piece
// standing on from: bounds and blocking only, king safety ignored. King
// candidates include castling destinations.
func (p Piece) PossibleMoves(board *Board, from Position) []Position {
	return p.possibleMoves(board, from, true)
}

// possibleMoves is PossibleMoves with castling switchable. Attack detection
// must generate king moves with includeCastling=false, otherwise castling
// legality and attack checks recurse into each other forever.
func (p Piece) possibleMoves(board *Board, from Position, includeCastling bool) []Position {
	switch p.Type {
	case Pawn:
		return p.pawnMoves(board, from)
	case Rook:
		return p.rayMoves(board, from, rookDirs)
	case Bishop:
		return p.rayMoves(board, from, bishopDirs)
	case Queen:
		return p.rayMoves(board, from, queenDirs)
	case Knight:
		return p.stepMoves(board, from, knightDirs)
	case King:
		return p.kingMoves(board, from, includeCastling)
	}
	return nil
}

// pawnMoves: single push, double push from the starting rank, and diagonal
// captures. En passant is not generated here; it is a MoveValidator special
// case keyed off the previous move.
func (p Piece) pawnMoves(board *Board, from Position) []Position {
	moves := []Position{}
	dir := -1 // white moves toward row 0
	if p.Color == Black {
		dir = 1
	}

	forward := Position{Row: from.Row + dir, Col: from.Col}
	if forward.IsValid() && board.GetPiece(forward) == nil {
		moves = append(moves, forward)
		if !p.HasMoved {
			double := Position{Row: from.Row + 2*dir, Col: from.Col}
			if double.IsValid() && board.GetPiece(double) == nil {
				moves = append(moves, double)
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		capture := Position{Row: from.Row + dir, Col: from.Col + dc}
		if !capture.IsValid() {
			continue
		}
		if target := board.GetPiece(capture); target != nil && target.Color != p.Color {
			moves = append(moves, capture)
		}
	}
	return moves
}

// rayMoves casts along each direction until the board edge, an own piece
// (stop, excluded) or an opposing piece (stop, included as a capture).
func (p Piece) rayMoves(board *Board, from Position, dirs []offset) []Position {
	moves := []Position{}
	for _, d := range dirs {
		pos := Position{Row: from.Row + d.dr, Col: from.Col + d.dc}
		for pos.IsValid() {
			target := board.GetPiece(pos)
			if target == nil {
				moves = append(moves, pos)
			} else {
				if target.Color != p.Color {
					moves = append(moves, pos)
				}
				break
			}
			pos = Position{Row: pos.Row + d.dr, Col: pos.Col + d.dc}
		}
	}
	return moves
}

// stepMoves filters fixed offsets to on-board, non-own-occupied squares.
func (p Piece) stepMoves(board *Board, from Position, dirs []offset) []Position {
	moves := []Position{}
	for _, d := range dirs {
		pos := Position{Row: from.Row + d.dr, Col: from.Col + d.dc}
		if !pos.IsValid() {
			continue
		}
		if target := board.GetPiece(pos); target == nil || target.Color != p.Color {
			moves = append(moves, pos)
		}
	}
	return moves
}

func (p Piece) kingMoves(board *Board, from Position, includeCastling bool) []Position {
	moves := p.stepMoves(board, from, kingDirs)
	if !includeCastling || p.HasMoved {
		return moves
	}

	var validator MoveValidator
	// kingside rook on column 7, queenside rook on column 0
	if validator.CanCastle(board, from, Position{Row: from.Row, Col: 7}) {
		moves = append(moves, Position{Row: from.Row, Col: from.Col + 2})
	}
	if validator.CanCastle(board, from, Position{Row: from.Row, Col: 0}) {
		moves = append(moves, Position{Row: from.Row, Col: from.Col - 2})
	}
	return moves
}
