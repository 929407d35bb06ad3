package model

// LastMove remembers the most recent relocation for en passant
// bookkeeping. Piece is the mover as it was before the move resolved, so
// a pawn that promoted is still recorded as a pawn here.
type LastMove struct {
	From  Position `json:"from"`
	To    Position `json:"to"`
	Piece Piece    `json:"piece"`
}
