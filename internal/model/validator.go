package model

// MoveValidator is the legality arbiter: it answers whether a move is
// legal, whether a square is attacked, and whether castling or en passant
// is available. Every king-safety question is answered by simulating the
// move on a board copy, never by mutating the live board.
type MoveValidator struct{}

// IsLegalMove checks a move against all chess rules, including king
// safety. turn is the side to move; lastMove feeds en passant eligibility
// and may be nil.
func (v MoveValidator) IsLegalMove(board *Board, start, end Position, turn Color, lastMove *LastMove) bool {
	if !start.IsValid() || !end.IsValid() {
		return false
	}
	piece := board.GetPiece(start)
	if piece == nil {
		return false
	}
	if piece.Color != turn {
		return false
	}
	if start == end {
		return false
	}
	if target := board.GetPiece(end); target != nil && target.Color == piece.Color {
		return false
	}

	candidates := piece.PossibleMoves(board, start)
	if !containsPosition(candidates, end) {
		// A pawn move outside its geometric candidates can still be a
		// legal en passant capture.
		if piece.Type == Pawn && v.IsEnPassantLegal(board, start, end, lastMove) {
			return !v.wouldLeaveInCheckEnPassant(board, start, end, turn)
		}
		return false
	}

	return !v.WouldLeaveInCheck(board, start, end, turn)
}

// WouldLeaveInCheck simulates the raw relocation on a board copy and
// reports whether color's king ends up attacked. A missing king is treated
// as unsafe.
func (v MoveValidator) WouldLeaveInCheck(board *Board, start, end Position, color Color) bool {
	sim := board.Copy()
	if _, err := sim.MovePiece(start, end); err != nil {
		return true
	}
	kingPos, ok := sim.FindKing(color)
	if !ok {
		return true
	}
	return v.IsUnderAttack(sim, kingPos, color)
}

// wouldLeaveInCheckEnPassant is the en passant variant of
// WouldLeaveInCheck: the captured pawn sits beside the mover, not on the
// destination square, so it is removed before the relocation is simulated.
func (v MoveValidator) wouldLeaveInCheckEnPassant(board *Board, start, end Position, color Color) bool {
	sim := board.Copy()
	if err := sim.SetPiece(Position{Row: start.Row, Col: end.Col}, nil); err != nil {
		return true
	}
	if _, err := sim.MovePiece(start, end); err != nil {
		return true
	}
	kingPos, ok := sim.FindKing(color)
	if !ok {
		return true
	}
	return v.IsUnderAttack(sim, kingPos, color)
}

// IsUnderAttack reports whether any piece opposing defendingColor has the
// position among its geometric candidates. Opposing kings are generated
// without castling so attack checks never recurse back into castling
// legality.
func (v MoveValidator) IsUnderAttack(board *Board, position Position, defendingColor Color) bool {
	for _, placed := range board.PiecesOf(defendingColor.Opponent()) {
		moves := placed.Piece.possibleMoves(board, placed.Pos, false)
		if containsPosition(moves, position) {
			return true
		}
	}
	return false
}

// IsEnPassantLegal checks the en passant preconditions: a pawn capturing a
// pawn of the other color that advanced two ranks on the immediately
// preceding move, landing beside the capturer, with end diagonally behind
// it. One ply later the same capture is no longer available.
func (v MoveValidator) IsEnPassantLegal(board *Board, start, end Position, lastMove *LastMove) bool {
	if lastMove == nil {
		return false
	}
	piece := board.GetPiece(start)
	if piece == nil || piece.Type != Pawn {
		return false
	}
	if lastMove.Piece.Type != Pawn || lastMove.Piece.Color == piece.Color {
		return false
	}

	// The capturing pawn must stand on the rank a double advance passes
	// it on: row 3 for white, row 4 for black.
	captureRank := 3
	if piece.Color == Black {
		captureRank = 4
	}
	if start.Row != captureRank {
		return false
	}

	if abs(lastMove.To.Row-lastMove.From.Row) != 2 {
		return false
	}
	if lastMove.To.Row != start.Row || abs(lastMove.To.Col-start.Col) != 1 {
		return false
	}

	dir := -1
	if piece.Color == Black {
		dir = 1
	}
	return end.Row == start.Row+dir && end.Col == lastMove.To.Col
}

// CanCastle checks castling legality for the king and the rook on rookPos:
// both unmoved, nothing between them, king not in check, and neither the
// transit square nor the destination attacked.
func (v MoveValidator) CanCastle(board *Board, kingPos, rookPos Position) bool {
	king := board.GetPiece(kingPos)
	rook := board.GetPiece(rookPos)
	if king == nil || king.Type != King || rook == nil || rook.Type != Rook {
		return false
	}
	if king.Color != rook.Color {
		return false
	}
	if king.HasMoved || rook.HasMoved {
		return false
	}
	if v.IsUnderAttack(board, kingPos, king.Color) {
		return false
	}

	dir := 1
	lo, hi := kingPos.Col, rookPos.Col
	if rookPos.Col < kingPos.Col {
		dir = -1
		lo, hi = rookPos.Col, kingPos.Col
	}
	for col := lo + 1; col < hi; col++ {
		if board.GetPiece(Position{Row: kingPos.Row, Col: col}) != nil {
			return false
		}
	}

	// The king passes through one square and lands two over; neither may
	// be attacked.
	for _, step := range []int{1, 2} {
		pos := Position{Row: kingPos.Row, Col: kingPos.Col + step*dir}
		if v.IsUnderAttack(board, pos, king.Color) {
			return false
		}
	}
	return true
}

func containsPosition(positions []Position, pos Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
