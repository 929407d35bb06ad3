package model

// GameState owns one game: the authoritative board, whose turn it is, the
// move log, captures and terminal status. It is mutated only through
// MakeMove, which either applies a fully validated move or leaves every
// field untouched. The engine does no locking; one caller drives one game.
type GameState struct {
	Board       *Board
	CurrentTurn Color
	MoveHistory *MoveHistory
	Captured    CapturedPieces
	CheckStatus map[Color]bool
	GameOver    bool
	Winner      *Color // nil while running, and nil on a draw

	lastMove  *LastMove
	validator MoveValidator
}

// NewGameState starts a fresh game from the standard initial position,
// white to move.
func NewGameState() *GameState {
	return &GameState{
		Board:       NewBoard(),
		CurrentTurn: White,
		MoveHistory: NewMoveHistory(),
		Captured:    NewCapturedPieces(),
		CheckStatus: map[Color]bool{White: false, Black: false},
	}
}

// IsInCheck reports whether color's king is currently attacked. A board
// without that king is simply not in check.
func (g *GameState) IsInCheck(color Color) bool {
	kingPos, ok := g.Board.FindKing(color)
	if !ok {
		return false
	}
	return g.validator.IsUnderAttack(g.Board, kingPos, color)
}

// GetLegalMoves returns every legal destination for the piece on position:
// its geometric candidates minus anything that leaves its own king in
// check. Empty when the square is empty.
func (g *GameState) GetLegalMoves(position Position) []Position {
	piece := g.Board.GetPiece(position)
	if piece == nil {
		return []Position{}
	}

	legal := []Position{}
	for _, end := range piece.PossibleMoves(g.Board, position) {
		if g.validator.IsLegalMove(g.Board, position, end, piece.Color, g.lastMove) {
			legal = append(legal, end)
		}
	}
	return legal
}

// IsCheckmate reports whether color is in check with no legal move left.
func (g *GameState) IsCheckmate(color Color) bool {
	if !g.IsInCheck(color) {
		return false
	}
	return !g.hasAnyLegalMove(color)
}

// IsStalemate reports whether the side to move is not in check yet has no
// legal move.
func (g *GameState) IsStalemate() bool {
	if g.IsInCheck(g.CurrentTurn) {
		return false
	}
	return !g.hasAnyLegalMove(g.CurrentTurn)
}

func (g *GameState) hasAnyLegalMove(color Color) bool {
	for _, placed := range g.Board.PiecesOf(color) {
		if len(g.GetLegalMoves(placed.Pos)) > 0 {
			return true
		}
	}
	return false
}

// LastMove returns the most recent relocation, or nil before the first
// move.
func (g *GameState) LastMove() *LastMove {
	return g.lastMove
}

// MakeMove validates and executes a move, returning whether it was
// applied. Any rejection leaves the state exactly as it was. A finished
// game rejects everything.
//
// Execution order matters: the castling rook and the en passant victim are
// resolved before the primary relocation, promotion after it, and only
// then turn switch, check recomputation, terminal detection and the
// history entry.
func (g *GameState) MakeMove(start, end Position) bool {
	if g.GameOver {
		return false
	}
	piece := g.Board.GetPiece(start)
	if piece == nil {
		return false
	}
	if piece.Color != g.CurrentTurn {
		return false
	}
	if !g.validator.IsLegalMove(g.Board, start, end, g.CurrentTurn, g.lastMove) {
		return false
	}

	// Remember the mover as it stood before the move; promotion below must
	// not leak into en passant bookkeeping. The board copy feeds notation
	// disambiguation, which has to see rival pieces before anything moved.
	mover := *piece
	boardBefore := g.Board.Copy()

	// Castling: the king moves two files, the rook jumps to the square the
	// king crossed.
	isCastling := false
	if piece.Type == King && abs(end.Col-start.Col) == 2 {
		isCastling = true
		var rookStart, rookEnd Position
		if end.Col > start.Col {
			rookStart = Position{Row: start.Row, Col: 7}
			rookEnd = Position{Row: start.Row, Col: start.Col + 1}
		} else {
			rookStart = Position{Row: start.Row, Col: 0}
			rookEnd = Position{Row: start.Row, Col: start.Col - 1}
		}
		if g.Board.GetPiece(rookStart) != nil {
			if _, err := g.Board.MovePiece(rookStart, rookEnd); err != nil {
				return false
			}
		}
	}

	// En passant: a pawn changing file onto an empty square captures the
	// pawn beside it, not the one on the destination.
	isEnPassant := false
	var enPassantVictim *Piece
	if piece.Type == Pawn && start.Col != end.Col && g.Board.GetPiece(end) == nil {
		isEnPassant = true
		victimPos := Position{Row: start.Row, Col: end.Col}
		enPassantVictim = g.Board.GetPiece(victimPos)
		g.Board.SetPiece(victimPos, nil)
	}

	captured, err := g.Board.MovePiece(start, end)
	if err != nil {
		return false
	}
	if isEnPassant && enPassantVictim != nil {
		captured = enPassantVictim
	}
	if captured != nil {
		g.Captured.Add(captured.Type, mover.Color)
	}

	// Promotion: a pawn on the far rank becomes a queen that counts as
	// having moved.
	if piece.Type == Pawn {
		promotionRow := 0
		if piece.Color == Black {
			promotionRow = 7
		}
		if end.Row == promotionRow {
			g.Board.SetPiece(end, &Piece{Type: Queen, Color: piece.Color, HasMoved: true})
		}
	}

	g.lastMove = &LastMove{From: start, To: end, Piece: mover}
	opponent := g.CurrentTurn.Opponent()
	g.CurrentTurn = opponent

	g.CheckStatus[White] = g.IsInCheck(White)
	g.CheckStatus[Black] = g.IsInCheck(Black)

	isCheck := g.CheckStatus[opponent]
	isCheckmate := false
	if g.IsCheckmate(opponent) {
		g.GameOver = true
		winner := mover.Color
		g.Winner = &winner
		isCheckmate = true
	} else if g.IsStalemate() {
		g.GameOver = true
		g.Winner = nil
	}

	var capturedType PieceType
	if captured != nil {
		capturedType = captured.Type
	}
	g.MoveHistory.AddMove(boardBefore, MoveFacts{
		Piece:       mover,
		From:        start,
		To:          end,
		Captured:    capturedType,
		IsCheck:     isCheck,
		IsCheckmate: isCheckmate,
		IsCastling:  isCastling,
		IsEnPassant: isEnPassant,
	})
	return true
}

// PieceView is the read-only piece projection handed to callers outside
// the engine.
type PieceView struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

// PieceAt returns a view of the piece on the square, or nil.
func (g *GameState) PieceAt(position Position) *PieceView {
	piece := g.Board.GetPiece(position)
	if piece == nil {
		return nil
	}
	return &PieceView{Type: piece.Type, Color: piece.Color}
}

// Snapshot is the serializable projection of a game, shaped for clients.
type Snapshot struct {
	Board       [8][8]*PieceView `json:"board"`
	ToMove      Color            `json:"toMove"`
	MoveHistory []string         `json:"moveHistory"`
	Captured    CapturedPieces   `json:"capturedPieces"`
	CheckStatus map[Color]bool   `json:"checkStatus"`
	GameOver    bool             `json:"gameOver"`
	Winner      *Color           `json:"winner"`
	LastMove    *LastMove        `json:"lastMove"`
}

// Snapshot captures the current state by value; later moves do not affect
// a snapshot already taken.
func (g *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		ToMove:      g.CurrentTurn,
		MoveHistory: g.MoveHistory.GetFormattedHistory(),
		Captured: CapturedPieces{
			White: append([]PieceType{}, g.Captured.White...),
			Black: append([]PieceType{}, g.Captured.Black...),
		},
		CheckStatus: map[Color]bool{
			White: g.CheckStatus[White],
			Black: g.CheckStatus[Black],
		},
		GameOver: g.GameOver,
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			snap.Board[row][col] = g.PieceAt(Position{Row: row, Col: col})
		}
	}
	if g.Winner != nil {
		winner := *g.Winner
		snap.Winner = &winner
	}
	if g.lastMove != nil {
		last := *g.lastMove
		snap.LastMove = &last
	}
	return snap
}
