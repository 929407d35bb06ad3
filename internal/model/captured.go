package model

// Standard piece values for the material count. Kings are never captured
// and carry no value.
var pieceValues = map[PieceType]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   0,
}

// CapturedPieces tracks what each side has taken, keyed by the capturing
// color: White holds the black pieces white captured and vice versa.
type CapturedPieces struct {
	White []PieceType `json:"white"`
	Black []PieceType `json:"black"`
}

// NewCapturedPieces returns empty capture lists.
func NewCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: []PieceType{},
		Black: []PieceType{},
	}
}

// Add records a capture made by the given color.
func (c *CapturedPieces) Add(pieceType PieceType, capturedBy Color) {
	if capturedBy == White {
		c.White = append(c.White, pieceType)
	} else {
		c.Black = append(c.Black, pieceType)
	}
}

// By returns the pieces captured by the given color.
func (c *CapturedPieces) By(color Color) []PieceType {
	if color == White {
		return c.White
	}
	return c.Black
}

// MaterialAdvantage returns captured material as white minus black;
// positive means white is ahead.
func (c *CapturedPieces) MaterialAdvantage() int {
	advantage := 0
	for _, t := range c.White {
		advantage += pieceValues[t]
	}
	for _, t := range c.Black {
		advantage -= pieceValues[t]
	}
	return advantage
}

// CountByType groups the pieces captured by color into per-type counts.
func (c *CapturedPieces) CountByType(color Color) map[PieceType]int {
	counts := make(map[PieceType]int)
	for _, t := range c.By(color) {
		counts[t]++
	}
	return counts
}
