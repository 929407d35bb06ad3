package model

import "errors"

// Structural failures are errors; legality questions are booleans.
// An illegal move is expected user input, not an error condition.
var (
	// ErrInvalidPosition means coordinates outside the 8x8 board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrEmptySquare means a mutation was requested on an empty square.
	ErrEmptySquare = errors.New("no piece on square")
)
