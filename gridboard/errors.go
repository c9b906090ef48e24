package gridboard

import "errors"

var (
	// ErrEmptyGrid indicates the board would have no rows or no columns.
	ErrEmptyGrid = errors.New("gridboard: board must have at least one row and one column")
	// ErrUnknownSymbol indicates a character outside the board notation.
	ErrUnknownSymbol = errors.New("gridboard: unknown tile symbol")
	// ErrOutOfBounds indicates a position outside the board.
	ErrOutOfBounds = errors.New("gridboard: position out of bounds")
)
