// Package gridboard is a rectangular tile board that satisfies every
// capability the cascade engine asks for, plus a small text notation to build
// and print boards.
//
// What:
//
//   - Grid stores Width×Height tiles column by column, y = 0 at the bottom.
//   - Pos{X, Y} is the handle type; Tiles() walks columns left to right,
//     each bottom to top, skipping air.
//   - Conn4 (default) or Conn8 adjacency.
//   - Air and nuisance tiles never connect; colour tiles connect to the
//     same colour.
//
// Notation (one line per row, top row first, as the board is seen):
//
//	_ or .   air          o   nuisance
//	r g b y p            red, green, blue, yellow, purple
//
//	g, _ := gridboard.Parse("rbg\nrbgyo\nrbgyy", gridboard.DefaultGridOptions())
//
// Short rows are padded with air on the right. String() prints the same
// notation back.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrUnknownSymbol: a character outside the notation.
//   - ErrOutOfBounds: Set outside the board.
package gridboard
