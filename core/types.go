package core

// Board is the minimal capability set the grouping engine needs.
//
// H identifies one tile position. Tiles may omit empty positions; both
// Tiles and Neighbors must return the same order between mutations.
// Connects must be symmetric; it is never called with a == b.
type Board[H comparable] interface {
	// Tiles enumerates the positions to consider.
	Tiles() []H

	// Neighbors enumerates the positions adjacent to h.
	Neighbors(h H) []H

	// Connects reports whether a and b belong to the same clearable class.
	Connects(a, b H) bool
}

// NuisanceBoard marks tiles that are cleared only when a neighbouring group
// is cleared, never by direct grouping.
type NuisanceBoard[H comparable] interface {
	Board[H]

	// Nuisance reports whether h is a nuisance tile.
	Nuisance(h H) bool
}

// ColorBoard exposes an optional colour per tile for colour-bonus scoring.
type ColorBoard[H, C comparable] interface {
	Board[H]

	// Color returns the colour at h; ok is false for colourless tiles.
	Color(h H) (c C, ok bool)
}

// GroupBoard decides which cleared groups earn a group-size bonus.
type GroupBoard[H comparable] interface {
	Board[H]

	// ConsiderForGroupBonus reports whether g takes part in the bonus.
	ConsiderForGroupBonus(g *Group[H]) bool
}

// AutoGravityBoard lets the gravity engine compact a board it knows nothing
// about. RearrangeColumns hands fn one column of handles at a time, index 0
// being the lowest position; fn permutes the slice in place and the board
// then maps the new handle order back onto its own storage. fn may be
// called any number of times.
type AutoGravityBoard[H comparable] interface {
	Board[H]

	// IsAir reports whether h is empty.
	IsAir(h H) bool

	// RearrangeColumns applies fn to every column.
	RearrangeColumns(fn func(col []H))
}

// GravityBoard compacts itself and reports whether any tile moved.
type GravityBoard interface {
	Fall() bool
}

// BanishBoard removes a tile's content, turning the position into air.
// A banished tile must never be counted again.
type BanishBoard[H comparable] interface {
	Banish(h H)
}

// GroupFromColor answers ConsiderForGroupBonus for colour boards: a group is
// considered when its first tile has a colour. Boards implement GroupBoard
// by delegating to it.
func GroupFromColor[H, C comparable](b ColorBoard[H, C], g *Group[H]) bool {
	h, ok := g.First()
	if !ok {
		return false
	}
	_, ok = b.Color(h)

	return ok
}
