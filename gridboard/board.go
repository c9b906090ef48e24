package gridboard

import (
	"github.com/katalvlaran/cascade/core"
	"github.com/katalvlaran/cascade/gravity"
)

// Tiles returns every non-air position, column by column, each bottom to
// top. Air is left out so a banished tile can never be grouped again.
// Complexity: O(W×H).
func (g *Grid) Tiles() []Pos {
	out := make([]Pos, 0, g.Width*g.Height)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if g.cells[x][y] != Air {
				out = append(out, Pos{X: x, Y: y})
			}
		}
	}

	return out
}

// Neighbors returns the on-board positions adjacent to p, in offset order.
// Complexity: O(d).
func (g *Grid) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		q := Pos{X: p.X + d[0], Y: p.Y + d[1]}
		if g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Connects reports whether a and b hold the same colour.
// Air and nuisance tiles connect to nothing.
func (g *Grid) Connects(a, b Pos) bool {
	ta, tb := g.Get(a), g.Get(b)
	if !ta.IsColor() || !tb.IsColor() {
		return false
	}

	return ta == tb
}

// Nuisance reports whether p holds a nuisance tile.
func (g *Grid) Nuisance(p Pos) bool {
	return g.Get(p) == Nuisance
}

// Color returns the colour at p; air and nuisance tiles have none.
func (g *Grid) Color(p Pos) (Tile, bool) {
	t := g.Get(p)
	if !t.IsColor() {
		return Air, false
	}

	return t, true
}

// ConsiderForGroupBonus counts a group when its first tile is coloured.
func (g *Grid) ConsiderForGroupBonus(grp *core.Group[Pos]) bool {
	return core.GroupFromColor[Pos, Tile](g, grp)
}

// IsAir reports whether p is empty.
func (g *Grid) IsAir(p Pos) bool {
	return g.Get(p) == Air
}

// RearrangeColumns hands fn the handles of each column, bottom first, and
// then stores the tiles in the order fn left them.
// Complexity: O(W×H) plus the cost of fn.
func (g *Grid) RearrangeColumns(fn func(col []Pos)) {
	col := make([]Pos, g.Height)
	next := make([]Tile, g.Height)
	for x := 0; x < g.Width; x++ {
		for y := range col {
			col[y] = Pos{X: x, Y: y}
		}
		fn(col)
		for y, p := range col {
			next[y] = g.Get(p)
		}
		copy(g.cells[x], next)
	}
}

// Banish turns p into air. Positions off the board are ignored.
func (g *Grid) Banish(p Pos) {
	if g.InBounds(p) {
		g.cells[p.X][p.Y] = Air
	}
}

// Fall lets every column settle and reports whether any tile moved.
func (g *Grid) Fall() bool {
	return gravity.Fall[Pos](g)
}

var (
	_ core.NuisanceBoard[Pos]    = (*Grid)(nil)
	_ core.ColorBoard[Pos, Tile] = (*Grid)(nil)
	_ core.GroupBoard[Pos]       = (*Grid)(nil)
	_ core.AutoGravityBoard[Pos] = (*Grid)(nil)
	_ core.BanishBoard[Pos]      = (*Grid)(nil)
	_ core.GravityBoard          = (*Grid)(nil)
)
