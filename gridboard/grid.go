package gridboard

import (
	"fmt"
	"strings"
)

// NewGrid returns an all-air board of the given size.
// Returns ErrEmptyGrid if width or height is not positive.
// Complexity: O(W×H).
func NewGrid(width, height int, opts GridOptions) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Tile, width)
	for x := range cells {
		cells[x] = make([]Tile, height)
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:           width,
		Height:          height,
		Conn:            opts.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// Parse builds a board from the text notation, one row per line, top row
// first. Empty lines at either end are ignored.
func Parse(text string, opts GridOptions) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}

	return FromRows(strings.Split(text, "\n"), opts)
}

// FromRows builds a board from rows listed top row first. Short rows are
// padded with air; opts.MinWidth and opts.MinHeight pad further, adding air
// rows on top.
// Returns ErrEmptyGrid for no rows or only empty rows, ErrUnknownSymbol
// (wrapped with the offending row and column) for bad characters.
func FromRows(rows []string, opts GridOptions) (*Grid, error) {
	w := opts.MinWidth
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	h := len(rows)
	if opts.MinHeight > h {
		h = opts.MinHeight
	}
	if len(rows) == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}
	g, err := NewGrid(w, h, opts)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		y := len(rows) - 1 - i
		for x := 0; x < len(row); x++ {
			t, ok := ParseTile(row[x])
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrUnknownSymbol, row[x], i, x)
			}
			g.cells[x][y] = t
		}
	}

	return g, nil
}

// InBounds reports whether p lies on the board.
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Get returns the tile at p; positions off the board read as Air.
func (g *Grid) Get(p Pos) Tile {
	if !g.InBounds(p) {
		return Air
	}

	return g.cells[p.X][p.Y]
}

// Set stores t at p.
// Returns ErrOutOfBounds if p is off the board.
func (g *Grid) Set(p Pos, t Tile) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	g.cells[p.X][p.Y] = t

	return nil
}

// Count returns how many positions hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, col := range g.cells {
		for _, c := range col {
			if c == t {
				n++
			}
		}
	}

	return n
}

// Empty reports whether every position is air.
func (g *Grid) Empty() bool {
	return g.Count(Air) == g.Width*g.Height
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]Tile, g.Width)
	for x := range cells {
		cells[x] = make([]Tile, g.Height)
		copy(cells[x], g.cells[x])
	}
	offsets := make([][2]int, len(g.neighborOffsets))
	copy(offsets, g.neighborOffsets)

	return &Grid{
		Width:           g.Width,
		Height:          g.Height,
		Conn:            g.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}
}

// Rows renders the board as notation rows, top row first.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	buf := make([]byte, g.Width)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			buf[x] = g.cells[x][y].Symbol()
		}
		rows[g.Height-1-y] = string(buf)
	}

	return rows
}

// String implements fmt.Stringer using the board notation.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
