package gridboard

// Connectivity decides which tiles count as touching when groups form.
type Connectivity int

const (
	// Conn4 lets a tile touch the ones directly below, beside and above it.
	Conn4 Connectivity = iota
	// Conn8 also lets tiles touch across corners.
	Conn8
)

// Tile is the content of one board position.
type Tile uint8

const (
	// Air is an empty position.
	Air Tile = iota
	// Nuisance is cleared only next to a cleared group.
	Nuisance
	Red
	Green
	Blue
	Yellow
	Purple
)

var tileSymbols = [...]byte{
	Air:      '_',
	Nuisance: 'o',
	Red:      'r',
	Green:    'g',
	Blue:     'b',
	Yellow:   'y',
	Purple:   'p',
}

// Symbol returns the notation character of t.
func (t Tile) Symbol() byte {
	if int(t) < len(tileSymbols) {
		return tileSymbols[t]
	}

	return '?'
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	switch t {
	case Air:
		return "air"
	case Nuisance:
		return "nuisance"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Purple:
		return "purple"
	default:
		return "unknown"
	}
}

// IsColor reports whether t is one of the clearable colours.
func (t Tile) IsColor() bool { return t >= Red && t <= Purple }

// ParseTile maps a notation character to its tile.
func ParseTile(c byte) (Tile, bool) {
	switch c {
	case '_', '.', ' ':
		return Air, true
	}
	for t, s := range tileSymbols {
		if s == c {
			return Tile(t), true
		}
	}

	return Air, false
}

// Pos is a board position. Y = 0 is the bottom row.
type Pos struct {
	X, Y int
}

// GridOptions contains tunable parameters for a Grid.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// MinWidth and MinHeight pad parsed boards with air up to this size.
	MinWidth, MinHeight int
}

// DefaultGridOptions returns GridOptions with Conn4 and no padding.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Grid is a Width×Height board of tiles.
// cells[x][y] holds the tile at (x, y); neighborOffsets is precomputed
// from Conn.
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	cells           [][]Tile
	neighborOffsets [][2]int
}
