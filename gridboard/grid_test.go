package gridboard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cascade/gridboard"
)

// TestParse_Layout checks orientation: the last line is the bottom row.
//
//	rg
//	bo
func TestParse_Layout(t *testing.T) {
	g, err := gridboard.Parse("rg\nbo\n", gridboard.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, gridboard.Blue, g.Get(gridboard.Pos{X: 0, Y: 0}))
	assert.Equal(t, gridboard.Nuisance, g.Get(gridboard.Pos{X: 1, Y: 0}))
	assert.Equal(t, gridboard.Red, g.Get(gridboard.Pos{X: 0, Y: 1}))
	assert.Equal(t, gridboard.Green, g.Get(gridboard.Pos{X: 1, Y: 1}))
	assert.Equal(t, "rg\nbo", g.String())
}

// TestParse_RaggedAndPadded pads short rows and honours minimum sizes.
func TestParse_RaggedAndPadded(t *testing.T) {
	g, err := gridboard.Parse("orbg\r\nrbgyo", gridboard.GridOptions{MinWidth: 6, MinHeight: 3})
	require.NoError(t, err)
	assert.Equal(t, 6, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, "______\norbg__\nrbgyo_", g.String())

	dots, err := gridboard.Parse("r.b", gridboard.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, "r_b", dots.String())
}

// TestParse_Errors covers empty input and unknown symbols.
func TestParse_Errors(t *testing.T) {
	_, err := gridboard.Parse("", gridboard.DefaultGridOptions())
	assert.ErrorIs(t, err, gridboard.ErrEmptyGrid)

	_, err = gridboard.Parse("\n\n", gridboard.DefaultGridOptions())
	assert.ErrorIs(t, err, gridboard.ErrEmptyGrid)

	_, err = gridboard.FromRows(nil, gridboard.DefaultGridOptions())
	assert.ErrorIs(t, err, gridboard.ErrEmptyGrid)

	_, err = gridboard.Parse("rr\nrx", gridboard.DefaultGridOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, gridboard.ErrUnknownSymbol))
	assert.Contains(t, err.Error(), "row 1, column 1")

	_, err = gridboard.NewGrid(0, 3, gridboard.DefaultGridOptions())
	assert.ErrorIs(t, err, gridboard.ErrEmptyGrid)
}

// TestSetGetBounds verifies Set bounds checking and that Get reads air off-board.
func TestSetGetBounds(t *testing.T) {
	g, err := gridboard.NewGrid(2, 2, gridboard.DefaultGridOptions())
	require.NoError(t, err)
	require.True(t, g.Empty())

	require.NoError(t, g.Set(gridboard.Pos{X: 1, Y: 1}, gridboard.Purple))
	assert.Equal(t, gridboard.Purple, g.Get(gridboard.Pos{X: 1, Y: 1}))
	assert.Equal(t, 1, g.Count(gridboard.Purple))

	assert.ErrorIs(t, g.Set(gridboard.Pos{X: 2, Y: 0}, gridboard.Red), gridboard.ErrOutOfBounds)
	assert.Equal(t, gridboard.Air, g.Get(gridboard.Pos{X: -1, Y: 0}))

	g.Banish(gridboard.Pos{X: 1, Y: 1})
	g.Banish(gridboard.Pos{X: 9, Y: 9})
	assert.True(t, g.Empty())
}

// TestClone ensures clones do not share storage.
func TestClone(t *testing.T) {
	g, err := gridboard.Parse("rb", gridboard.DefaultGridOptions())
	require.NoError(t, err)
	c := g.Clone()
	c.Banish(gridboard.Pos{X: 0, Y: 0})
	assert.Equal(t, "rb", g.String())
	assert.Equal(t, "_b", c.String())
}

// TestTileSymbols round-trips every tile through its symbol.
func TestTileSymbols(t *testing.T) {
	for _, tile := range []gridboard.Tile{
		gridboard.Air, gridboard.Nuisance, gridboard.Red, gridboard.Green,
		gridboard.Blue, gridboard.Yellow, gridboard.Purple,
	} {
		got, ok := gridboard.ParseTile(tile.Symbol())
		require.True(t, ok, "symbol of %s", tile)
		assert.Equal(t, tile, got)
	}
	_, ok := gridboard.ParseTile('x')
	assert.False(t, ok)
	assert.Equal(t, "unknown", gridboard.Tile(99).String())
	assert.Equal(t, byte('?'), gridboard.Tile(99).Symbol())
}
