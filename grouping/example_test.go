package grouping_test

import (
	"fmt"

	"github.com/katalvlaran/cascade/gridboard"
	"github.com/katalvlaran/cascade/grouping"
)

// ExamplePartition runs the three grouping stages on a single row and clears
// what they select.
//
// Scenario:
//
//   - Row "rrrrb": four reds and one blue.
//   - Pop threshold 4: only the red group qualifies.
//   - No nuisance tiles, so expansion adds nothing.
func ExamplePartition() {
	g, _ := gridboard.Parse("rrrrb", gridboard.DefaultGridOptions())

	groups := grouping.Partition[gridboard.Pos](g)
	sel := grouping.Pop(groups.View(), 4)
	cleared := grouping.Nuisance[gridboard.Pos](sel, g)

	fmt.Println("groups:", groups.Len(), "cleared tiles:", cleared.TileCount())
	for _, grp := range cleared.Groups() {
		for _, p := range grp.Members() {
			g.Banish(p)
		}
	}
	fmt.Println(g)

	// Output:
	// groups: 2 cleared tiles: 4
	// ____b
}
