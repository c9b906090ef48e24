package grouping

import "github.com/katalvlaran/cascade/core"

// Nuisance returns popped followed by a fresh singleton group for every
// nuisance tile of b that has at least one neighbour inside popped.
//
// Only the original selection is tested: singletons added by this call do
// not pull in further nuisance tiles. Tiles already in popped are not added
// twice. Singletons appear in b.Tiles() order.
//
// Complexity: O(T·d·G).
func Nuisance[H comparable](popped core.View[H], b core.NuisanceBoard[H]) core.View[H] {
	var extra []*core.Group[H]
	for _, p := range b.Tiles() {
		if !b.Nuisance(p) || popped.Contains(p) {
			continue
		}
		for _, nb := range b.Neighbors(p) {
			if popped.Contains(nb) {
				extra = append(extra, core.NewGroup(p))
				break
			}
		}
	}

	return popped.Append(extra...)
}

// DropNuisance returns the groups of v holding no nuisance tile, in order.
// Nuisance tiles are cleared only through Nuisance, so at a threshold of 1
// their singleton groups must not be selected directly.
// Complexity: O(tiles in v).
func DropNuisance[H comparable](v core.View[H], b core.NuisanceBoard[H]) core.View[H] {
	kept := make([]*core.Group[H], 0, v.Len())
	for _, g := range v.Groups() {
		if !anyNuisance(g, b) {
			kept = append(kept, g)
		}
	}

	return core.NewView(kept...)
}

func anyNuisance[H comparable](g *core.Group[H], b core.NuisanceBoard[H]) bool {
	for _, h := range g.Members() {
		if b.Nuisance(h) {
			return true
		}
	}

	return false
}
