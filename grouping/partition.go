package grouping

import "github.com/katalvlaran/cascade/core"

// Partition splits b.Tiles() into maximal connected components.
//
// Behavior:
//  1. Visit tiles in enumeration order; each starts a singleton group.
//  2. For every neighbour that Connects to the tile, extract the open group
//     holding that neighbour (if any) and merge it in. A neighbour not yet
//     visited has no group; it will merge this one when its turn comes.
//  3. Push the grown group back onto the collection.
//
// Every tile ends up in exactly one group. An empty board yields an empty
// collection.
//
// Time:   O(T·d·G), see package doc.
// Memory: O(T).
func Partition[H comparable](b core.Board[H]) *core.Groups[H] {
	groups := &core.Groups[H]{}
	for _, tile := range b.Tiles() {
		me := core.NewGroup(tile)
		for _, nb := range b.Neighbors(tile) {
			if nb == tile || me.Contains(nb) {
				continue // already merged through another path
			}
			if !b.Connects(tile, nb) {
				continue
			}
			me.Merge(groups.Extract(nb))
		}
		groups.Push(me)
	}

	return groups
}

// Pop keeps the groups of v with at least threshold members, in order.
// v is not modified.
// Complexity: O(G).
func Pop[H comparable](v core.View[H], threshold int) core.View[H] {
	kept := make([]*core.Group[H], 0, v.Len())
	for _, g := range v.Groups() {
		if g.Len() >= threshold {
			kept = append(kept, g)
		}
	}

	return core.NewView(kept...)
}
