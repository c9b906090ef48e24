// Package cascade is a small engine for "clear cascade" puzzle boards:
// tiles of the same colour that touch form groups, groups large enough pop,
// neighbouring nuisance tiles go with them, the rest falls, and the whole
// thing repeats as a chain until nothing more clears.
//
// What is in the box?
//
//	core/      – Board capability interfaces, Group, Groups and View
//	grouping/  – Partition into connected groups, Pop by size, Nuisance
//	gravity/   – in-place column compaction behind the AutoGravityBoard contract
//	score/     – scorer building blocks, the standard formula, Tsu tables
//	chain/     – Step and Simulate: the fall → group → pop → score → banish loop
//	gridboard/ – a rectangular colour board with a one-character text notation
//	cmd/chainsim – command-line runner for boards stored on disk
//
// The engine packages are generic over the tile handle type H and only talk
// to a board through the interfaces in core, so any board that can list its
// tiles and their neighbours can be partitioned, scored and chained.
//
// Quick start:
//
//	g, _ := gridboard.Parse("rrrrb", gridboard.DefaultGridOptions())
//	res := chain.Simulate[gridboard.Pos](g, 4, chain.Scorers[gridboard.Pos]{
//		ChainPower: []uint64{1},
//	})
//	// res.Score == 40, g.String() == "____b"
package cascade
