// Package core defines the capability interfaces a puzzle board exposes to the
// cascade engine, and the Group, Groups and View types the engine passes
// between its stages.
//
// The engine never looks inside a board. It only asks for:
//
//   - Tiles()            – every position worth considering, in a stable order
//   - Neighbors(h)       – adjacency of a position
//   - Connects(a, b)     – symmetric "same clearable class" predicate
//
// Optional capabilities extend Board for the later pipeline stages:
//
//	NuisanceBoard      – Nuisance(h): cleared only by touching a cleared group
//	ColorBoard         – Color(h): optional colour used by colour-bonus scoring
//	GroupBoard         – ConsiderForGroupBonus(g): opt-in filter for group-size bonus
//	AutoGravityBoard   – IsAir(h) + RearrangeColumns(fn): handle-level gravity
//	GravityBoard       – Fall(): compacts the board, reports whether anything moved
//	BanishBoard        – Banish(h): turns a tile into air
//
// Data types:
//
//	Group[H]   – insertion-ordered set of handles (one connected component)
//	Groups[H]  – ordered, caller-owned list of groups produced by one grouping pass
//	View[H]    – read-only list of group pointers, borrowed from a Groups or owned
//
// Handles are opaque: any comparable Go type works (a coordinate struct, an
// index, a string). Nothing in this package can fail, so it declares no errors.
//
// Preconditions owned by the board, never checked at runtime:
//
//   - Connects is symmetric.
//   - Tiles and Neighbors enumerate in a stable order between mutations.
//   - Banish strictly shrinks the set of non-air tiles, and Tiles never
//     lists air, so a banished tile is not counted twice.
package core
