// Package grouping implements the first three stages of a clear cascade:
// partitioning a board into connected same-class groups, selecting the groups
// large enough to clear, and adding the nuisance tiles those groups touch.
//
// What:
//
//   - Partition: maximal connected components of Board.Tiles() under Connects.
//   - Pop:       stable filter keeping groups with Len() ≥ threshold.
//   - DropNuisance: removes selected groups that hold nuisance tiles, which
//     only a low threshold can select.
//   - Nuisance:  appends a singleton group per nuisance tile adjacent to a
//     selected group. One level only: a nuisance tile touching only other
//     newly added nuisance tiles is left alone; the next chain step picks it up.
//
// Why the merge-on-visit partition:
//
//   - Works on any Board, no grid or index structure assumed.
//   - Each edge is examined from both endpoints, so the result does not depend
//     on the order Tiles() enumerates, as long as Connects is symmetric.
//
// Complexity:
//
//   - Partition: O(T·d·G) worst case (T tiles, d neighbours, G open groups).
//     Fine for boards of tens to a few hundred tiles.
//   - Pop:       O(G).
//   - Nuisance:  O(T·d·G).
//
// Typical pipeline:
//
//	groups := grouping.Partition[Pos](board)
//	popped := grouping.DropNuisance[Pos](grouping.Pop(groups.View(), 4), board)
//	cleared := grouping.Nuisance[Pos](popped, board)
package grouping
