// Package gravity compacts board columns: empty ("air") tiles float to the
// top, everything else settles to the bottom in its original order.
//
// What:
//
//   - CompactColumn works on one ordered column of handles, index 0 lowest.
//   - Fall drives CompactColumn over every column of a core.AutoGravityBoard.
//
// How:
//
//	Scan upward. At the cursor, skip a run of air (cursor_a → cursor_b), then a
//	run of solid tiles (cursor_b → index). Rotate [cursor_a, index) left by the
//	length of the air run so the solid run slides down under the air, move the
//	cursor back by the same amount and continue until the column ends.
//
// The result equals "drop the air, pad with air on top", done in place with
// no extra storage. A second call on the same column moves nothing.
//
// Complexity: O(n²) worst case per column of height n (alternating runs),
// O(n) for the usual "one hole" column.
package gravity
