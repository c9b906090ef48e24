package gravity

import "github.com/katalvlaran/cascade/core"

// CompactColumn moves every air handle of col to the high-index end, keeping
// the relative order of the solid ones, and reports whether anything moved.
// An empty column is left alone.
func CompactColumn[H any](col []H, isAir func(H) bool) bool {
	moved := false
	n := len(col)
	index := 0
	for index < n {
		cursorA := index
		for isAir(col[index]) {
			index++
			if index == n {
				return moved // only air above cursorA
			}
		}
		cursorB := index
		for index < n && !isAir(col[index]) {
			index++
		}
		shift := cursorB - cursorA
		if shift == 0 {
			continue
		}
		moved = true
		rotateLeft(col[cursorA:index], shift)
		index -= shift
	}

	return moved
}

// Fall compacts every column of b and reports whether any column changed.
func Fall[H comparable](b core.AutoGravityBoard[H]) bool {
	moved := false
	b.RearrangeColumns(func(col []H) {
		if CompactColumn(col, b.IsAir) {
			moved = true
		}
	})

	return moved
}

// rotateLeft rotates s left by k positions using three reversals.
func rotateLeft[H any](s []H, k int) {
	if len(s) == 0 {
		return
	}
	k %= len(s)
	if k == 0 {
		return
	}
	reverse(s[:k])
	reverse(s[k:])
	reverse(s)
}

func reverse[H any](s []H) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
