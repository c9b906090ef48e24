package gridboard_test

import (
	"testing"

	"github.com/katalvlaran/cascade/gridboard"
)

// BenchmarkFall_6x12 measures settling a board whose bottom half is air.
func BenchmarkFall_6x12(b *testing.B) {
	g, err := gridboard.Parse("rgbyp_\nrgbyp_\nrgbyp_\nrgbyp_\nrgbyp_\nrgbyp_\n______\n______\n______\n______\n______\n______", gridboard.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := g.Clone()
		_ = c.Fall()
	}
}

// BenchmarkNeighbors_Conn8 measures neighbour lookup on an interior tile.
func BenchmarkNeighbors_Conn8(b *testing.B) {
	g, err := gridboard.NewGrid(6, 12, gridboard.GridOptions{Conn: gridboard.Conn8})
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	p := gridboard.Pos{X: 3, Y: 6}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(p)
	}
}
