package score

import "github.com/katalvlaran/cascade/core"

// Scorer computes a score for the groups cleared from b.
type Scorer[H comparable] interface {
	Score(b core.Board[H], popped core.View[H]) uint64
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc[H comparable] func(b core.Board[H], popped core.View[H]) uint64

// Score calls f.
func (f ScorerFunc[H]) Score(b core.Board[H], popped core.View[H]) uint64 {
	return f(b, popped)
}

// Zero returns a scorer that always yields 0.
func Zero[H comparable]() Scorer[H] {
	return Const[H](0)
}

// Const returns a scorer that always yields v.
func Const[H comparable](v uint64) Scorer[H] {
	return constScorer[H](v)
}

type constScorer[H comparable] uint64

func (c constScorer[H]) Score(core.Board[H], core.View[H]) uint64 { return uint64(c) }

// PiecesCleared returns a scorer yielding the total number of cleared tiles.
func PiecesCleared[H comparable]() Scorer[H] {
	return ScorerFunc[H](func(_ core.Board[H], popped core.View[H]) uint64 {
		return uint64(popped.TileCount())
	})
}

// Lookup reads table[i], clamping i into range. Past the end it returns the
// last entry, a negative index returns the first, an empty table returns 0.
func Lookup(table []uint64, i int) uint64 {
	switch {
	case len(table) == 0:
		return 0
	case i < 0:
		return table[0]
	case i >= len(table):
		return table[len(table)-1]
	default:
		return table[i]
	}
}

// ColorBonusTable scores by how many distinct colours appear among the first
// tiles of the cleared groups. Only the first tile of each group is looked
// at. Boards that are not a core.ColorBoard[H, C] report no colours.
type ColorBonusTable[H, C comparable] struct {
	Table []uint64
}

// Score implements Scorer.
func (t ColorBonusTable[H, C]) Score(b core.Board[H], popped core.View[H]) uint64 {
	cb, ok := b.(core.ColorBoard[H, C])
	if !ok {
		return Lookup(t.Table, 0)
	}
	colors := make(map[C]struct{})
	for _, g := range popped.Groups() {
		h, ok := g.First()
		if !ok {
			continue
		}
		if c, ok := cb.Color(h); ok {
			colors[c] = struct{}{}
		}
	}

	return Lookup(t.Table, len(colors))
}

// GroupBonusTable sums Table[len(g)] over the cleared groups the board
// considers. Boards that are not a core.GroupBoard[H] have every group
// considered.
type GroupBonusTable[H comparable] struct {
	Table []uint64
}

// Score implements Scorer.
func (t GroupBonusTable[H]) Score(b core.Board[H], popped core.View[H]) uint64 {
	gb, filtered := b.(core.GroupBoard[H])
	var total uint64
	for _, g := range popped.Groups() {
		if filtered && !gb.ConsiderForGroupBonus(g) {
			continue
		}
		total += Lookup(t.Table, g.Len())
	}

	return total
}

// Standard evaluates the five-part formula and returns its two factors;
// the final score is base * multiplier. Nil scorers count as zero.
//
//	base       = 10*piecesCleared + pointBonus
//	multiplier = chainPower + colorBonus + groupBonus
func Standard[H comparable](
	b core.Board[H],
	popped core.View[H],
	piecesCleared, pointBonus, chainPower, colorBonus, groupBonus Scorer[H],
) (base, multiplier uint64) {
	base = 10*eval(piecesCleared, b, popped) + eval(pointBonus, b, popped)
	multiplier = eval(chainPower, b, popped) +
		eval(colorBonus, b, popped) +
		eval(groupBonus, b, popped)

	return base, multiplier
}

// StandardScorer bundles the five scorers of the standard formula into one
// Scorer yielding base * multiplier.
type StandardScorer[H comparable] struct {
	PiecesCleared Scorer[H]
	PointBonus    Scorer[H]
	ChainPower    Scorer[H]
	ColorBonus    Scorer[H]
	GroupBonus    Scorer[H]
}

// Score implements Scorer.
func (s StandardScorer[H]) Score(b core.Board[H], popped core.View[H]) uint64 {
	base, mult := s.Factors(b, popped)
	return base * mult
}

// Factors returns base and multiplier separately, e.g. for an "A×B" display.
func (s StandardScorer[H]) Factors(b core.Board[H], popped core.View[H]) (base, multiplier uint64) {
	return Standard(b, popped, s.PiecesCleared, s.PointBonus, s.ChainPower, s.ColorBonus, s.GroupBonus)
}

func eval[H comparable](s Scorer[H], b core.Board[H], popped core.View[H]) uint64 {
	if s == nil {
		return 0
	}

	return s.Score(b, popped)
}
