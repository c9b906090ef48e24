package chain

import (
	"github.com/katalvlaran/cascade/core"
	"github.com/katalvlaran/cascade/grouping"
	"github.com/katalvlaran/cascade/score"
)

// Simulate runs steps on b until one clears nothing and returns the totals.
// b is mutated in place: it ends settled, with every cleared tile banished.
func Simulate[H comparable](b Board[H], popThreshold int, s Scorers[H], opts ...Option) Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var res Result
	for chain := 0; ; chain++ {
		var rep StepReport[H]
		limited := o.MaxSteps > 0 && chain >= o.MaxSteps
		if limited {
			rep = evaluate[H](b, chain, popThreshold, s)
		} else {
			rep = Step[H](b, chain, popThreshold, s)
		}
		o.Logger.Debug().
			Int("chain", rep.Chain).
			Bool("fell", rep.Fell).
			Int("groups", rep.Groups.Len()).
			Uint64("cleared", rep.Cleared).
			Uint64("base", rep.Base).
			Uint64("multiplier", rep.Multiplier).
			Uint64("score", rep.Score).
			Msg("chain: step")

		if limited && rep.Cleared != 0 {
			o.Logger.Warn().
				Int("max_steps", o.MaxSteps).
				Uint64("score", res.Score).
				Msg("chain: step limit reached")
			break
		}
		o.OnStep(rep.Chain, rep.Cleared, rep.Score)
		if rep.Cleared == 0 {
			break
		}
		res.Score += rep.Score
		res.PiecesCleared += rep.Cleared
		if rep.Cleared > res.MaxPiecesAtOnce {
			res.MaxPiecesAtOnce = rep.Cleared
		}
		res.Chain++
	}

	return res
}

// Step runs one iteration of the loop at the given chain depth: settle,
// group, pop, expand nuisance, score, and banish the cleared tiles unless
// nothing cleared.
func Step[H comparable](b Board[H], chain, popThreshold int, s Scorers[H]) StepReport[H] {
	rep := evaluate[H](b, chain, popThreshold, s)
	if rep.Cleared == 0 {
		return rep
	}
	banish[H](b, rep.Groups)

	return rep
}

// evaluate settles b and scores what would clear, without banishing.
func evaluate[H comparable](b Board[H], chain, popThreshold int, s Scorers[H]) StepReport[H] {
	fell := b.Fall()

	groups := grouping.Partition[H](b)
	popped := grouping.DropNuisance[H](grouping.Pop(groups.View(), popThreshold), b)
	cleared := grouping.Nuisance[H](popped, b)

	pc := s.PiecesCleared
	if pc == nil {
		pc = score.PiecesCleared[H]()
	}
	scorer := score.StandardScorer[H]{
		PiecesCleared: pc,
		PointBonus:    s.PointBonus,
		ChainPower:    score.Const[H](score.Lookup(s.ChainPower, chain)),
		ColorBonus:    s.ColorBonus,
		GroupBonus:    s.GroupBonus,
	}
	base, mult := scorer.Factors(b, cleared)

	return StepReport[H]{
		Chain:      chain,
		Fell:       fell,
		Base:       base,
		Multiplier: mult,
		Score:      base * mult,
		Cleared:    pc.Score(b, cleared),
		Groups:     cleared,
	}
}

func banish[H comparable](b core.BanishBoard[H], v core.View[H]) {
	for _, g := range v.Groups() {
		for _, h := range g.Members() {
			b.Banish(h)
		}
	}
}
