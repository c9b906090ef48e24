package chain

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/cascade/core"
	"github.com/katalvlaran/cascade/score"
)

// Board is everything the loop needs: grouping with nuisance tiles,
// tile removal, and gravity.
type Board[H comparable] interface {
	core.NuisanceBoard[H]
	core.BanishBoard[H]
	core.GravityBoard
}

// Scorers configures the standard formula for every step.
//
// PiecesCleared also provides the per-step cleared count; when nil it
// defaults to score.PiecesCleared. Other nil scorers count as zero.
// ChainPower is indexed by chain depth (0 for the first step) and clamps to
// its last entry.
type Scorers[H comparable] struct {
	PiecesCleared score.Scorer[H]
	PointBonus    score.Scorer[H]
	ColorBonus    score.Scorer[H]
	GroupBonus    score.Scorer[H]
	ChainPower    []uint64
}

// Result aggregates a whole simulation.
type Result struct {
	// Score is the sum of every step's score.
	Score uint64
	// Chain is the number of steps that cleared something.
	Chain uint64
	// PiecesCleared is the total number of tiles cleared.
	PiecesCleared uint64
	// MaxPiecesAtOnce is the largest clear of a single step.
	MaxPiecesAtOnce uint64
}

// StepReport describes one scored step.
type StepReport[H comparable] struct {
	Chain      int          // chain depth the step was scored at
	Fell       bool         // whether gravity moved anything first
	Base       uint64       // 10·pieces + point bonus
	Multiplier uint64       // chain power + colour bonus + group bonus
	Score      uint64       // Base * Multiplier
	Cleared    uint64       // tiles cleared; 0 ends the simulation
	Groups     core.View[H] // cleared groups, nuisance singletons included
}

// Option configures Simulate.
type Option func(*Options)

// Options holds the tunables of Simulate.
type Options struct {
	// Logger receives one debug event per step and a warning on MaxSteps.
	Logger zerolog.Logger

	// OnStep is called after each scored step, including the final empty one.
	OnStep func(step int, cleared uint64, stepScore uint64)

	// MaxSteps, if > 0, stops the loop after that many clearing steps. The
	// next step is then only evaluated: if it would clear nothing the run
	// ends as usual, otherwise the board keeps those tiles and a warning
	// is logged.
	MaxSteps int
}

// DefaultOptions returns Options with a disabled logger, a no-op hook and
// no step limit.
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		OnStep:   func(int, uint64, uint64) {},
		MaxSteps: 0,
	}
}

// WithLogger routes step logging to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnStep registers fn to run after every scored step.
func WithOnStep(fn func(step int, cleared uint64, stepScore uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps caps the number of clearing steps. n ≤ 0 means no limit.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxSteps = n
	}
}
