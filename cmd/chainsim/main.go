// Command chainsim loads a board in gridboard notation, runs the cascade
// until it settles, and prints the final board and the chain totals.
//
//	chainsim -board board.txt [-pop 4] [-tables tables.yaml] [-conn8]
//
// CASCADE_POP, CASCADE_TABLES and LOG_LEVEL (also read from .env) supply
// defaults for the flags.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/cascade/chain"
	"github.com/katalvlaran/cascade/gridboard"
	"github.com/katalvlaran/cascade/score"
)

func main() {
	_ = godotenv.Load()

	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("chainsim failed")
	}
}

// run executes one simulation described by cfg and writes the report to w.
func run(cfg config, w io.Writer) error {
	raw, err := os.ReadFile(cfg.BoardPath)
	if err != nil {
		return fmt.Errorf("chainsim: read board: %w", err)
	}
	opts := gridboard.DefaultGridOptions()
	if cfg.Conn8 {
		opts.Conn = gridboard.Conn8
	}
	g, err := gridboard.Parse(string(raw), opts)
	if err != nil {
		return err
	}
	tables, err := loadTables(cfg.TablesPath)
	if err != nil {
		return err
	}
	log.Info().
		Str("board", cfg.BoardPath).
		Int("width", g.Width).
		Int("height", g.Height).
		Int("pop", cfg.Pop).
		Msg("starting simulation")

	res := simulate(g, cfg.Pop, tables, cfg.MaxSteps, log.Logger)

	fmt.Fprintln(w, g.String())
	fmt.Fprintf(w, "score=%d chain=%d cleared=%d max_at_once=%d\n",
		res.Score, res.Chain, res.PiecesCleared, res.MaxPiecesAtOnce)

	return nil
}

// simulate runs the standard scoring on g with the given tables.
func simulate(g *gridboard.Grid, pop int, t score.Tables, maxSteps int, logger zerolog.Logger) chain.Result {
	scorers := chain.Scorers[gridboard.Pos]{
		PiecesCleared: score.PiecesCleared[gridboard.Pos](),
		PointBonus:    score.Zero[gridboard.Pos](),
		ColorBonus:    score.ColorBonusTable[gridboard.Pos, gridboard.Tile]{Table: t.ColorBonus},
		GroupBonus:    score.GroupBonusTable[gridboard.Pos]{Table: t.GroupBonus},
		ChainPower:    t.ChainPower,
	}

	return chain.Simulate[gridboard.Pos](g, pop, scorers,
		chain.WithLogger(logger),
		chain.WithMaxSteps(maxSteps),
	)
}
