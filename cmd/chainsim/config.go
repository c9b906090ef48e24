package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cascade/score"
)

var (
	// ErrNoBoard indicates no board file was given.
	ErrNoBoard = errors.New("chainsim: board file is required")
	// ErrBadPop indicates a pop threshold below 1.
	ErrBadPop = errors.New("chainsim: pop threshold must be at least 1")
)

// config is the resolved run configuration: flags override environment,
// environment overrides defaults.
type config struct {
	BoardPath  string
	TablesPath string
	Pop        int
	Conn8      bool
	LogLevel   string
	MaxSteps   int
}

// parseConfig resolves flags against CASCADE_* environment defaults.
func parseConfig(args []string, getenv func(string) string) (config, error) {
	cfg := config{
		TablesPath: getenv("CASCADE_TABLES"),
		Pop:        4,
		LogLevel:   "info",
	}
	if v := getenv("CASCADE_POP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: CASCADE_POP=%q", ErrBadPop, v)
		}
		cfg.Pop = n
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	fs := flag.NewFlagSet("chainsim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.BoardPath, "board", cfg.BoardPath, "board file in gridboard notation")
	fs.StringVar(&cfg.TablesPath, "tables", cfg.TablesPath, "YAML file with chain_power, color_bonus, group_bonus")
	fs.IntVar(&cfg.Pop, "pop", cfg.Pop, "minimum group size to clear")
	fs.BoolVar(&cfg.Conn8, "conn8", false, "use 8-directional adjacency")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
	fs.IntVar(&cfg.MaxSteps, "max-steps", 0, "stop after this many chain steps (0 = no limit)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.BoardPath == "" && fs.NArg() > 0 {
		cfg.BoardPath = fs.Arg(0)
	}
	if cfg.BoardPath == "" {
		return cfg, ErrNoBoard
	}
	if cfg.Pop < 1 {
		return cfg, fmt.Errorf("%w: got %d", ErrBadPop, cfg.Pop)
	}

	return cfg, nil
}

// loadTables reads score tables from a YAML file. An empty path yields the
// Tsu tables; tables missing from the file keep their Tsu values.
func loadTables(path string) (score.Tables, error) {
	t := score.TsuTables()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("chainsim: read tables: %w", err)
	}

	return decodeTables(raw, t)
}

// decodeTables overlays the YAML document raw onto base.
func decodeTables(raw []byte, base score.Tables) (score.Tables, error) {
	var doc score.Tables
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return base, fmt.Errorf("chainsim: decode tables: %w", err)
	}
	if doc.ChainPower != nil {
		base.ChainPower = doc.ChainPower
	}
	if doc.ColorBonus != nil {
		base.ColorBonus = doc.ColorBonus
	}
	if doc.GroupBonus != nil {
		base.GroupBonus = doc.GroupBonus
	}

	return base, nil
}
