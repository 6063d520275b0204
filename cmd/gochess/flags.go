// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/config"
)

var (
	// Game options
	gameMode = flag.String("mode", "hvh", "Game mode: hvh (human vs human), hva (human vs AI), ava (AI vs AI)")
	aiColour = flag.String("ai", "black", "Colour the AI plays in hva mode: white or black")
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard setup")
	maxPlies = flag.Int("maxplies", 400, "Stop AI vs AI games after N plies (0 = no limit)")
	noBoard  = flag.Bool("noboard", false, "Don't print the board before each move")

	// Search options
	searchDepth   = flag.Int("depth", 3, "Search depth in plies")
	searchWorkers = flag.Int("workers", 1, "Search root moves on N goroutines")
	searchSeed    = flag.Int64("seed", 1, "Seed for the random fallback move")
	materialOnly  = flag.Bool("material", false, "Evaluate material only (no piece-square tables)")

	// Output options
	logFile  = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	verbose  = flag.Int("v", 1, "Verbosity: 0 quiet, 1 normal, 2 engine and search diagnostics")
	pgnFile  = flag.String("pgn", "", "Write the game as PGN to this file on exit")
	jsonFile = flag.String("json", "", "Write the game as a JSON snapshot to this file on exit")
	dotFile  = flag.String("dot", "", "Write the last search as a Graphviz graph to this file on exit")
	event    = flag.String("event", "Casual game", "PGN Event tag")
	whiteTag = flag.String("white", "White", "PGN White tag")
	blackTag = flag.String("black", "Black", "PGN Black tag")

	// Tools
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to depth N from the start position and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")

	// Help
	help = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applySearchFlags(cfg)
	applyOutputFlags(cfg)
	cfg.Verbosity = *verbose
	return nil
}

// applyGameFlags configures the game mode and start position.
func applyGameFlags(cfg *config.Config) error {
	mode, ok := config.ParseMode(*gameMode)
	if !ok {
		return fmt.Errorf("unknown mode %q (want hvh, hva or ava)", *gameMode)
	}
	colour, err := chess.ParseColour(*aiColour)
	if err != nil {
		return err
	}
	cfg.Game.Mode = mode
	cfg.Game.AIColour = colour
	cfg.Game.StartFEN = *startFEN
	cfg.Game.MaxPlies = *maxPlies
	return nil
}

// applySearchFlags configures the move search.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *searchDepth
	cfg.Search.Workers = *searchWorkers
	cfg.Search.Seed = *searchSeed
	if *materialOnly {
		cfg.Search.Evaluator = config.MaterialEval
	} else {
		cfg.Search.Evaluator = config.PositionalEval
	}
}

// applyOutputFlags configures display and export settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.PGNFile = *pgnFile
	cfg.Output.JSONFile = *jsonFile
	cfg.Output.DOTFile = *dotFile
	cfg.Output.Event = *event
	cfg.Output.White = *whiteTag
	cfg.Output.Black = *blackTag
}
