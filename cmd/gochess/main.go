// gochess plays chess on the terminal between humans, against the
// built-in alpha-beta engine, or engine against engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/output"
	"github.com/lgbarn/gochess/internal/search"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	engine.SetLogger(cfg.Logger())

	board, err := startBoard(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *perftDepth > 0 {
		runPerft(cfg.OutputFile, board, *perftDepth, *divide)
		return
	}

	session := NewSession(cfg, board, os.Stdin, cfg.OutputFile)
	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if err := exportGame(cfg, session.Board(), session.LastReport()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\nOptions:\n", os.Args[0])
	flag.PrintDefaults()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// startBoard sets up the configured start position.
func startBoard(cfg *config.Config) (*chess.Board, error) {
	if cfg.Game.StartFEN == "" {
		return engine.NewInitialBoard(), nil
	}
	return engine.NewBoardFromFEN(cfg.Game.StartFEN)
}

// newSearcher builds the engine player from the search configuration.
func newSearcher(cfg *config.Config) *search.Searcher {
	var eval search.Evaluator = search.PositionalEvaluator{}
	if cfg.Search.Evaluator == config.MaterialEval {
		eval = search.MaterialEvaluator{}
	}
	return search.New(
		search.WithEvaluator(eval),
		search.WithDepth(cfg.Search.Depth),
		search.WithWorkers(cfg.Search.Workers),
		search.WithSeed(cfg.Search.Seed),
		search.WithLogger(cfg.Logger()),
	)
}

// exportGame writes the PGN and search graph files requested on the
// command line.
func exportGame(cfg *config.Config, board *chess.Board, report *search.Report) error {
	games := []struct {
		path   string
		writer func(io.Writer) output.GameWriter
	}{
		{cfg.Output.PGNFile, func(w io.Writer) output.GameWriter { return output.NewPGNWriter(w, cfg) }},
		{cfg.Output.JSONFile, func(w io.Writer) output.GameWriter { return output.NewJSONWriter(w) }},
	}
	for _, g := range games {
		if g.path == "" {
			continue
		}
		open := g.writer
		if err := writeFile(g.path, func(w io.Writer) error {
			writer := open(w)
			defer writer.Close()
			return writer.WriteGame(board)
		}); err != nil {
			return err
		}
	}
	if path := cfg.Output.DOTFile; path != "" && report != nil {
		if err := writeFile(path, func(w io.Writer) error {
			return output.WriteSearchDOT(w, report)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return write(file)
}
