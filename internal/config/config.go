// Package config provides configuration for gochess sessions.
package config

import (
	"io"
	"log"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=results, 2=engine and search diagnostics

	Game   *GameConfig
	Search *SearchConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Game:       NewGameConfig(),
		Search:     NewSearchConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Logger returns the diagnostic logger for the configured verbosity.
// Below level 2 diagnostics are discarded.
func (c *Config) Logger() *log.Logger {
	if c.Verbosity < 2 || c.LogFile == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(c.LogFile, "gochess: ", log.Ltime)
}
