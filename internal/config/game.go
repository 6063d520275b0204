package config

import "github.com/lgbarn/gochess/internal/chess"

// Mode selects who plays each side.
type Mode int

const (
	HumanVsHuman Mode = iota
	HumanVsAI
	AIVsAI
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case HumanVsAI:
		return "hva"
	case AIVsAI:
		return "ava"
	}
	return "hvh"
}

// ParseMode accepts the String spellings.
func ParseMode(s string) (Mode, bool) {
	for _, m := range []Mode{HumanVsHuman, HumanVsAI, AIVsAI} {
		if m.String() == s {
			return m, true
		}
	}
	return HumanVsHuman, false
}

// GameConfig holds settings for one game session.
type GameConfig struct {
	Mode Mode

	// AIColour is the side the engine plays in HumanVsAI mode
	AIColour chess.Colour

	// StartFEN is the starting position; empty means the standard one
	StartFEN string

	// MaxPlies stops AIVsAI games that run too long (0 = no limit)
	MaxPlies int
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Mode:     HumanVsHuman,
		AIColour: chess.Black,
		MaxPlies: 400,
	}
}

// IsAI reports whether the engine plays colour.
func (g *GameConfig) IsAI(colour chess.Colour) bool {
	switch g.Mode {
	case HumanVsAI:
		return colour == g.AIColour
	case AIVsAI:
		return true
	}
	return false
}
