package config

// OutputConfig holds settings related to output.
type OutputConfig struct {
	// PGNFile receives the game in PGN when the session ends (empty = none)
	PGNFile string

	// JSONFile receives the game as a snapshot when the session ends
	JSONFile string

	// DOTFile receives the last search report as a Graphviz graph
	DOTFile string

	// ShowBoard prints the board before every move
	ShowBoard bool

	// Event and player names written to the PGN tags
	Event string
	White string
	Black string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
		Event:     "Casual game",
		White:     "White",
		Black:     "Black",
	}
}
