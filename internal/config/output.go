package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Glyphs selects Unicode or ASCII pieces in board diagrams
	Glyphs GlyphSet

	// JSONFormat enables one JSON object per script instead of text
	JSONFormat bool

	// ShowBoard prints the final position of each script
	ShowBoard bool

	// ShowMoves lists the plies that were played
	ShowMoves bool

	// ShowFEN prints the final position as a FEN string
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Glyphs:    UnicodeGlyphs,
		ShowBoard: true,
	}
}
