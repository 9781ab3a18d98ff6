// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chessrules/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	glyphs       = flag.String("glyphs", "unicode", "Board diagram pieces: unicode or ascii")
	noBoard      = flag.Bool("noboard", false, "Don't draw the final position")
	showMoves    = flag.Bool("moves", false, "List the plies that were played")
	showFEN      = flag.Bool("fen", false, "Print the final position as FEN")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress scripts reaching an already reported position")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	checkFile          = flag.String("c", "", "Check file for duplicate detection")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also have the same ply count")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Filtering options
	checkmateFilter    = flag.Bool("checkmate", false, "Only output scripts ending in checkmate")
	checkFilter        = flag.Bool("check", false, "Only output scripts ending with the side to move in check")
	insufficientFilter = flag.Bool("insufficient", false, "Only output scripts ending with insufficient mating material")
	minPly             = flag.Int("minply", 0, "Minimum number of plies")
	maxPly             = flag.Int("maxply", 0, "Maximum number of plies")
	materialMatch      = flag.String("z", "", "Material pattern reached at least once, e.g. QR:qrr")
	materialMatchExact = flag.String("y", "", "Exact material pattern reached at least once")
	positionFilter     = flag.String("Tf", "", "Only output scripts reaching this FEN or FEN pattern")
	positionFile       = flag.String("x", "", "File of FENs or FEN patterns, one per line")
	invertPatterns     = flag.Bool("invert", false, "Also match position patterns with colours swapped")
	dropBroken         = flag.Bool("complete", false, "Only output scripts whose moves were all legal")
	stopOnError        = flag.Bool("stoponerror", false, "Stop at the first script with an illegal move")

	// Replay options
	startFEN = flag.String("s", "", "Start position for scripts without their own fen line")
	workers  = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=silent, 1=summary, 2=per-ply commentary")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyPlyBoundsFlags(cfg)
	applyFilterFlags(cfg)
	applyDuplicateFlags(cfg)

	cfg.Verbosity = *verbosity
	cfg.StartFEN = *startFEN
	cfg.Workers = *workers
	return cfg.Validate()
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) error {
	g, err := config.ParseGlyphSet(*glyphs)
	if err != nil {
		return fmt.Errorf("-glyphs: %w", err)
	}
	cfg.Output.Glyphs = g
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowMoves = *showMoves
	cfg.Output.ShowFEN = *showFEN
	return nil
}

// applyPlyBoundsFlags configures ply bounds. A missing upper bound is
// unlimited.
func applyPlyBoundsFlags(cfg *config.Config) {
	if *minPly <= 0 && *maxPly <= 0 {
		return
	}

	cfg.Filter.CheckPlyBounds = true
	if *minPly > 0 {
		cfg.Filter.LowerPlyBound = uint(*minPly)
	}
	cfg.Filter.UpperPlyBound = ^uint(0)
	if *maxPly > 0 {
		cfg.Filter.UpperPlyBound = uint(*maxPly)
	}
}

// applyFilterFlags configures result filter settings.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchCheck = *checkFilter
	cfg.Filter.MatchInsufficient = *insufficientFilter
	cfg.Filter.KeepBrokenScripts = !*dropBroken
	cfg.Filter.StopOnError = *stopOnError
	cfg.Filter.InvertPatterns = *invertPatterns

	switch {
	case *materialMatchExact != "":
		cfg.Filter.MaterialPattern = *materialMatchExact
		cfg.Filter.ExactMaterial = true
	case *materialMatch != "":
		cfg.Filter.MaterialPattern = *materialMatch
	}

	if *positionFilter != "" {
		cfg.Filter.PositionPatterns = append(cfg.Filter.PositionPatterns, *positionFilter)
	}
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

// wantsDuplicateDetection reports whether any flag needs a duplicate detector.
func wantsDuplicateDetection() bool {
	return *suppressDuplicates || *duplicateFile != "" || *checkFile != ""
}
