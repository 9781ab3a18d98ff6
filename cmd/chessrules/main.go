// chessrules replays chess move scripts, reports the positions they reach and
// filters them by outcome, material and position.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/matching"
	"github.com/lgbarn/chessrules/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	// Create duplicate detector and load check file if needed
	detector := setupDuplicateDetector(cfg)

	// Set up result filter with all criteria
	resultFilter := setupResultFilter(cfg)

	ctx := &ProcessingContext{
		cfg:      cfg,
		detector: detector,
		filter:   resultFilter,
		writer:   output.NewResultWriter(cfg.OutputFile, cfg.Output),
	}
	if cfg.Duplicate.DuplicateFile != nil {
		ctx.dupWriter = output.NewResultWriter(cfg.Duplicate.DuplicateFile, cfg.Output)
	}

	// Process input files or stdin
	stats, err := processAllInputs(ctx, flag.Args())
	if closeErr := closeWriters(ctx); err == nil {
		err = closeErr
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, detector, stats)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var stopped *errStopped
		if errors.As(err, &stopped) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFilename = *outputFile
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// setupDuplicateDetector creates and configures the duplicate detector.
func setupDuplicateDetector(cfg *config.Config) *hashing.ThreadSafeDuplicateDetector {
	if !wantsDuplicateDetection() {
		return nil
	}

	detector := hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)

	// Load check file for duplicate detection
	if *checkFile != "" {
		file, err := os.Open(*checkFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening check file %s: %v\n", *checkFile, err)
			os.Exit(1)
		}
		defer file.Close()

		n := loadCheckFile(file, *checkFile, cfg, detector)
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "Loaded %d scripts from check file\n", n)
		}
	}

	return detector
}

// setupResultFilter creates the result filter and loads any position file.
func setupResultFilter(cfg *config.Config) *matching.ResultFilter {
	rf, err := matching.NewResultFilter(cfg.Filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up filter: %v\n", err)
		os.Exit(2)
	}

	if *positionFile != "" {
		if err := rf.LoadPositionFile(*positionFile, cfg.Filter.InvertPatterns); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading position file %s: %v\n", *positionFile, err)
			os.Exit(1)
		}
	}

	if cfg.Verbosity > 1 && rf.HasCriteria() {
		fmt.Fprintf(cfg.LogFile, "Filter: %s\n", rf.Name())
	}
	return rf
}

// processAllInputs processes all input files, or stdin if there are none.
func processAllInputs(ctx *ProcessingContext, args []string) (runStats, error) {
	var stats runStats

	if len(args) == 0 {
		scripts := processInput(os.Stdin, "stdin", ctx.cfg)
		return stats, processScripts(scripts, ctx, &stats)
	}

	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(ctx.cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			continue
		}

		scripts := processInput(file, filename, ctx.cfg)
		file.Close() //nolint:errcheck,gosec // G104: read-only file

		if err := processScripts(scripts, ctx, &stats); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// closeWriters flushes the result writers and closes the files behind them.
func closeWriters(ctx *ProcessingContext) error {
	var errs []error
	errs = append(errs, ctx.writer.Close())
	if ctx.dupWriter != nil {
		errs = append(errs, ctx.dupWriter.Close())
	}
	for _, w := range []io.Writer{ctx.cfg.OutputFile, ctx.cfg.Duplicate.DuplicateFile} {
		if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
			errs = append(errs, f.Close())
		}
	}
	return errors.Join(errs...)
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(w io.Writer, detector *hashing.ThreadSafeDuplicateDetector, stats runStats) {
	if detector != nil {
		fmt.Fprintf(w, "%d script(s) output, %d duplicate(s) out of %d.\n", stats.output, stats.duplicates, stats.total)
	} else {
		fmt.Fprintf(w, "%d script(s) matched out of %d.\n", stats.output, stats.total)
	}
	if stats.broken > 0 {
		fmt.Fprintf(w, "%d script(s) stopped at an illegal move.\n", stats.broken)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess move scripts and reports the positions they reach.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  One move per token as origin and destination squares (e2e4, e2-e4, e4xd5).\n")
	fmt.Fprintf(os.Stderr, "  A blank line ends a script; a line \"fen <FEN>\" sets its start position.\n")
	fmt.Fprintf(os.Stderr, "  Lines starting with # and text in braces are comments.\n")
}
