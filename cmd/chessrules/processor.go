// processor.go - Script replay and output functions
package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/matching"
	"github.com/lgbarn/chessrules/internal/output"
	"github.com/lgbarn/chessrules/internal/parser"
	"github.com/lgbarn/chessrules/internal/processing"
	"github.com/lgbarn/chessrules/internal/worker"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg       *config.Config
	detector  *hashing.ThreadSafeDuplicateDetector
	filter    *matching.ResultFilter
	writer    output.ResultWriter
	dupWriter output.ResultWriter
}

// runStats counts scripts across all inputs.
type runStats struct {
	total      int
	output     int
	duplicates int
	broken     int
}

// errStopped is returned when StopOnError ends the run early.
type errStopped struct {
	cause error
}

func (e *errStopped) Error() string { return "stopped at first broken script: " + e.cause.Error() }
func (e *errStopped) Unwrap() error { return e.cause }

// processInput parses every script in r. Scripts read before a malformed
// fen line are still returned; the error is logged.
func processInput(r io.Reader, name string, cfg *config.Config) []*parser.Script {
	cfg.CurrentInputFile = name
	scripts, err := parser.NewParser(r, cfg).ParseAllScripts()
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "%s: %v\n", name, err)
	}
	return scripts
}

// numWorkers returns the configured worker count, or one per CPU.
func numWorkers(cfg *config.Config) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return runtime.NumCPU()
}

// replayScripts replays and filters scripts in parallel. Results come back
// in input order. With StopOnError, nothing past the first broken script is
// replayed or returned.
func replayScripts(scripts []*parser.Script, ctx *ProcessingContext) []worker.ProcessResult {
	items := make([]worker.WorkItem, len(scripts))
	for i, s := range scripts {
		items[i] = worker.WorkItem{Script: s, Index: i}
	}

	var stopAt func(worker.ProcessResult) bool
	if ctx.cfg.Filter.StopOnError {
		stopAt = func(pr worker.ProcessResult) bool { return pr.Result.Broken() }
	}

	return worker.ProcessAll(items, numWorkers(ctx.cfg), func(item worker.WorkItem) worker.ProcessResult {
		r := processing.ReplayScript(item.Script, item.Index+1, ctx.cfg)
		matched, label := ctx.filter.MatchLabel(r)
		return worker.ProcessResult{
			Index:   item.Index,
			Result:  r,
			Matched: matched,
			Label:   label,
		}
	}, stopAt)
}

// processScripts replays scripts and writes the selected results. Duplicate
// detection runs in input order so that the first occurrence is the one kept.
func processScripts(scripts []*parser.Script, ctx *ProcessingContext, stats *runStats) error {
	for _, pr := range replayScripts(scripts, ctx) {
		r := pr.Result
		stats.total++
		logCommentary(ctx.cfg, r)

		if r.Broken() {
			stats.broken++
			if ctx.cfg.Verbosity > 0 {
				fmt.Fprintf(ctx.cfg.LogFile, "%v\n", r.Err)
			}
		}

		decideOutput(&pr, ctx)
		if pr.OutputToDup {
			stats.duplicates++
			if ctx.dupWriter != nil {
				if err := ctx.dupWriter.WriteResult(r, pr.Label); err != nil {
					return err
				}
			}
		}
		if pr.ShouldOutput {
			if err := ctx.writer.WriteResult(r, pr.Label); err != nil {
				return err
			}
			stats.output++
		}

		if r.Broken() && ctx.cfg.Filter.StopOnError {
			return &errStopped{cause: r.Err}
		}
	}
	return nil
}

// decideOutput sets where a filtered result goes.
func decideOutput(pr *worker.ProcessResult, ctx *ProcessingContext) {
	if !pr.Matched {
		return
	}
	r := pr.Result

	if ctx.detector != nil && r.Final != nil {
		r.Duplicate = ctx.detector.CheckAndAdd(r.Final, r.ToMove, r.Plies)
	}
	if !r.Duplicate {
		pr.ShouldOutput = true
		return
	}

	pr.OutputToDup = true
	pr.ShouldOutput = !ctx.cfg.Duplicate.Suppress && ctx.dupWriter == nil
}

// logCommentary writes a line per ply at verbosity 2.
func logCommentary(cfg *config.Config, r *processing.Result) {
	if cfg.Verbosity < 2 {
		return
	}
	fmt.Fprintf(cfg.LogFile, "Script %d:\n", r.Num)
	for _, line := range r.Commentary() {
		fmt.Fprintf(cfg.LogFile, "  %s\n", line)
	}
}

// loadCheckFile seeds the detector with the final positions of the scripts
// in r, so later scripts reaching them count as duplicates.
// Repeats within the check file are not counted as duplicates.
func loadCheckFile(r io.Reader, name string, cfg *config.Config, detector *hashing.ThreadSafeDuplicateDetector) int {
	scripts := processInput(r, name, cfg)
	seed := hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch, 0)
	for i, s := range scripts {
		result := processing.ReplayScript(s, i+1, cfg)
		if result.Final != nil {
			seed.CheckAndAdd(result.Final, result.ToMove, result.Plies)
		}
	}
	detector.LoadFromDetector(seed)
	return len(scripts)
}
