package matching

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/processing"
)

// ResultFilter decides which replayed scripts are output. All configured
// conditions must hold.
type ResultFilter struct {
	matchers        *CompositeMatcher
	PositionMatcher *PositionMatcher
}

// NewResultFilter builds a filter from the filter settings.
func NewResultFilter(fc *config.FilterConfig) (*ResultFilter, error) {
	rf := &ResultFilter{
		matchers:        NewCompositeMatcher(MatchAll),
		PositionMatcher: NewPositionMatcher(),
	}
	if fc == nil {
		return rf, nil
	}

	if !fc.KeepBrokenScripts {
		rf.matchers.Add(CompleteMatcher{})
	}
	if fc.CheckPlyBounds {
		rf.matchers.Add(NewPlyRangeMatcher(fc.LowerPlyBound, fc.UpperPlyBound))
	}
	switch {
	case fc.MatchCheckmate:
		rf.matchers.Add(NewStatusMatcher(chess.Checkmate))
	case fc.MatchCheck:
		rf.matchers.Add(NewStatusMatcher(chess.Check))
	}
	if fc.MatchInsufficient {
		rf.matchers.Add(InsufficientMaterialMatcher{})
	}
	if fc.MaterialPattern != "" {
		rf.matchers.Add(NewMaterialMatcher(fc.MaterialPattern, fc.ExactMaterial))
	}
	for _, p := range fc.PositionPatterns {
		if err := rf.PositionMatcher.Add(p, fc.InvertPatterns); err != nil {
			return nil, fmt.Errorf("position %q: %w", p, err)
		}
	}
	return rf, nil
}

// LoadPositionFile reads positions to match from a file, one FEN or FEN
// pattern per line. Blank lines and lines starting with '#' are skipped, and
// a line may carry a label after a '|'.
func (rf *ResultFilter) LoadPositionFile(filename string, includeInvert bool) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()

	lineNum := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fen, label, _ := strings.Cut(line, "|")
		fen, label = strings.TrimSpace(fen), strings.TrimSpace(label)

		if IsPattern(fen) {
			rf.PositionMatcher.AddPattern(fen, label, includeInvert)
			continue
		}
		if err := rf.PositionMatcher.AddFEN(fen, label); err != nil {
			return &errors.ParseError{
				Err:      err,
				File:     filename,
				Line:     lineNum,
				Expected: "FEN position",
				Got:      fmt.Sprintf("%q", fen),
			}
		}
	}

	return scanner.Err()
}

// Match implements ResultMatcher.
func (rf *ResultFilter) Match(r *processing.Result) bool {
	if !rf.matchers.Match(r) {
		return false
	}
	return rf.PositionMatcher.PatternCount() == 0 || rf.PositionMatcher.Match(r)
}

// MatchLabel is Match that also returns the label of the matched position,
// if a labelled position pattern was involved.
func (rf *ResultFilter) MatchLabel(r *processing.Result) (bool, string) {
	if !rf.matchers.Match(r) {
		return false, ""
	}
	if rf.PositionMatcher.PatternCount() == 0 {
		return true, ""
	}
	if p := rf.PositionMatcher.MatchResult(r); p != nil {
		return true, p.Label
	}
	return false, ""
}

// HasCriteria returns true if any filter criteria are set.
func (rf *ResultFilter) HasCriteria() bool {
	return len(rf.matchers.Matchers()) > 0 || rf.PositionMatcher.PatternCount() > 0
}

// Name implements ResultMatcher.
func (rf *ResultFilter) Name() string {
	if rf.PositionMatcher.PatternCount() == 0 {
		return rf.matchers.Name()
	}
	return rf.matchers.Name() + " + Position"
}
