package matching

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chessrules/internal/config"
	chesserrors "github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func TestNewResultFilter(t *testing.T) {
	mated := replay(t, "", foolsMate)
	quiet := replay(t, "", "e2e4 e7e5")
	broken := replay(t, "", "e2e4 e2e3")

	tests := []struct {
		name   string
		modify func(fc *config.FilterConfig)
		mated  bool
		quiet  bool
		broken bool
	}{
		{
			name:   "defaults keep everything",
			modify: func(*config.FilterConfig) {},
			mated:  true, quiet: true, broken: true,
		},
		{
			name:   "drop broken scripts",
			modify: func(fc *config.FilterConfig) { fc.KeepBrokenScripts = false },
			mated:  true, quiet: true, broken: false,
		},
		{
			name:   "checkmate only",
			modify: func(fc *config.FilterConfig) { fc.MatchCheckmate = true },
			mated:  true, quiet: false, broken: false,
		},
		{
			name: "ply bounds",
			modify: func(fc *config.FilterConfig) {
				fc.CheckPlyBounds = true
				fc.LowerPlyBound = 2
				fc.UpperPlyBound = 3
			},
			mated: false, quiet: true, broken: false,
		},
		{
			name:   "material",
			modify: func(fc *config.FilterConfig) { fc.MaterialPattern = "Q:q" },
			mated:  true, quiet: true, broken: true,
		},
		{
			name: "position reached",
			modify: func(fc *config.FilterConfig) {
				fc.PositionPatterns = []string{"*/*/*/4p3/4P3/*/*/*"}
			},
			mated: false, quiet: true, broken: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := config.NewFilterConfig()
			tt.modify(fc)
			rf, err := NewResultFilter(fc)
			testutil.AssertNoError(t, err)

			testutil.AssertEqual(t, rf.Match(mated), tt.mated, "mated")
			testutil.AssertEqual(t, rf.Match(quiet), tt.quiet, "quiet")
			testutil.AssertEqual(t, rf.Match(broken), tt.broken, "broken")
		})
	}
}

func TestNewResultFilter_NilConfig(t *testing.T) {
	rf, err := NewResultFilter(nil)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, rf.HasCriteria())
	testutil.AssertTrue(t, rf.Match(replay(t, "", "e2e4")))
}

func TestNewResultFilter_BadPosition(t *testing.T) {
	fc := config.NewFilterConfig()
	fc.PositionPatterns = []string{"8/8/8 w"}

	_, err := NewResultFilter(fc)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
}

func TestResultFilter_LoadPositionFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "positions.txt")
	content := `# positions of interest
rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1 | king's pawn

*/*/*/*/3P4/*/*/* | queen's pawn
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	rf, err := NewResultFilter(config.NewFilterConfig())
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, rf.LoadPositionFile(path, false))
	testutil.AssertEqual(t, rf.PositionMatcher.PatternCount(), 2)
	testutil.AssertTrue(t, rf.HasCriteria())

	ok, label := rf.MatchLabel(replay(t, "", "e2e4 e7e5"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, label, "king's pawn")

	ok, label = rf.MatchLabel(replay(t, "", "d2d4"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, label, "queen's pawn")

	ok, _ = rf.MatchLabel(replay(t, "", "c2c4"))
	testutil.AssertFalse(t, ok)
}

func TestResultFilter_LoadPositionFileErrors(t *testing.T) {
	rf, _ := NewResultFilter(nil)

	if err := rf.LoadPositionFile(filepath.Join(t.TempDir(), "missing.txt"), false); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("# header\n\n4k3/8/8 w\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	err := rf.LoadPositionFile(path, false)

	var parseErr *chesserrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	testutil.AssertEqual(t, parseErr.Line, 3)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
}
