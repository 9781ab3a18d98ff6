package matching

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/testutil"
)

func TestMaterialMatcher_ParsePattern(t *testing.T) {
	mm := NewMaterialMatcher("QRR:qnp", false)

	testutil.AssertEqual(t, mm.whitePieces, map[chess.Kind]int{chess.Queen: 1, chess.Rook: 2})
	testutil.AssertEqual(t, mm.blackPieces, map[chess.Kind]int{chess.Queen: 1, chess.Knight: 1, chess.Pawn: 1})
	testutil.AssertTrue(t, mm.HasCriteria())
	testutil.AssertFalse(t, NewMaterialMatcher("", false).HasCriteria())
}

func TestMaterialMatcher_Minimal(t *testing.T) {
	initial := replay(t, "", "e2e4")

	tests := []struct {
		pattern string
		want    bool
	}{
		{"Q:q", true},
		{"QRRBBNN:qrrbbnn", true},
		{"PPPPPPPP:", true},
		{"QQ:", false},
		{":ppppppppp", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			testutil.AssertEqual(t, NewMaterialMatcher(tt.pattern, false).Match(initial), tt.want)
		})
	}
}

func TestMaterialMatcher_Exact(t *testing.T) {
	rookEnding := replay(t, "r3k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a2")

	tests := []struct {
		pattern string
		want    bool
	}{
		{"R:r", true},
		{"KR:kr", true},
		{"R:", false},
		{"RR:r", false},
		{":r", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			testutil.AssertEqual(t, NewMaterialMatcher(tt.pattern, true).Match(rookEnding), tt.want)
		})
	}
}

func TestMaterialMatcher_AnyPly(t *testing.T) {
	// White only reaches K+P v K after the capture on the last ply.
	r := replay(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5")
	testutil.AssertTrue(t, NewMaterialMatcher("P:", true).Match(r))

	// A broken script is only searched up to the move that failed.
	broken := replay(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4e6")
	testutil.AssertFalse(t, NewMaterialMatcher("P:", true).Match(broken))
}

func TestMaterialMatcher_Name(t *testing.T) {
	testutil.AssertEqual(t, NewMaterialMatcher("Q:q", false).Name(), "Material(Q:q)")
	testutil.AssertEqual(t, NewMaterialMatcher("Q:q", true).Name(), "Material(=Q:q)")
}
