package chess

// Tile is a (rank, file) coordinate on the board. Out-of-range tiles can be
// constructed so that boundary arithmetic is checked once, with IsValid.
type Tile struct {
	Rank int
	File int
}

// NewTile creates a tile. It never rejects its arguments.
func NewTile(rank, file int) Tile {
	return Tile{Rank: rank, File: file}
}

// IsValid returns true if both coordinates lie on the board.
func (t Tile) IsValid() bool {
	return t.Rank >= 0 && t.Rank < BoardSize && t.File >= 0 && t.File < BoardSize
}

// Equals compares two tiles by rank and file.
func (t Tile) Equals(o Tile) bool {
	return t.Rank == o.Rank && t.File == o.File
}

// Offset returns the tile shifted by the given deltas. The result may be invalid.
func (t Tile) Offset(dRank, dFile int) Tile {
	return Tile{Rank: t.Rank + dRank, File: t.File + dFile}
}

// String returns the algebraic name of the tile ("e2"), or "-" if it is off the board.
func (t Tile) String() string {
	if !t.IsValid() {
		return "-"
	}
	return string([]byte{byte(ColBase + t.File), byte(RankBase - t.Rank)})
}
