// Package hashing provides position hashing and duplicate detection for
// replayed scripts.
package hashing

import "github.com/lgbarn/chessrules/internal/chess"

// DuplicateDetector tracks final positions already seen.
type DuplicateDetector struct {
	// hashTable stores seen signatures keyed by Zobrist hash
	hashTable map[uint64][]Signature
	// useExactMatch also requires equal ply counts
	useExactMatch bool
	// maxCapacity limits the number of stored signatures (0 = unlimited)
	maxCapacity int
	unique      int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// Signature stores identifying information about a final position.
type Signature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash is an independent hash for collision checks
	WeakHash uint32
	// PlyCount is the number of plies played to reach the position
	PlyCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// NewSignature computes the signature of a position.
func NewSignature(board *chess.Board, toMove chess.Player, plies int) Signature {
	return Signature{
		Hash:     GenerateZobristHash(board, toMove),
		WeakHash: WeakHash(board),
		PlyCount: plies,
	}
}

// CheckAndAdd checks if the position was seen before and records it.
// Returns true if the position is a duplicate. Once the detector is full,
// new positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, toMove chess.Player, plies int) bool {
	if board == nil {
		return false
	}
	return d.CheckAndAddSignature(NewSignature(board, toMove, plies))
}

// CheckAndAddSignature is CheckAndAdd for a precomputed signature.
func (d *DuplicateDetector) CheckAndAddSignature(sig Signature) bool {
	if d.contains(sig) {
		d.duplicateCount++
		return true
	}
	d.add(sig)
	return false
}

func (d *DuplicateDetector) contains(sig Signature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			return true
		}
	}
	return false
}

// add records sig unless the table is full.
func (d *DuplicateDetector) add(sig Signature) {
	if d.IsFull() {
		return
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.unique++
}

// signaturesMatch checks if two signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.unique
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.unique >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.unique = 0
	d.duplicateCount = 0
}
