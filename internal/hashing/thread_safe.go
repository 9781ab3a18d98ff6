package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules/internal/chess"
)

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(exactMatch, maxCapacity),
	}
}

// CheckAndAdd atomically checks if a position is a duplicate and records it.
// The signature is computed before the lock is taken.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(board *chess.Board, toMove chess.Player, plies int) bool {
	if board == nil {
		return false
	}
	sig := NewSignature(board, toMove, plies)

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAddSignature(sig)
}

// CheckAndAddSignature atomically checks and records a precomputed signature.
func (d *ThreadSafeDuplicateDetector) CheckAndAddSignature(sig Signature) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAddSignature(sig)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of distinct positions recorded.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// LoadFromDetector records every position held by other, as used to seed
// the detector from a check file. Positions already present are skipped and
// do not count as duplicates; the detector's own capacity still applies.
func (d *ThreadSafeDuplicateDetector) LoadFromDetector(other *DuplicateDetector) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, sigs := range other.hashTable {
		for _, sig := range sigs {
			if !d.detector.contains(sig) {
				d.detector.add(sig)
			}
		}
	}
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}
