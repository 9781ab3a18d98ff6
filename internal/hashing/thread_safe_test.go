package hashing

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/notation"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	board, err := notation.NewBoardFromFEN(notation.InitialFEN)
	if err != nil {
		t.Fatal(err)
	}

	const numScripts = 100
	const numWorkers = 10
	scriptsPerWorker := numScripts / numWorkers

	boards := make([]*chess.Board, numScripts)
	for i := range boards {
		boards[i] = board.Copy()
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			start := workerID * scriptsPerWorker
			end := start + scriptsPerWorker
			for j := start; j < end; j++ {
				detector.CheckAndAdd(boards[j], chess.White, 0)
			}
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 99 {
		t.Errorf("Expected 99 duplicates, got %d", detector.DuplicateCount())
	}

	if detector.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique, got %d", detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_DifferentPositions(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	fens := []string{
		notation.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b - - 1 1",
		"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b - - 0 1",
	}

	boards := make([]*chess.Board, len(fens))
	for i, fen := range fens {
		board, err := notation.NewBoardFromFEN(fen)
		if err != nil {
			t.Fatalf("Failed to parse FEN %s: %v", fen, err)
		}
		boards[i] = board
	}

	var wg sync.WaitGroup
	for i := range fens {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			detector.CheckAndAdd(boards[idx], chess.Black, 1)
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates, got %d", detector.DuplicateCount())
	}

	if detector.UniqueCount() != len(fens) {
		t.Errorf("Expected %d unique, got %d", len(fens), detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_NoRace(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	board, _ := notation.NewBoardFromFEN(notation.InitialFEN)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			detector.CheckAndAdd(board, chess.White, 0)
			_ = detector.DuplicateCount()
			_ = detector.UniqueCount()
		}()
	}
	wg.Wait()
}

func TestThreadSafeDuplicateDetector_LoadFromDetector(t *testing.T) {
	regular := NewDuplicateDetector(false, 0)
	board, _ := notation.NewBoardFromFEN(notation.InitialFEN)
	regular.CheckAndAdd(board, chess.White, 0)

	if regular.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique in regular detector, got %d", regular.UniqueCount())
	}

	threadSafe := NewThreadSafeDuplicateDetector(false, 0)
	threadSafe.LoadFromDetector(regular)

	isDupe := threadSafe.CheckAndAdd(board, chess.White, 0)
	if !isDupe {
		t.Error("Expected duplicate after loading from regular detector")
	}

	if threadSafe.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate, got %d", threadSafe.DuplicateCount())
	}
	if threadSafe.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique, got %d", threadSafe.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_LoadFromDetectorSkipsKnown(t *testing.T) {
	start, _ := notation.NewBoardFromFEN(notation.InitialFEN)
	other, _ := notation.NewBoardFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	seed := NewDuplicateDetector(false, 0)
	seed.CheckAndAdd(start, chess.White, 0)
	seed.CheckAndAdd(other, chess.White, 0)

	threadSafe := NewThreadSafeDuplicateDetector(false, 0)
	threadSafe.CheckAndAdd(start, chess.White, 0)
	threadSafe.LoadFromDetector(seed)

	if got := threadSafe.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d; want 2", got)
	}
	if got := threadSafe.DuplicateCount(); got != 0 {
		t.Errorf("DuplicateCount() = %d; want 0 (seeding is not a duplicate)", got)
	}
}

func TestThreadSafeDuplicateDetector_LoadFromDetectorCapacity(t *testing.T) {
	seed := NewDuplicateDetector(false, 0)
	for file := 0; file < 4; file++ {
		board := chess.NewBoard()
		if err := board.SetPieceAt(chess.NewTile(7, file), chess.W(chess.King)); err != nil {
			t.Fatal(err)
		}
		seed.CheckAndAdd(board, chess.White, 0)
	}

	threadSafe := NewThreadSafeDuplicateDetector(false, 2)
	threadSafe.LoadFromDetector(seed)

	if got := threadSafe.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d; want 2 (capacity)", got)
	}
	if !threadSafe.IsFull() {
		t.Error("detector should be full after seeding past its capacity")
	}
}

func TestThreadSafeDuplicateDetector_MaxCapacity(t *testing.T) {
	const capacity = 50
	const numWorkers = 8

	detector := NewThreadSafeDuplicateDetector(false, capacity)

	uniqueAdded := int32(0)

	// Each worker places a lone white king along its own rank.
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			localUnique := 0
			for file := 0; file < chess.BoardSize; file++ {
				board := chess.NewBoard()
				if err := board.SetPieceAt(chess.NewTile(rank, file), chess.W(chess.King)); err != nil {
					t.Error(err)
					return
				}
				for _, player := range []chess.Player{chess.White, chess.Black} {
					if !detector.CheckAndAdd(board, player, 0) {
						localUnique++
					}
				}
			}
			atomic.AddInt32(&uniqueAdded, int32(localUnique))
		}(i)
	}
	wg.Wait()

	if !detector.IsFull() {
		t.Errorf("Expected detector to be full after %d unique positions (capacity %d)", uniqueAdded, capacity)
	}
	if detector.UniqueCount() != capacity {
		t.Errorf("UniqueCount = %d, want %d", detector.UniqueCount(), capacity)
	}
}
