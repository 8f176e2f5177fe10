package solver

import (
	"errors"
	"testing"

	"github.com/knucklebones/solver/internal/board"
	"github.com/knucklebones/solver/internal/engine"
	"github.com/knucklebones/solver/internal/tree"
)

func mustBoard(t *testing.T, s string) board.Board {
	t.Helper()
	b, err := board.ParseBoard(s)
	if err != nil {
		t.Fatalf("ParseBoard(%q): %v", s, err)
	}
	return b
}

func TestBestMovesAndEvaluationScenario1Heuristic(t *testing.T) {
	root := tree.New(board.Empty(), board.Empty(), tree.Move(board.Player1, board.Six))
	moves, v, _, err := BestMovesAndEvaluation(root, Heuristic(1, engine.DifferenceHeuristic(DefaultTempoWeight)))
	if err != nil {
		t.Fatalf("BestMovesAndEvaluation: %v", err)
	}
	if v != 6.0 {
		t.Errorf("evaluation = %v, want 6.0", v)
	}
	want := []board.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	if len(moves) != len(want) {
		t.Fatalf("moves = %v, want %v", moves, want)
	}
}

func TestBestMovesAndEvaluationScenario3BruteForce(t *testing.T) {
	p1 := mustBoard(t, "255\n1_2\n352")
	p2 := mustBoard(t, "15_\n333\n12_")
	root := tree.New(p1, p2, tree.Move(board.Player1, board.Six))
	moves, v, _, err := BestMovesAndEvaluation(root, BruteForce())
	if err != nil {
		t.Fatalf("BestMovesAndEvaluation: %v", err)
	}
	if len(moves) != 1 || moves[0] != (board.Move{Row: 1, Col: 1}) {
		t.Errorf("moves = %v, want [(1,1)]", moves)
	}
	if v != 1.0 {
		t.Errorf("evaluation = %v, want 1.0", v)
	}
}

// Scenario 6: a Roll root is rejected.
func TestBestMovesAndEvaluationRollRoot(t *testing.T) {
	p1 := mustBoard(t, "255\n1_2\n352")
	p2 := mustBoard(t, "255\n1_2\n652")
	root := tree.New(p1, p2, tree.Roll(board.Player1))
	if _, _, _, err := BestMovesAndEvaluation(root, BruteForce()); !errors.Is(err, ErrRollRoot) {
		t.Errorf("error = %v, want ErrRollRoot", err)
	}
}

func TestHybridMatchesBruteForceUnderGate(t *testing.T) {
	p1 := mustBoard(t, "255\n1_2\n352")
	p2 := mustBoard(t, "15_\n333\n12_")
	root := tree.New(p1, p2, tree.Move(board.Player1, board.Six))

	if got := EmptySquaresRemaining(root); got > 5 {
		t.Fatalf("test fixture has %d empty cells, want <= 5 to exercise the brute-force gate", got)
	}

	bruteMoves, bruteV, _, err := BestMovesAndEvaluation(root, BruteForce())
	if err != nil {
		t.Fatalf("BestMovesAndEvaluation(BruteForce): %v", err)
	}
	hybridMoves, hybridV, _, err := BestMovesAndEvaluation(root, Hybrid(5, 4, engine.DifferenceHeuristic(DefaultTempoWeight)))
	if err != nil {
		t.Fatalf("BestMovesAndEvaluation(Hybrid): %v", err)
	}
	if hybridV != bruteV {
		t.Errorf("hybrid evaluation = %v, want %v (brute-force)", hybridV, bruteV)
	}
	if len(hybridMoves) != len(bruteMoves) {
		t.Fatalf("hybrid moves = %v, want %v", hybridMoves, bruteMoves)
	}
	for i := range bruteMoves {
		if hybridMoves[i] != bruteMoves[i] {
			t.Errorf("hybrid moves = %v, want %v", hybridMoves, bruteMoves)
		}
	}
}

func TestHybridFallsBackToHeuristicAboveGate(t *testing.T) {
	root := tree.New(board.Empty(), board.Empty(), tree.Move(board.Player1, board.Six))
	if got := EmptySquaresRemaining(root); got <= 1 {
		t.Fatalf("test fixture has %d empty cells, want > 1 to exercise the heuristic fallback", got)
	}
	moves, v, _, err := BestMovesAndEvaluation(root, Hybrid(1, 1, engine.DifferenceHeuristic(DefaultTempoWeight)))
	if err != nil {
		t.Fatalf("BestMovesAndEvaluation(Hybrid): %v", err)
	}
	if v != 6.0 {
		t.Errorf("evaluation = %v, want 6.0 (heuristic depth=1 result)", v)
	}
	want := []board.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	if len(moves) != len(want) {
		t.Fatalf("moves = %v, want %v", moves, want)
	}
}

func TestEmptySquaresRemaining(t *testing.T) {
	p1 := mustBoard(t, "2__\n__5\n2_3")
	root := tree.New(p1, board.Empty(), tree.Move(board.Player2, board.Two))
	if got, want := EmptySquaresRemaining(root), 5+9; got != want {
		t.Errorf("EmptySquaresRemaining = %d, want %d", got, want)
	}
}

func TestBestMovesAndEvaluationLeavesRootUntouched(t *testing.T) {
	root := tree.New(board.Empty(), board.Empty(), tree.Move(board.Player1, board.Six))
	if _, _, _, err := BestMovesAndEvaluation(root, Heuristic(1, engine.DifferenceHeuristic(DefaultTempoWeight))); err != nil {
		t.Fatalf("BestMovesAndEvaluation: %v", err)
	}
	if len(root.Children) != 0 {
		t.Errorf("caller's root was mutated: has %d children", len(root.Children))
	}
}
