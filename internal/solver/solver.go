// Package solver is the facade over the tree builder and the evaluator: it
// selects a search mode (brute-force, heuristic-depth, or hybrid), builds
// the sub-tree the mode calls for, and reports the best moves plus an
// evaluation scalar.
package solver

import (
	"github.com/knucklebones/solver/internal/board"
	"github.com/knucklebones/solver/internal/engine"
	"github.com/knucklebones/solver/internal/tree"
)

// DefaultTempoWeight is the empty-square tempo weight used by the default
// heuristic objective: the expected value of an average fair-die face.
const DefaultTempoWeight = 3.5

type modeKind uint8

const (
	bruteForceKind modeKind = iota
	heuristicKind
	hybridKind
)

// Mode selects how the solver builds and evaluates the sub-tree below a
// root. Construct one with BruteForce, Heuristic, or Hybrid.
type Mode struct {
	kind      modeKind
	depth     int
	maxBrute  int
	objective engine.Objective
}

// BruteForce builds the entire tree up to row symmetry and evaluates with
// the terminal brute-force objective (+1/0/−1).
func BruteForce() Mode {
	return Mode{kind: bruteForceKind}
}

// Heuristic builds depth plies and evaluates the horizon with objective.
func Heuristic(depth int, objective engine.Objective) Mode {
	return Mode{kind: heuristicKind, depth: depth, objective: objective}
}

// Hybrid uses BruteForce when the root's empty-squares-remaining is at most
// maxBrute, and Heuristic(depth, objective) otherwise.
func Hybrid(maxBrute, depth int, objective engine.Objective) Mode {
	return Mode{kind: hybridKind, maxBrute: maxBrute, depth: depth, objective: objective}
}

// EmptySquaresRemaining returns the total empty cells across both of root's
// boards. It ignores eliminations and is a monotone upper bound on the
// plies remaining; Hybrid mode uses it as the brute-force gate.
func EmptySquaresRemaining(root tree.Node) int {
	return len(root.Board1.EmptyCells()) + len(root.Board2.EmptyCells())
}

// resolve expands root according to mode and returns the objective to
// evaluate it with.
func resolve(root *tree.Node, mode Mode) (engine.Objective, error) {
	switch mode.kind {
	case bruteForceKind:
		if err := root.BuildEntireTree(); err != nil {
			return nil, err
		}
		return engine.BruteForceObjective, nil
	case hybridKind:
		if EmptySquaresRemaining(*root) <= mode.maxBrute {
			if err := root.BuildEntireTree(); err != nil {
				return nil, err
			}
			return engine.BruteForceObjective, nil
		}
		if err := root.BuildNMoves(mode.depth); err != nil {
			return nil, err
		}
		return mode.objective, nil
	default: // heuristicKind
		if err := root.BuildNMoves(mode.depth); err != nil {
			return nil, err
		}
		return mode.objective, nil
	}
}

// BestMovesAndEvaluation builds root according to mode, evaluates it, and
// returns the best legal moves, the evaluation, and the expanded sub-tree
// (so callers can display it). root must be a Move node; a Roll root fails
// with ErrRollRoot. root itself is left untouched — the expansion happens
// on a clone.
func BestMovesAndEvaluation(root tree.Node, mode Mode) ([]board.Move, float64, tree.Node, error) {
	if root.Kind.Variant != tree.MoveKind {
		return nil, 0, tree.Node{}, ErrRollRoot
	}
	built := root.Clone()
	objective, err := resolve(&built, mode)
	if err != nil {
		return nil, 0, tree.Node{}, err
	}
	moves, value, err := engine.Evaluate(built, objective)
	if err != nil {
		return nil, 0, tree.Node{}, err
	}
	return moves, value, built, nil
}

// Evaluation is BestMovesAndEvaluation without the expanded sub-tree or the
// best-move list.
func Evaluation(root tree.Node, mode Mode) (float64, error) {
	_, value, _, err := BestMovesAndEvaluation(root, mode)
	return value, err
}
