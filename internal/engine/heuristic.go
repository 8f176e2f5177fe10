package engine

import (
	"github.com/knucklebones/solver/internal/board"
	"github.com/knucklebones/solver/internal/tree"
)

// BruteForceObjective scores a terminal leaf +1 for a Player1 win, −1 for a
// Player2 win, 0 for a draw. It fails with ErrCannotEvaluateInProgressLeaf
// on any non-terminal node.
func BruteForceObjective(n tree.Node) (float64, error) {
	if !n.IsTerminal() {
		return 0, ErrCannotEvaluateInProgressLeaf
	}
	switch w, ok := n.Outcome().Winner(); {
	case !ok:
		return 0, nil
	case w == board.Player1:
		return 1, nil
	default:
		return -1, nil
	}
}

// DifferenceHeuristic returns the default heuristic leaf objective: board
// score difference plus an empty-square tempo correction weighted by k, the
// expected value of an average die face (k ≈ 3.5 for a fair six-sided die).
//
// At a terminal node the tempo term is dropped and the raw score difference
// is returned, regardless of k.
func DifferenceHeuristic(k float64) Objective {
	return func(n tree.Node) (float64, error) {
		diff := float64(n.Board1.Score() - n.Board2.Score())
		if n.IsTerminal() {
			return diff, nil
		}

		e1 := len(n.Board1.EmptyCells())
		e2 := len(n.Board2.EmptyCells())
		active := n.Kind.Player

		var finishingFirst board.Player
		switch {
		case e1 > e2:
			finishingFirst = board.Player2
		case e1 < e2:
			finishingFirst = board.Player1
		default:
			finishingFirst = active
		}

		bonus := -1.0
		if active == finishingFirst {
			bonus = 1.0
		}

		var raw float64
		if finishingFirst == board.Player1 {
			raw = float64(e2-e1) + bonus
		} else {
			raw = -(float64(e1-e2) + bonus)
		}

		return diff + k*raw, nil
	}
}
