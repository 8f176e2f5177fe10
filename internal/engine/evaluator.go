// Package engine implements expectiminimax evaluation over a built
// Knucklebones game tree, combining child values by max/min at decision
// nodes and by arithmetic mean at chance nodes, with a pluggable leaf
// objective.
package engine

import (
	"github.com/knucklebones/solver/internal/board"
	"github.com/knucklebones/solver/internal/tree"
)

// Objective scores a leaf node. BruteForceObjective requires n to be
// terminal; DifferenceHeuristic accepts any node.
type Objective func(n tree.Node) (float64, error)

// Evaluate walks a Move-rooted sub-tree and returns the set of legal moves
// (up to row symmetry) achieving the node's minimax-over-expectations
// value, together with that value. root must be a Move node; the caller
// (the solver facade) is responsible for rejecting Roll roots.
func Evaluate(root tree.Node, objective Objective) ([]board.Move, float64, error) {
	moves, value, err := evaluateNode(root, objective)
	if err != nil {
		return nil, 0, err
	}
	return moves, value, nil
}

// evaluateNode implements the recursive definition of v(node) from a Move
// node: leaves are scored directly by the objective; otherwise each legal
// move's candidate value is the mean, over the resulting Roll node's six
// Move children, of their own recursive value — unless that Roll node is
// itself terminal, in which case the objective is applied directly. The
// best value is the max over moves for Player1, the min for Player2; all
// moves tying the best value are kept.
func evaluateNode(n tree.Node, objective Objective) ([]board.Move, float64, error) {
	if n.IsLeaf() {
		v, err := objective(n)
		if err != nil {
			return nil, 0, err
		}
		return nil, v, nil
	}

	p := n.Kind.Player
	legalMoves, err := n.LegalMoves()
	if err != nil {
		return nil, 0, err
	}

	var best float64
	var bestMoves []board.Move
	for i, m := range legalMoves {
		rollChild, err := n.ChildAfterMove(m)
		if err != nil {
			return nil, 0, err
		}

		var candidate float64
		if rollChild.IsTerminal() {
			candidate, err = objective(rollChild)
			if err != nil {
				return nil, 0, err
			}
		} else {
			sum := 0.0
			for _, moveChild := range rollChild.Children {
				_, v, err := evaluateNode(moveChild, objective)
				if err != nil {
					return nil, 0, err
				}
				sum += v
			}
			candidate = sum / float64(len(rollChild.Children))
		}

		switch {
		case i == 0:
			best, bestMoves = candidate, []board.Move{m}
		case candidate == best:
			bestMoves = append(bestMoves, m)
		case p.Better(candidate, best):
			best, bestMoves = candidate, []board.Move{m}
		}
	}
	return bestMoves, best, nil
}
