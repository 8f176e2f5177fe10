// Package display renders boards, nodes, and moves for the CLI. It holds
// no game logic of its own — everything here is formatting the core's
// public surface for a terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/knucklebones/solver/internal/board"
	"github.com/knucklebones/solver/internal/tree"
)

// FormatBoard renders a board as three lines of space-separated cells with
// '.' for empty cells, more legible on a terminal than the bare string form.
func FormatBoard(b board.Board) string {
	var sb strings.Builder
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			sq := b.At(row, col)
			if sq.IsEmpty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(sq.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatMove renders a move as a human-readable "(row, col)" pair. Distinct
// from Move.String, which is the compact round-trip wire form.
func FormatMove(m board.Move) string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// FormatMoves renders a list of moves, comma separated.
func FormatMoves(moves []board.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = FormatMove(m)
	}
	return strings.Join(parts, ", ")
}

// FormatEvaluation renders an evaluation scalar to two decimal places, per
// the solver's external interface.
func FormatEvaluation(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatNodeFromPerspective renders a node's position as seen by p: p's
// board first, then the opponent's, then the pending roll if the node is a
// Move node.
func FormatNodeFromPerspective(n tree.Node, p board.Player) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You:\n%s\n\n", FormatBoard(n.BoardFor(p)))
	fmt.Fprintf(&sb, "Opponent:\n%s\n", FormatBoard(n.BoardFor(p.Opponent())))
	if n.Kind.Variant == tree.MoveKind {
		fmt.Fprintf(&sb, "\nRoll: %s\n", n.Kind.Die)
	}
	return sb.String()
}

// FormatTree renders a node and its children as an indented tree, to a
// caller-chosen depth limit (0 prints just the node itself).
func FormatTree(n tree.Node, maxDepth int) string {
	var sb strings.Builder
	writeNode(&sb, n, 0, maxDepth)
	return sb.String()
}

func writeNode(sb *strings.Builder, n tree.Node, depth, maxDepth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind.Variant {
	case tree.RollKind:
		fmt.Fprintf(sb, "%sRoll(%s)\n", indent, n.Kind.Player)
	default:
		fmt.Fprintf(sb, "%sMove(%s, %s)\n", indent, n.Kind.Player, n.Kind.Die)
	}
	if depth >= maxDepth {
		return
	}
	for _, c := range n.Children {
		writeNode(sb, c, depth+1, maxDepth)
	}
}
