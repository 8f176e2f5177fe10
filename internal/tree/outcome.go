package tree

import "github.com/knucklebones/solver/internal/board"

// Outcome is the result of a terminal node, or InProgress for any
// non-terminal node.
type Outcome struct {
	terminal bool
	draw     bool
	winner   board.Player
}

// InProgress is the outcome of any non-terminal node.
var InProgress = Outcome{}

// Draw is the outcome of a terminal node whose boards score equal.
var Draw = Outcome{terminal: true, draw: true}

// Victory returns the outcome of a terminal node won by p.
func Victory(p board.Player) Outcome {
	return Outcome{terminal: true, winner: p}
}

// IsInProgress reports whether o represents a non-terminal node.
func (o Outcome) IsInProgress() bool {
	return !o.terminal
}

// IsDraw reports whether o is a terminal draw.
func (o Outcome) IsDraw() bool {
	return o.terminal && o.draw
}

// Winner returns the winning player and true, or the zero Player and false
// if o is not a decisive victory.
func (o Outcome) Winner() (board.Player, bool) {
	if o.terminal && !o.draw {
		return o.winner, true
	}
	return board.Player(0), false
}

// String renders the outcome for display.
func (o Outcome) String() string {
	switch {
	case !o.terminal:
		return "in progress"
	case o.draw:
		return "draw"
	default:
		return o.winner.String() + " wins"
	}
}
