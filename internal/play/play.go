// Package play supplies the random sources the interactive play
// collaborator needs. The core tree and solver never generate randomness
// themselves — per the design notes, random_die/random_player live outside
// the core and are passed in.
package play

import (
	"math/rand/v2"

	"github.com/knucklebones/solver/internal/board"
)

// RandomDie returns a uniformly random die face.
func RandomDie() board.Die {
	return board.Die(1 + rand.IntN(6))
}

// RandomPlayer returns Player1 or Player2 with equal probability, used to
// decide who moves first in an interactive game.
func RandomPlayer() board.Player {
	if rand.IntN(2) == 0 {
		return board.Player1
	}
	return board.Player2
}

// ChooseMove picks uniformly at random among a tied best-move set, the way
// the interactive play loop breaks ties when the solver reports more than
// one equally good move.
func ChooseMove(moves []board.Move) board.Move {
	return moves[rand.IntN(len(moves))]
}
