package play

import (
	"testing"

	"github.com/knucklebones/solver/internal/board"
)

func TestRandomDieIsValid(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := RandomDie()
		if !d.IsValid() {
			t.Fatalf("RandomDie() = %v, not a valid die", d)
		}
	}
}

func TestRandomPlayerIsEitherPlayer(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[RandomPlayer().String()] = true
	}
	if len(seen) != 2 {
		t.Errorf("RandomPlayer() only produced %v across 200 draws", seen)
	}
}

func TestChooseMoveIsAmongCandidates(t *testing.T) {
	candidates := []board.Move{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}
	for i := 0; i < 100; i++ {
		m := ChooseMove(candidates)
		found := false
		for _, c := range candidates {
			if c == m {
				found = true
			}
		}
		if !found {
			t.Fatalf("ChooseMove returned %v, not among %v", m, candidates)
		}
	}
}
