package display

import (
	"strings"
	"testing"

	"github.com/knucklebones/solver/internal/board"
	"github.com/knucklebones/solver/internal/tree"
)

func TestFormatBoard(t *testing.T) {
	b, err := board.ParseBoard("5__\n__2\n___")
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	got := FormatBoard(b)
	want := "5 . . \n. . 2 \n. . . "
	if got != want {
		t.Errorf("FormatBoard = %q, want %q", got, want)
	}
}

func TestFormatMove(t *testing.T) {
	if got := FormatMove(board.NewMove(1, 2)); got != "(1, 2)" {
		t.Errorf("FormatMove = %q, want (1, 2)", got)
	}
}

func TestFormatMoves(t *testing.T) {
	moves := []board.Move{{Row: 0, Col: 0}, {Row: 1, Col: 2}}
	if got, want := FormatMoves(moves), "(0, 0), (1, 2)"; got != want {
		t.Errorf("FormatMoves = %q, want %q", got, want)
	}
}

func TestFormatEvaluation(t *testing.T) {
	if got := FormatEvaluation(6.0); got != "6.00" {
		t.Errorf("FormatEvaluation = %q, want 6.00", got)
	}
	if got := FormatEvaluation(-18.5); got != "-18.50" {
		t.Errorf("FormatEvaluation = %q, want -18.50", got)
	}
}

func TestFormatNodeFromPerspective(t *testing.T) {
	n := tree.New(board.Empty(), board.Empty(), tree.Move(board.Player1, board.Six))
	got := FormatNodeFromPerspective(n, board.Player1)
	if !strings.Contains(got, "Roll: 6") {
		t.Errorf("expected roll annotation, got %q", got)
	}
	if !strings.Contains(got, "You:") || !strings.Contains(got, "Opponent:") {
		t.Errorf("missing perspective labels: %q", got)
	}
}

func TestFormatTree(t *testing.T) {
	n := tree.New(board.Empty(), board.Empty(), tree.Move(board.Player1, board.Six))
	if err := n.GenerateChildrenUpToSymmetry(); err != nil {
		t.Fatalf("GenerateChildrenUpToSymmetry: %v", err)
	}
	got := FormatTree(n, 1)
	if !strings.Contains(got, "Move(Player 1, 6)") {
		t.Errorf("missing root line: %q", got)
	}
	if strings.Count(got, "Roll(Player 2)") != 3 {
		t.Errorf("expected 3 child lines, got: %q", got)
	}
}
