// Command knucklebones is the CLI driver for the Knucklebones solver: a
// one-shot position solver, an interactive play loop against the solver,
// and a raw game-tree dump. None of it contains game logic — it is a thin
// collaborator over internal/board, internal/tree, internal/engine, and
// internal/solver.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/knucklebones/solver/internal/board"
	"github.com/knucklebones/solver/internal/display"
	"github.com/knucklebones/solver/internal/engine"
	"github.com/knucklebones/solver/internal/play"
	"github.com/knucklebones/solver/internal/solver"
	"github.com/knucklebones/solver/internal/storage"
	"github.com/knucklebones/solver/internal/tree"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "solve":
		err = runSolve(os.Args[2:])
	case "play":
		err = runPlay(os.Args[2:])
	case "tree":
		err = runTree(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Knucklebones Solver

Usage:
  knucklebones solve -p1 <board> -p2 <board> -player <1|2> -die <1-6> [-mode brute|heuristic|hybrid] [-depth N] [-maxbrute N] [-k weight]
  knucklebones play [-depth N] [-maxbrute N] [-k weight]
  knucklebones tree -p1 <board> -p2 <board> -player <1|2> -die <1-6> [-depth N]`)
}

// buildMode constructs a solver.Mode from the CLI's flattened flag set.
func buildMode(name string, depth, maxBrute int, k float64) (solver.Mode, error) {
	objective := engine.DifferenceHeuristic(k)
	switch name {
	case "brute":
		return solver.BruteForce(), nil
	case "heuristic":
		return solver.Heuristic(depth, objective), nil
	case "hybrid":
		return solver.Hybrid(maxBrute, depth, objective), nil
	default:
		return solver.Mode{}, fmt.Errorf("unknown mode %q (want brute, heuristic, or hybrid)", name)
	}
}

func parsePlayer(s string) (board.Player, error) {
	switch s {
	case "1":
		return board.Player1, nil
	case "2":
		return board.Player2, nil
	default:
		return 0, fmt.Errorf("invalid -player %q (want 1 or 2)", s)
	}
}

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	p1 := fs.String("p1", "", "active player's board")
	p2 := fs.String("p2", "", "opponent's board")
	playerFlag := fs.String("player", "1", "player to move: 1 or 2")
	dieFlag := fs.String("die", "", "die rolled, 1-6")
	mode := fs.String("mode", "hybrid", "brute, heuristic, or hybrid")
	depth := fs.Int("depth", 4, "heuristic/hybrid search depth in plies")
	maxBrute := fs.Int("maxbrute", 5, "hybrid mode's brute-force empty-cell gate")
	k := fs.Float64("k", solver.DefaultTempoWeight, "heuristic tempo weight")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b1, err := board.ParseBoard(*p1)
	if err != nil {
		return fmt.Errorf("-p1: %w", err)
	}
	b2, err := board.ParseBoard(*p2)
	if err != nil {
		return fmt.Errorf("-p2: %w", err)
	}
	player, err := parsePlayer(*playerFlag)
	if err != nil {
		return err
	}
	die, err := board.ParseDie(*dieFlag)
	if err != nil {
		return fmt.Errorf("-die: %w", err)
	}
	searchMode, err := buildMode(*mode, *depth, *maxBrute, *k)
	if err != nil {
		return err
	}

	root := tree.FromActivePlayer(player, b1, b2, tree.Move(player, die))
	moves, value, _, err := solver.BestMovesAndEvaluation(root, searchMode)
	if err != nil {
		return err
	}

	fmt.Printf("Best moves: %s\n", display.FormatMoves(moves))
	fmt.Printf("Evaluation: %s\n", display.FormatEvaluation(value))
	return nil
}

func runTree(args []string) error {
	fs := flag.NewFlagSet("tree", flag.ExitOnError)
	p1 := fs.String("p1", "", "active player's board")
	p2 := fs.String("p2", "", "opponent's board")
	playerFlag := fs.String("player", "1", "player to move: 1 or 2")
	dieFlag := fs.String("die", "", "die rolled, 1-6")
	depth := fs.Int("depth", 1, "moves to expand before printing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b1, err := board.ParseBoard(*p1)
	if err != nil {
		return fmt.Errorf("-p1: %w", err)
	}
	b2, err := board.ParseBoard(*p2)
	if err != nil {
		return fmt.Errorf("-p2: %w", err)
	}
	player, err := parsePlayer(*playerFlag)
	if err != nil {
		return err
	}
	die, err := board.ParseDie(*dieFlag)
	if err != nil {
		return fmt.Errorf("-die: %w", err)
	}

	root := tree.FromActivePlayer(player, b1, b2, tree.Move(player, die))
	if err := root.BuildNMoves(*depth); err != nil {
		return err
	}
	fmt.Print(display.FormatTree(root, 2*(*depth)+1))
	return nil
}

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	depth := fs.Int("depth", 4, "solver's heuristic search depth in plies")
	maxBrute := fs.Int("maxbrute", 5, "hybrid mode's brute-force empty-cell gate")
	k := fs.Float64("k", solver.DefaultTempoWeight, "heuristic tempo weight")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("warning: preferences unavailable: %v", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	mode := solver.Hybrid(*maxBrute, *depth, engine.DifferenceHeuristic(*k))
	human := play.RandomPlayer()
	game := tree.New(board.Empty(), board.Empty(), tree.Roll(board.Player1))

	reader := bufio.NewScanner(os.Stdin)
	for !game.IsTerminal() {
		switch game.Kind.Variant {
		case tree.RollKind:
			if err := game.GenerateChildrenUpToSymmetry(); err != nil {
				return err
			}
			roll := play.RandomDie()
			child, err := game.ChildAfterRoll(roll)
			if err != nil {
				return err
			}
			game = child
		case tree.MoveKind:
			active := game.Kind.Player
			if active == human {
				fmt.Print(display.FormatNodeFromPerspective(game, human))
				m, err := promptMove(reader, game)
				if err != nil {
					return err
				}
				next, err := game.WithMoveMade(m)
				if err != nil {
					return err
				}
				game = next
				continue
			}

			moves, value, _, err := solver.BestMovesAndEvaluation(game, mode)
			if err != nil {
				return fmt.Errorf("solver failed: %w", err)
			}
			if len(moves) == 0 {
				return fmt.Errorf("solver returned no moves (depth must be at least 1)")
			}
			selected := play.ChooseMove(moves)
			fmt.Printf("Solver rolls a %s and plays %s. Evaluation: %s\n",
				game.Kind.Die, display.FormatMove(selected), display.FormatEvaluation(value))
			next, err := game.WithMoveMade(selected)
			if err != nil {
				return err
			}
			game = next
		}
	}

	outcome := game.Outcome()
	winner, decisive := outcome.Winner()
	switch {
	case outcome.IsDraw():
		fmt.Println("Game over! Draw.")
	case decisive && winner == human:
		fmt.Println("Game over! You win!")
	default:
		fmt.Println("Game over! Solver wins...")
	}
	fmt.Printf("Your score: %d  Solver score: %d\n",
		game.BoardFor(human).Score(), game.BoardFor(human.Opponent()).Score())

	if store != nil {
		result := storage.GameResult{Won: decisive && winner == human, Draw: outcome.IsDraw()}
		if err := store.RecordGame(result); err != nil {
			log.Printf("warning: could not record game result: %v", err)
		}
	}
	return nil
}

func promptMove(reader *bufio.Scanner, node tree.Node) (board.Move, error) {
	for {
		fmt.Print("Enter move (row col, e.g. \"12\"): ")
		if !reader.Scan() {
			return board.Move{}, fmt.Errorf("no more input")
		}
		input := strings.TrimSpace(reader.Text())
		m, err := board.ParseMove(input)
		if err != nil {
			fmt.Println("Invalid move!")
			continue
		}
		legal, err := node.IsLegalMove(m)
		if err != nil {
			return board.Move{}, err
		}
		if !legal {
			fmt.Println("Invalid move!")
			continue
		}
		return m, nil
	}
}
