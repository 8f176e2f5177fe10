package board

import (
	"fmt"
	"strings"
)

// Size is the fixed board dimension: Knucklebones is always played on a
// 3x3 grid. Non-goal: board sizes other than 3x3.
const Size = 3

// Board is a 3x3 grid of squares, addressed (row, column) with both indices
// in {0,1,2}. The zero value is the empty board.
type Board struct {
	cells [Size][Size]Square
}

// Empty returns a board with all nine cells empty.
func Empty() Board {
	return Board{}
}

// At returns the square at (row, col).
func (b Board) At(row, col int) Square {
	return b.cells[row][col]
}

// IsFull reports whether every cell is occupied.
func (b Board) IsFull() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// String renders the board as three newline-separated lines of three
// characters, row 0 on top and column 0 on the left.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteString(b.cells[r][c].String())
		}
		if r < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard decodes the string form described by Board.String, stripping
// spaces and tabs before checking the shape.
func ParseBoard(s string) (Board, error) {
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
	lines := strings.Split(strings.Trim(stripped, "\n"), "\n")
	if len(lines) != Size {
		return Board{}, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoardString, Size, len(lines))
	}
	var b Board
	for r, line := range lines {
		if len(line) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d characters, want %d", ErrInvalidBoardString, r, len(line), Size)
		}
		for c := 0; c < Size; c++ {
			sq, ok := parseSquareChar(line[c])
			if !ok {
				return Board{}, fmt.Errorf("%w: invalid character %q", ErrInvalidBoardString, line[c])
			}
			b.cells[r][c] = sq
		}
	}
	return b, nil
}

// WithMoveMade returns a new board with die placed at m. Fails with
// ErrSquareOccupied when the target cell is already occupied.
func (b Board) WithMoveMade(d Die, m Move) (Board, error) {
	if !b.cells[m.Row][m.Col].IsEmpty() {
		return Board{}, fmt.Errorf("%w: %s", ErrSquareOccupied, m)
	}
	nb := b
	nb.cells[m.Row][m.Col] = squareFromDie(d)
	return nb, nil
}

// Eliminate clears every cell in column col whose die equals d. Columns
// with no matching dice are returned unchanged.
func (b Board) Eliminate(d Die, col int) Board {
	nb := b
	for r := 0; r < Size; r++ {
		if sq := nb.cells[r][col]; !sq.IsEmpty() && sq.Die() == d {
			nb.cells[r][col] = EmptySquare
		}
	}
	return nb
}

// EmptyCells returns the empty cells in column-major order: column 0 top to
// bottom, then column 1, then column 2.
func (b Board) EmptyCells() []Move {
	var moves []Move
	for c := 0; c < Size; c++ {
		for r := 0; r < Size; r++ {
			if b.cells[r][c].IsEmpty() {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// EmptyCellsUpToRowSymmetry returns at most one empty cell per column: the
// smallest-row empty cell of each column that has one. Within a column, row
// order is interchangeable for scoring purposes, so this is the pruned move
// set the tree builder expands from.
func (b Board) EmptyCellsUpToRowSymmetry() []Move {
	var moves []Move
	for c := 0; c < Size; c++ {
		for r := 0; r < Size; r++ {
			if b.cells[r][c].IsEmpty() {
				moves = append(moves, Move{Row: r, Col: c})
				break
			}
		}
	}
	return moves
}

// ColumnMultiplicity returns the column's score multiplier: 3 if all three
// cells hold the same die, 2 if any two do, else 1.
func (b Board) ColumnMultiplicity(col int) int {
	s0, s1, s2 := b.cells[0][col], b.cells[1][col], b.cells[2][col]
	if !s0.IsEmpty() && s0 == s1 && s1 == s2 {
		return 3
	}
	if (!s0.IsEmpty() && s0 == s1) || (!s1.IsEmpty() && s1 == s2) || (!s0.IsEmpty() && s0 == s2) {
		return 2
	}
	return 1
}

// ColumnScore returns the column's die-sum times its multiplicity.
func (b Board) ColumnScore(col int) int {
	sum := 0
	for r := 0; r < Size; r++ {
		if sq := b.cells[r][col]; !sq.IsEmpty() {
			sum += sq.Die().Value()
		}
	}
	return sum * b.ColumnMultiplicity(col)
}

// Score returns the sum of column scores over all columns.
func (b Board) Score() int {
	total := 0
	for c := 0; c < Size; c++ {
		total += b.ColumnScore(c)
	}
	return total
}
