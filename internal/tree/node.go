// Package tree implements the lazily-expanded Knucklebones game tree: a
// position (both players' boards) tagged with a node kind (Roll or Move),
// plus the successor rules and expansion entry points that build a
// sub-tree for the evaluator to walk.
package tree

import "github.com/knucklebones/solver/internal/board"

// Kind distinguishes the two node variants.
type Kind uint8

const (
	// RollKind nodes are about to roll a die; their children are the six
	// Move nodes for each face, in ascending order.
	RollKind Kind = iota
	// MoveKind nodes must place a given die on the active player's board;
	// their children are Roll nodes, one per legal placement.
	MoveKind
)

// NodeKind tags a Node with its variant and the variant's own fields: the
// player on move, and (for Move) the die that must be placed.
type NodeKind struct {
	Variant Kind
	Player  board.Player
	Die     board.Die // only meaningful when Variant == MoveKind
}

// Roll builds a Roll(player) node kind.
func Roll(p board.Player) NodeKind {
	return NodeKind{Variant: RollKind, Player: p}
}

// Move builds a Move(player, die) node kind.
func Move(p board.Player, d board.Die) NodeKind {
	return NodeKind{Variant: MoveKind, Player: p, Die: d}
}

// Node is one position in the game tree: both players' boards, the node
// kind, and an ordered list of expanded children. Nodes are value-like —
// copying a Node (via Clone) deep-copies the entire sub-tree.
type Node struct {
	Board1   board.Board
	Board2   board.Board
	Kind     NodeKind
	Children []Node
}

// New constructs a node directly from both boards and a kind.
func New(b1, b2 board.Board, kind NodeKind) Node {
	return Node{Board1: b1, Board2: b2, Kind: kind}
}

// FromActivePlayer places the active player's board on the correct side:
// Player1 is always Board1, Player2 always Board2, regardless of which
// board the caller considers "active".
func FromActivePlayer(active board.Player, activeBoard, opponentBoard board.Board, kind NodeKind) Node {
	if active == board.Player1 {
		return New(activeBoard, opponentBoard, kind)
	}
	return New(opponentBoard, activeBoard, kind)
}

// BoardFor returns the board belonging to p.
func (n Node) BoardFor(p board.Player) board.Board {
	if p == board.Player1 {
		return n.Board1
	}
	return n.Board2
}

// IsLeaf reports whether n has no expanded children.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsTerminal reports whether either board is full.
func (n Node) IsTerminal() bool {
	return n.Board1.IsFull() || n.Board2.IsFull()
}

// Outcome reports the node's game outcome. Non-terminal nodes are always
// InProgress.
func (n Node) Outcome() Outcome {
	if !n.IsTerminal() {
		return InProgress
	}
	s1, s2 := n.Board1.Score(), n.Board2.Score()
	switch {
	case s1 > s2:
		return Victory(board.Player1)
	case s2 > s1:
		return Victory(board.Player2)
	default:
		return Draw
	}
}

// LegalMoves returns the Move node's legal placements, pruned up to row
// symmetry, in the order Board.EmptyCellsUpToRowSymmetry enumerates them.
// Fails with ErrNotAMoveNode on a Roll node.
func (n Node) LegalMoves() ([]board.Move, error) {
	if n.Kind.Variant != MoveKind {
		return nil, ErrNotAMoveNode
	}
	return n.BoardFor(n.Kind.Player).EmptyCellsUpToRowSymmetry(), nil
}

// IsLegalMove reports whether m is among n's legal moves. Fails with
// ErrNotAMoveNode on a Roll node.
func (n Node) IsLegalMove(m board.Move) (bool, error) {
	moves, err := n.LegalMoves()
	if err != nil {
		return false, err
	}
	for _, lm := range moves {
		if lm == m {
			return true, nil
		}
	}
	return false, nil
}

// WithMoveMade computes the successor of a Move(p, d) node after playing m:
// the active player's board gets die d at m, the opponent's board has die d
// eliminated from column m.Col, and the successor kind is Roll(opponent).
// Fails with ErrNotAMoveNode on a Roll node, or with the underlying board
// error if m is not legal.
func (n Node) WithMoveMade(m board.Move) (Node, error) {
	if n.Kind.Variant != MoveKind {
		return Node{}, ErrNotAMoveNode
	}
	p := n.Kind.Player
	opponent := p.Opponent()

	activeBoard, err := n.BoardFor(p).WithMoveMade(n.Kind.Die, m)
	if err != nil {
		return Node{}, err
	}
	opponentBoard := n.BoardFor(opponent).Eliminate(n.Kind.Die, m.Col)

	return FromActivePlayer(opponent, opponentBoard, activeBoard, Roll(opponent)), nil
}

// equalUpToChildren reports whether two nodes have the same boards and kind,
// ignoring their Children slices. Node is not directly comparable with == in
// Go because Children is a slice.
func equalUpToChildren(a, b Node) bool {
	return a.Board1 == b.Board1 && a.Board2 == b.Board2 && a.Kind == b.Kind
}

// ChildAfterMove locates the expanded child reached by playing m from a
// Move node. It materializes the expected successor via WithMoveMade, then
// finds the stored child that matches it by value. Fails with
// ErrNotAMoveNode on a Roll node, or ErrNoSuchChild if no expanded child
// matches.
func (n Node) ChildAfterMove(m board.Move) (Node, error) {
	expected, err := n.WithMoveMade(m)
	if err != nil {
		return Node{}, err
	}
	for _, c := range n.Children {
		if equalUpToChildren(c, expected) {
			return c, nil
		}
	}
	return Node{}, ErrNoSuchChild
}

// ChildAfterRoll returns the Move child for die d from a Roll node with all
// six children expanded. Fails with ErrNotARollNode on a Move node, or
// ErrRollsNotExpanded if fewer than six children are present.
func (n Node) ChildAfterRoll(d board.Die) (Node, error) {
	if n.Kind.Variant != RollKind {
		return Node{}, ErrNotARollNode
	}
	if len(n.Children) < 6 {
		return Node{}, ErrRollsNotExpanded
	}
	return n.Children[d.Value()-1], nil
}

// GenerateChildrenUpToSymmetry populates n.Children with the node's
// immediate successors: for a Move node, one Roll child per legal move up
// to row symmetry; for a Roll node, six Move children, one per die face in
// ascending order. It is a no-op on a terminal node.
func (n *Node) GenerateChildrenUpToSymmetry() error {
	if n.IsTerminal() {
		return nil
	}
	switch n.Kind.Variant {
	case MoveKind:
		moves, err := n.LegalMoves()
		if err != nil {
			return err
		}
		children := make([]Node, 0, len(moves))
		for _, m := range moves {
			child, err := n.WithMoveMade(m)
			if err != nil {
				return err
			}
			children = append(children, child)
		}
		n.Children = children
	case RollKind:
		children := make([]Node, 0, len(board.AllDice()))
		for _, d := range board.AllDice() {
			children = append(children, New(n.Board1, n.Board2, Move(n.Kind.Player, d)))
		}
		n.Children = children
	}
	return nil
}

// BuildEntireTree expands n and every descendant down to terminal nodes.
func (n *Node) BuildEntireTree() error {
	if n.IsTerminal() {
		return nil
	}
	if err := n.GenerateChildrenUpToSymmetry(); err != nil {
		return err
	}
	for i := range n.Children {
		if err := n.Children[i].BuildEntireTree(); err != nil {
			return err
		}
	}
	return nil
}

// BuildNMoves expands n down to a horizon of plies placements (moves), with
// the free roll layer between plies not consuming budget. A Move node with
// moves == 0 stops without expanding; a Move node with moves > 0 expands
// then recurses with moves-1; a Roll node always expands and recurses with
// the same moves. Terminal nodes stop regardless.
func (n *Node) BuildNMoves(moves int) error {
	if n.IsTerminal() {
		return nil
	}
	if n.Kind.Variant == MoveKind && moves == 0 {
		return nil
	}
	if err := n.GenerateChildrenUpToSymmetry(); err != nil {
		return err
	}
	next := moves
	if n.Kind.Variant == MoveKind {
		next = moves - 1
	}
	for i := range n.Children {
		if err := n.Children[i].BuildNMoves(next); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of n and its entire sub-tree.
func (n Node) Clone() Node {
	c := n
	if n.Children != nil {
		c.Children = make([]Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// MaxDepth returns the number of levels in n's sub-tree, counting n itself:
// 1 for a leaf, 1 + the deepest child's MaxDepth otherwise.
func (n Node) MaxDepth() int {
	if len(n.Children) == 0 {
		return 1
	}
	best := 0
	for _, c := range n.Children {
		if d := c.MaxDepth(); d > best {
			best = d
		}
	}
	return best + 1
}
