package tree

import "errors"

var (
	ErrNotAMoveNode     = errors.New("node is not a Move node")
	ErrNotARollNode     = errors.New("node is not a Roll node")
	ErrRollsNotExpanded = errors.New("roll node has fewer than six children")
	ErrNoSuchChild      = errors.New("no matching child")
)
