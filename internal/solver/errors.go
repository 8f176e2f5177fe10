package solver

import "errors"

// ErrRollRoot is returned when a solver mode is invoked with a Roll node as
// the root; only Move nodes can be solved.
var ErrRollRoot = errors.New("root is a Roll node, not a Move node")
