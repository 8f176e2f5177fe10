package engine

import "errors"

// ErrCannotEvaluateInProgressLeaf is returned by the brute-force objective
// when it reaches a leaf whose game is not yet over.
var ErrCannotEvaluateInProgressLeaf = errors.New("cannot evaluate a non-terminal leaf with the brute-force objective")
