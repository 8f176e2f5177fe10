package board

import "errors"

// Sentinel errors for the board package. Callers distinguish kinds with
// errors.Is; wrapping sites add the offending value with fmt.Errorf("%w: ...").
var (
	ErrInvalidDieChar     = errors.New("invalid die character")
	ErrInvalidDieValue    = errors.New("invalid die value")
	ErrInvalidBoardString = errors.New("invalid board string")
	ErrInvalidMoveString  = errors.New("invalid move string")
	ErrSquareOccupied     = errors.New("square already occupied")
)
