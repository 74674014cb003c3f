package mines

import "errors"

var (
	// ErrInvalidConfiguration is returned when a board cannot be dealt with the
	// requested dimensions and mine count.
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrOutOfBounds is returned when a position lies outside the board.
	ErrOutOfBounds = errors.New("position out of bounds")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
