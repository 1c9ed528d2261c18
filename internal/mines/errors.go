package mines

import "errors"

var (
	// ErrInvalidConfig rejects board dimensions or mine counts that
	// cannot produce a playable game. Surfaced before any screen setup.
	ErrInvalidConfig = errors.New("invalid game config")

	// ErrOutOfBounds marks a position outside the grid. The caller is
	// expected to clamp the cursor, so this is a logic fault.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrGameOver rejects moves issued after the game reached a
	// terminal status.
	ErrGameOver = errors.New("game is over")
)
