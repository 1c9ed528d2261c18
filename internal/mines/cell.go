package mines

import "strconv"

type CellState int8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "cellstate(" + strconv.Itoa(int(s)) + ")"
	}
}

// Cell is a single grid position, owned exclusively by its Board.
// Mine and Adjacent stay zero until the first reveal places the layout.
type Cell struct {
	Mine     bool
	Adjacent int
	State    CellState
}

// CellView is the per-cell display state handed to the presentation
// layer. Mine and Adjacent are only populated once the cell is revealed
// or the game is over, so hidden mine positions never leak mid-game.
type CellView struct {
	State    CellState
	Adjacent int
	Mine     bool
	Exploded bool
}
