package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameStatus int

const (
	InProgress GameStatus = iota
	Won
	Lost
)

func (s GameStatus) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("gamestatus(%d)", int(s))
	}
}

// Board owns the grid, the mine layout and per-cell state. Cells are a
// flat slice indexed y*width+x. Mines are not placed at construction:
// the layout is generated on the first reveal, excluding the revealed
// cell, so the first move can never lose the game.
type Board struct {
	params   GameParams
	cells    []Cell
	revealed int
	flagged  int
	status   GameStatus
	placed   bool
	exploded int
	rng      *rand.Rand
}

// New builds an all-hidden board with no mines. The rand source drives
// mine placement later and makes layouts reproducible under test.
func New(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Board{
		params:   params,
		cells:    make([]Cell, params.Width*params.Height),
		exploded: -1,
		rng:      r,
	}, nil
}

func (b *Board) Width() int         { return b.params.Width }
func (b *Board) Height() int        { return b.params.Height }
func (b *Board) MineCount() int     { return b.params.MineCount }
func (b *Board) Params() GameParams { return b.params }
func (b *Board) Revealed() int      { return b.revealed }
func (b *Board) Flagged() int       { return b.flagged }
func (b *Board) Status() GameStatus { return b.status }

// MinesLeft is the header counter value: mines minus flags. It may go
// negative, flags are markers and not a budget.
func (b *Board) MinesLeft() int { return b.params.MineCount - b.flagged }

// At reports the display state of a cell. While the game is in
// progress a hidden cell reveals nothing about the layout; once the
// game is over the whole layout becomes visible.
func (b *Board) At(x, y int) (CellView, error) {
	i, err := b.index(x, y)
	if err != nil {
		return CellView{}, err
	}
	var (
		c    = b.cells[i]
		over = b.status != InProgress
		v    = CellView{State: c.State}
	)
	if c.State == Revealed || over {
		v.Mine = c.Mine
		v.Adjacent = c.Adjacent
		v.Exploded = i == b.exploded
	}
	return v, nil
}

// Reveal opens a hidden cell. Revealing a flagged or already-revealed
// cell is a no-op: flags must be removed before the cell can open, and
// Revealed is terminal for a cell.
func (b *Board) Reveal(x, y int) error {
	if b.status != InProgress {
		return fmt.Errorf("reveal %d:%d: %w", x, y, ErrGameOver)
	}
	i, err := b.index(x, y)
	if err != nil {
		return err
	}
	if b.cells[i].State != Hidden {
		return nil
	}
	if !b.placed {
		b.placeMines(i)
	}
	b.reveal(i)
	b.updateStatus()
	return nil
}

// ToggleFlag flips a cell between Hidden and Flagged. Revealed cells
// are left alone.
func (b *Board) ToggleFlag(x, y int) error {
	if b.status != InProgress {
		return fmt.Errorf("flag %d:%d: %w", x, y, ErrGameOver)
	}
	i, err := b.index(x, y)
	if err != nil {
		return err
	}
	switch b.cells[i].State {
	case Hidden:
		b.cells[i].State = Flagged
		b.flagged++
	case Flagged:
		b.cells[i].State = Hidden
		b.flagged--
	}
	return nil
}

// Chord opens every hidden unflagged neighbor of a revealed numbered
// cell, provided exactly as many neighbors are flagged as the cell's
// adjacency count. A wrong flag makes this lose the game.
func (b *Board) Chord(x, y int) error {
	if b.status != InProgress {
		return fmt.Errorf("chord %d:%d: %w", x, y, ErrGameOver)
	}
	i, err := b.index(x, y)
	if err != nil {
		return err
	}
	c := b.cells[i]
	if c.State != Revealed || c.Adjacent == 0 {
		return nil
	}
	var (
		flags  int
		hidden []int
	)
	for _, j := range b.neighbors(i) {
		switch b.cells[j].State {
		case Flagged:
			flags++
		case Hidden:
			hidden = append(hidden, j)
		}
	}
	if flags != c.Adjacent {
		return nil
	}
	for _, j := range hidden {
		if b.status != InProgress {
			break
		}
		if b.cells[j].State != Hidden {
			continue // swept up by an earlier flood
		}
		b.reveal(j)
		b.updateStatus()
	}
	return nil
}

// Forfeit ends an unfinished game as a loss. Used when the player
// quits mid-game; the layout becomes visible through At.
func (b *Board) Forfeit() {
	if b.status == InProgress {
		b.status = Lost
	}
}

func (b *Board) index(x, y int) (int, error) {
	if x < 0 || x >= b.params.Width || y < 0 || y >= b.params.Height {
		return 0, fmt.Errorf("position %d:%d on a %dx%d board: %w",
			x, y, b.params.Width, b.params.Height, ErrOutOfBounds)
	}
	return y*b.params.Width + x, nil
}

func (b *Board) neighbors(i int) []int {
	var (
		w  = b.params.Width
		h  = b.params.Height
		x  = i % w
		y  = i / w
		js = make([]int, 0, 8)
	)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			xx, yy := x+dx, y+dy
			if (dx == 0 && dy == 0) ||
				xx < 0 || xx >= w || yy < 0 || yy >= h {
				continue
			}
			js = append(js, yy*w+xx)
		}
	}
	return js
}

// placeMines picks MineCount distinct cells from everything except the
// first-revealed cell, then computes every adjacency count. One-shot;
// the placed flag guards against re-placement on later reveals.
func (b *Board) placeMines(excluding int) {
	candidates := make([]int, 0, len(b.cells)-1)
	for i := range b.cells {
		if i != excluding {
			candidates = append(candidates, i)
		}
	}
	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	b.plant(candidates[:b.params.MineCount])

	Log.WithFields(logrus.Fields{
		"seed":      b.params.Seed(),
		"excluding": excluding,
	}).Debug("mines placed")
}

func (b *Board) plant(at []int) {
	for _, i := range at {
		b.cells[i].Mine = true
	}
	for i := range b.cells {
		n := 0
		for _, j := range b.neighbors(i) {
			if b.cells[j].Mine {
				n++
			}
		}
		b.cells[i].Adjacent = n
	}
	b.placed = true
}

func (b *Board) reveal(i int) {
	b.cells[i].State = Revealed
	b.revealed++
	if b.cells[i].Mine {
		b.status = Lost
		b.exploded = i
		return
	}
	if b.cells[i].Adjacent == 0 {
		b.flood(i)
	}
}

// flood opens the connected zero-adjacency region around a freshly
// revealed blank cell plus its one-layer numbered boundary. Iterative
// breadth-first over the 8-neighborhood; the Revealed state doubles as
// the visited marker, and flagged cells block propagation until the
// player unflags them.
func (b *Board) flood(start int) {
	queue := []int{start}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, j := range b.neighbors(i) {
			if b.cells[j].State != Hidden {
				continue
			}
			b.cells[j].State = Revealed
			b.revealed++
			if b.cells[j].Adjacent == 0 {
				queue = append(queue, j)
			}
		}
	}
}

// updateStatus is the single authoritative win check, run as the final
// step of every mutating operation.
func (b *Board) updateStatus() {
	if b.status != InProgress {
		return
	}
	if b.revealed == len(b.cells)-b.params.MineCount {
		b.status = Won
	}
}

// String renders player knowledge for debug logs: '-' hidden, '*'
// flagged, digits for open cells, 'X' for a revealed mine.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.params.Height {
		for x := range b.params.Width {
			c := b.cells[y*b.params.Width+x]
			switch {
			case c.State == Flagged:
				sb.WriteString("* ")
			case c.State == Hidden:
				sb.WriteString("- ")
			case c.Mine:
				sb.WriteString("X ")
			default:
				fmt.Fprintf(&sb, "%d ", c.Adjacent)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
