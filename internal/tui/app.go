package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/minelab/sweeper/internal/mines"
)

var Log = logrus.New()

// App drives one game session. It owns the screen, translates key
// events into board calls and redraws from board state after each one;
// the board never calls back.
type App struct {
	screen  tcell.Screen
	board   *mines.Board
	curX    int
	curY    int
	started bool
	elapsed int
}

func New(screen tcell.Screen, board *mines.Board) *App {
	return &App{screen: screen, board: board}
}

// Elapsed reports the seconds counted by the clock, for the post-game
// summary once the screen is torn down.
func (a *App) Elapsed() int { return a.elapsed }

// Run owns the terminal until the game ends or ctx is canceled. After
// a terminal status the final grid stays on screen until any key is
// pressed, since Fini wipes it.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("unable to init screen: %w", err)
	}
	defer a.screen.Fini()

	a.drawAll()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.board.Forfeit()
			return nil
		case <-ticker.C:
			a.tick()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				if done := a.handleKey(ev); done {
					return nil
				}
			}
		}
	}
}

// tick advances the clock once the first move was made and the game is
// still running.
func (a *App) tick() {
	if !a.started || a.board.Status() != mines.InProgress {
		return
	}
	a.elapsed++
	a.drawClock()
	a.screen.Show()
}

func (a *App) handleKey(ev *tcell.EventKey) (done bool) {
	if a.board.Status() != mines.InProgress {
		return true // any key dismisses the end screen
	}
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		ev.Key() == tcell.KeyCtrlQ:
		a.board.Forfeit()
		Log.Info("game forfeited")
		return true
	case ev.Key() == tcell.KeyLeft || ev.Rune() == 'a':
		a.moveCursor(-1, 0)
	case ev.Key() == tcell.KeyRight || ev.Rune() == 'd':
		a.moveCursor(1, 0)
	case ev.Key() == tcell.KeyUp || ev.Rune() == 'w':
		a.moveCursor(0, -1)
	case ev.Key() == tcell.KeyDown || ev.Rune() == 's':
		a.moveCursor(0, 1)
	case ev.Rune() == 'q':
		a.uncover()
	case ev.Rune() == 'e':
		a.flag()
	}
	return false
}

func (a *App) moveCursor(dx, dy int) {
	x, y := a.curX+dx, a.curY+dy
	if x < 0 || x >= a.board.Width() || y < 0 || y >= a.board.Height() {
		return
	}
	a.curX, a.curY = x, y
	a.showCursor()
	a.screen.Show()
}

// uncover reveals the cursor cell, or chords it when already revealed.
func (a *App) uncover() {
	v, err := a.board.At(a.curX, a.curY)
	if err != nil {
		Log.WithError(err).Error("cursor out of bounds")
		return
	}
	if v.State == mines.Revealed {
		err = a.board.Chord(a.curX, a.curY)
	} else {
		err = a.board.Reveal(a.curX, a.curY)
	}
	if err != nil {
		Log.WithError(err).Warn("uncover rejected")
		return
	}
	a.started = true
	a.drawAll()
}

func (a *App) flag() {
	if err := a.board.ToggleFlag(a.curX, a.curY); err != nil {
		Log.WithError(err).Warn("flag rejected")
		return
	}
	a.started = true
	a.drawAll()
}

func (a *App) showCursor() {
	if a.board.Status() == mines.InProgress {
		a.screen.ShowCursor(gridLeft+a.curX, gridTop+a.curY)
	} else {
		a.screen.HideCursor()
	}
}
