package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/minelab/sweeper/internal/config"
	"github.com/minelab/sweeper/internal/mines"
	"github.com/minelab/sweeper/internal/tui"
)

var log = logrus.New()

var (
	width      int
	height     int
	mineCount  int
	difficulty string
	smart      string
	maxWidth   bool
	maxHeight  bool
	seed       uint64
)

func init() {
	flag.IntVar(&width, "width", 22, "board width")
	flag.IntVar(&width, "w", 22, "board width (shorthand)")
	flag.IntVar(&height, "height", 12, "board height")
	flag.IntVar(&height, "h", 12, "board height (shorthand)")
	flag.IntVar(&mineCount, "mines", 41, "number of mines, at most width*height-1")
	flag.IntVar(&mineCount, "m", 41, "number of mines (shorthand)")
	flag.StringVar(&difficulty, "difficulty", "", "preset board: beginner, intermediate or expert")
	flag.StringVar(&difficulty, "d", "", "preset board (shorthand)")
	flag.StringVar(&smart, "smart-difficulty", "", "derive the mine count from preset ratios")
	flag.StringVar(&smart, "s", "", "derive the mine count from preset ratios (shorthand)")
	flag.BoolVar(&maxWidth, "max-width", false, "size the board to the terminal width")
	flag.BoolVar(&maxHeight, "max-height", false, "size the board to the terminal height")
	flag.Uint64Var(&seed, "seed", 0, "fixed RNG seed for a reproducible mine layout")
}

func setupLogging(cfg config.Config) error {
	// the TUI owns the terminal, so nothing may write to it
	log.SetOutput(io.Discard)
	mines.Log.SetOutput(io.Discard)
	tui.Log.SetOutput(io.Discard)

	if cfg.LogFile == "" {
		return nil
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("unable to parse log level: %w", err)
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		return fmt.Errorf("unable to set up log file: %w", err)
	}

	for _, l := range []*logrus.Logger{log, mines.Log, tui.Log} {
		l.SetLevel(level)
		l.AddHook(hook)
	}
	return nil
}

func gameParams() (mines.GameParams, error) {
	p := mines.GameParams{Width: width, Height: height, MineCount: mineCount}

	if maxWidth || maxHeight {
		tw, th, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return p, fmt.Errorf("unable to query terminal size: %w", err)
		}
		if maxWidth {
			p.Width = tw - 2 // frame columns
		}
		if maxHeight {
			p.Height = th - 5 // header and frame rows
		}
	}

	if difficulty != "" {
		d, err := mines.ParseDifficulty(difficulty)
		if err != nil {
			return p, err
		}
		p = d.Params()
	}

	if smart != "" {
		d, err := mines.ParseDifficulty(smart)
		if err != nil {
			return p, err
		}
		p.MineCount = d.SmartMineCount(p.Width, p.Height)
	}

	if p.Width < tui.MinWidth {
		return p, fmt.Errorf("width must be at least %d: %w",
			tui.MinWidth, mines.ErrInvalidConfig)
	}
	return p, p.Validate()
}

func main() {
	flag.Parse()

	cfg := config.Load()
	if err := setupLogging(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	params, err := gameParams()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	src := rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())
	if seed != 0 {
		src = rand.NewPCG(seed, seed)
	}

	board, err := mines.New(params, rand.New(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	log.WithFields(cfg.Fields()).Debug("config")
	log.WithField("seed", params.Seed()).Info("starting game")

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: unable to create screen:", err)
		os.Exit(1)
	}

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	app := tui.New(screen, board)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return app.Run(gCtx)
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("exit reason")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	switch board.Status() {
	case mines.Won:
		fmt.Printf("you won in %d seconds\n", app.Elapsed())
	case mines.Lost:
		fmt.Println("you lost")
	}
	log.WithFields(logrus.Fields{
		"status":  board.Status().String(),
		"elapsed": app.Elapsed(),
	}).Info("game over")
}
