package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

// Validate enforces the construction contract: positive dimensions and
// at least one safe cell, so the first reveal can never hit a mine.
func (p GameParams) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d: %w",
			p.Width, p.Height, ErrInvalidConfig)
	}
	if p.MineCount < 0 || p.MineCount > p.Width*p.Height-1 {
		return fmt.Errorf("%d mines do not fit a %dx%d board: %w",
			p.MineCount, p.Width, p.Height, ErrInvalidConfig)
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = %q, n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}
