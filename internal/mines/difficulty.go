package mines

import (
	"fmt"
	"strings"
)

type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "beginner":
		return Beginner, nil
	case "intermediate":
		return Intermediate, nil
	case "expert":
		return Expert, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q: %w", s, ErrInvalidConfig)
	}
}

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Params returns the preset board for the difficulty.
func (d Difficulty) Params() GameParams {
	switch d {
	case Beginner:
		return GameParams{Width: 22, Height: 4, MineCount: 11}
	case Expert:
		return GameParams{Width: 22, Height: 22, MineCount: 100}
	default:
		return GameParams{Width: 22, Height: 12, MineCount: 41}
	}
}

// MineRatio is the share of mined cells each difficulty aims for on
// boards of arbitrary size.
func (d Difficulty) MineRatio() float64 {
	switch d {
	case Beginner:
		return 0.1235
	case Expert:
		return 0.2062
	default:
		return 0.1563
	}
}

// SmartMineCount derives a mine count for a custom board size from the
// difficulty's ratio.
func (d Difficulty) SmartMineCount(width, height int) int {
	return int(float64(width*height) * d.MineRatio())
}
