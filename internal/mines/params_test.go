package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRoundTrip(t *testing.T) {
	p := GameParams{Width: 22, Height: 12, MineCount: 41}
	assert.Equal(t, "22:12:41", p.Seed())

	parsed, err := ParseSeed(p.Seed())
	require.NoError(t, err)
	assert.Equal(t, p, *parsed)
}

func TestParseSeedRejectsGarbage(t *testing.T) {
	for _, seed := range []string{"", "22", "22:12", "a:b:c"} {
		_, err := ParseSeed(seed)
		assert.Error(t, err, "seed %q", seed)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       GameParams
	}{
		{Beginner, GameParams{Width: 22, Height: 4, MineCount: 11}},
		{Intermediate, GameParams{Width: 22, Height: 12, MineCount: 41}},
		{Expert, GameParams{Width: 22, Height: 22, MineCount: 100}},
	}
	for _, test := range tests {
		t.Run(test.difficulty.String(), func(t *testing.T) {
			assert.Equal(t, test.want, test.difficulty.Params())
			assert.NoError(t, test.difficulty.Params().Validate())
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("Expert")
	require.NoError(t, err)
	assert.Equal(t, Expert, d)

	_, err = ParseDifficulty("nightmare")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSmartMineCount(t *testing.T) {
	// intermediate ratio on the default board lands on the classic 41
	assert.Equal(t, 41, Intermediate.SmartMineCount(22, 12))
	assert.Equal(t, 10, Beginner.SmartMineCount(22, 4))
	assert.Equal(t, 99, Expert.SmartMineCount(22, 22))
}
