package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore, Unsetenv clears for the test
	t.Setenv("SWEEPER_LOG_FILE", "x")
	t.Setenv("SWEEPER_LOG_LEVEL", "x")
	os.Unsetenv("SWEEPER_LOG_FILE")
	os.Unsetenv("SWEEPER_LOG_LEVEL")

	cfg := Load()
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SWEEPER_LOG_FILE", "/tmp/sweeper.log")
	t.Setenv("SWEEPER_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "/tmp/sweeper.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}
