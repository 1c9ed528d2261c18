package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the ambient settings the game reads from the
// environment. Board parameters come from flags, not from here.
type Config struct {
	LogFile  string
	LogLevel string
}

// Load reads an optional .env file and the process environment.
// Missing values fall back to defaults; an absent .env is fine.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		LogFile:  getEnv("SWEEPER_LOG_FILE", ""),
		LogLevel: getEnv("SWEEPER_LOG_LEVEL", "info"),
	}
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"log_file":  c.LogFile,
		"log_level": c.LogLevel,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
