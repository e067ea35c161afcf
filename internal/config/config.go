package config

import (
	"os"

	"github.com/rs/zerolog"
)

type Config struct {
	DBPath   string
	Theme    string
	Alphabet string
	LogLevel zerolog.Level
	LogFile  string
	NoColor  bool
}

func FromEnv() Config {
	c := Config{}
	c.DBPath = getenv("HANGMAN_DB", "words.db")
	c.Theme = getenv("HANGMAN_THEME", "classic")
	c.Alphabet = getenv("HANGMAN_ALPHABET", "ru")
	c.LogFile = os.Getenv("HANGMAN_LOG_FILE")
	c.NoColor = os.Getenv("NO_COLOR") != ""

	lvl, err := zerolog.ParseLevel(getenv("HANGMAN_LOG_LEVEL", "info"))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	c.LogLevel = lvl
	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
