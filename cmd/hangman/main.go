package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/hangman/internal/cli"
	"github.com/idilsaglam/hangman/internal/config"
	"github.com/idilsaglam/hangman/internal/game"
	"github.com/idilsaglam/hangman/internal/ui"
)

func main() {
	code := run()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

// run holds everything with deferred cleanup so it happens before os.Exit.
func run() int {
	cfg := config.FromEnv()

	// Root flags (apply to every subcommand)
	dbPath := flag.String("db", cfg.DBPath, "word database file")
	theme := flag.String("theme", cfg.Theme, "output theme: classic, neon or mono")
	noColor := flag.Bool("no-color", cfg.NoColor, "disable colours")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	ui.SetTheme(*theme)
	if *noColor {
		ui.SetColorForcing(false, true)
	}

	alphabet, err := game.AlphabetByName(cfg.Alphabet)
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 2
	}

	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339, NoColor: *noColor}).
		With().Timestamp().Logger()

	// the game owns the terminal, so its events only go to a file
	playLog := zerolog.Nop()
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			ui.Fail("log file: " + err.Error())
			return 1
		}
		defer f.Close()
		playLog = zerolog.New(f).With().Timestamp().Logger()
	}

	return cli.Run(flag.Args(), cli.Options{
		DBPath:   *dbPath,
		Alphabet: alphabet,
		Log:      log,
		PlayLog:  playLog,
	})
}
