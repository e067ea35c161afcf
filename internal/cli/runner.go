package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/hangman/internal/game"
	"github.com/idilsaglam/hangman/internal/model"
	"github.com/idilsaglam/hangman/internal/store/sqlstore"
	"github.com/idilsaglam/hangman/internal/ui"
)

// Options carry what root flags and the environment resolved.
type Options struct {
	DBPath   string
	Alphabet game.Alphabet
	Log      zerolog.Logger // subcommands
	PlayLog  zerolog.Logger // while the game owns the terminal
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		return doPlay(nil, opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "play":
		if len(a) > 1 {
			ui.Fail("usage: hangman play [difficulty]")
			return 2
		}
		return doPlay(a, opt)

	case "init":
		return doInit(a, opt)

	case "words":
		if len(a) == 0 {
			ui.Fail("usage: hangman words <ls|add|update|rm>")
			return 2
		}
		return runWords(a[0], a[1:], opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Err)
	PrintHelp()
	return 2
}

func runWords(cmd string, a []string, opt Options) int {
	st := sqlstore.New(opt.DBPath, opt.Log)

	switch cmd {
	case "ls":
		if len(a) > 1 {
			ui.Fail("usage: hangman words ls [difficulty]")
			return 2
		}
		return doList(st, a)

	case "add":
		if len(a) != 2 {
			ui.Fail("usage: hangman words add <word> <difficulty>")
			return 2
		}
		return doAdd(st, a[0], a[1])

	case "update":
		return doUpdate(st, a)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: hangman words rm <id>")
			return 2
		}
		id, err := strconv.ParseInt(a[0], 10, 64)
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(st, id)
	}

	ui.Fail("unknown words subcommand: " + cmd)
	return 2
}

func PrintHelp() {
	fmt.Fprintf(ui.Out, `hangman - guess the word before the gallows is complete

Usage:
  hangman [flags] [subcommand] [args]

Subcommands:
  play [difficulty]                     Play (default). Difficulty: Easy, Medium, Hard
  init [-seed]                          Create the word database, optionally with starter words
  words ls [difficulty]                 List stored words
  words add <word> <difficulty>         Add a word
  words update <id> [-word W] [-difficulty D]
                                        Change a word and/or its difficulty
  words rm <id>                         Remove a word by id

Flags:
  -db PATH      word database (env HANGMAN_DB, default words.db)
  -theme NAME   classic, neon or mono (env HANGMAN_THEME)
  -no-color     disable colours

Examples:
  hangman init -seed
  hangman play medium
  hangman words add корабль Hard
  hangman words update 3 -difficulty Medium
`)
}

// -------------- subcommand impls ----------------

func doInit(a []string, opt Options) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	seed := fs.Bool("seed", false, "add the starter word list")
	if err := fs.Parse(a); err != nil || fs.NArg() != 0 {
		ui.Fail("usage: hangman init [-seed]")
		return 2
	}

	st := sqlstore.New(opt.DBPath, opt.Log)
	if err := st.Create(); err != nil {
		ui.Fail("init: " + err.Error())
		return 1
	}
	ui.OK("database ready at " + st.Path())
	if !*seed {
		return 0
	}
	n, err := st.Seed()
	if err != nil {
		return failStore("seed", err)
	}
	ui.OK(fmt.Sprintf("seeded %d words", n))
	return 0
}

func doList(st *sqlstore.Store, a []string) int {
	var filter model.Difficulty
	if len(a) == 1 {
		d, err := model.ParseDifficulty(a[0])
		if err != nil {
			ui.Fail("ls: " + err.Error())
			return 2
		}
		filter = d
	}

	words, err := st.GetAll()
	if err != nil {
		return failStore("load", err)
	}

	t := ui.Current()
	counts := map[model.Difficulty]int{}
	for _, w := range words {
		counts[w.Difficulty]++
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("%s  %s %d", ui.C(t.Title, "Words"), ui.C(t.Accent, "Total"), len(words)))
	for _, d := range model.Difficulties() {
		lines = append(lines, fmt.Sprintf("%-6s %s", d, ui.C(t.Muted, ui.ProgressBar(counts[d], len(words), 20))))
	}
	lines = append(lines, "")

	shown := 0
	for _, w := range words {
		if filter != "" && w.Difficulty != filter {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %-12s %s",
			ui.C(t.Muted, fmt.Sprintf("%3d.", w.ID)), w.Text, ui.C(t.Accent, string(w.Difficulty))))
		shown++
	}
	if shown == 0 {
		lines = append(lines, ui.C(t.Muted, "no words"))
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: add with `hangman words add кот Easy`"))
	ui.Panel(lines)
	return 0
}

func doAdd(st *sqlstore.Store, word, diff string) int {
	d, err := model.ParseDifficulty(diff)
	if err != nil {
		ui.Fail("add: " + err.Error())
		return 2
	}
	id, err := st.Add(word, d)
	if err != nil {
		return failStore("add", err)
	}
	if id == 0 {
		ui.Warn(fmt.Sprintf("%q is already in the word list", model.NormalizeWord(word)))
		return 0
	}
	ui.OK(fmt.Sprintf("added #%d", id))
	return 0
}

func doUpdate(st *sqlstore.Store, a []string) int {
	const usage = "usage: hangman words update <id> [-word W] [-difficulty D]"
	if len(a) == 0 {
		ui.Fail(usage)
		return 2
	}
	id, err := strconv.ParseInt(a[0], 10, 64)
	if err != nil {
		ui.Fail("update: not a number: " + a[0])
		return 2
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	word := fs.String("word", "", "new word")
	diff := fs.String("difficulty", "", "new difficulty")
	if err := fs.Parse(a[1:]); err != nil || fs.NArg() != 0 {
		ui.Fail(usage)
		return 2
	}

	var p sqlstore.Patch
	if *word != "" {
		p.Word = word
	}
	if *diff != "" {
		d, err := model.ParseDifficulty(*diff)
		if err != nil {
			ui.Fail("update: " + err.Error())
			return 2
		}
		p.Difficulty = &d
	}
	if p.Word == nil && p.Difficulty == nil {
		ui.Fail("update: nothing to change")
		return 2
	}
	if err := st.Update(id, p); err != nil {
		if errors.Is(err, sqlstore.ErrNoWord) {
			ui.Warn(fmt.Sprintf("no word with id %d, nothing updated", id))
			fmt.Fprintln(ui.Err, ui.C(ui.Current().Muted, "Hint: run `hangman words ls` to see valid ids"))
			return 0
		}
		return failStore("update", err)
	}
	ui.OK(fmt.Sprintf("updated #%d", id))
	return 0
}

func doRemove(st *sqlstore.Store, id int64) int {
	if err := st.Delete(id); err != nil {
		return failStore("rm", err)
	}
	ui.OK(fmt.Sprintf("removed #%d", id))
	return 0
}

func doPlay(a []string, opt Options) int {
	var start model.Difficulty
	if len(a) == 1 {
		d, err := model.ParseDifficulty(a[0])
		if err != nil {
			ui.Fail("play: " + err.Error())
			return 2
		}
		start = d
	}

	st := sqlstore.New(opt.DBPath, opt.PlayLog)
	// fail before taking over the terminal when the store is unusable
	if _, err := st.Get(model.Easy); err != nil {
		return failStore("play", err)
	}
	if err := runGame(st, opt.Alphabet, start, opt.PlayLog); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// failStore reports a store error; missing database or table need the user
// to run init, validation errors are usage errors.
func failStore(op string, err error) int {
	ui.Fail(op + ": " + err.Error())
	switch {
	case errors.Is(err, sqlstore.ErrNoDatabase), errors.Is(err, sqlstore.ErrNoTable):
		fmt.Fprintln(ui.Err, ui.C(ui.Current().Muted, "Hint: run `hangman init -seed` to create the word list"))
		return 1
	case errors.Is(err, model.ErrInvalidWord), errors.Is(err, model.ErrInvalidDifficulty),
		errors.Is(err, sqlstore.ErrDuplicateWord):
		return 2
	}
	return 1
}
