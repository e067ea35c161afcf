package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/hangman/internal/game"
	"github.com/idilsaglam/hangman/internal/model"
	"github.com/idilsaglam/hangman/internal/store/sqlstore"
	"github.com/idilsaglam/hangman/internal/ui"
)

type output struct{ out, err bytes.Buffer }

func setup(t *testing.T) (Options, *output) {
	t.Helper()
	o := &output{}
	oldOut, oldErr := ui.Out, ui.Err
	ui.Out, ui.Err = &o.out, &o.err
	ui.SetTheme("mono")
	t.Cleanup(func() {
		ui.Out, ui.Err = oldOut, oldErr
		ui.SetTheme("classic")
	})
	return Options{
		DBPath:   filepath.Join(t.TempDir(), "words.db"),
		Alphabet: game.Russian,
		Log:      zerolog.Nop(),
		PlayLog:  zerolog.Nop(),
	}, o
}

func run(t *testing.T, opt Options, args ...string) int {
	t.Helper()
	return Run(args, opt)
}

func TestHelp(t *testing.T) {
	opt, o := setup(t)
	if code := run(t, opt, "help"); code != 0 {
		t.Fatalf("help exit %d", code)
	}
	if !strings.Contains(o.out.String(), "words add <word> <difficulty>") {
		t.Fatalf("help output missing subcommands: %s", o.out.String())
	}
}

func TestUnknownSubcommand(t *testing.T) {
	opt, o := setup(t)
	if code := run(t, opt, "fly"); code != 2 {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if !strings.Contains(o.err.String(), "unknown subcommand: fly") {
		t.Fatalf("stderr = %q", o.err.String())
	}
}

func TestWordsWithoutDatabase(t *testing.T) {
	opt, o := setup(t)
	if code := run(t, opt, "words", "ls"); code != 1 {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(o.err.String(), "hangman init") {
		t.Fatalf("expected init hint, got %q", o.err.String())
	}
}

func TestPlayWithoutDatabaseFailsBeforeTUI(t *testing.T) {
	opt, _ := setup(t)
	if code := run(t, opt, "play"); code != 1 {
		t.Fatalf("expected error exit, got %d", code)
	}
	if code := run(t, opt, "play", "expert"); code != 2 {
		t.Fatalf("expected usage exit for bad difficulty, got %d", code)
	}
}

func TestInitSeedAndList(t *testing.T) {
	opt, o := setup(t)
	if code := run(t, opt, "init", "-seed"); code != 0 {
		t.Fatalf("init exit %d: %s", code, o.err.String())
	}
	if !strings.Contains(o.out.String(), "seeded 30 words") {
		t.Fatalf("stdout = %q", o.out.String())
	}

	o.out.Reset()
	if code := run(t, opt, "words", "ls", "hard"); code != 0 {
		t.Fatalf("ls exit %d", code)
	}
	out := o.out.String()
	if !strings.Contains(out, "собака") || strings.Contains(out, "перо") {
		t.Fatalf("filtered listing wrong:\n%s", out)
	}
	if !strings.Contains(out, "Total 30") {
		t.Fatalf("expected total in header:\n%s", out)
	}
}

func TestAddUpdateRemove(t *testing.T) {
	opt, o := setup(t)
	if code := run(t, opt, "init"); code != 0 {
		t.Fatalf("init exit %d", code)
	}
	if code := run(t, opt, "words", "add", "кот", "Простой"); code != 0 {
		t.Fatalf("add exit %d: %s", code, o.err.String())
	}
	if code := run(t, opt, "words", "add", "кот", "Hard"); code != 0 {
		t.Fatalf("duplicate add must not fail, exit %d", code)
	}
	if !strings.Contains(o.err.String(), "already in the word list") {
		t.Fatalf("expected duplicate warning, got %q", o.err.String())
	}
	if code := run(t, opt, "words", "add", "к0т", "Easy"); code != 2 {
		t.Fatalf("invalid word exit %d", code)
	}
	if code := run(t, opt, "words", "add", "дом", "Expert"); code != 2 {
		t.Fatalf("invalid difficulty exit %d", code)
	}

	if code := run(t, opt, "words", "update", "1", "-word", "кит", "-difficulty", "medium"); code != 0 {
		t.Fatalf("update exit %d: %s", code, o.err.String())
	}
	st := sqlstore.New(opt.DBPath, zerolog.Nop())
	all, err := st.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 || all[0].Text != "кит" || all[0].Difficulty != model.Medium {
		t.Fatalf("unexpected records %+v", all)
	}

	if code := run(t, opt, "words", "update", "1"); code != 2 {
		t.Fatalf("empty update exit %d", code)
	}
	if code := run(t, opt, "words", "update", "x", "-word", "кит"); code != 2 {
		t.Fatalf("bad id exit %d", code)
	}

	if code := run(t, opt, "words", "rm", "1"); code != 0 {
		t.Fatalf("rm exit %d", code)
	}
	if code := run(t, opt, "words", "rm", "42"); code != 0 {
		t.Fatalf("rm of unknown id exit %d", code)
	}
	all, _ = st.GetAll()
	if len(all) != 0 {
		t.Fatalf("expected empty table, got %+v", all)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	opt, o := setup(t)
	if code := run(t, opt, "init"); code != 0 {
		t.Fatalf("init exit %d", code)
	}
	if code := run(t, opt, "words", "update", "999", "-word", "дом"); code != 0 {
		t.Fatalf("update exit %d", code)
	}
	if strings.Contains(o.out.String(), "updated #999") {
		t.Fatalf("reported success for a missing row: %q", o.out.String())
	}
	if !strings.Contains(o.err.String(), "no word with id 999") {
		t.Fatalf("expected warning, got %q", o.err.String())
	}
}

func TestUsageErrors(t *testing.T) {
	opt, _ := setup(t)
	cases := [][]string{
		{"words"},
		{"words", "add", "кот"},
		{"words", "rm"},
		{"words", "rm", "one"},
		{"words", "dance"},
		{"init", "extra"},
		{"play", "easy", "now"},
	}
	for _, args := range cases {
		if code := run(t, opt, args...); code != 2 {
			t.Fatalf("%v: expected usage exit, got %d", args, code)
		}
	}
}
