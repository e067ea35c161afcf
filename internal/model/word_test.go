package model

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"Easy":    Easy,
		"medium":  Medium,
		" HARD ":  Hard,
		"Простой": Easy,
		"Средний": Medium,
		"сложный": Hard,
	}
	for in, want := range cases {
		got, err := ParseDifficulty(in)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDifficulty(%q) = %s, want %s", in, got, want)
		}
	}

	for _, in := range []string{"", "expert", "1"} {
		if _, err := ParseDifficulty(in); !errors.Is(err, ErrInvalidDifficulty) {
			t.Fatalf("ParseDifficulty(%q) err = %v, want ErrInvalidDifficulty", in, err)
		}
	}
}

func TestDifficultyValid(t *testing.T) {
	for _, d := range Difficulties() {
		if !d.Valid() {
			t.Fatalf("%s should be valid", d)
		}
	}
	if Difficulty("easy").Valid() {
		t.Fatal("lower-case label is not a stored value")
	}
}

func TestValidateWord(t *testing.T) {
	for _, w := range []string{"кот", "apple", "ёжик"} {
		if err := ValidateWord(w); err != nil {
			t.Fatalf("ValidateWord(%q): %v", w, err)
		}
	}
	for _, w := range []string{"", "к0т", "two words", "a-b"} {
		if err := ValidateWord(w); !errors.Is(err, ErrInvalidWord) {
			t.Fatalf("ValidateWord(%q) err = %v, want ErrInvalidWord", w, err)
		}
	}
}

func TestNormalizeWord(t *testing.T) {
	if got := NormalizeWord("  КоТ "); got != "кот" {
		t.Fatalf("NormalizeWord = %q", got)
	}
}
