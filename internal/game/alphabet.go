package game

import (
	"fmt"
	"strings"
	"unicode"
)

// Alphabet is the set of letters a player may guess.
// An Alphabet with no letters accepts any Unicode letter.
type Alphabet struct {
	Name    string
	letters string
}

var (
	Russian   = Alphabet{Name: "ru", letters: "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"}
	English   = Alphabet{Name: "en", letters: "abcdefghijklmnopqrstuvwxyz"}
	AnyLetter = Alphabet{Name: "any"}
)

// AlphabetByName resolves the short names used in configuration.
func AlphabetByName(name string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ru":
		return Russian, nil
	case "en":
		return English, nil
	case "any":
		return AnyLetter, nil
	}
	return Alphabet{}, fmt.Errorf("unknown alphabet %q (want ru, en or any)", name)
}

// Contains reports whether r is a lower-case letter of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	if a.letters == "" {
		return unicode.IsLetter(r) && unicode.ToLower(r) == r
	}
	return strings.ContainsRune(a.letters, r)
}
